package rdf

// Resolve implements RFC 3986 §5.2.2 reference resolution: it combines
// a reference IRI against a base absolute IRI to produce a new absolute
// IRI, following the base's scheme through when the reference omits
// pieces of the hierarchy.
//
// A Urn base accepts only a Urn reference; any other reference kind
// (including a RelativeIri) against a Urn base is a domain error. A Urn
// reference whose namespace identifier differs from the base's is
// returned unchanged. One with a matching namespace identifier is
// returned as is, except that the base's r-component is filled in when
// the reference has none. No Nss merging, dot-segment removal or
// q-component inheritance is applied to URNs.
func Resolve(base *IRI, ref *IRI) (*IRI, error) {
	if base.IsRelative() {
		return nil, &DomainError{Kind: "Resolve", Msg: "base must be absolute"}
	}
	if u, ok := base.AsURN(); ok {
		return resolveAgainstURN(u, ref)
	}
	if !ref.IsRelative() {
		return ref, nil
	}
	baseURL, _ := base.AsURL()
	rel, _ := ref.AsRelative()
	return &IRI{kind: IRIKindURL, url: resolveURL(baseURL, rel)}, nil
}

// resolveURL is the pseudocode of RFC 3986 §5.2.2, specialized to this
// package's Url/RelativeIri/Path/Query types.
func resolveURL(base *Url, ref *RelativeIri) *Url {
	result := &Url{Scheme: base.Scheme}

	if ref.HasAuthority {
		result.HasAuthority = true
		result.HasUserInfo, result.UserInfo = ref.HasUserInfo, ref.UserInfo
		result.Host = ref.Host
		result.HasPort, result.Port = ref.HasPort, ref.Port
		result.Path = ref.Path.RemoveDotSegments()
		result.HasQuery, result.Query = ref.HasQuery, ref.Query
	} else {
		result.HasAuthority = base.HasAuthority
		result.HasUserInfo, result.UserInfo = base.HasUserInfo, base.UserInfo
		result.Host = base.Host
		result.HasPort, result.Port = base.HasPort, base.Port

		if ref.Path.IsEmpty() {
			result.Path = base.Path
			if ref.HasQuery {
				result.HasQuery, result.Query = true, ref.Query
			} else {
				result.HasQuery, result.Query = base.HasQuery, base.Query
			}
		} else {
			if ref.Path.StartsWithSlash() {
				result.Path = ref.Path.RemoveDotSegments()
			} else {
				result.Path = mergePaths(base, ref.Path).RemoveDotSegments()
			}
			result.HasQuery, result.Query = ref.HasQuery, ref.Query
		}
	}

	result.HasFragment, result.Fragment = ref.HasFragment, ref.Fragment
	return result
}

// mergePaths implements RFC 3986 §5.3's merge step: when the base has
// an authority and an empty path, the merged path is "/" + ref; else
// the merged path is ref appended in place of the base's last segment.
func mergePaths(base *Url, ref *Path) *Path {
	if base.HasAuthority && base.Path.IsEmpty() {
		return Prepend(ref, NewSlash(EmptyPath))
	}
	return prependAllButLastSegment(base.Path, ref)
}

// prependAllButLastSegment drops base's final path segment (the part
// after its last "/") and prepends what remains onto ref.
func prependAllButLastSegment(base *Path, ref *Path) *Path {
	fields := pathToFields(base)
	if len(fields) > 0 {
		fields = fields[:len(fields)-1]
	}
	fields = append(fields, "")
	prefix := fieldsToPath(fields)
	return Prepend(ref, prefix)
}

func resolveAgainstURN(base *Urn, ref *IRI) (*IRI, error) {
	refURN, ok := ref.AsURN()
	if !ok {
		return nil, &DomainError{Kind: "Resolve", Msg: "cannot resolve a non-URN reference against a URN base"}
	}
	if !refURN.Nid.Equal(base.Nid) {
		return ref, nil
	}
	result := *refURN
	if !result.HasRComponent {
		result.HasRComponent, result.RComponent = base.HasRComponent, base.RComponent
	}
	return &IRI{kind: IRIKindURN, urn: &result}, nil
}
