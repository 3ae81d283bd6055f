package rdf

import "strings"

// IRIKind identifies which alternative of the IRI sum type is present.
type IRIKind uint8

const (
	// IRIKindURL is a generic-syntax absolute IRI (scheme + hier-part).
	IRIKindURL IRIKind = iota
	// IRIKindURN is an RFC 8141 urn: identifier.
	IRIKindURN
	// IRIKindRelative is a scheme-less IRI reference.
	IRIKindRelative
)

// IRI is a sum type over the three shapes an IRI reference can take:
// an absolute IRI is either a generic Url or a Urn, and a bare IRI
// reference with no scheme is a RelativeIri. Values are immutable
// once constructed.
type IRI struct {
	kind IRIKind
	url  *Url
	urn  *Urn
	rel  *RelativeIri
}

// Kind reports which alternative i holds.
func (i *IRI) Kind() IRIKind { return i.kind }

// IsURL reports whether i is a generic-syntax absolute IRI.
func (i *IRI) IsURL() bool { return i.kind == IRIKindURL }

// IsURN reports whether i is a urn: identifier.
func (i *IRI) IsURN() bool { return i.kind == IRIKindURN }

// IsRelative reports whether i has no scheme.
func (i *IRI) IsRelative() bool { return i.kind == IRIKindRelative }

// IsAbsolute reports whether i carries a scheme (Url or Urn).
func (i *IRI) IsAbsolute() bool { return !i.IsRelative() }

// AsURL returns the Url payload and true when i.IsURL().
func (i *IRI) AsURL() (*Url, bool) {
	if i.kind != IRIKindURL {
		return nil, false
	}
	return i.url, true
}

// AsURN returns the Urn payload and true when i.IsURN().
func (i *IRI) AsURN() (*Urn, bool) {
	if i.kind != IRIKindURN {
		return nil, false
	}
	return i.urn, true
}

// AsRelative returns the RelativeIri payload and true when i.IsRelative().
func (i *IRI) AsRelative() (*RelativeIri, bool) {
	if i.kind != IRIKindRelative {
		return nil, false
	}
	return i.rel, true
}

// Fragment returns i's fragment (decoded) and whether one was present.
func (i *IRI) Fragment() (string, bool) {
	switch i.kind {
	case IRIKindURL:
		return i.url.Fragment, i.url.HasFragment
	case IRIKindURN:
		return i.urn.Fragment, i.urn.HasFragment
	default:
		return i.rel.Fragment, i.rel.HasFragment
	}
}

// Path returns i's path component for a Url or a RelativeIri. A Urn
// holds its namespace-specific string as plain text (Urn.Nss), not as a
// Path, so Path returns nil for a Urn.
func (i *IRI) Path() *Path {
	switch i.kind {
	case IRIKindURL:
		return i.url.Path
	case IRIKindRelative:
		return i.rel.Path
	default:
		return nil
	}
}

// AsString renders i in decoded ("IRI") form: percent-encoding is kept
// only where required for delimiter safety, and non-ASCII bytes are
// copied through as UTF-8.
func (i *IRI) AsString() string { return i.render(false) }

// AsURI renders i in ASCII-only ("URI") form: every non-ASCII byte and
// every byte outside the relevant safe set is percent-encoded.
func (i *IRI) AsURI() string { return i.render(true) }

// String is an alias for AsString, so an IRI satisfies fmt.Stringer
// with the more commonly wanted (readable) form.
func (i *IRI) String() string { return i.AsString() }

func (i *IRI) render(asURI bool) string {
	switch i.kind {
	case IRIKindURL:
		return i.url.render(asURI)
	case IRIKindURN:
		return i.urn.render(asURI)
	default:
		return i.rel.render(asURI)
	}
}

// Equal reports whether i and other render identically in decoded form.
func (i *IRI) Equal(other *IRI) bool {
	return i.AsString() == other.AsString()
}

// Url is the generic RFC 3986 hier-part form of an absolute IRI:
// scheme ":" [ "//" authority ] path [ "?" query ] [ "#" fragment ].
type Url struct {
	Scheme        string
	HasAuthority  bool
	HasUserInfo   bool
	UserInfo      string
	Host          Host
	HasPort       bool
	Port          int
	Path          *Path
	HasQuery      bool
	Query         *Query
	HasFragment   bool
	Fragment      string
}

func (u *Url) render(asURI bool) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(u.Scheme))
	b.WriteByte(':')
	if u.HasAuthority {
		b.WriteString("//")
		if u.HasUserInfo {
			b.WriteString(pctEncode(u.UserInfo, userInfoClass, asURI))
			b.WriteByte('@')
		}
		b.WriteString(renderHost(u.Host, asURI))
		if u.HasPort {
			b.WriteByte(':')
			b.WriteString(uitoa(uint(u.Port)))
		}
	}
	b.WriteString(u.Path.Render(pcharClass, asURI))
	if u.HasQuery {
		b.WriteByte('?')
		b.WriteString(u.Query.Render(queryClass, asURI))
	}
	if u.HasFragment {
		b.WriteByte('#')
		b.WriteString(pctEncode(u.Fragment, fragmentClass, asURI))
	}
	return b.String()
}

func renderHost(h Host, asURI bool) string {
	if h.Kind() == HostNamed {
		return pctEncode(h.Name(), namedHostClass, asURI)
	}
	return h.String()
}

// Urn is an RFC 8141 URN: "urn:" nid ":" nss [ "?+" rComponent ]
// [ "?=" qComponent ] [ "#" fragment ].
type Urn struct {
	Nid             Nid
	Nss             string
	HasRComponent   bool
	RComponent      string
	HasQComponent   bool
	QComponent      string
	HasFragment     bool
	Fragment        string
}

func (u *Urn) render(asURI bool) string {
	var b strings.Builder
	b.WriteString("urn:")
	b.WriteString(u.Nid.Lower())
	b.WriteByte(':')
	b.WriteString(pctEncode(u.Nss, nssClass, asURI))
	if u.HasRComponent {
		b.WriteString("?+")
		b.WriteString(pctEncode(u.RComponent, nssClass, asURI))
	}
	if u.HasQComponent {
		b.WriteString("?=")
		b.WriteString(pctEncode(u.QComponent, nssClass, asURI))
	}
	if u.HasFragment {
		b.WriteByte('#')
		b.WriteString(pctEncode(u.Fragment, fragmentClass, asURI))
	}
	return b.String()
}

// Component is a read-only view over a Urn's post-nss structure,
// preferring named accessors over exposing the sum-type payload
// fields directly.
type Component struct {
	urn *Urn
}

// AsComponent returns the Component accessor view for a Urn.
func (u *Urn) AsComponent() Component { return Component{urn: u} }

// Nss returns the URN's decoded namespace-specific string.
func (c Component) Nss() string { return c.urn.Nss }

// RComponent returns the URN's decoded r-component and whether one was present.
func (c Component) RComponent() (string, bool) { return c.urn.RComponent, c.urn.HasRComponent }

// QComponent returns the URN's decoded q-component and whether one was present.
func (c Component) QComponent() (string, bool) { return c.urn.QComponent, c.urn.HasQComponent }

// RelativeIri is an IRI reference with no scheme: it borrows the
// generic hier-part grammar (authority/path/query/fragment) minus the
// scheme, per RFC 3986 §4.2.
type RelativeIri struct {
	HasAuthority bool
	HasUserInfo  bool
	UserInfo     string
	Host         Host
	HasHost      bool
	HasPort      bool
	Port         int
	Path         *Path
	HasQuery     bool
	Query        *Query
	HasFragment  bool
	Fragment     string
}

func (r *RelativeIri) render(asURI bool) string {
	var b strings.Builder
	if r.HasAuthority {
		b.WriteString("//")
		if r.HasUserInfo {
			b.WriteString(pctEncode(r.UserInfo, userInfoClass, asURI))
			b.WriteByte('@')
		}
		if r.HasHost {
			b.WriteString(renderHost(r.Host, asURI))
		}
		if r.HasPort {
			b.WriteByte(':')
			b.WriteString(uitoa(uint(r.Port)))
		}
	}
	b.WriteString(r.Path.Render(pcharClass, asURI))
	if r.HasQuery {
		b.WriteByte('?')
		b.WriteString(r.Query.Render(queryClass, asURI))
	}
	if r.HasFragment {
		b.WriteByte('#')
		b.WriteString(pctEncode(r.Fragment, fragmentClass, asURI))
	}
	return b.String()
}
