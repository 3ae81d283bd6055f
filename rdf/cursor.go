package rdf

import (
	"strconv"
	"strings"
)

// This file is the low-level parser: single-pass, offset-based, and
// panic-free. Every production either succeeds or reports an error: a
// ParseError naming itself and the byte offset at which it gave up, or a
// DomainError for a value that fails a domain check (port range, IPv6
// literal, URN namespace identifier, percent-encoding). Percent-decoding
// happens exactly once, at the production that owns each substring, so a
// literal "/" survives inside a percent-encoded path segment (%2F) while
// a real "/" still delimits segments.

func isSchemeChar(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '+' || b == '-' || b == '.'
}

// splitScheme recognizes RFC 3986 §3.1's scheme production as a prefix
// of s, returning the raw text after its terminating ":".
func splitScheme(s string) (scheme, rest string, ok bool) {
	if len(s) == 0 || !isAlpha(s[0]) {
		return "", "", false
	}
	i := 1
	for i < len(s) && isSchemeChar(s[i]) {
		i++
	}
	if i < len(s) && s[i] == ':' {
		return s[:i], s[i+1:], true
	}
	return "", "", false
}

// indexAny returns the offset of the first byte of s found in cutset,
// or len(s) if none occurs.
func indexAny(s, cutset string) int {
	idx := strings.IndexAny(s, cutset)
	if idx < 0 {
		return len(s)
	}
	return idx
}

// ParseIRI parses raw per RFC 3987 (IRI) / RFC 3986 (URI) / RFC 8141
// (URN), returning a Url, a Urn (recognized by a case-insensitive
// "urn" scheme), or a RelativeIri when raw carries no scheme at all.
func ParseIRI(raw string) (*IRI, error) {
	scheme, rest, ok := splitScheme(raw)
	if !ok {
		rel, err := parseRelativeIri(raw)
		if err != nil {
			return nil, err
		}
		return &IRI{kind: IRIKindRelative, rel: rel}, nil
	}
	if strings.EqualFold(scheme, "urn") {
		urn, err := parseURNBody(rest)
		if err != nil {
			return nil, err
		}
		return &IRI{kind: IRIKindURN, urn: urn}, nil
	}
	url, err := parseURLBody(scheme, rest)
	if err != nil {
		return nil, err
	}
	return &IRI{kind: IRIKindURL, url: url}, nil
}

// ParseURL parses raw and requires it to be a generic-syntax absolute IRI.
func ParseURL(raw string) (*Url, error) {
	i, err := ParseIRI(raw)
	if err != nil {
		return nil, err
	}
	u, ok := i.AsURL()
	if !ok {
		return nil, &DomainError{Kind: "NotURL", Msg: "not a URL: " + raw}
	}
	return u, nil
}

// ParseURN parses raw and requires it to be a urn: identifier.
func ParseURN(raw string) (*Urn, error) {
	i, err := ParseIRI(raw)
	if err != nil {
		return nil, err
	}
	u, ok := i.AsURN()
	if !ok {
		return nil, &DomainError{Kind: "NotURN", Msg: "not a URN: " + raw}
	}
	return u, nil
}

// defaultPorts lists the well-known scheme -> default-port mappings
// whose explicit presence in a URL is redundant and so normalized away.
var defaultPorts = map[string]int{
	"ftp": 21, "ssh": 22, "telnet": 23, "smtp": 25, "domain": 53,
	"tftp": 69, "http": 80, "ws": 80, "pop3": 110, "nntp": 119,
	"imap": 143, "snmp": 161, "ldap": 389, "https": 443, "wss": 443,
	"imaps": 993, "nfs": 2049,
}

func parseURLBody(scheme, rest string) (*Url, error) {
	u := &Url{Scheme: strings.ToLower(scheme)}
	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		end := indexAny(rest, "/?#")
		authority := rest[:end]
		rest = rest[end:]
		u.HasAuthority = true
		userInfo, hasUserInfo, host, hasPort, port, err := parseAuthority(authority)
		if err != nil {
			return nil, err
		}
		u.HasUserInfo, u.UserInfo = hasUserInfo, userInfo
		u.Host = host
		u.HasPort, u.Port = hasPort, port
	}

	pathEnd := indexAny(rest, "?#")
	path, err := parsePathString(rest[:pathEnd])
	if err != nil {
		return nil, err
	}
	u.Path = path
	rest = rest[pathEnd:]

	if strings.HasPrefix(rest, "?") {
		rest = rest[1:]
		qEnd := indexAny(rest, "#")
		q, err := parseQueryBody(rest[:qEnd])
		if err != nil {
			return nil, err
		}
		u.HasQuery, u.Query = true, q
		rest = rest[qEnd:]
	}

	if strings.HasPrefix(rest, "#") {
		frag, err := pctDecode(rest[1:])
		if err != nil {
			return nil, err
		}
		u.HasFragment, u.Fragment = true, frag
	}

	if def, ok := defaultPorts[u.Scheme]; ok && u.HasPort && u.Port == def {
		u.HasPort = false
		u.Port = 0
	}
	return u, nil
}

func parseRelativeIri(raw string) (*RelativeIri, error) {
	r := &RelativeIri{}
	rest := raw
	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		end := indexAny(rest, "/?#")
		authority := rest[:end]
		rest = rest[end:]
		r.HasAuthority = true
		userInfo, hasUserInfo, host, hasPort, port, err := parseAuthority(authority)
		if err != nil {
			return nil, err
		}
		r.HasUserInfo, r.UserInfo = hasUserInfo, userInfo
		r.HasHost, r.Host = true, host
		r.HasPort, r.Port = hasPort, port
	}

	pathEnd := indexAny(rest, "?#")
	path, err := parsePathString(rest[:pathEnd])
	if err != nil {
		return nil, err
	}
	r.Path = path
	rest = rest[pathEnd:]

	if strings.HasPrefix(rest, "?") {
		rest = rest[1:]
		qEnd := indexAny(rest, "#")
		q, err := parseQueryBody(rest[:qEnd])
		if err != nil {
			return nil, err
		}
		r.HasQuery, r.Query = true, q
		rest = rest[qEnd:]
	}

	if strings.HasPrefix(rest, "#") {
		frag, err := pctDecode(rest[1:])
		if err != nil {
			return nil, err
		}
		r.HasFragment, r.Fragment = true, frag
	}
	return r, nil
}

// parsePathString decodes a raw (not yet percent-decoded) path into a
// Path, decoding each '/'-delimited field independently so a literal
// "%2F" inside a segment is not mistaken for a separator.
func parsePathString(raw string) (*Path, error) {
	fields := strings.Split(raw, "/")
	decoded := make([]string, len(fields))
	for i, f := range fields {
		d, err := pctDecode(f)
		if err != nil {
			return nil, err
		}
		decoded[i] = d
	}
	return fieldsToPath(decoded), nil
}

// parseAuthority splits an authority string ("[userinfo@]host[:port]")
// into its decoded parts.
func parseAuthority(authority string) (userInfo string, hasUserInfo bool, host Host, hasPort bool, port int, err error) {
	hostport := authority
	if at := strings.LastIndexByte(authority, '@'); at >= 0 {
		hasUserInfo = true
		if userInfo, err = pctDecode(authority[:at]); err != nil {
			return
		}
		hostport = authority[at+1:]
	}

	if strings.HasPrefix(hostport, "[") {
		closeIdx := strings.IndexByte(hostport, ']')
		if closeIdx < 0 {
			err = parseErrAt("IP-literal", authority, 0)
			return
		}
		host, err = parseIPLiteral(hostport[1:closeIdx])
		if err != nil {
			return
		}
		remainder := hostport[closeIdx+1:]
		if strings.HasPrefix(remainder, ":") && remainder != ":" {
			hasPort = true
			port, err = parsePortString(remainder[1:])
		}
		return
	}

	idx := strings.IndexByte(hostport, ':')
	hostPart := hostport
	if idx >= 0 {
		hostPart = hostport[:idx]
		if portPart := hostport[idx+1:]; portPart != "" {
			hasPort = true
			if port, err = parsePortString(portPart); err != nil {
				return
			}
		}
	}
	host, err = parseNonBracketHost(hostPart)
	return
}

func parsePortString(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 65535 {
		return 0, &DomainError{Kind: "Port", Msg: "invalid port: " + s}
	}
	return n, nil
}

func parseIPLiteral(lit string) (Host, error) {
	if lit == "" {
		return Host{}, &DomainError{Kind: "IPv6", Msg: "empty IP-literal"}
	}
	if lit[0] == 'v' || lit[0] == 'V' {
		return FutureHost("[" + lit + "]"), nil
	}
	b, ok := parseIPv6(lit)
	if !ok {
		return Host{}, &DomainError{Kind: "IPv6", Msg: "invalid IPv6 literal: " + lit}
	}
	return IPv6Host(b), nil
}

func parseNonBracketHost(s string) (Host, error) {
	if b, ok := parseIPv4(s); ok {
		return IPv4Host(b), nil
	}
	decoded, err := pctDecode(s)
	if err != nil {
		return Host{}, err
	}
	return NamedHost(decoded), nil
}

func parseIPv4(s string) ([4]byte, bool) {
	var out [4]byte
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return out, false
	}
	for i, p := range parts {
		if p == "" || len(p) > 3 {
			return out, false
		}
		n := 0
		for j := 0; j < len(p); j++ {
			if !isDigit(p[j]) {
				return out, false
			}
			n = n*10 + int(p[j]-'0')
		}
		if n > 255 {
			return out, false
		}
		out[i] = byte(n)
	}
	return out, true
}

// parseIPv6 accepts RFC 3986/4291 IPv6 literal text (with optional "::"
// compression and an optional trailing embedded IPv4 quad).
func parseIPv6(s string) ([16]byte, bool) {
	var zero [16]byte
	if s == "" {
		return zero, false
	}

	var headText, tailText string
	hasDouble := false
	if idx := strings.Index(s, "::"); idx >= 0 {
		hasDouble = true
		headText = s[:idx]
		tailText = s[idx+2:]
		if strings.Contains(tailText, "::") {
			return zero, false
		}
	} else {
		headText = s
	}

	var headGroups, tailGroups []string
	if headText != "" {
		headGroups = strings.Split(headText, ":")
	}
	if hasDouble && tailText != "" {
		tailGroups = strings.Split(tailText, ":")
	}

	expandEmbeddedIPv4 := func(groups []string) ([]string, bool) {
		if len(groups) == 0 {
			return groups, true
		}
		last := groups[len(groups)-1]
		if !strings.Contains(last, ".") {
			return groups, true
		}
		v4, ok := parseIPv4(last)
		if !ok {
			return nil, false
		}
		hi := strconv.FormatUint(uint64(v4[0])<<8|uint64(v4[1]), 16)
		lo := strconv.FormatUint(uint64(v4[2])<<8|uint64(v4[3]), 16)
		out := append(append([]string{}, groups[:len(groups)-1]...), hi, lo)
		return out, true
	}

	var ok bool
	if tailGroups, ok = expandEmbeddedIPv4(tailGroups); !ok {
		return zero, false
	}
	if !hasDouble {
		if headGroups, ok = expandEmbeddedIPv4(headGroups); !ok {
			return zero, false
		}
	}

	var full []string
	if hasDouble {
		missing := 8 - (len(headGroups) + len(tailGroups))
		if missing < 0 {
			return zero, false
		}
		full = append(full, headGroups...)
		for i := 0; i < missing; i++ {
			full = append(full, "0")
		}
		full = append(full, tailGroups...)
	} else {
		full = headGroups
	}
	if len(full) != 8 {
		return zero, false
	}

	var out [16]byte
	for i, g := range full {
		if g == "" || len(g) > 4 {
			return zero, false
		}
		v, err := strconv.ParseUint(g, 16, 16)
		if err != nil {
			return zero, false
		}
		out[2*i] = byte(v >> 8)
		out[2*i+1] = byte(v)
	}
	return out, true
}

// URN parsing (RFC 8141 §2): "urn:" nid ":" nss [ "?+" rcomp ]
// [ "?=" qcomp ] [ "#" fragment ]. The "urn:" scheme prefix has already
// been consumed by ParseIRI; rest starts right after it.
func parseURNBody(rest string) (*Urn, error) {
	colon := strings.IndexByte(rest, ':')
	if colon <= 0 {
		return nil, parseErrAt("urn-nid", rest, 0)
	}
	nid := rest[:colon]
	if !isValidNid(nid) {
		return nil, &DomainError{Kind: "URNNid", Msg: "invalid namespace identifier: " + nid}
	}
	rest = rest[colon+1:]

	nssEnd := len(rest)
	for _, delim := range []string{"?+", "?=", "#"} {
		if idx := strings.Index(rest, delim); idx >= 0 && idx < nssEnd {
			nssEnd = idx
		}
	}
	if nssEnd == 0 {
		return nil, parseErrAt("urn-nss", rest, 0)
	}
	nss, err := pctDecode(rest[:nssEnd])
	if err != nil {
		return nil, err
	}
	u := &Urn{Nid: NewNid(nid), Nss: nss}
	rest = rest[nssEnd:]

	// RFC 8141 §2's grammar orders r ("?+") before q ("?="), but some
	// producers emit q before r; this parser accepts either order on
	// input and always re-emits r before q on output (Urn.render already
	// does the latter). Whichever delimiter comes first here is parsed
	// first; its own body ends at whichever of the other delimiter or
	// "#" comes next.
	for i := 0; i < 2 && (strings.HasPrefix(rest, "?+") || strings.HasPrefix(rest, "?=")); i++ {
		switch {
		case strings.HasPrefix(rest, "?+"):
			rest = rest[2:]
			end := indexAny(rest, "#")
			if i := strings.Index(rest, "?="); i >= 0 && i < end {
				end = i
			}
			if end == 0 {
				return nil, parseErrAt("urn-rcomponent", rest, 0)
			}
			r, err := pctDecode(rest[:end])
			if err != nil {
				return nil, err
			}
			u.HasRComponent, u.RComponent = true, r
			rest = rest[end:]
		case strings.HasPrefix(rest, "?="):
			rest = rest[2:]
			end := indexAny(rest, "#")
			if i := strings.Index(rest, "?+"); i >= 0 && i < end {
				end = i
			}
			if end == 0 {
				return nil, parseErrAt("urn-qcomponent", rest, 0)
			}
			q, err := pctDecode(rest[:end])
			if err != nil {
				return nil, err
			}
			u.HasQComponent, u.QComponent = true, q
			rest = rest[end:]
		}
	}
	if strings.HasPrefix(rest, "#") {
		f, err := pctDecode(rest[1:])
		if err != nil {
			return nil, err
		}
		u.HasFragment, u.Fragment = true, f
	}
	return u, nil
}

func isValidNid(s string) bool {
	if len(s) == 0 || len(s) > 31 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(isAlpha(c) || isDigit(c) || c == '-') {
			return false
		}
	}
	return isAlpha(s[0]) || isDigit(s[0])
}
