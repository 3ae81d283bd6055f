package rdf

import (
	"strconv"
	"strings"
)

// HostKind identifies which alternative of the Host sum type is present.
type HostKind uint8

const (
	// HostNamed is a reg-name host (a DNS name or other registered name).
	HostNamed HostKind = iota
	// HostIPv4 is a dotted-quad literal.
	HostIPv4
	// HostIPv6 is a bracketed IPv6 literal.
	HostIPv6
	// HostFuture is an IPvFuture literal ("[v1.something]"), kept opaque.
	HostFuture
)

// Host is RFC 3986 §3.2.2's host production: a reg-name, an IPv4
// address, an IPv6 address, or an IPvFuture literal.
type Host struct {
	kind HostKind
	name string  // HostNamed: decoded, lowercased reg-name. HostFuture: raw bracketed text.
	ipv4 [4]byte // HostIPv4
	ipv6 [16]byte
}

// Kind returns which alternative host holds.
func (h Host) Kind() HostKind { return h.kind }

// NamedHost builds a HostNamed value.
func NamedHost(name string) Host { return Host{kind: HostNamed, name: strings.ToLower(name)} }

// IPv4Host builds a HostIPv4 value from four address bytes.
func IPv4Host(b [4]byte) Host { return Host{kind: HostIPv4, ipv4: b} }

// IPv6Host builds a HostIPv6 value from sixteen address bytes.
func IPv6Host(b [16]byte) Host { return Host{kind: HostIPv6, ipv6: b} }

// FutureHost builds an opaque HostFuture value from its raw bracketed text.
func FutureHost(raw string) Host { return Host{kind: HostFuture, name: raw} }

// Name returns the reg-name text when Kind() == HostNamed.
func (h Host) Name() string { return h.name }

// IPv4Bytes returns the four address bytes when Kind() == HostIPv4.
func (h Host) IPv4Bytes() [4]byte { return h.ipv4 }

// IPv6Bytes returns the sixteen address bytes when Kind() == HostIPv6.
func (h Host) IPv6Bytes() [16]byte { return h.ipv6 }

// String renders h per its kind: a bare reg-name, dotted-quad, or a
// bracketed IPv6/IPvFuture literal.
func (h Host) String() string {
	switch h.kind {
	case HostIPv4:
		return formatIPv4(h.ipv4)
	case HostIPv6:
		return "[" + formatIPv6(h.ipv6) + "]"
	case HostFuture:
		return h.name
	default:
		return h.name
	}
}

// Equal reports whether h and other denote the same host.
func (h Host) Equal(other Host) bool {
	return h.kind == other.kind && h.String() == other.String()
}

// Nid is a URN namespace identifier (RFC 8141 §2). Comparison is
// case-insensitive per RFC 8141 §3, but String preserves the lexical
// case the caller supplied.
type Nid struct {
	raw string
}

// NewNid builds a Nid, preserving raw's case for display.
func NewNid(raw string) Nid { return Nid{raw: raw} }

// String returns the namespace identifier exactly as supplied.
func (n Nid) String() string { return n.raw }

// Lower returns the namespace identifier folded to lowercase, the form
// used for equality and for canonical URN rendering.
func (n Nid) Lower() string { return strings.ToLower(n.raw) }

// Equal compares two Nids case-insensitively.
func (n Nid) Equal(other Nid) bool { return n.Lower() == other.Lower() }

func formatIPv4(b [4]byte) string {
	var s strings.Builder
	for i, o := range b {
		if i > 0 {
			s.WriteByte('.')
		}
		s.WriteString(uitoa(uint(o)))
	}
	return s.String()
}

func formatIPv6(b [16]byte) string {
	// RFC 5952 canonical form: lowercase hex, longest run of zero groups
	// (length >= 2) collapsed to "::", ties broken by leftmost run.
	var groups [8]uint16
	for i := 0; i < 8; i++ {
		groups[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}
	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0
	for i := 0; i < 8; i++ {
		if groups[i] == 0 {
			if curStart == -1 {
				curStart = i
			}
			curLen++
			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
		} else {
			curStart, curLen = -1, 0
		}
	}
	if bestLen < 2 {
		bestStart = -1
	}
	var parts []string
	markerIdx := -1
	i := 0
	for i < 8 {
		if i == bestStart {
			markerIdx = len(parts)
			parts = append(parts, "")
			i += bestLen
			continue
		}
		parts = append(parts, hexNoLeadingZeros(groups[i]))
		i++
	}
	if markerIdx < 0 {
		return strings.Join(parts, ":")
	}
	left := strings.Join(parts[:markerIdx], ":")
	right := strings.Join(parts[markerIdx+1:], ":")
	return left + "::" + right
}

func hexNoLeadingZeros(v uint16) string {
	return strconv.FormatUint(uint64(v), 16)
}

func uitoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
