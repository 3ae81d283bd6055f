package rdf

import "sort"

// Query is an immutable sorted multimap: a query string decomposes into
// key/value pairs (RFC 3986 §3.4 leaves the internal structure of a query
// to the scheme, but "k=v" pairs joined by "&" is the near-universal
// convention this type captures). Keys are sorted, and each key's values
// are sorted too, so two Querys built from differently-ordered pairs that
// carry the same multiset compare and serialize identically.
type Query struct {
	// pairs maps each key to its sorted, duplicate-free value list.
	pairs map[string][]string
	keys  []string // sorted, duplicate-free
}

// EmptyQuery is the query with no pairs.
var EmptyQuery = &Query{}

// NewQuery builds a Query from an ordered list of key/value pairs,
// coalescing an exact (key, value) duplicate into a single pair (RFC
// 3986 §3.4's query component has no ordering or multiplicity of its
// own; this package treats it as a set of pairs) and normalizing key
// and value order canonically.
func NewQuery(pairs [][2]string) *Query {
	if len(pairs) == 0 {
		return EmptyQuery
	}
	seen := make(map[[2]string]bool, len(pairs))
	m := make(map[string][]string, len(pairs))
	for _, kv := range pairs {
		if seen[kv] {
			continue
		}
		seen[kv] = true
		m[kv[0]] = append(m[kv[0]], kv[1])
	}
	keys := make([]string, 0, len(m))
	for k, vs := range m {
		sort.Strings(vs)
		m[k] = vs
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Query{pairs: m, keys: keys}
}

// parseQueryBody splits a raw (not yet percent-decoded) "k=v&k2=v2" body
// on its structural "&" and "=" delimiters, percent-decodes each key and
// value individually, and returns NewQuery's canonical form. A pair with
// no "=" is treated as a key with an empty-string value, matching how
// forms commonly encode boolean flags.
func parseQueryBody(body string) (*Query, error) {
	if body == "" {
		return EmptyQuery, nil
	}
	var pairs [][2]string
	start := 0
	for i := 0; i <= len(body); i++ {
		if i == len(body) || body[i] == '&' {
			if i > start {
				seg := body[start:i]
				var rawKey, rawVal string
				if eq := indexByte(seg, '='); eq >= 0 {
					rawKey, rawVal = seg[:eq], seg[eq+1:]
				} else {
					rawKey = seg
				}
				k, err := pctDecode(rawKey)
				if err != nil {
					return nil, err
				}
				v, err := pctDecode(rawVal)
				if err != nil {
					return nil, err
				}
				pairs = append(pairs, [2]string{k, v})
			}
			start = i + 1
		}
	}
	return NewQuery(pairs), nil
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether q has no pairs.
func (q *Query) IsEmpty() bool { return q == nil || len(q.keys) == 0 }

// Keys returns q's keys in sorted order.
func (q *Query) Keys() []string {
	if q == nil {
		return nil
	}
	out := make([]string, len(q.keys))
	copy(out, q.keys)
	return out
}

// Values returns the sorted values for key, or nil if key is absent.
func (q *Query) Values(key string) []string {
	if q == nil {
		return nil
	}
	vs := q.pairs[key]
	if vs == nil {
		return nil
	}
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}

// Get returns the first (lexicographically smallest) value for key.
func (q *Query) Get(key string) (string, bool) {
	vs := q.Values(key)
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Has reports whether key is present.
func (q *Query) Has(key string) bool {
	if q == nil {
		return false
	}
	_, ok := q.pairs[key]
	return ok
}

// With returns a new Query with key=value added, preserving existing
// pairs (q is not mutated).
func (q *Query) With(key, value string) *Query {
	pairs := q.toPairs()
	pairs = append(pairs, [2]string{key, value})
	return NewQuery(pairs)
}

// Without returns a new Query with every pair for key removed.
func (q *Query) Without(key string) *Query {
	pairs := q.toPairs()
	out := pairs[:0:0]
	for _, kv := range pairs {
		if kv[0] != key {
			out = append(out, kv)
		}
	}
	return NewQuery(out)
}

func (q *Query) toPairs() [][2]string {
	if q.IsEmpty() {
		return nil
	}
	var pairs [][2]string
	for _, k := range q.keys {
		for _, v := range q.pairs[k] {
			pairs = append(pairs, [2]string{k, v})
		}
	}
	return pairs
}

// String renders q in canonical "k=v&k2=v2" form: keys sorted, each
// key's values sorted, joined with "&". Equal Querys always render
// identically regardless of original pair order.
func (q *Query) String() string {
	return q.Render(queryClass, false)
}

// Render is String with percent-encoding applied per pctEncode's class
// and asURI parameters, for embedding in an as_uri/as_string IRI. An
// empty value is preserved as a bare key (no trailing "="), matching
// how a flag like "?debug" round-trips without inventing a value.
func (q *Query) Render(class charClass, asURI bool) string {
	if q.IsEmpty() {
		return ""
	}
	var b []byte
	for _, k := range q.keys {
		for _, v := range q.pairs[k] {
			if len(b) > 0 {
				b = append(b, '&')
			}
			b = append(b, pctEncode(k, class, asURI)...)
			if v != "" {
				b = append(b, '=')
				b = append(b, pctEncode(v, class, asURI)...)
			}
		}
	}
	return string(b)
}

// Equal reports whether q and other carry the same key/value multiset.
func (q *Query) Equal(other *Query) bool {
	return q.String() == other.String()
}
