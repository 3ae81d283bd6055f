package rdf

import "strings"

// PathKind identifies the constructor of a Path node.
type PathKind uint8

const (
	// PathEmpty is the empty path (no leading or trailing slash, no segments).
	PathEmpty PathKind = iota
	// PathSlash is a "/" prepended to a tail path.
	PathSlash
	// PathSegment is a non-empty segment prepended to a tail path.
	PathSegment
)

// Path is a right-recursive list of path constructors: the head of
// the string form is the deepest (innermost) constructor.
// "/a/b" is Segment("b", Slash(Segment("a", Slash(Empty)))): the
// outermost constructor corresponds to the rightmost content in the
// string form, and the innermost (just above Empty) to the leftmost.
// Path values are immutable; every operation below returns a new Path.
type Path struct {
	kind PathKind
	seg  string
	tail *Path
}

// EmptyPath is the zero-length path.
var EmptyPath = &Path{kind: PathEmpty}

// NewSlash prepends a "/" constructor onto tail.
func NewSlash(tail *Path) *Path {
	if tail == nil {
		tail = EmptyPath
	}
	return &Path{kind: PathSlash, tail: tail}
}

// NewSegment prepends a non-empty segment constructor onto tail.
// It panics if seg is empty: an empty segment has no meaning distinct
// from a bare Slash. Every public constructor in this file
// (AppendSegment, AppendString, Prepend, RemoveDotSegments) and the
// parser's parsePathString route
// through here only with already-validated non-empty text.
func NewSegment(seg string, tail *Path) *Path {
	if seg == "" {
		panic("rdf: empty path segment")
	}
	if tail == nil {
		tail = EmptyPath
	}
	return &Path{kind: PathSegment, seg: seg, tail: tail}
}

// Kind returns the constructor of p.
func (p *Path) Kind() PathKind { return p.kind }

// Segment returns the segment string when Kind() == PathSegment.
func (p *Path) Segment() string { return p.seg }

// Tail returns the inner path when Kind() is PathSlash or PathSegment.
func (p *Path) Tail() *Path { return p.tail }

// IsEmpty reports whether p is the empty path.
func (p *Path) IsEmpty() bool { return p.kind == PathEmpty }

// EndsWithSlash reports whether the outermost (newest) constructor is
// PathSlash, i.e. whether the string form of p ends with "/".
func (p *Path) EndsWithSlash() bool { return p.kind == PathSlash }

// StartsWithSlash reports whether the leftmost (oldest) constructor is
// PathSlash, i.e. whether the string form of p begins with "/".
func (p *Path) StartsWithSlash() bool {
	if p.kind == PathEmpty {
		return false
	}
	cur := p
	for cur.tail.kind != PathEmpty {
		cur = cur.tail
	}
	return cur.kind == PathSlash
}

// pathToken is one constructor step read in left-to-right (string) order.
type pathToken struct {
	kind PathKind
	seg  string
}

// tokensLeftToRight returns p's constructors in string order (leftmost
// first), the inverse of p's internal outermost-first storage order.
func (p *Path) tokensLeftToRight() []pathToken {
	var rev []pathToken
	for cur := p; cur.kind != PathEmpty; cur = cur.tail {
		rev = append(rev, pathToken{cur.kind, cur.seg})
	}
	out := make([]pathToken, len(rev))
	for i, t := range rev {
		out[len(rev)-1-i] = t
	}
	return out
}

// String renders p's decoded form left to right, e.g. "/a/b" or "a/b/".
func (p *Path) String() string {
	var b strings.Builder
	for _, t := range p.tokensLeftToRight() {
		switch t.kind {
		case PathSlash:
			b.WriteByte('/')
		case PathSegment:
			b.WriteString(t.seg)
		}
	}
	return b.String()
}

// Render percent-encodes each segment of p for output, using class as
// the per-byte safe set and asURI to select the ASCII ("URI") vs UTF-8
// ("IRI") output form.
func (p *Path) Render(class charClass, asURI bool) string {
	var b strings.Builder
	for _, t := range p.tokensLeftToRight() {
		switch t.kind {
		case PathSlash:
			b.WriteByte('/')
		case PathSegment:
			b.WriteString(pctEncode(t.seg, class, asURI))
		}
	}
	return b.String()
}

// Equal reports whether p and other denote the same decoded string form.
func (p *Path) Equal(other *Path) bool {
	return p.String() == other.String()
}

// Reverse structurally reverses p using an explicit accumulator, so
// arbitrarily deep paths never recurse. Reverse is an involution:
// Reverse(Reverse(p)) == p. The result's string form reads p's segments
// back to front (slash placement mirrors accordingly); it exists chiefly
// as a traversal primitive for algorithms that walk a path from its
// leftmost field, since Path itself is built right-recursively.
func (p *Path) Reverse() *Path {
	acc := EmptyPath
	for cur := p; cur.kind != PathEmpty; cur = cur.tail {
		switch cur.kind {
		case PathSlash:
			acc = NewSlash(acc)
		case PathSegment:
			acc = NewSegment(cur.seg, acc)
		}
	}
	return acc
}

// AppendSegment returns p / s: if s is empty, p is returned unchanged;
// otherwise s becomes the new outermost segment, preceded by a slash
// unless p already ends in one.
func AppendSegment(p *Path, s string) *Path {
	if s == "" {
		return p
	}
	if p.EndsWithSlash() {
		return NewSegment(s, p)
	}
	return NewSegment(s, NewSlash(p))
}

// AppendString concatenates s onto p's terminal segment when p ends in
// PathSegment; otherwise it behaves like AppendSegment.
func AppendString(p *Path, s string) *Path {
	if s == "" {
		return p
	}
	if p.kind == PathSegment {
		return NewSegment(p.seg+s, p.tail)
	}
	return AppendSegment(p, s)
}

// Prepend concatenates so that q precedes p in left-to-right order:
// Prepend(p, q).String() == q.String() + p.String(), collapsing a
// trailing/leading empty path as identity.
func Prepend(p *Path, q *Path) *Path {
	if q.IsEmpty() {
		return p
	}
	if p.IsEmpty() {
		return q
	}
	result := q
	for _, t := range p.tokensLeftToRight() {
		switch t.kind {
		case PathSlash:
			result = NewSlash(result)
		case PathSegment:
			result = NewSegment(t.seg, result)
		}
	}
	return result
}

// pathToFields splits p into its '/'-delimited fields, exactly as
// strings.Split(p.String(), "/") would: n slashes produce n+1 fields,
// with "" standing for an empty field (leading slash, trailing slash,
// or an interior double slash). Adjacent segment constructors (as
// Prepend can produce) join into one field. The empty path yields no
// fields at all.
func pathToFields(p *Path) []string {
	if p.IsEmpty() {
		return nil
	}
	var fields []string
	started := false
	cur := ""
	for _, t := range p.tokensLeftToRight() {
		switch t.kind {
		case PathSegment:
			started = true
			cur += t.seg
		case PathSlash:
			if started {
				fields = append(fields, cur)
			} else {
				fields = append(fields, "")
			}
			started = false
			cur = ""
		}
	}
	if started {
		fields = append(fields, cur)
	} else {
		fields = append(fields, "")
	}
	return fields
}

// fieldsToPath is the inverse of pathToFields.
func fieldsToPath(fields []string) *Path {
	result := EmptyPath
	for i, f := range fields {
		if i > 0 {
			result = NewSlash(result)
		}
		if f != "" {
			result = NewSegment(f, result)
		}
	}
	return result
}

// RemoveDotSegments applies RFC 3986 §5.2.4 dot-segment removal. It
// works over p's '/'-delimited fields (pathToFields/fieldsToPath, a
// tail-iterative representation that avoids recursing over the
// right-recursive Path structure) so that dropping "the previous
// output segment" is an O(1) slice truncation. The result is
// idempotent: RemoveDotSegments() of an already-clean path is a no-op.
func (p *Path) RemoveDotSegments() *Path {
	if p.IsEmpty() {
		return EmptyPath
	}
	fields := pathToFields(p)
	n := len(fields)
	leadingSlash := fields[0] == ""
	trailingSlash := n > 1 && fields[n-1] == ""

	start := 0
	if leadingSlash {
		start = 1
	}
	end := n
	if trailingSlash {
		end = n - 1
	}
	interior := fields[start:end]

	var out []string
	for i, f := range interior {
		last := i == len(interior)-1
		switch f {
		case ".":
			if last {
				trailingSlash = true
			}
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			if last {
				trailingSlash = true
			}
		default:
			out = append(out, f)
		}
	}

	var result []string
	if leadingSlash {
		result = append(result, "")
	}
	result = append(result, out...)
	if trailingSlash {
		result = append(result, "")
	}
	if len(result) == 0 {
		return EmptyPath
	}
	return fieldsToPath(result)
}

// segmentsLeftToRight returns the decoded segment strings of p in
// left-to-right order, ignoring slash placement.
func (p *Path) segmentsLeftToRight() []string {
	toks := p.tokensLeftToRight()
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		if t.kind == PathSegment {
			out = append(out, t.seg)
		}
	}
	return out
}
