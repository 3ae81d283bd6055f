package rdf

import "sort"

// Graph is an immutable, duplicate-free set of Triples. Every mutating
// operation (Add, Remove, Union, Difference) returns a new Graph; the
// receiver is left untouched.
type Graph struct {
	triples []Triple
}

// EmptyGraph is the graph with no triples.
var EmptyGraph = &Graph{}

// NewGraph builds a Graph from ts, discarding exact duplicates.
func NewGraph(ts []Triple) *Graph {
	g := &Graph{}
	for _, t := range ts {
		g = g.Add(t)
	}
	return g
}

func termKey(t Term) string {
	switch t.Kind() {
	case TermIRI:
		return "I" + t.String()
	case TermBlankNode:
		return "B" + t.String()
	default:
		return "L" + t.String()
	}
}

func tripleKey(t Triple) string {
	return termKey(t.Subject) + " " + t.Predicate.String() + " " + termKey(t.Object)
}

// Len returns the number of triples in g.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns g's triples in an unspecified but stable order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// Contains reports whether t (compared with Triple.Equal) is in g.
func (g *Graph) Contains(t Triple) bool {
	key := tripleKey(t)
	for _, cur := range g.triples {
		if tripleKey(cur) == key {
			return true
		}
	}
	return false
}

// Add returns a new Graph with t added, or g unchanged if t is already present.
func (g *Graph) Add(t Triple) *Graph {
	if g.Contains(t) {
		return g
	}
	out := make([]Triple, len(g.triples), len(g.triples)+1)
	copy(out, g.triples)
	out = append(out, t)
	return &Graph{triples: out}
}

// Remove returns a new Graph with every triple equal to t removed.
func (g *Graph) Remove(t Triple) *Graph {
	key := tripleKey(t)
	out := make([]Triple, 0, len(g.triples))
	for _, cur := range g.triples {
		if tripleKey(cur) != key {
			out = append(out, cur)
		}
	}
	return &Graph{triples: out}
}

// Union returns the triples present in g or other, deduplicated.
func (g *Graph) Union(other *Graph) *Graph {
	result := g
	for _, t := range other.triples {
		result = result.Add(t)
	}
	return result
}

// Difference returns the triples present in g but not in other.
func (g *Graph) Difference(other *Graph) *Graph {
	out := &Graph{}
	for _, t := range g.triples {
		if !other.Contains(t) {
			out = out.Add(t)
		}
	}
	return out
}

func dedupTerms(collect func(Triple) Term, triples []Triple) []Term {
	seen := make(map[string]bool)
	var out []Term
	for _, t := range triples {
		term := collect(t)
		key := termKey(term)
		if !seen[key] {
			seen[key] = true
			out = append(out, term)
		}
	}
	return out
}

// Subjects returns the distinct subject terms appearing in g.
func (g *Graph) Subjects() []Term {
	return dedupTerms(func(t Triple) Term { return t.Subject }, g.triples)
}

// Predicates returns the distinct predicates appearing in g.
func (g *Graph) Predicates() []IriNode {
	seen := make(map[string]bool)
	var out []IriNode
	for _, t := range g.triples {
		key := t.Predicate.String()
		if !seen[key] {
			seen[key] = true
			out = append(out, t.Predicate)
		}
	}
	return out
}

// Objects returns the distinct object terms appearing in g.
func (g *Graph) Objects() []Term {
	return dedupTerms(func(t Triple) Term { return t.Object }, g.triples)
}

// SubjectsMatching returns the distinct subjects of triples whose
// predicate and object equal predicate and object.
func (g *Graph) SubjectsMatching(predicate IriNode, object Term) []Term {
	return dedupTerms(func(t Triple) Term { return t.Subject }, g.filter(func(t Triple) bool {
		return t.Predicate.Equal(predicate) && termEqual(t.Object, object)
	}))
}

// SubjectsBy returns the distinct subjects for which pred returns true.
func (g *Graph) SubjectsBy(pred func(Term) bool) []Term {
	return dedupTerms(func(t Triple) Term { return t.Subject }, g.filter(func(t Triple) bool {
		return pred(t.Subject)
	}))
}

// PredicatesMatching returns the distinct predicates of triples whose
// subject and object equal subject and object.
func (g *Graph) PredicatesMatching(subject Term, object Term) []IriNode {
	var out []IriNode
	seen := make(map[string]bool)
	for _, t := range g.filter(func(t Triple) bool {
		return termEqual(t.Subject, subject) && termEqual(t.Object, object)
	}) {
		key := t.Predicate.String()
		if !seen[key] {
			seen[key] = true
			out = append(out, t.Predicate)
		}
	}
	return out
}

// PredicatesBy returns the distinct predicates for which pred returns true.
func (g *Graph) PredicatesBy(pred func(IriNode) bool) []IriNode {
	var out []IriNode
	seen := make(map[string]bool)
	for _, t := range g.triples {
		if !pred(t.Predicate) {
			continue
		}
		key := t.Predicate.String()
		if !seen[key] {
			seen[key] = true
			out = append(out, t.Predicate)
		}
	}
	return out
}

// ObjectsMatching returns the distinct objects of triples whose subject
// and predicate equal subject and predicate.
func (g *Graph) ObjectsMatching(subject Term, predicate IriNode) []Term {
	return dedupTerms(func(t Triple) Term { return t.Object }, g.filter(func(t Triple) bool {
		return termEqual(t.Subject, subject) && t.Predicate.Equal(predicate)
	}))
}

// ObjectsBy returns the distinct objects for which pred returns true.
func (g *Graph) ObjectsBy(pred func(Term) bool) []Term {
	return dedupTerms(func(t Triple) Term { return t.Object }, g.filter(func(t Triple) bool {
		return pred(t.Object)
	}))
}

func (g *Graph) filter(keep func(Triple) bool) []Triple {
	var out []Triple
	for _, t := range g.triples {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// adjacency builds a subject->objects directed adjacency map over g's
// IRI/blank-node vertices. A triple whose object is a Literal
// contributes no edge and no vertex for that object: literals are
// leaf values, never graph nodes, so they never join two subjects
// into the same connected component or close a cycle.
func (g *Graph) adjacency() map[string][]string {
	adj := make(map[string][]string)
	for _, t := range g.triples {
		sKey := termKey(t.Subject)
		if _, ok := adj[sKey]; !ok {
			adj[sKey] = nil
		}
		if t.Object.Kind() == TermLiteral {
			continue
		}
		oKey := termKey(t.Object)
		adj[sKey] = append(adj[sKey], oKey)
		if _, ok := adj[oKey]; !ok {
			adj[oKey] = nil
		}
	}
	return adj
}

// IsCyclic reports whether g's subject/object graph contains a directed
// cycle, including a self-loop (a triple whose subject equals its
// object). Traversal is an explicit worklist, not recursion, so it
// tolerates arbitrarily large graphs.
func (g *Graph) IsCyclic() bool {
	adj := g.adjacency()
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(adj))
	for v := range adj {
		color[v] = white
	}

	type frame struct {
		vertex string
		edges  []string
		idx    int
	}

	for start := range adj {
		if color[start] != white {
			continue
		}
		stack := []*frame{{vertex: start, edges: adj[start]}}
		color[start] = gray
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.idx >= len(top.edges) {
				color[top.vertex] = black
				stack = stack[:len(stack)-1]
				continue
			}
			next := top.edges[top.idx]
			top.idx++
			switch color[next] {
			case white:
				color[next] = gray
				stack = append(stack, &frame{vertex: next, edges: adj[next]})
			case gray:
				return true
			}
		}
	}
	return false
}

// IsAcyclic is the negation of IsCyclic.
func (g *Graph) IsAcyclic() bool { return !g.IsCyclic() }

// IsConnected reports whether g's terms form a single connected
// component when edges are treated as undirected, over the same
// IRI/blank-node vertex set IsCyclic uses: a triple's literal object
// contributes no vertex at all, so a graph whose subjects never repeat
// and never appear as an object is disconnected once it has two or
// more triples. A graph with fewer than two vertices is trivially
// connected.
func (g *Graph) IsConnected() bool {
	undirected := make(map[string][]string)
	ensure := func(v string) {
		if _, ok := undirected[v]; !ok {
			undirected[v] = nil
		}
	}
	addEdge := func(a, b string) {
		undirected[a] = append(undirected[a], b)
		undirected[b] = append(undirected[b], a)
	}
	for _, t := range g.triples {
		sKey := termKey(t.Subject)
		ensure(sKey)
		if t.Object.Kind() == TermLiteral {
			continue
		}
		addEdge(sKey, termKey(t.Object))
	}
	if len(undirected) < 2 {
		return true
	}

	visited := make(map[string]bool, len(undirected))
	var start string
	for v := range undirected {
		start = v
		break
	}
	queue := []string{start}
	visited[start] = true
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, n := range undirected[v] {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited) == len(undirected)
}

// Equal reports whether g and other contain the same triples, order
// and internal representation aside.
func (g *Graph) Equal(other *Graph) bool {
	if len(g.triples) != len(other.triples) {
		return false
	}
	a := make([]string, len(g.triples))
	for i, t := range g.triples {
		a[i] = tripleKey(t)
	}
	b := make([]string, len(other.triples))
	for i, t := range other.triples {
		b[i] = tripleKey(t)
	}
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
