package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iriTerm(t *testing.T, raw string) IriNode {
	t.Helper()
	n, err := NewIriNode(mustParseIRI(raw))
	require.NoError(t, err)
	return n
}

func TestGraph_AddDeduplicatesAndRemove(t *testing.T) {
	a := iriTerm(t, "http://example.com/a")
	b := iriTerm(t, "http://example.com/b")
	p := RDFType

	tr := Triple{Subject: a, Predicate: p, Object: b}
	g := EmptyGraph.Add(tr).Add(tr)
	assert.Equal(t, 1, g.Len())

	g2 := g.Remove(tr)
	assert.Equal(t, 0, g2.Len())
}

func TestGraph_UnionAndDifference(t *testing.T) {
	a := iriTerm(t, "http://example.com/a")
	b := iriTerm(t, "http://example.com/b")
	c := iriTerm(t, "http://example.com/c")
	p := RDFType

	g1 := EmptyGraph.Add(Triple{Subject: a, Predicate: p, Object: b})
	g2 := EmptyGraph.Add(Triple{Subject: b, Predicate: p, Object: c})

	union := g1.Union(g2)
	assert.Equal(t, 2, union.Len())

	diff := union.Difference(g1)
	assert.Equal(t, 1, diff.Len())
}

func TestGraph_SubjectsPredicatesObjects(t *testing.T) {
	a := iriTerm(t, "http://example.com/a")
	b := iriTerm(t, "http://example.com/b")
	g := EmptyGraph.Add(Triple{Subject: a, Predicate: RDFType, Object: b})
	assert.Len(t, g.Subjects(), 1)
	assert.Len(t, g.Predicates(), 1)
	assert.Len(t, g.Objects(), 1)
}

func TestGraph_FilteredAccessors(t *testing.T) {
	a := iriTerm(t, "http://example.com/a")
	b := iriTerm(t, "http://example.com/b")
	c := iriTerm(t, "http://example.com/c")
	knows := iriTerm(t, "http://example.com/knows")

	g := EmptyGraph.
		Add(Triple{Subject: a, Predicate: knows, Object: b}).
		Add(Triple{Subject: c, Predicate: knows, Object: b}).
		Add(Triple{Subject: a, Predicate: RDFType, Object: c})

	subs := g.SubjectsMatching(knows, b)
	require.Len(t, subs, 2)

	subsBy := g.SubjectsBy(func(term Term) bool {
		n, ok := term.(IriNode)
		return ok && n.Equal(a)
	})
	require.Len(t, subsBy, 1)
	assert.True(t, subsBy[0].(IriNode).Equal(a))

	preds := g.PredicatesMatching(a, b)
	require.Len(t, preds, 1)
	assert.True(t, preds[0].Equal(knows))

	predsBy := g.PredicatesBy(func(p IriNode) bool { return p.Equal(RDFType) })
	require.Len(t, predsBy, 1)

	objs := g.ObjectsMatching(a, knows)
	require.Len(t, objs, 1)
	assert.True(t, objs[0].(IriNode).Equal(b))

	objsBy := g.ObjectsBy(func(term Term) bool {
		n, ok := term.(IriNode)
		return ok && n.Equal(b)
	})
	require.Len(t, objsBy, 1)
}

func TestGraph_IsCyclic(t *testing.T) {
	a := iriTerm(t, "http://example.com/a")
	b := iriTerm(t, "http://example.com/b")
	c := iriTerm(t, "http://example.com/c")

	acyclic := EmptyGraph.
		Add(Triple{Subject: a, Predicate: RDFType, Object: b}).
		Add(Triple{Subject: b, Predicate: RDFType, Object: c})
	assert.False(t, acyclic.IsCyclic())
	assert.True(t, acyclic.IsAcyclic())

	cyclic := acyclic.Add(Triple{Subject: c, Predicate: RDFType, Object: a})
	assert.True(t, cyclic.IsCyclic())
}

func TestGraph_IsCyclic_SelfLoop(t *testing.T) {
	a := iriTerm(t, "http://example.com/a")
	g := EmptyGraph.Add(Triple{Subject: a, Predicate: RDFType, Object: a})
	assert.True(t, g.IsCyclic())
}

func TestGraph_IsConnected(t *testing.T) {
	a := iriTerm(t, "http://example.com/a")
	b := iriTerm(t, "http://example.com/b")
	c := iriTerm(t, "http://example.com/c")
	d := iriTerm(t, "http://example.com/d")

	connected := EmptyGraph.
		Add(Triple{Subject: a, Predicate: RDFType, Object: b}).
		Add(Triple{Subject: b, Predicate: RDFType, Object: c})
	assert.True(t, connected.IsConnected())

	disconnected := connected.Add(Triple{Subject: c, Predicate: RDFType, Object: c}).
		Remove(Triple{Subject: b, Predicate: RDFType, Object: c}).
		Add(Triple{Subject: d, Predicate: RDFType, Object: d})
	assert.False(t, disconnected.IsConnected())
}

func TestGraph_IsConnected_LiteralObjectsAreNotVertices(t *testing.T) {
	a := iriTerm(t, "http://example.com/a")
	b := iriTerm(t, "http://example.com/b")
	lit1, err := NewLiteral("x", IriNode{})
	require.NoError(t, err)
	lit2, err := NewLiteral("y", IriNode{})
	require.NoError(t, err)

	// Two distinct subjects, each with its own literal object and never
	// appearing as an object themselves: disconnected, since a literal
	// object contributes no vertex to join them.
	g := EmptyGraph.
		Add(Triple{Subject: a, Predicate: RDFType, Object: lit1}).
		Add(Triple{Subject: b, Predicate: RDFType, Object: lit2})
	assert.False(t, g.IsConnected())

	// The same two subjects linked by a non-literal edge are connected.
	g2 := g.Add(Triple{Subject: a, Predicate: RDFType, Object: b})
	assert.True(t, g2.IsConnected())
}

func TestGraph_IsCyclic_IgnoresLiteralObjects(t *testing.T) {
	a := iriTerm(t, "http://example.com/a")
	lit, err := NewLiteral("x", IriNode{})
	require.NoError(t, err)
	g := EmptyGraph.Add(Triple{Subject: a, Predicate: RDFType, Object: lit})
	assert.False(t, g.IsCyclic())
}

func TestGraph_Equal(t *testing.T) {
	a := iriTerm(t, "http://example.com/a")
	b := iriTerm(t, "http://example.com/b")

	g1 := EmptyGraph.
		Add(Triple{Subject: a, Predicate: RDFType, Object: b}).
		Add(Triple{Subject: b, Predicate: RDFType, Object: a})
	g2 := EmptyGraph.
		Add(Triple{Subject: b, Predicate: RDFType, Object: a}).
		Add(Triple{Subject: a, Predicate: RDFType, Object: b})

	assert.True(t, g1.Equal(g2))
}
