package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlank_ShapeVectors(t *testing.T) {
	for _, id := range []string{"a", "a-_", "a123"} {
		t.Run("valid/"+id, func(t *testing.T) {
			_, err := Blank(id)
			assert.NoError(t, err)
		})
	}
	for _, id := range []string{"", " ", "a#", "_", "-", "-a", "_a"} {
		t.Run("invalid/"+id, func(t *testing.T) {
			_, err := Blank(id)
			assert.Error(t, err)
		})
	}
}

func TestNewBlankNode_ProducesValidID(t *testing.T) {
	b := NewBlankNode()
	assert.True(t, blankNodeIDPattern.MatchString(b.ID()))
	assert.NotEqual(t, NewBlankNode().ID(), b.ID())
}

func TestBlankNodeGenerator_Sequential(t *testing.T) {
	g := newBlankNodeGenerator()
	first := g.next()
	second := g.next()
	assert.Equal(t, "b1", first.ID())
	assert.Equal(t, "b2", second.ID())

	g.reset()
	assert.Equal(t, "b1", g.next().ID())
}
