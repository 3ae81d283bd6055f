package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIRI_AsStringVsAsURI(t *testing.T) {
	i, err := ParseIRI("http://example.com/café?q=résumé")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/café?q=résumé", i.AsString())
	assert.Equal(t, "http://example.com/caf%C3%A9?q=r%C3%A9sum%C3%A9", i.AsURI())
}

func TestIRI_SchemeLowercased(t *testing.T) {
	i, err := ParseIRI("HTTP://example.com/")
	require.NoError(t, err)
	u, _ := i.AsURL()
	assert.Equal(t, "http", u.Scheme)
}

func TestIRI_Equal(t *testing.T) {
	a, err := ParseIRI("http://example.com/a")
	require.NoError(t, err)
	b, err := ParseIRI("http://example.com/a")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestIRI_IsAbsoluteAndIsRelative(t *testing.T) {
	abs, err := ParseIRI("http://example.com/")
	require.NoError(t, err)
	assert.True(t, abs.IsAbsolute())
	assert.False(t, abs.IsRelative())

	rel, err := ParseIRI("a/b")
	require.NoError(t, err)
	assert.False(t, rel.IsAbsolute())
	assert.True(t, rel.IsRelative())
}

func TestUrn_Render(t *testing.T) {
	u, err := ParseURN("urn:ISBN:0451450523")
	require.NoError(t, err)
	assert.Equal(t, "urn:isbn:0451450523", u.render(false))
}
