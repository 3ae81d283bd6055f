package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve_RFC3986Examples checks a selection of the normal reference
// resolution examples from RFC 3986 §5.4.1 against base
// "http://a/b/c/d;p?q".
func TestResolve_RFC3986Examples(t *testing.T) {
	base, err := ParseIRI("http://a/b/c/d;p?q")
	require.NoError(t, err)

	tests := []struct {
		ref  string
		want string
	}{
		{"g", "http://a/b/c/g"},
		{"./g", "http://a/b/c/g"},
		{"g/", "http://a/b/c/g/"},
		{"/g", "http://a/g"},
		{"//g", "http://g"},
		// A bare "?y" flag (no "=") is an empty-value pair; Query
		// preserves it as a bare key on render.
		{"?y", "http://a/b/c/d;p?y"},
		{"g?y", "http://a/b/c/g?y"},
		{"#s", "http://a/b/c/d;p?q#s"},
		{"g#s", "http://a/b/c/g#s"},
		{"g?y#s", "http://a/b/c/g?y#s"},
		{".", "http://a/b/c/"},
		{"./", "http://a/b/c/"},
		{"..", "http://a/b/"},
		{"../", "http://a/b/"},
		{"../g", "http://a/b/g"},
		{"../..", "http://a/"},
		{"../../", "http://a/"},
		{"../../g", "http://a/g"},
		{"", "http://a/b/c/d;p?q"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			ref, err := ParseIRI(tt.ref)
			require.NoError(t, err)
			resolved, err := Resolve(base, ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resolved.AsString())
		})
	}
}

func TestResolve_AbsoluteReferenceShortCircuits(t *testing.T) {
	base, err := ParseIRI("http://a/b/c/d;p?q")
	require.NoError(t, err)
	ref, err := ParseIRI("http://example.com/x")
	require.NoError(t, err)
	resolved, err := Resolve(base, ref)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/x", resolved.AsString())
}

func TestResolve_URNCarriesRComponentThrough(t *testing.T) {
	base, err := ParseIRI("urn:example:a123,z456?+abc")
	require.NoError(t, err)
	ref, err := ParseIRI("urn:example:a123,z456#frag")
	require.NoError(t, err)
	resolved, err := Resolve(base, ref)
	require.NoError(t, err)
	u, _ := resolved.AsURN()
	r, ok := u.AsComponent().RComponent()
	assert.True(t, ok)
	assert.Equal(t, "abc", r)
	assert.Equal(t, "frag", u.Fragment)
}

func TestResolve_RequiresAbsoluteBase(t *testing.T) {
	base, err := ParseIRI("a/b")
	require.NoError(t, err)
	ref, err := ParseIRI("c")
	require.NoError(t, err)
	_, err = Resolve(base, ref)
	require.Error(t, err)
}
