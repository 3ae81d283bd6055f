package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPctEncode_LeavesUnreservedAlone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		class charClass
		asURI bool
		want  string
	}{
		{"unreserved ascii", "abc-._~123", pcharClass, false, "abc-._~123"},
		{"space encoded", "a b", pcharClass, false, "a%20b"},
		{"slash encoded in pchar", "a/b", pcharClass, false, "a%2Fb"},
		{"slash allowed in fragment", "a/b", fragmentClass, false, "a/b"},
		{"utf8 kept as_string", "café", pcharClass, false, "café"},
		{"utf8 encoded as_uri", "café", pcharClass, true, "caf%C3%A9"},
		{"query strips ampersand", "a&b", queryClass, false, "a%26b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pctEncode(tt.input, tt.class, tt.asURI))
		})
	}
}

func TestPctDecode_RoundTrips(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain text", "hello", "hello", false},
		{"encoded space", "a%20b", "a b", false},
		{"encoded utf8", "caf%C3%A9", "café", false},
		{"truncated escape", "a%2", "", true},
		{"bad hex digit", "a%zz", "", true},
		{"invalid utf8 bytes", "%ff%fe", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pctDecode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPctEncodeDecode_Involution(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.String().Draw(rt, "s")
		encoded := pctEncode(s, unreservedClass, true)
		decoded, err := pctDecode(encoded)
		require.NoError(rt, err)
		assert.Equal(rt, s, decoded)
	})
}
