package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocab_WellKnownIRIs(t *testing.T) {
	assert.Equal(t, "http://www.w3.org/2001/XMLSchema#string", XSDString.String())
	assert.Equal(t, "http://www.w3.org/2001/XMLSchema#integer", XSDInteger.String())
	assert.Equal(t, "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString", RDFLangString.String())
	assert.Equal(t, "http://www.w3.org/1999/02/22-rdf-syntax-ns#type", RDFType.String())
}
