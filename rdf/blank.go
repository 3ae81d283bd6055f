package rdf

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// NewBlankNode mints a fresh BlankNode with a UUID-derived label, unique
// across an entire process. The label is built from a UUID rather than
// used verbatim (a bare UUID starts with a digit far more often than
// not, which the blank-node id grammar's leading-letter rule forbids).
func NewBlankNode() BlankNode {
	id := "b" + uuid.NewString()
	b, err := Blank(id)
	if err != nil {
		// uuid.NewString never yields a byte outside [0-9a-f-], so the
		// "b"-prefixed id always satisfies blankNodeIDPattern.
		panic(err)
	}
	return b
}

// blankNodeGenerator hands out sequential, collision-free labels within
// a single graph-building session: "b1", "b2", ... It is the sequential
// counterpart to NewBlankNode's globally-unique UUID form, useful when
// deterministic, reproducible output matters (e.g. golden-file tests).
type blankNodeGenerator struct {
	mu      sync.Mutex
	counter int
}

// newBlankNodeGenerator creates a generator starting from "b1".
func newBlankNodeGenerator() *blankNodeGenerator {
	return &blankNodeGenerator{}
}

// next returns the next sequential BlankNode.
func (g *blankNodeGenerator) next() BlankNode {
	g.mu.Lock()
	g.counter++
	n := g.counter
	g.mu.Unlock()
	b, err := Blank(fmt.Sprintf("b%d", n))
	if err != nil {
		panic(err)
	}
	return b
}

// reset zeroes the counter, restarting the sequence at "b1".
func (g *blankNodeGenerator) reset() {
	g.mu.Lock()
	g.counter = 0
	g.mu.Unlock()
}
