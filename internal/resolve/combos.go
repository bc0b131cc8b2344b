package resolve

import (
	"fmt"
	"sort"

	"hoist/internal/model"
)

// Enumerator lazily walks the Cartesian product of per-package candidate
// lists: every combination of one version choice per package, each exactly
// once.
//
// Package names are sorted up front and that single order is used for
// indexing, carry propagation and combination construction. Map iteration
// order would differ run to run; sorting makes the trial sequence
// reproducible, which the tests rely on.
//
// The walk is a mixed-radix counter. One index per package starts at zero;
// each step reads the current indices off into a combination, then advances
// the first index with carry propagation into the later ones. Enumeration
// ends when the carry overflows past the last package.
type Enumerator struct {
	names   []string
	lists   [][]string
	lengths []int
	indices []int
	done    bool
}

// NewEnumerator builds an Enumerator over the candidate mapping. Every list
// must be non-empty; the caller aborts before enumeration otherwise.
func NewEnumerator(candidates map[string][]string) (*Enumerator, error) {
	names := make([]string, 0, len(candidates))
	for name := range candidates {
		names = append(names, name)
	}
	sort.Strings(names)

	lists := make([][]string, len(names))
	lengths := make([]int, len(names))
	for i, name := range names {
		if len(candidates[name]) == 0 {
			return nil, fmt.Errorf("no candidate versions for %s", name)
		}
		lists[i] = candidates[name]
		lengths[i] = len(candidates[name])
	}

	return &Enumerator{
		names:   names,
		lists:   lists,
		lengths: lengths,
		indices: make([]int, len(names)),
	}, nil
}

// Total is the number of combinations the Enumerator will emit.
func (e *Enumerator) Total() int {
	total := 1
	for _, n := range e.lengths {
		total *= n
	}
	return total
}

// Next returns the next combination, or false once the product is exhausted.
func (e *Enumerator) Next() (model.Combination, bool) {
	if e.done {
		return nil, false
	}

	combo := make(model.Combination, len(e.names))
	for i, name := range e.names {
		combo[name] = e.lists[i][e.indices[i]]
	}

	e.done = !advance(e.indices, e.lengths)
	return combo, true
}

// advance increments the index vector as a mixed-radix counter with carry,
// where lengths[i] is the radix of position i. Returns false when the final
// carry overflows past the last position. Pure: no state beyond its
// arguments, so it can be exercised against arbitrary length vectors.
func advance(indices, lengths []int) bool {
	for i := range indices {
		indices[i]++
		if indices[i] < lengths[i] {
			return true
		}
		indices[i] = 0
	}
	return false
}
