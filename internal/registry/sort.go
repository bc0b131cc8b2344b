package registry

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-version"
)

// SortNewestFirst reorders candidates in place, descending by semantic
// version precedence. Used for packages that were missing outright: an
// unconstrained dependency is most likely satisfied by the newest release,
// so it should be trialed first.
//
// Every candidate must parse. A string go-version rejects leaves the list
// without a total order, and the whole run stops rather than trialing
// combinations in an arbitrary sequence.
func SortNewestFirst(candidates []string) error {
	type candidate struct {
		raw    string
		parsed *version.Version
	}

	pairs := make([]candidate, len(candidates))
	for i, raw := range candidates {
		v, err := version.NewVersion(raw)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrBadVersion, raw, err)
		}
		pairs[i] = candidate{raw: raw, parsed: v}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].parsed.GreaterThan(pairs[j].parsed)
	})
	for i, p := range pairs {
		candidates[i] = p.raw
	}
	return nil
}
