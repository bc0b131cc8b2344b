package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortNewestFirst(t *testing.T) {
	candidates := []string{"1.2.0", "1.10.0", "1.9.1"}

	require.NoError(t, SortNewestFirst(candidates))
	// Numeric precedence, not lexicographic: 1.10.0 beats 1.9.1.
	assert.Equal(t, []string{"1.10.0", "1.9.1", "1.2.0"}, candidates)
}

func TestSortNewestFirstPrerelease(t *testing.T) {
	candidates := []string{"2.0.0-beta.1", "2.0.0", "1.9.9"}

	require.NoError(t, SortNewestFirst(candidates))
	assert.Equal(t, []string{"2.0.0", "2.0.0-beta.1", "1.9.9"}, candidates)
}

func TestSortNewestFirstBadVersion(t *testing.T) {
	candidates := []string{"1.0.0", "not-a-version"}

	err := SortNewestFirst(candidates)
	require.ErrorIs(t, err, ErrBadVersion)
}

func TestSortNewestFirstEmpty(t *testing.T) {
	var candidates []string
	require.NoError(t, SortNewestFirst(candidates))
}
