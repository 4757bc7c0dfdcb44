package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

func parents(m map[string]string) search.ParentFunc[string] {
	return func(id string) (string, bool) {
		p, ok := m[id]
		return p, ok
	}
}

func TestReconstruct(t *testing.T) {
	path, err := search.Reconstruct("D", parents(map[string]string{"B": "A", "C": "B", "D": "C"}), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)

	root, err := search.Reconstruct("A", parents(nil), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, root)
}

func TestReconstruct_BrokenChain(t *testing.T) {
	cycle := parents(map[string]string{"A": "C", "B": "A", "C": "B"})
	_, err := search.Reconstruct("C", cycle, 0)
	assert.ErrorIs(t, err, search.ErrBrokenChain)

	// The chain is acyclic but longer than the bound allows.
	long := parents(map[string]string{"B": "A", "C": "B", "D": "C"})
	_, err = search.Reconstruct("D", long, 3)
	assert.ErrorIs(t, err, search.ErrBrokenChain)

	path, err := search.Reconstruct("D", long, 4)
	require.NoError(t, err)
	assert.Len(t, path, 4)
}
