package speakeasy2

import (
	"context"
	"sort"

	"github.com/se2-go/speakeasy2/engine"
	"github.com/se2-go/speakeasy2/neighbor"
)

// Options configures a clustering run. See engine.Options for the field
// documentation; it's aliased here so callers never need to import engine
// directly just to build one.
type Options = engine.Options

// ErrInvalidOption is returned by Run when an Options field fails
// validation.
var ErrInvalidOption = engine.ErrInvalidOption

// Run clusters view according to opts, returning one membership vector per
// subclustering level: membership[0][i] is node i's top-level community,
// membership[l][i] for l > 0 is its community within level l's
// subclustering pass. A zero Options uses SpeakEasy 2's own defaults.
func Run(view *neighbor.View, opts Options) ([][]int, error) {
	return engine.Run(context.Background(), view, opts)
}

// OrderNodes returns, for each level of a Run result, a permutation of
// node indices grouped by community in ascending label order - handy for
// laying a node list or adjacency matrix out so each community's members
// sit together, without requiring any plotting library.
func OrderNodes(membership [][]int) [][]int {
	out := make([][]int, len(membership))
	for l, row := range membership {
		idx := make([]int, len(row))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return row[idx[a]] < row[idx[b]]
		})
		out[l] = idx
	}
	return out
}
