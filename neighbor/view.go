// Package neighbor holds the adjacency representation SpeakEasy 2 runs
// against: a per-node incoming-neighbour list with an optional parallel
// weight list, plus the reweighing pass that conditions raw edge weights
// before label propagation begins.
package neighbor

import (
	"errors"
	"fmt"
)

// ErrWeightLengthMismatch is returned by NewView when a weight row's length
// does not match its neighbour row.
var ErrWeightLengthMismatch = errors.New("neighbor: weight length does not match neighbor length")

// View is an immutable-after-construction adjacency view. neigh[i] holds the
// indices of the nodes with an edge into i; weight[i] is the parallel list
// of edge weights, or nil for an unweighted view. Reweigh is the only
// operation allowed to mutate a View after construction.
type View struct {
	neigh    [][]int
	weight   [][]float64
	selfLoop []int
}

// NewView builds a View from caller-supplied adjacency and (optional)
// weight slices. The slices are copied, so the returned View never aliases
// caller-owned memory.
func NewView(neigh [][]int, weight [][]float64) (*View, error) {
	if weight != nil {
		if len(weight) != len(neigh) {
			return nil, fmt.Errorf("neighbor: %d weight rows, %d neighbor rows: %w", len(weight), len(neigh), ErrWeightLengthMismatch)
		}
		for i := range neigh {
			if len(weight[i]) != len(neigh[i]) {
				return nil, fmt.Errorf("neighbor: node %d: %d weights, %d neighbors: %w", i, len(weight[i]), len(neigh[i]), ErrWeightLengthMismatch)
			}
		}
	}

	v := &View{neigh: make([][]int, len(neigh))}
	for i := range neigh {
		v.neigh[i] = append([]int(nil), neigh[i]...)
	}
	if weight != nil {
		v.weight = make([][]float64, len(weight))
		for i := range weight {
			v.weight[i] = append([]float64(nil), weight[i]...)
		}
	}

	return v, nil
}

// VCount returns the number of nodes.
func (v *View) VCount() int { return len(v.neigh) }

// ECount returns the total number of directed edges (including self-loops
// once Reweigh has installed them).
func (v *View) ECount() int {
	c := 0
	for _, n := range v.neigh {
		c += len(n)
	}
	return c
}

// TotalWeight returns the sum of every edge weight, or 0 for an unweighted
// view.
func (v *View) TotalWeight() float64 {
	var s float64
	for _, row := range v.weight {
		for _, w := range row {
			s += w
		}
	}
	return s
}

// Neighbors returns node i's incoming neighbour indices.
func (v *View) Neighbors(i int) []int { return v.neigh[i] }

// Weights returns node i's weight row, or nil if the view is unweighted.
func (v *View) Weights(i int) []float64 {
	if v.weight == nil {
		return nil
	}
	return v.weight[i]
}

// Weight returns the weight of the j'th edge of node i, defaulting to 1 for
// an unweighted view.
func (v *View) Weight(i, j int) float64 {
	if v.weight == nil {
		return 1
	}
	return v.weight[i][j]
}

// HasWeights reports whether the view carries a weight list.
func (v *View) HasWeights() bool { return v.weight != nil }
