// Package seed builds the initial label assignment each independent run
// starts from.
package seed

import (
	"math/rand"

	"github.com/se2-go/speakeasy2/neighbor"
)

// Seed fills out with an initial membership: nodes are assigned labels
// 0..targetClusters-1 round robin, the assignment is shuffled, and any node
// whose only edge is its own self-loop is split off into its own fresh
// label, since a propagation step can never reach an isolated node through
// a neighbour. It returns the number of distinct labels produced.
func Seed(view *neighbor.View, targetClusters int, out []int, rng *rand.Rand) int {
	n := view.VCount()
	for i := 0; i < n; i++ {
		out[i] = i % targetClusters
	}
	rng.Shuffle(n, func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	counts := make([]int, targetClusters)
	biggest := 0
	nUnique := 0
	for i := 0; i < n; i++ {
		l := out[i]
		if l > biggest {
			biggest = l
		}
		if counts[l] == 0 {
			nUnique++
		}
		counts[l]++
	}

	for i := 0; i < n; i++ {
		if len(view.Neighbors(i)) == 1 {
			counts[out[i]]--
			if counts[out[i]] == 0 {
				nUnique--
			}
			biggest++
			out[i] = biggest
			nUnique++
		}
	}

	return nUnique
}
