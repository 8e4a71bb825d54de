// Package label implements the propagation and restructuring operations
// SpeakEasy 2 runs against a partition each step: picking the most
// "specific" label for a node, bursting oversized communities apart, and
// merging well-connected ones back together.
package label

import (
	"math/rand"

	"github.com/se2-go/speakeasy2/neighbor"
	"github.com/se2-go/speakeasy2/partition"
)

// FindMostSpecificLabels walks nodeIter, assigning each visited node the
// label that is most "specific" to it: the one it hears disproportionately
// more than the graph as a whole. It commits the staged changes and
// reports whether anything actually changed.
func FindMostSpecificLabels(view *neighbor.View, p *partition.Partition, nodeIter *partition.Iterator, rng *rand.Rand) bool {
	observed := make([]float64, p.MaxLabel()+1)
	expected := make([]float64, p.MaxLabel()+1)
	globalLabelProportions(view, p, expected)

	labelIter := partition.NewRandomLabelIterator(p, 0, rng)

	for {
		node := nodeIter.Next()
		if node == -1 {
			break
		}

		for i := range observed {
			observed[i] = 0
		}
		kin := localLabelProportions(view, p, node, observed)

		bestLabel := -1
		var bestScore float64
		for {
			l := labelIter.Next()
			if l == -1 {
				break
			}
			score := observed[l] - kin*expected[l]
			if bestLabel == -1 || score >= bestScore {
				bestScore = score
				bestLabel = l
			}
		}

		p.AddToStage(node, bestLabel, bestScore)
		labelIter.Shuffle()
	}

	return p.CommitChanges()
}

// Typical runs the default propagation step: a 90% random sample of nodes,
// each reassigned to its most specific label.
func Typical(view *neighbor.View, p *partition.Partition, rng *rand.Rand) bool {
	nodeIter := partition.NewRandomNodeIterator(p, 0.9, rng)
	return FindMostSpecificLabels(view, p, nodeIter, rng)
}

// Nurture relabels the 90% of nodes currently worst-fit to their label,
// the gentler counterpart to bubbling used to nudge a near-stable
// partition without bursting whole communities apart.
func Nurture(view *neighbor.View, p *partition.Partition, rng *rand.Rand) bool {
	k := int(0.9 * float64(p.NNodes()))
	nodeIter := partition.NewKWorstFitIterator(p, k, rng)
	return FindMostSpecificLabels(view, p, nodeIter, rng)
}

// globalLabelProportions fills out[l] with label l's share of all edge
// weight heard across the whole graph.
func globalLabelProportions(view *neighbor.View, p *partition.Partition, out []float64) {
	var acc float64
	for i := 0; i < view.VCount(); i++ {
		neigh := view.Neighbors(i)
		for j, nb := range neigh {
			w := view.Weight(i, j)
			out[p.Label(nb)] += w
		}
	}
	for _, v := range out {
		acc += v
	}
	if acc == 0 {
		return
	}
	for i := range out {
		out[i] /= acc
	}
}

// localLabelProportions adds to out[l] the total edge weight node hears
// from label l (not normalized), returning the total weight heard (kin).
func localLabelProportions(view *neighbor.View, p *partition.Partition, node int, out []float64) float64 {
	var kin float64
	neigh := view.Neighbors(node)
	for j, nb := range neigh {
		w := view.Weight(node, j)
		out[p.Label(nb)] += w
		kin += w
	}
	return kin
}
