package label

import (
	"sort"

	"github.com/se2-go/speakeasy2/neighbor"
	"github.com/se2-go/speakeasy2/partition"
)

// MergeWellConnectedCommunities looks for pairs of communities whose
// cross-talk exceeds what their sizes alone would predict, and folds the
// most improving pairs together. maxPrevMergeThreshold tracks the best
// improvement ever seen across merge steps, so later steps only act on
// merges that clear an escalating bar. It reports whether the partition is
// now stable (no merge was applied).
func MergeWellConnectedCommunities(view *neighbor.View, p *partition.Partition, maxPrevMergeThreshold *float64) bool {
	nLabels := p.MaxLabel() + 1

	totalWeight := view.TotalWeight()
	if !view.HasWeights() {
		totalWeight = float64(view.ECount())
	}
	if totalWeight == 0 {
		return true
	}

	crosstalk := make([][]float64, nLabels)
	for i := range crosstalk {
		crosstalk[i] = make([]float64, nLabels)
	}
	for i := 0; i < view.VCount(); i++ {
		neigh := view.Neighbors(i)
		for j, nb := range neigh {
			w := view.Weight(i, j)
			crosstalk[p.Label(nb)][p.Label(i)] += w
		}
	}
	for i := range crosstalk {
		for j := range crosstalk[i] {
			crosstalk[i][j] /= totalWeight
		}
	}

	rowSum := make([]float64, nLabels)
	colSum := make([]float64, nLabels)
	for i := 0; i < nLabels; i++ {
		for j := 0; j < nLabels; j++ {
			rowSum[i] += crosstalk[i][j]
			colSum[j] += crosstalk[i][j]
		}
	}

	mergeCandidate := make([]int, nLabels)
	modChange := make([]float64, nLabels)
	for i := range mergeCandidate {
		mergeCandidate[i] = -1
	}

	for i := 0; i < nLabels; i++ {
		if p.CommunitySize(i) == 0 {
			continue
		}
		for j := i + 1; j < nLabels; j++ {
			if p.CommunitySize(j) == 0 {
				continue
			}
			delta := crosstalk[i][j] + crosstalk[j][i] - rowSum[i]*colSum[j] - rowSum[j]*colSum[i]
			if delta > modChange[i] {
				modChange[i] = delta
				mergeCandidate[i] = j
			}
			if delta > modChange[j] {
				modChange[j] = delta
				mergeCandidate[j] = i
			}
		}
	}

	nPositive := 0
	for i := 0; i < nLabels; i++ {
		if p.CommunitySize(i) > 0 && modChange[i] > 0 {
			nPositive++
		}
	}
	if nPositive == 0 {
		return true
	}

	var sum float64
	for i := 0; i < nLabels; i++ {
		if mergeCandidate[i] == -1 {
			continue
		}
		modChange[i] /= float64(p.CommunitySize(i) + p.CommunitySize(mergeCandidate[i]))
		sum += modChange[i]
	}
	minMergeImprovement := sum / float64(nPositive)

	if minMergeImprovement < 0.5*(*maxPrevMergeThreshold) {
		return true
	}
	if minMergeImprovement > *maxPrevMergeThreshold {
		*maxPrevMergeThreshold = minMergeImprovement
	}

	medianDelta := modularityMedian(p, modChange)

	sortIdx := make([]int, nLabels)
	for i := range sortIdx {
		sortIdx[i] = i
	}
	sort.SliceStable(sortIdx, func(a, b int) bool {
		return modChange[sortIdx[a]] > modChange[sortIdx[b]]
	})

	if modChange[sortIdx[0]] <= minMergeImprovement {
		return true
	}

	merged := make([]bool, nLabels)
	nMerges := 0
	for _, c1 := range sortIdx {
		if modChange[c1] <= medianDelta {
			break
		}
		c2 := mergeCandidate[c1]
		if c2 == -1 || merged[c1] || merged[c2] {
			continue
		}
		if p.CommunitySize(c1) < 2 || p.CommunitySize(c2) < 2 {
			continue
		}
		merged[c1] = true
		merged[c2] = true
		p.MergeLabels(c1, c2)
		nMerges++
	}

	if nMerges > 0 {
		p.CommitChanges()
	}

	return nMerges == 0
}

// modularityMedian returns the median modularity delta across occupied
// labels. Order doesn't affect a median, so the occupied labels are walked
// in plain ascending order rather than through a shuffled label iterator.
func modularityMedian(p *partition.Partition, modChange []float64) float64 {
	vals := make([]float64, 0, p.NLabels())
	for l := 0; l <= p.MaxLabel(); l++ {
		if p.CommunitySize(l) > 0 {
			vals = append(vals, modChange[l])
		}
	}
	return partition.MedianFloat(vals)
}
