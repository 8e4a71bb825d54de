package label

import (
	"math/rand"

	"github.com/se2-go/speakeasy2/partition"
)

// BurstLargeCommunities splits oversized communities into several fresh
// labels. It walks a k-worst-fit sample of nodes twice: once to count, per
// label, how many sampled nodes belong to a community at or above
// minCommunitySize, and once more - over the exact same node order, since
// Iterator.Next rewinds itself on exhaustion - to actually hand each
// counted node a random fresh label drawn from that community's newly
// allocated range.
func BurstLargeCommunities(p *partition.Partition, fractionNodesToMove float64, minCommunitySize int, rng *rand.Rand) {
	k := int(fractionNodesToMove * float64(p.NNodes()))
	nodeIter := partition.NewKWorstFitIterator(p, k, rng)
	desired := p.MedianCommunitySize()
	if desired == 0 {
		desired = 1
	}

	nNodesToMove := make([]int, p.MaxLabel()+1)
	for {
		node := nodeIter.Next()
		if node == -1 {
			break
		}
		lbl := p.Label(node)
		if p.CommunitySize(lbl) >= minCommunitySize {
			nNodesToMove[lbl]++
		}
	}

	newTagsCum := make([]int, p.MaxLabel()+2)
	for l := 0; l <= p.MaxLabel(); l++ {
		if nNodesToMove[l] == 0 {
			newTagsCum[l+1] = newTagsCum[l]
			continue
		}
		nNew := nNodesToMove[l] / desired
		if nNew < 2 {
			nNew = 2
		} else if nNew > 10 {
			nNew = 10
		}
		newTagsCum[l+1] = newTagsCum[l] + nNew
	}

	total := newTagsCum[p.MaxLabel()+1]
	newTags := make([]int, total)
	for i := range newTags {
		newTags[i] = p.NewLabel()
	}

	for {
		node := nodeIter.Next()
		if node == -1 {
			break
		}
		lbl := p.Label(node)
		if p.CommunitySize(lbl) < minCommunitySize {
			continue
		}
		lo, hi := newTagsCum[lbl], newTagsCum[lbl+1]-1
		pick := newTags[lo+rng.Intn(hi-lo+1)]
		p.AddToStage(node, pick, p.Quality(node))
	}

	p.CommitChanges()
}
