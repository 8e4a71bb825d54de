package partition

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCountsLabels(t *testing.T) {
	p := New([]int{0, 0, 1, 2, 2, 2})
	assert.Equal(t, 3, p.NLabels())
	assert.Equal(t, 2, p.MaxLabel())
	assert.Equal(t, 2, p.CommunitySize(0))
	assert.Equal(t, 1, p.CommunitySize(1))
	assert.Equal(t, 3, p.CommunitySize(2))
}

func TestNewLabelGrowsPoolWhenNoSlotIsFree(t *testing.T) {
	p := New([]int{0, 1})
	l := p.NewLabel()
	assert.Equal(t, 2, l)
	assert.Equal(t, 3, p.NLabels())
}

func TestMergeLabelsKeepsLargerCommunity(t *testing.T) {
	p := New([]int{0, 0, 0, 1})
	p.MergeLabels(0, 1)
	changed := p.CommitChanges()
	require.True(t, changed)

	for _, l := range []int{p.Label(0), p.Label(1), p.Label(2), p.Label(3)} {
		assert.Equal(t, 0, l)
	}
	assert.Equal(t, 1, p.NLabels())
	assert.Equal(t, 4, p.CommunitySize(0))
}

func TestCommitChangesRecountsSizes(t *testing.T) {
	p := New([]int{0, 0, 1, 1})
	p.AddToStage(2, 0, 1.0)
	changed := p.CommitChanges()
	require.True(t, changed)
	assert.Equal(t, 3, p.CommunitySize(0))
	assert.Equal(t, 1, p.CommunitySize(1))
}

func TestCommitChangesReportsNoChange(t *testing.T) {
	p := New([]int{0, 1})
	changed := p.CommitChanges()
	assert.False(t, changed)
}

func TestRelabelMaskAllocatesFreshLabel(t *testing.T) {
	p := New([]int{0, 0, 0})
	label := p.RelabelMask([]bool{false, true, false})
	p.CommitChanges()
	assert.Equal(t, label, p.Label(1))
	assert.NotEqual(t, p.Label(0), p.Label(1))
}

func TestReindexProducesDenseLabelsInOrder(t *testing.T) {
	m := []int{5, 5, 2, 9}
	Reindex(m)
	assert.Equal(t, []int{1, 1, 0, 2}, m)
}

func TestStoreReindexesCopy(t *testing.T) {
	p := New([]int{7, 7, 3})
	dest := make([]int, 3)
	p.Store(dest)
	assert.Equal(t, []int{1, 1, 0}, dest)
	// original reference is untouched by Store
	assert.Equal(t, 7, p.Label(0))
}

func TestMedianCommunitySizeSingleLabel(t *testing.T) {
	p := New([]int{0, 0, 0})
	assert.Equal(t, 3, p.MedianCommunitySize())
}

func TestMedianInt(t *testing.T) {
	assert.Equal(t, 3.0, MedianInt([]int{1, 3, 5}))
	assert.Equal(t, 2.5, MedianInt([]int{1, 2, 3, 4}))
}

func TestIteratorAutoRewindsOnExhaustion(t *testing.T) {
	it := NewVectorIterator([]int{10, 11, 12}, 3)
	var seen []int
	for i := 0; i < 3; i++ {
		seen = append(seen, it.Next())
	}
	assert.Equal(t, []int{10, 11, 12}, seen)
	assert.Equal(t, -1, it.Next())

	// second walk repeats the same order without calling Reset
	var second []int
	for i := 0; i < 3; i++ {
		second = append(second, it.Next())
	}
	assert.Equal(t, seen, second)
}

func TestRandomNodeIteratorVisitsFraction(t *testing.T) {
	p := New([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	rng := rand.New(rand.NewSource(1))
	it := NewRandomNodeIterator(p, 0.5, rng)

	count := 0
	for it.Next() != -1 {
		count++
	}
	assert.Equal(t, 5, count)
}

func TestKWorstFitIteratorSelectsLowestQuality(t *testing.T) {
	p := New([]int{0, 1, 2, 3})
	p.quality = []float64{0.9, 0.1, 0.5, 0.2}
	rng := rand.New(rand.NewSource(1))
	it := NewKWorstFitIterator(p, 2, rng)

	seen := map[int]bool{}
	for {
		n := it.Next()
		if n == -1 {
			break
		}
		seen[n] = true
	}
	assert.True(t, seen[1])
	assert.True(t, seen[3])
	assert.Len(t, seen, 2)
}

func ExampleReindex() {
	m := []int{5, 5, 2}
	Reindex(m)
	_ = m
}

// checkInvariants asserts invariants (a)-(e) against a Partition's
// committed state: reference/stage share a length, every reference label
// is an occupied (not free, not merely reserved) slot, each slot's
// recorded size matches its actual population, n_labels counts exactly the
// occupied slots, and max_label dominates every one of them.
func checkInvariants(t *testing.T, p *Partition) {
	t.Helper()

	require.Equal(t, len(p.reference), len(p.stage), "(a) reference and stage must share a length")

	counts := make([]int, len(p.communitySizes))
	for i, l := range p.reference {
		require.True(t, l >= 0 && l < len(p.communitySizes), "reference[%d]=%d out of range", i, l)
		counts[l]++
	}
	for i, l := range p.reference {
		assert.Greater(t, p.communitySizes[l], 0, "(b) reference[%d]=%d must be an occupied slot", i, l)
	}

	for l, sz := range p.communitySizes {
		if sz == -1 {
			continue // reserved, population not yet committed
		}
		assert.Equal(t, counts[l], sz, "(c) communitySizes[%d]", l)
	}

	occupied := 0
	for _, sz := range p.communitySizes {
		if sz > 0 {
			occupied++
		}
	}
	assert.Equal(t, occupied, p.nLabels, "(d) nLabels must count occupied slots")

	for l, sz := range p.communitySizes {
		if sz > 0 {
			assert.LessOrEqual(t, l, p.maxLabel, "(e) maxLabel must dominate every occupied label")
		}
	}
}

// TestPartitionInvariants exercises a sequence of mutating calls -
// AddToStage, NewLabel, RelabelMask, MergeLabels, each followed by
// CommitChanges - and checks invariants (a)-(e) hold after every one, the
// way core's method tests re-check a graph's structural invariants after
// each mutation rather than only at the end of a test.
func TestPartitionInvariants(t *testing.T) {
	p := New([]int{0, 0, 1, 1, 2, 2, 2})
	checkInvariants(t, p)

	p.AddToStage(0, 1, 0.5)
	p.CommitChanges()
	checkInvariants(t, p)

	p.RelabelMask([]bool{true, false, false, false, false, false, false})
	p.CommitChanges()
	checkInvariants(t, p)

	p.MergeLabels(1, 2)
	p.CommitChanges()
	checkInvariants(t, p)

	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 25; round++ {
		switch rng.Intn(3) {
		case 0:
			node := rng.Intn(p.NNodes())
			target := p.Label(rng.Intn(p.NNodes()))
			p.AddToStage(node, target, rng.Float64())
		case 1:
			mask := make([]bool, p.NNodes())
			mask[rng.Intn(p.NNodes())] = true
			p.RelabelMask(mask)
		case 2:
			var occupied []int
			for l := 0; l <= p.MaxLabel(); l++ {
				if p.CommunitySize(l) > 0 {
					occupied = append(occupied, l)
				}
			}
			if len(occupied) >= 2 {
				i := rng.Intn(len(occupied))
				j := rng.Intn(len(occupied) - 1)
				if j >= i {
					j++
				}
				p.MergeLabels(occupied[i], occupied[j])
			}
		}
		p.CommitChanges()
		checkInvariants(t, p)
	}
}
