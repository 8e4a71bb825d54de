package partition

import (
	"math/rand"
	"sort"
)

// Iterator walks a fixed set of ids (nodes or labels) in a possibly
// shuffled order, stopping after nIter steps. Next auto-rewinds the
// position to 0 when the walk is exhausted, so a second walk over the same
// Iterator repeats the same order without an explicit Reset call.
type Iterator struct {
	ids   []int
	nIter int
	pos   int
	rng   *rand.Rand
}

// NewVectorIterator wraps an externally supplied id slice; it never owns
// or shuffles the slice.
func NewVectorIterator(ids []int, nIter int) *Iterator {
	return &Iterator{ids: ids, nIter: nIter}
}

// NewRandomNodeIterator walks a random sample of every node index. A
// fraction of 0 visits all nodes.
func NewRandomNodeIterator(p *Partition, fraction float64, rng *rand.Rand) *Iterator {
	n := p.NNodes()
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	nIter := n
	if fraction != 0 {
		nIter = int(fraction * float64(n))
	}
	it := &Iterator{ids: ids, nIter: nIter, rng: rng}
	it.Shuffle()
	return it
}

// NewRandomLabelIterator walks a random sample of the currently occupied
// labels. A fraction of 0 visits every occupied label.
func NewRandomLabelIterator(p *Partition, fraction float64, rng *rand.Rand) *Iterator {
	ids := make([]int, 0, p.nLabels)
	for l, s := range p.communitySizes {
		if s > 0 {
			ids = append(ids, l)
		}
	}
	nIter := len(ids)
	if fraction != 0 {
		nIter = int(fraction * float64(len(ids)))
	}
	it := &Iterator{ids: ids, nIter: nIter, rng: rng}
	it.Shuffle()
	return it
}

// NewKWorstFitIterator walks the k nodes with the lowest recorded quality
// score, in a shuffled order.
func NewKWorstFitIterator(p *Partition, k int, rng *rand.Rand) *Iterator {
	n := p.NNodes()
	if k > n {
		k = n
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	sort.SliceStable(ids, func(a, b int) bool {
		return p.quality[ids[a]] < p.quality[ids[b]]
	})
	ids = ids[:k]

	it := &Iterator{ids: ids, nIter: k, rng: rng}
	it.Shuffle()
	return it
}

// Next returns the next id, or -1 once nIter ids have been produced. An
// exhausted Iterator rewinds itself so the next call starts a fresh walk.
func (it *Iterator) Next() int {
	if it.pos == it.nIter {
		it.pos = 0
		return -1
	}
	v := it.ids[it.pos]
	it.pos++
	return v
}

// Reset rewinds the walk to its start without reshuffling.
func (it *Iterator) Reset() { it.pos = 0 }

// Shuffle randomizes the id order and rewinds the walk. A no-op when the
// Iterator has no rng (vector iterators never shuffle).
func (it *Iterator) Shuffle() {
	it.pos = 0
	if it.rng == nil {
		return
	}
	it.rng.Shuffle(len(it.ids), func(i, j int) {
		it.ids[i], it.ids[j] = it.ids[j], it.ids[i]
	})
}
