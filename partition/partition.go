// Package partition holds the label membership of a clustering run: a
// two-slot store (staged vs. committed), a tagged label-pool allocator, and
// the canonical reindexing used to compare partitions across runs.
package partition

import "sort"

// Partition tracks a node-to-label membership. reference is the last
// committed assignment; stage accumulates a round's proposed changes until
// CommitChanges copies it back into reference. communitySizes doubles as
// the label pool: a slot is 0 (free), -1 (reserved, population not yet
// committed) or >0 (occupied, holding the community's size).
type Partition struct {
	reference      []int
	stage          []int
	quality        []float64
	communitySizes []int
	nLabels        int
	maxLabel       int
}

// New builds a Partition from an initial membership vector. The vector is
// copied; New never aliases the caller's slice.
func New(initial []int) *Partition {
	p := &Partition{
		reference: append([]int(nil), initial...),
		stage:     append([]int(nil), initial...),
		quality:   make([]float64, len(initial)),
	}
	p.communitySizes, p.nLabels, p.maxLabel = countLabels(initial)
	return p
}

func countLabels(membership []int) (sizes []int, nLabels, maxLabel int) {
	for _, l := range membership {
		if l > maxLabel {
			maxLabel = l
		}
	}
	sizes = make([]int, maxLabel+1)
	for _, l := range membership {
		sizes[l]++
	}
	for _, s := range sizes {
		if s > 0 {
			nLabels++
		}
	}
	return sizes, nLabels, maxLabel
}

// NNodes returns the number of nodes tracked by the partition.
func (p *Partition) NNodes() int { return len(p.reference) }

// NLabels returns the number of occupied labels.
func (p *Partition) NLabels() int { return p.nLabels }

// MaxLabel returns the highest occupied label index.
func (p *Partition) MaxLabel() int { return p.maxLabel }

// Label returns node i's committed label.
func (p *Partition) Label(i int) int { return p.reference[i] }

// Quality returns node i's last-recorded specificity score.
func (p *Partition) Quality(i int) float64 { return p.quality[i] }

// CommunitySize returns the committed population of a label, 0 for a free
// slot.
func (p *Partition) CommunitySize(label int) int {
	if label < 0 || label >= len(p.communitySizes) {
		return 0
	}
	return p.communitySizes[label]
}

// AddToStage records a proposed label and its specificity score for node i,
// without touching community sizes; CommitChanges recomputes those.
func (p *Partition) AddToStage(node, label int, quality float64) {
	p.stage[node] = label
	p.quality[node] = quality
}

// NewLabel reserves and returns the lowest free label slot, growing the
// pool if every existing slot is occupied.
func (p *Partition) NewLabel() int {
	next := 0
	for next < len(p.communitySizes) && p.communitySizes[next] != 0 {
		next++
	}
	if next == len(p.communitySizes) {
		p.communitySizes = append(p.communitySizes, 0)
	}
	p.communitySizes[next] = -1
	if next > p.maxLabel {
		p.maxLabel = next
	}
	p.nLabels++
	return next
}

func (p *Partition) freeLabel(label int) {
	p.communitySizes[label] = 0
	for p.maxLabel > 0 && p.communitySizes[p.maxLabel] == 0 {
		p.maxLabel--
	}
	p.nLabels--
}

// MergeLabels folds c2 into c1, keeping whichever of the two currently
// holds the larger community so the smaller one is the one relabeled.
func (p *Partition) MergeLabels(c1, c2 int) {
	if p.CommunitySize(c2) > p.CommunitySize(c1) {
		c1, c2 = c2, c1
	}
	for i, l := range p.stage {
		if l == c2 {
			p.stage[i] = c1
		}
	}
	p.freeLabel(c2)
}

// RelabelMask allocates a fresh label and assigns it, on stage, to every
// node where mask is true.
func (p *Partition) RelabelMask(mask []bool) int {
	label := p.NewLabel()
	for i, m := range mask {
		if m {
			p.stage[i] = label
		}
	}
	return label
}

// CommitChanges copies stage into reference, recomputes community sizes
// and reports whether anything actually changed.
func (p *Partition) CommitChanges() bool {
	changed := false
	for i := range p.reference {
		if p.reference[i] != p.stage[i] {
			changed = true
			break
		}
	}
	copy(p.reference, p.stage)
	p.communitySizes, p.nLabels, p.maxLabel = countLabels(p.reference)
	return changed
}

// MedianCommunitySize returns the median size across occupied labels, or
// the full node count when there's only one label.
func (p *Partition) MedianCommunitySize() int {
	if p.nLabels == 1 {
		return len(p.reference)
	}
	sizes := make([]int, 0, p.nLabels)
	for _, s := range p.communitySizes {
		if s > 0 {
			sizes = append(sizes, s)
		}
	}
	return int(MedianInt(sizes))
}

// Store copies the committed membership into dest and reindexes it to the
// canonical dense 0..k-1 form used to compare partitions.
func (p *Partition) Store(dest []int) {
	copy(dest, p.reference)
	Reindex(dest)
}

// Reindex remaps membership in place to dense labels 0..k-1, assigned in
// ascending order of the original label values (ties broken by node index,
// via a stable sort), so two partitions with the same grouping but
// different label numbering compare equal.
func Reindex(membership []int) {
	n := len(membership)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return membership[idx[a]] < membership[idx[b]]
	})

	cNew, cPrev := -1, -1
	for _, i := range idx {
		cOld := membership[i]
		if cOld != cPrev {
			cNew++
			cPrev = cOld
		}
		membership[i] = cNew
	}
}

// MedianInt returns the median of an int slice without mutating it.
func MedianInt(vals []int) float64 {
	sorted := append([]int(nil), vals...)
	sort.Ints(sorted)
	return medianOfSorted(sorted)
}

// MedianFloat returns the median of a float64 slice without mutating it.
func MedianFloat(vals []float64) float64 {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	return medianOfSortedFloat(sorted)
}

func medianOfSorted(sorted []int) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	length := n - 1
	k := length / 2
	res := float64(sorted[k])
	if length%2 == 1 {
		res = (res + float64(sorted[k+1])) / 2
	}
	return res
}

func medianOfSortedFloat(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	length := n - 1
	k := length / 2
	res := sorted[k]
	if length%2 == 1 {
		res = (res + sorted[k+1]) / 2
	}
	return res
}
