package engine

import (
	"math/rand"

	"github.com/se2-go/speakeasy2/label"
	"github.com/se2-go/speakeasy2/neighbor"
	"github.com/se2-go/speakeasy2/partition"
	"github.com/se2-go/speakeasy2/tracker"
)

// runCore drives a single independent run to termination, storing every
// intervention partition into store starting at offset.
func runCore(view *neighbor.View, p *partition.Partition, tr *tracker.Tracker, store [][]int, offset int, rng *rand.Rand) {
	idx := offset
	for time := 0; !tr.DoTerminate(); time++ {
		runStep(view, p, tr, rng, time)
		if tr.DoSavePartition() {
			p.Store(store[idx])
			idx++
		}
	}
}

// runStep selects and dispatches a single mode step, then runs the
// tracker's bookkeeping hook.
func runStep(view *neighbor.View, p *partition.Partition, tr *tracker.Tracker, rng *rand.Rand, time int) {
	tr.SelectMode(time)

	switch tr.Mode() {
	case tracker.Typical:
		if tr.TimeSinceLast(tracker.Typical) == 1 && !tr.HasPartitionChanged() {
			break
		}
		changed := label.Typical(view, p, rng)
		tr.SetChanged(changed)
	case tracker.Bubble:
		label.BurstLargeCommunities(p, 0.9, tr.SmallestCommunityToBubble(), rng)
		tr.RecordBubbleOutcome(p.NLabels())
	case tracker.Merge:
		stable := label.MergeWellConnectedCommunities(view, p, tr.MaxPrevMergeThreshold())
		tr.RecordMergeOutcome(stable)
	case tracker.Nurture:
		label.Nurture(view, p, rng)
	}

	tr.PostStepHook()
}
