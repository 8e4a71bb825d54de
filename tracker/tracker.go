// Package tracker implements the mode-selection state machine that
// decides, at every step of a clustering run, whether to propagate labels
// typically, burst large communities apart, merge well-connected ones, or
// nurture the worst-fit nodes - and when the run has produced enough stable
// partitions to stop.
package tracker

// Mode identifies which update step a Tracker has selected for the current
// time step.
type Mode int

// The four update modes SpeakEasy 2 cycles through.
const (
	Typical Mode = iota
	Bubble
	Merge
	Nurture
	numModes
)

const postPeakBubbleLimit = 2

// Tracker carries all the state needed to pick the next mode and to decide
// when a run has converged.
type Tracker struct {
	mode Mode

	timeSinceLast [numModes]int

	allowedToMerge        bool
	maxPrevMergeThreshold float64
	isPartitionStable     bool
	hasPartitionChanged   bool

	bubblingHasPeaked         bool
	smallestCommunityToBubble int
	timeSinceBubblingPeaked   int
	maxLabelsAfterBubbling    int
	labelsAfterLastBubbling   int

	postInterventionCount int
	nPartitions           int
	interventionEvent     bool
}

// New creates a Tracker for a run. Every stable merge step increments a
// counter that starts at 1-discardTransient; each increment that leaves it
// positive is an intervention event to be saved, and the run terminates
// once the counter reaches targetPartitions. With discardTransient >= 1
// that discards the first discardTransient-1 stable merges (so saving
// doesn't start before the clustering has settled down) and saves the next
// targetPartitions.
func New(minClust, discardTransient, targetPartitions int) *Tracker {
	return &Tracker{
		mode:                      Typical,
		hasPartitionChanged:       true,
		smallestCommunityToBubble: minClust,
		postInterventionCount:     -discardTransient + 1,
		nPartitions:               targetPartitions,
	}
}

// Mode returns the mode selected for the current step.
func (t *Tracker) Mode() Mode { return t.mode }

// TimeSinceLast returns how many steps have elapsed since m last ran.
func (t *Tracker) TimeSinceLast(m Mode) int { return t.timeSinceLast[m] }

// HasPartitionChanged reports whether the last typical step changed any
// label.
func (t *Tracker) HasPartitionChanged() bool { return t.hasPartitionChanged }

// SmallestCommunityToBubble returns the minimum community size eligible to
// be burst apart.
func (t *Tracker) SmallestCommunityToBubble() int { return t.smallestCommunityToBubble }

// MaxPrevMergeThreshold returns a pointer to the running best merge
// improvement seen so far, for label.MergeWellConnectedCommunities to read
// and update directly.
func (t *Tracker) MaxPrevMergeThreshold() *float64 { return &t.maxPrevMergeThreshold }

// DoTerminate reports whether the run has collected enough partitions to
// stop.
func (t *Tracker) DoTerminate() bool { return t.postInterventionCount >= t.nPartitions }

// DoSavePartition reports whether this step's intervention should be
// recorded into the partition store.
func (t *Tracker) DoSavePartition() bool { return t.interventionEvent }

// SetChanged records whether a typical step actually moved any label.
func (t *Tracker) SetChanged(changed bool) { t.hasPartitionChanged = changed }

// RecordBubbleOutcome records the label count produced by a bubble step.
func (t *Tracker) RecordBubbleOutcome(nLabels int) { t.labelsAfterLastBubbling = nLabels }

// RecordMergeOutcome records whether a merge step found the partition
// stable (no merge applied).
func (t *Tracker) RecordMergeOutcome(stable bool) { t.isPartitionStable = stable }

// SelectMode picks the mode for the given time step. The first 20 steps
// are always typical, to give the initial seed labels time to settle
// before any structural intervention.
func (t *Tracker) SelectMode(time int) {
	t.mode = Typical
	if time < 20 {
		return
	}

	if t.allowedToMerge {
		if t.timeSinceLast[Merge] > 1 && t.timeSinceLast[Bubble] > 3 {
			t.mode = Merge
		}
		return
	}

	if t.timeSinceLast[Merge] > 2 && t.timeSinceLast[Bubble] > 14 {
		t.mode = Bubble
		return
	}
	if t.timeSinceLast[Merge] > 1 && t.timeSinceLast[Bubble] < 5 {
		t.mode = Nurture
	}
}

// PostStepHook updates the elapsed-time counters and mode-specific state
// after a step has run, and decides whether this step counts as an
// intervention event to be saved.
func (t *Tracker) PostStepHook() {
	t.interventionEvent = false
	t.timeSinceLast[t.mode] = 0
	for i := range t.timeSinceLast {
		t.timeSinceLast[i]++
	}

	switch t.mode {
	case Bubble:
		if !t.bubblingHasPeaked {
			if t.labelsAfterLastBubbling > 2 &&
				float64(t.maxLabelsAfterBubbling) > float64(t.labelsAfterLastBubbling)*0.9 {
				t.bubblingHasPeaked = true
			}
			if t.labelsAfterLastBubbling > t.maxLabelsAfterBubbling {
				t.maxLabelsAfterBubbling = t.labelsAfterLastBubbling
			}
		}
		if t.bubblingHasPeaked {
			t.timeSinceBubblingPeaked++
			if t.timeSinceBubblingPeaked >= postPeakBubbleLimit {
				t.timeSinceBubblingPeaked = 0
				t.allowedToMerge = true
			}
		}
	case Merge:
		t.bubblingHasPeaked = false
		t.timeSinceBubblingPeaked = 0
		t.maxLabelsAfterBubbling = 0
		if t.isPartitionStable {
			t.allowedToMerge = false
			t.postInterventionCount++
			if t.postInterventionCount > 0 {
				t.interventionEvent = true
			}
		}
	}
}
