package nmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareIdenticalPartitionsScoreOne(t *testing.T) {
	a := []int{0, 0, 1, 1, 2, 2}
	assert.InDelta(t, 1.0, Compare(a, a), 1e-9)
}

func TestCompareRelabeledPartitionsScoreOne(t *testing.T) {
	a := []int{0, 0, 1, 1}
	b := []int{5, 5, 9, 9}
	assert.InDelta(t, 1.0, Compare(a, b), 1e-9)
}

func TestCompareIsSymmetric(t *testing.T) {
	a := []int{0, 0, 1, 1, 2, 0}
	b := []int{1, 0, 0, 1, 1, 0}
	assert.InDelta(t, Compare(a, b), Compare(b, a), 1e-9)
}

func TestCompareUnrelatedPartitionsScoresLow(t *testing.T) {
	// every node in its own singleton label vs. everyone in one label:
	// b carries no information about a's structure.
	a := []int{0, 1, 2, 3}
	b := []int{0, 0, 0, 0}
	assert.InDelta(t, 0.0, Compare(a, b), 1e-9)
}

func ExampleCompare() {
	_ = Compare([]int{0, 0, 1}, []int{1, 1, 0})
}
