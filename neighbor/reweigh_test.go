package neighbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReweighUnweightedOnlyInstallsSelfLoops(t *testing.T) {
	v, err := NewView([][]int{{1}, {0}}, nil)
	require.NoError(t, err)

	Reweigh(v)

	for i := 0; i < v.VCount(); i++ {
		assert.Contains(t, v.Neighbors(i), i)
		assert.False(t, v.HasWeights())
	}
}

func TestReweighDeduplicatesSelfLoops(t *testing.T) {
	v, err := NewView(
		[][]int{{0, 1, 0}, {0}},
		[][]float64{{5, 1, 5}, {1}},
	)
	require.NoError(t, err)

	Reweigh(v)

	count := 0
	for _, nb := range v.Neighbors(0) {
		if nb == 0 {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, len(v.Neighbors(0)), len(v.Weights(0)))
}

func TestReweighEveryNodeGetsExactlyOneSelfLoop(t *testing.T) {
	v, err := NewView(
		[][]int{{1, 2}, {0, 2}, {1}},
		[][]float64{{1, 1}, {1, 1}, {1}},
	)
	require.NoError(t, err)

	Reweigh(v)

	for i := 0; i < v.VCount(); i++ {
		count := 0
		for _, nb := range v.Neighbors(i) {
			if nb == i {
				count++
			}
		}
		assert.Equal(t, 1, count, "node %d", i)
	}
}

func TestReweighUnskewedDiagonalIsOne(t *testing.T) {
	v, err := NewView(
		[][]int{{1}, {0}},
		[][]float64{{1}, {1}},
	)
	require.NoError(t, err)

	Reweigh(v)

	for i := 0; i < v.VCount(); i++ {
		nb := v.Neighbors(i)
		w := v.Weights(i)
		for j, n := range nb {
			if n == i {
				assert.Equal(t, 1.0, w[j])
			}
		}
	}
}

func TestReweighIsIdempotentOnSecondPass(t *testing.T) {
	v, err := NewView(
		[][]int{{1}, {0}},
		[][]float64{{3}, {3}},
	)
	require.NoError(t, err)

	Reweigh(v)
	first := append([]float64(nil), v.Weights(0)...)

	Reweigh(v)
	second := v.Weights(0)

	assert.Equal(t, len(first), len(second))
	assert.InDeltaSlice(t, first, second, 1e-9)
}
