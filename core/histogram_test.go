package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHistogram_Empty(t *testing.T) {
	for _, bins := range []int{1, 5, 20} {
		h := BuildHistogram(nil, bins)
		assert.Empty(t, h.Labels)
		assert.Empty(t, h.Counts)
	}
}

func TestBuildHistogram_ZeroRange(t *testing.T) {
	// All costs identical: bin width falls back to 1, everything lands in
	// the first bucket, remaining buckets stay present and empty.
	h := BuildHistogram([]float64{7, 7, 7}, 5)
	require.Len(t, h.Counts, 5)
	require.Len(t, h.Labels, 5)
	assert.Equal(t, []int{3, 0, 0, 0, 0}, h.Counts)
	assert.Equal(t, "$7 - $8", h.Labels[0])
	assert.Equal(t, "$11 - $12", h.Labels[4])
}

func TestBuildHistogram_CountsSumToSampleSize(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	costs := make([]float64, 500)
	for i := range costs {
		costs[i] = rng.Float64() * 250
	}
	for _, bins := range []int{1, 2, 7, 20} {
		h := BuildHistogram(costs, bins)
		require.Len(t, h.Counts, bins)
		total := 0
		for _, c := range h.Counts {
			total += c
		}
		assert.Equal(t, len(costs), total, "bins=%d", bins)
	}
}

func TestBuildHistogram_MaxClampsIntoLastBin(t *testing.T) {
	// The max cost computes to bin index numBins and must be folded back.
	h := BuildHistogram([]float64{0, 10}, 4)
	require.Len(t, h.Counts, 4)
	assert.Equal(t, []int{1, 0, 0, 1}, h.Counts)
}

func TestBuildHistogram_LabelsRoundForDisplayOnly(t *testing.T) {
	// Range [0, 10] over 4 bins: width 2.5. Bounds round to the nearest
	// dollar in the labels while binning stays on the exact bounds.
	h := BuildHistogram([]float64{0, 2.4, 2.6, 10}, 4)
	require.Len(t, h.Labels, 4)
	assert.Equal(t, "$0 - $3", h.Labels[0])
	assert.Equal(t, "$3 - $5", h.Labels[1])
	assert.Equal(t, "$5 - $8", h.Labels[2])
	assert.Equal(t, "$8 - $10", h.Labels[3])
	assert.Equal(t, []int{2, 1, 0, 1}, h.Counts)
}

func TestBuildHistogram_OrderInsensitive(t *testing.T) {
	a := BuildHistogram([]float64{1, 5, 9, 3, 7}, 3)
	b := BuildHistogram([]float64{9, 3, 7, 5, 1}, 3)
	assert.Equal(t, a, b)
}
