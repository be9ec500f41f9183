package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruinlab/ruin/core"
)

func testParams() core.WalkParameters {
	return core.WalkParameters{Boundary: 10, Start: 5, WinProb: 0.5, StepCost: 1, Trials: 2000}
}

func TestRunner_RejectsInvalidParams(t *testing.T) {
	r := NewRunner(1)
	params := testParams()
	params.WinProb = 1.5

	run, err := r.Run(params, nil)
	require.Error(t, err)
	assert.Nil(t, run)

	var verr *core.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "winProb", verr.Param)
}

func TestRunner_EndToEnd(t *testing.T) {
	r := NewRunner(42)
	run, err := r.Run(testParams(), nil)
	require.NoError(t, err)

	// Unbiased walk from 5 on {0..10} at $1/step: exactly 25.
	assert.Equal(t, 25.0, run.AnalyticCost)

	assert.Len(t, run.Costs, 2000)
	// Duration stddev for this walk is on the order of the mean; with 2000
	// trials the empirical mean sits within a couple of steps of 25.
	assert.InDelta(t, 25.0, run.Stats.Mean, 3.0)
	assert.Len(t, run.Histogram.Counts, DefaultBins)

	total := 0
	for _, c := range run.Histogram.Counts {
		total += c
	}
	assert.Equal(t, 2000, total)
}

func TestRunner_ProgressMonotonicAndComplete(t *testing.T) {
	r := NewRunner(7)
	r.BatchSize = 300 // deliberately not a divisor of Trials

	var fractions []float64
	_, err := r.Run(testParams(), func(fraction float64) {
		fractions = append(fractions, fraction)
	})
	require.NoError(t, err)
	require.NotEmpty(t, fractions)

	for i := 1; i < len(fractions); i++ {
		assert.Greater(t, fractions[i], fractions[i-1], "progress must increase")
	}
	assert.Equal(t, 1.0, fractions[len(fractions)-1])
}

func TestRunner_ParallelWorkersMatchSampleSize(t *testing.T) {
	r := NewRunner(11)
	r.Workers = 4
	r.BatchSize = 250

	run, err := r.Run(testParams(), nil)
	require.NoError(t, err)
	assert.Len(t, run.Costs, 2000)
	assert.InDelta(t, 25.0, run.Stats.Mean, 3.0)
}

func TestRunner_SecondRunWhileInFlightFails(t *testing.T) {
	r := NewRunner(3)

	var nested error
	_, err := r.Run(testParams(), func(fraction float64) {
		if nested == nil {
			_, nested = r.Run(testParams(), nil)
		}
	})
	require.NoError(t, err)
	assert.ErrorIs(t, nested, ErrRunInFlight)
}

func TestRunner_RunsAreSupersededNotMutated(t *testing.T) {
	r := NewRunner(5)
	first, err := r.Run(testParams(), nil)
	require.NoError(t, err)
	firstMean := first.Stats.Mean

	r.Seed = 6
	second, err := r.Run(testParams(), nil)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, firstMean, first.Stats.Mean)
}

func TestRunner_DeterministicForSeed(t *testing.T) {
	a, err := NewRunner(99).Run(testParams(), nil)
	require.NoError(t, err)
	b, err := NewRunner(99).Run(testParams(), nil)
	require.NoError(t, err)
	assert.Equal(t, a.Costs, b.Costs)
	assert.Equal(t, a.Stats, b.Stats)
	assert.Equal(t, a.Histogram, b.Histogram)
}
