package core

import (
	"math"
	"sort"
)

// Stats holds descriptive statistics for a finalized sample of trial
// costs. All fields are derived once; the zero value is the degenerate
// result for an empty sample.
type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// ComputeStats aggregates a cost sample into mean, population standard
// deviation, min/max and interpolated quartiles. The input slice is sorted
// on a copy and never mutated, so callers can reuse it for histogramming.
func ComputeStats(costs []float64) Stats {
	if len(costs) == 0 {
		return Stats{}
	}

	sorted := append([]float64(nil), costs...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, c := range sorted {
		sum += c
	}
	mean := sum / float64(len(sorted))

	varianceSum := 0.0
	for _, c := range sorted {
		d := c - mean
		varianceSum += d * d
	}

	return Stats{
		Mean:   mean,
		StdDev: math.Sqrt(varianceSum / float64(len(sorted))),
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

// quantile returns the q-th quantile of a sorted sample using linear
// interpolation between adjacent order statistics (the R-7 rule, matching
// Excel's PERCENTILE), not nearest-rank.
func quantile(sorted []float64, q float64) float64 {
	pos := float64(len(sorted)-1) * q
	base := int(math.Floor(pos))
	if base >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(base)
	return sorted[base] + frac*(sorted[base+1]-sorted[base])
}
