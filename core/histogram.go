package core

import (
	"fmt"
	"math"
)

// Histogram bins a cost sample into equal-width buckets. Labels and Counts
// are index-aligned and ordered by increasing cost range; empty buckets
// are present with a zero count.
type Histogram struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// BuildHistogram bins costs into numBins equal-width buckets over
// [min, max]. When every cost is identical the bin width falls back to 1,
// which puts the whole sample in the first bucket and keeps the remaining
// buckets empty rather than dividing by zero. Labels round the bucket
// bounds to whole dollars for display; binning uses the unrounded bounds.
func BuildHistogram(costs []float64, numBins int) Histogram {
	if len(costs) == 0 {
		return Histogram{Labels: []string{}, Counts: []int{}}
	}

	lo, hi := costs[0], costs[0]
	for _, c := range costs[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}

	width := 1.0
	if hi > lo {
		width = (hi - lo) / float64(numBins)
	}

	counts := make([]int, numBins)
	for _, c := range costs {
		idx := int(math.Floor((c - lo) / width))
		// A cost equal to the sample max lands exactly on numBins; fold it
		// into the last bucket.
		if idx >= numBins {
			idx = numBins - 1
		}
		counts[idx]++
	}

	labels := make([]string, numBins)
	for i := range labels {
		lower := lo + float64(i)*width
		upper := lower + width
		labels[i] = fmt.Sprintf("$%d - $%d",
			int64(math.Round(lower)), int64(math.Round(upper)))
	}

	return Histogram{Labels: labels, Counts: counts}
}
