package core

import "math"

// symmetricTol guards the general formula's division by (p-q), which blows
// up as p approaches 1/2. Within this distance of 1/2 the unbiased closed
// form is used instead.
const symmetricTol = 1e-5

// ExpectedSteps returns the closed-form expected number of steps until a
// walk starting at start is absorbed at 0 or bound.
//
// Unbiased walk: T(n) = n * (N - n).
// Biased walk, with q = 1-p and r = q/p:
//
//	T(n) = [ N * (r^n - 1) / (r^N - 1) - n ] / (p - q)
//
// Both forms give 0 at n = 0 and n = N. Inputs outside [0, N] are the
// caller's bug; WalkParameters.Validate rejects them upstream.
func ExpectedSteps(start, bound int, p float64) float64 {
	n := float64(start)
	N := float64(bound)
	if math.Abs(p-0.5) < symmetricTol {
		return n * (N - n)
	}
	q := 1 - p
	r := q / p
	return (N*(math.Pow(r, n)-1)/(math.Pow(r, N)-1) - n) / (p - q)
}

// ExpectedCost is the analytic expected cumulative cost: stepCost times
// the expected step count.
func ExpectedCost(start, bound int, p, stepCost float64) float64 {
	return stepCost * ExpectedSteps(start, bound, p)
}
