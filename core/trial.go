package core

import "math/rand"

// RunTrial simulates a single walk from start until absorption at 0 or
// bound and returns the accumulated cost. One uniform draw is consumed per
// step; the cost accrues before the move, so the absorbing state itself
// adds nothing. For p in (0,1) and a finite bound, absorption happens with
// probability 1, so no step cap is imposed and the simulated process
// matches the analytic model exactly.
//
// The caller owns the random source. Concurrent trials must use separate
// (independently seeded) sources.
func RunTrial(rng *rand.Rand, start, bound int, p, stepCost float64) float64 {
	state := start
	cost := 0.0
	for state > 0 && state < bound {
		cost += stepCost
		if rng.Float64() < p {
			state++
		} else {
			state--
		}
	}
	return cost
}
