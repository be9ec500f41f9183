package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRunTrial_CostIsMultipleOfStepCost(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, p := range []float64{0.2, 0.5, 0.8} {
		for i := 0; i < 200; i++ {
			cost := RunTrial(rng, 3, 8, p, 2.5)
			if cost < 0 {
				t.Fatalf("negative cost %v", cost)
			}
			steps := cost / 2.5
			if steps != math.Trunc(steps) {
				t.Fatalf("cost %v is not a whole multiple of the step cost", cost)
			}
			if steps < 3 {
				// At least min(start, bound-start) steps are needed to reach
				// either boundary from state 3 on {0..8}.
				t.Fatalf("absorbed after %v steps, impossibly few", steps)
			}
		}
	}
}

func TestRunTrial_Deterministic(t *testing.T) {
	a := RunTrial(rand.New(rand.NewSource(7)), 5, 10, 0.45, 1)
	b := RunTrial(rand.New(rand.NewSource(7)), 5, 10, 0.45, 1)
	if a != b {
		t.Errorf("same seed produced different costs: %v vs %v", a, b)
	}
}

func TestRunTrial_MeanTracksAnalytic(t *testing.T) {
	// Empirical mean over many trials should land near the closed form.
	// With 40k trials the standard error is a fraction of a step, so a
	// tolerance of 5% of the expectation is far outside noise.
	cases := []struct {
		start, bound int
		p            float64
	}{
		{5, 10, 0.5},
		{3, 10, 0.6},
		{7, 12, 0.4},
	}
	for _, c := range cases {
		rng := rand.New(rand.NewSource(12345))
		const trials = 40000
		sum := 0.0
		for i := 0; i < trials; i++ {
			sum += RunTrial(rng, c.start, c.bound, c.p, 1)
		}
		got := sum / trials
		want := ExpectedSteps(c.start, c.bound, c.p)
		if math.Abs(got-want) > 0.05*want+0.5 {
			t.Errorf("start=%d bound=%d p=%v: empirical mean %v too far from analytic %v",
				c.start, c.bound, c.p, got, want)
		}
	}
}
