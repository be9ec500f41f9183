// Package core implements the closed-form and Monte Carlo machinery for
// absorbing random walks on {0..N} (the gambler's ruin process): the
// analytic expected-cost solver, single-trial simulation, descriptive
// statistics and histogram binning.
package core

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Parameter bounds enforced by WalkParameters.Validate. Trials is bounded
// so worst-case runtime stays bounded without a per-run timeout.
const (
	MinBoundary = 2
	MaxBoundary = 100
	MinTrials   = 1000
	MaxTrials   = 100000
)

// WalkParameters describes one gambler's ruin experiment. The walk starts
// at Start, moves +1 with probability WinProb (else -1), pays StepCost per
// step and stops at 0 or Boundary. Trials is the number of independent
// walks to simulate. Immutable once constructed; callers must Validate
// before handing it to the solver or the simulator.
type WalkParameters struct {
	Boundary int     `json:"boundary" validate:"gte=2,lte=100"`
	Start    int     `json:"start" validate:"gte=1,ltfield=Boundary"`
	WinProb  float64 `json:"winProb" validate:"gt=0,lt=1"`
	StepCost float64 `json:"stepCost" validate:"gt=0"`
	Trials   int     `json:"trials" validate:"gte=1000,lte=100000"`
}

// ValidationError reports a single parameter that violates its documented
// range. It is returned before any computation starts.
type ValidationError struct {
	Param   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Message)
}

var walkValidate = validator.New()

// Human-readable constraints, keyed by struct field name. Kept in sync
// with the validate tags above.
var paramConstraints = map[string][2]string{
	"Boundary": {"boundary", "must be an integer between 2 and 100"},
	"Start":    {"start", "must be an integer between 1 and boundary-1"},
	"WinProb":  {"winProb", "must be strictly between 0 and 1"},
	"StepCost": {"stepCost", "must be greater than 0"},
	"Trials":   {"trials", "must be an integer between 1000 and 100000"},
}

// Validate checks every parameter against its documented range and returns
// a *ValidationError naming the first violated one. Fields are checked in
// declaration order, so a bad Boundary is reported before the dependent
// Start < Boundary constraint.
func (wp WalkParameters) Validate() error {
	err := walkValidate.Struct(wp)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if c, ok := paramConstraints[verrs[0].StructField()]; ok {
			return &ValidationError{Param: c[0], Message: c[1]}
		}
	}
	return fmt.Errorf("parameter validation failed: %w", err)
}
