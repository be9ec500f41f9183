// Package sim orchestrates gambler's ruin simulation runs: parameter
// validation, the analytic solve, batched trial execution with progress
// reporting, and the consolidated result.
package sim

import (
	"errors"
	"sync"
	"time"

	"github.com/ruinlab/ruin/core"
)

const (
	DefaultBatchSize = 1000
	DefaultBins      = 20
	DefaultWorkers   = 1
)

// ErrRunInFlight is returned when Run is called while a previous run on
// the same Runner has not finished. Hosts that need overlapping runs must
// use independent Runners.
var ErrRunInFlight = errors.New("sim: a run is already in flight on this runner")

// Run is the consolidated outcome of one simulation: the validated
// parameters, the closed-form expected cost, the raw per-trial costs in
// generation order, and the derived statistics and histogram. A Run is
// immutable once returned; a later run supersedes it rather than mutating
// it.
type Run struct {
	Params       core.WalkParameters `json:"params"`
	AnalyticCost float64             `json:"analyticCost"`
	Costs        []float64           `json:"-"`
	Stats        core.Stats          `json:"stats"`
	Histogram    core.Histogram      `json:"histogram"`
	Seed         int64               `json:"seed"`
	Elapsed      time.Duration       `json:"elapsedNs"`
}

// Runner executes simulation runs one at a time. Zero-valued knobs fall
// back to the package defaults.
type Runner struct {
	BatchSize int   // trials per batch between progress reports
	Workers   int   // goroutines sharing the batches
	Bins      int   // histogram bucket count
	Seed      int64 // base RNG seed; worker i derives seed + i*1337

	mu      sync.Mutex
	running bool
}

func NewRunner(seed int64) *Runner {
	return &Runner{
		BatchSize: DefaultBatchSize,
		Workers:   DefaultWorkers,
		Bins:      DefaultBins,
		Seed:      seed,
	}
}

// Run validates params, solves the closed form once, executes the trials
// in bounded batches and returns the finalized Run. onProgress, when
// non-nil, receives completed/total fractions after each batch; reported
// fractions are strictly increasing and reach 1.0 on the final batch.
//
// Validation failures surface as *core.ValidationError before any
// computation. A concurrent call on the same Runner fails with
// ErrRunInFlight.
func (r *Runner) Run(params core.WalkParameters, onProgress func(fraction float64)) (*Run, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil, ErrRunInFlight
	}
	r.running = true
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
	}()

	batchSize := r.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	workers := r.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	bins := r.Bins
	if bins <= 0 {
		bins = DefaultBins
	}

	analytic := core.ExpectedCost(params.Start, params.Boundary, params.WinProb, params.StepCost)

	start := time.Now()
	completed := 0
	lastReported := 0.0
	// onBatch is serialized by the batch runner, so the progress watermark
	// needs no extra locking.
	batches := runTrialBatches(params, params.Trials, batchSize, workers, r.Seed, func(batch int, costs []float64) {
		completed += len(costs)
		fraction := float64(completed) / float64(params.Trials)
		if onProgress != nil && fraction > lastReported {
			lastReported = fraction
			onProgress(fraction)
		}
	})

	costs := make([]float64, 0, params.Trials)
	for _, b := range batches {
		costs = append(costs, b...)
	}

	return &Run{
		Params:       params,
		AnalyticCost: analytic,
		Costs:        costs,
		Stats:        core.ComputeStats(costs),
		Histogram:    core.BuildHistogram(costs, bins),
		Seed:         r.Seed,
		Elapsed:      time.Since(start),
	}, nil
}
