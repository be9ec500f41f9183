package sim

import (
	"math/rand"
	"sync"

	"github.com/ruinlab/ruin/core"
)

// runTrialBatches executes totalTrials independent walks, grouped into
// batches of batchsize (the final batch absorbs the remainder) and split
// across numworkers goroutines. Each worker owns a separately seeded
// rand.Rand so draws never correlate across streams. onBatch fires once
// per completed batch, serialized across workers.
//
// Results come back indexed by batch, so the overall collection order is
// stable regardless of worker interleaving.
func runTrialBatches(params core.WalkParameters, totalTrials, batchsize, numworkers int, baseSeed int64, onBatch func(batch int, costs []float64)) [][]float64 {
	nbatches := (totalTrials + batchsize - 1) / batchsize
	if numworkers > nbatches {
		numworkers = nbatches
	}

	results := make([][]float64, nbatches)
	batchesPerWorker := (nbatches + numworkers - 1) / numworkers

	var wg sync.WaitGroup
	var cbMu sync.Mutex

	for i := 0; i < numworkers; i++ {
		wg.Add(1)
		go func(workerIndex int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(baseSeed + int64(workerIndex)*1337))

			startBatch := workerIndex * batchesPerWorker
			endBatch := min((workerIndex+1)*batchesPerWorker, nbatches)

			for batch := startBatch; batch < endBatch; batch++ {
				size := batchsize
				if batch == nbatches-1 {
					size = totalTrials - batch*batchsize
				}
				costs := make([]float64, 0, size)
				for t := 0; t < size; t++ {
					costs = append(costs, core.RunTrial(rng, params.Start, params.Boundary, params.WinProb, params.StepCost))
				}
				results[batch] = costs
				if onBatch != nil {
					cbMu.Lock()
					onBatch(batch, costs)
					cbMu.Unlock()
				}
			}
		}(i)
	}

	wg.Wait()
	return results
}
