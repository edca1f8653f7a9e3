package equity

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/crosspeg/crosspeg/config"
)

// ErrLengthMismatch is returned when the two batch input slices differ
// in length.
var ErrLengthMismatch = errors.New("states and move counts differ in length")

// minParallelBatch is the batch size below which the goroutine handoff
// costs more than the evaluations themselves.
const minParallelBatch = 512

// BatchCalculator applies an Evaluator elementwise over many positions.
// Every element is independent, so large batches are chunked across a
// worker pool; the result slice always preserves input order.
type BatchCalculator struct {
	evaluator Evaluator
	workers   int
}

// NewBatchCalculator wraps ev. workers <= 0 means one worker per CPU.
func NewBatchCalculator(ev Evaluator, workers int) *BatchCalculator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchCalculator{evaluator: ev, workers: workers}
}

// NewBatchCalculatorFromConfig sizes the worker pool from cfg.
func NewBatchCalculatorFromConfig(cfg *config.Config, ev Evaluator) *BatchCalculator {
	return NewBatchCalculator(ev, cfg.BatchWorkers)
}

// EvaluateBatch scores states[i] with moveCounts[i] for every i.
func (bc *BatchCalculator) EvaluateBatch(states []uint64, moveCounts []int) ([]float64, error) {
	if len(states) != len(moveCounts) {
		return nil, fmt.Errorf("%w: %d states, %d move counts",
			ErrLengthMismatch, len(states), len(moveCounts))
	}
	scores := make([]float64, len(states))
	if bc.workers == 1 || len(states) < minParallelBatch {
		for i, state := range states {
			scores[i] = bc.evaluator.Evaluate(state, moveCounts[i])
		}
		return scores, nil
	}

	log.Debug().Msgf("Evaluating batch of %v with %v threads", len(states), bc.workers)
	g := errgroup.Group{}
	chunk := (len(states) + bc.workers - 1) / bc.workers
	for start := 0; start < len(states); start += chunk {
		end := start + chunk
		if end > len(states) {
			end = len(states)
		}
		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				scores[i] = bc.evaluator.Evaluate(states[i], moveCounts[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
