package equity

import (
	"github.com/samber/lo"

	"github.com/crosspeg/crosspeg/board"
)

const (
	// pegWeight dominates the score so positions with fewer pegs
	// always rank ahead of the distance and mobility terms.
	pegWeight = 10
	// mobilityWeight rewards positions that keep more jumps available.
	mobilityWeight = 2
	// pagodaPenalty is a coarse admissibility cutoff, not a proof: it
	// only fires while many pegs remain, so the check costs nothing
	// once the state space is small.
	pagodaPenalty    = 1000
	pagodaCutoffPegs = 15
)

// HeuristicCalculator is the composite position scorer:
//
//	pegs*10 + sum of manhattan distances to center - moveCount*2
//
// plus pagodaPenalty when more than pagodaCutoffPegs remain and the
// pagoda value has already fallen below the center-cell weight.
type HeuristicCalculator struct{}

func (HeuristicCalculator) Evaluate(state uint64, moveCount int) float64 {
	pegs := board.PegCount(state)
	distanceSum := 0
	centerRow := board.CellRow(board.CenterCell)
	centerCol := board.CellCol(board.CenterCell)
	for _, pos := range board.ValidCells {
		if state>>pos&1 == 1 {
			distanceSum += intAbs(board.CellRow(pos)-centerRow) +
				intAbs(board.CellCol(pos)-centerCol)
		}
	}
	score := float64(pegs*pegWeight+distanceSum) - float64(moveCount*mobilityWeight)
	if pegs > pagodaCutoffPegs && PagodaValue(state) < CenterPagodaWeight {
		score += pagodaPenalty
	}
	return score
}

func (HeuristicCalculator) Type() string {
	return "HeuristicCalculator"
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// CombinedCalculator sums the scores of several evaluators, for drivers
// that blend ranking signals.
type CombinedCalculator struct {
	calculators []Evaluator
}

func NewCombinedCalculator(calculators ...Evaluator) CombinedCalculator {
	return CombinedCalculator{calculators: calculators}
}

func (cc CombinedCalculator) Evaluate(state uint64, moveCount int) float64 {
	return lo.SumBy(cc.calculators, func(c Evaluator) float64 {
		return c.Evaluate(state, moveCount)
	})
}
