package equity

import "github.com/crosspeg/crosspeg/board"

// pagodaWeights holds the classic pagoda weight for each cell, indexed
// in board.ValidCells order. The table is externally derived and must
// stay a literal: a state whose pagoda value drops below the weight of
// a target cell can never finish on that cell, which is what makes it
// usable as an admissible pruning bound. Any discrepancy here is a
// correctness bug.
var pagodaWeights = [33]int{
	1, 2, 1,
	2, 4, 2,
	1, 2, 3, 4, 3, 2, 1,
	2, 4, 4, 6, 4, 4, 2,
	1, 2, 3, 4, 3, 2, 1,
	2, 4, 2,
	1, 2, 1,
}

// CenterPagodaWeight is the pagoda weight of the center cell, the peak
// of the table. The heuristic cutoff in HeuristicCalculator compares
// against it and must stay in sync with pagodaWeights.
const CenterPagodaWeight = 6

// PagodaValue sums the fixed per-cell weight over every occupied valid
// cell. Bits outside the cross contribute nothing.
func PagodaValue(state uint64) int {
	total := 0
	for i, pos := range board.ValidCells {
		if state>>pos&1 == 1 {
			total += pagodaWeights[i]
		}
	}
	return total
}

// PagodaCalculator exposes the raw pagoda function as an Evaluator for
// drivers that want to rank by the admissibility bound alone.
type PagodaCalculator struct{}

func (PagodaCalculator) Evaluate(state uint64, moveCount int) float64 {
	return float64(PagodaValue(state))
}

func (PagodaCalculator) Type() string {
	return "PagodaCalculator"
}
