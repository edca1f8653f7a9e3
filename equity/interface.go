// Package equity implements the heuristic evaluators used to order and
// prune a peg-solitaire search. Scores are opaque ranking keys; what
// counts as "better" is the search driver's ordering policy.
package equity

// Evaluator is a calculator of a position's heuristic score. moveCount
// is the number of jumps available in the position, supplied by the
// caller so evaluation never has to re-run move generation.
type Evaluator interface {
	Evaluate(state uint64, moveCount int) float64
}
