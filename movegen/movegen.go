// Package movegen contains all the move-generating functions for the
// cross board. Jump feasibility for an entire direction is computed in
// a handful of shift-and-mask operations over the packed state, so
// enumeration is a single pass over the 33 valid cells and the
// existence test never allocates.
package movegen

import (
	"github.com/crosspeg/crosspeg/board"
	"github.com/crosspeg/crosspeg/move"
)

// rightOrigins and leftOrigins restrict horizontal jump origins to
// columns where the jump stays inside its row. The 7-wide packing puts
// the end of one row next to the start of the next, so a raw +-1/+-2
// shift would otherwise wrap a jump across the boundary.
var rightOrigins, leftOrigins uint64

func init() {
	for _, pos := range board.ValidCells {
		if pos%board.BoardDim <= board.BoardDim-3 {
			rightOrigins |= 1 << pos
		}
		if pos%board.BoardDim >= 2 {
			leftOrigins |= 1 << pos
		}
	}
}

// candidateMasks returns, per direction, the set of cells that hold a
// peg, have a peg adjacent in that direction, and a hole two steps
// further along it. Holes are drawn from the valid mask only, so every
// candidate's destination is a genuine board cell.
func candidateMasks(state uint64) (canRight, canLeft, canDown, canUp uint64) {
	holes := board.ValidMask &^ state
	canRight = state & (state >> 1) & (holes >> 2) & rightOrigins
	canLeft = state & (state << 1) & (holes << 2) & leftOrigins
	canDown = state & (state >> board.BoardDim) & (holes >> (2 * board.BoardDim))
	canUp = state & (state << board.BoardDim) & (holes << (2 * board.BoardDim))
	return
}

// GenerateMoves returns every legal jump from state, ordered by
// ascending origin cell and, within an origin, right, left, down, up.
func GenerateMoves(state uint64) []move.Move {
	return AppendMoves(nil, state)
}

// AppendMoves appends every legal jump from state to moves, letting
// callers reuse a backing slice across plies.
func AppendMoves(moves []move.Move, state uint64) []move.Move {
	canRight, canLeft, canDown, canUp := candidateMasks(state)
	for _, pos := range board.ValidCells {
		if canRight>>pos&1 == 1 {
			moves = append(moves, move.Move{From: pos, Jumped: pos + 1, To: pos + 2})
		}
		if canLeft>>pos&1 == 1 {
			moves = append(moves, move.Move{From: pos, Jumped: pos - 1, To: pos - 2})
		}
		// A +-14 shift can land on a bit position inside the word but
		// outside the cross; re-test the destination against the valid
		// cell set, not merely against emptiness.
		if canDown>>pos&1 == 1 {
			if to := pos + 2*board.BoardDim; board.IsValidCell(to) {
				moves = append(moves, move.Move{From: pos, Jumped: pos + board.BoardDim, To: to})
			}
		}
		if canUp>>pos&1 == 1 {
			if to := pos - 2*board.BoardDim; board.IsValidCell(to) {
				moves = append(moves, move.Move{From: pos, Jumped: pos - board.BoardDim, To: to})
			}
		}
	}
	return moves
}

// HasAnyMove reports whether at least one jump exists. It stops at the
// first direction with a non-empty candidate mask and never
// materializes the move list.
func HasAnyMove(state uint64) bool {
	holes := board.ValidMask &^ state
	if state&(state>>1)&(holes>>2)&rightOrigins != 0 {
		return true
	}
	if state&(state<<1)&(holes<<2)&leftOrigins != 0 {
		return true
	}
	if state&(state>>board.BoardDim)&(holes>>(2*board.BoardDim)) != 0 {
		return true
	}
	return state&(state<<board.BoardDim)&(holes<<(2*board.BoardDim)) != 0
}

// IsDead reports whether state is a dead position: more than one peg
// left and no jump available in any direction. A board with zero or one
// pegs is never dead; whether that last peg sits on the target cell is
// the search driver's concern.
func IsDead(state uint64) bool {
	if board.PegCount(state) <= 1 {
		return false
	}
	return !HasAnyMove(state)
}
