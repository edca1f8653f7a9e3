// Package board implements the bit-packed encoding of the English
// peg-solitaire board. The 7x7 grid is laid out row-major in a single
// uint64; the four 2x2 corner blocks are masked out, leaving the classic
// 33-cell cross. Bit i set means a peg occupies cell i. Well-formed
// states never have bits set outside ValidMask.
package board

import (
	"errors"
	"math/bits"
)

// BoardDim is the side length of the enclosing grid.
const BoardDim = 7

// ValidCells lists the 33 cells of the cross in ascending order.
var ValidCells = [33]uint8{
	2, 3, 4,
	9, 10, 11,
	14, 15, 16, 17, 18, 19, 20,
	21, 22, 23, 24, 25, 26, 27,
	28, 29, 30, 31, 32, 33, 34,
	37, 38, 39,
	44, 45, 46,
}

// ValidMask has exactly the bits of ValidCells set.
const ValidMask uint64 = 0x70E7FFFFCE1C

// CenterCell is the middle of the board, row 3 column 3.
const CenterCell = 24

const (
	// StartState is the standard opening position: every cell pegged
	// except the center.
	StartState = ValidMask ^ (1 << CenterCell)
	// GoalState is the classic winning position, a single peg in the
	// center. Goal checking itself is up to the search driver.
	GoalState = uint64(1) << CenterCell
)

// ErrInvalidPosition is returned when a cell index falls outside the
// 64-bit word.
var ErrInvalidPosition = errors.New("cell index out of range")

// PegCount returns the number of pegs on the board.
func PegCount(state uint64) int {
	return bits.OnesCount64(state)
}

// HasPeg reports whether a peg occupies pos. Positions inside the word
// but outside the cross read as unset; only pos > 63 is an error.
func HasPeg(state uint64, pos uint8) (bool, error) {
	if pos > 63 {
		return false, ErrInvalidPosition
	}
	return state>>pos&1 == 1, nil
}

// ApplyMove flips the three bits of a jump and returns the new state.
// It performs no legality check; the caller guarantees the move was
// generated against this state. Applying the same triple twice restores
// the original state.
func ApplyMove(state uint64, from, jumped, to uint8) (uint64, error) {
	if from > 63 || jumped > 63 || to > 63 {
		return 0, ErrInvalidPosition
	}
	return state ^ 1<<from ^ 1<<jumped ^ 1<<to, nil
}

// IsValidCell reports whether pos is one of the 33 cross cells.
func IsValidCell(pos uint8) bool {
	return pos < 64 && ValidMask>>pos&1 == 1
}

// CellRow returns the row of a cell index.
func CellRow(pos uint8) int {
	return int(pos) / BoardDim
}

// CellCol returns the column of a cell index.
func CellCol(pos uint8) int {
	return int(pos) % BoardDim
}

// CellAt returns the cell index at row, col.
func CellAt(row, col int) uint8 {
	return uint8(row*BoardDim + col)
}
