// Package symmetry implements the eight symmetries of the cross board
// (four rotations times an optional reflection). The cross maps onto
// itself under all of them, so transforming a well-formed state always
// yields a well-formed state. Search drivers use Canonical to collapse
// symmetric duplicates in their visited sets.
package symmetry

import (
	"github.com/samber/lo"

	"github.com/crosspeg/crosspeg/board"
)

// transform rebuilds a state by permuting its occupied cells.
func transform(state uint64, cell func(r, c int) uint8) uint64 {
	var out uint64
	for _, pos := range board.ValidCells {
		if state>>pos&1 == 1 {
			out |= 1 << cell(board.CellRow(pos), board.CellCol(pos))
		}
	}
	return out
}

// Rotate90 rotates the board a quarter turn clockwise.
func Rotate90(state uint64) uint64 {
	return transform(state, func(r, c int) uint8 {
		return board.CellAt(c, board.BoardDim-1-r)
	})
}

// FlipHorizontal mirrors the board left to right.
func FlipHorizontal(state uint64) uint64 {
	return transform(state, func(r, c int) uint8 {
		return board.CellAt(r, board.BoardDim-1-c)
	})
}

// FlipVertical mirrors the board top to bottom.
func FlipVertical(state uint64) uint64 {
	return transform(state, func(r, c int) uint8 {
		return board.CellAt(board.BoardDim-1-r, c)
	})
}

// Variants returns all eight symmetric images of state, starting with
// state itself, alternating each rotation with its horizontal mirror.
func Variants(state uint64) [8]uint64 {
	var out [8]uint64
	cur := state
	for i := 0; i < 4; i++ {
		out[2*i] = cur
		out[2*i+1] = FlipHorizontal(cur)
		cur = Rotate90(cur)
	}
	return out
}

// Canonical returns the numerically smallest of the eight symmetric
// images of state.
func Canonical(state uint64) uint64 {
	v := Variants(state)
	return lo.Min(v[:])
}

// DistinctVariants counts the distinct symmetric images of state; a
// fully symmetric position has 1, an asymmetric one 8.
func DistinctVariants(state uint64) int {
	v := Variants(state)
	return len(lo.Uniq(v[:]))
}
