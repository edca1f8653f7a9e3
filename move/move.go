// Package move defines the single-jump move type: a peg jumps an
// adjacent peg, landing two cells further along the same line, and the
// jumped peg is removed.
package move

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/crosspeg/crosspeg/board"
)

// Direction is one of the four jump directions in the row-major
// encoding. The numeric order is also the generation order within a
// single origin cell.
type Direction uint8

const (
	Right Direction = iota
	Left
	Down
	Up
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return "none"
}

// Offset is the cell-index delta of one step in this direction.
func (d Direction) Offset() int8 {
	switch d {
	case Right:
		return 1
	case Left:
		return -1
	case Down:
		return board.BoardDim
	case Up:
		return -board.BoardDim
	}
	return 0
}

// Move is an ordered (from, jumped, to) triple of cell indices. It is a
// plain value; legality against any particular state is established by
// the generator that emitted it.
type Move struct {
	From   uint8
	Jumped uint8
	To     uint8
}

// New builds the move starting at from and heading in direction d.
func New(from uint8, d Direction) Move {
	step := d.Offset()
	return Move{
		From:   from,
		Jumped: uint8(int8(from) + step),
		To:     uint8(int8(from) + 2*step),
	}
}

// Direction recovers the jump direction from the from/jumped delta.
func (m Move) Direction() Direction {
	switch int(m.Jumped) - int(m.From) {
	case 1:
		return Right
	case -1:
		return Left
	case board.BoardDim:
		return Down
	case -board.BoardDim:
		return Up
	}
	return Direction(255)
}

// String provides a string just for debugging purposes.
func (m Move) String() string {
	return fmt.Sprintf("<from: %d jumped: %d to: %d (%v)>",
		m.From, m.Jumped, m.To, m.Direction())
}

// ShortDescription renders the move in board coordinates, e.g. "C4>E4".
func (m Move) ShortDescription() string {
	return ToBoardCoords(m.From) + ">" + ToBoardCoords(m.To)
}

var reCoords = regexp.MustCompile(`^(?P<col>[A-G])(?P<row>[1-7])$`)

// ToBoardCoords converts a cell index to a coordinate like D4: letter
// column, 1-based row.
func ToBoardCoords(pos uint8) string {
	col := string(rune('A' + board.CellCol(pos)))
	return col + strconv.Itoa(board.CellRow(pos)+1)
}

// FromBoardCoords does the inverse operation of ToBoardCoords above.
func FromBoardCoords(c string) (uint8, error) {
	matches := reCoords.FindStringSubmatch(c)
	if len(matches) != 3 {
		return 0, fmt.Errorf("bad coordinate %q", c)
	}
	col := int(matches[1][0] - 'A')
	row, _ := strconv.Atoi(matches[2])
	return board.CellAt(row-1, col), nil
}
