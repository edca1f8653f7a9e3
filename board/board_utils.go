package board

import (
	"fmt"
	"strings"
)

const (
	pegRune   = '●'
	holeRune  = '○'
	blankRune = ' '
)

// ToDisplayText draws the board as a 7-line grid, one rune per cell at
// every even column: a filled circle for a peg, an open circle for a
// hole, blank for the masked-out corners. The output round-trips
// through ParseDisplayText.
func ToDisplayText(state uint64) string {
	var str strings.Builder
	for r := 0; r < BoardDim; r++ {
		var row strings.Builder
		for c := 0; c < BoardDim; c++ {
			pos := CellAt(r, c)
			switch {
			case !IsValidCell(pos):
				row.WriteRune(blankRune)
			case state>>pos&1 == 1:
				row.WriteRune(pegRune)
			default:
				row.WriteRune(holeRune)
			}
			row.WriteRune(' ')
		}
		str.WriteString(strings.TrimRight(row.String(), " "))
		str.WriteRune('\n')
	}
	return str.String()
}

// ParseDisplayText turns a plaintext board back into a state. It
// accepts the exact shape ToDisplayText emits, plus X/x and ./O as
// ASCII stand-ins for peg and hole. Markers on masked-out corner cells
// are an error, as is a peg/hole rune missing from a valid cell.
func ParseDisplayText(text string) (uint64, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != BoardDim {
		return 0, fmt.Errorf("expected %d rows, got %d", BoardDim, len(lines))
	}
	var state uint64
	for r, line := range lines {
		runes := []rune(line)
		for c := 0; c < BoardDim; c++ {
			pos := CellAt(r, c)
			var ch rune = blankRune
			if 2*c < len(runes) {
				ch = runes[2*c]
			}
			switch ch {
			case pegRune, 'X', 'x':
				if !IsValidCell(pos) {
					return 0, fmt.Errorf("row %d col %d: peg outside the cross", r, c)
				}
				state |= 1 << pos
			case holeRune, '.', 'O':
				if !IsValidCell(pos) {
					return 0, fmt.Errorf("row %d col %d: hole outside the cross", r, c)
				}
			case blankRune:
				if IsValidCell(pos) {
					return 0, fmt.Errorf("row %d col %d: missing cell marker", r, c)
				}
			default:
				return 0, fmt.Errorf("row %d col %d: unexpected character %q", r, c, ch)
			}
		}
	}
	return state, nil
}

// FromCells builds a state from a list of valid cell indices. Indices
// outside the cross are an error; duplicates are idempotent.
func FromCells(cells []uint8) (uint64, error) {
	var state uint64
	for _, pos := range cells {
		if !IsValidCell(pos) {
			return 0, fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
		}
		state |= 1 << pos
	}
	return state, nil
}
