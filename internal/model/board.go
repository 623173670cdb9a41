package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Mark is the content of a tic-tac-toe or connect-four cell
type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X" // always the human
	MarkO     Mark = "O" // always the computer opponent
)

// Opponent returns the other player's mark
func (m Mark) Opponent() Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkEmpty
	}
}

// ParseMark converts a single encoded cell into a Mark
func ParseMark(s string) (Mark, bool) {
	switch Mark(s) {
	case MarkEmpty, MarkX, MarkO:
		return Mark(s), true
	default:
		return MarkEmpty, false
	}
}

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// String formats the position the same way moves are submitted
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// ParsePosition parses a "row,col" move specification
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("%w: expected row,col but got %q", ErrInvalidMove, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: bad row in %q", ErrInvalidMove, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: bad column in %q", ErrInvalidMove, s)
	}
	return Position{Row: row, Col: col}, nil
}

// ParseColumn parses a single column index move specification
func ParseColumn(s string) (int, error) {
	col, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: expected a column but got %q", ErrInvalidMove, s)
	}
	return col, nil
}
