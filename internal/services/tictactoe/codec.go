package tictactoe

import (
	"fmt"
	"strings"

	"github.com/mcoot/gridgames-go/internal/model"
)

// cellSeparator joins the nine cells; an empty cell encodes as nothing, so
// the empty board is eight spaces.
const cellSeparator = " "

// Encode serializes the board row-major
func (b Board) Encode() string {
	cells := make([]string, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			cells = append(cells, string(b[row][col]))
		}
	}
	return strings.Join(cells, cellSeparator)
}

// Decode parses an encoded board. The empty string means no game has been
// played yet and decodes to the empty board.
func Decode(s string) (Board, error) {
	var b Board
	if s == "" {
		return b, nil
	}
	cells := strings.Split(s, cellSeparator)
	if len(cells) != Size*Size {
		return b, fmt.Errorf("%w: expected %d cells, got %d", model.ErrDecode, Size*Size, len(cells))
	}
	for i, cell := range cells {
		mark, ok := model.ParseMark(cell)
		if !ok {
			return b, fmt.Errorf("%w: bad cell %q at index %d", model.ErrDecode, cell, i)
		}
		b[i/Size][i%Size] = mark
	}
	return b, nil
}
