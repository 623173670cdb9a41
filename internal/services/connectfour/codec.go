package connectfour

import (
	"fmt"
	"strings"

	"github.com/mcoot/gridgames-go/internal/model"
)

const (
	cellSeparator = " "
	rowSeparator  = "."
)

// Encode serializes the board top row first. Cells within a row are joined
// by a space and rows by a dot; empty cells encode as nothing.
func (b Board) Encode() string {
	rows := make([]string, Rows)
	cells := make([]string, Cols)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			cells[col] = string(b[row][col])
		}
		rows[row] = strings.Join(cells, cellSeparator)
	}
	return strings.Join(rows, rowSeparator)
}

// Decode parses an encoded board. Line breaks picked up from form fields
// are ignored; the empty string decodes to the empty board. A mark resting
// on an empty cell is rejected.
func Decode(s string) (Board, error) {
	var b Board
	s = strings.NewReplacer("\r", "", "\n", "").Replace(s)
	if s == "" {
		return b, nil
	}
	rows := strings.Split(s, rowSeparator)
	if len(rows) != Rows {
		return b, fmt.Errorf("%w: expected %d rows, got %d", model.ErrDecode, Rows, len(rows))
	}
	for row, line := range rows {
		cells := strings.Split(line, cellSeparator)
		if len(cells) != Cols {
			return b, fmt.Errorf("%w: expected %d cells in row %d, got %d", model.ErrDecode, Cols, row, len(cells))
		}
		for col, cell := range cells {
			mark, ok := model.ParseMark(cell)
			if !ok {
				return b, fmt.Errorf("%w: bad cell %q at %d,%d", model.ErrDecode, cell, row, col)
			}
			b[row][col] = mark
		}
	}
	for row := 0; row < Rows-1; row++ {
		for col := 0; col < Cols; col++ {
			if b[row][col] != model.MarkEmpty && b[row+1][col] == model.MarkEmpty {
				return Board{}, fmt.Errorf("%w: floating mark at %d,%d", model.ErrDecode, row, col)
			}
		}
	}
	return b, nil
}
