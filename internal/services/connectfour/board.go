package connectfour

import (
	"fmt"

	"github.com/mcoot/gridgames-go/internal/grid"
	"github.com/mcoot/gridgames-go/internal/model"
)

const (
	Rows = 5
	Cols = 7
	// WinLength is the run of marks needed to win
	WinLength = 4
)

// Board is a 5x7 connect-four grid, row 0 at the top. Marks always rest on
// the bottom row or on another mark.
type Board [Rows][Cols]model.Mark

var _ grid.Reader[model.Mark] = Board{}

func (b Board) Rows() int { return Rows }

func (b Board) Cols() int { return Cols }

func (b Board) At(row, col int) model.Mark { return b[row][col] }

// ColumnFull returns true if the top cell of col is taken
func (b Board) ColumnFull(col int) bool {
	return b[0][col] != model.MarkEmpty
}

// Drop lets mark fall into col, landing in the lowest empty row. It returns
// the new board and the row the mark landed in.
func (b Board) Drop(col int, mark model.Mark) (Board, int, error) {
	if col < 0 || col >= Cols {
		return b, 0, fmt.Errorf("%w: column %d", model.ErrOutOfBounds, col)
	}
	if b.ColumnFull(col) {
		return b, 0, fmt.Errorf("%w: column %d", model.ErrColumnFull, col)
	}
	for row := Rows - 1; row >= 0; row-- {
		if b[row][col] == model.MarkEmpty {
			b[row][col] = mark
			return b, row, nil
		}
	}
	return b, 0, fmt.Errorf("%w: column %d", model.ErrColumnFull, col)
}

// Outcome reports a win for four in a row in any direction, a draw once
// every column is full, and in-progress otherwise.
func (b Board) Outcome() model.Outcome {
	if winner, ok := grid.Winner[model.Mark](b, model.MarkEmpty, WinLength); ok {
		return model.Won(winner)
	}
	if grid.Full[model.Mark](b, model.MarkEmpty) {
		return model.Outcome{Status: model.StatusDraw}
	}
	return model.InProgress
}

// OpenColumns lists the columns that can still take a mark, left to right
func (b Board) OpenColumns() []int {
	var open []int
	for col := 0; col < Cols; col++ {
		if !b.ColumnFull(col) {
			open = append(open, col)
		}
	}
	return open
}
