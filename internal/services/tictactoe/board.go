package tictactoe

import (
	"fmt"

	"github.com/mcoot/gridgames-go/internal/grid"
	"github.com/mcoot/gridgames-go/internal/model"
)

const (
	// Size is the board dimension
	Size = 3
	// WinLength is the run of marks needed to win
	WinLength = 3
)

// Board is a 3x3 tic-tac-toe grid. It is a value type; Apply returns a
// modified copy.
type Board [Size][Size]model.Mark

var _ grid.Reader[model.Mark] = Board{}

func (b Board) Rows() int { return Size }

func (b Board) Cols() int { return Size }

func (b Board) At(row, col int) model.Mark { return b[row][col] }

// InBounds returns true if the position is on the board
func InBounds(pos model.Position) bool {
	return pos.Row >= 0 && pos.Row < Size && pos.Col >= 0 && pos.Col < Size
}

// Apply places mark at pos
func (b Board) Apply(pos model.Position, mark model.Mark) (Board, error) {
	if !InBounds(pos) {
		return b, fmt.Errorf("%w: %s", model.ErrOutOfBounds, pos)
	}
	if b[pos.Row][pos.Col] != model.MarkEmpty {
		return b, fmt.Errorf("%w: %s", model.ErrCellOccupied, pos)
	}
	b[pos.Row][pos.Col] = mark
	return b, nil
}

// Outcome reports a win for whichever mark holds three in a row, a draw
// on a full board, and in-progress otherwise.
func (b Board) Outcome() model.Outcome {
	if winner, ok := grid.Winner[model.Mark](b, model.MarkEmpty, WinLength); ok {
		return model.Won(winner)
	}
	if grid.Full[model.Mark](b, model.MarkEmpty) {
		return model.Outcome{Status: model.StatusDraw}
	}
	return model.InProgress
}

// EmptyCells lists the empty positions in row-major order
func (b Board) EmptyCells() []model.Position {
	var empty []model.Position
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == model.MarkEmpty {
				empty = append(empty, model.Position{Row: row, Col: col})
			}
		}
	}
	return empty
}
