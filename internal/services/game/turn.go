package game

import (
	"github.com/mcoot/gridgames-go/internal/grid"
	"github.com/mcoot/gridgames-go/internal/model"
)

// MoveRequest is one request against a game whose state travels with the
// client as an encoded string
type MoveRequest struct {
	// Board is the encoded state; empty starts a new game
	Board string
	// Move is the human's move; empty only renders the current state
	Move string
}

// TurnResult is the state after the human move and the opponent's reply
type TurnResult struct {
	Kind         model.GameKind
	Board        string
	Cells        [][]model.Mark
	Outcome      model.Outcome
	Status       model.Status
	HumanMove    string
	OpponentMove string
}

// Finished returns true if the game ended with this turn
func (r *TurnResult) Finished() bool {
	return r.HumanMove != "" && r.Outcome.Terminal()
}

// engine is the shape shared by the two-mark games
type engine[B grid.Reader[model.Mark], M any] interface {
	NewBoard() B
	Decode(encoded string) (B, error)
	Encode(b B) string
	ParseMove(move string) (M, error)
	FormatMove(m M) string
	Apply(b B, m M, mark model.Mark) (B, error)
	Outcome(b B) model.Outcome
	OpponentMove(b B) (B, M, bool)
}

// playTurn decodes the board, applies the human move and, unless that
// ended the game, one opponent reply. On an illegal move the result holds
// the board as it was before the move, alongside the error.
func playTurn[B grid.Reader[model.Mark], M any](kind model.GameKind, e engine[B, M], req MoveRequest) (*TurnResult, error) {
	board := e.NewBoard()
	if req.Board != "" {
		decoded, err := e.Decode(req.Board)
		if err != nil {
			return nil, err
		}
		board = decoded
	}

	result := &TurnResult{Kind: kind}
	if req.Move != "" {
		if e.Outcome(board).Terminal() {
			return fill(result, e, board), model.ErrGameOver
		}
		move, err := e.ParseMove(req.Move)
		if err != nil {
			return fill(result, e, board), err
		}
		next, err := e.Apply(board, move, model.MarkX)
		if err != nil {
			return fill(result, e, board), err
		}
		board = next
		result.HumanMove = e.FormatMove(move)

		if !e.Outcome(board).Terminal() {
			if next, reply, ok := e.OpponentMove(board); ok {
				board = next
				result.OpponentMove = e.FormatMove(reply)
			}
		}
	}
	return fill(result, e, board), nil
}

func fill[B grid.Reader[model.Mark], M any](result *TurnResult, e engine[B, M], board B) *TurnResult {
	result.Board = e.Encode(board)
	result.Cells = cellsOf(board)
	result.Outcome = e.Outcome(board)
	result.Status = result.Outcome.For(model.MarkX)
	return result
}

func cellsOf[B grid.Reader[model.Mark]](b B) [][]model.Mark {
	cells := make([][]model.Mark, b.Rows())
	for row := range cells {
		cells[row] = make([]model.Mark, b.Cols())
		for col := range cells[row] {
			cells[row][col] = b.At(row, col)
		}
	}
	return cells
}
