package response

import (
	"github.com/mcoot/gridgames-go/internal/model"
	"github.com/mcoot/gridgames-go/internal/services/game"
)

// Game describes a supported game
type Game struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Stateless bool   `json:"stateless"`
}

// GameFromModel converts a model.GameKind
func GameFromModel(kind model.GameKind) Game {
	return Game{
		ID:        string(kind),
		Name:      kind.DisplayName(),
		Stateless: kind != model.GameBattleship,
	}
}

// GamesResponse lists the supported games
type GamesResponse struct {
	Games []Game `json:"games"`
}

// NewGameResponse is the response for starting a game
type NewGameResponse struct {
	Board string     `json:"board"`
	Cells [][]string `json:"cells"`
}

// TurnResponse is the response after a move
type TurnResponse struct {
	Board        string     `json:"board"`
	Cells        [][]string `json:"cells"`
	Status       string     `json:"status"`
	Winner       *string    `json:"winner"`
	HumanMove    string     `json:"human_move,omitempty"`
	OpponentMove string     `json:"opponent_move,omitempty"`
}

// TurnFromResult converts a game.TurnResult
func TurnFromResult(r *game.TurnResult) TurnResponse {
	var winner *string
	if r.Outcome.Winner != model.MarkEmpty {
		w := string(r.Outcome.Winner)
		winner = &w
	}
	return TurnResponse{
		Board:        r.Board,
		Cells:        CellsFromModel(r.Cells),
		Status:       string(r.Status),
		Winner:       winner,
		HumanMove:    r.HumanMove,
		OpponentMove: r.OpponentMove,
	}
}

// CellsFromModel converts a grid of marks; empty cells are empty strings
func CellsFromModel(marks [][]model.Mark) [][]string {
	cells := make([][]string, len(marks))
	for row, line := range marks {
		cells[row] = make([]string, len(line))
		for col, mark := range line {
			cells[row][col] = string(mark)
		}
	}
	return cells
}

