package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GamesResult:
		o.printGames(v)
	case NewGameResult:
		o.printNewGame(v)
	case TurnResult:
		o.printTurn(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GameInfo response type (matches API)
type GameInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Stateless bool   `json:"stateless"`
}

// GamesResult response type
type GamesResult struct {
	Games []GameInfo `json:"games"`
}

// NewGameResult response type
type NewGameResult struct {
	Board string     `json:"board"`
	Cells [][]string `json:"cells"`
}

// TurnResult response type
type TurnResult struct {
	Board        string     `json:"board"`
	Cells        [][]string `json:"cells"`
	Status       string     `json:"status"`
	Winner       *string    `json:"winner"`
	HumanMove    string     `json:"human_move,omitempty"`
	OpponentMove string     `json:"opponent_move,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGames(g GamesResult) {
	for _, game := range g.Games {
		note := ""
		if !game.Stateless {
			note = " (browser only)"
		}
		_, _ = fmt.Fprintf(o.w, "%-12s %s%s\n", game.ID, game.Name, note)
	}
}

func (o *Output) printNewGame(g NewGameResult) {
	o.printBoard(g.Cells)
	_, _ = fmt.Fprintf(o.w, "Board: %q\n", g.Board)
}

func (o *Output) printTurn(t TurnResult) {
	if t.HumanMove != "" {
		_, _ = fmt.Fprintf(o.w, "You played: %s\n", t.HumanMove)
	}
	if t.OpponentMove != "" {
		_, _ = fmt.Fprintf(o.w, "Opponent played: %s\n", t.OpponentMove)
	}
	o.printBoard(t.Cells)
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", strings.ReplaceAll(t.Status, "_", " "))
	if t.Winner != nil {
		_, _ = fmt.Fprintf(o.w, "Winner: %s\n", *t.Winner)
	}
	_, _ = fmt.Fprintf(o.w, "Board: %q\n", t.Board)
}

func (o *Output) printBoard(cells [][]string) {
	if len(cells) == 0 {
		return
	}

	rows := len(cells)
	cols := len(cells[0])

	// Print column headers
	_, _ = fmt.Fprint(o.w, "    ")
	for col := 0; col < cols; col++ {
		_, _ = fmt.Fprintf(o.w, " %d ", col)
	}
	_, _ = fmt.Fprintln(o.w)

	border := "   +" + strings.Repeat("---", cols) + "+"
	_, _ = fmt.Fprintln(o.w, border)

	for row := 0; row < rows; row++ {
		_, _ = fmt.Fprintf(o.w, " %d |", row)
		for col := 0; col < cols; col++ {
			cell := cells[row][col]
			if cell == "" {
				_, _ = fmt.Fprint(o.w, " . ")
			} else {
				_, _ = fmt.Fprintf(o.w, " %s ", cell)
			}
		}
		_, _ = fmt.Fprintln(o.w, "|")
	}

	_, _ = fmt.Fprintln(o.w, border)
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
