package model

import "fmt"

// GameKind names one of the supported games
type GameKind string

const (
	GameTicTacToe   GameKind = "tictactoe"
	GameConnectFour GameKind = "connectfour"
	GameBattleship  GameKind = "battleship"
)

// AllGames returns every supported game in display order
func AllGames() []GameKind {
	return []GameKind{GameTicTacToe, GameConnectFour, GameBattleship}
}

// ParseGameKind accepts the canonical name plus a couple of short aliases
func ParseGameKind(s string) (GameKind, error) {
	switch s {
	case "tictactoe", "ttt":
		return GameTicTacToe, nil
	case "connectfour", "connect4", "connect":
		return GameConnectFour, nil
	case "battleship":
		return GameBattleship, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownGame, s)
	}
}

// DisplayName returns a human-readable label for the game
func (k GameKind) DisplayName() string {
	switch k {
	case GameTicTacToe:
		return "Tic-Tac-Toe"
	case GameConnectFour:
		return "Connect Four"
	case GameBattleship:
		return "Battleship"
	default:
		return string(k)
	}
}

// Status is the state of a game from the human player's point of view
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusLoss       Status = "loss"
	StatusDraw       Status = "draw"
)

// Outcome is the result of a terminal check. For two-mark games a win
// carries the winning mark; battleship wins and losses leave it empty.
type Outcome struct {
	Status Status
	Winner Mark
}

// InProgress is the outcome of a game that has not finished
var InProgress = Outcome{Status: StatusInProgress}

// Won builds the outcome for a line of the given mark
func Won(mark Mark) Outcome {
	return Outcome{Status: StatusWin, Winner: mark}
}

// Terminal returns true once the game is decided
func (o Outcome) Terminal() bool {
	return o.Status != StatusInProgress
}

// For translates the outcome into the status seen by the holder of mark
func (o Outcome) For(mark Mark) Status {
	if o.Status == StatusWin && o.Winner != MarkEmpty && o.Winner != mark {
		return StatusLoss
	}
	return o.Status
}
