package model

// SessionID identifies a browser session
type SessionID string

// Session keys shared by the game controller and the web layer
const (
	SessionKeyName      = "name"
	SessionKeyMovesLeft = "moves_left"
	SessionKeyBoard     = "board"
)

// ScoreKey returns the session key holding the tally for a game and status
func ScoreKey(kind GameKind, status Status) string {
	return "score:" + string(kind) + ":" + string(status)
}

// FinishedKey returns the session key holding the request that ended the last
// game of kind
func FinishedKey(kind GameKind) string {
	return "score:" + string(kind) + ":finished"
}

// Score is the running tally of finished games in a session
type Score struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

// Played returns the number of finished games
func (s Score) Played() int {
	return s.Wins + s.Losses + s.Draws
}
