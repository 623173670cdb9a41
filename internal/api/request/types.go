package request

// MoveRequest is the request body for playing a move. An empty board
// starts a new game.
type MoveRequest struct {
	Board string `json:"board"`
	Move  string `json:"move"`
}
