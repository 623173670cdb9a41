package tictactoe

import (
	"github.com/mcoot/gridgames-go/internal/dependencies/random"
	"github.com/mcoot/gridgames-go/internal/model"
)

// Service exposes the tic-tac-toe rules together with the computer opponent
type Service struct {
	random random.Random
}

// New creates a new tic-tac-toe Service
func New(rnd random.Random) *Service {
	return &Service{random: rnd}
}

// NewBoard returns an empty board
func (s *Service) NewBoard() Board {
	return Board{}
}

func (s *Service) Decode(encoded string) (Board, error) {
	return Decode(encoded)
}

func (s *Service) Encode(b Board) string {
	return b.Encode()
}

// ParseMove parses a "row,col" move
func (s *Service) ParseMove(move string) (model.Position, error) {
	return model.ParsePosition(move)
}

func (s *Service) FormatMove(pos model.Position) string {
	return pos.String()
}

func (s *Service) Apply(b Board, pos model.Position, mark model.Mark) (Board, error) {
	return b.Apply(pos, mark)
}

func (s *Service) Outcome(b Board) model.Outcome {
	return b.Outcome()
}

// OpponentMove plays an O in a uniformly random empty cell. It reports
// false when the board has no empty cell.
func (s *Service) OpponentMove(b Board) (Board, model.Position, bool) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return b, model.Position{}, false
	}
	pos := empty[s.random.Intn(len(empty))]
	b[pos.Row][pos.Col] = model.MarkO
	return b, pos, true
}
