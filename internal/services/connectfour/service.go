package connectfour

import (
	"strconv"

	"github.com/mcoot/gridgames-go/internal/dependencies/random"
	"github.com/mcoot/gridgames-go/internal/model"
)

// Service exposes the connect-four rules together with the computer opponent
type Service struct {
	random random.Random
}

// New creates a new connect-four Service
func New(rnd random.Random) *Service {
	return &Service{random: rnd}
}

func (s *Service) NewBoard() Board {
	return Board{}
}

func (s *Service) Decode(encoded string) (Board, error) {
	return Decode(encoded)
}

func (s *Service) Encode(b Board) string {
	return b.Encode()
}

// ParseMove parses a column index
func (s *Service) ParseMove(move string) (int, error) {
	return model.ParseColumn(move)
}

func (s *Service) FormatMove(col int) string {
	return strconv.Itoa(col)
}

func (s *Service) Apply(b Board, col int, mark model.Mark) (Board, error) {
	next, _, err := b.Drop(col, mark)
	return next, err
}

func (s *Service) Outcome(b Board) model.Outcome {
	return b.Outcome()
}

// OpponentMove drops an O into a uniformly random open column. It reports
// false when every column is full.
func (s *Service) OpponentMove(b Board) (Board, int, bool) {
	open := b.OpenColumns()
	if len(open) == 0 {
		return b, 0, false
	}
	col := open[s.random.Intn(len(open))]
	next, _, err := b.Drop(col, model.MarkO)
	if err != nil {
		return b, 0, false
	}
	return next, col, true
}
