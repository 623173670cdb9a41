package battleship

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mcoot/gridgames-go/internal/dependencies/random"
	"github.com/mcoot/gridgames-go/internal/model"
)

// Service exposes the battleship rules. There is no computer move: the
// player fires at a hidden fleet until it sinks or the shots run out.
type Service struct {
	random random.Random
	fleet  Fleet
	logger *slog.Logger
}

// New creates a new battleship Service
func New(rnd random.Random, fleet Fleet, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		fleet:  fleet,
		logger: logger.With(slog.String("component", "battleship")),
	}
}

// Fleet returns the configured fleet
func (s *Service) Fleet() Fleet {
	return s.fleet
}

// MaxShots returns the shot budget for a new game
func (s *Service) MaxShots() int {
	return s.fleet.MaxShots()
}

// NewBoard places a fresh fleet. Ships that could not be placed are logged
// and the game goes on without them.
func (s *Service) NewBoard() Board {
	b, omitted := PlaceFleet(s.fleet, s.random)
	if len(omitted) > 0 {
		s.logger.Warn("could not place every ship",
			slog.Any("omitted", omitted),
			slog.Int("rows", s.fleet.Rows),
			slog.Int("cols", s.fleet.Cols),
		)
	}
	return b
}

// ParseMove parses a "row,col" shot
func (s *Service) ParseMove(move string) (model.Position, error) {
	return model.ParsePosition(move)
}

func (s *Service) Fire(b Board, pos model.Position) (Board, bool, error) {
	return b.Fire(pos)
}

func (s *Service) Outcome(b Board, shotsLeft int) model.Outcome {
	return b.Outcome(shotsLeft)
}

// Encode serializes the board for server-side session storage. The
// encoding reveals the fleet, so it is never sent to the browser.
func (s *Service) Encode(b Board) (string, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses a board stored by Encode
func (s *Service) Decode(encoded string) (Board, error) {
	var b Board
	if err := json.Unmarshal([]byte(encoded), &b); err != nil {
		return Board{}, fmt.Errorf("%w: %v", model.ErrDecode, err)
	}
	if err := b.validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}
