package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/gridgames-go/internal/model"
	"github.com/mcoot/gridgames-go/internal/services/battleship"
	"github.com/mcoot/gridgames-go/internal/storage"
)

// BattleshipRequest is one battleship form submission
type BattleshipRequest struct {
	// Name is stored when set
	Name string
	// Move is a "row,col" shot; empty only renders the current state
	Move string
	// Reset discards the board and the shot counter
	Reset bool
}

// BattleshipResult is the battleship state after a request
type BattleshipResult struct {
	Name      string
	Board     battleship.Board
	ShotsLeft int
	MaxShots  int
	Outcome   model.Outcome
	Status    model.Status
	Shot      string
}

// PlayBattleship runs a battleship request against the state kept in the
// session. Firing at an already revealed tile changes nothing and does not
// use up a shot.
func (c *Controller) PlayBattleship(ctx context.Context, sess *storage.Session, req BattleshipRequest) (*BattleshipResult, error) {
	if req.Name != "" {
		if err := sess.Set(ctx, model.SessionKeyName, req.Name); err != nil {
			return nil, err
		}
	}
	if req.Reset {
		if err := sess.Remove(ctx, model.SessionKeyBoard, model.SessionKeyMovesLeft); err != nil {
			return nil, err
		}
	}

	name, _, err := sess.Get(ctx, model.SessionKeyName)
	if err != nil {
		return nil, err
	}
	shots, ok, err := sess.GetInt(ctx, model.SessionKeyMovesLeft)
	if err != nil {
		return nil, err
	}
	if !ok {
		shots = c.battleship.MaxShots()
	}
	board, err := c.loadBoard(ctx, sess)
	if err != nil {
		return nil, err
	}

	result := &BattleshipResult{Name: name, MaxShots: c.battleship.MaxShots()}
	finished := false
	if req.Move != "" {
		if c.battleship.Outcome(board, shots).Terminal() {
			return result.with(c.battleship, board, shots), model.ErrGameOver
		}
		pos, err := c.battleship.ParseMove(req.Move)
		if err != nil {
			return result.with(c.battleship, board, shots), err
		}
		next, changed, err := c.battleship.Fire(board, pos)
		if err != nil {
			return result.with(c.battleship, board, shots), err
		}
		if changed {
			board = next
			shots--
			result.Shot = pos.String()
			finished = c.battleship.Outcome(board, shots).Terminal()
		}
	}

	if err := c.saveBoard(ctx, sess, board, shots); err != nil {
		return nil, err
	}
	result = result.with(c.battleship, board, shots)

	if finished {
		c.logger.Info("game finished",
			slog.String("game", string(model.GameBattleship)),
			slog.String("status", string(result.Status)),
			slog.Int("shots_left", shots),
		)
		if err := c.recordFinished(ctx, sess, model.GameBattleship, result.Status); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (r *BattleshipResult) with(svc *battleship.Service, board battleship.Board, shots int) *BattleshipResult {
	r.Board = board
	r.ShotsLeft = shots
	r.Outcome = svc.Outcome(board, shots)
	r.Status = r.Outcome.For(model.MarkX)
	return r
}

// loadBoard returns the session's board, placing a new fleet if there is none
func (c *Controller) loadBoard(ctx context.Context, sess *storage.Session) (battleship.Board, error) {
	encoded, ok, err := sess.Get(ctx, model.SessionKeyBoard)
	if err != nil {
		return battleship.Board{}, err
	}
	if !ok {
		c.logger.Debug("starting battleship game", slog.String("session_id", string(sess.ID())))
		return c.battleship.NewBoard(), nil
	}
	return c.battleship.Decode(encoded)
}

func (c *Controller) saveBoard(ctx context.Context, sess *storage.Session, board battleship.Board, shots int) error {
	encoded, err := c.battleship.Encode(board)
	if err != nil {
		return err
	}
	if err := sess.Set(ctx, model.SessionKeyBoard, encoded); err != nil {
		return err
	}
	return sess.SetInt(ctx, model.SessionKeyMovesLeft, shots)
}
