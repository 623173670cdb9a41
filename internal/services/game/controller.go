package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/gridgames-go/internal/model"
	"github.com/mcoot/gridgames-go/internal/services/battleship"
	"github.com/mcoot/gridgames-go/internal/services/connectfour"
	"github.com/mcoot/gridgames-go/internal/services/tictactoe"
	"github.com/mcoot/gridgames-go/internal/storage"
)

// ControllerInterface is the game flow used by the web and API layers
type ControllerInterface interface {
	Play(ctx context.Context, kind model.GameKind, sess *storage.Session, req MoveRequest) (*TurnResult, error)
	PlayBattleship(ctx context.Context, sess *storage.Session, req BattleshipRequest) (*BattleshipResult, error)
	Score(ctx context.Context, sess *storage.Session, kind model.GameKind) (model.Score, error)
}

// Controller runs a request through a game: decode, human move, terminal
// check, opponent reply, terminal check, encode.
type Controller struct {
	tictactoe   *tictactoe.Service
	connectFour *connectfour.Service
	battleship  *battleship.Service
	logger      *slog.Logger
}

var _ ControllerInterface = (*Controller)(nil)

// NewController creates a new game Controller
func NewController(
	tictactoeService *tictactoe.Service,
	connectFourService *connectfour.Service,
	battleshipService *battleship.Service,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		tictactoe:   tictactoeService,
		connectFour: connectFourService,
		battleship:  battleshipService,
		logger:      logger.With(slog.String("component", "game-controller")),
	}
}

// Play plays one turn of a game whose state is carried by the client.
// sess may be nil; when set, finished games are added to its score.
func (c *Controller) Play(ctx context.Context, kind model.GameKind, sess *storage.Session, req MoveRequest) (*TurnResult, error) {
	var (
		result *TurnResult
		err    error
	)
	switch kind {
	case model.GameTicTacToe:
		result, err = playTurn[tictactoe.Board, model.Position](kind, c.tictactoe, req)
	case model.GameConnectFour:
		result, err = playTurn[connectfour.Board, int](kind, c.connectFour, req)
	case model.GameBattleship:
		return nil, fmt.Errorf("%w: %s", model.ErrStateless, kind)
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownGame, kind)
	}
	if err != nil {
		c.logger.Debug("move rejected",
			slog.String("game", string(kind)),
			slog.String("move", req.Move),
			slog.String("error", err.Error()),
		)
		return result, err
	}

	if sess != nil && req.Board == "" {
		if err := sess.Remove(ctx, model.FinishedKey(kind)); err != nil {
			return result, err
		}
	}
	if result.Finished() {
		c.logger.Info("game finished",
			slog.String("game", string(kind)),
			slog.String("status", string(result.Status)),
		)
		if sess != nil {
			fresh, err := c.markFinished(ctx, sess, kind, req)
			if err != nil {
				return result, err
			}
			if !fresh {
				c.logger.Debug("finished game resubmitted", slog.String("game", string(kind)))
				return result, nil
			}
			if err := c.recordFinished(ctx, sess, kind, result.Status); err != nil {
				return result, err
			}
		}
	}
	return result, nil
}

// Score returns the session's tally of finished games for kind
func (c *Controller) Score(ctx context.Context, sess *storage.Session, kind model.GameKind) (model.Score, error) {
	var score model.Score
	for status, dst := range map[model.Status]*int{
		model.StatusWin:  &score.Wins,
		model.StatusLoss: &score.Losses,
		model.StatusDraw: &score.Draws,
	} {
		n, _, err := sess.GetInt(ctx, model.ScoreKey(kind, status))
		if err != nil {
			return model.Score{}, err
		}
		*dst = n
	}
	return score, nil
}

// markFinished remembers req as the request that ended the current game and
// reports false if it already was. Starting a new game clears the marker.
func (c *Controller) markFinished(ctx context.Context, sess *storage.Session, kind model.GameKind, req MoveRequest) (bool, error) {
	finished := req.Board + "|" + req.Move
	last, ok, err := sess.Get(ctx, model.FinishedKey(kind))
	if err != nil {
		return false, err
	}
	if ok && last == finished {
		return false, nil
	}
	return true, sess.Set(ctx, model.FinishedKey(kind), finished)
}

func (c *Controller) recordFinished(ctx context.Context, sess *storage.Session, kind model.GameKind, status model.Status) error {
	key := model.ScoreKey(kind, status)
	n, _, err := sess.GetInt(ctx, key)
	if err != nil {
		return err
	}
	return sess.SetInt(ctx, key, n+1)
}
