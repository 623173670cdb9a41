package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/gridgames-go/internal/dependencies/clock"
	"github.com/mcoot/gridgames-go/internal/model"
	"github.com/mcoot/gridgames-go/internal/services/game"
	"github.com/mcoot/gridgames-go/internal/web/middleware"
	"github.com/mcoot/gridgames-go/internal/web/templates/layout"
	"github.com/mcoot/gridgames-go/internal/web/templates/pages"
)

// GameHandler handles the game pages. Tic-tac-toe and connect-four keep
// their state in a hidden form field; battleship keeps it in the session.
type GameHandler struct {
	controller game.ControllerInterface
	clock      clock.Clock
	logger     *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(controller game.ControllerInterface, clk clock.Clock, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		controller: controller,
		clock:      clk,
		logger:     logger.With(slog.String("component", "web-game")),
	}
}

// TicTacToe handles GET and POST /ttt.php
func (h *GameHandler) TicTacToe(w http.ResponseWriter, r *http.Request) {
	h.playTurn(w, r, turnPage{
		kind:       model.GameTicTacToe,
		path:       TicTacToePath,
		stylesheet: "ttt.css",
		timeLayout: clock.DateLayout,
		page:       pages.TicTacToe,
	})
}

// ConnectFour handles GET and POST /connect.php
func (h *GameHandler) ConnectFour(w http.ResponseWriter, r *http.Request) {
	h.playTurn(w, r, turnPage{
		kind:       model.GameConnectFour,
		path:       ConnectFourPath,
		stylesheet: "connect.css",
		timeLayout: clock.DateTimeLayout,
		page:       pages.ConnectFour,
	})
}

type turnPage struct {
	kind       model.GameKind
	path       string
	stylesheet string
	timeLayout string
	page       func(pages.TurnData) templ.Component
}

// playTurn reads name, board and move from the query string or the form
// body (urlencoded or multipart) and plays one turn
func (h *GameHandler) playTurn(w http.ResponseWriter, r *http.Request, p turnPage) {
	pageData := layout.PageData{
		Title:      p.kind.DisplayName(),
		Stylesheet: p.stylesheet,
		Flash:      middleware.GetFlash(r.Context()),
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		render(w, r, http.StatusOK, pages.NamePrompt(pages.NameData{PageData: pageData, Action: p.path}))
		return
	}

	sess := middleware.GetSession(r.Context())
	result, err := h.controller.Play(r.Context(), p.kind, sess, game.MoveRequest{
		Board: r.FormValue("board"),
		Move:  strings.TrimSpace(r.FormValue("move")),
	})
	if err != nil && (result == nil || !isMoveError(err)) {
		h.logger.Warn("could not play turn",
			slog.String("game", string(p.kind)),
			slog.String("error", err.Error()),
		)
		renderError(w, r, err, p.path)
		return
	}

	status := http.StatusOK
	errMsg := ""
	if err != nil {
		status = http.StatusUnprocessableEntity
		errMsg = moveMessage(err)
	}

	render(w, r, status, p.page(pages.TurnData{
		PageData: pageData,
		Action:   p.path,
		Name:     name,
		When:     h.clock.Now().Format(p.timeLayout),
		Result:   result,
		Score:    h.score(r, p.kind),
		ErrorMsg: errMsg,
	}))
}

// Battleship handles GET and POST /battleship.php
func (h *GameHandler) Battleship(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := middleware.GetSession(ctx)
	pageData := layout.PageData{
		Title:      model.GameBattleship.DisplayName(),
		Stylesheet: "battleship.css",
		Flash:      middleware.GetFlash(ctx),
	}

	req := game.BattleshipRequest{
		Name:  strings.TrimSpace(r.FormValue("name")),
		Move:  strings.TrimSpace(r.FormValue("move")),
		Reset: r.FormValue("reset") != "",
	}

	if req.Reset {
		if _, err := h.controller.PlayBattleship(ctx, sess, game.BattleshipRequest{Name: req.Name, Reset: true}); err != nil {
			renderError(w, r, err, BattleshipPath)
			return
		}
		middleware.SetFlash(w, "info", "New game started")
		http.Redirect(w, r, BattleshipPath, http.StatusSeeOther)
		return
	}

	if req.Name == "" {
		name, _, err := sess.Get(ctx, model.SessionKeyName)
		if err != nil {
			renderError(w, r, err, BattleshipPath)
			return
		}
		if name == "" {
			render(w, r, http.StatusOK, pages.NamePrompt(pages.NameData{PageData: pageData, Action: BattleshipPath}))
			return
		}
	}

	result, err := h.controller.PlayBattleship(ctx, sess, req)
	if err != nil && (result == nil || !isMoveError(err)) {
		h.logger.Warn("could not play battleship",
			slog.String("session_id", string(sess.ID())),
			slog.String("error", err.Error()),
		)
		renderError(w, r, err, BattleshipPath+"?reset=1")
		return
	}

	status := http.StatusOK
	errMsg := ""
	if err != nil {
		status = http.StatusUnprocessableEntity
		errMsg = moveMessage(err)
	}

	render(w, r, status, pages.Battleship(pages.BattleshipData{
		PageData: pageData,
		Action:   BattleshipPath,
		When:     h.clock.Now().Format(clock.DateLayout),
		Result:   result,
		Score:    h.score(r, model.GameBattleship),
		ErrorMsg: errMsg,
	}))
}

func (h *GameHandler) score(r *http.Request, kind model.GameKind) model.Score {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		return model.Score{}
	}
	score, err := h.controller.Score(r.Context(), sess, kind)
	if err != nil {
		h.logger.Warn("could not read score", slog.String("error", err.Error()))
		return model.Score{}
	}
	return score
}
