package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/gridgames-go/internal/api/request"
	"github.com/mcoot/gridgames-go/internal/api/response"
	"github.com/mcoot/gridgames-go/internal/model"
	"github.com/mcoot/gridgames-go/internal/services/game"
)

// GameHandler handles game endpoints. Only games whose whole state travels
// with the request are served; battleship needs a browser session.
type GameHandler struct {
	controller game.ControllerInterface
	logger     *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller game.ControllerInterface, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		controller: controller,
		logger:     logger.With(slog.String("component", "api-game")),
	}
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	kinds := model.AllGames()
	games := make([]response.Game, 0, len(kinds))
	for _, kind := range kinds {
		games = append(games, response.GameFromModel(kind))
	}
	response.JSON(w, http.StatusOK, response.GamesResponse{Games: games})
}

// New handles POST /api/v1/games/{game}/new
func (h *GameHandler) New(w http.ResponseWriter, r *http.Request) {
	kind, err := model.ParseGameKind(mux.Vars(r)["game"])
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.controller.Play(r.Context(), kind, nil, game.MoveRequest{})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.NewGameResponse{
		Board: result.Board,
		Cells: response.CellsFromModel(result.Cells),
	})
}

// Move handles POST /api/v1/games/{game}/move
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	kind, err := model.ParseGameKind(mux.Vars(r)["game"])
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.Move == "" {
		WriteError(w, NewInvalidRequestError("move is required"))
		return
	}

	result, err := h.controller.Play(r.Context(), kind, nil, game.MoveRequest{
		Board: req.Board,
		Move:  req.Move,
	})
	if err != nil {
		h.logger.Debug("move rejected",
			slog.String("game", string(kind)),
			slog.String("move", req.Move),
			slog.String("error", err.Error()),
		)
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TurnFromResult(result))
}
