package handler

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"github.com/mcoot/gridgames-go/internal/model"
	"github.com/mcoot/gridgames-go/internal/web/templates/layout"
	"github.com/mcoot/gridgames-go/internal/web/templates/pages"
)

func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// renderError renders a full error page for errors that leave nothing to
// show. back is where the "start over" link goes.
func renderError(w http.ResponseWriter, r *http.Request, err error, back string) {
	status := http.StatusInternalServerError
	heading := "Internal Server Error"
	message := "Something went wrong. Please try again later."
	switch {
	case errors.Is(err, model.ErrDecode):
		status = http.StatusBadRequest
		heading = "Bad Request"
		message = "Could not parse game state."
	case errors.Is(err, model.ErrUnknownGame), errors.Is(err, model.ErrStateless):
		status = http.StatusNotFound
		heading = "Not Found"
		message = "No such game."
	}

	render(w, r, status, pages.Error(pages.ErrorData{
		PageData: layout.PageData{Title: heading},
		Heading:  heading,
		Message:  message,
		Back:     back,
	}))
}

// moveMessage explains a rejected move to the player
func moveMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrCellOccupied):
		return "That cell is already taken."
	case errors.Is(err, model.ErrColumnFull):
		return "That column is full."
	case errors.Is(err, model.ErrOutOfBounds):
		return "That move is off the board."
	case errors.Is(err, model.ErrGameOver):
		return "The game is already over."
	case errors.Is(err, model.ErrInvalidMove):
		return "That move could not be understood."
	default:
		return "That move is not allowed."
	}
}

// isMoveError reports whether err rejects a move but leaves a board to show
func isMoveError(err error) bool {
	return errors.Is(err, model.ErrIllegalMove) || errors.Is(err, model.ErrInvalidMove)
}
