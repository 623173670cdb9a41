package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/gridgames-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidState   = "INVALID_STATE"
	CodeInvalidMove    = "INVALID_MOVE"
	CodeCellOccupied   = "CELL_OCCUPIED"
	CodeColumnFull     = "COLUMN_FULL"
	CodeOutOfBounds    = "OUT_OF_BOUNDS"
	CodeGameOver       = "GAME_OVER"
	CodeIllegalMove    = "ILLEGAL_MOVE"
	CodeUnknownGame    = "UNKNOWN_GAME"
	CodeStateless      = "NOT_STATELESS"
	CodeNotFound       = "NOT_FOUND"
	CodeInternalError  = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// StatusCode returns the HTTP status WriteError would use for err
func StatusCode(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors. The illegal move family is checked member by
	// member before the umbrella sentinel.
	switch {
	case errors.Is(err, model.ErrDecode):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidState, "Could not parse game state"}}
	case errors.Is(err, model.ErrInvalidMove):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMove, "Move could not be parsed"}}
	case errors.Is(err, model.ErrOutOfBounds):
		return &httpError{http.StatusBadRequest, APIError{CodeOutOfBounds, "Move is off the board"}}
	case errors.Is(err, model.ErrCellOccupied):
		return &httpError{http.StatusConflict, APIError{CodeCellOccupied, "Cell is already occupied"}}
	case errors.Is(err, model.ErrColumnFull):
		return &httpError{http.StatusConflict, APIError{CodeColumnFull, "Column is full"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Game is already over"}}
	case errors.Is(err, model.ErrIllegalMove):
		return &httpError{http.StatusConflict, APIError{CodeIllegalMove, "Move is not allowed"}}
	case errors.Is(err, model.ErrUnknownGame):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownGame, "No such game"}}
	case errors.Is(err, model.ErrStateless):
		return &httpError{http.StatusNotFound, APIError{CodeStateless, "Game is only playable in a browser session"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates a not found error for unmatched routes
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
