package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// State errors
	ErrDecode      = errors.New("could not parse game state")
	ErrInvalidMove = errors.New("invalid move")
	ErrUnknownGame = errors.New("unknown game")
	ErrStateless   = errors.New("game keeps its state on the server")

	// Move errors. Every illegal move wraps ErrIllegalMove so callers can
	// treat them uniformly and re-render the current board.
	ErrIllegalMove  = errors.New("illegal move")
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrIllegalMove)
	ErrColumnFull   = fmt.Errorf("%w: column is full", ErrIllegalMove)
	ErrOutOfBounds  = fmt.Errorf("%w: position is off the board", ErrIllegalMove)
	ErrGameOver     = fmt.Errorf("%w: game is already over", ErrIllegalMove)

	// Session errors
	ErrSessionValueNotFound = errors.New("session value not found")
)
