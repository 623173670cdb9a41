package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/gridgames-go/internal/middleware"
)

// Logging creates request logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// Submission tags every API response with the configured submission ID
func Submission(id string) func(http.Handler) http.Handler {
	return middleware.Submission(id)
}
