package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/gridgames-go/internal/api/apierr"
	"github.com/mcoot/gridgames-go/internal/api/handler"
	"github.com/mcoot/gridgames-go/internal/api/middleware"
	"github.com/mcoot/gridgames-go/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController game.ControllerInterface
	SubmissionID   string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Logger)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	submissionMiddleware := middleware.Submission(cfg.SubmissionID)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(submissionMiddleware)

	// Game routes
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{game}/new", gameHandler.New).Methods(http.MethodPost)
	api.HandleFunc("/games/{game}/move", gameHandler.Move).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}
