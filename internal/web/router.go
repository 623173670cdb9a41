package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mcoot/gridgames-go/internal/dependencies/clock"
	"github.com/mcoot/gridgames-go/internal/services/game"
	"github.com/mcoot/gridgames-go/internal/storage"
	"github.com/mcoot/gridgames-go/internal/web/handler"
	"github.com/mcoot/gridgames-go/internal/web/middleware"
	"github.com/mcoot/gridgames-go/internal/web/static"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController game.ControllerInterface
	Sessions       storage.SessionStore
	SessionTTL     time.Duration
	Clock          clock.Clock
	SubmissionID   string // sent as X-CSE356 on every response when set
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sessionTTL := cfg.SessionTTL
	if sessionTTL <= 0 {
		sessionTTL = storage.DefaultSessionTTL
	}

	// Apply global middleware to all routes
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Submission(cfg.SubmissionID))

	// Create handlers
	homeHandler := handler.NewHomeHandler()
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Clock, cfg.Logger)

	// Static files
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))

	// Pages
	pages := r.NewRoute().Subrouter()
	pages.Use(middleware.Flash())
	pages.Use(middleware.Session(cfg.Sessions, sessionTTL))
	pages.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc(handler.TicTacToePath, gameHandler.TicTacToe).Methods(http.MethodGet, http.MethodPost)
	pages.HandleFunc(handler.ConnectFourPath, gameHandler.ConnectFour).Methods(http.MethodGet, http.MethodPost)
	pages.HandleFunc(handler.BattleshipPath, gameHandler.Battleship).Methods(http.MethodGet, http.MethodPost)

	return r
}
