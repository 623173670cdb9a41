package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/gridgames-go/internal/dependencies/clock"
	"github.com/mcoot/gridgames-go/internal/dependencies/random"
	"github.com/mcoot/gridgames-go/internal/services/battleship"
	"github.com/mcoot/gridgames-go/internal/services/connectfour"
	"github.com/mcoot/gridgames-go/internal/services/game"
	"github.com/mcoot/gridgames-go/internal/services/tictactoe"
	"github.com/mcoot/gridgames-go/internal/storage"
	"github.com/mcoot/gridgames-go/internal/storage/memory"
	redisstorage "github.com/mcoot/gridgames-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Sessions   storage.SessionStore
	SessionTTL time.Duration

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	TicTacToe      *tictactoe.Service
	ConnectFour    *connectfour.Service
	Battleship     *battleship.Service
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the session backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SessionTTL is how long an idle session lives
	// If zero, defaults to storage.DefaultSessionTTL
	SessionTTL time.Duration
	// RandomSeed makes opponent moves and ship placement reproducible
	// If zero, a cryptographic source is used
	RandomSeed uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = storage.DefaultSessionTTL
	}

	clk := clock.New()

	// Create storage based on type
	var store storage.SessionStore
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New(clk, ttl)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisCfg := *cfg.RedisConfig
		if redisCfg.SessionTTL <= 0 {
			redisCfg.SessionTTL = ttl
		}
		redisStore, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	var rnd random.Random = random.New()
	if cfg.RandomSeed != 0 {
		rnd = random.NewSeeded(cfg.RandomSeed)
	}

	app := newWithDependencies(store, clk, rnd, logger)
	app.SessionTTL = ttl
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.SessionStore, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	tttService := tictactoe.New(rnd)
	c4Service := connectfour.New(rnd)
	bsService := battleship.New(rnd, battleship.DefaultFleet(), logger)
	gameController := game.NewController(tttService, c4Service, bsService, logger)

	return &App{
		Sessions:       store,
		SessionTTL:     storage.DefaultSessionTTL,
		Clock:          clk,
		Random:         rnd,
		TicTacToe:      tttService,
		ConnectFour:    c4Service,
		Battleship:     bsService,
		GameController: gameController,
	}
}
