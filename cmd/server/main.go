package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mcoot/gridgames-go/internal/api"
	"github.com/mcoot/gridgames-go/internal/config"
	"github.com/mcoot/gridgames-go/internal/factory"
	redisstorage "github.com/mcoot/gridgames-go/internal/storage/redis"
	"github.com/mcoot/gridgames-go/internal/web"
)

func main() {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("could not read .env", slog.String("error", err.Error()))
		os.Exit(1)
	}

	configPath := os.Getenv("GRIDGAMES_CONFIG")
	conf, err := config.Load(configPath)
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		_, _ = os.Stderr.WriteString(config.Usage())
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: conf.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Build factory config
	cfg := factory.Config{
		Logger:      logger,
		StorageType: conf.Storage.Type,
		SessionTTL:  conf.Session.TTL,
		RandomSeed:  conf.RandomSeed,
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = conf.Storage.RedisURL
		redisCfg.PoolSize = conf.Storage.PoolSize
		redisCfg.MinIdleConns = conf.Storage.MinIdleConns
		redisCfg.SessionTTL = conf.Session.TTL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		SubmissionID:   conf.SubmissionID,
	})

	// Create web router
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		Sessions:       app.Sessions,
		SessionTTL:     app.SessionTTL,
		Clock:          app.Clock,
		SubmissionID:   conf.SubmissionID,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = conf.IP
	serverConfig.Port = conf.HTTPPort
	server := api.NewServer(mux, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", conf.Storage.Type),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if closer, ok := app.Sessions.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Warn("closing session store", slog.String("error", err.Error()))
		}
	}

	logger.Info("server stopped")
}
