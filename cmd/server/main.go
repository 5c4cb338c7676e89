package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/sentiscope/config"
	"github.com/spacesedan/sentiscope/internal/app"
	"github.com/spacesedan/sentiscope/internal/logging"
	"github.com/spacesedan/sentiscope/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("[Main] Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.InitLogger(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analyzer, cache, err := app.Build(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build analyzer: %w", err)
	}

	opts := server.Options{Analyzer: analyzer, MaxBatchSize: cfg.MaxBatchSize}
	if cache != nil {
		defer cache.Close()
		opts.Cache = cache
	}

	router, err := server.NewRouter(opts)
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	return server.New(cfg.Addr(), router).Run(ctx)
}
