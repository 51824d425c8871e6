// Package main runs the CallBoard HTTP API.
//
//	@title			CallBoard API
//	@version		1.0
//	@description	Record predictions, resolve them after expiry, and rank users by points.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/callboard/internal/bootstrap"
	"github.com/osse101/callboard/internal/clock"
	"github.com/osse101/callboard/internal/config"
	"github.com/osse101/callboard/internal/leaderboard"
	"github.com/osse101/callboard/internal/prediction"
	"github.com/osse101/callboard/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("CallBoard exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logCloser, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	predictionService := prediction.NewService(store, clock.NewRealClock(), prediction.StakeLimits{
		Min: cfg.MinStake,
		Max: cfg.MaxStake,
	})
	leaderboardService := leaderboard.NewService(store)

	srv := server.NewServer(cfg, store, predictionService, leaderboardService)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Store:  store,
	})

	return runErr
}
