package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/callboard/internal/repository"
)

// Stopper is satisfied by *server.Server
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server Stopper
	Store  repository.Store
}

// GracefulShutdown stops the HTTP server first so no new resolves start, then
// releases the store. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStorage)
		components.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
