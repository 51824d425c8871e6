package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/callboard/internal/config"
	"github.com/osse101/callboard/internal/database"
	"github.com/osse101/callboard/internal/database/memory"
	"github.com/osse101/callboard/internal/database/postgres"
	"github.com/osse101/callboard/internal/database/sqlite"
	"github.com/osse101/callboard/internal/repository"
)

// OpenStore connects the prediction store selected by STORAGE_DRIVER and
// brings its schema up to date.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	var (
		store repository.Store
		err   error
	)

	switch cfg.StorageDriver {
	case database.DriverMemory:
		store = memory.NewPredictionStore()
	case database.DriverSQLite:
		store, err = openSQLite(ctx, cfg.SQLitePath)
	case database.DriverPostgres:
		store, err = openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageDriver, cfg.StorageDriver)
	}
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgStorageReady, "driver", cfg.StorageDriver)
	return store, nil
}

func openSQLite(ctx context.Context, path string) (repository.Store, error) {
	repo, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
	}
	return repo, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if err := database.MigratePool(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
	}

	return postgres.NewPredictionRepository(pool), nil
}
