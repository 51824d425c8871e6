package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/callboard/internal/config"
	"github.com/osse101/callboard/internal/database/memory"
	"github.com/osse101/callboard/internal/database/sqlite"
	"github.com/osse101/callboard/internal/domain"
)

func baseConfig() *config.Config {
	return &config.Config{
		LogLevel:      "debug",
		LogFormat:     "json",
		Environment:   "dev",
		ServiceName:   "callboard",
		Version:       "test",
		StorageDriver: "memory",
		MinStake:      1,
		MaxStake:      1000,
	}
}

func restoreDefaultLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestSetupLogger_StdoutOnly(t *testing.T) {
	restoreDefaultLogger(t)
	var buf bytes.Buffer

	closer, err := setupLogger(baseConfig(), &buf)
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	assert.Contains(t, buf.String(), LogMsgLoggingInitialized)
	assert.Contains(t, buf.String(), `"service":"callboard"`)
}

func TestSetupLogger_WritesRotatingFile(t *testing.T) {
	restoreDefaultLogger(t)
	cfg := baseConfig()
	cfg.LogDir = filepath.Join(t.TempDir(), "logs")
	cfg.Environment = "prod"

	var buf bytes.Buffer
	closer, err := setupLogger(cfg, &buf)
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(cfg.LogDir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgStartingCallBoard)
	assert.Contains(t, string(data), "STORAGE_DRIVER=memory loses all predictions on restart")
	assert.Equal(t, buf.String(), string(data))
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, err := OpenStore(ctx, baseConfig())
		require.NoError(t, err)
		defer store.Close()

		assert.IsType(t, &memory.PredictionStore{}, store)
		assert.NoError(t, store.Ping(ctx))
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := baseConfig()
		cfg.StorageDriver = "sqlite"
		cfg.SQLitePath = filepath.Join(t.TempDir(), "callboard.db")

		store, err := OpenStore(ctx, cfg)
		require.NoError(t, err)
		defer store.Close()

		assert.IsType(t, &sqlite.PredictionRepository{}, store)

		p := &domain.Prediction{
			Title:     "Team A wins",
			Stake:     10,
			Username:  "alice",
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			ExpiresAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			Status:    domain.PredictionStatusOpen,
		}
		require.NoError(t, store.InsertPrediction(ctx, p))
		assert.Positive(t, p.ID)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := baseConfig()
		cfg.StorageDriver = "redis"

		_, err := OpenStore(ctx, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownStorageDriver)
	})
}

type recordingStopper struct {
	calls *[]string
	err   error
}

func (s recordingStopper) Stop(ctx context.Context) error {
	*s.calls = append(*s.calls, "server")
	return s.err
}

type recordingStore struct {
	*memory.PredictionStore
	calls *[]string
}

func (s recordingStore) Close() {
	*s.calls = append(*s.calls, "store")
}

func TestGracefulShutdown_Order(t *testing.T) {
	var calls []string

	GracefulShutdown(context.Background(), ShutdownComponents{
		Server: recordingStopper{calls: &calls, err: errors.New("deadline exceeded")},
		Store:  recordingStore{PredictionStore: memory.NewPredictionStore(), calls: &calls},
	})

	assert.Equal(t, []string{"server", "store"}, calls, "store closes even when the server stop fails")
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
