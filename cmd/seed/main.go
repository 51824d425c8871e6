// Command seed fills the configured store with demo predictions.
//
// Predictions are created on a simulated clock that starts in the past, so a
// share of them can be resolved immediately and the leaderboard has data.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/brianvoe/gofakeit"

	"github.com/osse101/callboard/internal/bootstrap"
	"github.com/osse101/callboard/internal/clock"
	"github.com/osse101/callboard/internal/config"
	"github.com/osse101/callboard/internal/domain"
	"github.com/osse101/callboard/internal/leaderboard"
	"github.com/osse101/callboard/internal/prediction"
)

var categories = []string{"sports", "weather", "markets", "tech", "politics"}

func main() {
	var (
		users      = flag.Int("users", 8, "number of distinct usernames")
		count      = flag.Int("predictions", 50, "number of predictions to create")
		resolvePct = flag.Int("resolve-percent", 70, "share of predictions to resolve, 0-100")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		daysBack   = flag.Int("days", 14, "how far in the past the simulated clock starts")
	)
	flag.Parse()

	if err := validateFlags(*users, *count, *resolvePct, *daysBack); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*users, *count, *resolvePct, *seed, *daysBack); err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}

func validateFlags(users, count, resolvePct, daysBack int) error {
	switch {
	case users < 1:
		return fmt.Errorf("-users must be at least 1, got %d", users)
	case count < 0:
		return fmt.Errorf("-predictions must not be negative, got %d", count)
	case resolvePct < 0 || resolvePct > 100:
		return fmt.Errorf("-resolve-percent must be between 0 and 100, got %d", resolvePct)
	case daysBack < 1:
		return fmt.Errorf("-days must be at least 1, got %d", daysBack)
	}
	return nil
}

// resolveTime is the latest expiry, capped at wall-clock now so no
// resolved_at lands in the future.
func resolveTime(created []*domain.Prediction, now time.Time) time.Time {
	var latest time.Time
	for _, p := range created {
		if p.ExpiresAt.After(latest) {
			latest = p.ExpiresAt
		}
	}
	if latest.After(now) {
		return now
	}
	return latest
}

func run(users, count, resolvePct int, seed int64, daysBack int) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	closer, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	gofakeit.Seed(seed)
	usernames := make([]string, users)
	for i := range usernames {
		usernames[i] = gofakeit.Username()
	}

	clk := clock.NewSimulatedClock(time.Now().UTC().AddDate(0, 0, -daysBack))
	svc := prediction.NewService(store, clk, prediction.StakeLimits{Min: cfg.MinStake, Max: cfg.MaxStake})

	created := make([]*domain.Prediction, 0, count)
	for i := 0; i < count; i++ {
		input := domain.CreatePredictionInput{
			Title:     gofakeit.Sentence(gofakeit.Number(3, 8)),
			Username:  usernames[gofakeit.Number(0, len(usernames)-1)],
			ExpiresAt: clk.Now().Add(time.Duration(gofakeit.Number(1, 48)) * time.Hour),
		}
		if gofakeit.Bool() {
			category := categories[gofakeit.Number(0, len(categories)-1)]
			input.Category = &category
		}
		if gofakeit.Number(0, 3) > 0 {
			stake := gofakeit.Number(cfg.MinStake, min(cfg.MaxStake, 100))
			input.Stake = &stake
		}

		p, err := svc.CreatePrediction(ctx, input)
		if err != nil {
			return fmt.Errorf("create prediction %d: %w", i, err)
		}
		created = append(created, p)
		clk.Advance(time.Duration(gofakeit.Number(5, 120)) * time.Minute)
	}

	resolveAt := resolveTime(created, time.Now().UTC())
	clk.Set(resolveAt)

	resolved := 0
	for _, p := range created {
		// Predictions still running at wall-clock now stay open
		if p.ExpiresAt.After(resolveAt) || gofakeit.Number(1, 100) > resolvePct {
			continue
		}
		outcome := string(domain.OutcomeFail)
		if gofakeit.Bool() {
			outcome = string(domain.OutcomeSuccess)
		}
		if _, err := svc.ResolvePrediction(ctx, p.ID, outcome); err != nil {
			return fmt.Errorf("resolve prediction %d: %w", p.ID, err)
		}
		resolved++
	}

	board, err := leaderboard.NewService(store).GetLeaderboard(ctx)
	if err != nil {
		return err
	}

	slog.Info("Seeding complete",
		"created", len(created),
		"resolved", resolved,
		"leaderboard_users", len(board))
	return nil
}
