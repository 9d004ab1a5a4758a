// Command cleanup-tokens deletes expired or revoked refresh tokens and
// expired email confirmations once. The server runs the same job on the
// SCHEDULER_TOKEN_CLEANUP_SPEC schedule.
//
// Usage:
//
//	cleanup-tokens
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	confirmationrepo "github.com/heartmarshall/viovio/internal/adapter/postgres/confirmation"
	tokenrepo "github.com/heartmarshall/viovio/internal/adapter/postgres/token"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		logger.Error("DATABASE_DSN environment variable is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	tokens, err := tokenrepo.New(pool).DeleteExpired(ctx)
	if err != nil {
		logger.Error("cleanup tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	confirmations, err := confirmationrepo.New(pool).DeleteExpired(ctx)
	if err != nil {
		logger.Error("cleanup confirmations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleanup done", slog.Int("tokens", tokens), slog.Int("confirmations", confirmations))
}
