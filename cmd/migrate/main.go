// Command migrate applies or inspects database migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// Requires DATABASE_DSN (or CONFIG_PATH pointing at a config with database.dsn).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/heartmarshall/viovio/internal/adapter/postgres"
	"github.com/heartmarshall/viovio/internal/config"
)

func main() {
	flag.Parse()
	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("load .env", slog.String("error", err.Error()))
	}

	if err := run(cmd, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", cmd), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cmd string, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	switch cmd {
	case "up":
		return postgres.Migrate(ctx, pool, logger)
	case "down", "status":
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", cmd)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	p, err := postgres.NewMigrator(db)
	if err != nil {
		return err
	}

	if cmd == "down" {
		res, err := p.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		logger.Info("migration rolled back", slog.Int64("version", res.Source.Version))
		return nil
	}

	statuses, err := p.Status(ctx)
	if err != nil {
		return fmt.Errorf("goose status: %w", err)
	}
	for _, s := range statuses {
		logger.Info("migration",
			slog.Int64("version", s.Source.Version),
			slog.String("source", s.Source.Path),
			slog.String("state", string(s.State)),
		)
	}
	return nil
}
