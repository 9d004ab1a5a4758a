// Command vocab is the terminal client of the lookup API.
//
// Type a word or phrase to look it up; :help lists the commands. Settings
// come from VOCAB_* environment variables or the YAML file named by
// VOCAB_CONFIG_PATH.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/viovio/internal/app"
	"github.com/heartmarshall/viovio/internal/client"
	"github.com/heartmarshall/viovio/internal/config"
	"github.com/heartmarshall/viovio/internal/session"
	"github.com/heartmarshall/viovio/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vocab:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}

	// Logs never go to the interactive screen.
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := app.NewLoggerTo(config.LogConfig{Level: cfg.LogLevel, Format: "text"}, logOut)

	store, err := session.NewFileStore(cfg.SessionFile)
	if err != nil {
		return err
	}

	api := client.New(cfg.ServerURL, cfg.RequestTimeout, logger)
	manager := session.NewManager(api, store, logger)
	api.WithTokenSource(manager)

	uiStore := ui.NewStore(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	ctrl := ui.NewController(uiStore, api, manager, logger)
	term := ui.NewTerminal(ctrl, uiStore, manager, os.Stdin, os.Stdout, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("client started", slog.String("server", cfg.ServerURL), slog.String("session_file", store.Path()))
	return term.Run(ctx)
}
