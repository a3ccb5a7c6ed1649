// Package app wires configuration, logging and dependencies and runs the
// command tree.
package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/SoofabhMK1/ai-writing-system/internal/api"
	"github.com/SoofabhMK1/ai-writing-system/internal/cache"
	"github.com/SoofabhMK1/ai-writing-system/internal/cli"
	"github.com/SoofabhMK1/ai-writing-system/internal/config"
	"github.com/SoofabhMK1/ai-writing-system/internal/service"
	"github.com/SoofabhMK1/ai-writing-system/internal/stream"
)

// Run builds the client and executes the CLI. It returns the process exit
// code.
func Run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	// The cache is a convenience; a client without one still works.
	var history cache.Repository
	db, err := cache.InitDB(cfg.CachePath)
	if err != nil {
		slog.Warn("Could not open history cache, continuing without it", "error", err)
	} else {
		defer func() {
			if cErr := db.Close(); cErr != nil {
				slog.Warn("Failed to close cache database", "error", cErr)
			}
		}()
		history = cache.NewSQLiteRepository(db)
	}

	apiClient := api.NewClient(cfg.BackendURL)
	streamer := stream.NewClient(cfg.BackendURL)
	gate := cli.NewTerminalGate(os.Stdin, os.Stdout)
	notifier := cli.NewTerminalNotifier(os.Stderr)

	svc := service.NewConversationService(apiClient, streamer, gate, notifier, history)
	svc.SetPreviewBeforeSend(cfg.PreviewBeforeSend)
	if cfg.ProjectID > 0 {
		svc.SetProjectID(cfg.ProjectID)
	}

	root := cli.NewRootCmd(&cli.Deps{Cfg: cfg, API: apiClient, Svc: svc})
	if err := root.Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		return 1
	}
	return 0
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Logs go to stderr so they never interleave with transcript output.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
