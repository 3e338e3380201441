// Package main is the entry point. It stays minimal: load config, build
// the logger, create the server, run it. Everything else lives in
// internal packages.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sakif/formbot/internal/config"
	"github.com/sakif/formbot/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	// Make sure the database directory exists before sqlite tries to
	// create the file (no-op for ":memory:").
	if cfg.DBPath != ":memory:" {
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				logger.Error("failed to create database directory",
					slog.String("dir", dir),
					slog.String("error", err.Error()),
				)
				os.Exit(1)
			}
		}
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start blocks until the server is shut down (Ctrl+C or SIGTERM).
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
