// Command migrate applies the database schema once and exits.
package main

import (
	"log/slog"
	"os"

	"devconnector_backend/internal/app/di"
	"devconnector_backend/internal/platform/config"
	"devconnector_backend/internal/platform/db"
	"devconnector_backend/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat))

	gdb, err := db.ConnectWithRetry(cfg.DBDSN, db.ConnectTimeout, db.PostgresOpener)
	if err != nil {
		slog.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gdb, di.Models()...); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("migrate ok")
}
