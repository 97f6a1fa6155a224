// Command migrate creates or updates the users and todos tables of the configured database.
package main

import (
	"log/slog"
	"os"

	"todolist/config"
	logs "todolist/internal/infra/log"
	"todolist/internal/infra/persistence/gormdb"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to create logger", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := gormdb.Open(cfg, logger)
	if err != nil {
		logger.Error("Failed to open database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := gormdb.Migrate(db); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Migration completed", slog.String("driver", cfg.Database.Driver))
}
