// Package db はPostgreSQLへのGORM接続とマイグレーションを提供します。
package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"devconnector_backend/internal/platform/config"
)

// Opener opens a gorm connection for a DSN. Swapped out in tests.
type Opener func(dsn string) (*gorm.DB, error)

// retryInterval は接続リトライの待機時間です。
var retryInterval = 3 * time.Second

// ConnectTimeout は起動時に接続を試み続ける最大時間です。
const ConnectTimeout = 60 * time.Second

// PostgresOpener opens a PostgreSQL connection with gorm's logger silenced;
// request logging is done by the HTTP layer. Driver errors are translated so
// unique violations surface as gorm.ErrDuplicatedKey.
func PostgresOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
}

// OpenDB connects to the database described by cfg, retrying for up to a
// minute, and migrates models when cfg.RunMigrations is set.
func OpenDB(cfg *config.Config, models ...any) (*gorm.DB, error) {
	// 不正なDSNはリトライしても直らないため即座に失敗させる
	if err := ValidateDSN(cfg.DBDSN); err != nil {
		return nil, err
	}
	db, err := ConnectWithRetry(cfg.DBDSN, ConnectTimeout, PostgresOpener)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := Migrate(db, models...); err != nil {
			return nil, err
		}
		slog.Info("database migrations applied")
	}
	return db, nil
}

// ValidateDSN reports whether dsn parses as a PostgreSQL connection string.
func ValidateDSN(dsn string) error {
	if _, err := pgx.ParseConfig(dsn); err != nil {
		return fmt.Errorf("invalid DB_DSN: %w", err)
	}
	return nil
}

// ConnectWithRetry calls open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "interval", retryInterval)
		time.Sleep(retryInterval)
	}
}

// Migrate creates or updates the tables of the given models.
// The caller owns the model list so this package stays free of feature imports.
func Migrate(db *gorm.DB, models ...any) error {
	if len(models) == 0 {
		return nil
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
