package db

import (
	"fmt"
	"log/slog"

	"github.com/linskybing/civictrack/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to Postgres. Driver errors are translated so unique
// violations surface as gorm.ErrDuplicatedKey.
func Open(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if cfg.SlogLevel() == slog.LevelDebug {
		logLevel = gormlogger.Info
	}

	conn, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	slog.Info("database connected", "host", cfg.DbHost, "name", cfg.DbName)
	return conn, nil
}
