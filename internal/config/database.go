package config

import (
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	slowQueryThreshold = 500 * time.Millisecond
	maxOpenConns       = 10
	maxIdleConns       = 5
)

// gormWriter routes gorm's own log lines into zap.
type gormWriter struct {
	log *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Infof(format, args...)
}

// gormLogger logs slow queries and errors, and every statement at debug level.
// Empty participant lookups are expected and not reported.
func gormLogger(level string, log *zap.Logger) logger.Interface {
	mode := logger.Warn
	if level == "debug" {
		mode = logger.Info
	}
	return logger.New(gormWriter{log: log.Named("gorm").Sugar()}, logger.Config{
		SlowThreshold:             slowQueryThreshold,
		IgnoreRecordNotFoundError: true,
		LogLevel:                  mode,
	})
}

func NewDatabase(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormLogger(cfg.LogLevel, log),
	})
	if err != nil {
		return nil, eris.Wrap(err, "open database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, eris.Wrap(err, "access connection pool")
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)

	log.Info("database connection established",
		zap.Int("max_open_conns", maxOpenConns),
		zap.Duration("slow_query_threshold", slowQueryThreshold))
	return db, nil
}
