package config

import (
	"context"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the shared database handle. A postgres:// DSN selects the
// Postgres driver; anything else is treated as a SQLite path, which is the
// default single-file deployment.
func Connect(ctx context.Context, dsn string) error {
	if dsn == "" {
		dsn = "quizzlab.db"
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return err
	}

	WithContext(ctx).WithField("driver", dialector.Name()).Info("database connected")
	DB = db
	return nil
}
