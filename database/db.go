package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"latenight/internal/config"
	"latenight/internal/http-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the database named by cfg.DatabaseURL and creates the
// tables if they are missing.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(Dialector(cfg), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	// sqlite serialises writers; one connection also keeps :memory: databases alive
	if cfg.IsPostgres() {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	} else {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		sqlDB.Close()
		return nil, err
	}

	logger.Info("database_connected", "driver", db.Dialector.Name())
	return db, nil
}

// Dialector picks the gorm dialector for the configured URL.
func Dialector(cfg *config.Config) gorm.Dialector {
	if cfg.IsPostgres() {
		return postgres.Open(cfg.DatabaseURL)
	}
	return sqlite.Open(strings.TrimPrefix(cfg.DatabaseURL, "sqlite://"))
}

// Migrate creates the episodes, guests and appearances tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Episode{}, &models.Guest{}, &models.Appearance{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Ping checks that the database is reachable.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
