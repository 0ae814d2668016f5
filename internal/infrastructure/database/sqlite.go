package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/partsledger/partsledger-api/internal/config"
	"github.com/partsledger/partsledger-api/internal/domain/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens the local SQLite database file, creating its directory
// when missing
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	logLevel := logger.Warn

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	log.Printf("Successfully opened SQLite database at %s", cfg.Path)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for the persistence schema
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.StateBlob{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
