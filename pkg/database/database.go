package database

import (
	"errors"

	"studyplan-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ErrNotConfigured is returned when neither DATABASE_URL nor
// DATABASE_PATH is set; callers fall back to the in-memory store.
var ErrNotConfigured = errors.New("no database configured")

// Connect opens a GORM connection: postgres when DATABASE_URL is set,
// otherwise sqlite when DATABASE_PATH is set.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	switch {
	case cfg.DatabaseURL != "":
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	case cfg.DatabasePath != "":
		return gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	default:
		return nil, ErrNotConfigured
	}
}
