// File: internal/platform/database/migrate.go
package database

import (
	"fmt"

	"music_catalog_backend/internal/analytics"
	"music_catalog_backend/internal/genre"
	"music_catalog_backend/internal/song"
	"music_catalog_backend/internal/user"

	"gorm.io/gorm"
)

// AutoMigrate keeps the schema in sync with the models on startup.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&user.Profile{},
		&genre.Genre{},
		&song.Song{},
		&analytics.Event{},
	); err != nil {
		return fmt.Errorf("failed to run schema migration: %w", err)
	}
	return nil
}
