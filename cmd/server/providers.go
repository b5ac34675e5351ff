// File: cmd/server/providers.go
package main

import (
	"music_catalog_backend/internal/analytics"
	"music_catalog_backend/internal/config"
	"music_catalog_backend/internal/platform/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// provideGORM opens the database connection, runs schema migration and hands
// Wire a cleanup that closes the connection on shutdown.
func provideGORM(cfg *config.Config, logger *zap.Logger) (*gorm.DB, func(), error) {
	db, err := database.NewGORM(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		database.CloseGORMDB(db)
		return nil, nil, err
	}
	cleanup := func() {
		logger.Info("Closing database connection...")
		database.CloseGORMDB(db)
	}
	return db, cleanup, nil
}

// provideAnalyticsService wraps the analytics service with a cleanup that
// drains in-flight events before the process exits.
func provideAnalyticsService(repo analytics.Repository, logger *zap.Logger) (*analytics.ServiceImplementation, func()) {
	svc := analytics.NewService(repo, logger)
	cleanup := func() {
		logger.Info("Flushing pending analytics events...")
		svc.Wait()
	}
	return svc, cleanup
}
