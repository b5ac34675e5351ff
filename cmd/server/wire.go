// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"music_catalog_backend/internal/analytics"
	"music_catalog_backend/internal/app"
	"music_catalog_backend/internal/artist"
	"music_catalog_backend/internal/auth"
	"music_catalog_backend/internal/config"
	"music_catalog_backend/internal/filestorage"
	"music_catalog_backend/internal/firebase"
	"music_catalog_backend/internal/genre"
	"music_catalog_backend/internal/jobs"
	"music_catalog_backend/internal/platform/logger"
	"music_catalog_backend/internal/shared"
	"music_catalog_backend/internal/song"
	"music_catalog_backend/internal/user"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		provideGORM,

		// Firebase Admin SDK
		firebase.NewService,
		wire.Bind(new(shared.TokenVerifier), new(*firebase.Service)),
		wire.Bind(new(shared.IdentityAdmin), new(*firebase.Service)),

		// Blob storage
		filestorage.NewStorage,

		// Analytics sink
		analytics.NewGORMRepository,
		provideAnalyticsService,
		wire.Bind(new(analytics.Service), new(*analytics.ServiceImplementation)),

		// Profiles
		user.NewGORMRepository,
		user.NewService,
		wire.Bind(new(shared.Service), new(*user.ServiceImplementation)),
		wire.Bind(new(user.Service), new(*user.ServiceImplementation)),
		user.NewHandler,

		// Session
		auth.NewHandler,

		// Catalog
		genre.NewGORMRepository,
		genre.NewService,
		genre.NewHandler,
		song.NewGORMRepository,
		song.NewService,
		song.NewHandler,
		artist.NewService,
		artist.NewHandler,

		// Jobs
		jobs.NewCatalogIntegrityJob,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
