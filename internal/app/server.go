// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"music_catalog_backend/internal/artist"
	"music_catalog_backend/internal/auth"
	"music_catalog_backend/internal/common"
	"music_catalog_backend/internal/config"
	"music_catalog_backend/internal/firebase"
	"music_catalog_backend/internal/genre"
	"music_catalog_backend/internal/jobs"
	"music_catalog_backend/internal/middleware"
	"music_catalog_backend/internal/shared"
	"music_catalog_backend/internal/song"
	"music_catalog_backend/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	// Handlers
	userHandler   *user.Handler
	authHandler   *auth.Handler
	genreHandler  *genre.Handler
	songHandler   *song.Handler
	artistHandler *artist.Handler

	// Jobs
	catalogIntegrityJob *jobs.CatalogIntegrityJob
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	userHandler *user.Handler,
	authHandler *auth.Handler,
	genreHandler *genre.Handler,
	songHandler *song.Handler,
	artistHandler *artist.Handler,
	catalogIntegrityJob *jobs.CatalogIntegrityJob,
	firebaseService *firebase.Service,
	profileService shared.Service,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())

	// CORS Middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	// Route-level middleware instances. Registration and health stay open;
	// everything else in the catalog requires an authenticated session.
	authMW := middleware.AuthMiddleware(firebaseService, profileService, logger.Named("AuthMiddleware"))
	adminMW := middleware.RoleAuthMiddleware(common.RoleAdmin)
	artistOrAdminMW := middleware.RoleAuthMiddleware(common.RoleArtist, common.RoleAdmin)

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Music catalog API is healthy!"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Serve uploaded media directly when the local storage driver is active.
	if cfg.StorageDriver == "local" {
		router.Static("/uploads", cfg.StorageLocalPath)
	}

	v1 := router.Group("/api/v1")

	authHandler.RegisterRoutes(v1, authMW)
	userHandler.RegisterRoutes(v1, authMW)
	genreHandler.RegisterRoutes(v1, authMW, adminMW)
	songHandler.RegisterRoutes(v1, authMW, artistOrAdminMW)
	artistHandler.RegisterRoutes(v1, authMW, adminMW)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:          httpServer,
		router:              router,
		cfg:                 cfg,
		logger:              logger,
		userHandler:         userHandler,
		authHandler:         authHandler,
		genreHandler:        genreHandler,
		songHandler:         songHandler,
		artistHandler:       artistHandler,
		catalogIntegrityJob: catalogIntegrityJob,
	}, nil
}

func (s *Server) Start() error {
	if s.catalogIntegrityJob != nil {
		if err := s.catalogIntegrityJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start catalog integrity job", zap.Error(err))
		}
	} else {
		s.logger.Info("Catalog integrity job is not configured, skipping start.")
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped gracefully or an error occurred")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.catalogIntegrityJob != nil {
		s.catalogIntegrityJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
