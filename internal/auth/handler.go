// File: internal/auth/handler.go
package auth

import (
	"music_catalog_backend/internal/analytics"
	"music_catalog_backend/internal/common"
	"music_catalog_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for session handlers.
type Handler struct {
	events analytics.Service
	logger *zap.Logger
}

// NewHandler creates a new auth handler.
func NewHandler(events analytics.Service, logger *zap.Logger) *Handler {
	return &Handler{
		events: events,
		logger: logger.Named("AuthHandler"),
	}
}

// RegisterRoutes sets up the routes for session operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	authGroup := router.Group("/auth")
	{
		authGroup.GET("/session", authMW, h.getSession)
	}
}

// getSession returns the session snapshot for the calling identity. Clients
// land here right after sign-in to learn where to go next, so a login event
// is recorded with the sign-in method used.
func (h *Handler) getSession(c *gin.Context) {
	uid := common.GetIdentityUIDFromContext(c)
	profile := middleware.GetProfileFromContext(c)

	var email *string
	if e := c.GetString(common.UserEmailKey); e != "" {
		email = &e
	}

	if profile == nil {
		// Authenticated identity without a profile row. The session still
		// works, routed to home, but the data stores disagree.
		h.logger.Error("Authenticated identity has no profile", zap.String("uid", uid))
	}

	h.events.TrackLogin(uid, c.GetString(common.SignInProviderKey))

	common.RespondOK(c, "Session resolved.", NewSessionResponse(uid, email, profile))
}
