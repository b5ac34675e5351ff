// File: internal/user/handler.go
package user

import (
	"errors"

	"music_catalog_backend/internal/auth"
	"music_catalog_backend/internal/common"
	"music_catalog_backend/internal/middleware"
	"music_catalog_backend/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for user handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new user handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("UserHandler"),
	}
}

// RegisterRoutes sets up the routes for profile operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	userGroup := router.Group("/users")
	{
		userGroup.POST("/register", h.register)
		userGroup.GET("/me", authMW, h.getMe)
	}
}

// register creates the identity and profile and returns the adopted session
// snapshot, so the client needs no second round trip before routing.
func (h *Handler) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Registration: Invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	profile, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	common.RespondCreated(c, "User registered successfully.", auth.NewSessionResponse(profile.ID, profile.Email, profile))
}

func (h *Handler) getMe(c *gin.Context) {
	profile := middleware.GetProfileFromContext(c)
	if profile == nil {
		uid := common.GetIdentityUIDFromContext(c)
		h.logger.Warn("No profile for authenticated identity on /me", zap.String("uid", uid))
		common.RespondWithError(c, common.ErrNotFound.WithDetails("No profile exists for this identity."))
		return
	}
	common.RespondOK(c, "Profile retrieved successfully.", shared.ToProfileResponse(profile))
}
