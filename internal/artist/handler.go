// File: internal/artist/handler.go
package artist

import (
	"errors"

	"music_catalog_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for artist handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new artist handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("ArtistHandler"),
	}
}

// RegisterRoutes sets up the routes for artist operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	artistGroup := router.Group("/artists")
	artistGroup.Use(authMW)
	{
		artistGroup.GET("", h.getAll)
		artistGroup.GET("/:id", h.getByID)
		artistGroup.POST("", adminMW, h.adminCreate)
		artistGroup.DELETE("/:id", adminMW, h.adminDelete)
	}
}

func (h *Handler) getAll(c *gin.Context) {
	artists, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Artists retrieved successfully.", artists)
}

func (h *Handler) getByID(c *gin.Context) {
	artist, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Artist retrieved successfully.", artist)
}

func (h *Handler) adminCreate(c *gin.Context) {
	var req AdminCreateArtistRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("Artist creation: invalid form", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	image, err := c.FormFile("image")
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("An artist image file is required."))
		return
	}

	artist, err := h.service.AdminCreate(c.Request.Context(), req, image)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Artist created successfully.", artist)
}

func (h *Handler) adminDelete(c *gin.Context) {
	if err := h.service.AdminDelete(c.Request.Context(), c.Param("id")); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}
