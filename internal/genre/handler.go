// File: internal/genre/handler.go
package genre

import (
	"errors"

	"music_catalog_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for genre handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new genre handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("GenreHandler"),
	}
}

// RegisterRoutes sets up the routes for genre operations. Browsing requires
// an authenticated session; mutations additionally require the admin role.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	genreGroup := router.Group("/genres")
	genreGroup.Use(authMW)
	{
		genreGroup.GET("", h.getAll)
		genreGroup.GET("/:idOrSlug", h.getByIDOrSlug)
		genreGroup.POST("", adminMW, h.adminCreate)
		genreGroup.DELETE("/:idOrSlug", adminMW, h.adminDelete)
	}
}

func (h *Handler) getAll(c *gin.Context) {
	genres, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	responses := make([]GenreResponse, len(genres))
	for i := range genres {
		responses[i] = ToGenreResponse(&genres[i])
	}
	common.RespondOK(c, "Genres retrieved successfully.", responses)
}

func (h *Handler) getByIDOrSlug(c *gin.Context) {
	genre, err := h.service.GetByIDOrSlug(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Genre retrieved successfully.", ToGenreResponse(genre))
}

func (h *Handler) adminCreate(c *gin.Context) {
	var req AdminCreateGenreRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("Genre creation: invalid form", zap.Error(err))
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
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A genre image file is required."))
		return
	}

	genre, err := h.service.AdminCreate(c.Request.Context(), req, image)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Genre created successfully.", ToGenreResponse(genre))
}

func (h *Handler) adminDelete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("idOrSlug"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid genre ID format."))
		return
	}
	if err := h.service.AdminDelete(c.Request.Context(), id); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}
