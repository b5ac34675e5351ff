// File: internal/song/handler.go
package song

import (
	"errors"

	"music_catalog_backend/internal/common"
	"music_catalog_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for song handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new song handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("SongHandler"),
	}
}

// RegisterRoutes sets up the routes for song operations. The genre- and
// artist-scoped listings live under those resources' paths but are served
// here. Ownership checks on delete happen in the service, so the role
// middleware only gates creation.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW, artistOrAdminMW gin.HandlerFunc) {
	songGroup := router.Group("/songs")
	songGroup.Use(authMW)
	{
		songGroup.GET("", h.getAll)
		songGroup.POST("", artistOrAdminMW, h.create)
		songGroup.DELETE("/:id", h.delete)
		songGroup.POST("/:id/play", h.play)
	}

	router.GET("/genres/:idOrSlug/songs", authMW, h.getByGenre)
	router.GET("/artists/:id/songs", authMW, h.getByArtist)
}

func (h *Handler) getAll(c *gin.Context) {
	songs, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Songs retrieved successfully.", toSongResponses(songs))
}

func (h *Handler) getByGenre(c *gin.Context) {
	songs, err := h.service.GetByGenre(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Songs retrieved successfully.", toSongResponses(songs))
}

func (h *Handler) getByArtist(c *gin.Context) {
	songs, err := h.service.GetByArtist(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Songs retrieved successfully.", toSongResponses(songs))
}

func (h *Handler) create(c *gin.Context) {
	var req CreateSongRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("Song creation: invalid form", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	genreID, err := uuid.Parse(req.GenreID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid genre_id format."))
		return
	}

	image, err := c.FormFile("image")
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A song image file is required."))
		return
	}
	audio, err := c.FormFile("audio")
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A song audio file is required."))
		return
	}

	caller := middleware.GetProfileFromContext(c)
	song, err := h.service.Create(c.Request.Context(), caller, CreateSongInput{
		Name:              req.Name,
		GenreID:           genreID,
		RequestedArtistID: req.ArtistID,
		Image:             image,
		Audio:             audio,
	})
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Song created successfully.", ToSongResponse(song))
}

func (h *Handler) delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid song ID format."))
		return
	}

	caller := middleware.GetProfileFromContext(c)
	if caller == nil {
		common.RespondWithError(c, common.ErrForbidden.WithDetails("No profile is associated with this identity."))
		return
	}

	if err := h.service.Delete(c.Request.Context(), caller, id); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}

// play records a play event. Always 204: playback must never fail because
// the sink does.
func (h *Handler) play(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err == nil {
		h.service.TrackPlay(c.Request.Context(), id)
	}
	common.RespondNoContent(c)
}

func toSongResponses(songs []Song) []SongResponse {
	responses := make([]SongResponse, len(songs))
	for i := range songs {
		responses[i] = ToSongResponse(&songs[i])
	}
	return responses
}
