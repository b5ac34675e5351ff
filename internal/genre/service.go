// File: internal/genre/service.go
package genre

import (
	"context"
	"mime/multipart"

	"music_catalog_backend/internal/common"
	"music_catalog_backend/internal/filestorage"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// Service defines the interface for genre business logic.
type Service interface {
	GetAll(ctx context.Context) ([]Genre, error)
	GetByIDOrSlug(ctx context.Context, idOrSlug string) (*Genre, error)
	AdminCreate(ctx context.Context, req AdminCreateGenreRequest, image *multipart.FileHeader) (*Genre, error)
	AdminDelete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo    Repository
	storage filestorage.Storage
	logger  *zap.Logger
}

// NewService creates a new genre service.
func NewService(repo Repository, storage filestorage.Storage, logger *zap.Logger) Service {
	return &service{
		repo:    repo,
		storage: storage,
		logger:  logger.Named("GenreService"),
	}
}

func (s *service) GetAll(ctx context.Context) ([]Genre, error) {
	return s.repo.FindAll(ctx)
}

// GetByIDOrSlug resolves a genre by UUID when the parameter parses as one,
// by slug otherwise.
func (s *service) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*Genre, error) {
	if id, err := uuid.Parse(idOrSlug); err == nil {
		return s.repo.FindByID(ctx, id)
	}
	return s.repo.FindBySlug(ctx, idOrSlug)
}

// AdminCreate uploads the genre image and persists the genre. There is no
// rollback of the uploaded image when the write fails; the key is unique per
// upload so a retry never collides with the orphan.
func (s *service) AdminCreate(ctx context.Context, req AdminCreateGenreRequest, image *multipart.FileHeader) (*Genre, error) {
	if image == nil {
		return nil, common.ErrBadRequest.WithDetails("A genre image file is required.")
	}

	imageURL, err := filestorage.SaveMultipart(ctx, s.storage, "images/genres/", image)
	if err != nil {
		s.logger.Error("Failed to upload genre image", zap.String("name", req.Name), zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not store the genre image.")
	}

	genre := &Genre{
		Name:     req.Name,
		Slug:     slug.Make(req.Name),
		ImageURL: imageURL,
	}
	if err := s.repo.Create(ctx, genre); err != nil {
		s.logger.Error("Failed to create genre", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Genre created", zap.String("id", genre.ID.String()), zap.String("slug", genre.Slug))
	return genre, nil
}

func (s *service) AdminDelete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete genre", zap.String("id", id.String()), zap.Error(err))
		return err
	}
	s.logger.Info("Genre deleted", zap.String("id", id.String()))
	return nil
}
