// File: internal/song/service.go
package song

import (
	"context"
	"errors"
	"mime/multipart"

	"music_catalog_backend/internal/analytics"
	"music_catalog_backend/internal/common"
	"music_catalog_backend/internal/filestorage"
	"music_catalog_backend/internal/genre"
	"music_catalog_backend/internal/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CreateSongInput carries the validated form data for song creation.
type CreateSongInput struct {
	Name              string
	GenreID           uuid.UUID
	RequestedArtistID string // honored only for admin callers
	Image             *multipart.FileHeader
	Audio             *multipart.FileHeader
}

// Service defines the interface for song business logic.
type Service interface {
	GetAll(ctx context.Context) ([]Song, error)
	GetByGenre(ctx context.Context, genreIDOrSlug string) ([]Song, error)
	GetByArtist(ctx context.Context, artistID string) ([]Song, error)
	Create(ctx context.Context, caller *shared.Profile, input CreateSongInput) (*Song, error)
	Delete(ctx context.Context, caller *shared.Profile, id uuid.UUID) error
	TrackPlay(ctx context.Context, id uuid.UUID)
}

type service struct {
	repo     Repository
	genres   genre.Service
	profiles shared.Service
	storage  filestorage.Storage
	events   analytics.Service
	logger   *zap.Logger
}

// NewService creates a new song service.
func NewService(
	repo Repository,
	genres genre.Service,
	profiles shared.Service,
	storage filestorage.Storage,
	events analytics.Service,
	logger *zap.Logger,
) Service {
	return &service{
		repo:     repo,
		genres:   genres,
		profiles: profiles,
		storage:  storage,
		events:   events,
		logger:   logger.Named("SongService"),
	}
}

func (s *service) GetAll(ctx context.Context) ([]Song, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetByGenre(ctx context.Context, genreIDOrSlug string) ([]Song, error) {
	g, err := s.genres.GetByIDOrSlug(ctx, genreIDOrSlug)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByGenreID(ctx, g.ID)
}

func (s *service) GetByArtist(ctx context.Context, artistID string) ([]Song, error) {
	return s.repo.FindByArtistID(ctx, artistID)
}

// Create uploads the song's image and audio concurrently, then persists the
// song owned by the resolved artist. The owning artist's display name is
// denormalized onto the song at this point and not kept in sync afterwards.
func (s *service) Create(ctx context.Context, caller *shared.Profile, input CreateSongInput) (*Song, error) {
	owner, err := s.resolveOwner(ctx, caller, input.RequestedArtistID)
	if err != nil {
		return nil, err
	}
	if input.Image == nil || input.Audio == nil {
		return nil, common.ErrBadRequest.WithDetails("Both an image and an audio file are required.")
	}

	var imageURL, audioURL string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		url, err := filestorage.SaveMultipart(gctx, s.storage, "images/songs/", input.Image)
		imageURL = url
		return err
	})
	g.Go(func() error {
		url, err := filestorage.SaveMultipart(gctx, s.storage, "audio/songs/", input.Audio)
		audioURL = url
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Song media upload failed", zap.String("name", input.Name), zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not store the song media.")
	}

	song := &Song{
		Name:       input.Name,
		AudioURL:   audioURL,
		ImageURL:   imageURL,
		ArtistID:   owner.ID,
		ArtistName: owner.DisplayName,
		GenreID:    input.GenreID,
	}
	if err := s.repo.Create(ctx, song); err != nil {
		s.logger.Error("Failed to create song", zap.String("name", input.Name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Song created",
		zap.String("id", song.ID.String()),
		zap.String("artist_id", song.ArtistID),
	)
	return song, nil
}

// resolveOwner decides which artist will own the new song. Admins must name
// an artist; artists always create for themselves.
func (s *service) resolveOwner(ctx context.Context, caller *shared.Profile, requestedArtistID string) (*shared.Profile, error) {
	switch {
	case caller.IsAdmin():
		if requestedArtistID == "" {
			return nil, common.ErrBadRequest.WithDetails("artist_id is required when creating a song as admin.")
		}
		owner, err := s.profiles.GetProfileByUID(ctx, requestedArtistID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, common.ErrBadRequest.WithDetails("No artist exists with the given artist_id.")
			}
			return nil, err
		}
		if !owner.IsArtist() {
			return nil, common.ErrBadRequest.WithDetails("The given artist_id does not belong to an artist.")
		}
		return owner, nil
	case caller.IsArtist():
		if requestedArtistID != "" && requestedArtistID != caller.ID {
			return nil, common.ErrForbidden.WithDetails("Artists can only create songs for themselves.")
		}
		return caller, nil
	default:
		return nil, common.ErrForbidden.WithDetails("Only artists and admins can create songs.")
	}
}

// Delete removes a song owned by the caller, or any song for admins.
func (s *service) Delete(ctx context.Context, caller *shared.Profile, id uuid.UUID) error {
	song, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !caller.IsAdmin() && song.ArtistID != caller.ID {
		return common.ErrForbidden.WithDetails("You can only delete your own songs.")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete song", zap.String("id", id.String()), zap.Error(err))
		return err
	}
	s.logger.Info("Song deleted", zap.String("id", id.String()), zap.String("deleted_by", caller.ID))
	return nil
}

// TrackPlay records a play event for the song. The event carries the song's
// name at play time; recording failures are never surfaced.
func (s *service) TrackPlay(ctx context.Context, id uuid.UUID) {
	song, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Debug("Play event for unknown song, dropping", zap.String("id", id.String()))
		return
	}
	s.events.TrackPlay(song.ID.String(), song.Name)
}
