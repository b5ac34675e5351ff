// File: internal/artist/service.go
package artist

import (
	"context"
	"errors"
	"mime/multipart"

	"music_catalog_backend/internal/common"
	"music_catalog_backend/internal/filestorage"
	"music_catalog_backend/internal/shared"

	"go.uber.org/zap"
)

// Service defines the interface for artist business logic.
type Service interface {
	GetAll(ctx context.Context) ([]Artist, error)
	GetByID(ctx context.Context, id string) (*Artist, error)
	AdminCreate(ctx context.Context, req AdminCreateArtistRequest, image *multipart.FileHeader) (*Artist, error)
	AdminDelete(ctx context.Context, id string) error
}

type service struct {
	profiles   shared.Service
	identities shared.IdentityAdmin
	storage    filestorage.Storage
	logger     *zap.Logger
}

// NewService creates a new artist service.
func NewService(
	profiles shared.Service,
	identities shared.IdentityAdmin,
	storage filestorage.Storage,
	logger *zap.Logger,
) Service {
	return &service{
		profiles:   profiles,
		identities: identities,
		storage:    storage,
		logger:     logger.Named("ArtistService"),
	}
}

func (s *service) GetAll(ctx context.Context) ([]Artist, error) {
	profiles, err := s.profiles.GetProfilesByRole(ctx, common.RoleArtist)
	if err != nil {
		return nil, err
	}
	artists := make([]Artist, 0, len(profiles))
	for _, p := range profiles {
		if a := FromProfile(p); a != nil {
			artists = append(artists, *a)
		}
	}
	return artists, nil
}

// GetByID returns the artist projection for a profile. Profiles that exist
// but do not carry the artist role are reported as not found: they are not
// part of this view.
func (s *service) GetByID(ctx context.Context, id string) (*Artist, error) {
	profile, err := s.profiles.GetProfileByUID(ctx, id)
	if err != nil {
		return nil, err
	}
	a := FromProfile(profile)
	if a == nil {
		return nil, common.ErrNotFound.WithDetails("Artist not found.")
	}
	return a, nil
}

// AdminCreate provisions a new artist: identity at the auth provider, image
// in the blob store, profile with the artist role. The identity is created
// through the Admin SDK, so the calling admin's own session is never touched.
// If anything fails after the identity exists, the identity is deleted again.
func (s *service) AdminCreate(ctx context.Context, req AdminCreateArtistRequest, image *multipart.FileHeader) (*Artist, error) {
	if image == nil {
		return nil, common.ErrBadRequest.WithDetails("An artist image file is required.")
	}

	identity, err := s.identities.CreateIdentity(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Warn("Artist creation: identity creation failed", zap.String("email", req.Email), zap.Error(err))
		return nil, common.ErrConflict.WithDetails("Could not create an account with this email.")
	}

	cleanupIdentity := func() {
		if delErr := s.identities.DeleteIdentity(ctx, identity.UID); delErr != nil {
			s.logger.Error("Artist creation: identity cleanup failed, orphaned identity remains",
				zap.String("uid", identity.UID), zap.Error(delErr))
		}
	}

	imageURL, err := filestorage.SaveMultipart(ctx, s.storage, "images/artists/"+identity.UID+"/", image)
	if err != nil {
		s.logger.Error("Artist creation: image upload failed, deleting identity",
			zap.String("uid", identity.UID), zap.Error(err))
		cleanupIdentity()
		return nil, common.ErrInternalServer.WithDetails("Could not store the artist image.")
	}

	email := req.Email
	profile, err := s.profiles.CreateProfile(ctx, &shared.Profile{
		ID:             identity.UID,
		Email:          &email,
		DisplayName:    req.Name,
		Role:           common.RoleArtist,
		ArtistImageURL: &imageURL,
	})
	if err != nil {
		s.logger.Error("Artist creation: profile write failed, deleting identity",
			zap.String("uid", identity.UID), zap.Error(err))
		cleanupIdentity()
		if apiErr, ok := common.IsAPIError(err); ok {
			return nil, apiErr
		}
		return nil, common.ErrInternalServer.WithDetails("Could not create the artist profile.")
	}

	s.logger.Info("Artist created", zap.String("uid", identity.UID), zap.String("name", req.Name))
	return FromProfile(profile), nil
}

// AdminDelete removes the artist's profile. The identity and the artist's
// songs are intentionally left in place; orphaned song references are
// observed by the catalog integrity report, never repaired.
func (s *service) AdminDelete(ctx context.Context, id string) error {
	profile, err := s.profiles.GetProfileByUID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return err
	}
	if !profile.IsArtist() {
		return common.ErrNotFound.WithDetails("Artist not found.")
	}

	if err := s.profiles.DeleteProfile(ctx, id); err != nil {
		s.logger.Error("Failed to delete artist profile", zap.String("uid", id), zap.Error(err))
		return err
	}
	s.logger.Info("Artist deleted", zap.String("uid", id))
	return nil
}
