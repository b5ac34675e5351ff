// File: internal/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"

	"music_catalog_backend/internal/analytics"
	"music_catalog_backend/internal/common"
	"music_catalog_backend/internal/shared"

	"go.uber.org/zap"
)

// Service defines user-facing profile operations on top of shared.Service.
type Service interface {
	shared.Service
	Register(ctx context.Context, req RegisterRequest) (*shared.Profile, error)
}

// ServiceImplementation implements the Service and shared.Service interfaces.
type ServiceImplementation struct {
	repo       Repository
	identities shared.IdentityAdmin
	events     analytics.Service
	logger     *zap.Logger
}

var (
	_ Service        = (*ServiceImplementation)(nil)
	_ shared.Service = (*ServiceImplementation)(nil)
)

// NewService creates a new profile service.
func NewService(
	repo Repository,
	identities shared.IdentityAdmin,
	events analytics.Service,
	logger *zap.Logger,
) *ServiceImplementation {
	return &ServiceImplementation{
		repo:       repo,
		identities: identities,
		events:     events,
		logger:     logger.Named("UserService"),
	}
}

// Register creates the identity at the auth provider, then persists the
// profile under the identity's UID with the default role. If the profile
// write fails the identity is deleted again so no orphaned identity remains.
func (s *ServiceImplementation) Register(ctx context.Context, req RegisterRequest) (*shared.Profile, error) {
	identity, err := s.identities.CreateIdentity(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Warn("Registration: identity creation failed", zap.String("email", req.Email), zap.Error(err))
		return nil, common.ErrConflict.WithDetails("Could not create an account with this email.")
	}

	email := req.Email
	dbProfile := &Profile{
		ID:          identity.UID,
		Email:       &email,
		DisplayName: req.DisplayName,
		Role:        common.RoleUser,
	}

	if err := s.repo.Create(ctx, dbProfile); err != nil {
		s.logger.Error("Registration: profile write failed, deleting identity",
			zap.String("uid", identity.UID), zap.Error(err))
		if delErr := s.identities.DeleteIdentity(ctx, identity.UID); delErr != nil {
			s.logger.Error("Registration: identity cleanup failed, orphaned identity remains",
				zap.String("uid", identity.UID), zap.Error(delErr))
		}
		if apiErr, ok := common.IsAPIError(err); ok {
			return nil, apiErr
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.events.TrackSignUp(identity.UID)
	s.logger.Info("User registered successfully", zap.String("uid", identity.UID))
	return DBToShared(dbProfile), nil
}

// GetProfileByUID returns the profile for an identity UID.
func (s *ServiceImplementation) GetProfileByUID(ctx context.Context, uid string) (*shared.Profile, error) {
	dbProfile, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Error("Error finding profile by UID", zap.Error(err), zap.String("uid", uid))
		}
		return nil, err
	}
	return DBToShared(dbProfile), nil
}

// ResolveProfile is the lenient session-time lookup: an absent profile and a
// failed lookup both resolve to nil. Failures are logged but never fail the
// caller; the identity stays authenticated without a profile.
func (s *ServiceImplementation) ResolveProfile(ctx context.Context, uid string) *shared.Profile {
	dbProfile, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Error("Profile resolution failed, continuing without profile",
				zap.String("uid", uid), zap.Error(err))
		}
		return nil
	}
	return DBToShared(dbProfile)
}

// CreateProfile persists a profile whose ID is already set to an identity UID.
func (s *ServiceImplementation) CreateProfile(ctx context.Context, profile *shared.Profile) (*shared.Profile, error) {
	if profile == nil || profile.ID == "" {
		return nil, common.ErrBadRequest.WithDetails("Profile must carry the identity UID.")
	}
	dbProfile := SharedToDB(profile)
	if err := s.repo.Create(ctx, dbProfile); err != nil {
		return nil, err
	}
	return DBToShared(dbProfile), nil
}

// DeleteProfile removes the profile for an identity UID.
func (s *ServiceImplementation) DeleteProfile(ctx context.Context, uid string) error {
	return s.repo.Delete(ctx, uid)
}

// GetProfilesByRole returns all profiles carrying the given role.
func (s *ServiceImplementation) GetProfilesByRole(ctx context.Context, role common.Role) ([]*shared.Profile, error) {
	dbProfiles, err := s.repo.FindByRole(ctx, role)
	if err != nil {
		s.logger.Error("Error listing profiles by role", zap.Error(err), zap.String("role", string(role)))
		return nil, err
	}
	profiles := make([]*shared.Profile, 0, len(dbProfiles))
	for i := range dbProfiles {
		profiles = append(profiles, DBToShared(&dbProfiles[i]))
	}
	return profiles, nil
}
