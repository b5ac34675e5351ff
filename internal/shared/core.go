// File: internal/shared/core.go
package shared

import (
	"context"
	"time"

	"music_catalog_backend/internal/common"
)

// Identity is what the auth provider knows about a signed-in principal.
// It is distinct from Profile: an identity can exist without a profile row.
type Identity struct {
	UID            string
	Email          *string
	SignInProvider string
}

// Profile is the application-owned record for an identity.
// Its ID is always the identity UID.
type Profile struct {
	ID             string
	Email          *string
	DisplayName    string
	Role           common.Role
	ArtistImageURL *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsAdmin reports whether the profile carries the admin role.
func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == common.RoleAdmin
}

// IsArtist reports whether the profile carries the artist role.
func (p *Profile) IsArtist() bool {
	return p != nil && p.Role == common.RoleArtist
}

// TokenVerifier verifies bearer ID tokens issued by the auth provider.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}

// IdentityAdmin creates and deletes identities at the auth provider.
// Creation here never touches any existing session: the caller's own
// credentials are a bearer token the provider never re-issues for us.
type IdentityAdmin interface {
	CreateIdentity(ctx context.Context, email, password string) (*Identity, error)
	DeleteIdentity(ctx context.Context, uid string) error
}

// Service defines the profile operations consumed across features.
type Service interface {
	// GetProfileByUID returns the profile for an identity UID.
	// Returns common.ErrNotFound when no profile exists.
	GetProfileByUID(ctx context.Context, uid string) (*Profile, error)

	// ResolveProfile is the lenient lookup used during session resolution:
	// absent profiles and lookup failures both yield nil, failures are
	// logged but never surfaced to the caller.
	ResolveProfile(ctx context.Context, uid string) *Profile

	// CreateProfile persists a new profile. The profile ID must already be
	// set to the identity UID.
	CreateProfile(ctx context.Context, profile *Profile) (*Profile, error)

	// DeleteProfile removes the profile for an identity UID.
	DeleteProfile(ctx context.Context, uid string) error

	// GetProfilesByRole returns all profiles carrying the given role.
	GetProfilesByRole(ctx context.Context, role common.Role) ([]*Profile, error)
}
