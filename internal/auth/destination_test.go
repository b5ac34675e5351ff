package auth

import (
	"testing"

	"music_catalog_backend/internal/common"
	"music_catalog_backend/internal/shared"

	"github.com/stretchr/testify/assert"
)

func profileWithRole(role common.Role) *shared.Profile {
	return &shared.Profile{ID: "uid-1", DisplayName: "Someone", Role: role}
}

func TestRoute(t *testing.T) {
	tests := []struct {
		name            string
		profile         *shared.Profile
		identityPresent bool
		resolving       bool
		want            Destination
	}{
		{
			name:            "resolving yields no destination regardless of identity",
			profile:         profileWithRole(common.RoleAdmin),
			identityPresent: true,
			resolving:       true,
			want:            DestinationNone,
		},
		{
			name:      "resolving without identity still yields no destination",
			resolving: true,
			want:      DestinationNone,
		},
		{
			name: "no identity routes to login",
			want: DestinationLogin,
		},
		{
			name:            "profile is ignored when identity is absent",
			profile:         profileWithRole(common.RoleAdmin),
			identityPresent: false,
			want:            DestinationLogin,
		},
		{
			name:            "identity without profile routes to home",
			identityPresent: true,
			want:            DestinationHome,
		},
		{
			name:            "user role routes to home",
			profile:         profileWithRole(common.RoleUser),
			identityPresent: true,
			want:            DestinationHome,
		},
		{
			name:            "artist role routes to artist dashboard",
			profile:         profileWithRole(common.RoleArtist),
			identityPresent: true,
			want:            DestinationArtistDashboard,
		},
		{
			name:            "admin role routes to admin",
			profile:         profileWithRole(common.RoleAdmin),
			identityPresent: true,
			want:            DestinationAdmin,
		},
		{
			name:            "unknown role falls back to home",
			profile:         profileWithRole(common.Role("superuser")),
			identityPresent: true,
			want:            DestinationHome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Route(tt.profile, tt.identityPresent, tt.resolving)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSessionResponse_ProfileOptional(t *testing.T) {
	email := "user@example.com"

	resp := NewSessionResponse("uid-1", &email, nil)
	assert.Equal(t, "uid-1", resp.Identity.UID)
	assert.Nil(t, resp.Profile)
	assert.Equal(t, DestinationHome, resp.Destination)

	resp = NewSessionResponse("uid-2", &email, profileWithRole(common.RoleArtist))
	assert.NotNil(t, resp.Profile)
	assert.Equal(t, DestinationArtistDashboard, resp.Destination)
}
