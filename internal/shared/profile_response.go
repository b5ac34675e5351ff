// File: internal/shared/profile_response.go
package shared

import (
	"time"

	"music_catalog_backend/internal/common"
)

// ProfileResponse defines the structure for profile data sent in API responses.
type ProfileResponse struct {
	ID             string      `json:"id"`
	Email          *string     `json:"email,omitempty"`
	DisplayName    string      `json:"display_name"`
	Role           common.Role `json:"role"`
	ArtistImageURL *string     `json:"artist_image_url,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// ToProfileResponse converts a shared.Profile to a ProfileResponse DTO.
func ToProfileResponse(p *Profile) ProfileResponse {
	return ProfileResponse{
		ID:             p.ID,
		Email:          p.Email,
		DisplayName:    p.DisplayName,
		Role:           p.Role,
		ArtistImageURL: p.ArtistImageURL,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
