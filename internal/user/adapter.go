// File: internal/user/adapter.go
package user

import (
	"music_catalog_backend/internal/shared"
)

// DBToShared converts a GORM user.Profile model to a shared.Profile DTO.
func DBToShared(dbProfile *Profile) *shared.Profile {
	if dbProfile == nil {
		return nil
	}
	return &shared.Profile{
		ID:             dbProfile.ID,
		Email:          dbProfile.Email,
		DisplayName:    dbProfile.DisplayName,
		Role:           dbProfile.Role,
		ArtistImageURL: dbProfile.ArtistImageURL,
		CreatedAt:      dbProfile.CreatedAt,
		UpdatedAt:      dbProfile.UpdatedAt,
	}
}

// SharedToDB converts a shared.Profile DTO to a GORM user.Profile model.
func SharedToDB(p *shared.Profile) *Profile {
	if p == nil {
		return nil
	}
	return &Profile{
		ID:             p.ID,
		Email:          p.Email,
		DisplayName:    p.DisplayName,
		Role:           p.Role,
		ArtistImageURL: p.ArtistImageURL,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
