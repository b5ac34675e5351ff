// File: internal/artist/model.go
package artist

import (
	"music_catalog_backend/internal/shared"
)

// Artist is the public projection of a profile carrying the artist role.
// There is no artists table: the users table is the single source of truth
// and this view is derived from it.
type Artist struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
}

// FromProfile projects a profile onto the artist view. Returns nil when the
// profile is absent or does not carry the artist role.
func FromProfile(p *shared.Profile) *Artist {
	if p == nil || !p.IsArtist() {
		return nil
	}
	a := &Artist{
		ID:   p.ID,
		Name: p.DisplayName,
	}
	if p.ArtistImageURL != nil {
		a.ImageURL = *p.ArtistImageURL
	}
	return a
}

// AdminCreateArtistRequest is the multipart form for admin artist creation.
// The artist image arrives as a file part named "image".
type AdminCreateArtistRequest struct {
	Name     string `form:"name" binding:"required,max=100"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6,max=72"`
}
