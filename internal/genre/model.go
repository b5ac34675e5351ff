// File: internal/genre/model.go
package genre

import (
	"time"

	"music_catalog_backend/internal/common"

	"github.com/google/uuid"
)

// Genre represents the genre model in the database.
type Genre struct {
	common.BaseModel
	Name     string `gorm:"type:varchar(100);not null;uniqueIndex:idx_genres_name,unique"`
	Slug     string `gorm:"type:varchar(100);not null;uniqueIndex:idx_genres_slug,unique"`
	ImageURL string `gorm:"type:text;not null"`
}

// TableName specifies the table name for the Genre model.
func (Genre) TableName() string {
	return "genres"
}

// --- DTOs ---

// GenreResponse defines the structure for genre data sent in API responses.
type GenreResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToGenreResponse converts a Genre model to a GenreResponse DTO.
func ToGenreResponse(genre *Genre) GenreResponse {
	return GenreResponse{
		ID:        genre.ID,
		Name:      genre.Name,
		Slug:      genre.Slug,
		ImageURL:  genre.ImageURL,
		CreatedAt: genre.CreatedAt,
		UpdatedAt: genre.UpdatedAt,
	}
}

// AdminCreateGenreRequest is the multipart form for admin genre creation.
// The genre image arrives as a file part named "image".
type AdminCreateGenreRequest struct {
	Name string `form:"name" binding:"required,max=100"`
}
