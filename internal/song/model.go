// File: internal/song/model.go
package song

import (
	"time"

	"music_catalog_backend/internal/common"

	"github.com/google/uuid"
)

// Song represents the song model in the database. ArtistName is the owning
// artist's display name captured at creation time; it is not kept in sync
// with later profile changes.
type Song struct {
	common.BaseModel
	Name       string    `gorm:"type:varchar(255);not null"`
	AudioURL   string    `gorm:"type:text;not null"`
	ImageURL   string    `gorm:"type:text;not null"`
	ArtistID   string    `gorm:"type:varchar(128);not null;index"`
	ArtistName string    `gorm:"type:varchar(100);not null"`
	GenreID    uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the table name for the Song model.
func (Song) TableName() string {
	return "songs"
}

// --- DTOs ---

// SongResponse defines the structure for song data sent in API responses.
type SongResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	AudioURL   string    `json:"audio_url"`
	ImageURL   string    `json:"image_url"`
	ArtistID   string    `json:"artist_id"`
	ArtistName string    `json:"artist_name"`
	GenreID    uuid.UUID `json:"genre_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToSongResponse converts a Song model to a SongResponse DTO.
func ToSongResponse(song *Song) SongResponse {
	return SongResponse{
		ID:         song.ID,
		Name:       song.Name,
		AudioURL:   song.AudioURL,
		ImageURL:   song.ImageURL,
		ArtistID:   song.ArtistID,
		ArtistName: song.ArtistName,
		GenreID:    song.GenreID,
		CreatedAt:  song.CreatedAt,
		UpdatedAt:  song.UpdatedAt,
	}
}

// CreateSongRequest is the multipart form for song creation. Image and audio
// arrive as file parts named "image" and "audio". ArtistID is honored only
// for admin callers; artists always create for themselves.
type CreateSongRequest struct {
	Name     string `form:"name" binding:"required,max=255"`
	GenreID  string `form:"genre_id" binding:"required,uuid"`
	ArtistID string `form:"artist_id" binding:"omitempty"`
}
