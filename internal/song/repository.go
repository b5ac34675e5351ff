// File: internal/song/repository.go
package song

import (
	"context"
	"errors"

	"music_catalog_backend/internal/common"
	"music_catalog_backend/internal/genre"
	"music_catalog_backend/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for song data operations.
type Repository interface {
	Create(ctx context.Context, song *Song) error
	FindByID(ctx context.Context, id uuid.UUID) (*Song, error)
	FindAll(ctx context.Context) ([]Song, error)
	FindByArtistID(ctx context.Context, artistID string) ([]Song, error)
	FindByGenreID(ctx context.Context, genreID uuid.UUID) ([]Song, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Orphan counts for the catalog integrity report. References are never
	// enforced at write time, only observed here.
	CountOrphanedByArtist(ctx context.Context) (int64, error)
	CountOrphanedByGenre(ctx context.Context) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM song repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, song *Song) error {
	return r.db.WithContext(ctx).Create(song).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Song, error) {
	var song Song
	err := r.db.WithContext(ctx).First(&song, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Song not found.")
		}
		return nil, err
	}
	return &song, nil
}

func (r *gormRepository) FindAll(ctx context.Context) ([]Song, error) {
	var songs []Song
	err := r.db.WithContext(ctx).Order("songs.name ASC").Find(&songs).Error
	if err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *gormRepository) FindByArtistID(ctx context.Context, artistID string) ([]Song, error) {
	var songs []Song
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("songs.name ASC").
		Find(&songs).Error
	if err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *gormRepository) FindByGenreID(ctx context.Context, genreID uuid.UUID) ([]Song, error) {
	var songs []Song
	err := r.db.WithContext(ctx).
		Where("genre_id = ?", genreID).
		Order("songs.name ASC").
		Find(&songs).Error
	if err != nil {
		return nil, err
	}
	return songs, nil
}

// Delete removes a song. Deleting a missing song is not an error.
func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Song{BaseModel: common.BaseModel{ID: id}}).Error
}

func (r *gormRepository) CountOrphanedByArtist(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Song{}).
		Where("artist_id NOT IN (?)", r.db.Model(&user.Profile{}).Select("id")).
		Count(&count).Error
	return count, err
}

func (r *gormRepository) CountOrphanedByGenre(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Song{}).
		Where("genre_id NOT IN (?)", r.db.Model(&genre.Genre{}).Select("id")).
		Count(&count).Error
	return count, err
}
