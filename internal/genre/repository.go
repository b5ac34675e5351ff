// File: internal/genre/repository.go
package genre

import (
	"context"
	"errors"
	"strings"

	"music_catalog_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for genre data operations.
type Repository interface {
	Create(ctx context.Context, genre *Genre) error
	FindByID(ctx context.Context, id uuid.UUID) (*Genre, error)
	FindBySlug(ctx context.Context, slug string) (*Genre, error)
	FindAll(ctx context.Context) ([]Genre, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM genre repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, genre *Genre) error {
	genre.Slug = strings.ToLower(strings.TrimSpace(genre.Slug))
	err := r.db.WithContext(ctx).Create(genre).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint") {
			return common.ErrConflict.WithDetails("Genre with this name or slug already exists.")
		}
		return err
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Genre, error) {
	var genre Genre
	err := r.db.WithContext(ctx).First(&genre, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Genre not found.")
		}
		return nil, err
	}
	return &genre, nil
}

func (r *gormRepository) FindBySlug(ctx context.Context, slug string) (*Genre, error) {
	var genre Genre
	normalizedSlug := strings.ToLower(strings.TrimSpace(slug))
	err := r.db.WithContext(ctx).First(&genre, "slug = ?", normalizedSlug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Genre not found.")
		}
		return nil, err
	}
	return &genre, nil
}

func (r *gormRepository) FindAll(ctx context.Context) ([]Genre, error) {
	var genres []Genre
	err := r.db.WithContext(ctx).Order("genres.name ASC").Find(&genres).Error
	if err != nil {
		return nil, err
	}
	return genres, nil
}

// Delete removes a genre. Deleting a missing genre is not an error: the
// caller observes the same end state either way. Songs referencing the genre
// are intentionally left in place.
func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Genre{BaseModel: common.BaseModel{ID: id}}).Error
}
