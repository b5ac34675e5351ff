// File: internal/user/repository.go
package user

import (
	"context"
	"errors"
	"strings"

	"music_catalog_backend/internal/common"

	"gorm.io/gorm"
)

// Repository defines the interface for profile data operations.
type Repository interface {
	Create(ctx context.Context, profile *Profile) error
	FindByUID(ctx context.Context, uid string) (*Profile, error)
	FindByRole(ctx context.Context, role common.Role) ([]Profile, error)
	Delete(ctx context.Context, uid string) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM profile repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Create inserts a new profile record into the database.
func (r *gormRepository) Create(ctx context.Context, profile *Profile) error {
	if profile.Email != nil {
		*profile.Email = strings.ToLower(strings.TrimSpace(*profile.Email))
	}
	err := r.db.WithContext(ctx).Create(profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint") {
			return common.ErrConflict.WithDetails("A profile with this identity or email already exists.")
		}
		return err
	}
	return nil
}

// FindByUID retrieves a profile by its identity UID.
func (r *gormRepository) FindByUID(ctx context.Context, uid string) (*Profile, error) {
	var profile Profile
	err := r.db.WithContext(ctx).Where("id = ?", uid).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Profile not found for this identity.")
		}
		return nil, err
	}
	return &profile, nil
}

// FindByRole retrieves all profiles carrying the given role, name-ordered.
func (r *gormRepository) FindByRole(ctx context.Context, role common.Role) ([]Profile, error) {
	var profiles []Profile
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("display_name asc").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// Delete removes a profile by its identity UID. Deleting a missing profile
// is not an error.
func (r *gormRepository) Delete(ctx context.Context, uid string) error {
	return r.db.WithContext(ctx).Where("id = ?", uid).Delete(&Profile{}).Error
}
