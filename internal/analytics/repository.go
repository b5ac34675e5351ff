// File: internal/analytics/repository.go
package analytics

import (
	"context"

	"gorm.io/gorm"
)

// Repository persists analytics events.
type Repository interface {
	Create(ctx context.Context, event *Event) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM analytics repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}
