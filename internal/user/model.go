// File: internal/user/model.go
package user

import (
	"time"

	"music_catalog_backend/internal/common"
)

// Profile represents the application-owned record for an identity. The
// primary key is the identity UID assigned by the auth provider, never a
// server-generated id: a profile cannot exist without its identity.
type Profile struct {
	ID             string      `gorm:"type:varchar(128);primaryKey"`
	Email          *string     `gorm:"type:varchar(255);uniqueIndex"`
	DisplayName    string      `gorm:"type:varchar(100);not null"`
	Role           common.Role `gorm:"type:varchar(20);not null;default:'user';index"`
	ArtistImageURL *string     `gorm:"type:text"`
	CreatedAt      time.Time   `gorm:"column:created_at;not null;default:current_timestamp"`
	UpdatedAt      time.Time   `gorm:"column:updated_at;not null;default:current_timestamp"`
}

// TableName specifies the table name for the Profile model.
func (Profile) TableName() string {
	return "users"
}

// --- DTOs for API requests/responses ---

// RegisterRequest defines the structure for self-service registration.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6,max=72"`
	DisplayName string `json:"display_name" binding:"required,max=100"`
}
