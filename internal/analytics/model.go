// File: internal/analytics/model.go
package analytics

import (
	"music_catalog_backend/internal/common"
)

// Event names recorded by the application.
const (
	EventLogin  = "login"
	EventSignUp = "sign_up"
	EventPlay   = "play"
)

// Event is a single recorded usage event. Rows are append-only.
type Event struct {
	common.BaseModel
	Name       string `gorm:"type:varchar(50);not null;index"`
	Method     string `gorm:"type:varchar(50)"`  // sign-in provider for login events
	TargetID   string `gorm:"type:varchar(128)"` // subject id (song id, identity uid)
	TargetName string `gorm:"type:varchar(255)"` // subject display name at event time
}

// TableName specifies the table name for the Event model.
func (Event) TableName() string {
	return "analytics_events"
}
