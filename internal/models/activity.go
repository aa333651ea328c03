package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog captures auditable events triggered by faculty, such as
// recording or changing marks.
type ActivityLog struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	ActorEmail string            `gorm:"size:255;not null;index" json:"actor_email"`
	Action     string            `gorm:"size:64;not null" json:"action"`
	EntityType string            `gorm:"size:64;not null" json:"entity_type"`
	EntityID   string            `gorm:"type:varchar(36)" json:"entity_id"`
	Metadata   datatypes.JSONMap `gorm:"type:json" json:"metadata"`
	CreatedAt  time.Time         `json:"created_at"`
}
