package models

import (
	"time"
)

// SystemPattern names a recurring architecture or coding pattern observed
// in a workspace. Names are not deduplicated by the schema.
type SystemPattern struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WorkspaceID string    `gorm:"size:500;not null" json:"workspace_id"`
	Name        string    `gorm:"size:500;not null" json:"name"`
	Description *string   `json:"description"`
	Tags        JSON      `gorm:"type:json" json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the table name for SystemPattern
func (SystemPattern) TableName() string {
	return "system_patterns"
}
