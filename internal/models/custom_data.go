package models

import (
	"time"
)

// CustomData is a free-form document filed under a category and key within
// a workspace. The schema places no uniqueness constraint on the
// (workspace_id, category, key) triple; repeated writes accumulate rows.
type CustomData struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WorkspaceID string    `gorm:"size:500;not null" json:"workspace_id"`
	Category    string    `gorm:"size:200;not null" json:"category"`
	Key         string    `gorm:"size:500;not null" json:"key"`
	Value       JSON      `gorm:"type:json;not null" json:"value"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the table name for CustomData
func (CustomData) TableName() string {
	return "custom_data"
}
