package models

import (
	"time"
)

// ProductContext holds the overall project description for a workspace.
// One row per workspace by convention; the schema does not enforce it.
type ProductContext struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WorkspaceID string    `gorm:"size:500;not null" json:"workspace_id"`
	Content     JSON      `gorm:"type:json" json:"content"`
	Version     int       `gorm:"default:1" json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ActiveContext holds the current working focus for a workspace.
// Same shape as ProductContext, evolves independently.
type ActiveContext struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WorkspaceID string    `gorm:"size:500;not null" json:"workspace_id"`
	Content     JSON      `gorm:"type:json" json:"content"`
	Version     int       `gorm:"default:1" json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the table name for ProductContext
func (ProductContext) TableName() string {
	return "product_context"
}

// TableName overrides the table name for ActiveContext
func (ActiveContext) TableName() string {
	return "active_context"
}
