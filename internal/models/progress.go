package models

import (
	"time"
)

// ProgressEntry is a unit of tracked work within a workspace. ParentID may
// reference another progress row for subtask nesting; the reference is not
// backed by a foreign key, so orphaned values survive at the schema level
// and callers validate where integrity matters. The linked item columns
// carry an optional polymorphic reference to any other item type.
type ProgressEntry struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WorkspaceID          string    `gorm:"size:500;not null" json:"workspace_id"`
	Status               string    `gorm:"size:100;not null" json:"status"`
	Description          string    `gorm:"not null" json:"description"`
	ParentID             *int64    `json:"parent_id"`
	LinkedItemType       *string   `gorm:"size:100" json:"linked_item_type"`
	LinkedItemID         *string   `gorm:"size:500" json:"linked_item_id"`
	LinkRelationshipType *string   `gorm:"size:100;default:'relates_to_progress'" json:"link_relationship_type"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// TableName overrides the table name for ProgressEntry
func (ProgressEntry) TableName() string {
	return "progress"
}
