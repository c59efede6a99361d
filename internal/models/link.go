package models

import (
	"time"
)

// Link is a typed relationship between two workspace items, addressed
// polymorphically by item type name and identifier. Identifiers are stored
// as strings so context rows (keyed by workspace) and integer-keyed rows
// can both be referenced. Links are never updated in place, so the table
// carries created_at only.
type Link struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WorkspaceID      string    `gorm:"size:500;not null" json:"workspace_id"`
	SourceItemType   string    `gorm:"size:100;not null" json:"source_item_type"`
	SourceItemID     string    `gorm:"size:500;not null" json:"source_item_id"`
	TargetItemType   string    `gorm:"size:100;not null" json:"target_item_type"`
	TargetItemID     string    `gorm:"size:500;not null" json:"target_item_id"`
	RelationshipType string    `gorm:"size:200;not null" json:"relationship_type"`
	Description      *string   `json:"description"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName overrides the table name for Link
func (Link) TableName() string {
	return "links"
}
