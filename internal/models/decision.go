package models

import (
	"time"
)

// Decision is one entry in a workspace's append-oriented decision log.
type Decision struct {
	ID                    int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WorkspaceID           string    `gorm:"size:500;not null" json:"workspace_id"`
	Summary               string    `gorm:"not null" json:"summary"`
	Rationale             *string   `json:"rationale"`
	ImplementationDetails *string   `json:"implementation_details"`
	Tags                  JSON      `gorm:"type:json" json:"tags"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// TableName overrides the table name for Decision
func (Decision) TableName() string {
	return "decisions"
}
