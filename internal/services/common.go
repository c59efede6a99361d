package services

import (
	"encoding/json"
	"errors"
	"unicode/utf8"

	"github.com/localnerve/contextdb/internal/models"
	"github.com/localnerve/contextdb/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned when the addressed row does not exist in the
// workspace.
var ErrNotFound = errors.New("not found")

// silent returns a session that skips statement logging, used on read
// paths so list traffic stays out of the logs.
func silent(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})
}

// checkLen validates a value against its declared column bound. Values over
// the bound are rejected, never truncated.
func checkLen(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return types.FieldTooLong(field, limit)
	}
	return nil
}

// checkWorkspace validates the workspace identifier common to every row.
func checkWorkspace(workspaceID string) error {
	if workspaceID == "" {
		return types.FieldRequired("workspace_id")
	}
	return checkLen("workspace_id", workspaceID, models.MaxWorkspaceIDLen)
}

// checkItemType validates a polymorphic item type name against the
// vocabulary.
func checkItemType(field, value string) error {
	if !models.KnownItemType(value) {
		return types.UnknownItemType(field, value)
	}
	return nil
}

// tagsJSON marshals a tag list into a JSON column value. Nil stays nil so
// the column stores NULL rather than an empty array.
func tagsJSON(tags []string) (models.JSON, error) {
	if tags == nil {
		return models.JSON{}, nil
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return models.JSON{}, err
	}
	return models.NewJSON(raw), nil
}
