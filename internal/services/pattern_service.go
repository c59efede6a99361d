package services

import (
	"github.com/localnerve/contextdb/internal/models"
	"github.com/localnerve/contextdb/internal/types"
	"gorm.io/gorm"
)

// PatternInput carries the caller supplied fields of a system pattern.
type PatternInput struct {
	Name        string
	Description *string
	Tags        []string
}

// LogSystemPattern records a system pattern for a workspace. Names are not
// deduplicated; logging the same name twice yields two rows.
func LogSystemPattern(db *gorm.DB, workspaceID string, in PatternInput) (*models.SystemPattern, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, types.FieldRequired("name")
	}
	if err := checkLen("name", in.Name, models.MaxPatternNameLen); err != nil {
		return nil, err
	}

	tags, err := tagsJSON(in.Tags)
	if err != nil {
		return nil, err
	}

	pattern := models.SystemPattern{
		WorkspaceID: workspaceID,
		Name:        in.Name,
		Description: in.Description,
		Tags:        tags,
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&pattern).Error
	}); err != nil {
		return nil, err
	}
	return &pattern, nil
}

// GetSystemPatterns lists the workspace's system patterns newest first. A
// limit of 0 returns everything.
func GetSystemPatterns(db *gorm.DB, workspaceID string, limit int) ([]models.SystemPattern, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}

	query := silent(db).Where("workspace_id = ?", workspaceID).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var patterns []models.SystemPattern
	if err := query.Find(&patterns).Error; err != nil {
		return nil, err
	}
	return patterns, nil
}

// DeleteSystemPattern removes a system pattern by id within the workspace
func DeleteSystemPattern(db *gorm.DB, workspaceID string, id int64) error {
	if err := checkWorkspace(workspaceID); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("workspace_id = ? AND id = ?", workspaceID, id).Delete(&models.SystemPattern{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
