package services

import (
	"github.com/localnerve/contextdb/internal/models"
	"github.com/localnerve/contextdb/internal/types"
	"gorm.io/gorm"
)

// CustomDataInput carries the caller supplied fields of a custom data row.
type CustomDataInput struct {
	Category string
	Key      string
	Value    models.JSON
}

// CustomDataFilter narrows custom data listings.
type CustomDataFilter struct {
	Category string
	Key      string
	Limit    int
}

// LogCustomData appends a custom data row for a workspace. The schema has
// no uniqueness constraint on (workspace, category, key) and none is
// assumed here: repeated writes accumulate rows, and listings return all
// of them newest first.
func LogCustomData(db *gorm.DB, workspaceID string, in CustomDataInput) (*models.CustomData, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}
	if in.Category == "" {
		return nil, types.FieldRequired("category")
	}
	if err := checkLen("category", in.Category, models.MaxCategoryLen); err != nil {
		return nil, err
	}
	if in.Key == "" {
		return nil, types.FieldRequired("key")
	}
	if err := checkLen("key", in.Key, models.MaxKeyLen); err != nil {
		return nil, err
	}
	if len(in.Value.JSON) == 0 {
		return nil, types.FieldRequired("value")
	}

	row := models.CustomData{
		WorkspaceID: workspaceID,
		Category:    in.Category,
		Key:         in.Key,
		Value:       in.Value,
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	}); err != nil {
		return nil, err
	}
	return &row, nil
}

// GetCustomData lists custom data rows newest first, optionally narrowed by
// category and key.
func GetCustomData(db *gorm.DB, workspaceID string, filter CustomDataFilter) ([]models.CustomData, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}

	query := silent(db).Where("workspace_id = ?", workspaceID).Order("id DESC")
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Key != "" {
		// map condition so GORM quotes the reserved column name per dialect
		query = query.Where(map[string]interface{}{"key": filter.Key})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []models.CustomData
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteCustomData removes a custom data row by id within the workspace.
// Deletion is by id because the (category, key) pair is not unique.
func DeleteCustomData(db *gorm.DB, workspaceID string, id int64) error {
	if err := checkWorkspace(workspaceID); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("workspace_id = ? AND id = ?", workspaceID, id).Delete(&models.CustomData{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
