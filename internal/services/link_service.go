package services

import (
	"github.com/localnerve/contextdb/internal/models"
	"github.com/localnerve/contextdb/internal/types"
	"gorm.io/gorm"
)

// LinkInput carries the caller supplied fields of a link row. Item ids are
// strings so both integer keyed rows and workspace keyed context rows can
// be addressed.
type LinkInput struct {
	SourceItemType   string
	SourceItemID     string
	TargetItemType   string
	TargetItemID     string
	RelationshipType string
	Description      *string
}

// CreateLink records a typed relationship between two workspace items. The
// item type names are validated against the vocabulary; the referenced rows
// themselves are not required to exist, matching the schema's lack of
// foreign keys.
func CreateLink(db *gorm.DB, workspaceID string, in LinkInput) (*models.Link, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}
	if err := checkItemType("source_item_type", in.SourceItemType); err != nil {
		return nil, err
	}
	if in.SourceItemID == "" {
		return nil, types.FieldRequired("source_item_id")
	}
	if err := checkLen("source_item_id", in.SourceItemID, models.MaxItemIDLen); err != nil {
		return nil, err
	}
	if err := checkItemType("target_item_type", in.TargetItemType); err != nil {
		return nil, err
	}
	if in.TargetItemID == "" {
		return nil, types.FieldRequired("target_item_id")
	}
	if err := checkLen("target_item_id", in.TargetItemID, models.MaxItemIDLen); err != nil {
		return nil, err
	}
	if in.RelationshipType == "" {
		return nil, types.FieldRequired("relationship_type")
	}
	if err := checkLen("relationship_type", in.RelationshipType, models.MaxRelationshipLen); err != nil {
		return nil, err
	}

	link := models.Link{
		WorkspaceID:      workspaceID,
		SourceItemType:   in.SourceItemType,
		SourceItemID:     in.SourceItemID,
		TargetItemType:   in.TargetItemType,
		TargetItemID:     in.TargetItemID,
		RelationshipType: in.RelationshipType,
		Description:      in.Description,
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&link).Error
	}); err != nil {
		return nil, err
	}
	return &link, nil
}

// GetLinks lists the workspace's links newest first. A limit of 0 returns
// everything.
func GetLinks(db *gorm.DB, workspaceID string, limit int) ([]models.Link, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}

	query := silent(db).Where("workspace_id = ?", workspaceID).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var links []models.Link
	if err := query.Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// GetLinksForItem lists links touching the given item in either direction,
// newest first.
func GetLinksForItem(db *gorm.DB, workspaceID, itemType, itemID string) ([]models.Link, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}
	if err := checkItemType("item_type", itemType); err != nil {
		return nil, err
	}
	if itemID == "" {
		return nil, types.FieldRequired("item_id")
	}

	var links []models.Link
	err := silent(db).
		Where("workspace_id = ?", workspaceID).
		Where(
			db.Where("source_item_type = ? AND source_item_id = ?", itemType, itemID).
				Or("target_item_type = ? AND target_item_id = ?", itemType, itemID),
		).
		Order("id DESC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// DeleteLink removes a link by id within the workspace
func DeleteLink(db *gorm.DB, workspaceID string, id int64) error {
	if err := checkWorkspace(workspaceID); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("workspace_id = ? AND id = ?", workspaceID, id).Delete(&models.Link{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
