// progress_service.go
//
// A scalable, high performance workspace knowledge store and schema toolkit
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of contextdb.
// contextdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// contextdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with contextdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"errors"
	"fmt"

	"github.com/localnerve/contextdb/internal/models"
	"github.com/localnerve/contextdb/internal/types"
	"gorm.io/gorm"
)

// ProgressInput carries the caller supplied fields of a progress entry.
// LinkedItemType and LinkedItemID reference another workspace item and must
// be given together; LinkRelationshipType falls back to the column default
// when nil.
type ProgressInput struct {
	Status               string
	Description          string
	ParentID             *int64
	LinkedItemType       *string
	LinkedItemID         *string
	LinkRelationshipType *string
}

// ProgressUpdate carries the updatable fields of a progress entry. Nil
// fields are left unchanged.
type ProgressUpdate struct {
	Status      *string
	Description *string
	ParentID    *int64
}

// ProgressFilter narrows progress listings.
type ProgressFilter struct {
	Status   string
	ParentID *int64
	Limit    int
}

// LogProgress appends a progress entry for a workspace. The schema does not
// constrain parent_id, so the existence of the parent within the workspace
// is checked here before the row is written.
func LogProgress(db *gorm.DB, workspaceID string, in ProgressInput) (*models.ProgressEntry, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}
	if in.Status == "" {
		return nil, types.FieldRequired("status")
	}
	if err := checkLen("status", in.Status, models.MaxStatusLen); err != nil {
		return nil, err
	}
	if in.Description == "" {
		return nil, types.FieldRequired("description")
	}
	if err := checkLinkedItem(in.LinkedItemType, in.LinkedItemID); err != nil {
		return nil, err
	}
	if in.LinkRelationshipType != nil {
		if err := checkLen("link_relationship_type", *in.LinkRelationshipType, models.MaxProgressLinkRelLen); err != nil {
			return nil, err
		}
	}

	var out models.ProgressEntry
	err := db.Transaction(func(tx *gorm.DB) error {
		if in.ParentID != nil {
			if err := checkParent(tx, workspaceID, *in.ParentID); err != nil {
				return err
			}
		}

		entry := models.ProgressEntry{
			WorkspaceID:          workspaceID,
			Status:               in.Status,
			Description:          in.Description,
			ParentID:             in.ParentID,
			LinkedItemType:       in.LinkedItemType,
			LinkedItemID:         in.LinkedItemID,
			LinkRelationshipType: in.LinkRelationshipType,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		// Re-read so the defaulted link_relationship_type is visible
		return tx.First(&out, entry.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProgress changes status, description or parent of an entry. The
// parent check applies here as well, including a guard against self
// reference.
func UpdateProgress(db *gorm.DB, workspaceID string, id int64, in ProgressUpdate) (*models.ProgressEntry, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}
	if in.Status != nil {
		if *in.Status == "" {
			return nil, types.FieldRequired("status")
		}
		if err := checkLen("status", *in.Status, models.MaxStatusLen); err != nil {
			return nil, err
		}
	}
	if in.Description != nil && *in.Description == "" {
		return nil, types.FieldRequired("description")
	}

	var out models.ProgressEntry
	err := db.Transaction(func(tx *gorm.DB) error {
		var entry models.ProgressEntry
		if err := tx.Where("workspace_id = ? AND id = ?", workspaceID, id).First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := make(map[string]interface{})
		if in.Status != nil {
			updates["status"] = *in.Status
		}
		if in.Description != nil {
			updates["description"] = *in.Description
		}
		if in.ParentID != nil {
			if *in.ParentID == id {
				return &types.ValidationError{Field: "parent_id", Reason: "cannot reference the entry itself"}
			}
			if err := checkParent(tx, workspaceID, *in.ParentID); err != nil {
				return err
			}
			updates["parent_id"] = *in.ParentID
		}

		if len(updates) > 0 {
			if err := tx.Model(&entry).Updates(updates).Error; err != nil {
				return err
			}
		}

		return tx.First(&out, entry.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProgress lists the workspace's progress entries newest first, with
// optional status and parent filters.
func GetProgress(db *gorm.DB, workspaceID string, filter ProgressFilter) ([]models.ProgressEntry, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}

	query := silent(db).Where("workspace_id = ?", workspaceID).Order("id DESC")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ParentID != nil {
		query = query.Where("parent_id = ?", *filter.ParentID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var entries []models.ProgressEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteProgress removes a progress entry by id within the workspace.
// Children keep their parent_id; dangling references are tolerated by the
// schema.
func DeleteProgress(db *gorm.DB, workspaceID string, id int64) error {
	if err := checkWorkspace(workspaceID); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("workspace_id = ? AND id = ?", workspaceID, id).Delete(&models.ProgressEntry{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// checkParent verifies that the referenced parent progress entry exists in
// the same workspace.
func checkParent(tx *gorm.DB, workspaceID string, parentID int64) error {
	var count int64
	if err := tx.Model(&models.ProgressEntry{}).
		Where("workspace_id = ? AND id = ?", workspaceID, parentID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &types.ValidationError{
			Field:  "parent_id",
			Reason: fmt.Sprintf("no progress entry %d in workspace", parentID),
		}
	}
	return nil
}

// checkLinkedItem validates the optional polymorphic reference pair.
func checkLinkedItem(itemType, itemID *string) error {
	if itemType == nil && itemID == nil {
		return nil
	}
	if itemType == nil || itemID == nil {
		return &types.ValidationError{
			Field:  "linked_item",
			Reason: "linked_item_type and linked_item_id must be set together",
		}
	}
	if err := checkItemType("linked_item_type", *itemType); err != nil {
		return err
	}
	return checkLen("linked_item_id", *itemID, models.MaxItemIDLen)
}
