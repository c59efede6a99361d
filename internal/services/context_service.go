package services

import (
	"errors"

	"github.com/localnerve/contextdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetProductContext retrieves the product context row for a workspace
func GetProductContext(db *gorm.DB, workspaceID string) (*models.ProductContext, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}

	var ctx models.ProductContext
	err := silent(db).Where("workspace_id = ?", workspaceID).First(&ctx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ctx, nil
}

// UpsertProductContext replaces the workspace's product context document.
// The first write creates the row and the engine default sets version to 1;
// every later write stores the new content and bumps the version by one.
// The version is a plain change counter, not a concurrency token.
func UpsertProductContext(db *gorm.DB, workspaceID string, content models.JSON) (*models.ProductContext, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}

	var out models.ProductContext
	err := db.Transaction(func(tx *gorm.DB) error {
		var ctx models.ProductContext
		query := tx.Where("workspace_id = ?", workspaceID)
		if tx.Dialector.Name() != "sqlite" {
			// SQLite serializes writers on its own and rejects FOR UPDATE
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		err := query.First(&ctx).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx = models.ProductContext{WorkspaceID: workspaceID, Content: content}
			if err := tx.Create(&ctx).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			updates := map[string]interface{}{
				"content": content,
				"version": ctx.Version + 1,
			}
			if err := tx.Model(&ctx).Updates(updates).Error; err != nil {
				return err
			}
		}

		// Re-read so engine filled defaults are visible to the caller
		return tx.Where("workspace_id = ?", workspaceID).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetActiveContext retrieves the active context row for a workspace
func GetActiveContext(db *gorm.DB, workspaceID string) (*models.ActiveContext, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}

	var ctx models.ActiveContext
	err := silent(db).Where("workspace_id = ?", workspaceID).First(&ctx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ctx, nil
}

// UpsertActiveContext replaces the workspace's active context document.
// Same contract as UpsertProductContext; the two rows evolve independently.
func UpsertActiveContext(db *gorm.DB, workspaceID string, content models.JSON) (*models.ActiveContext, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}

	var out models.ActiveContext
	err := db.Transaction(func(tx *gorm.DB) error {
		var ctx models.ActiveContext
		query := tx.Where("workspace_id = ?", workspaceID)
		if tx.Dialector.Name() != "sqlite" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		err := query.First(&ctx).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx = models.ActiveContext{WorkspaceID: workspaceID, Content: content}
			if err := tx.Create(&ctx).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			updates := map[string]interface{}{
				"content": content,
				"version": ctx.Version + 1,
			}
			if err := tx.Model(&ctx).Updates(updates).Error; err != nil {
				return err
			}
		}

		return tx.Where("workspace_id = ?", workspaceID).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
