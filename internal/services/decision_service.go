package services

import (
	"errors"

	"github.com/localnerve/contextdb/internal/models"
	"github.com/localnerve/contextdb/internal/types"
	"gorm.io/gorm"
)

// DecisionInput carries the caller supplied fields of a decision entry.
type DecisionInput struct {
	Summary               string
	Rationale             *string
	ImplementationDetails *string
	Tags                  []string
}

// LogDecision appends a decision entry to the workspace's decision log.
// Summary is the only required field; rationale and implementation details
// stay NULL when omitted.
func LogDecision(db *gorm.DB, workspaceID string, in DecisionInput) (*models.Decision, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}
	if in.Summary == "" {
		return nil, types.FieldRequired("summary")
	}

	tags, err := tagsJSON(in.Tags)
	if err != nil {
		return nil, err
	}

	decision := models.Decision{
		WorkspaceID:           workspaceID,
		Summary:               in.Summary,
		Rationale:             in.Rationale,
		ImplementationDetails: in.ImplementationDetails,
		Tags:                  tags,
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&decision).Error
	}); err != nil {
		return nil, err
	}
	return &decision, nil
}

// GetDecisions lists the workspace's decisions newest first. A limit of 0
// returns everything.
func GetDecisions(db *gorm.DB, workspaceID string, limit int) ([]models.Decision, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}

	query := silent(db).Where("workspace_id = ?", workspaceID).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var decisions []models.Decision
	if err := query.Find(&decisions).Error; err != nil {
		return nil, err
	}
	return decisions, nil
}

// GetDecision retrieves a single decision by id within the workspace
func GetDecision(db *gorm.DB, workspaceID string, id int64) (*models.Decision, error) {
	if err := checkWorkspace(workspaceID); err != nil {
		return nil, err
	}

	var decision models.Decision
	err := silent(db).Where("workspace_id = ? AND id = ?", workspaceID, id).First(&decision).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &decision, nil
}

// DeleteDecision removes a decision by id within the workspace
func DeleteDecision(db *gorm.DB, workspaceID string, id int64) error {
	if err := checkWorkspace(workspaceID); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("workspace_id = ? AND id = ?", workspaceID, id).Delete(&models.Decision{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
