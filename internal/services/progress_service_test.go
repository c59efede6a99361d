package services_test

import (
	"testing"

	"github.com/localnerve/contextdb/internal/models"
	"github.com/localnerve/contextdb/internal/services"
	"github.com/localnerve/contextdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogProgressDefaultsRelationship(t *testing.T) {
	db := setupDB(t)

	entry, err := services.LogProgress(db, "ws1", services.ProgressInput{
		Status:      "IN_PROGRESS",
		Description: "build the thing",
	})
	require.NoError(t, err)
	require.NotNil(t, entry.LinkRelationshipType)
	assert.Equal(t, "relates_to_progress", *entry.LinkRelationshipType)
}

func TestLogProgressParentValidation(t *testing.T) {
	db := setupDB(t)

	var ve *types.ValidationError

	// Unknown parent is rejected by the service
	_, err := services.LogProgress(db, "ws1", services.ProgressInput{
		Status:      "TODO",
		Description: "child",
		ParentID:    int64Ptr(42),
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "parent_id", ve.Field)

	parent, err := services.LogProgress(db, "ws1", services.ProgressInput{
		Status:      "TODO",
		Description: "parent",
	})
	require.NoError(t, err)

	child, err := services.LogProgress(db, "ws1", services.ProgressInput{
		Status:      "TODO",
		Description: "child",
		ParentID:    &parent.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, parent.ID, *child.ParentID)

	// Parents are workspace scoped
	_, err = services.LogProgress(db, "ws2", services.ProgressInput{
		Status:      "TODO",
		Description: "cross workspace child",
		ParentID:    &parent.ID,
	})
	require.ErrorAs(t, err, &ve)
}

func TestLogProgressLinkedItemValidation(t *testing.T) {
	db := setupDB(t)

	var ve *types.ValidationError

	// Half a reference pair is rejected
	_, err := services.LogProgress(db, "ws1", services.ProgressInput{
		Status:         "TODO",
		Description:    "linked",
		LinkedItemType: strPtr(models.ItemTypeDecision),
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "linked_item", ve.Field)

	// Out of vocabulary type is rejected
	_, err = services.LogProgress(db, "ws1", services.ProgressInput{
		Status:         "TODO",
		Description:    "linked",
		LinkedItemType: strPtr("nonsense"),
		LinkedItemID:   strPtr("7"),
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "linked_item_type", ve.Field)

	entry, err := services.LogProgress(db, "ws1", services.ProgressInput{
		Status:         "TODO",
		Description:    "linked",
		LinkedItemType: strPtr(models.ItemTypeDecision),
		LinkedItemID:   strPtr("7"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ItemTypeDecision, *entry.LinkedItemType)
}

func TestUpdateProgress(t *testing.T) {
	db := setupDB(t)

	entry, err := services.LogProgress(db, "ws1", services.ProgressInput{
		Status:      "TODO",
		Description: "task",
	})
	require.NoError(t, err)

	updated, err := services.UpdateProgress(db, "ws1", entry.ID, services.ProgressUpdate{
		Status: strPtr("DONE"),
	})
	require.NoError(t, err)
	assert.Equal(t, "DONE", updated.Status)
	assert.Equal(t, "task", updated.Description, "unset fields stay unchanged")

	// Self reference is rejected
	var ve *types.ValidationError
	_, err = services.UpdateProgress(db, "ws1", entry.ID, services.ProgressUpdate{
		ParentID: &entry.ID,
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "parent_id", ve.Field)

	_, err = services.UpdateProgress(db, "ws1", 9999, services.ProgressUpdate{Status: strPtr("DONE")})
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetProgressFilters(t *testing.T) {
	db := setupDB(t)

	parent, err := services.LogProgress(db, "ws1", services.ProgressInput{Status: "TODO", Description: "parent"})
	require.NoError(t, err)
	_, err = services.LogProgress(db, "ws1", services.ProgressInput{Status: "DONE", Description: "done child", ParentID: &parent.ID})
	require.NoError(t, err)
	_, err = services.LogProgress(db, "ws1", services.ProgressInput{Status: "TODO", Description: "todo child", ParentID: &parent.ID})
	require.NoError(t, err)

	byStatus, err := services.GetProgress(db, "ws1", services.ProgressFilter{Status: "TODO"})
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	byParent, err := services.GetProgress(db, "ws1", services.ProgressFilter{ParentID: &parent.ID})
	require.NoError(t, err)
	assert.Len(t, byParent, 2)

	both, err := services.GetProgress(db, "ws1", services.ProgressFilter{Status: "DONE", ParentID: &parent.ID})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "done child", both[0].Description)
}

func TestStatusLengthBound(t *testing.T) {
	db := setupDB(t)

	var ve *types.ValidationError
	_, err := services.LogProgress(db, "ws1", services.ProgressInput{
		Status:      longString(models.MaxStatusLen + 1),
		Description: "task",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "status", ve.Field)
}
