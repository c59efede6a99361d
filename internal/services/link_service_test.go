package services_test

import (
	"testing"

	"github.com/localnerve/contextdb/internal/models"
	"github.com/localnerve/contextdb/internal/services"
	"github.com/localnerve/contextdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLinkValidation(t *testing.T) {
	db := setupDB(t)

	var ve *types.ValidationError

	_, err := services.CreateLink(db, "ws1", services.LinkInput{
		SourceItemType:   "nonsense",
		SourceItemID:     "1",
		TargetItemType:   models.ItemTypeDecision,
		TargetItemID:     "2",
		RelationshipType: "blocks",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "source_item_type", ve.Field)

	_, err = services.CreateLink(db, "ws1", services.LinkInput{
		SourceItemType: models.ItemTypeProgressEntry,
		SourceItemID:   "1",
		TargetItemType: models.ItemTypeDecision,
		TargetItemID:   "2",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "relationship_type", ve.Field)

	_, err = services.CreateLink(db, "ws1", services.LinkInput{
		SourceItemType:   models.ItemTypeProgressEntry,
		SourceItemID:     "1",
		TargetItemType:   models.ItemTypeDecision,
		TargetItemID:     "2",
		RelationshipType: longString(models.MaxRelationshipLen + 1),
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "relationship_type", ve.Field)
}

func TestCreateLinkToleratesDanglingIds(t *testing.T) {
	db := setupDB(t)

	// The referenced rows need not exist; the schema has no foreign keys
	link, err := services.CreateLink(db, "ws1", services.LinkInput{
		SourceItemType:   models.ItemTypeProgressEntry,
		SourceItemID:     "999999",
		TargetItemType:   models.ItemTypeDecision,
		TargetItemID:     "888888",
		RelationshipType: "implements",
	})
	require.NoError(t, err)
	assert.NotZero(t, link.ID)
	assert.False(t, link.CreatedAt.IsZero())
}

func TestGetLinksForItemEitherDirection(t *testing.T) {
	db := setupDB(t)

	_, err := services.CreateLink(db, "ws1", services.LinkInput{
		SourceItemType:   models.ItemTypeProgressEntry,
		SourceItemID:     "1",
		TargetItemType:   models.ItemTypeDecision,
		TargetItemID:     "2",
		RelationshipType: "implements",
	})
	require.NoError(t, err)
	_, err = services.CreateLink(db, "ws1", services.LinkInput{
		SourceItemType:   models.ItemTypeDecision,
		SourceItemID:     "2",
		TargetItemType:   models.ItemTypeSystemPattern,
		TargetItemID:     "3",
		RelationshipType: "uses",
	})
	require.NoError(t, err)

	links, err := services.GetLinksForItem(db, "ws1", models.ItemTypeDecision, "2")
	require.NoError(t, err)
	assert.Len(t, links, 2, "item matched as source and as target")

	links, err = services.GetLinksForItem(db, "ws1", models.ItemTypeSystemPattern, "3")
	require.NoError(t, err)
	assert.Len(t, links, 1)

	links, err = services.GetLinksForItem(db, "ws1", models.ItemTypeCustomData, "9")
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestDeleteLink(t *testing.T) {
	db := setupDB(t)

	link, err := services.CreateLink(db, "ws1", services.LinkInput{
		SourceItemType:   models.ItemTypeProgressEntry,
		SourceItemID:     "1",
		TargetItemType:   models.ItemTypeDecision,
		TargetItemID:     "2",
		RelationshipType: "implements",
	})
	require.NoError(t, err)

	require.NoError(t, services.DeleteLink(db, "ws1", link.ID))
	err = services.DeleteLink(db, "ws1", link.ID)
	require.ErrorIs(t, err, services.ErrNotFound)
}
