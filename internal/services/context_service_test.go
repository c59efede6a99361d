package services_test

import (
	"testing"

	"github.com/localnerve/contextdb/internal/models"
	"github.com/localnerve/contextdb/internal/services"
	"github.com/localnerve/contextdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertProductContextVersioning(t *testing.T) {
	db := setupDB(t)

	_, err := services.GetProductContext(db, "ws1")
	require.ErrorIs(t, err, services.ErrNotFound)

	first, err := services.UpsertProductContext(db, "ws1", jsonDoc(t, map[string]string{"goal": "ship"}))
	require.NoError(t, err)
	assert.Equal(t, 1, first.Version)

	second, err := services.UpsertProductContext(db, "ws1", jsonDoc(t, map[string]string{"goal": "iterate"}))
	require.NoError(t, err)
	assert.Equal(t, 2, second.Version)
	assert.Equal(t, first.ID, second.ID, "upsert must evolve one row, not append")

	third, err := services.UpsertProductContext(db, "ws1", jsonDoc(t, map[string]string{"goal": "polish"}))
	require.NoError(t, err)
	assert.Equal(t, 3, third.Version)
}

func TestContextsEvolveIndependently(t *testing.T) {
	db := setupDB(t)

	_, err := services.UpsertProductContext(db, "ws1", jsonDoc(t, map[string]string{"goal": "ship"}))
	require.NoError(t, err)
	_, err = services.UpsertProductContext(db, "ws1", jsonDoc(t, map[string]string{"goal": "ship more"}))
	require.NoError(t, err)

	active, err := services.UpsertActiveContext(db, "ws1", jsonDoc(t, map[string]string{"focus": "tests"}))
	require.NoError(t, err)
	assert.Equal(t, 1, active.Version, "active context version is independent of product context")

	// Workspaces do not see each other
	_, err = services.GetActiveContext(db, "ws2")
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestContextWorkspaceValidation(t *testing.T) {
	db := setupDB(t)

	var ve *types.ValidationError

	_, err := services.GetProductContext(db, "")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "workspace_id", ve.Field)

	_, err = services.UpsertActiveContext(db, longString(models.MaxWorkspaceIDLen+1), models.JSON{})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "workspace_id", ve.Field)
}
