package services_test

import (
	"encoding/json"
	"testing"

	"github.com/localnerve/contextdb/internal/models"
	"github.com/localnerve/contextdb/internal/services"
	"github.com/localnerve/contextdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSystemPattern(t *testing.T) {
	db := setupDB(t)

	pattern, err := services.LogSystemPattern(db, "ws1", services.PatternInput{
		Name:        "repository",
		Description: strPtr("data access behind an interface"),
		Tags:        []string{"architecture", "persistence"},
	})
	require.NoError(t, err)

	var tags []string
	require.NoError(t, json.Unmarshal(pattern.Tags.JSON, &tags))
	assert.Equal(t, []string{"architecture", "persistence"}, tags)
}

func TestLogSystemPatternValidation(t *testing.T) {
	db := setupDB(t)

	var ve *types.ValidationError

	_, err := services.LogSystemPattern(db, "ws1", services.PatternInput{})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	_, err = services.LogSystemPattern(db, "ws1", services.PatternInput{
		Name: longString(models.MaxPatternNameLen + 1),
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)
}

func TestPatternNamesNotDeduplicated(t *testing.T) {
	db := setupDB(t)

	for i := 0; i < 2; i++ {
		_, err := services.LogSystemPattern(db, "ws1", services.PatternInput{Name: "repository"})
		require.NoError(t, err)
	}

	patterns, err := services.GetSystemPatterns(db, "ws1", 0)
	require.NoError(t, err)
	assert.Len(t, patterns, 2)
}
