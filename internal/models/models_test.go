package models_test

import (
	"testing"

	"github.com/localnerve/contextdb/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestAllRegistryOrder(t *testing.T) {
	all := models.All()
	require.Len(t, all, 7)

	expected := []string{
		"product_context",
		"active_context",
		"decisions",
		"progress",
		"system_patterns",
		"custom_data",
		"links",
	}
	for i, model := range all {
		tabler, ok := model.(schema.Tabler)
		require.True(t, ok, "model %T must override TableName", model)
		assert.Equal(t, expected[i], tabler.TableName())
	}
}

func TestKnownItemType(t *testing.T) {
	for _, name := range []string{
		models.ItemTypeProductContext,
		models.ItemTypeActiveContext,
		models.ItemTypeDecision,
		models.ItemTypeProgressEntry,
		models.ItemTypeSystemPattern,
		models.ItemTypeCustomData,
	} {
		assert.True(t, models.KnownItemType(name), name)
	}

	assert.False(t, models.KnownItemType("links"))
	assert.False(t, models.KnownItemType("Decision"))
	assert.False(t, models.KnownItemType(""))
}

func TestJSONDataTypePerDialect(t *testing.T) {
	cases := map[string]string{
		"mysql":     "JSON",
		"sqlite":    "JSON",
		"postgres":  "JSONB",
		"sqlserver": "NVARCHAR(MAX)",
		"mssql":     "NVARCHAR(MAX)",
		"other":     "TEXT",
	}
	for dialect, want := range cases {
		assert.Equal(t, want, models.JSONDataType(dialect), dialect)
	}
}
