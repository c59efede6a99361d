package database_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/contextdb/internal/database"
	"github.com/localnerve/contextdb/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func TestInitLocalIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "context.db")

	require.NoError(t, database.InitLocal(path))
	// Second run against the existing file must not error or duplicate
	require.NoError(t, database.InitLocal(path))

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	defer func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	}()

	for _, model := range models.All() {
		assert.True(t, db.Migrator().HasTable(model), "%T missing after bootstrap", model)
	}
}

func TestInitLocalUnwritablePath(t *testing.T) {
	err := database.InitLocal(filepath.Join(t.TempDir(), "no", "such", "dir", "context.db"))
	require.Error(t, err)
}

func TestMigrateUpAndDown(t *testing.T) {
	db := openMemoryDB(t)

	require.NoError(t, database.MigrateUp(db))
	for _, model := range models.All() {
		require.True(t, db.Migrator().HasTable(model))
	}

	// Re-running up is a no-op
	require.NoError(t, database.MigrateUp(db))

	require.NoError(t, database.MigrateDown(db))
	for _, model := range models.All() {
		require.False(t, db.Migrator().HasTable(model))
	}

	// Down on an empty database is a no-op too
	require.NoError(t, database.MigrateDown(db))

	require.NoError(t, database.MigrateUp(db))
	for _, model := range models.All() {
		require.True(t, db.Migrator().HasTable(model))
	}
}

func TestTimestampBookkeeping(t *testing.T) {
	db := openMemoryDB(t)
	require.NoError(t, database.MigrateUp(db))

	ctx := models.ProductContext{WorkspaceID: "ws1"}
	require.NoError(t, db.Create(&ctx).Error)
	require.False(t, ctx.CreatedAt.IsZero())
	assert.Equal(t, 1, ctx.Version)

	created := ctx.CreatedAt
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, db.Model(&ctx).Update("version", 2).Error)

	var reread models.ProductContext
	require.NoError(t, db.First(&reread, ctx.ID).Error)
	assert.True(t, reread.CreatedAt.Equal(created), "created_at must not change on update")
	assert.False(t, reread.UpdatedAt.Before(reread.CreatedAt), "updated_at must be later or equal")
}

func TestNotNullConstraints(t *testing.T) {
	db := openMemoryDB(t)
	require.NoError(t, database.MigrateUp(db))

	// Omitting the required summary column violates the constraint
	err := db.Exec("INSERT INTO decisions (workspace_id) VALUES ('ws1')").Error
	require.Error(t, err)

	// Omitting nullable columns stores NULL
	require.NoError(t, db.Exec(
		"INSERT INTO decisions (workspace_id, summary, created_at, updated_at) VALUES ('ws1', 'use X', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)").Error)

	var decision models.Decision
	require.NoError(t, db.Where("workspace_id = ?", "ws1").First(&decision).Error)
	assert.Nil(t, decision.Rationale)
	assert.Nil(t, decision.ImplementationDetails)
}
