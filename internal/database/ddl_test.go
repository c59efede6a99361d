package database_test

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/contextdb/internal/database"
	"github.com/localnerve/contextdb/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func columnNames(t *testing.T, db *gorm.DB, model interface{}) []string {
	t.Helper()
	cols, err := db.Migrator().ColumnTypes(model)
	require.NoError(t, err)
	names := make([]string, 0, len(cols))
	for _, col := range cols {
		names = append(names, col.Name())
	}
	return names
}

// The rendered statements must produce the same table set and column names
// AutoMigrate produces, so the offline and online paths cannot drift.
func TestCreateStatementsMatchAutoMigrate(t *testing.T) {
	rendered := openMemoryDB(t)
	stmts, err := database.CreateStatements(sqlite.Open(":memory:"))
	require.NoError(t, err)
	require.Len(t, stmts, 7)
	for _, stmt := range stmts {
		require.NoError(t, rendered.Exec(stmt).Error, stmt)
	}

	migrated := openMemoryDB(t)
	require.NoError(t, migrated.AutoMigrate(models.All()...))

	for _, model := range models.All() {
		require.True(t, rendered.Migrator().HasTable(model), "%T missing", model)
		assert.ElementsMatch(t,
			columnNames(t, migrated, model),
			columnNames(t, rendered, model),
			"column drift on %T", model)
	}
}

func TestCreateStatementsRenderForAllDialects(t *testing.T) {
	// None of these dialectors open a connection; rendering must work
	// fully offline.
	dialectors := map[string]gorm.Dialector{
		"sqlite":    sqlite.Open("context.db"),
		"mysql":     mysql.Open("user:pass@tcp(localhost:3306)/contextdb"),
		"postgres":  postgres.Open("host=localhost user=u dbname=contextdb"),
		"sqlserver": sqlserver.Open("sqlserver://u:p@localhost:1433?database=contextdb"),
	}

	for name, dialector := range dialectors {
		t.Run(name, func(t *testing.T) {
			stmts, err := database.CreateStatements(dialector)
			require.NoError(t, err)
			require.Len(t, stmts, 7)

			joined := strings.Join(stmts, "\n")
			for _, stmt := range stmts {
				assert.True(t, strings.HasPrefix(stmt, "CREATE TABLE IF NOT EXISTS "), stmt)
			}
			assert.Contains(t, joined, "workspace_id")
			assert.Contains(t, joined, "NOT NULL")
			assert.Contains(t, joined, "DEFAULT 1")
			assert.Contains(t, joined, "relates_to_progress")
			assert.Contains(t, joined, models.JSONDataType(name))
		})
	}
}

func TestDropStatementsReverseOrder(t *testing.T) {
	stmts, err := database.DropStatements(sqlite.Open(":memory:"))
	require.NoError(t, err)
	require.Len(t, stmts, 7)

	assert.Contains(t, stmts[0], "links")
	assert.Contains(t, stmts[6], "product_context")
	for _, stmt := range stmts {
		assert.True(t, strings.HasPrefix(stmt, "DROP TABLE IF EXISTS "), stmt)
	}
}
