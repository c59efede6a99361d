package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/contextdb/internal/models"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// MigrateUp creates or updates the seven tables inside a single transaction.
// Any statement failure rolls the whole run back and surfaces the engine
// error unchanged. Existing tables are left in place, so repeated runs are
// no-ops.
func MigrateUp(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.AutoMigrate(models.All()...)
	})
}

// MigrateDown drops the seven tables in reverse creation order inside a
// single transaction. Tables already absent are skipped.
func MigrateDown(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		all := models.All()
		for i := len(all) - 1; i >= 0; i-- {
			if !tx.Migrator().HasTable(all[i]) {
				continue
			}
			if err := tx.Migrator().DropTable(all[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// InitLocal creates the local SQLite database file at path, if needed, and
// brings up the seven tables. Calling it against an existing database is
// harmless: tables already present are untouched.
func InitLocal(path string) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open database at %s: %w", path, err)
	}

	if err := AutoMigrate(db); err != nil {
		Close(db)
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return Close(db)
}
