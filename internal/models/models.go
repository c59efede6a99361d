// Package models declares the seven contextdb tables as GORM models.
// This package is the single source of the schema: migration, bootstrap,
// and schema tooling all derive their DDL from these structs.
package models

// All returns the models in creation order. Drops run the list in reverse.
func All() []interface{} {
	return []interface{}{
		&ProductContext{},
		&ActiveContext{},
		&Decision{},
		&ProgressEntry{},
		&SystemPattern{},
		&CustomData{},
		&Link{},
	}
}

// Item type names legal in polymorphic references (links, progress linked
// items). The schema stores them as plain strings with no constraint, so
// services validate against this vocabulary before writing.
const (
	ItemTypeProductContext = "product_context"
	ItemTypeActiveContext  = "active_context"
	ItemTypeDecision       = "decision"
	ItemTypeProgressEntry  = "progress_entry"
	ItemTypeSystemPattern  = "system_pattern"
	ItemTypeCustomData     = "custom_data"
)

// KnownItemType reports whether name belongs to the item type vocabulary.
func KnownItemType(name string) bool {
	switch name {
	case ItemTypeProductContext, ItemTypeActiveContext, ItemTypeDecision,
		ItemTypeProgressEntry, ItemTypeSystemPattern, ItemTypeCustomData:
		return true
	}
	return false
}

// Declared bounds of the varchar columns. Values over these limits are
// rejected by the write paths rather than truncated.
const (
	MaxWorkspaceIDLen     = 500
	MaxStatusLen          = 100
	MaxPatternNameLen     = 500
	MaxCategoryLen        = 200
	MaxKeyLen             = 500
	MaxItemTypeLen        = 100
	MaxItemIDLen          = 500
	MaxRelationshipLen    = 200
	MaxProgressLinkRelLen = 100
)
