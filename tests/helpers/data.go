// data.go
//
// A scalable, high performance workspace knowledge store and schema toolkit
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of contextdb.
// contextdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// contextdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with contextdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package helpers

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/localnerve/contextdb/internal/models"
	"gorm.io/gorm"
)

// TestWorkspace returns a unique workspace identifier so concurrent tests
// sharing one database cannot collide.
func TestWorkspace() string {
	return "/test/workspaces/" + uuid.NewString()
}

// JSONDoc marshals v into a JSON column value, failing the test on error.
func JSONDoc(t *testing.T, v interface{}) models.JSON {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal JSON document: %v", err)
	}
	return models.NewJSON(raw)
}

// CreateTestDecision inserts a decision row directly, bypassing the
// service validation, for schema-level assertions.
func CreateTestDecision(t *testing.T, db *gorm.DB, workspaceID, summary string) *models.Decision {
	t.Helper()
	decision := models.Decision{
		WorkspaceID: workspaceID,
		Summary:     summary,
	}
	if err := db.Create(&decision).Error; err != nil {
		t.Fatalf("Failed to create decision: %v", err)
	}
	return &decision
}

// CreateTestProgress inserts a progress row directly, bypassing the
// service validation, for schema-level assertions.
func CreateTestProgress(t *testing.T, db *gorm.DB, workspaceID, status, description string, parentID *int64) *models.ProgressEntry {
	t.Helper()
	entry := models.ProgressEntry{
		WorkspaceID: workspaceID,
		Status:      status,
		Description: description,
		ParentID:    parentID,
	}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("Failed to create progress entry: %v", err)
	}
	return &entry
}
