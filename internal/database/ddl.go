// ddl.go
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

package database

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/localnerve/contextdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var (
	schemaCache sync.Map
	schemaNamer = schema.NamingStrategy{}
)

// CreateStatements renders a CREATE TABLE IF NOT EXISTS statement per model,
// in creation order, for the dialect of the given dialector. No connection
// is opened; the output is literal SQL runnable by any client for the
// target engine. The column clauses come from the dialector's own type
// mapping, so rendered and migrated schemas agree.
func CreateStatements(dialector gorm.Dialector) ([]string, error) {
	all := models.All()
	stmts := make([]string, 0, len(all))
	for _, model := range all {
		stmt, err := createTableSQL(dialector, model)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// DropStatements renders DROP TABLE IF EXISTS statements in reverse
// creation order.
func DropStatements(dialector gorm.Dialector) ([]string, error) {
	all := models.All()
	stmts := make([]string, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		sch, err := parseModel(all[i])
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, fmt.Sprintf("DROP TABLE IF EXISTS %s;", quoteIdent(dialector, sch.Table)))
	}
	return stmts, nil
}

func createTableSQL(d gorm.Dialector, model interface{}) (string, error) {
	sch, err := parseModel(model)
	if err != nil {
		return "", err
	}

	var cols []string
	for _, field := range sch.Fields {
		if field.DBName == "" {
			continue
		}
		cols = append(cols, columnSQL(d, field))
	}
	if pk, ok := primaryKeyClause(d, sch); ok {
		cols = append(cols, pk)
	}

	var sb strings.Builder
	sb.WriteString("CREATE TABLE IF NOT EXISTS ")
	sb.WriteString(quoteIdent(d, sch.Table))
	sb.WriteString(" (\n  ")
	sb.WriteString(strings.Join(cols, ",\n  "))
	sb.WriteString("\n);")
	return sb.String(), nil
}

func columnSQL(d gorm.Dialector, f *schema.Field) string {
	var sb strings.Builder
	sb.WriteString(quoteIdent(d, f.DBName))
	sb.WriteByte(' ')
	sb.WriteString(columnType(d, f))
	if f.NotNull && !f.PrimaryKey {
		sb.WriteString(" NOT NULL")
	}
	if f.HasDefaultValue && f.DefaultValue != "" {
		sb.WriteString(" DEFAULT ")
		sb.WriteString(defaultLiteral(f))
	}
	return sb.String()
}

func columnType(d gorm.Dialector, f *schema.Field) string {
	if f.PrimaryKey {
		return pkColumnType(d.Name())
	}
	if f.DataType == "json" {
		return models.JSONDataType(d.Name())
	}
	return d.DataTypeOf(f)
}

// pkColumnType returns the auto increment primary key column type. Spelled
// out per dialect because each engine ties auto increment to the key
// declaration in its own way.
func pkColumnType(dialect string) string {
	switch dialect {
	case "mysql":
		return "bigint AUTO_INCREMENT"
	case "postgres":
		return "bigserial"
	case "sqlserver", "mssql":
		return "bigint IDENTITY(1,1)"
	}
	// sqlite wants the autoincrement column declared as the integer
	// primary key inline
	return "integer PRIMARY KEY AUTOINCREMENT"
}

// primaryKeyClause emits the table level PRIMARY KEY constraint, except on
// sqlite where the key is part of the id column clause.
func primaryKeyClause(d gorm.Dialector, sch *schema.Schema) (string, bool) {
	if d.Name() == "sqlite" || sch.PrioritizedPrimaryField == nil {
		return "", false
	}
	return fmt.Sprintf("PRIMARY KEY (%s)", quoteIdent(d, sch.PrioritizedPrimaryField.DBName)), true
}

// defaultLiteral renders a model tag default as a SQL literal. String
// columns are requoted here because tag parsing strips quotes.
func defaultLiteral(f *schema.Field) string {
	v := strings.Trim(f.DefaultValue, "'")
	if f.IndirectFieldType.Kind() == reflect.String {
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return v
}

func quoteIdent(d gorm.Dialector, name string) string {
	var sb strings.Builder
	d.QuoteTo(&sb, name)
	return sb.String()
}

func parseModel(model interface{}) (*schema.Schema, error) {
	sch, err := schema.Parse(model, &schemaCache, schemaNamer)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
	}
	return sch, nil
}
