package dbmanager

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"askdb-ai/internal/apis/dtos"
	"askdb-ai/internal/constants"
)

// GetSchema reads the live database's table and column metadata and returns
// it as a schema description. User tables only; SQLite's internal sqlite_*
// tables are skipped. The database is never mutated. On access failure the
// schema is empty and the error is returned for reporting, so callers can
// degrade to a schema-less prompt instead of failing the whole pipeline.
func (d *SQLiteDriver) GetSchema(ctx context.Context) (SchemaDescription, error) {
	schema := make(SchemaDescription)

	db, err := sql.Open(constants.DatabaseTypeSQLite, d.path)
	if err != nil {
		return schema, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return schema, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	tables := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return schema, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return schema, fmt.Errorf("failed to list tables: %w", err)
	}

	for _, table := range tables {
		columns, err := tableColumns(ctx, db, table)
		if err != nil {
			return SchemaDescription{}, err
		}
		schema[table] = columns
	}
	return schema, nil
}

// tableColumns returns a table's columns in declared order, with their
// declared types, straight from PRAGMA table_info.
func tableColumns(ctx context.Context, db *sql.DB, table string) ([]dtos.ColumnInfo, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("failed to describe table %s: %w", table, err)
	}
	defer rows.Close()

	columns := make([]dtos.ColumnInfo, 0)
	for rows.Next() {
		var (
			cid        int
			name       string
			colType    string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &pk); err != nil {
			return nil, fmt.Errorf("failed to describe table %s: %w", table, err)
		}
		columns = append(columns, dtos.ColumnInfo{Name: name, Type: colType})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to describe table %s: %w", table, err)
	}
	return columns, nil
}

// FormatSchema renders a schema description for embedding in a prompt, one
// block per table with columns in declared order. Tables are sorted by name
// so the same database always yields the same prompt text.
func FormatSchema(schema SchemaDescription) string {
	if len(schema) == 0 {
		return "No schema information is available."
	}

	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Table %s:\n", name)
		for _, col := range schema[name] {
			fmt.Fprintf(&b, "  - %s (%s)\n", col.Name, col.Type)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
