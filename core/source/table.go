package source

import (
	"context"
	"fmt"
	"strings"

	"json-diff/core/database"
	"json-diff/core/reconcile"
	"json-diff/core/utils"

	"gorm.io/gorm"
)

// Table offers the tables of a database. Each row becomes a record whose
// fields follow the column order of the table.
type Table struct {
	db *gorm.DB
}

// NewTable creates a table source.
func NewTable(db *gorm.DB) *Table {
	return &Table{db: db}
}

// Kind returns KindTable.
func (t *Table) Kind() string {
	return KindTable
}

// List returns the table names of the connected database.
func (t *Table) List(ctx context.Context) ([]string, error) {
	names, err := t.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	var tables []string
	for _, name := range names {
		if database.ValidTableName(name) && !strings.HasPrefix(name, "sqlite_") {
			tables = append(tables, name)
		}
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("database: %w", ErrNoInputFiles)
	}

	sortNames(tables)
	return tables, nil
}

// Load reads every row of a table.
func (t *Table) Load(ctx context.Context, name string) (*reconcile.Collection, error) {
	if !database.ValidTableName(name) {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	db := t.db.WithContext(ctx)
	if !db.Migrator().HasTable(name) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	columns, err := database.GetTableColumns(db, name)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	fields := make([]string, len(columns))
	for i, col := range columns {
		fields[i] = col.Field
	}

	rows, err := db.Table(name).Select(fields).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", name, err)
	}
	defer rows.Close()

	var records []any
	for rows.Next() {
		raw := make([]any, len(fields))
		ptrs := make([]any, len(fields))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", name, err)
		}

		values := make([]any, len(fields))
		for i, col := range columns {
			values[i] = utils.NormalizeValue(raw[i], col.Type)
		}
		records = append(records, reconcile.NewRecord(fields, values))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", name, err)
	}

	return reconcile.NewCollection(name, records)
}
