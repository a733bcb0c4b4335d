package store

import (
	"sort"
	"strings"

	"gorm.io/gorm"
)

// The reporting endpoints interpolate identifiers into SQL, which placeholders
// cannot cover. Every identifier is therefore resolved against the live catalog
// first; caller-supplied spellings never reach the statement text.

func Tables(gdb *gorm.DB) ([]string, error) {
	tables, err := gdb.Migrator().GetTables()

	if err != nil {
		return nil, err
	}

	sort.Strings(tables)

	return tables, nil
}

func ColumnsForTable(gdb *gorm.DB, table string) ([]string, error) {
	actual, err := resolveTable(gdb, table)

	if err != nil {
		return nil, err
	}

	columnTypes, err := gdb.Migrator().ColumnTypes(actual)

	if err != nil {
		return nil, err
	}

	columns := make([]string, 0, len(columnTypes))

	for _, ct := range columnTypes {
		columns = append(columns, ct.Name())
	}

	return columns, nil
}

// Projection returns SELECT <columns> FROM <table> with the columns in the
// order the caller asked for.
func Projection(gdb *gorm.DB, table string, columns []string) ([][]interface{}, error) {
	if len(columns) == 0 {
		return nil, ErrInvalidRequest
	}

	actual, err := resolveTable(gdb, table)

	if err != nil {
		return nil, err
	}

	columnTypes, err := gdb.Migrator().ColumnTypes(actual)

	if err != nil {
		return nil, err
	}

	catalog := make(map[string]string, len(columnTypes))

	for _, ct := range columnTypes {
		catalog[strings.ToLower(ct.Name())] = ct.Name()
	}

	quoted := make([]string, 0, len(columns))

	for _, col := range columns {
		name, ok := catalog[strings.ToLower(col)]

		if !ok {
			return nil, ErrInvalidRequest
		}

		quoted = append(quoted, `"`+name+`"`)
	}

	query := "SELECT " + strings.Join(quoted, ", ") + ` FROM "` + actual + `"`

	rows, err := gdb.Raw(query).Rows()

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	out := make([][]interface{}, 0)

	for rows.Next() {
		values := make([]interface{}, len(quoted))
		ptrs := make([]interface{}, len(quoted))

		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}

		out = append(out, values)
	}

	return out, rows.Err()
}

func resolveTable(gdb *gorm.DB, table string) (string, error) {
	tables, err := gdb.Migrator().GetTables()

	if err != nil {
		return "", err
	}

	for _, name := range tables {
		if strings.EqualFold(name, table) {
			return name, nil
		}
	}

	return "", ErrInvalidRequest
}
