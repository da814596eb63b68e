package datarecording

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
)

// A Reader reads rows back from a recording database.
type Reader struct {
	*sql.DB

	typeMap map[string]reflect.Type
}

// NewReader opens the recording database at path + ".sqlite3".
func NewReader(path string) *Reader {
	db, err := sql.Open("sqlite3", path+".sqlite3")
	if err != nil {
		panic(err)
	}

	r := &Reader{
		DB:      db,
		typeMap: make(map[string]reflect.Type),
	}

	r.MapTable(ResultTable, ResultRow{})
	r.MapTable(SweepTable, SweepRow{})

	return r
}

// MapTable associates a table with the struct type its rows decode into.
func (r *Reader) MapTable(tableName string, sampleRow any) {
	r.typeMap[tableName] = reflect.TypeOf(sampleRow)
}

// QueryAll returns every row of a table, ordered by the given column
// expression when orderBy is not empty.
func (r *Reader) QueryAll(
	ctx context.Context,
	tableName string,
	orderBy string,
) ([]any, error) {
	structType, ok := r.typeMap[tableName]
	if !ok {
		return nil, fmt.Errorf("no mapping for table %s", tableName)
	}

	query := "SELECT * FROM " + tableName
	if orderBy != "" {
		query += " ORDER BY " + orderBy
	}

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", tableName, err)
	}
	defer rows.Close()

	var results []any

	for rows.Next() {
		rowPtr := reflect.New(structType)

		fields := make([]any, structType.NumField())
		for i := range fields {
			fields[i] = rowPtr.Elem().Field(i).Addr().Interface()
		}

		if err := rows.Scan(fields...); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", tableName, err)
		}

		results = append(results, rowPtr.Elem().Interface())
	}

	return results, rows.Err()
}
