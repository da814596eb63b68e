// Package datarecording persists estimation results into SQLite so that
// sweeps across configurations stay queryable after the run.
package datarecording

import (
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/structs"

	// SQLite driver for the recording backend.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// A Writer records flat struct rows into tables of a SQLite database.
// Rows are buffered and written in batched transactions.
type Writer struct {
	*sql.DB

	dbName     string
	batchSize  int
	entryCount int
	tables     map[string]*pendingTable
}

type pendingTable struct {
	structType reflect.Type
	rows       []any
}

// NewWriter creates a writer backed by path + ".sqlite3". When path is
// empty a unique name is generated. The writer flushes any buffered rows
// at process exit.
func NewWriter(path string) *Writer {
	w := &Writer{
		dbName:    path,
		batchSize: 4096,
		tables:    make(map[string]*pendingTable),
	}

	w.init()

	atexit.Register(func() { w.Flush() })

	return w
}

func (w *Writer) init() {
	if w.dbName == "" {
		w.dbName = "sramgen_run_" + xid.New().String()
	}

	filename := w.dbName + ".sqlite3"

	if _, err := os.Stat(filename); err == nil {
		panic(fmt.Errorf("recording file %s already exists", filename))
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	w.DB = db
}

// CreateTable creates a table whose columns are the fields of sampleRow.
// Only flat structs of scalar and string fields are recordable.
func (w *Writer) CreateTable(tableName string, sampleRow any) {
	mustBeFlatStruct(sampleRow)

	fields := strings.Join(structs.Names(sampleRow), ", \n\t")
	w.mustExecute("CREATE TABLE " + tableName + " (\n\t" + fields + "\n);")

	w.tables[tableName] = &pendingTable{
		structType: reflect.TypeOf(sampleRow),
	}
}

// Insert buffers one row for the given table. The row must have the same
// type as the table's sample row.
func (w *Writer) Insert(tableName string, row any) {
	table, ok := w.tables[tableName]
	if !ok {
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	if reflect.TypeOf(row) != table.structType {
		panic(fmt.Sprintf("row type %T does not match table %s",
			row, tableName))
	}

	table.rows = append(table.rows, row)

	w.entryCount++
	if w.entryCount >= w.batchSize {
		w.Flush()
	}
}

// ListTables returns the names of all created tables.
func (w *Writer) ListTables() []string {
	names := make([]string, 0, len(w.tables))
	for name := range w.tables {
		names = append(names, name)
	}

	return names
}

// Flush writes all buffered rows in one transaction.
func (w *Writer) Flush() {
	if w.entryCount == 0 {
		return
	}

	w.mustExecute("BEGIN TRANSACTION")
	defer w.mustExecute("COMMIT TRANSACTION")

	for tableName, table := range w.tables {
		if len(table.rows) == 0 {
			continue
		}

		stmt := w.prepareInsert(tableName, table.rows[0])

		for _, row := range table.rows {
			v := reflect.ValueOf(row)

			args := make([]any, 0, v.NumField())
			for i := 0; i < v.NumField(); i++ {
				args = append(args, v.Field(i).Interface())
			}

			if _, err := stmt.Exec(args...); err != nil {
				panic(err)
			}
		}

		table.rows = nil
		stmt.Close()
	}

	w.entryCount = 0
}

func (w *Writer) prepareInsert(tableName string, sampleRow any) *sql.Stmt {
	placeholders := structs.Names(sampleRow)
	for i := range placeholders {
		placeholders[i] = "?"
	}

	stmt, err := w.Prepare("INSERT INTO " + tableName + " VALUES (" +
		strings.Join(placeholders, ", ") + ")")
	if err != nil {
		panic(err)
	}

	return stmt
}

func (w *Writer) mustExecute(query string) sql.Result {
	res, err := w.Exec(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to execute: %s\n", query)
		panic(err)
	}

	return res
}

func mustBeFlatStruct(sampleRow any) {
	t := reflect.TypeOf(sampleRow)

	for i := 0; i < t.NumField(); i++ {
		switch t.Field(i).Type.Kind() {
		case reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16,
			reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16,
			reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64,
			reflect.String:
		default:
			panic(fmt.Sprintf(
				"field %s of %T is not recordable",
				t.Field(i).Name, sampleRow))
		}
	}
}
