package sql

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nickyhof/StoreDB/core"
	"github.com/nickyhof/StoreDB/db"
)

// Quote renders s as a single-quoted SQL string literal.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// CreateTable declares every attribute of the store as a TEXT column.
// Column types are not inferred from the stored values.
func CreateTable(store *db.Store, table string) string {
	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	sb.WriteString(table)
	sb.WriteString(" (id INTEGER PRIMARY KEY")
	for _, attribute := range store.Attributes() {
		sb.WriteString(", ")
		sb.WriteString(attribute)
		sb.WriteString(" TEXT")
	}
	sb.WriteString(");")
	return sb.String()
}

// Inserts renders one INSERT per record in ascending id order. Each
// statement lists only the attributes present on that record, and every
// value is quoted.
func Inserts(store *db.Store, table string) []string {
	entries := store.Entries()
	statements := make([]string, 0, len(entries))
	for _, entry := range entries {
		statements = append(statements, insert(table, entry))
	}
	return statements
}

func insert(table string, entry db.Entry) string {
	keys := entry.Record.Keys()

	columns := make([]string, 0, len(keys)+1)
	values := make([]string, 0, len(keys)+1)
	columns = append(columns, "id")
	values = append(values, strconv.FormatInt(entry.ID, 10))
	for _, key := range keys {
		columns = append(columns, key)
		values = append(values, Quote(entry.Record[key].String()))
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		table, strings.Join(columns, ", "), strings.Join(values, ", "))
}

// Select keeps the caller's column order. No columns selects *.
func Select(table string, columns []string) string {
	if len(columns) == 0 {
		return fmt.Sprintf("SELECT * FROM %s;", table)
	}
	return fmt.Sprintf("SELECT %s FROM %s;", strings.Join(columns, ", "), table)
}

// Delete emits the condition verbatim.
func Delete(table string, condition string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s;", table, condition)
}

// Update sets the given attributes on one row. Clauses are ordered by
// attribute name; text is quoted, other values use their display form.
func Update(table string, id int64, updates map[string]core.Value) string {
	keys := make([]string, 0, len(updates))
	for key := range updates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	clauses := make([]string, len(keys))
	for i, key := range keys {
		clauses[i] = key + " = " + literal(updates[key])
	}

	return fmt.Sprintf("UPDATE %s SET %s WHERE id = %d;", table, strings.Join(clauses, ", "), id)
}

func literal(value core.Value) string {
	if text, ok := value.AsText(); ok {
		return Quote(text)
	}
	return value.String()
}

func CreateDatabase(database *db.Database) string {
	return fmt.Sprintf("CREATE DATABASE %s;", database.Name())
}

func DropDatabase(database *db.Database) string {
	return fmt.Sprintf("DROP DATABASE %s;", database.Name())
}

type scriptOptions struct {
	drop bool
}

type ScriptOption func(*scriptOptions)

// WithoutDrop leaves the trailing DROP DATABASE out of a script.
func WithoutDrop() ScriptOption {
	return func(o *scriptOptions) {
		o.drop = false
	}
}

// Script renders the whole database: the database create, then each store's
// table and inserts in store name order, then the database drop. Every
// statement ends with a newline.
func Script(database *db.Database, opts ...ScriptOption) string {
	options := scriptOptions{drop: true}
	for _, opt := range opts {
		opt(&options)
	}

	var sb strings.Builder
	writeLine := func(statement string) {
		sb.WriteString(statement)
		sb.WriteByte('\n')
	}

	writeLine(CreateDatabase(database))
	for _, statement := range tableStatements(database) {
		writeLine(statement)
	}
	if options.drop {
		writeLine(DropDatabase(database))
	}
	return sb.String()
}

// tableStatements returns the create-table and insert statements of every
// store, without the database-level statements.
func tableStatements(database *db.Database) []string {
	var statements []string
	for _, name := range database.StoreNames() {
		store, err := database.GetStore(name)
		if err != nil {
			continue
		}
		statements = append(statements, CreateTable(store, name))
		statements = append(statements, Inserts(store, name)...)
	}
	return statements
}
