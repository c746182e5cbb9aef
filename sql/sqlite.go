package sql

import (
	"context"
	gosql "database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/nickyhof/StoreDB/core"
	"github.com/nickyhof/StoreDB/db"
)

// TxBeginner is satisfied by *sql.DB and *sql.Conn.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *gosql.TxOptions) (*gosql.Tx, error)
}

// Materialize creates every store as a table on conn and inserts its
// records, in one transaction.
func Materialize(ctx context.Context, conn TxBeginner, database *db.Database) error {
	return ExecScript(ctx, conn, Script(database))
}

// ExecScript runs the statements of script on conn in one transaction.
// CREATE DATABASE and DROP DATABASE are skipped; conn is already the
// target database.
func ExecScript(ctx context.Context, conn TxBeginner, script string) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", core.ErrIO, err)
	}

	for _, statement := range Split(script) {
		if isDatabaseStatement(statement) {
			continue
		}
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: %s: %v", core.ErrIO, statement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", core.ErrIO, err)
	}
	return nil
}

func isDatabaseStatement(statement string) bool {
	fields := strings.Fields(strings.ToUpper(statement))
	return len(fields) >= 2 && (fields[0] == "CREATE" || fields[0] == "DROP") && fields[1] == "DATABASE"
}

// ExportSQLite writes the database into a new SQLite file at path. Tables
// that already exist in the file cause an error.
func ExportSQLite(ctx context.Context, path string, database *db.Database) error {
	return ExportScriptSQLite(ctx, path, Script(database))
}

// ExportScriptSQLite runs a generated script against the SQLite file at
// path, creating the file when missing.
func ExportScriptSQLite(ctx context.Context, path string, script string) error {
	conn, err := gosql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", core.ErrIO, path, err)
	}
	defer conn.Close()

	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: open %s: %v", core.ErrIO, path, err)
	}
	return ExecScript(ctx, conn, script)
}
