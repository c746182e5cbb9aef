package op

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nickyhof/StoreDB/core"
	"github.com/nickyhof/StoreDB/db"
	"github.com/nickyhof/StoreDB/ps"
	"github.com/nickyhof/StoreDB/sql"
)

type DatabaseOp struct {
	Database    *db.Database
	Persistence *ps.Persistence
}

// OpenDatabase loads the named database, or starts an empty one when
// nothing has been saved under that name. created reports the latter.
func OpenDatabase(name string, persistence *ps.Persistence) (op *DatabaseOp, created bool, err error) {
	database, err := persistence.Load(name)
	if errors.Is(err, core.ErrNotFound) {
		return &DatabaseOp{Database: db.NewDatabase(name), Persistence: persistence}, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &DatabaseOp{Database: database, Persistence: persistence}, false, nil
}

func (op *DatabaseOp) Name() string {
	return op.Database.Name()
}

func (op *DatabaseOp) NewStore(name string, attributes string) (db.Result, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: store name required", core.ErrInvalidInput)
	}
	op.Database.AddStore(name, ParseList(attributes))
	return db.MessageResult{Message: fmt.Sprintf("Created store %s", name)}, nil
}

func (op *DatabaseOp) DeleteStore(name string) (db.Result, error) {
	if !op.Database.HasStore(name) {
		return nil, fmt.Errorf("store %s: %w", name, core.ErrNotFound)
	}
	op.Database.DeleteStore(name)
	return db.MessageResult{Message: fmt.Sprintf("Deleted store %s", name)}, nil
}

func (op *DatabaseOp) ListStores() db.Result {
	names := op.Database.StoreNames()
	if len(names) == 0 {
		return db.MessageResult{Message: "No stores"}
	}
	lines := make([]string, len(names))
	for i, name := range names {
		store, _ := op.Database.GetStore(name)
		lines[i] = fmt.Sprintf("  %s (%d records)", name, store.Len())
	}
	return db.MessageResult{Message: strings.Join(lines, "\n")}
}

// UseStore returns the named store, creating an empty one when missing.
func (op *DatabaseOp) UseStore(name string) (store *StoreOp, created bool, err error) {
	if strings.TrimSpace(name) == "" {
		return nil, false, fmt.Errorf("%w: store name required", core.ErrInvalidInput)
	}
	s, err := op.Database.GetStore(name)
	if err != nil {
		s = op.Database.AddStore(name, nil)
		created = true
	}
	return &StoreOp{Store: s}, created, nil
}

func (op *DatabaseOp) Save() (db.Result, error) {
	txn, err := op.Persistence.Save(op.Database)
	if err != nil {
		return nil, err
	}
	message := fmt.Sprintf("Saved %s", op.Name())
	if txn.Id != "" {
		message += fmt.Sprintf(" (%s)", txn.ShortId())
	}
	return db.MessageResult{Message: message}, nil
}

// ExportSQL writes the database script to <name>.sql. Without drop the
// trailing DROP DATABASE is left out.
func (op *DatabaseOp) ExportSQL(drop bool) (db.Result, error) {
	var opts []sql.ScriptOption
	if !drop {
		opts = append(opts, sql.WithoutDrop())
	}
	if err := op.Persistence.WriteScript(op.Name(), sql.Script(op.Database, opts...)); err != nil {
		return nil, err
	}
	return db.MessageResult{Message: fmt.Sprintf("Exported %s.sql", op.Name())}, nil
}

// ExportSQLite writes <name>.sql and replays the saved script into the
// SQLite file at path.
func (op *DatabaseOp) ExportSQLite(ctx context.Context, path string) (db.Result, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: output path required", core.ErrInvalidInput)
	}
	if err := op.Persistence.WriteScript(op.Name(), sql.Script(op.Database)); err != nil {
		return nil, err
	}
	script, err := op.Persistence.ReadScript(op.Name())
	if err != nil {
		return nil, err
	}
	if err := sql.ExportScriptSQLite(ctx, path, script); err != nil {
		return nil, err
	}
	return db.MessageResult{Message: fmt.Sprintf("Exported %s.sql to %s", op.Name(), path)}, nil
}

func (op *DatabaseOp) History() (db.Result, error) {
	transactions, err := op.Persistence.History(op.Name())
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return db.MessageResult{Message: "No history"}, nil
	}

	lines := make([]string, len(transactions))
	for i, txn := range transactions {
		lines[i] = fmt.Sprintf("  %s  %s  %s", txn.ShortId(), txn.When.Format("2006-01-02 15:04:05"), txn.Author)
	}
	return db.MessageResult{Message: strings.Join(lines, "\n")}, nil
}

// Restore replaces the in-memory database with the version saved in the
// given transaction. The restored state is not written until the next save.
func (op *DatabaseOp) Restore(transactionId string) (db.Result, error) {
	database, err := op.Persistence.LoadAt(op.Name(), transactionId)
	if err != nil {
		return nil, err
	}
	op.Database = database
	return db.MessageResult{Message: fmt.Sprintf("Restored %s to %s", op.Name(), transactionId)}, nil
}
