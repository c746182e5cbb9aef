// Package op provides the operations behind the StoreDB shell.
//
// Each operation takes the raw text the user typed, parses it, calls into
// db, ps or sql, and returns a db.Result ready for display.
//
// # DatabaseOp
//
//	dbOp, created, err := op.OpenDatabase("company", persistence)
//	dbOp.NewStore("people", "name, age")
//	storeOp, _, _ := dbOp.UseStore("people")
//	dbOp.Save()
//	dbOp.ExportSQL(true)
//
// # StoreOp
//
//	storeOp.NewRecord("name:Alice, age:30")
//	storeOp.Query("age", "gt", "26")
//	storeOp.Sort("age", "desc")
//
// # Architecture
//
// The layering is:
//
//	Shell (cmd/cli)
//	     ↓
//	Operations (op/)     ← This package
//	     ↓
//	Records (db/)  SQL (sql/)
//	     ↓
//	Persistence (ps/)
package op
