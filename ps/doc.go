// Package ps provides the persistence layer for StoreDB.
//
// Each database is one JSON file, <name>.json, holding every store with
// its next id, attribute set and records. Files are replaced with a
// write-then-rename so a failed save never leaves a half written file.
//
// # Memory Persistence
//
// For testing or ephemeral databases:
//
//	persistence, err := ps.NewMemoryPersistence()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # File Persistence
//
// For persistent storage:
//
//	persistence, err := ps.NewFilePersistence("/path/to/data")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # History
//
// WithHistory turns the data directory into a Git work tree. Every save
// that changes a database file becomes a commit, and older versions can be
// read back:
//
//	persistence, _ := ps.NewFilePersistence(dir, ps.WithHistory(identity))
//	txns, _ := persistence.History("company")
//	old, _ := persistence.LoadAt("company", txns[len(txns)-1].Id)
package ps
