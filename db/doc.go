// Package db provides the record engine of StoreDB.
//
// A Database owns named Stores; a Store owns records keyed by an
// auto-incrementing id and answers filter, query and sort requests over a
// snapshot of its records.
//
// # Store Usage
//
//	database := db.NewDatabase("company")
//	people := database.AddStore("people", []string{"name", "age"})
//
//	id := people.AddRecord(core.Record{"name": core.Text("Alice"), "age": core.Integer(30)})
//	older := people.Query("age", core.Gt, core.Integer(26))
//	byAge := people.SortBy("age", true)
//
// # Result Types
//
// Shell operations return a Result:
//   - RecordsResult: records rendered as a table
//   - MessageResult: a single line of feedback
package db
