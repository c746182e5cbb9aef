// Package StoreDB provides a small multi-tenant record store.
//
// A process hosts named databases; each database holds named stores and
// each store holds records, maps from attribute names to scalar values,
// keyed by an auto-incrementing id. Databases are saved as JSON and can be
// exported as SQL scripts or SQLite files.
//
// # Quick Start
//
// Create an in-memory instance:
//
//	persistence, _ := ps.NewMemoryPersistence()
//	instance := StoreDB.Open(persistence)
//
//	company, _, _ := instance.Database("company")
//	people, _, _ := company.UseStore("people")
//	people.NewRecord("name:Alice, age:30")
//	people.NewRecord("name:Bob, age:25")
//
//	result, _ := people.Query("age", "gt", "26")
//	result.Display(os.Stdout)
//
//	company.Save()
//
// # Values
//
// Values typed into the shell are inferred in order as integer, float,
// boolean or text. Relational operators compare numbers only; contains
// works on text only.
package StoreDB
