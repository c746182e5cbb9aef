// Package sql renders StoreDB databases as SQL.
//
// Every attribute becomes a TEXT column and every value is written as a
// quoted string, so the generated statements load into any SQL engine:
//
//	fmt.Print(sql.Script(database))
//	// CREATE DATABASE company;
//	// CREATE TABLE people (id INTEGER PRIMARY KEY, age TEXT, name TEXT);
//	// INSERT INTO people (id, age, name) VALUES (0, '30', 'Alice');
//	// DROP DATABASE company;
//
// Pass WithoutDrop to leave out the final DROP DATABASE.
//
// ExecScript splits a script into statements and runs them on a
// database/sql connection, skipping the database-level ones. Materialize and
// ExportSQLite do the same for a database held in memory.
package sql
