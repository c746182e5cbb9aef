// Package core provides core types used throughout StoreDB.
//
// The package defines the scalar Value model, Record, Identity,
// the query operators and the error kinds shared by every layer.
//
// # Identity
//
// Identity identifies the author of history commits (Git commit author):
//
//	identity := core.Identity{
//	    Name:  "John Doe",
//	    Email: "john@example.com",
//	}
//
// # Value Kinds
//
// A Value holds exactly one of:
//   - IntegerKind: 64-bit signed integers
//   - FloatKind: 64-bit floating point numbers
//   - BoolKind: boolean values
//   - TextKind: strings
//
// Values typed by a user are inferred from text in that order:
//
//	core.Infer("30")    // Integer(30)
//	core.Infer("30.5")  // Float(30.5)
//	core.Infer("TRUE")  // Bool(true)
//	core.Infer("abc")   // Text("abc")
//
// # Records
//
//	record := core.Record{
//	    "name": core.Text("Alice"),
//	    "age":  core.Integer(30),
//	}
package core
