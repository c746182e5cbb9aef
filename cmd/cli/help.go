package main

import "fmt"

func (cli *CLI) printHelp() {
	fmt.Fprintln(cli.out)
	fmt.Fprintf(cli.out, "%s%sCommands:%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Fprintln(cli.out, "  help                 Show this help message")
	fmt.Fprintln(cli.out, "  exit                 Exit the program")
	fmt.Fprintln(cli.out, "  databases            List saved databases")
	fmt.Fprintln(cli.out, "  history              Show command history")
	fmt.Fprintln(cli.out, "  database <name>      Load a database, or create it when it does not exist")
	fmt.Fprintln(cli.out)
}

func (cli *CLI) printDatabaseHelp() {
	fmt.Fprintln(cli.out)
	fmt.Fprintf(cli.out, "%s%sDatabase commands:%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Fprintln(cli.out, "  help                           Show this help message")
	fmt.Fprintln(cli.out, "  exit                           Leave this database")
	fmt.Fprintln(cli.out, "  new_store <name> <attributes>  Create a store (attributes comma separated)")
	fmt.Fprintln(cli.out, "  delete_store <name>            Delete a store")
	fmt.Fprintln(cli.out, "  list_stores                    List all stores")
	fmt.Fprintln(cli.out, "  store <name>                   Enter a store, creating it when it does not exist")
	fmt.Fprintln(cli.out, "  save                           Save the database to <name>.json")
	fmt.Fprintln(cli.out, "  export_sql [nodrop]            Write the database as an SQL script to <name>.sql")
	fmt.Fprintln(cli.out, "  export_sqlite <path>           Write <name>.sql and load it into a SQLite file")
	fmt.Fprintln(cli.out, "  history                        List saved versions (needs -history)")
	fmt.Fprintln(cli.out, "  restore <transaction>          Load a saved version; save to keep it")
	fmt.Fprintln(cli.out)
}

func (cli *CLI) printStoreHelp() {
	fmt.Fprintln(cli.out)
	fmt.Fprintf(cli.out, "%s%sStore commands:%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Fprintln(cli.out, "  help                                  Show this help message")
	fmt.Fprintln(cli.out, "  exit                                  Leave this store")
	fmt.Fprintln(cli.out, "  new_record <attr:value, ...>          Create a record, e.g. name:John Doe, age:30")
	fmt.Fprintln(cli.out, "  delete_record <id>                    Delete a record")
	fmt.Fprintln(cli.out, "  list_records                          List all records")
	fmt.Fprintln(cli.out, "  get_record <id>                       Show one record")
	fmt.Fprintln(cli.out, "  filter <attribute> <value>            Records whose attribute is the text value")
	fmt.Fprintln(cli.out, "  filters <attr1,attr2> <val1,val2>     Records matching every attribute/value pair")
	fmt.Fprintln(cli.out, "  operators                             List query operators")
	fmt.Fprintln(cli.out, "  query <attribute> <operator> <value>  Records matching the operator")
	fmt.Fprintln(cli.out, "  sort <attribute> <asc|desc>           Records ordered by attribute")
	fmt.Fprintln(cli.out)
}
