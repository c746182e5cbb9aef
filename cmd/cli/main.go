package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/nickyhof/StoreDB"
	"github.com/nickyhof/StoreDB/db"
	"github.com/nickyhof/StoreDB/op"
	"github.com/nickyhof/StoreDB/ps"
)

const (
	PromptColor  = "\033[36m" // Cyan
	ErrorColor   = "\033[31m" // Red
	SuccessColor = "\033[32m" // Green
	ResetColor   = "\033[0m"
	BoldColor    = "\033[1m"
)

// Version is set at build time via -ldflags
var Version = "dev"

// CLI holds the shell state. database and store are set while the shell is
// inside a database or store level.
type CLI struct {
	instance    *StoreDB.Instance
	reader      *bufio.Reader
	out         io.Writer
	logger      *zap.SugaredLogger
	history     []string
	historyFile string
	database    *op.DatabaseOp
	store       *op.StoreOp
	quit        bool
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", ErrorColor, err, ResetColor)
		os.Exit(2)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", ErrorColor, err, ResetColor)
		os.Exit(2)
	}
	defer logger.Sync()

	printBanner(os.Stdout)

	persistence, err := openPersistence(cfg, logger)
	if err != nil {
		fmt.Printf("%sError: %v%s\n", ErrorColor, err, ResetColor)
		os.Exit(1)
	}

	cli := NewCLI(StoreDB.Open(persistence), os.Stdin, os.Stdout, logger)
	cli.historyFile = cfg.HistoryFile
	cli.loadHistory()

	cli.run()
}

func openPersistence(cfg Config, logger *zap.SugaredLogger) (*ps.Persistence, error) {
	opts := []ps.Option{ps.WithLogger(logger)}
	if cfg.History {
		opts = append(opts, ps.WithHistory(cfg.Identity()))
	}

	if cfg.DataDir == "" {
		fmt.Printf("%sUsing memory persistence%s\n", SuccessColor, ResetColor)
		return ps.NewMemoryPersistence(opts...)
	}

	fmt.Printf("%sUsing file persistence: %s%s\n", SuccessColor, cfg.DataDir, ResetColor)
	return ps.NewFilePersistence(cfg.DataDir, opts...)
}

func NewCLI(instance *StoreDB.Instance, in io.Reader, out io.Writer, logger *zap.SugaredLogger) *CLI {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &CLI{
		instance: instance,
		reader:   bufio.NewReader(in),
		out:      out,
		logger:   logger,
		history:  make([]string, 0),
	}
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w)
	bannerWidth := 39 // inner width of the banner box
	versionLine := fmt.Sprintf("StoreDB v%s", Version)
	padding := bannerWidth - len(versionLine) - 2 // -2 for "  " margins
	if padding < 0 {
		padding = 0
	}
	leftPad := padding / 2
	rightPad := padding - leftPad

	fmt.Fprintf(w, "%s%s╔═══════════════════════════════════════╗%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Fprintf(w, "%s%s║ %*s%s%*s ║%s\n", BoldColor, PromptColor, leftPad, "", versionLine, rightPad, "", ResetColor)
	fmt.Fprintf(w, "%s%s║      Multi-tenant Record Store        ║%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Fprintf(w, "%s%s╚═══════════════════════════════════════╝%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Type help for commands, exit to leave a level")
	fmt.Fprintln(w)
}

func (cli *CLI) run() {
	for !cli.quit {
		fmt.Fprint(cli.out, cli.getPrompt())

		input, err := cli.reader.ReadString('\n')
		if err != nil && input == "" {
			fmt.Fprintf(cli.out, "\n%sGoodbye!%s\n", SuccessColor, ResetColor)
			cli.saveHistory()
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		cli.addToHistory(input)
		cli.execute(input)
	}
	cli.saveHistory()
}

// execute dispatches one line to the handler of the current level.
func (cli *CLI) execute(input string) {
	command, args := splitCommand(input)
	cli.logger.Debugw("command", "level", cli.level(), "command", command)

	switch {
	case cli.store != nil:
		cli.storeCommand(command, args)
	case cli.database != nil:
		cli.databaseCommand(command, args)
	default:
		cli.topCommand(command, args)
	}
}

func (cli *CLI) level() string {
	switch {
	case cli.store != nil:
		return "store"
	case cli.database != nil:
		return "database"
	}
	return "top"
}

func (cli *CLI) getPrompt() string {
	switch {
	case cli.store != nil:
		return fmt.Sprintf("%s%s>%s ", PromptColor, cli.store.Name(), ResetColor)
	case cli.database != nil:
		return fmt.Sprintf("%s%s>%s ", PromptColor, cli.database.Name(), ResetColor)
	}
	return fmt.Sprintf("%s>%s ", PromptColor, ResetColor)
}

func (cli *CLI) topCommand(command string, args string) {
	switch command {
	case "exit", "quit":
		fmt.Fprintf(cli.out, "%sGoodbye!%s\n", SuccessColor, ResetColor)
		cli.quit = true

	case "help":
		cli.printHelp()

	case "databases":
		cli.showDatabases()

	case "history":
		cli.printHistory()

	case "database":
		name := strings.TrimSpace(args)
		if name == "" || strings.ContainsAny(name, " \t") {
			cli.printError("Usage: database <name>")
			return
		}
		dbOp, created, err := cli.instance.Database(name)
		if err != nil {
			cli.printErr(err)
			return
		}
		if created {
			cli.printSuccess(fmt.Sprintf("Database %s not found, created a new one", name))
		} else {
			cli.printSuccess(fmt.Sprintf("Loaded database %s", name))
		}
		cli.database = dbOp

	default:
		cli.printHelp()
	}
}

func (cli *CLI) databaseCommand(command string, args string) {
	fields := strings.Fields(args)

	switch command {
	case "exit":
		cli.printSuccess(fmt.Sprintf("Left database %s", cli.database.Name()))
		cli.database = nil

	case "help":
		cli.printDatabaseHelp()

	case "save":
		cli.display(cli.database.Save())

	case "list_stores":
		cli.database.ListStores().Display(cli.out)

	case "new_store":
		if len(fields) < 1 {
			cli.printError("Usage: new_store <name> <attributes>")
			return
		}
		name, attributes := cutField(args)
		cli.display(cli.database.NewStore(name, attributes))

	case "delete_store":
		if len(fields) != 1 {
			cli.printError("Usage: delete_store <name>")
			return
		}
		cli.display(cli.database.DeleteStore(fields[0]))

	case "store":
		if len(fields) != 1 {
			cli.printError("Usage: store <name>")
			return
		}
		storeOp, created, err := cli.database.UseStore(fields[0])
		if err != nil {
			cli.printErr(err)
			return
		}
		if created {
			cli.printSuccess(fmt.Sprintf("Store %s not found, created a new one", fields[0]))
		}
		cli.store = storeOp

	case "export_sql":
		drop := true
		if len(fields) > 0 {
			if !strings.EqualFold(fields[0], "nodrop") {
				cli.printError("Usage: export_sql [nodrop]")
				return
			}
			drop = false
		}
		cli.display(cli.database.ExportSQL(drop))

	case "export_sqlite":
		if len(fields) != 1 {
			cli.printError("Usage: export_sqlite <path>")
			return
		}
		cli.display(cli.database.ExportSQLite(context.Background(), fields[0]))

	case "history":
		cli.display(cli.database.History())

	case "restore":
		if len(fields) != 1 {
			cli.printError("Usage: restore <transaction>")
			return
		}
		cli.display(cli.database.Restore(fields[0]))

	default:
		cli.printError(fmt.Sprintf("Unknown command: %s. Type 'help' for a list of commands.", command))
	}
}

func (cli *CLI) storeCommand(command string, args string) {
	fields := strings.Fields(args)

	switch command {
	case "exit":
		cli.printSuccess(fmt.Sprintf("Left store %s", cli.store.Name()))
		cli.store = nil

	case "help":
		cli.printStoreHelp()

	case "new_record":
		if strings.TrimSpace(args) == "" {
			cli.printError("Usage: new_record <attr:value, ...>")
			return
		}
		cli.display(cli.store.NewRecord(args))

	case "delete_record":
		if len(fields) != 1 {
			cli.printError("Usage: delete_record <id>")
			return
		}
		cli.display(cli.store.DeleteRecord(fields[0]))

	case "list_records":
		cli.store.ListRecords().Display(cli.out)

	case "get_record":
		if len(fields) != 1 {
			cli.printError("Usage: get_record <id>")
			return
		}
		cli.display(cli.store.GetRecord(fields[0]))

	case "filter":
		attribute, value := cutField(args)
		if value == "" {
			cli.printError("Usage: filter <attribute> <value>")
			return
		}
		cli.display(cli.store.Filter(attribute, value))

	case "filters":
		if len(fields) != 2 {
			cli.printError("Usage: filters <attr1,attr2> <value1,value2>")
			return
		}
		cli.display(cli.store.Filters(fields[0], fields[1]))

	case "operators":
		op.Operators().Display(cli.out)

	case "query":
		if len(fields) < 3 {
			cli.printError("Usage: query <attribute> <operator> <value>")
			return
		}
		attribute, rest := cutField(args)
		operator, value := cutField(rest)
		cli.display(cli.store.Query(attribute, operator, value))

	case "sort":
		if len(fields) != 2 {
			cli.printError("Usage: sort <attribute> <asc|desc>")
			return
		}
		cli.display(cli.store.Sort(fields[0], fields[1]))

	default:
		cli.printError(fmt.Sprintf("Unknown command: %s. Type 'help' for a list of commands.", command))
	}
}

// splitCommand separates the lower-cased command word from the rest of the
// line, which is kept verbatim.
func splitCommand(input string) (string, string) {
	command, args := cutField(input)
	return strings.ToLower(command), args
}

// cutField returns the first whitespace separated field of s and the
// trimmed remainder.
func cutField(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func (cli *CLI) display(result db.Result, err error) {
	if err != nil {
		cli.printErr(err)
		return
	}
	result.Display(cli.out)
}

func (cli *CLI) printErr(err error) {
	cli.logger.Debugw("command failed", "error", err)
	cli.printError(fmt.Sprintf("Error: %v", err))
}

func (cli *CLI) printError(message string) {
	fmt.Fprintf(cli.out, "%s✗ %s%s\n", ErrorColor, message, ResetColor)
}

func (cli *CLI) printSuccess(message string) {
	fmt.Fprintf(cli.out, "%s✓ %s%s\n", SuccessColor, message, ResetColor)
}

func (cli *CLI) showDatabases() {
	databases := cli.instance.Databases()
	if len(databases) == 0 {
		fmt.Fprintln(cli.out, "No saved databases")
		return
	}
	for _, name := range databases {
		fmt.Fprintf(cli.out, "  %s\n", name)
	}
}
