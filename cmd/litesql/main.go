package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-billy/v6/osfs"

	"litesql/engine"
	"litesql/snapshot"
)

const (
	PromptColor  = "\033[36m"
	ErrorColor   = "\033[31m"
	SuccessColor = "\033[32m"
	ResetColor   = "\033[0m"
	BoldColor    = "\033[1m"
)

// CLI holds the REPL's session and input history.
type CLI struct {
	session *engine.Session
	history []string
}

func main() {
	sqlFile := flag.String("sqlFile", "", "SQL file to execute (non-interactive)")
	flag.Parse()

	printBanner()

	cli := &CLI{session: engine.NewSession()}

	if *sqlFile != "" {
		if err := cli.importFile(*sqlFile); err != nil {
			fmt.Printf("%sError importing file: %v%s\n", ErrorColor, err, ResetColor)
			os.Exit(1)
		}
		return
	}

	cli.run()
}

func printBanner() {
	fmt.Println()
	fmt.Printf("%s%slitesql%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Println("Type .help for commands, .quit to exit")
	fmt.Println()
}

func (cli *CLI) run() {
	reader := bufio.NewReader(os.Stdin)
	var multiLine strings.Builder

	for {
		fmt.Print(cli.prompt(multiLine.Len() > 0))

		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Printf("\n%sGoodbye!%s\n", SuccessColor, ResetColor)
			return
		}
		input = strings.TrimRight(input, "\r\n")

		if strings.TrimSpace(input) == "" {
			continue
		}

		if multiLine.Len() == 0 && strings.HasPrefix(input, ".") {
			if cli.handleCommand(input) {
				continue
			}
		}

		multiLine.WriteString(input)
		trimmed := strings.TrimSpace(multiLine.String())
		if !strings.HasSuffix(trimmed, ";") {
			multiLine.WriteString(" ")
			continue
		}

		text := strings.TrimSuffix(trimmed, ";")
		multiLine.Reset()
		if strings.TrimSpace(text) == "" {
			continue
		}

		cli.history = append(cli.history, text+";")
		cli.runAndDisplay(text)
	}
}

func (cli *CLI) prompt(continuation bool) string {
	if continuation {
		return fmt.Sprintf("%s   ...>%s ", PromptColor, ResetColor)
	}
	return fmt.Sprintf("%slitesql>%s ", PromptColor, ResetColor)
}

func (cli *CLI) runAndDisplay(text string) {
	result := cli.session.Execute(text)
	if !result.Success {
		fmt.Printf("%s✗ %s: %v%s\n", ErrorColor, result.Err.Kind(), result.Err, ResetColor)
		return
	}
	displayResult(result)
}

func (cli *CLI) handleCommand(input string) bool {
	parts := strings.Fields(strings.TrimSpace(input))
	if len(parts) == 0 {
		return true
	}

	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit", ".q":
		fmt.Printf("%sGoodbye!%s\n", SuccessColor, ResetColor)
		os.Exit(0)
	case ".help", ".h", ".?":
		printHelp()
	case ".tables":
		names := cli.session.GetTableNames()
		for _, name := range names {
			fmt.Println(name)
		}
	case ".history":
		for _, line := range cli.history {
			fmt.Println(line)
		}
	case ".reset":
		cli.session.Reset()
		fmt.Printf("%s✓ catalog reset%s\n", SuccessColor, ResetColor)
	case ".dump":
		cli.dumpOrRestore(parts, true)
	case ".load":
		cli.dumpOrRestore(parts, false)
	default:
		fmt.Printf("%s✗ unknown command: %s (type .help for commands)%s\n", ErrorColor, parts[0], ResetColor)
	}
	return true
}

// dumpOrRestore implements .dump <path> / .load <path>: both round-trip
// the catalog currently in effect through a JSON file on the real
// filesystem via a snapshot.Store rooted at the working directory.
func (cli *CLI) dumpOrRestore(parts []string, dump bool) {
	if len(parts) != 2 {
		fmt.Printf("%s✗ usage: %s <path>%s\n", ErrorColor, parts[0], ResetColor)
		return
	}
	store := snapshot.NewStore(osfs.New("."))
	path := parts[1]
	if dump {
		if err := cli.session.Dump(store, path); err != nil {
			fmt.Printf("%s✗ %v%s\n", ErrorColor, err, ResetColor)
			return
		}
		fmt.Printf("%s✓ catalog dumped to %s%s\n", SuccessColor, path, ResetColor)
		return
	}
	if err := cli.session.Restore(store, path); err != nil {
		fmt.Printf("%s✗ %v%s\n", ErrorColor, err, ResetColor)
		return
	}
	fmt.Printf("%s✓ catalog restored from %s%s\n", SuccessColor, path, ResetColor)
}

func printHelp() {
	fmt.Println()
	fmt.Printf("%s%sSpecial commands:%s\n", BoldColor, PromptColor, ResetColor)
	fmt.Println("  .help, .h      Show this help message")
	fmt.Println("  .quit, .exit   Exit the CLI")
	fmt.Println("  .tables        List table names")
	fmt.Println("  .history       Show command history")
	fmt.Println("  .reset         Clear the catalog")
	fmt.Println("  .dump <path>   Save the catalog to a JSON file")
	fmt.Println("  .load <path>   Replace the catalog from a JSON file")
	fmt.Println()
	fmt.Printf("%s%sSQL:%s CREATE/ALTER/DROP TABLE, INSERT, SELECT, UPDATE, DELETE,\n", BoldColor, PromptColor, ResetColor)
	fmt.Println("     SHOW TABLES, DESCRIBE, BEGIN, COMMIT, ROLLBACK")
	fmt.Println()
}

func (cli *CLI) importFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	for _, stmt := range strings.Split(string(content), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		cli.runAndDisplay(stmt)
	}
	return nil
}
