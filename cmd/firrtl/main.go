// cmd/firrtl/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ncruces/go-strftime"

	"firrtl/cmd/firrtl/commands"
)

const version = "1.0.0"

var buildDate = time.Now()

// commandAliases mirrors teacher's single-letter shortcut table.
var commandAliases = map[string]string{
	"p": "parse",
	"f": "fmt",
	"m": "moddep",
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches a command and returns the process exit code, kept
// separate from main so it can be registered as a testscript command
// (see cmd/firrtl/main_test.go) without building a separate binary.
func run(args []string) int {
	if len(args) == 0 {
		showUsage()
		return 0
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}

	switch cmd {
	case "--help", "-h", "help":
		showUsage()
		return 0
	case "--version", "-v", "version":
		showVersion()
		return 0
	case "parse":
		if err := commands.ParseCommand(args[1:]); err != nil {
			log.Printf("Error: %v", err)
			return 1
		}
	case "fmt":
		if err := commands.FmtCommand(args[1:]); err != nil {
			log.Printf("Error: %v", err)
			return 1
		}
	case "moddep":
		if err := commands.ModdepCommand(args[1:]); err != nil {
			log.Printf("Error: %v", err)
			return 1
		}
	default:
		fmt.Fprintf(os.Stderr, "firrtl: unknown command %q\n", cmd)
		showUsage()
		return 1
	}
	return 0
}

func showUsage() {
	fmt.Println("firrtl - a FIRRTL parser and formatter")
	fmt.Println()
	fmt.Println("Usage: firrtl <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  parse <file.fir>...    parse one or more files, report module/port counts")
	fmt.Println("  fmt <file.fir>...      parse and re-emit each file in canonical form")
	fmt.Println("  moddep <file.fir>...   list each module's instantiated sub-modules")
	fmt.Println("  version                print version and build date")
	fmt.Println("  help                   show this message")
}

func showVersion() {
	fmt.Printf("firrtl version %s (built %s)\n", version, strftime.Format("%Y-%m-%d", buildDate))
}
