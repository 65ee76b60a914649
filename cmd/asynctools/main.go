package main

import (
	"errors"
	"os"

	"github.com/erraggy/asynctools"
	"github.com/erraggy/asynctools/cmd/asynctools/commands"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches a command and returns the process exit status.
func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	var err error
	switch command := args[0]; command {
	case "version", "-v", "--version":
		commands.Writef(commands.Stdout, "asynctools v%s\n", asynctools.Version())
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "validate":
		err = commands.HandleValidate(args[1:])
	case "parse":
		err = commands.HandleParse(args[1:])
	case "walk":
		err = commands.HandleWalk(args[1:])
	default:
		commands.Writef(commands.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		return 1
	}

	if err != nil {
		if !errors.Is(err, commands.ErrValidationFailed) {
			commands.Writef(commands.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func printUsage() {
	commands.Writef(commands.Stderr, `asynctools v%s - AsyncAPI and OpenAPI document tools

Usage:
  asynctools <command> [flags] <file|url|->

Commands:
  validate    Validate a document against the built-in rule set
  parse       Parse a document and summarize its structure
  walk        Query operations, schemas, and references
  version     Show version information
  help        Show this help message

Run 'asynctools <command> --help' for more information on a command.
`, asynctools.Version())
}
