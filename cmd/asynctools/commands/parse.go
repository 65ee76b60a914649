package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/asynctools/dom"
	"github.com/erraggy/asynctools/parser"
	"github.com/erraggy/asynctools/walker"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	NoResolve bool
	Format    string
	Debug     bool
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(Stderr)
	flags := &ParseFlags{}

	fs.BoolVar(&flags.NoResolve, "no-resolve", false, "leave $ref placeholders unresolved")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Debug, "debug", false, "log parser activity to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: asynctools parse [flags] <file|url|->\n\n")
		Writef(fs.Output(), "Parse a document and summarize its structure.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  asynctools parse asyncapi.yaml\n")
		Writef(fs.Output(), "  asynctools parse --no-resolve --format json openapi.yaml\n")
	}

	return fs, flags
}

// DocumentSummary describes the structure of a parsed document.
type DocumentSummary struct {
	Specification        string   `json:"specification" yaml:"specification"`
	AsyncAPI             string   `json:"asyncapi,omitempty" yaml:"asyncapi,omitempty"`
	OpenAPI              string   `json:"openapi,omitempty" yaml:"openapi,omitempty"`
	Title                string   `json:"title,omitempty" yaml:"title,omitempty"`
	Version              string   `json:"version,omitempty" yaml:"version,omitempty"`
	Servers              int      `json:"servers" yaml:"servers"`
	Channels             int      `json:"channels" yaml:"channels"`
	Paths                int      `json:"paths" yaml:"paths"`
	Operations           int      `json:"operations" yaml:"operations"`
	ComponentSchemas     int      `json:"componentSchemas" yaml:"componentSchemas"`
	References           int      `json:"references" yaml:"references"`
	UnresolvedReferences int      `json:"unresolvedReferences" yaml:"unresolvedReferences"`
	Errors               []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Summarize collects the summary of a parse result.
func Summarize(specPath string, result *parser.ParseResult) *DocumentSummary {
	s := &DocumentSummary{Specification: FormatSpecPath(specPath)}
	for _, err := range result.Errors {
		s.Errors = append(s.Errors, err.Error())
	}
	doc := result.Document
	if doc == nil {
		return s
	}
	s.AsyncAPI = doc.AsyncAPI
	s.OpenAPI = doc.OpenAPI
	if doc.Info != nil {
		s.Title = doc.Info.Title
		s.Version = doc.Info.Version
	}
	s.Servers = len(doc.Servers)
	s.Channels = len(doc.Channels)
	s.Paths = len(doc.Paths)
	s.Operations = len(walker.CollectOperations(doc).All)
	s.ComponentSchemas = len(walker.CollectSchemas(doc).Components)
	for _, ref := range walker.CollectReferences(doc) {
		s.References++
		if ref.Unresolved {
			s.UnresolvedReferences++
		}
	}
	return s
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path, URL, or '-' for stdin")
	}
	specPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	result, err := parseSpec(specPath, !flags.NoResolve, newLogger(flags.Debug))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", FormatSpecPath(specPath), err)
	}
	summary := Summarize(specPath, result)

	if flags.Format != FormatText {
		return OutputStructured(Stdout, summary, flags.Format)
	}

	OutputSpecHeader(Stderr, specPath, result)
	kind := documentKind(result.Document)
	Writef(Stdout, "Document Type: %s\n", kind)
	Writef(Stdout, "Title: %s\n", summary.Title)
	Writef(Stdout, "Version: %s\n", summary.Version)
	Writef(Stdout, "Servers: %d\n", summary.Servers)
	if kind == "AsyncAPI" {
		Writef(Stdout, "Channels: %d\n", summary.Channels)
	} else {
		Writef(Stdout, "Paths: %d\n", summary.Paths)
	}
	Writef(Stdout, "Operations: %d\n", summary.Operations)
	Writef(Stdout, "Component Schemas: %d\n", summary.ComponentSchemas)
	Writef(Stdout, "References: %d (%d unresolved)\n", summary.References, summary.UnresolvedReferences)

	if len(summary.Errors) > 0 {
		Writef(Stderr, "\nProblems (%d):\n", len(summary.Errors))
		for _, e := range summary.Errors {
			Writef(Stderr, "  - %s\n", e)
		}
	}
	return nil
}

// documentKind names the specification family of doc.
func documentKind(doc *dom.Document) string {
	if doc.IsAsyncAPI() {
		return "AsyncAPI"
	}
	return "OpenAPI"
}
