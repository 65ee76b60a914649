// Package commands provides CLI command handlers for asynctools.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asynctools"
	"github.com/erraggy/asynctools/parser"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Output streams. Tests replace them to capture output.
var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w in the specified format (json or yaml).
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(w, "%s\n", bytes)
	return nil
}

// FormatSpecPath returns a display-friendly path for the specification.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// OutputSpecHeader writes the common specification header.
func OutputSpecHeader(w io.Writer, specPath string, result *parser.ParseResult) {
	Writef(w, "asynctools version: %s\n", asynctools.Version())
	Writef(w, "Specification: %s\n", FormatSpecPath(specPath))
	if doc := result.Document; doc != nil {
		if doc.IsAsyncAPI() {
			Writef(w, "AsyncAPI Version: %s\n", doc.AsyncAPI)
		} else if doc.OpenAPI != "" {
			Writef(w, "OpenAPI Version: %s\n", doc.OpenAPI)
		}
	}
	Writef(w, "Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	Writef(w, "Load Time: %v\n", result.LoadTime)
}

// newLogger returns a text slog logger on Stderr when debug is set.
func newLogger(debug bool) parser.Logger {
	if !debug {
		return parser.NopLogger{}
	}
	h := slog.NewTextHandler(Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return parser.NewSlogAdapter(slog.New(h))
}

// parseSpec parses a document from a file path, URL, or stdin ("-").
func parseSpec(specPath string, resolveRefs bool, logger parser.Logger) (*parser.ParseResult, error) {
	p := parser.New()
	p.ResolveRefs = resolveRefs
	p.Logger = logger

	if specPath == StdinFilePath {
		return p.ParseReader(Stdin)
	}
	return p.Parse(specPath)
}
