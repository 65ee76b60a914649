package commands

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/erraggy/asynctools/validator"
)

// ErrValidationFailed is returned when the document has validation errors.
// The caller maps it to exit status 1 without printing it again.
var ErrValidationFailed = errors.New("validation failed")

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	NoWarnings bool
	Quiet      bool
	Format     string
	Disable    string
	Debug      bool
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(Stderr)
	flags := &ValidateFlags{}

	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Disable, "disable", "", "comma-separated rule names to skip")
	fs.BoolVar(&flags.Debug, "debug", false, "log parser and validator activity to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: asynctools validate [flags] <file|url|->\n\n")
		Writef(fs.Output(), "Validate an AsyncAPI or OpenAPI document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nRules:\n")
		for _, name := range validator.DefaultRuleSet().Names() {
			Writef(fs.Output(), "  %s\n", name)
		}
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  asynctools validate asyncapi.yaml\n")
		Writef(fs.Output(), "  asynctools validate --disable component-keys,extension-keys asyncapi.yaml\n")
		Writef(fs.Output(), "  cat asyncapi.yaml | asynctools validate -q -\n")
		Writef(fs.Output(), "  asynctools validate --format json openapi.yaml | jq '.valid'\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Validation successful\n")
		Writef(fs.Output(), "  1    Validation failed with errors\n")
	}

	return fs, flags
}

// validationReport is the structured form of a validation result.
type validationReport struct {
	Specification string        `json:"specification" yaml:"specification"`
	Valid         bool          `json:"valid" yaml:"valid"`
	ErrorCount    int           `json:"errorCount" yaml:"errorCount"`
	WarningCount  int           `json:"warningCount" yaml:"warningCount"`
	Errors        []reportIssue `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings      []reportIssue `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type reportIssue struct {
	Rule    string `json:"rule" yaml:"rule"`
	Path    string `json:"path" yaml:"path"`
	Message string `json:"message" yaml:"message"`
}

func toReportIssues(in []validator.ValidationError) []reportIssue {
	out := make([]reportIssue, 0, len(in))
	for _, e := range in {
		out = append(out, reportIssue{Rule: e.Rule, Path: e.Path, Message: e.Message})
	}
	return out
}

// ruleSet returns the default rule set minus the rules named in disable.
func ruleSet(disable string) (*validator.RuleSet, error) {
	rs := validator.DefaultRuleSet()
	if disable == "" {
		return rs, nil
	}
	known := rs.Names()
	var names []string
	for _, name := range strings.Split(disable, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !slices.Contains(known, name) {
			return nil, fmt.Errorf("unknown rule '%s'", name)
		}
		names = append(names, name)
	}
	return rs.Without(names...), nil
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path, URL, or '-' for stdin")
	}

	specPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	rules, err := ruleSet(flags.Disable)
	if err != nil {
		return err
	}

	logger := newLogger(flags.Debug)
	startTime := time.Now()
	parsed, err := parseSpec(specPath, true, logger)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", FormatSpecPath(specPath), err)
	}
	result, err := validator.ValidateWithOptions(
		validator.WithParsed(parsed),
		validator.WithRuleSet(rules),
		validator.WithIncludeWarnings(!flags.NoWarnings),
		validator.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("validating %s: %w", FormatSpecPath(specPath), err)
	}
	totalTime := time.Since(startTime)

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		report := validationReport{
			Specification: FormatSpecPath(specPath),
			Valid:         result.Valid,
			ErrorCount:    result.ErrorCount,
			WarningCount:  result.WarningCount,
			Errors:        toReportIssues(result.Errors),
			Warnings:      toReportIssues(result.Warnings),
		}
		if err := OutputStructured(Stdout, report, flags.Format); err != nil {
			return err
		}
		if !result.Valid {
			return ErrValidationFailed
		}
		return nil
	}

	if !flags.Quiet {
		Writef(Stderr, "AsyncAPI/OpenAPI Document Validator\n")
		Writef(Stderr, "===================================\n\n")
		OutputSpecHeader(Stderr, specPath, parsed)
		Writef(Stderr, "Total Time: %v\n\n", totalTime)

		if len(result.Errors) > 0 {
			Writef(Stderr, "Errors (%d):\n", result.ErrorCount)
			for _, e := range result.Errors {
				Writef(Stderr, "  %s\n", e.String())
			}
			Writef(Stderr, "\n")
		}

		if len(result.Warnings) > 0 {
			Writef(Stderr, "Warnings (%d):\n", result.WarningCount)
			for _, w := range result.Warnings {
				Writef(Stderr, "  %s\n", w.String())
			}
			Writef(Stderr, "\n")
		}

		if result.Valid {
			Writef(Stderr, "✓ Validation passed")
			if result.WarningCount > 0 {
				Writef(Stderr, " with %d warning(s)", result.WarningCount)
			}
			Writef(Stderr, "\n")
		} else {
			Writef(Stderr, "✗ Validation failed: %d error(s)", result.ErrorCount)
			if result.WarningCount > 0 {
				Writef(Stderr, ", %d warning(s)", result.WarningCount)
			}
			Writef(Stderr, "\n")
		}
	}

	if !result.Valid {
		return ErrValidationFailed
	}
	return nil
}
