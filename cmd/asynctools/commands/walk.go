package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asynctools/walker"
)

// HandleWalk routes the walk command to the appropriate subcommand handler.
func HandleWalk(args []string) error {
	if len(args) == 0 {
		printWalkUsage()
		return fmt.Errorf("walk command requires a subcommand")
	}

	subcommand := args[0]
	if subcommand == "--help" || subcommand == "-h" || subcommand == "help" {
		printWalkUsage()
		return nil
	}

	subArgs := args[1:]
	switch subcommand {
	case "operations":
		return handleWalkOperations(subArgs)
	case "schemas":
		return handleWalkSchemas(subArgs)
	case "refs":
		return handleWalkRefs(subArgs)
	default:
		printWalkUsage()
		return fmt.Errorf("unknown walk subcommand: %s", subcommand)
	}
}

// WalkFlags contains common flags shared by all walk subcommands.
type WalkFlags struct {
	Format    string // Output format: text, json, yaml.
	Quiet     bool   // Suppress headers for piping.
	NoResolve bool   // Leave $ref placeholders unresolved.
}

func setupWalkFlags(name string, flags *WalkFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("walk "+name, flag.ContinueOnError)
	fs.SetOutput(Stderr)
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "suppress headers for piping")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress headers for piping")
	fs.BoolVar(&flags.NoResolve, "no-resolve", false, "leave $ref placeholders unresolved")
	return fs
}

// parseWalkArgs parses subcommand flags and returns the spec path.
func parseWalkArgs(fs *flag.FlagSet, flags *WalkFlags, args []string) (string, bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return "", true, nil
		}
		return "", false, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return "", false, fmt.Errorf("%s requires exactly one file path, URL, or '-' for stdin", fs.Name())
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return "", false, err
	}
	return fs.Arg(0), false, nil
}

func handleWalkOperations(args []string) error {
	flags := &WalkFlags{}
	var opType, tag string
	fs := setupWalkFlags("operations", flags)
	fs.StringVar(&opType, "type", "", "filter by operation type (publish, subscribe, or an HTTP method)")
	fs.StringVar(&tag, "tag", "", "filter by tag name")
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: asynctools walk operations [flags] <file|url|->\n\nFlags:\n")
		fs.PrintDefaults()
	}

	specPath, help, err := parseWalkArgs(fs, flags, args)
	if err != nil || help {
		return err
	}
	result, err := parseSpec(specPath, !flags.NoResolve, newLogger(false))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", FormatSpecPath(specPath), err)
	}

	headers := []string{"TYPE", "ID", "TAGS", "PATH"}
	var rows [][]string
	for _, info := range walker.CollectOperations(result.Document).All {
		if opType != "" && !strings.EqualFold(info.Type, opType) {
			continue
		}
		var tags []string
		for _, t := range info.Operation.Tags {
			if t != nil {
				tags = append(tags, t.Name)
			}
		}
		if tag != "" && !containsFold(tags, tag) {
			continue
		}
		rows = append(rows, []string{info.Type, info.Operation.OperationID, strings.Join(tags, ","), info.Path})
	}
	return renderWalkResults(headers, rows, "operations", flags)
}

func handleWalkSchemas(args []string) error {
	flags := &WalkFlags{}
	var component, inline bool
	var name string
	fs := setupWalkFlags("schemas", flags)
	fs.BoolVar(&component, "component", false, "only component schemas")
	fs.BoolVar(&inline, "inline", false, "only inline schemas")
	fs.StringVar(&name, "name", "", "filter by schema name")
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: asynctools walk schemas [flags] <file|url|->\n\nFlags:\n")
		fs.PrintDefaults()
	}

	specPath, help, err := parseWalkArgs(fs, flags, args)
	if err != nil || help {
		return err
	}
	if component && inline {
		return fmt.Errorf("cannot use --component and --inline together")
	}
	result, err := parseSpec(specPath, !flags.NoResolve, newLogger(false))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", FormatSpecPath(specPath), err)
	}

	collected := walker.CollectSchemas(result.Document)
	infos := collected.All
	switch {
	case component:
		infos = collected.Components
	case inline:
		infos = collected.Inline
	}

	headers := []string{"NAME", "TYPE", "COMPONENT", "PATH"}
	var rows [][]string
	for _, info := range infos {
		if name != "" && info.Name != name {
			continue
		}
		rows = append(rows, []string{
			info.Name,
			info.Schema.Type,
			fmt.Sprintf("%t", info.IsComponent),
			info.Path,
		})
	}
	return renderWalkResults(headers, rows, "schemas", flags)
}

func handleWalkRefs(args []string) error {
	flags := &WalkFlags{}
	var unresolved bool
	fs := setupWalkFlags("refs", flags)
	fs.BoolVar(&unresolved, "unresolved", false, "only references that did not resolve")
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: asynctools walk refs [flags] <file|url|->\n\nFlags:\n")
		fs.PrintDefaults()
	}

	specPath, help, err := parseWalkArgs(fs, flags, args)
	if err != nil || help {
		return err
	}
	result, err := parseSpec(specPath, !flags.NoResolve, newLogger(false))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", FormatSpecPath(specPath), err)
	}

	headers := []string{"REF", "STATUS", "PATH"}
	var rows [][]string
	for _, info := range walker.CollectReferences(result.Document) {
		if unresolved && !info.Unresolved {
			continue
		}
		status := "resolved"
		if info.Unresolved {
			status = "unresolved"
		}
		rows = append(rows, []string{info.Ref, status, info.SourcePath})
	}
	return renderWalkResults(headers, rows, "references", flags)
}

func renderWalkResults(headers []string, rows [][]string, nodeType string, flags *WalkFlags) error {
	if flags.Format != FormatText {
		return RenderSummaryStructured(Stdout, headers, rows, flags.Format)
	}
	if len(rows) == 0 {
		if !flags.Quiet {
			Writef(Stderr, "No %s matched the given filters.\n", nodeType)
		}
		return nil
	}
	RenderSummaryTable(Stdout, headers, rows, flags.Quiet)
	return nil
}

// RenderSummaryTable renders a table of results.
// In quiet mode, headers are omitted and rows are tab-separated for piping.
func RenderSummaryTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		var b strings.Builder
		for i, cell := range cells {
			switch {
			case quiet && i > 0:
				b.WriteByte('\t')
			case i > 0:
				b.WriteString("  ")
			}
			if quiet || i == len(cells)-1 {
				b.WriteString(cell)
			} else {
				fmt.Fprintf(&b, "%-*s", widths[i], cell)
			}
		}
		Writef(w, "%s\n", b.String())
	}

	if !quiet {
		writeRow(headers)
	}
	for _, row := range rows {
		writeRow(row)
	}
}

// RenderSummaryStructured renders table data as a list of records keyed by
// the lowercased headers.
func RenderSummaryStructured(w io.Writer, headers []string, rows [][]string, format string) error {
	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]string, len(headers))
		for i, h := range headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			rec[strings.ToLower(h)] = val
		}
		records = append(records, rec)
	}

	var data []byte
	var err error
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(records, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(records)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	Writef(w, "%s\n", strings.TrimRight(string(data), "\n"))
	return nil
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

func printWalkUsage() {
	Writef(Stderr, `Usage: asynctools walk <subcommand> [flags] <file|url|->

Query and explore AsyncAPI and OpenAPI documents.

Subcommands:
  operations    List operations (--type, --tag)
  schemas       List schemas (--component, --inline, --name)
  refs          List $ref call sites (--unresolved)

Common Flags:
  --format      Output format: text (default), json, yaml
  -q, --quiet   Suppress headers for piping
  --no-resolve  Leave $ref placeholders unresolved

Examples:
  asynctools walk operations --type publish asyncapi.yaml
  asynctools walk schemas --component openapi.yaml
  asynctools walk refs --unresolved --format json asyncapi.yaml
`)
}
