package parser

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asynctools"
	"github.com/erraggy/asynctools/aserrors"
	"github.com/erraggy/asynctools/dom"
)

// Parser decodes AsyncAPI and OpenAPI documents into the dom model.
type Parser struct {
	// ResolveRefs determines whether references are resolved after decoding.
	// Default: true
	ResolveRefs bool
	// ResolveRemoteRefs determines whether references to other resources are
	// resolved through Workspace. When false, they stay unresolved and no
	// error is recorded.
	// Default: true
	ResolveRemoteRefs bool
	// Workspace supplies documents and fragments for external references.
	// If nil, external references are recorded as resolution errors.
	Workspace ReferenceSource
	// UserAgent is the User-Agent string used when fetching URLs
	// Defaults to "asynctools/<version>" if not set
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with 30-second timeout is created.
	HTTPClient *http.Client
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		ResolveRefs:       true,
		ResolveRemoteRefs: true,
		UserAgent:         asynctools.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	return orNop(p.Logger)
}

// SourceFormat represents the format of the source document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the parsed document and metadata.
//
// Callers should treat ParseResult as read-only after parsing: the document
// may be registered in a workspace and shared with other documents.
type ParseResult struct {
	// Document is the decoded document graph.
	Document *dom.Document
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name of the method
	// and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat SourceFormat
	// Errors contains non-fatal decode problems (*aserrors.ParseError) and
	// reference resolution failures (*aserrors.ReferenceError).
	Errors []error
	// LoadTime is the time taken to load the source data (file, URL, etc.)
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// IsAsyncAPI reports whether the parsed document declares an asyncapi version.
func (pr *ParseResult) IsAsyncAPI() bool {
	return pr.Document != nil && pr.Document.IsAsyncAPI()
}

// HasErrors reports whether any decode or resolution problem was recorded.
func (pr *ParseResult) HasErrors() bool {
	return len(pr.Errors) > 0
}

// ParseErrors returns the recorded decode problems.
func (pr *ParseResult) ParseErrors() []*aserrors.ParseError {
	var out []*aserrors.ParseError
	for _, err := range pr.Errors {
		var pe *aserrors.ParseError
		if errors.As(err, &pe) {
			out = append(out, pe)
		}
	}
	return out
}

// ReferenceErrors returns the recorded resolution failures.
func (pr *ParseResult) ReferenceErrors() []*aserrors.ReferenceError {
	var out []*aserrors.ReferenceError
	for _, err := range pr.Errors {
		var re *aserrors.ReferenceError
		if errors.As(err, &re) {
			out = append(out, re)
		}
	}
	return out
}

// Parse parses a document from a file path or URL.
// For URLs (http:// or https://), the content is fetched and parsed
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	var (
		data        []byte
		err         error
		format      SourceFormat
		contentType string
	)

	loadStart := time.Now()
	if isRemote(specPath) {
		data, contentType, err = p.fetch(specPath)
		if err != nil {
			return nil, err
		}
		format = formatFromURL(specPath, contentType)
	} else {
		data, err = os.ReadFile(specPath)
		if err != nil {
			return nil, fmt.Errorf("parser: failed to read file: %w", err)
		}
		format = formatFromPath(specPath)
	}
	loadTime := time.Since(loadStart)

	res, err := p.parse(data, specPath)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	if format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	p.log().Debug("loaded document",
		"source", specPath,
		"size", FormatBytes(res.SourceSize),
		"loadTime", loadTime)
	return res, nil
}

// ParseReader parses a document from an io.Reader
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.parse(data, sourceName("ParseReader", data))
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes parses a document from a byte slice
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parse(data, sourceName("ParseBytes", data))
}

// Parse parses data with the default settings.
func Parse(data []byte) (*ParseResult, error) {
	return New().ParseBytes(data)
}

// ParseFile parses the file at path with the default settings.
func ParseFile(path string) (*ParseResult, error) {
	return New().Parse(path)
}

// sourceName names in-memory input after the method and detected format.
func sourceName(method string, data []byte) string {
	if sniffFormat(data) == SourceFormatJSON {
		return method + ".json"
	}
	return method + ".yaml"
}

// parse decodes data and, when enabled, resolves its references.
// Only unreadable input is fatal; everything else lands in Errors.
func (p *Parser) parse(data []byte, source string) (*ParseResult, error) {
	root, err := rootMapping(data, source)
	if err != nil {
		return nil, err
	}

	d := &decoder{source: source}
	doc := d.document(root)
	doc.AssignReferences()

	result := &ParseResult{
		Document:     doc,
		SourcePath:   source,
		SourceFormat: sniffFormat(data),
		Errors:       d.errs,
		SourceSize:   int64(len(data)),
	}

	if p.ResolveRefs {
		opts := []ResolverOption{
			WithResolveRemoteReferences(p.ResolveRemoteRefs),
			WithResolverLogger(p.log()),
		}
		if p.Workspace != nil {
			opts = append(opts, WithWorkspace(p.Workspace))
		}
		result.Errors = append(result.Errors, ResolveReferences(doc, opts...)...)
	}

	p.log().Debug("parsed document",
		"source", source,
		"asyncapi", doc.AsyncAPI,
		"openapi", doc.OpenAPI,
		"errors", len(result.Errors),
		"parserVersion", asynctools.Version())
	return result, nil
}

// rootMapping unmarshals data and returns its top-level mapping node.
func rootMapping(data []byte, source string) (*yaml.Node, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &aserrors.ParseError{Path: source, Message: "invalid YAML or JSON", Cause: err}
	}
	root := &node
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, &aserrors.ParseError{Path: source, Message: "document is empty"}
		}
		root = root.Content[0]
	}
	root = resolveAlias(root)
	if root == nil || root.Kind == 0 {
		return nil, &aserrors.ParseError{Path: source, Message: "document is empty"}
	}
	if root.Kind != yaml.MappingNode {
		return nil, &aserrors.ParseError{
			Path:    source,
			Line:    root.Line,
			Column:  root.Column,
			Message: "document root must be a mapping",
		}
	}
	return root, nil
}

// FragmentResult holds a single decoded element.
type FragmentResult struct {
	// Element is the decoded element, of the requested kind.
	Element dom.Element
	// Errors contains non-fatal decode problems.
	Errors []error
}

// ParseFragment decodes data as a single element of the given kind, such as
// a schema file shared between documents. References inside the fragment
// are left unresolved.
func ParseFragment(data []byte, kind dom.ElementKind) (*FragmentResult, error) {
	source := sourceName("ParseFragment", data)
	root, err := rootMapping(data, source)
	if err != nil {
		return nil, err
	}

	d := &decoder{source: source}
	var el dom.Element
	switch kind {
	case dom.KindSchema:
		el = d.schema(root)
	case dom.KindMessage:
		el = d.message(root)
	case dom.KindChannel:
		el = d.channel(root)
	case dom.KindOperation:
		el = d.operation(root)
	case dom.KindParameter:
		el = d.parameter(root)
	case dom.KindRequestBody:
		el = d.requestBody(root)
	case dom.KindResponse:
		el = d.response(root)
	case dom.KindHeader:
		el = d.header(root)
	case dom.KindExample:
		el = d.example(root)
	case dom.KindLink:
		el = d.link(root)
	case dom.KindCallback:
		el = d.callback(root)
	case dom.KindPathItem:
		el = d.pathItem(root)
	case dom.KindSecurityScheme:
		el = d.securityScheme(root)
	case dom.KindServer:
		el = d.server(root)
	case dom.KindTag:
		el = d.tag(root)
	case dom.KindComponents:
		el = d.components(root)
	case dom.KindDocument:
		el = d.document(root)
	default:
		return nil, &aserrors.ConfigError{
			Option:  "kind",
			Message: fmt.Sprintf("cannot parse a %s fragment", kind),
		}
	}
	return &FragmentResult{Element: el, Errors: d.errs}, nil
}
