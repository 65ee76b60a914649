package validator

import (
	"errors"
	"fmt"

	"github.com/erraggy/asynctools/aserrors"
	"github.com/erraggy/asynctools/dom"
	"github.com/erraggy/asynctools/internal/issues"
	"github.com/erraggy/asynctools/internal/pathutil"
	"github.com/erraggy/asynctools/internal/severity"
	"github.com/erraggy/asynctools/parser"
	"github.com/erraggy/asynctools/walker"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a rule violation that makes the document invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a best practice violation or recommendation
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
)

// ValidationError represents a single validation issue
type ValidationError = issues.Issue

// ValidationResult contains the results of validating a document
type ValidationResult struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool
	// Errors contains all validation errors in traversal order
	Errors []ValidationError
	// Warnings contains all validation warnings in traversal order
	Warnings []ValidationError
	// ErrorCount is the total number of errors
	ErrorCount int
	// WarningCount is the total number of warnings
	WarningCount int
}

// AsErrors returns each validation error as an *aserrors.ValidationError.
func (r *ValidationResult) AsErrors() []error {
	out := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, &aserrors.ValidationError{Rule: e.Rule, Path: e.Path, Message: e.Message})
	}
	return out
}

// Validator checks document graphs against a RuleSet.
type Validator struct {
	// IncludeWarnings determines whether warnings are reported
	IncludeWarnings bool
	// Rules is the rule set to evaluate. Defaults to DefaultRuleSet().
	Rules *RuleSet
	// Logger receives a summary of each validation. Defaults to a no-op logger.
	Logger parser.Logger
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{
		IncludeWarnings: true,
		Rules:           DefaultRuleSet(),
	}
}

// ValidateWithOptions validates a document using functional options.
//
// Example:
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithFilePath("asyncapi.yaml"),
//	    validator.WithIncludeWarnings(false),
//	)
func ValidateWithOptions(opts ...Option) (*ValidationResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("validator: invalid options: %w", err)
	}

	v := &Validator{
		IncludeWarnings: cfg.includeWarnings,
		Rules:           cfg.ruleSet,
		Logger:          cfg.logger,
	}

	switch {
	case cfg.element != nil:
		return v.Validate(cfg.element), nil
	case cfg.parsed != nil:
		return v.ValidateParsed(cfg.parsed), nil
	}
	// cfg.filePath must be non-nil here (validated by applyOptions)
	p := parser.New()
	if cfg.logger != nil {
		p.Logger = cfg.logger
	}
	result, err := p.Parse(*cfg.filePath)
	if err != nil {
		return nil, fmt.Errorf("validator: failed to parse document: %w", err)
	}
	return v.ValidateParsed(result), nil
}

// ValidateParsed validates a parsed document. Decoding problems recorded by
// the parser are reported at the document root as errors of the "parse"
// rule. Reference failures are left to the reference rules.
func (v *Validator) ValidateParsed(result *parser.ParseResult) *ValidationResult {
	var pre []issues.Issue
	for _, err := range result.Errors {
		var pe *aserrors.ParseError
		if !errors.As(err, &pe) {
			continue
		}
		pre = append(pre, issues.Issue{
			Rule:     "parse",
			Path:     pathutil.PointerPrefix,
			Message:  pe.Error(),
			Severity: SeverityError,
		})
	}
	if result.Document == nil {
		return v.finish(&run{errors: pre})
	}
	return v.validate(result.Document, pre)
}

// Validate runs the rule set over the graph rooted at root. root is
// normally a *dom.Document, but any element may be validated on its own.
func (v *Validator) Validate(root dom.Element) *ValidationResult {
	return v.validate(root, nil)
}

func (v *Validator) validate(root dom.Element, pre []issues.Issue) *ValidationResult {
	rules := v.Rules
	if rules == nil {
		rules = DefaultRuleSet()
	}
	r := &run{errors: pre}
	if doc, ok := root.(*dom.Document); ok {
		r.document = doc
	}
	e := &engine{rules: rules, ctx: &Context{run: r}}
	walker.Walk(root, e)

	result := v.finish(r)
	v.logger().Debug("validated document",
		"rules", rules.Len(),
		"errors", result.ErrorCount,
		"warnings", result.WarningCount,
	)
	return result
}

func (v *Validator) finish(r *run) *ValidationResult {
	result := &ValidationResult{
		Errors:       r.errors,
		Warnings:     r.warnings,
		ErrorCount:   len(r.errors),
		WarningCount: len(r.warnings),
	}
	result.Valid = result.ErrorCount == 0
	if !v.IncludeWarnings {
		result.Warnings = nil
		result.WarningCount = 0
	}
	return result
}

func (v *Validator) logger() parser.Logger {
	if v.Logger == nil {
		return parser.NopLogger{}
	}
	return v.Logger
}

// engine is the walker.Visitor that dispatches elements to rules.
type engine struct {
	rules *RuleSet
	ctx   *Context
}

// Visit implements walker.Visitor.
func (e *engine) Visit(wc *walker.WalkContext, el dom.Element) walker.Action {
	e.apply(wc, el, e.rules.forElement(el))
	return walker.Continue
}

// VisitReference implements walker.Visitor. Resolved references are shared
// elements checked where they are declared, so only unresolved ones are
// dispatched.
func (e *engine) VisitReference(wc *walker.WalkContext, ref dom.Referenceable) walker.Action {
	if ref.IsUnresolved() {
		e.apply(wc, ref, e.rules.references)
	}
	return walker.Continue
}

func (e *engine) apply(wc *walker.WalkContext, el dom.Element, rules []Rule) {
	e.ctx.wc = wc
	for _, r := range rules {
		r.check(e.ctx, el)
		e.ctx.checkBalanced(r.name)
	}
}
