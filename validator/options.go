package validator

import (
	"github.com/erraggy/asynctools/aserrors"
	"github.com/erraggy/asynctools/dom"
	"github.com/erraggy/asynctools/internal/options"
	"github.com/erraggy/asynctools/parser"
)

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult
	element  dom.Element

	includeWarnings bool
	ruleSet         *RuleSet
	logger          parser.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{
		includeWarnings: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"source",
		"must specify an input source (use WithFilePath, WithParsed, or WithElement)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.parsed != nil, cfg.element != nil,
	); err != nil {
		return nil, err
	}

	if cfg.ruleSet == nil {
		cfg.ruleSet = DefaultRuleSet()
	}
	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies a ParseResult as the input source
func WithParsed(result *parser.ParseResult) Option {
	return func(cfg *validateConfig) error {
		if result == nil {
			return &aserrors.ConfigError{Option: "parsed", Message: "parse result cannot be nil"}
		}
		cfg.parsed = result
		return nil
	}
}

// WithElement specifies a document or fragment as the input source
func WithElement(el dom.Element) Option {
	return func(cfg *validateConfig) error {
		if el == nil {
			return &aserrors.ConfigError{Option: "element", Message: "element cannot be nil"}
		}
		cfg.element = el
		return nil
	}
}

// WithRuleSet replaces the default rule set
func WithRuleSet(rs *RuleSet) Option {
	return func(cfg *validateConfig) error {
		if rs == nil {
			return &aserrors.ConfigError{Option: "ruleSet", Message: "rule set cannot be nil"}
		}
		cfg.ruleSet = rs
		return nil
	}
}

// WithIncludeWarnings enables or disables warnings
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithLogger sets the logger used by the validator and, for file input,
// the parser
func WithLogger(l parser.Logger) Option {
	return func(cfg *validateConfig) error {
		cfg.logger = l
		return nil
	}
}
