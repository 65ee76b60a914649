// Package validator checks AsyncAPI and OpenAPI document graphs against a
// set of rules.
//
// # Quick Start
//
//	result, err := validator.ValidateWithOptions(validator.WithFilePath("asyncapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, e := range result.Errors {
//		fmt.Println(e)
//	}
//
// A Validator may also be used directly on a parsed document or on any
// element of one:
//
//	v := validator.New()
//	result := v.Validate(doc)
//
// # Rules
//
// A Rule is bound to one element kind and is evaluated for every element of
// that kind the walker visits, in registration order. Rules report issues
// through a Context, which tracks the document pointer of the element:
//
//	rule := validator.NewRule("summary-required", func(c *validator.Context, op *dom.Operation) {
//		if op.Summary == "" {
//			c.Enter("summary")
//			c.CreateWarning("summary-required", "Operation should have a summary")
//			c.Exit()
//		}
//	})
//	rs := validator.DefaultRuleSet().Add(rule)
//
// Every Enter must be matched by an Exit before the rule returns; an
// unbalanced rule panics. Rules created with NewExtensibleRule run for every
// element that carries extensions, and rules created with NewReferenceRule
// run for each reference still unresolved when the walker reaches it.
//
// # Shared Components
//
// The validator is driven by the walker, so a component is checked once
// where it is declared no matter how many places reference it. Cyclic
// schemas are visited once per cycle.
//
// # Default Rules
//
// DefaultRuleSet covers:
//   - document version and info object presence
//   - info title and version, contact and license URLs, external docs URLs
//   - server URLs, URL variables, and variable defaults
//   - channel name expressions against declared channel parameters
//   - path template variables against declared path parameters
//   - operation id uniqueness and response status codes
//   - OpenAPI parameter name and location, required path parameters
//   - response descriptions
//   - schema discriminators and required properties
//   - security scheme fields by type and OAuth flow URLs
//   - link targets, tag names, component keys, extension keys
//   - unresolved references
//
// Field checks are expressed with github.com/nobl9/govy validators.
//
// # Results
//
// Issues never stop validation. ValidationResult lists errors and warnings
// in traversal order; Valid is true when there are no errors. AsErrors
// returns the errors as *aserrors.ValidationError values for use with
// errors.Is and errors.As.
package validator
