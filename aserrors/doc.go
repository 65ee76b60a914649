// Package aserrors provides structured error types for the asynctools library.
//
// Import path: github.com/erraggy/asynctools/aserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON syntax failures and structural decode problems
//   - [ReferenceError]: reference resolution failures (local, external, workspace, fragment)
//   - [ValidationError]: rule violations reported by the validator
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrExternalReference]: Matches [ReferenceError] with IsExternal=true
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage
//
// Reference and validation failures are never returned as the error of a
// resolve or validate call. They accumulate in result lists, and callers
// decide what constitutes overall failure:
//
//	result, _ := parser.ParseWithOptions(parser.WithFilePath("api.yaml"))
//	for _, err := range result.Errors {
//	    var refErr *aserrors.ReferenceError
//	    if errors.As(err, &refErr) {
//	        fmt.Printf("%s: unresolved %s\n", refErr.Path, refErr.Ref)
//	    }
//	}
package aserrors
