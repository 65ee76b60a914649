// Package parser decodes AsyncAPI and OpenAPI documents from YAML or JSON
// into the dom document graph and resolves their references.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("asyncapi.yaml"))
//	if err != nil {
//		log.Fatal(err) // unreadable input or a non-mapping root
//	}
//	for _, e := range result.Errors {
//		fmt.Println(e) // decode problems and unresolved references
//	}
//	fmt.Println(result.Document.Info.Title)
//
// # Decoding
//
// Each mapping is decoded field by field. Unknown x-* keys become
// extensions; other unknown keys are ignored. A structural problem, such as
// a sequence where a mapping belongs, is recorded as an *aserrors.ParseError
// with line and column, and decoding carries on. Only input that is not
// YAML, or whose root is not a mapping, fails the whole parse.
//
// Example values and defaults keep the quoting of the source. A plain
// scalar (123, true, 2024-01-01) is coerced against the owning schema: an
// example of a "type: string" schema stays a string. Quoted scalars are
// never inferred as numbers or booleans.
//
// # References
//
// A $ref becomes an unresolved placeholder of the expected kind. After
// decoding, every component is stamped with its own reference and the
// ReferenceResolver rebinds placeholders to their targets, so a component
// used from three places is one shared element. Use WithResolveRefs(false)
// to keep the placeholders.
//
// References to other resources, such as "common.yaml#/components/schemas/Id",
// resolve through a ReferenceSource, normally a *workspace.Workspace:
//
//	ws := workspace.New()
//	_ = ws.AddFragment("common.yaml", idSchema)
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("api.yaml"),
//		parser.WithReferenceSource(ws),
//	)
//
// Without one, each external reference is recorded as an error and keeps
// its placeholder. Failed resolution never aborts the parse.
//
// # Fragments
//
// ParseFragment decodes a single element, such as a shared schema file, for
// registration with a workspace.
//
// # Logging
//
// Pass a Logger with WithLogger; NewSlogAdapter bridges log/slog. Load
// timing and resolution failures are logged at debug level.
package parser
