// Package asynctools provides tools for working with AsyncAPI and OpenAPI
// documents as a typed object graph.
//
// # Overview
//
// The library consists of these packages:
//
//   - dom: the document model, references and dynamically typed values
//   - parser: decode YAML or JSON into a dom.Document and resolve references
//   - walker: cycle-safe traversal of a document graph with a Visitor
//   - workspace: a registry of documents and fragments for cross-document references
//   - coerce: turn implicitly typed values into the primitives a schema names
//   - validator: rule-based validation driven by the walker
//   - aserrors: structured error types shared by all packages
//
// # Installation
//
//	go get github.com/erraggy/asynctools
//
// The asynctools command wraps the library:
//
//	go install github.com/erraggy/asynctools/cmd/asynctools@latest
//	asynctools validate asyncapi.yaml
//	asynctools walk refs --unresolved asyncapi.yaml
//
// # Quick Start
//
// Parse a document:
//
//	result, err := parser.ParseFile("asyncapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, e := range result.Errors {
//		fmt.Println(e)
//	}
//
// Validate it:
//
//	vr := validator.New().ValidateParsed(result)
//	if !vr.Valid {
//		for _, e := range vr.Errors {
//			fmt.Println(e)
//		}
//	}
//
// Walk it:
//
//	walker.Walk(result.Document, walker.Funcs{
//		OnElement: func(wc *walker.WalkContext, el dom.Element) walker.Action {
//			fmt.Println(wc.Path(), el.Kind())
//			return walker.Continue
//		},
//	})
//
// # References
//
// Every "$ref" decodes to a placeholder element carrying a dom.Reference.
// Resolution replaces placeholders with their shared targets, so after
// parsing, a component referenced from several places is a single pointer.
// Unresolvable references stay in the graph as placeholders and are
// reported by the parser and by the validator.
//
// References to other files are resolved through a workspace.Workspace:
//
//	ws := workspace.New()
//	_ = ws.AddDocument("common.yaml", common.Document)
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("api.yaml"),
//		parser.WithReferenceSource(ws),
//	)
//
// # Cycles
//
// Schemas and callback path items may form cycles. The walker visits each
// schema and path item at most once per walk, and shared components are
// descended into only from the components section.
//
// # Values
//
// Examples, defaults, enums and extensions are dom.Any values. The parser
// records whether a scalar was written as an explicit string; coerce.Value
// converts the remaining scalars using the schema that describes them.
//
// # Errors
//
// All packages return errors from the aserrors package, which support
// errors.Is against sentinel values such as aserrors.ErrReference and
// aserrors.ErrValidation.
package asynctools
