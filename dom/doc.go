// Package dom provides the typed document object model for AsyncAPI/OpenAPI-style
// specification documents.
//
// Every node of a document is an [Element]. The set of element kinds is closed:
// [ElementKind] enumerates them and the interface cannot be implemented outside
// this package, so consumers dispatch with a type switch.
//
// # References
//
// Elements that may be replaced by a "$ref" implement [Referenceable]. The
// parser produces placeholders with UnresolvedReference set and a parsed
// [Reference]; a placeholder's other fields carry no meaning. Resolution
// replaces the placeholder in its parent slot with the shared target element.
// Shared targets and cycles are represented by pointer, never by copying.
//
//	ref, err := dom.ParseReference("#/components/schemas/Pet", dom.RefSchema)
//	// ref.Type == dom.RefSchema, ref.ID == "Pet"
//
// [Document.AssignReferences] stamps every component (and every root tag) with
// its own resolved reference so traversal can recognise a shared target at a
// use site and descend into its interior only from the components section.
//
// # Values
//
// Dynamically typed values (examples, defaults, enums, extensions) are [Any]:
// a closed union of scalar kinds plus [Array] and [Object]. Freshly parsed
// scalars are [String] values tagged Explicit when the source quoted them;
// the coerce package turns them into typed primitives.
package dom
