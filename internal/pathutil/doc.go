// Package pathutil provides efficient document pointer utilities for
// traversal and reference building.
//
// The primary type is [PathBuilder], which uses push/pop semantics to build
// pointers incrementally without allocating intermediate strings. Segments are
// escaped per RFC 6901, so a path key like "/a/b" renders as "~1a~1b":
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("paths")
//	path.Push("/a/b")
//	path.Push("get")
//	path.String() // "#/paths/~1a~1b/get"
//
// Only call String() when the pointer is needed (e.g. reporting an error).
//
// The package also provides builders for component references:
//
//	ref := pathutil.SchemaRef("Pet") // "#/components/schemas/Pet"
package pathutil
