// Package workspace registers documents and fragments under normalized
// location keys so that references between them can be resolved.
//
// A Workspace is filled before resolution starts and is read-only
// afterwards; it does no locking.
//
//	ws := workspace.New()
//	_ = ws.AddDocument("common.yaml", common.Document)
//	res, err := parser.ParseWithOptions(
//		parser.WithFilePath("api.yaml"),
//		parser.WithReferenceSource(ws),
//	)
//
// Keys are normalized before use: backslashes become slashes, "." and ".."
// segments are collapsed, and the key is put in Unicode NFC form. For URLs
// only the path is cleaned and any fragment is dropped. "./common.yaml",
// "a/../common.yaml" and "common.yaml" are the same key.
//
// A reference into a registered document is resolved against that
// document's components. A reference into a fragment either names the
// fragment itself (no pointer) or one field or map key below its root:
// "list.yaml#/items" reaches the items schema of an array schema fragment.
// Longer pointers are rejected.
package workspace
