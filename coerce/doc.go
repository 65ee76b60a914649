// Package coerce converts loosely typed scalar values into typed primitives
// under the guidance of an optional schema.
//
// Parsed documents carry every scalar as a [dom.String] tagged explicit or
// implicit. [Value] walks arrays and objects alongside the schema, infers
// primitives for implicit scalars and leaves anything it cannot interpret
// unchanged:
//
//	s := &dom.Schema{Type: "integer", Format: "int32"}
//	coerce.Value(dom.Str("10"), s)          // dom.Integer(10)
//	coerce.Value(dom.ExplicitStr("10"), s)  // dom.String{Value: "10", Explicit: true}
//
// Coercion never reports errors and never mutates the schema.
package coerce
