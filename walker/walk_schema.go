package walker

import (
	"github.com/erraggy/asynctools/dom"
)

// walkSchema walks a schema and its subschemas. A schema already on the
// stack is skipped, which bounds the walk on cyclic graphs.
func (w *Walker) walkSchema(s *dom.Schema, isComponent bool, name string) {
	if s == nil || w.asReference(s, isComponent, name) {
		return
	}
	if _, ok := w.schemas[s]; ok {
		return
	}
	if !w.enter(s, isComponent, name) {
		return
	}
	w.schemas[s] = struct{}{}
	defer delete(w.schemas, s)
	defer w.leave(s, isComponent, name)

	w.walkSchemas("allOf", s.AllOf)
	w.walkSchemas("anyOf", s.AnyOf)
	w.walkSchemas("oneOf", s.OneOf)
	w.walkSubschema("not", s.Not)
	w.walkSubschema("items", s.Items)
	eachKey(w, "properties", s.Properties, func(prop string, child *dom.Schema) {
		w.walkSchema(child, false, prop)
	})
	w.walkSubschema("additionalProperties", s.AdditionalProperties)
	if s.Discriminator != nil {
		w.field("discriminator", func() { w.walkLeaf(s.Discriminator) })
	}
	if s.ExternalDocs != nil {
		w.field("externalDocs", func() { w.walkExternalDocs(s.ExternalDocs) })
	}
}

func (w *Walker) walkSchemas(segment string, schemas []*dom.Schema) {
	each(w, segment, schemas, func(child *dom.Schema) { w.walkSchema(child, false, "") })
}

func (w *Walker) walkSubschema(segment string, child *dom.Schema) {
	if child != nil {
		w.field(segment, func() { w.walkSchema(child, false, "") })
	}
}
