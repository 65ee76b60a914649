package dom

import (
	"github.com/erraggy/asynctools/aserrors"
)

// ResolveReference returns the element a local reference targets.
// Tags resolve against the root tag list by name; every other type resolves
// against the matching components map.
func (d *Document) ResolveReference(ref *Reference) (Referenceable, error) {
	if ref == nil {
		return nil, &aserrors.ReferenceError{RefType: aserrors.RefTypeLocal, Message: "reference is nil"}
	}
	if ref.IsExternal() {
		return nil, &aserrors.ReferenceError{
			Ref:        ref.String(),
			RefType:    aserrors.RefTypeExternal,
			IsExternal: true,
			Message:    "external reference cannot be resolved against the document",
		}
	}
	if el, ok := d.lookup(ref); ok {
		return el, nil
	}
	return nil, &aserrors.ReferenceError{
		Ref:     ref.String(),
		RefType: aserrors.RefTypeLocal,
		Message: "target " + string(ref.Type) + " " + quote(ref.ID) + " not found",
	}
}

func (d *Document) lookup(ref *Reference) (Referenceable, bool) {
	if d == nil {
		return nil, false
	}
	if ref.Type == RefTag {
		for _, t := range d.Tags {
			if t != nil && t.Name == ref.ID {
				return t, true
			}
		}
		return nil, false
	}
	c := d.Components
	if c == nil {
		return nil, false
	}
	switch ref.Type {
	case RefSchema:
		return find(c.Schemas, ref.ID)
	case RefMessage:
		return find(c.Messages, ref.ID)
	case RefParameter:
		return find(c.Parameters, ref.ID)
	case RefResponse:
		return find(c.Responses, ref.ID)
	case RefRequestBody:
		return find(c.RequestBodies, ref.ID)
	case RefHeader:
		return find(c.Headers, ref.ID)
	case RefExample:
		return find(c.Examples, ref.ID)
	case RefSecurityScheme:
		return find(c.SecuritySchemes, ref.ID)
	case RefLink:
		return find(c.Links, ref.ID)
	case RefCallback:
		return find(c.Callbacks, ref.ID)
	case RefChannel:
		return find(c.Channels, ref.ID)
	}
	return nil, false
}

func find[T interface {
	comparable
	Referenceable
}](m map[string]T, id string) (Referenceable, bool) {
	var zero T
	v, ok := m[id]
	if !ok || v == zero {
		return nil, false
	}
	return v, true
}

// AssignReferences stamps every component, and every root tag, with a
// resolved Reference naming its own location. Elements that already carry a
// reference (such as a component that is itself a "$ref") are left alone.
//
// A stamped element seen from a use site is reported as a reference, while
// its interior is traversed once from the components section that stamped
// it. An element bound into another document's components stays a
// reference there.
func (d *Document) AssignReferences() {
	if d == nil {
		return
	}
	for _, t := range d.Tags {
		if t != nil && t.Reference == nil {
			t.Reference = &Reference{Type: RefTag, ID: t.Name, owner: d}
		}
	}
	c := d.Components
	if c == nil {
		return
	}
	stamp(c, c.Schemas, RefSchema)
	stamp(c, c.Messages, RefMessage)
	stamp(c, c.Parameters, RefParameter)
	stamp(c, c.Responses, RefResponse)
	stamp(c, c.RequestBodies, RefRequestBody)
	stamp(c, c.Headers, RefHeader)
	stamp(c, c.Examples, RefExample)
	stamp(c, c.SecuritySchemes, RefSecurityScheme)
	stamp(c, c.Links, RefLink)
	stamp(c, c.Callbacks, RefCallback)
	stamp(c, c.Channels, RefChannel)
}

func stamp[T interface {
	comparable
	Referenceable
}](owner *Components, m map[string]T, typ ReferenceType) {
	var zero T
	for id, v := range m {
		if v == zero || v.GetReference() != nil {
			continue
		}
		v.setReference(&Reference{Type: typ, ID: id, owner: owner})
	}
}

func quote(s string) string {
	return `"` + s + `"`
}
