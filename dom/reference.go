package dom

import (
	"fmt"
	"strings"

	"github.com/go-openapi/jsonpointer"

	"github.com/erraggy/asynctools/aserrors"
	"github.com/erraggy/asynctools/internal/pathutil"
)

// ReferenceType names the component collection a reference points into.
// Values match the segment used under "#/components/".
type ReferenceType string

// Reference types.
const (
	RefSchema         ReferenceType = "schemas"
	RefMessage        ReferenceType = "messages"
	RefParameter      ReferenceType = "parameters"
	RefResponse       ReferenceType = "responses"
	RefRequestBody    ReferenceType = "requestBodies"
	RefHeader         ReferenceType = "headers"
	RefExample        ReferenceType = "examples"
	RefSecurityScheme ReferenceType = "securitySchemes"
	RefLink           ReferenceType = "links"
	RefCallback       ReferenceType = "callbacks"
	RefChannel        ReferenceType = "channels"
	RefTag            ReferenceType = "tags"
)

// ReferenceTypes lists every reference type in components order.
var ReferenceTypes = []ReferenceType{
	RefSchema, RefMessage, RefParameter, RefResponse, RefRequestBody, RefHeader,
	RefExample, RefSecurityScheme, RefLink, RefCallback, RefChannel, RefTag,
}

// IsValid reports whether t is a known reference type.
func (t ReferenceType) IsValid() bool {
	for _, known := range ReferenceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseReferenceType maps a display name to its ReferenceType.
func ParseReferenceType(name string) (ReferenceType, bool) {
	t := ReferenceType(name)
	return t, t.IsValid()
}

// Reference is a parsed "$ref" target.
//
// A local reference has an empty ExternalResource. An external reference
// whose fragment does not point into components keeps the raw fragment
// pointer (e.g. "/properties/name") as its ID.
type Reference struct {
	ExternalResource string
	Type             ReferenceType
	ID               string

	// owner is the Components (or, for tags, the Document) that stamped
	// this reference in AssignReferences. Nil for parsed references.
	owner Element
}

// BelongsTo reports whether the element carrying r may be treated as an
// entry of container. It is false only when r was stamped by a different
// Components or Document, i.e. the element was bound in from another document.
func (r *Reference) BelongsTo(container Element) bool {
	return r != nil && (r.owner == nil || r.owner == container)
}

// IsExternal reports whether the reference names another resource.
func (r *Reference) IsExternal() bool {
	return r != nil && r.ExternalResource != ""
}

// IsLocal reports whether the reference targets the current document.
func (r *Reference) IsLocal() bool {
	return r != nil && r.ExternalResource == ""
}

// String renders the reference in "$ref" form. Local tags and security
// schemes render as their bare names.
func (r *Reference) String() string {
	if r == nil {
		return ""
	}
	if !r.IsExternal() {
		if r.Type == RefTag || r.Type == RefSecurityScheme {
			return r.ID
		}
		return pathutil.ComponentRef(string(r.Type), r.ID)
	}
	if r.ID == "" {
		return r.ExternalResource
	}
	if strings.HasPrefix(r.ID, "/") {
		return r.ExternalResource + "#" + r.ID
	}
	return r.ExternalResource + pathutil.ComponentRef(string(r.Type), r.ID)
}

// ParseReference parses a "$ref" string for a slot of type typ.
//
// Accepted forms:
//   - "name": a bare tag or security scheme name (local), otherwise an
//     external resource with no fragment
//   - "#/components/{kind}/{id}": local component; extra segments are ignored
//   - "resource#/components/{kind}/{id}": component of an external resource
//   - "resource#/any/pointer": external fragment, ID holds the pointer
//
// A components fragment whose kind differs from typ is an error.
func ParseReference(ref string, typ ReferenceType) (*Reference, error) {
	if ref == "" {
		return nil, referenceError(ref, "reference is empty")
	}
	parts := strings.Split(ref, "#")
	switch len(parts) {
	case 1:
		if typ == RefTag || typ == RefSecurityScheme {
			return &Reference{Type: typ, ID: ref}, nil
		}
		return &Reference{ExternalResource: ref, Type: typ}, nil
	case 2:
	default:
		return nil, referenceError(ref, "reference contains more than one '#'")
	}

	resource, fragment := parts[0], parts[1]
	if resource == "" {
		if !strings.HasPrefix(fragment, "/components/") {
			return nil, referenceError(ref, "local reference must point into components")
		}
		kind, id, err := parseComponentFragment(fragment, typ)
		if err != nil {
			return nil, referenceError(ref, err.Error())
		}
		return &Reference{Type: kind, ID: id}, nil
	}

	out := &Reference{ExternalResource: resource, Type: typ}
	if strings.HasPrefix(fragment, "/components/") {
		kind, id, err := parseComponentFragment(fragment, typ)
		if err != nil {
			return nil, referenceError(ref, err.Error())
		}
		out.Type, out.ID = kind, id
		return out, nil
	}
	out.ID = fragment
	return out, nil
}

// parseComponentFragment splits "/components/{kind}/{id}[/...]".
func parseComponentFragment(fragment string, typ ReferenceType) (ReferenceType, string, error) {
	segments := strings.Split(fragment, "/")
	if len(segments) < 4 || segments[3] == "" {
		return "", "", fmt.Errorf("component reference %q has no id", fragment)
	}
	kind := ReferenceType(jsonpointer.Unescape(segments[2]))
	if !kind.IsValid() {
		return "", "", fmt.Errorf("unknown component type %q", kind)
	}
	if typ != "" && kind != typ {
		return "", "", fmt.Errorf("expected a %s reference, got %s", typ, kind)
	}
	return kind, jsonpointer.Unescape(segments[3]), nil
}

func referenceError(ref, msg string) error {
	return &aserrors.ReferenceError{Ref: ref, RefType: aserrors.RefTypeLocal, Message: msg}
}

// Referenceable is implemented by elements that may stand for a "$ref".
type Referenceable interface {
	Element
	// GetReference returns the element's reference, or nil if it has none.
	GetReference() *Reference
	// IsUnresolved reports whether the element is a placeholder.
	IsUnresolved() bool
	setReference(ref *Reference)
}

// GetReference returns the reference the element was parsed from or stamped
// with, or nil.
func (s *Schema) GetReference() *Reference         { return s.Reference }
func (m *Message) GetReference() *Reference        { return m.Reference }
func (p *Parameter) GetReference() *Reference      { return p.Reference }
func (r *Response) GetReference() *Reference       { return r.Reference }
func (r *RequestBody) GetReference() *Reference    { return r.Reference }
func (h *Header) GetReference() *Reference         { return h.Reference }
func (e *Example) GetReference() *Reference        { return e.Reference }
func (s *SecurityScheme) GetReference() *Reference { return s.Reference }
func (l *Link) GetReference() *Reference           { return l.Reference }
func (c *Callback) GetReference() *Reference       { return c.Reference }
func (t *Tag) GetReference() *Reference            { return t.Reference }
func (c *Channel) GetReference() *Reference        { return c.Reference }

// IsUnresolved reports whether the element is a placeholder for a reference
// that has not been bound to its target.
func (s *Schema) IsUnresolved() bool         { return s.UnresolvedReference }
func (m *Message) IsUnresolved() bool        { return m.UnresolvedReference }
func (p *Parameter) IsUnresolved() bool      { return p.UnresolvedReference }
func (r *Response) IsUnresolved() bool       { return r.UnresolvedReference }
func (r *RequestBody) IsUnresolved() bool    { return r.UnresolvedReference }
func (h *Header) IsUnresolved() bool         { return h.UnresolvedReference }
func (e *Example) IsUnresolved() bool        { return e.UnresolvedReference }
func (s *SecurityScheme) IsUnresolved() bool { return s.UnresolvedReference }
func (l *Link) IsUnresolved() bool           { return l.UnresolvedReference }
func (c *Callback) IsUnresolved() bool       { return c.UnresolvedReference }
func (t *Tag) IsUnresolved() bool            { return t.UnresolvedReference }
func (c *Channel) IsUnresolved() bool        { return c.UnresolvedReference }

func (s *Schema) setReference(ref *Reference)         { s.Reference = ref }
func (m *Message) setReference(ref *Reference)        { m.Reference = ref }
func (p *Parameter) setReference(ref *Reference)      { p.Reference = ref }
func (r *Response) setReference(ref *Reference)       { r.Reference = ref }
func (r *RequestBody) setReference(ref *Reference)    { r.Reference = ref }
func (h *Header) setReference(ref *Reference)         { h.Reference = ref }
func (e *Example) setReference(ref *Reference)        { e.Reference = ref }
func (s *SecurityScheme) setReference(ref *Reference) { s.Reference = ref }
func (l *Link) setReference(ref *Reference)           { l.Reference = ref }
func (c *Callback) setReference(ref *Reference)       { c.Reference = ref }
func (t *Tag) setReference(ref *Reference)            { t.Reference = ref }
func (c *Channel) setReference(ref *Reference)        { c.Reference = ref }

// NewPlaceholder returns an unresolved element of the kind named by ref.Type.
// It returns nil when ref is nil or its type is unknown.
func NewPlaceholder(ref *Reference) Referenceable {
	if ref == nil {
		return nil
	}
	r := *ref
	switch ref.Type {
	case RefSchema:
		return &Schema{Reference: &r, UnresolvedReference: true}
	case RefMessage:
		return &Message{Reference: &r, UnresolvedReference: true}
	case RefParameter:
		return &Parameter{Reference: &r, UnresolvedReference: true}
	case RefResponse:
		return &Response{Reference: &r, UnresolvedReference: true}
	case RefRequestBody:
		return &RequestBody{Reference: &r, UnresolvedReference: true}
	case RefHeader:
		return &Header{Reference: &r, UnresolvedReference: true}
	case RefExample:
		return &Example{Reference: &r, UnresolvedReference: true}
	case RefSecurityScheme:
		return &SecurityScheme{Reference: &r, UnresolvedReference: true}
	case RefLink:
		return &Link{Reference: &r, UnresolvedReference: true}
	case RefCallback:
		return &Callback{Reference: &r, UnresolvedReference: true}
	case RefTag:
		return &Tag{Name: r.ID, Reference: &r, UnresolvedReference: true}
	case RefChannel:
		return &Channel{Reference: &r, UnresolvedReference: true}
	}
	return nil
}
