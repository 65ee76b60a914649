package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/erraggy/asynctools/aserrors"
	"github.com/erraggy/asynctools/dom"
	"github.com/erraggy/asynctools/internal/pathutil"
	"github.com/erraggy/asynctools/walker"
)

// errNoWorkspace is recorded for external references of a document that is
// not attached to a workspace.
var errNoWorkspace = errors.New("cannot resolve external references for documents not in a workspace")

// ReferenceSource resolves references that name another resource.
// *workspace.Workspace implements it.
type ReferenceSource interface {
	ResolveReference(ref *dom.Reference) (dom.Element, error)
}

// ReferenceResolver is a walker.Visitor that replaces unresolved reference
// placeholders with their targets, rebinding the slot in the parent.
//
// Failures never stop the walk: they are recorded, and the slot keeps its
// placeholder. Operation and message tags that name no root tag are replaced
// by a minimal Tag carrying just the name.
type ReferenceResolver struct {
	doc           *dom.Document
	source        ReferenceSource
	resolveRemote bool
	logger        Logger

	wc   *walker.WalkContext
	errs []error
}

// ResolverOption configures a ReferenceResolver.
type ResolverOption func(*ReferenceResolver)

// WithWorkspace attaches a source for external references.
func WithWorkspace(source ReferenceSource) ResolverOption {
	return func(r *ReferenceResolver) {
		r.source = source
	}
}

// WithResolveRemoteReferences controls whether external references are
// resolved. When disabled, external placeholders are replaced by fresh
// placeholders and no error is recorded. Enabled by default.
func WithResolveRemoteReferences(enabled bool) ResolverOption {
	return func(r *ReferenceResolver) {
		r.resolveRemote = enabled
	}
}

// WithResolverLogger sets the logger for resolution diagnostics.
func WithResolverLogger(l Logger) ResolverOption {
	return func(r *ReferenceResolver) {
		r.logger = orNop(l)
	}
}

// NewReferenceResolver creates a resolver for doc.
func NewReferenceResolver(doc *dom.Document, opts ...ResolverOption) *ReferenceResolver {
	r := &ReferenceResolver{
		doc:           doc,
		resolveRemote: true,
		logger:        NopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveReferences resolves every reference in doc and returns the
// recorded failures.
func ResolveReferences(doc *dom.Document, opts ...ResolverOption) []error {
	r := NewReferenceResolver(doc, opts...)
	r.Resolve()
	return r.Errors()
}

// Resolve walks the document once, resolving references in place.
func (r *ReferenceResolver) Resolve() {
	if r.doc == nil {
		return
	}
	walker.Walk(r.doc, r)
	r.wc = nil
	if len(r.errs) > 0 {
		r.logger.Debug("reference resolution finished with errors", "count", len(r.errs))
	}
}

// Errors returns the failures recorded so far.
func (r *ReferenceResolver) Errors() []error {
	return r.errs
}

// VisitReference implements walker.Visitor. References are rebound by their
// parent, so nothing happens here.
func (r *ReferenceResolver) VisitReference(_ *walker.WalkContext, _ dom.Referenceable) walker.Action {
	return walker.Continue
}

// Visit implements walker.Visitor. It resolves the reference slots of el
// before the walker descends into them.
func (r *ReferenceResolver) Visit(wc *walker.WalkContext, el dom.Element) walker.Action {
	r.wc = wc
	switch e := el.(type) {
	case *dom.Document:
		resolveMap(r, e.Channels, "channels")
	case *dom.Components:
		r.resolveComponents(e)
	case *dom.Channel:
		resolveMap(r, e.Parameters, "parameters")
	case *dom.Operation:
		r.resolveTags(e.Tags)
		resolveSlice(r, e.Parameters, "parameters")
		resolveField(r, &e.RequestBody, "requestBody")
		resolveMap(r, e.Responses, "responses")
		resolveMap(r, e.Callbacks, "callbacks")
		resolveField(r, &e.Message, "message")
	case *dom.Message:
		resolveField(r, &e.Headers, "headers")
		resolveField(r, &e.Payload, "payload")
		r.resolveTags(e.Tags)
		resolveSlice(r, e.OneOf, "oneOf")
	case *dom.PathItem:
		resolveSlice(r, e.Parameters, "parameters")
	case *dom.Parameter:
		resolveField(r, &e.Schema, "schema")
		resolveMap(r, e.Examples, "examples")
	case *dom.MediaType:
		resolveField(r, &e.Schema, "schema")
		resolveMap(r, e.Examples, "examples")
	case *dom.Response:
		resolveMap(r, e.Headers, "headers")
		resolveMap(r, e.Links, "links")
	case *dom.Header:
		resolveField(r, &e.Schema, "schema")
		resolveMap(r, e.Examples, "examples")
	case *dom.Schema:
		resolveSlice(r, e.AllOf, "allOf")
		resolveSlice(r, e.AnyOf, "anyOf")
		resolveSlice(r, e.OneOf, "oneOf")
		resolveField(r, &e.Not, "not")
		resolveField(r, &e.Items, "items")
		resolveMap(r, e.Properties, "properties")
		resolveField(r, &e.AdditionalProperties, "additionalProperties")
	case dom.SecurityRequirement:
		r.resolveSecurityRequirement(e)
	}
	return walker.Continue
}

// resolveComponents rebinds components that are themselves references.
func (r *ReferenceResolver) resolveComponents(c *dom.Components) {
	resolveMap(r, c.Schemas, "schemas")
	resolveMap(r, c.Messages, "messages")
	resolveMap(r, c.Parameters, "parameters")
	resolveMap(r, c.Responses, "responses")
	resolveMap(r, c.RequestBodies, "requestBodies")
	resolveMap(r, c.Headers, "headers")
	resolveMap(r, c.Examples, "examples")
	resolveMap(r, c.SecuritySchemes, "securitySchemes")
	resolveMap(r, c.Links, "links")
	resolveMap(r, c.Callbacks, "callbacks")
	resolveMap(r, c.Channels, "channels")
}

// resolveTags binds tag names to root tags, synthesizing a Tag for unknown
// names.
func (r *ReferenceResolver) resolveTags(tags []*dom.Tag) {
	for i, t := range tags {
		if t == nil || !t.UnresolvedReference {
			continue
		}
		ref := t.Reference
		if ref.IsLocal() {
			if target, err := r.doc.ResolveReference(ref); err == nil {
				if tag, ok := target.(*dom.Tag); ok {
					tags[i] = tag
					continue
				}
			}
			tags[i] = &dom.Tag{Name: ref.ID}
			continue
		}
		resolveField(r, &tags[i], "tags", strconv.Itoa(i))
	}
}

// resolveSecurityRequirement rekeys placeholder schemes with their
// components, keeping each scope list.
func (r *ReferenceResolver) resolveSecurityRequirement(req dom.SecurityRequirement) {
	for _, key := range req.Schemes() {
		if key == nil || !key.UnresolvedReference {
			continue
		}
		target, ok := resolveTarget[*dom.SecurityScheme](r, key.Reference, key.Reference.ID)
		if !ok || target == key {
			continue
		}
		scopes := req[key]
		delete(req, key)
		req[target] = append(req[target], scopes...)
	}
}

// refElement is a referenceable element type that can be compared to nil.
type refElement interface {
	comparable
	dom.Referenceable
}

// resolveField rebinds *slot when it holds a placeholder.
func resolveField[T refElement](r *ReferenceResolver, slot *T, segments ...string) {
	var zero T
	cur := *slot
	if cur == zero || !cur.IsUnresolved() {
		return
	}
	if target, ok := resolveTarget[T](r, cur.GetReference(), segments...); ok {
		*slot = target
	}
}

func resolveSlice[T refElement](r *ReferenceResolver, items []T, segment string) {
	for i := range items {
		resolveField(r, &items[i], segment, strconv.Itoa(i))
	}
}

func resolveMap[T refElement](r *ReferenceResolver, m map[string]T, segment string) {
	var zero T
	for key, cur := range m {
		if cur == zero || !cur.IsUnresolved() {
			continue
		}
		if target, ok := resolveTarget[T](r, cur.GetReference(), segment, key); ok {
			m[key] = target
		}
	}
}

// resolveTarget finds the element ref names. It reports false when the slot
// must be left as it is. segments locate the slot below the current element.
func resolveTarget[T refElement](r *ReferenceResolver, ref *dom.Reference, segments ...string) (T, bool) {
	var zero T
	if ref == nil {
		return zero, false
	}

	var (
		el  dom.Element
		err error
	)
	switch {
	case ref.IsLocal():
		el, err = r.resolveLocal(ref)
	case !r.resolveRemote:
		return fresh[T](ref)
	case r.source == nil:
		r.fail(ref, segments, errNoWorkspace)
		return fresh[T](ref)
	default:
		el, err = r.source.ResolveReference(ref)
	}
	if err != nil {
		r.fail(ref, segments, err)
		return zero, false
	}

	target, ok := el.(T)
	if !ok || target == zero {
		r.fail(ref, segments, fmt.Errorf("target is a %s, not a %s", kindOf(el), zero.Kind()))
		return zero, false
	}
	return target, true
}

// resolveLocal looks ref up in the document, following components that are
// themselves local references.
func (r *ReferenceResolver) resolveLocal(ref *dom.Reference) (dom.Element, error) {
	if r.doc == nil {
		return nil, &aserrors.ReferenceError{RefType: aserrors.RefTypeLocal, Message: "no document to resolve against"}
	}
	seen := map[dom.Reference]bool{*ref: true}
	for {
		el, err := r.doc.ResolveReference(ref)
		if err != nil {
			return nil, err
		}
		next := el.GetReference()
		if !el.IsUnresolved() || !next.IsLocal() {
			return el, nil
		}
		if seen[*next] {
			return nil, &aserrors.ReferenceError{
				RefType: aserrors.RefTypeLocal,
				Message: "reference cycle through " + next.String(),
			}
		}
		seen[*next] = true
		ref = next
	}
}

// fresh returns a new placeholder for ref.
func fresh[T refElement](ref *dom.Reference) (T, bool) {
	ph, ok := dom.NewPlaceholder(ref).(T)
	return ph, ok
}

func kindOf(el dom.Element) string {
	if el == nil {
		return "nil"
	}
	return el.Kind().String()
}

// fail records a resolution failure tagged with the slot's pointer.
func (r *ReferenceResolver) fail(ref *dom.Reference, segments []string, err error) {
	var path string
	if r.wc != nil {
		path = pathutil.Join(append(r.wc.Segments(), segments...)...)
	}

	refErr := &aserrors.ReferenceError{
		Ref:        ref.String(),
		RefType:    aserrors.RefTypeLocal,
		Path:       path,
		IsExternal: ref.IsExternal(),
	}
	if ref.IsExternal() {
		refErr.RefType = aserrors.RefTypeExternal
	}
	var cause *aserrors.ReferenceError
	if errors.As(err, &cause) {
		refErr.Message = cause.Message
		if cause.RefType != "" {
			refErr.RefType = cause.RefType
		}
		refErr.Cause = cause.Cause
	} else if errors.Is(err, errNoWorkspace) {
		refErr.Message = err.Error()
	} else {
		refErr.Cause = err
	}

	r.errs = append(r.errs, refErr)
	r.logger.Debug("reference unresolved", "path", path, "ref", refErr.Ref, "error", refErr.Error())
}
