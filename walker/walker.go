package walker

import (
	"context"
	"fmt"

	"github.com/erraggy/asynctools/dom"
	"github.com/erraggy/asynctools/internal/pathutil"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Visitor receives callbacks from a Walker.
//
// Visit is called for every element the walker descends into, before its
// children. VisitReference is called instead of Visit when the element at the
// current call site is a reference: either an unresolved placeholder, or a
// shared component reached from outside the components section. The walker
// never descends into a reference.
type Visitor interface {
	Visit(wc *WalkContext, el dom.Element) Action
	VisitReference(wc *WalkContext, ref dom.Referenceable) Action
}

// PostVisitor is implemented by visitors that need a callback after an
// element's children have been walked. PostVisit is not called when Visit
// returned SkipChildren or Stop.
type PostVisitor interface {
	PostVisit(wc *WalkContext, el dom.Element)
}

// Funcs adapts plain functions to the Visitor interface.
// Nil functions return Continue.
type Funcs struct {
	OnElement   func(wc *WalkContext, el dom.Element) Action
	OnReference func(wc *WalkContext, ref dom.Referenceable) Action
}

// Visit implements Visitor.
func (f Funcs) Visit(wc *WalkContext, el dom.Element) Action {
	if f.OnElement == nil {
		return Continue
	}
	return f.OnElement(wc, el)
}

// VisitReference implements Visitor.
func (f Funcs) VisitReference(wc *WalkContext, ref dom.Referenceable) Action {
	if f.OnReference == nil {
		return Continue
	}
	return f.OnReference(wc, ref)
}

// Walker drives a Visitor over a document graph depth first, in a fixed
// per-kind child order, while tracking the document pointer of the current
// element.
//
// A Walker is not safe for concurrent use. Walking a graph never mutates it.
type Walker struct {
	visitor Visitor
	userCtx context.Context

	path    *pathutil.PathBuilder
	wc      *WalkContext
	depth   int
	stopped bool

	// home is the Components (or Document, for root tags) whose entries are
	// currently being walked.
	home dom.Element

	// Elements currently on the stack, for kinds that may form cycles.
	schemas   map[*dom.Schema]struct{}
	pathItems map[*dom.PathItem]struct{}
}

// Option configures a Walker.
type Option func(*Walker)

// WithUserContext sets the context available to visitors via wc.Context().
func WithUserContext(ctx context.Context) Option {
	return func(w *Walker) {
		w.userCtx = ctx
	}
}

// New creates a Walker that drives v.
func New(v Visitor, opts ...Option) *Walker {
	w := &Walker{visitor: v}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk traverses the graph rooted at root with v. A nil root is a no-op.
func Walk(root dom.Element, v Visitor, opts ...Option) {
	New(v, opts...).Walk(root)
}

// Walk traverses the graph rooted at root. The root element is always
// descended into unless it is an unresolved placeholder.
func (w *Walker) Walk(root dom.Element) {
	if root == nil || w.visitor == nil {
		return
	}
	w.path = pathutil.Acquire()
	defer func() {
		pathutil.Release(w.path)
		w.path = nil
	}()
	w.wc = &WalkContext{walker: w, ctx: w.userCtx}
	w.depth = 0
	w.stopped = false
	w.schemas = make(map[*dom.Schema]struct{})
	w.pathItems = make(map[*dom.PathItem]struct{})

	w.walkElement(root)
}

// Stopped reports whether the last walk ended because a visitor returned Stop.
func (w *Walker) Stopped() bool {
	return w.stopped
}

// walkElement dispatches on the root's kind.
func (w *Walker) walkElement(el dom.Element) {
	switch e := el.(type) {
	case *dom.Document:
		w.walkDocument(e)
	case *dom.Info:
		w.walkInfo(e)
	case *dom.Contact:
		if e != nil {
			w.walkLeaf(e)
		}
	case *dom.License:
		if e != nil {
			w.walkLeaf(e)
		}
	case *dom.ExternalDocs:
		w.walkExternalDocs(e)
	case *dom.Tag:
		w.walkTag(e, false, "")
	case *dom.Server:
		w.walkServer(e)
	case *dom.ServerVariable:
		if e != nil {
			w.walkLeaf(e)
		}
	case *dom.Channel:
		w.walkChannel(e, false, "")
	case *dom.PathItem:
		w.walkPathItem(e, "")
	case *dom.Operation:
		w.walkOperation(e, "")
	case *dom.Parameter:
		w.walkParameter(e, false, "")
	case *dom.RequestBody:
		w.walkRequestBody(e, false, "")
	case *dom.MediaType:
		w.walkMediaType(e, "")
	case *dom.Response:
		w.walkResponse(e, false, "")
	case *dom.Header:
		w.walkHeader(e, false, "")
	case *dom.Example:
		w.walkExample(e, false, "")
	case *dom.Link:
		w.walkLink(e, false, "")
	case *dom.Callback:
		w.walkCallback(e, false, "")
	case *dom.Message:
		w.walkMessage(e, false, "")
	case *dom.Schema:
		w.walkSchema(e, false, "")
	case *dom.Discriminator:
		if e != nil {
			w.walkLeaf(e)
		}
	case *dom.SecurityScheme:
		w.walkSecurityScheme(e, false, "")
	case *dom.OAuthFlows:
		w.walkOAuthFlows(e)
	case *dom.OAuthFlow:
		if e != nil {
			w.walkLeaf(e)
		}
	case dom.SecurityRequirement:
		w.walkSecurityRequirement(e)
	case *dom.Components:
		w.walkComponents(e)
	}
}

// enter visits el and reports whether its children should be walked.
// A true result must be paired with leave.
func (w *Walker) enter(el dom.Element, isComponent bool, name string) bool {
	if w.stopped {
		return false
	}
	w.wc.IsComponent = isComponent
	w.wc.Name = name
	switch w.visitor.Visit(w.wc, el) {
	case Stop:
		w.stopped = true
		return false
	case SkipChildren:
		return false
	}
	w.depth++
	return true
}

func (w *Walker) leave(el dom.Element, isComponent bool, name string) {
	w.depth--
	if w.stopped {
		return
	}
	if pv, ok := w.visitor.(PostVisitor); ok {
		w.wc.IsComponent = isComponent
		w.wc.Name = name
		pv.PostVisit(w.wc, el)
	}
}

// asReference reports whether el stands for a reference at this call site,
// calling VisitReference if so.
//
// Unresolved placeholders are always references. A resolved element with a
// Reference is only descended into where it is authoritative: as the walk
// root, or as the components entry (or root tag) its reference names, in the
// components section (or document) that stamped it.
func (w *Walker) asReference(el dom.Referenceable, isComponent bool, name string) bool {
	ref := el.GetReference()
	if ref == nil {
		return false
	}
	if !el.IsUnresolved() {
		if w.depth == 0 {
			return false
		}
		if isComponent && !ref.IsExternal() && ref.ID == name && ref.BelongsTo(w.home) {
			return false
		}
	}
	if w.stopped {
		return true
	}
	w.wc.IsComponent = isComponent
	w.wc.Name = name
	if w.visitor.VisitReference(w.wc, el) == Stop {
		w.stopped = true
	}
	return true
}

// walkLeaf visits an element that has no element children.
func (w *Walker) walkLeaf(el dom.Element) {
	if w.enter(el, false, "") {
		w.leave(el, false, "")
	}
}

// field walks a single named child.
func (w *Walker) field(segment string, fn func()) {
	if w.stopped {
		return
	}
	w.path.Push(segment)
	fn()
	w.path.Pop()
}

// each walks a list child, pushing the field name and then each index.
func each[T any](w *Walker, segment string, items []T, fn func(T)) {
	if len(items) == 0 || w.stopped {
		return
	}
	w.path.Push(segment)
	for i, item := range items {
		if w.stopped {
			break
		}
		w.path.PushIndex(i)
		fn(item)
		w.path.Pop()
	}
	w.path.Pop()
}

// eachKey walks a map child in sorted key order, pushing the field name and
// then each key.
func eachKey[T any](w *Walker, segment string, m map[string]T, fn func(string, T)) {
	if len(m) == 0 || w.stopped {
		return
	}
	w.path.Push(segment)
	for _, key := range sortedMapKeys(m) {
		if w.stopped {
			break
		}
		w.path.Push(key)
		fn(key, m[key])
		w.path.Pop()
	}
	w.path.Pop()
}
