package walker

import (
	"context"
	"strings"

	"github.com/go-openapi/jsonpointer"
)

// WalkContext provides contextual information about the element being visited.
// It is owned by the Walker and only valid for the duration of a callback;
// visitors must copy anything they want to keep.
type WalkContext struct {
	// Name is the map key of the current element (component name, property
	// name, status code, media type, ...). Empty for list items and fields.
	Name string

	// IsComponent is true when the current element is an entry of the
	// components section, or a root-level tag.
	IsComponent bool

	walker *Walker
	ctx    context.Context
}

// Context returns the context.Context for cancellation and deadline propagation.
// Returns context.Background() if no context was set.
func (wc *WalkContext) Context() context.Context {
	if wc.ctx == nil {
		return context.Background()
	}
	return wc.ctx
}

// Path returns the document pointer of the current element,
// e.g. "#/paths/~1pets/get/responses/200".
func (wc *WalkContext) Path() string {
	return wc.walker.path.String()
}

// Child returns the pointer of a named child of the current element.
func (wc *WalkContext) Child(segment string) string {
	return wc.walker.path.Child(segment)
}

// Segments returns the unescaped path segments of the current element.
func (wc *WalkContext) Segments() []string {
	segs := wc.walker.path.Segments()
	for i, s := range segs {
		segs[i] = jsonpointer.Unescape(s)
	}
	return segs
}

// InComponents reports whether the current element lies within the
// components section.
func (wc *WalkContext) InComponents() bool {
	segs := wc.walker.path.Segments()
	return len(segs) > 0 && segs[0] == "components"
}

// Depth returns the number of elements above the current one.
func (wc *WalkContext) Depth() int {
	return wc.walker.depth
}

// String renders the current path.
func (wc *WalkContext) String() string {
	var b strings.Builder
	b.WriteString(wc.Path())
	if wc.IsComponent {
		b.WriteString(" (component)")
	}
	return b.String()
}
