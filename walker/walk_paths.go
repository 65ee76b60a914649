package walker

import (
	"github.com/erraggy/asynctools/dom"
)

// walkPathItem walks a path item. Path items reached through callbacks may
// form cycles; an item already on the stack is skipped.
func (w *Walker) walkPathItem(item *dom.PathItem, name string) {
	if item == nil {
		return
	}
	if _, ok := w.pathItems[item]; ok {
		return
	}
	if !w.enter(item, false, name) {
		return
	}
	w.pathItems[item] = struct{}{}
	defer delete(w.pathItems, item)
	defer w.leave(item, false, name)

	for _, typ := range dom.OperationTypes {
		if op := item.Operations[typ]; op != nil {
			w.field(string(typ), func() { w.walkOperation(op, string(typ)) })
		}
	}
	each(w, "servers", item.Servers, w.walkServer)
	each(w, "parameters", item.Parameters, func(p *dom.Parameter) { w.walkParameter(p, false, "") })
}

func (w *Walker) walkCallback(cb *dom.Callback, isComponent bool, name string) {
	if cb == nil || w.asReference(cb, isComponent, name) || !w.enter(cb, isComponent, name) {
		return
	}
	defer w.leave(cb, isComponent, name)

	for _, expr := range sortedMapKeys(cb.PathItems) {
		if w.stopped {
			return
		}
		item := cb.PathItems[expr]
		w.field(expr, func() { w.walkPathItem(item, expr) })
	}
}

func (w *Walker) walkParameter(p *dom.Parameter, isComponent bool, name string) {
	if p == nil || w.asReference(p, isComponent, name) || !w.enter(p, isComponent, name) {
		return
	}
	defer w.leave(p, isComponent, name)

	if p.Schema != nil {
		w.field("schema", func() { w.walkSchema(p.Schema, false, "") })
	}
	w.walkExamples(p.Examples)
	w.walkContent(p.Content)
}

func (w *Walker) walkRequestBody(rb *dom.RequestBody, isComponent bool, name string) {
	if rb == nil || w.asReference(rb, isComponent, name) || !w.enter(rb, isComponent, name) {
		return
	}
	defer w.leave(rb, isComponent, name)

	w.walkContent(rb.Content)
}

func (w *Walker) walkContent(content map[string]*dom.MediaType) {
	eachKey(w, "content", content, func(mediaType string, mt *dom.MediaType) {
		w.walkMediaType(mt, mediaType)
	})
}

func (w *Walker) walkMediaType(mt *dom.MediaType, name string) {
	if mt == nil || !w.enter(mt, false, name) {
		return
	}
	defer w.leave(mt, false, name)

	if mt.Schema != nil {
		w.field("schema", func() { w.walkSchema(mt.Schema, false, "") })
	}
	w.walkExamples(mt.Examples)
}

func (w *Walker) walkResponse(r *dom.Response, isComponent bool, name string) {
	if r == nil || w.asReference(r, isComponent, name) || !w.enter(r, isComponent, name) {
		return
	}
	defer w.leave(r, isComponent, name)

	eachKey(w, "headers", r.Headers, func(key string, h *dom.Header) {
		w.walkHeader(h, false, key)
	})
	w.walkContent(r.Content)
	eachKey(w, "links", r.Links, func(key string, l *dom.Link) {
		w.walkLink(l, false, key)
	})
}

func (w *Walker) walkHeader(h *dom.Header, isComponent bool, name string) {
	if h == nil || w.asReference(h, isComponent, name) || !w.enter(h, isComponent, name) {
		return
	}
	defer w.leave(h, isComponent, name)

	if h.Schema != nil {
		w.field("schema", func() { w.walkSchema(h.Schema, false, "") })
	}
	w.walkExamples(h.Examples)
	w.walkContent(h.Content)
}

func (w *Walker) walkExamples(examples map[string]*dom.Example) {
	eachKey(w, "examples", examples, func(key string, e *dom.Example) {
		w.walkExample(e, false, key)
	})
}

func (w *Walker) walkExample(e *dom.Example, isComponent bool, name string) {
	if e == nil || w.asReference(e, isComponent, name) || !w.enter(e, isComponent, name) {
		return
	}
	w.leave(e, isComponent, name)
}

func (w *Walker) walkLink(l *dom.Link, isComponent bool, name string) {
	if l == nil || w.asReference(l, isComponent, name) || !w.enter(l, isComponent, name) {
		return
	}
	defer w.leave(l, isComponent, name)

	if l.Server != nil {
		w.field("server", func() { w.walkServer(l.Server) })
	}
}
