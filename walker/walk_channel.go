package walker

import (
	"github.com/erraggy/asynctools/dom"
)

func (w *Walker) walkChannel(ch *dom.Channel, isComponent bool, name string) {
	if ch == nil || w.asReference(ch, isComponent, name) || !w.enter(ch, isComponent, name) {
		return
	}
	defer w.leave(ch, isComponent, name)

	if ch.Subscribe != nil {
		w.field("subscribe", func() { w.walkOperation(ch.Subscribe, "subscribe") })
	}
	if ch.Publish != nil {
		w.field("publish", func() { w.walkOperation(ch.Publish, "publish") })
	}
	eachKey(w, "parameters", ch.Parameters, func(key string, p *dom.Parameter) {
		w.walkParameter(p, false, key)
	})
}

// walkOperation walks a channel or path item operation. name is the
// operation type ("publish", "get", ...).
func (w *Walker) walkOperation(op *dom.Operation, name string) {
	if op == nil || !w.enter(op, false, name) {
		return
	}
	defer w.leave(op, false, name)

	each(w, "tags", op.Tags, func(t *dom.Tag) { w.walkTag(t, false, "") })
	if op.ExternalDocs != nil {
		w.field("externalDocs", func() { w.walkExternalDocs(op.ExternalDocs) })
	}
	each(w, "parameters", op.Parameters, func(p *dom.Parameter) { w.walkParameter(p, false, "") })
	if op.RequestBody != nil {
		w.field("requestBody", func() { w.walkRequestBody(op.RequestBody, false, "") })
	}
	eachKey(w, "responses", op.Responses, func(code string, r *dom.Response) {
		w.walkResponse(r, false, code)
	})
	eachKey(w, "callbacks", op.Callbacks, func(key string, cb *dom.Callback) {
		w.walkCallback(cb, false, key)
	})
	each(w, "security", op.Security, w.walkSecurityRequirement)
	each(w, "servers", op.Servers, w.walkServer)
	if op.Message != nil {
		w.field("message", func() { w.walkMessage(op.Message, false, "") })
	}
}

func (w *Walker) walkMessage(m *dom.Message, isComponent bool, name string) {
	if m == nil || w.asReference(m, isComponent, name) || !w.enter(m, isComponent, name) {
		return
	}
	defer w.leave(m, isComponent, name)

	if m.Headers != nil {
		w.field("headers", func() { w.walkSchema(m.Headers, false, "") })
	}
	if m.Payload != nil {
		w.field("payload", func() { w.walkSchema(m.Payload, false, "") })
	}
	each(w, "tags", m.Tags, func(t *dom.Tag) { w.walkTag(t, false, "") })
	if m.ExternalDocs != nil {
		w.field("externalDocs", func() { w.walkExternalDocs(m.ExternalDocs) })
	}
	each(w, "oneOf", m.OneOf, func(alt *dom.Message) { w.walkMessage(alt, false, "") })
}
