package walker

import (
	"sort"

	"github.com/erraggy/asynctools/dom"
)

// sortedMapKeys returns sorted keys from any map with string keys.
func sortedMapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (w *Walker) walkDocument(doc *dom.Document) {
	if doc == nil || !w.enter(doc, false, "") {
		return
	}
	defer w.leave(doc, false, "")

	if doc.Info != nil {
		w.field("info", func() { w.walkInfo(doc.Info) })
	}
	each(w, "servers", doc.Servers, w.walkServer)
	eachKey(w, "channels", doc.Channels, func(name string, ch *dom.Channel) {
		w.walkChannel(ch, false, name)
	})
	eachKey(w, "paths", doc.Paths, func(name string, item *dom.PathItem) {
		w.walkPathItem(item, name)
	})
	if doc.Components != nil {
		w.field("components", func() { w.walkComponents(doc.Components) })
	}
	each(w, "security", doc.Security, w.walkSecurityRequirement)
	prev := w.home
	w.home = doc
	each(w, "tags", doc.Tags, func(t *dom.Tag) {
		if t != nil {
			w.walkTag(t, true, t.Name)
		}
	})
	w.home = prev
	if doc.ExternalDocs != nil {
		w.field("externalDocs", func() { w.walkExternalDocs(doc.ExternalDocs) })
	}
}

func (w *Walker) walkInfo(info *dom.Info) {
	if info == nil || !w.enter(info, false, "") {
		return
	}
	defer w.leave(info, false, "")

	if info.Contact != nil {
		w.field("contact", func() { w.walkLeaf(info.Contact) })
	}
	if info.License != nil {
		w.field("license", func() { w.walkLeaf(info.License) })
	}
}

func (w *Walker) walkExternalDocs(docs *dom.ExternalDocs) {
	if docs != nil {
		w.walkLeaf(docs)
	}
}

func (w *Walker) walkServer(server *dom.Server) {
	if server == nil || !w.enter(server, false, server.Name) {
		return
	}
	defer w.leave(server, false, server.Name)

	eachKey(w, "variables", server.Variables, func(name string, v *dom.ServerVariable) {
		if v != nil && w.enter(v, false, name) {
			w.leave(v, false, name)
		}
	})
	each(w, "security", server.Security, w.walkSecurityRequirement)
}

func (w *Walker) walkTag(tag *dom.Tag, isComponent bool, name string) {
	if tag == nil || w.asReference(tag, isComponent, name) || !w.enter(tag, isComponent, name) {
		return
	}
	defer w.leave(tag, isComponent, name)

	if tag.ExternalDocs != nil {
		w.field("externalDocs", func() { w.walkExternalDocs(tag.ExternalDocs) })
	}
}

func (w *Walker) walkComponents(c *dom.Components) {
	if c == nil || !w.enter(c, false, "") {
		return
	}
	defer w.leave(c, false, "")

	prev := w.home
	w.home = c
	defer func() { w.home = prev }()

	eachKey(w, "schemas", c.Schemas, func(name string, s *dom.Schema) {
		w.walkSchema(s, true, name)
	})
	eachKey(w, "messages", c.Messages, func(name string, m *dom.Message) {
		w.walkMessage(m, true, name)
	})
	eachKey(w, "parameters", c.Parameters, func(name string, p *dom.Parameter) {
		w.walkParameter(p, true, name)
	})
	eachKey(w, "responses", c.Responses, func(name string, r *dom.Response) {
		w.walkResponse(r, true, name)
	})
	eachKey(w, "requestBodies", c.RequestBodies, func(name string, r *dom.RequestBody) {
		w.walkRequestBody(r, true, name)
	})
	eachKey(w, "headers", c.Headers, func(name string, h *dom.Header) {
		w.walkHeader(h, true, name)
	})
	eachKey(w, "examples", c.Examples, func(name string, e *dom.Example) {
		w.walkExample(e, true, name)
	})
	eachKey(w, "securitySchemes", c.SecuritySchemes, func(name string, s *dom.SecurityScheme) {
		w.walkSecurityScheme(s, true, name)
	})
	eachKey(w, "links", c.Links, func(name string, l *dom.Link) {
		w.walkLink(l, true, name)
	})
	eachKey(w, "callbacks", c.Callbacks, func(name string, cb *dom.Callback) {
		w.walkCallback(cb, true, name)
	})
	eachKey(w, "channels", c.Channels, func(name string, ch *dom.Channel) {
		w.walkChannel(ch, true, name)
	})
}

// walkSecurityRequirement visits the requirement, then each scheme key. Keys
// are references to components and are reported through VisitReference.
func (w *Walker) walkSecurityRequirement(req dom.SecurityRequirement) {
	if req == nil || !w.enter(req, false, "") {
		return
	}
	defer w.leave(req, false, "")

	for _, scheme := range req.Schemes() {
		if w.stopped {
			return
		}
		name := schemeKey(scheme)
		w.field(name, func() { w.walkSecurityScheme(scheme, false, name) })
	}
}

func schemeKey(s *dom.SecurityScheme) string {
	if s != nil && s.Reference != nil {
		return s.Reference.ID
	}
	if s != nil {
		return string(s.Type)
	}
	return ""
}

func (w *Walker) walkSecurityScheme(s *dom.SecurityScheme, isComponent bool, name string) {
	if s == nil || w.asReference(s, isComponent, name) || !w.enter(s, isComponent, name) {
		return
	}
	defer w.leave(s, isComponent, name)

	if s.Flows != nil {
		w.field("flows", func() { w.walkOAuthFlows(s.Flows) })
	}
}

func (w *Walker) walkOAuthFlows(flows *dom.OAuthFlows) {
	if flows == nil || !w.enter(flows, false, "") {
		return
	}
	defer w.leave(flows, false, "")

	for _, f := range []struct {
		name string
		flow *dom.OAuthFlow
	}{
		{"implicit", flows.Implicit},
		{"password", flows.Password},
		{"clientCredentials", flows.ClientCredentials},
		{"authorizationCode", flows.AuthorizationCode},
	} {
		if f.flow != nil {
			w.field(f.name, func() { w.walkLeaf(f.flow) })
		}
	}
}
