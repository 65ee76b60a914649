package parser

import (
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asynctools/coerce"
	"github.com/erraggy/asynctools/dom"
)

func (d *decoder) pathItem(n *yaml.Node) *dom.PathItem {
	item := &dom.PathItem{}
	d.each(n, "path item", func(key string, v *yaml.Node) {
		switch key {
		case "summary":
			item.Summary = d.str(v, key)
		case "description":
			item.Description = d.str(v, key)
		case "servers":
			item.Servers = d.servers(v)
		case "parameters":
			item.Parameters = decodeList(d, v, key, d.parameter)
		case "$ref":
			d.errorf(v, "path item references are not supported")
		default:
			typ := dom.OperationType(key)
			if isOperationType(typ) {
				if item.Operations == nil {
					item.Operations = make(map[dom.OperationType]*dom.Operation)
				}
				item.Operations[typ] = d.operation(v)
				return
			}
			d.extension(&item.Extensions, key, v)
		}
	})
	return item
}

func isOperationType(typ dom.OperationType) bool {
	for _, t := range dom.OperationTypes {
		if t == typ {
			return true
		}
	}
	return false
}

func (d *decoder) callback(n *yaml.Node) *dom.Callback {
	if ph, ok := placeholder[*dom.Callback](d, n, dom.RefCallback); ok {
		return ph
	}
	cb := &dom.Callback{PathItems: make(map[string]*dom.PathItem)}
	d.each(n, "callback", func(key string, v *yaml.Node) {
		if strings.HasPrefix(key, "x-") {
			d.extension(&cb.Extensions, key, v)
			return
		}
		cb.PathItems[key] = d.pathItem(v)
	})
	return cb
}

func (d *decoder) parameter(n *yaml.Node) *dom.Parameter {
	if ph, ok := placeholder[*dom.Parameter](d, n, dom.RefParameter); ok {
		return ph
	}
	p := &dom.Parameter{}
	d.each(n, "parameter", func(key string, v *yaml.Node) {
		switch key {
		case "name":
			p.Name = d.str(v, key)
		case "in":
			p.In = dom.ParameterLocation(d.str(v, key))
		case "description":
			p.Description = d.str(v, key)
		case "required":
			p.Required = d.boolean(v, key)
		case "deprecated":
			p.Deprecated = d.boolean(v, key)
		case "allowEmptyValue":
			p.AllowEmptyValue = d.boolean(v, key)
		case "style":
			p.Style = d.str(v, key)
		case "explode":
			p.Explode = d.boolPtr(v, key)
		case "location":
			p.Location = d.str(v, key)
		case "schema":
			p.Schema = d.schema(v)
		case "example":
			p.Example = d.value(v)
		case "examples":
			p.Examples = decodeMap(d, v, key, d.example)
		case "content":
			p.Content = decodeMap(d, v, key, d.mediaType)
		default:
			d.extension(&p.Extensions, key, v)
		}
	})
	if p.Example != nil {
		p.Example = coerce.Value(p.Example, p.Schema)
	}
	coerceExamples(p.Examples, p.Schema)
	return p
}

func (d *decoder) requestBody(n *yaml.Node) *dom.RequestBody {
	if ph, ok := placeholder[*dom.RequestBody](d, n, dom.RefRequestBody); ok {
		return ph
	}
	rb := &dom.RequestBody{}
	d.each(n, "request body", func(key string, v *yaml.Node) {
		switch key {
		case "description":
			rb.Description = d.str(v, key)
		case "content":
			rb.Content = decodeMap(d, v, key, d.mediaType)
		case "required":
			rb.Required = d.boolean(v, key)
		default:
			d.extension(&rb.Extensions, key, v)
		}
	})
	return rb
}

func (d *decoder) mediaType(n *yaml.Node) *dom.MediaType {
	mt := &dom.MediaType{}
	d.each(n, "media type", func(key string, v *yaml.Node) {
		switch key {
		case "schema":
			mt.Schema = d.schema(v)
		case "example":
			mt.Example = d.value(v)
		case "examples":
			mt.Examples = decodeMap(d, v, key, d.example)
		default:
			d.extension(&mt.Extensions, key, v)
		}
	})
	if mt.Example != nil {
		mt.Example = coerce.Value(mt.Example, mt.Schema)
	}
	coerceExamples(mt.Examples, mt.Schema)
	return mt
}

func (d *decoder) response(n *yaml.Node) *dom.Response {
	if ph, ok := placeholder[*dom.Response](d, n, dom.RefResponse); ok {
		return ph
	}
	r := &dom.Response{}
	d.each(n, "response", func(key string, v *yaml.Node) {
		switch key {
		case "description":
			r.Description = d.str(v, key)
		case "headers":
			r.Headers = decodeMap(d, v, key, d.header)
		case "content":
			r.Content = decodeMap(d, v, key, d.mediaType)
		case "links":
			r.Links = decodeMap(d, v, key, d.link)
		default:
			d.extension(&r.Extensions, key, v)
		}
	})
	return r
}

func (d *decoder) header(n *yaml.Node) *dom.Header {
	if ph, ok := placeholder[*dom.Header](d, n, dom.RefHeader); ok {
		return ph
	}
	h := &dom.Header{}
	d.each(n, "header", func(key string, v *yaml.Node) {
		switch key {
		case "description":
			h.Description = d.str(v, key)
		case "required":
			h.Required = d.boolean(v, key)
		case "deprecated":
			h.Deprecated = d.boolean(v, key)
		case "style":
			h.Style = d.str(v, key)
		case "explode":
			h.Explode = d.boolPtr(v, key)
		case "schema":
			h.Schema = d.schema(v)
		case "example":
			h.Example = d.value(v)
		case "examples":
			h.Examples = decodeMap(d, v, key, d.example)
		case "content":
			h.Content = decodeMap(d, v, key, d.mediaType)
		default:
			d.extension(&h.Extensions, key, v)
		}
	})
	if h.Example != nil {
		h.Example = coerce.Value(h.Example, h.Schema)
	}
	coerceExamples(h.Examples, h.Schema)
	return h
}

// example decodes an example object. Its value is left uncoerced for the
// owner to type against its schema.
func (d *decoder) example(n *yaml.Node) *dom.Example {
	if ph, ok := placeholder[*dom.Example](d, n, dom.RefExample); ok {
		return ph
	}
	e := &dom.Example{}
	d.each(n, "example", func(key string, v *yaml.Node) {
		switch key {
		case "summary":
			e.Summary = d.str(v, key)
		case "description":
			e.Description = d.str(v, key)
		case "value":
			e.Value = d.value(v)
		case "externalValue":
			e.ExternalValue = d.str(v, key)
		default:
			d.extension(&e.Extensions, key, v)
		}
	})
	return e
}

func (d *decoder) link(n *yaml.Node) *dom.Link {
	if ph, ok := placeholder[*dom.Link](d, n, dom.RefLink); ok {
		return ph
	}
	l := &dom.Link{}
	d.each(n, "link", func(key string, v *yaml.Node) {
		switch key {
		case "operationRef":
			l.OperationRef = d.str(v, key)
		case "operationId":
			l.OperationID = d.str(v, key)
		case "parameters":
			l.Parameters = decodeMap(d, v, key, func(pv *yaml.Node) dom.Any {
				return coerce.Value(d.value(pv), nil)
			})
		case "requestBody":
			l.RequestBody = coerce.Value(d.value(v), nil)
		case "description":
			l.Description = d.str(v, key)
		case "server":
			l.Server = d.server(v)
		default:
			d.extension(&l.Extensions, key, v)
		}
	})
	return l
}
