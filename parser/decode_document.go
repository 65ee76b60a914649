package parser

import (
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asynctools/coerce"
	"github.com/erraggy/asynctools/dom"
)

func (d *decoder) document(n *yaml.Node) *dom.Document {
	doc := &dom.Document{}
	d.each(n, "document", func(key string, v *yaml.Node) {
		switch key {
		case "asyncapi":
			doc.AsyncAPI = d.str(v, key)
		case "openapi":
			doc.OpenAPI = d.str(v, key)
		case "id":
			doc.ID = d.str(v, key)
		case "defaultContentType":
			doc.DefaultContentType = d.str(v, key)
		case "info":
			doc.Info = d.info(v)
		case "servers":
			doc.Servers = d.servers(v)
		case "channels":
			doc.Channels = decodeMap(d, v, key, d.channel)
		case "paths":
			doc.Paths = decodeMap(d, v, key, d.pathItem)
		case "components":
			doc.Components = d.components(v)
		case "security":
			doc.Security = decodeList(d, v, key, d.securityRequirement)
		case "tags":
			doc.Tags = decodeList(d, v, key, d.tag)
		case "externalDocs":
			doc.ExternalDocs = d.externalDocs(v)
		default:
			d.extension(&doc.Extensions, key, v)
		}
	})
	if doc.AsyncAPI == "" && doc.OpenAPI == "" {
		d.errorf(n, "document declares neither an asyncapi nor an openapi version")
	}
	return doc
}

func (d *decoder) info(n *yaml.Node) *dom.Info {
	info := &dom.Info{}
	d.each(n, "info", func(key string, v *yaml.Node) {
		switch key {
		case "title":
			info.Title = d.str(v, key)
		case "description":
			info.Description = d.str(v, key)
		case "termsOfService":
			info.TermsOfService = d.str(v, key)
		case "contact":
			info.Contact = d.contact(v)
		case "license":
			info.License = d.license(v)
		case "version":
			info.Version = d.str(v, key)
		default:
			d.extension(&info.Extensions, key, v)
		}
	})
	return info
}

func (d *decoder) contact(n *yaml.Node) *dom.Contact {
	c := &dom.Contact{}
	d.each(n, "contact", func(key string, v *yaml.Node) {
		switch key {
		case "name":
			c.Name = d.str(v, key)
		case "url":
			c.URL = d.str(v, key)
		case "email":
			c.Email = d.str(v, key)
		default:
			d.extension(&c.Extensions, key, v)
		}
	})
	return c
}

func (d *decoder) license(n *yaml.Node) *dom.License {
	l := &dom.License{}
	d.each(n, "license", func(key string, v *yaml.Node) {
		switch key {
		case "name":
			l.Name = d.str(v, key)
		case "url":
			l.URL = d.str(v, key)
		default:
			d.extension(&l.Extensions, key, v)
		}
	})
	return l
}

func (d *decoder) externalDocs(n *yaml.Node) *dom.ExternalDocs {
	e := &dom.ExternalDocs{}
	d.each(n, "externalDocs", func(key string, v *yaml.Node) {
		switch key {
		case "description":
			e.Description = d.str(v, key)
		case "url":
			e.URL = d.str(v, key)
		default:
			d.extension(&e.Extensions, key, v)
		}
	})
	return e
}

// tag decodes a tag object, or a bare tag name as a reference to a root tag.
func (d *decoder) tag(n *yaml.Node) *dom.Tag {
	if n.Kind == yaml.ScalarNode {
		ref, err := dom.ParseReference(n.Value, dom.RefTag)
		if err != nil {
			d.errorf(n, "invalid tag name: %v", err)
			return &dom.Tag{Name: n.Value}
		}
		return dom.NewPlaceholder(ref).(*dom.Tag)
	}
	if ph, ok := placeholder[*dom.Tag](d, n, dom.RefTag); ok {
		return ph
	}
	t := &dom.Tag{}
	d.each(n, "tag", func(key string, v *yaml.Node) {
		switch key {
		case "name":
			t.Name = d.str(v, key)
		case "description":
			t.Description = d.str(v, key)
		case "externalDocs":
			t.ExternalDocs = d.externalDocs(v)
		default:
			d.extension(&t.Extensions, key, v)
		}
	})
	return t
}

// servers accepts an OpenAPI server list or an AsyncAPI map of named servers.
func (d *decoder) servers(n *yaml.Node) []*dom.Server {
	if n.Kind == yaml.MappingNode {
		var out []*dom.Server
		d.each(n, "servers", func(name string, v *yaml.Node) {
			s := d.server(v)
			s.Name = name
			out = append(out, s)
		})
		return out
	}
	return decodeList(d, n, "servers", d.server)
}

func (d *decoder) server(n *yaml.Node) *dom.Server {
	s := &dom.Server{}
	d.each(n, "server", func(key string, v *yaml.Node) {
		switch key {
		case "url":
			s.URL = d.str(v, key)
		case "protocol":
			s.Protocol = d.str(v, key)
		case "protocolVersion":
			s.ProtocolVersion = d.str(v, key)
		case "description":
			s.Description = d.str(v, key)
		case "variables":
			s.Variables = decodeMap(d, v, key, d.serverVariable)
		case "security":
			s.Security = decodeList(d, v, key, d.securityRequirement)
		default:
			d.extension(&s.Extensions, key, v)
		}
	})
	return s
}

func (d *decoder) serverVariable(n *yaml.Node) *dom.ServerVariable {
	sv := &dom.ServerVariable{}
	d.each(n, "server variable", func(key string, v *yaml.Node) {
		switch key {
		case "enum":
			sv.Enum = d.strings(v, key)
		case "default":
			sv.Default = d.str(v, key)
		case "description":
			sv.Description = d.str(v, key)
		default:
			d.extension(&sv.Extensions, key, v)
		}
	})
	return sv
}

// securityRequirement decodes {schemeName: [scopes]}. Keys become security
// scheme placeholders resolved against the components.
func (d *decoder) securityRequirement(n *yaml.Node) dom.SecurityRequirement {
	req := make(dom.SecurityRequirement)
	d.each(n, "security requirement", func(name string, v *yaml.Node) {
		ref, err := dom.ParseReference(name, dom.RefSecurityScheme)
		if err != nil {
			d.errorf(v, "invalid security scheme name: %v", err)
			return
		}
		scopes := []string{}
		if v.Kind == yaml.SequenceNode {
			scopes = d.strings(v, "scopes")
		} else if v.ShortTag() != "!!null" {
			d.errorf(v, "scopes of %q must be a sequence", name)
		}
		req[dom.NewPlaceholder(ref).(*dom.SecurityScheme)] = scopes
	})
	return req
}

func (d *decoder) components(n *yaml.Node) *dom.Components {
	c := &dom.Components{}
	d.each(n, "components", func(key string, v *yaml.Node) {
		switch key {
		case "schemas":
			c.Schemas = decodeMap(d, v, key, d.schema)
		case "messages":
			c.Messages = decodeMap(d, v, key, d.message)
		case "parameters":
			c.Parameters = decodeMap(d, v, key, d.parameter)
		case "responses":
			c.Responses = decodeMap(d, v, key, d.response)
		case "requestBodies":
			c.RequestBodies = decodeMap(d, v, key, d.requestBody)
		case "headers":
			c.Headers = decodeMap(d, v, key, d.header)
		case "examples":
			c.Examples = decodeMap(d, v, key, d.example)
			coerceExamples(c.Examples, nil)
		case "securitySchemes":
			c.SecuritySchemes = decodeMap(d, v, key, d.securityScheme)
		case "links":
			c.Links = decodeMap(d, v, key, d.link)
		case "callbacks":
			c.Callbacks = decodeMap(d, v, key, d.callback)
		case "channels":
			c.Channels = decodeMap(d, v, key, d.channel)
		default:
			d.extension(&c.Extensions, key, v)
		}
	})
	return c
}

// coerceExamples types example values against the schema of their owner.
func coerceExamples(examples map[string]*dom.Example, schema *dom.Schema) {
	for _, e := range examples {
		if e != nil && !e.UnresolvedReference && e.Value != nil {
			e.Value = coerce.Value(e.Value, schema)
		}
	}
}
