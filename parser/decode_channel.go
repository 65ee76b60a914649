package parser

import (
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asynctools/coerce"
	"github.com/erraggy/asynctools/dom"
)

func (d *decoder) channel(n *yaml.Node) *dom.Channel {
	if ph, ok := placeholder[*dom.Channel](d, n, dom.RefChannel); ok {
		return ph
	}
	ch := &dom.Channel{}
	d.each(n, "channel", func(key string, v *yaml.Node) {
		switch key {
		case "description":
			ch.Description = d.str(v, key)
		case "servers":
			ch.Servers = d.strings(v, key)
		case "subscribe":
			ch.Subscribe = d.operation(v)
		case "publish":
			ch.Publish = d.operation(v)
		case "parameters":
			ch.Parameters = decodeMap(d, v, key, d.parameter)
		default:
			d.extension(&ch.Extensions, key, v)
		}
	})
	return ch
}

func (d *decoder) operation(n *yaml.Node) *dom.Operation {
	op := &dom.Operation{}
	d.each(n, "operation", func(key string, v *yaml.Node) {
		switch key {
		case "operationId":
			op.OperationID = d.str(v, key)
		case "summary":
			op.Summary = d.str(v, key)
		case "description":
			op.Description = d.str(v, key)
		case "tags":
			op.Tags = decodeList(d, v, key, d.tag)
		case "externalDocs":
			op.ExternalDocs = d.externalDocs(v)
		case "parameters":
			op.Parameters = decodeList(d, v, key, d.parameter)
		case "requestBody":
			op.RequestBody = d.requestBody(v)
		case "responses":
			op.Responses = decodeMap(d, v, key, d.response)
		case "callbacks":
			op.Callbacks = decodeMap(d, v, key, d.callback)
		case "deprecated":
			op.Deprecated = d.boolean(v, key)
		case "security":
			op.Security = decodeList(d, v, key, d.securityRequirement)
		case "servers":
			op.Servers = d.servers(v)
		case "message":
			op.Message = d.message(v)
		default:
			d.extension(&op.Extensions, key, v)
		}
	})
	return op
}

func (d *decoder) message(n *yaml.Node) *dom.Message {
	if ph, ok := placeholder[*dom.Message](d, n, dom.RefMessage); ok {
		return ph
	}
	m := &dom.Message{}
	var examples *yaml.Node
	d.each(n, "message", func(key string, v *yaml.Node) {
		switch key {
		case "messageId":
			m.MessageID = d.str(v, key)
		case "name":
			m.Name = d.str(v, key)
		case "title":
			m.Title = d.str(v, key)
		case "summary":
			m.Summary = d.str(v, key)
		case "description":
			m.Description = d.str(v, key)
		case "contentType":
			m.ContentType = d.str(v, key)
		case "schemaFormat":
			m.SchemaFormat = d.str(v, key)
		case "correlationId":
			if loc := lookup(v, "location"); loc != nil {
				m.CorrelationID = loc.Value
			}
		case "headers":
			m.Headers = d.schema(v)
		case "payload":
			m.Payload = d.schema(v)
		case "tags":
			m.Tags = decodeList(d, v, key, d.tag)
		case "externalDocs":
			m.ExternalDocs = d.externalDocs(v)
		case "examples":
			examples = v
		case "oneOf":
			m.OneOf = decodeList(d, v, key, d.message)
		default:
			d.extension(&m.Extensions, key, v)
		}
	})
	if examples != nil {
		// Each example is {headers, payload}; type both parts against the
		// message schemas.
		shape := &dom.Schema{Type: "object", Properties: map[string]*dom.Schema{
			"headers": m.Headers,
			"payload": m.Payload,
		}}
		m.Examples = decodeList(d, examples, "examples", func(v *yaml.Node) dom.Any {
			return coerce.Value(d.value(v), shape)
		})
	}
	return m
}
