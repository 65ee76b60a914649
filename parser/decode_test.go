package parser

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asynctools/dom"
)

func mustNode(t *testing.T, src string) *yaml.Node {
	t.Helper()
	root, err := rootMapping([]byte(src), "test.yaml")
	require.NoError(t, err)
	return root
}

func TestDecodeSchema(t *testing.T) {
	t.Run("constraints", func(t *testing.T) {
		d := &decoder{source: "test.yaml"}
		s := d.schema(mustNode(t, `
type: [integer, "null"]
format: int64
minimum: 1
exclusiveMaximum: 100
maxLength: 5
required: [a, b, a]
additionalProperties: false
default: 7
enum: [1, 2, 3]
x-order: 2
`))
		require.Empty(t, d.errs)
		assert.Equal(t, "integer", s.Type)
		assert.True(t, s.Nullable)
		assert.Equal(t, 1.0, *s.Minimum)
		assert.Equal(t, 100.0, *s.Maximum)
		assert.True(t, s.ExclusiveMaximum)
		assert.Equal(t, 5, *s.MaxLength)
		assert.Equal(t, []string{"a", "b"}, s.Required)
		assert.False(t, s.AdditionalPropertiesAllowed)
		assert.Equal(t, dom.Long(7), s.Default)
		assert.Equal(t, []dom.Any{dom.Long(1), dom.Long(2), dom.Long(3)}, s.Enum)
		assert.Equal(t, dom.Integer(2), s.Extensions["x-order"])
	})

	t.Run("boolean exclusive bound keeps the bound", func(t *testing.T) {
		d := &decoder{}
		s := d.schema(mustNode(t, "minimum: 0\nexclusiveMinimum: true\n"))
		require.Empty(t, d.errs)
		assert.True(t, s.ExclusiveMinimum)
		assert.Equal(t, 0.0, *s.Minimum)
	})

	t.Run("nested", func(t *testing.T) {
		d := &decoder{}
		s := d.schema(mustNode(t, `
type: object
properties:
  tags:
    type: array
    items:
      type: string
  meta:
    additionalProperties:
      type: integer
discriminator:
  propertyName: kind
  mapping:
    cat: '#/components/schemas/Cat'
oneOf:
  - $ref: '#/components/schemas/Cat'
  - type: object
`))
		require.Empty(t, d.errs)
		assert.True(t, s.AdditionalPropertiesAllowed)
		assert.Equal(t, "string", s.Properties["tags"].Items.Type)
		assert.Equal(t, "integer", s.Properties["meta"].AdditionalProperties.Type)
		assert.Equal(t, "kind", s.Discriminator.PropertyName)
		assert.Equal(t, "#/components/schemas/Cat", s.Discriminator.Mapping["cat"])
		require.Len(t, s.OneOf, 2)
		assert.True(t, s.OneOf[0].UnresolvedReference)
		assert.Equal(t, "Cat", s.OneOf[0].Reference.ID)
		assert.Nil(t, s.OneOf[1].Reference)
	})

	t.Run("example typed by the schema", func(t *testing.T) {
		d := &decoder{}
		s := d.schema(mustNode(t, `
type: object
properties:
  id: {type: integer, format: int64}
  price: {type: number, format: float}
  born: {type: string, format: date}
  code: {type: string}
example:
  id: 12
  price: 9.5
  born: 2020-02-29
  code: 0042
`))
		require.Empty(t, d.errs)
		want := dom.Object{
			{Name: "id", Value: dom.Long(12)},
			{Name: "price", Value: dom.Float(9.5)},
			{Name: "born", Value: mustDate(t, "2020-02-29")},
			{Name: "code", Value: dom.Str("0042")},
		}
		if diff := cmp.Diff(want, s.Example); diff != "" {
			t.Errorf("example mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("type errors are recorded", func(t *testing.T) {
		d := &decoder{source: "test.yaml"}
		s := d.schema(mustNode(t, "maxLength: many\nnullable: perhaps\nrequired: id\n"))
		require.Len(t, d.errs, 3)
		assert.Nil(t, s.MaxLength)
		assert.Contains(t, d.errs[0].Error(), `maxLength must be an integer, got "many"`)
		assert.Contains(t, d.errs[1].Error(), "nullable must be a boolean")
		assert.Contains(t, d.errs[2].Error(), "required must be a sequence")
	})
}

func mustDate(t *testing.T, v string) dom.Date {
	t.Helper()
	tm, err := time.Parse(time.DateOnly, v)
	require.NoError(t, err)
	return dom.Date{Time: tm}
}

func TestDecodeSecurity(t *testing.T) {
	d := &decoder{}
	c := d.components(mustNode(t, `
securitySchemes:
  oauth:
    type: oauth2
    flows:
      clientCredentials:
        tokenUrl: https://auth.example.com/token
        scopes:
          read: read things
  key:
    type: httpApiKey
    name: X-API-Key
    in: header
`))
	require.Empty(t, d.errs)

	oauth := c.SecuritySchemes["oauth"]
	require.NotNil(t, oauth.Flows)
	assert.Equal(t, dom.SecurityOAuth2, oauth.Type)
	assert.Equal(t, "https://auth.example.com/token", oauth.Flows.ClientCredentials.TokenURL)
	assert.Equal(t, map[string]string{"read": "read things"}, oauth.Flows.ClientCredentials.Scopes)

	key := c.SecuritySchemes["key"]
	assert.Equal(t, dom.SecurityHTTPAPIKey, key.Type)
	assert.Equal(t, "header", key.In)
}

func TestDecodeSecurityRequirement(t *testing.T) {
	d := &decoder{}
	req := d.securityRequirement(mustNode(t, "oauth: [read, write]\nkey:\n"))
	require.Empty(t, d.errs)
	require.Len(t, req, 2)

	schemes := req.Schemes()
	assert.Equal(t, "key", schemes[0].Reference.ID)
	assert.Equal(t, "oauth", schemes[1].Reference.ID)
	assert.True(t, schemes[0].UnresolvedReference)
	assert.Empty(t, req[schemes[0]])
	assert.Equal(t, []string{"read", "write"}, req[schemes[1]])
}

func TestDecodeServers(t *testing.T) {
	t.Run("asyncapi map", func(t *testing.T) {
		d := &decoder{}
		doc := d.document(mustNode(t, `
asyncapi: 2.6.0
servers:
  prod:
    url: amqp://broker
    protocol: amqp
  dev:
    url: amqp://localhost
    protocol: amqp
`))
		require.Empty(t, d.errs)
		require.Len(t, doc.Servers, 2)
		assert.Equal(t, "prod", doc.Servers[0].Name, "document order is kept")
		assert.Equal(t, "dev", doc.Servers[1].Name)
	})

	t.Run("openapi list", func(t *testing.T) {
		d := &decoder{}
		doc := d.document(mustNode(t, "openapi: 3.0.3\nservers:\n  - url: https://a\n  - url: https://b\n"))
		require.Empty(t, d.errs)
		require.Len(t, doc.Servers, 2)
		assert.Empty(t, doc.Servers[0].Name)
		assert.Equal(t, "https://b", doc.Servers[1].URL)
	})
}

func TestDecodeTags(t *testing.T) {
	d := &decoder{}
	op := d.operation(mustNode(t, `
tags:
  - lights
  - name: inline
    description: declared here
  - $ref: '#/components/tags/ignored'
`))
	require.Len(t, op.Tags, 3)

	assert.True(t, op.Tags[0].UnresolvedReference)
	assert.Equal(t, "lights", op.Tags[0].Name)
	assert.Equal(t, "inline", op.Tags[1].Name)
	assert.Equal(t, "declared here", op.Tags[1].Description)
	assert.True(t, op.Tags[2].UnresolvedReference)
	assert.Equal(t, dom.RefTag, op.Tags[2].Reference.Type)
}

func TestDecodeParameterExample(t *testing.T) {
	d := &decoder{}
	p := d.parameter(mustNode(t, `
name: active
in: query
schema:
  type: boolean
example: TRUE
examples:
  off:
    value: "false"
`))
	require.Empty(t, d.errs)
	assert.Equal(t, dom.Boolean(true), p.Example)
	// Explicit strings are not turned into booleans.
	assert.Equal(t, dom.ExplicitStr("false"), p.Examples["off"].Value)
}

func TestDecodeValue(t *testing.T) {
	d := &decoder{}
	n := mustNode(t, `
plain: 12
quoted: "12"
block: |
  text
tagged: !!str 12
empty: ~
list: [a, 'b']
`)
	got := d.value(n)
	want := dom.Object{
		{Name: "plain", Value: dom.Str("12")},
		{Name: "quoted", Value: dom.ExplicitStr("12")},
		{Name: "block", Value: dom.ExplicitStr("text\n")},
		{Name: "tagged", Value: dom.ExplicitStr("12")},
		{Name: "empty", Value: dom.Str("null")},
		{Name: "list", Value: dom.Array{dom.Str("a"), dom.ExplicitStr("b")}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodePathItem(t *testing.T) {
	d := &decoder{}
	item := d.pathItem(mustNode(t, `
summary: pets
get:
  responses:
    '200':
      description: ok
      headers:
        X-Rate:
          schema:
            type: integer
          example: 10
      links:
        next:
          operationId: listPets
          parameters:
            page: 2
x-owner: team
`))
	require.Empty(t, d.errs)
	get := item.Operations[dom.OperationGet]
	require.NotNil(t, get)

	resp := get.Responses["200"]
	assert.Equal(t, "ok", resp.Description)
	assert.Equal(t, dom.Integer(10), resp.Headers["X-Rate"].Example)
	assert.Equal(t, "listPets", resp.Links["next"].OperationID)
	assert.Equal(t, dom.Integer(2), resp.Links["next"].Parameters["page"])
	assert.Equal(t, dom.Str("team"), item.Extensions["x-owner"])
}
