package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/asynctools/aserrors"
	"github.com/erraggy/asynctools/dom"
	"github.com/erraggy/asynctools/internal/testutil"
	"github.com/erraggy/asynctools/parser"
)

func TestValidate_Fixtures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"streetlights", testutil.StreetlightsYAML},
		{"petstore", testutil.PetstoreYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := parser.Parse([]byte(tt.yaml))
			require.NoError(t, err)

			result := New().ValidateParsed(res)
			assert.True(t, result.Valid, "errors: %v", result.Errors)
			assert.Zero(t, result.ErrorCount)
			assert.Empty(t, result.Warnings)
		})
	}
}

func TestValidate_BuiltDocument(t *testing.T) {
	result := New().Validate(testutil.NewStreetlightsDocument())
	assert.True(t, result.Valid, "errors: %v", result.Errors)
}

func TestValidate_SharedComponentReportedOnce(t *testing.T) {
	pet := &dom.Schema{
		Type:          "object",
		Properties:    map[string]*dom.Schema{"kind": {Type: "string"}},
		Discriminator: &dom.Discriminator{PropertyName: "kind"},
	}
	response := func() *dom.Response {
		return &dom.Response{
			Description: "ok",
			Content:     map[string]*dom.MediaType{"application/json": {Schema: pet}},
		}
	}
	doc := &dom.Document{
		OpenAPI: "3.0.3",
		Info:    &dom.Info{Title: "t", Version: "1"},
		Paths: map[string]*dom.PathItem{
			"/a": {Operations: map[dom.OperationType]*dom.Operation{
				dom.OperationGet: {Responses: map[string]*dom.Response{"200": response()}},
			}},
			"/b": {Operations: map[dom.OperationType]*dom.Operation{
				dom.OperationGet: {Responses: map[string]*dom.Response{"200": response(), "201": response()}},
			}},
		},
		Components: &dom.Components{Schemas: map[string]*dom.Schema{"Pet": pet}},
	}
	doc.AssignReferences()

	whole := New().Validate(doc)
	alone := New().Validate(pet)

	require.Len(t, whole.Errors, 1)
	assert.Equal(t, "#/components/schemas/Pet/discriminator", whole.Errors[0].Path)
	assert.Equal(t, RuleSchemaDiscriminator, whole.Errors[0].Rule)
	assert.Equal(t, alone.ErrorCount, whole.ErrorCount)
}

func TestValidate_CyclicSchema(t *testing.T) {
	node := &dom.Schema{Type: "object", Required: []string{"missing"}}
	node.Properties = map[string]*dom.Schema{"next": node}
	node.Items = node

	result := New().Validate(node)
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "#/required/0", result.Warnings[0].Path)
}

func TestValidate_IncludeWarnings(t *testing.T) {
	doc := testutil.NewMinimalDocument()
	doc.Channels["orders/{id}"] = &dom.Channel{
		Parameters: map[string]*dom.Parameter{"id": {}, "extra": {}},
	}

	v := New()
	result := v.Validate(doc)
	assert.True(t, result.Valid)
	require.Equal(t, 1, result.WarningCount)
	assert.Equal(t, "#/channels/orders~1{id}/parameters/extra", result.Warnings[0].Path)

	v.IncludeWarnings = false
	result = v.Validate(doc)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Warnings)
	assert.Zero(t, result.WarningCount)
}

func TestValidateParsed_ParseErrors(t *testing.T) {
	res, err := parser.Parse([]byte("info:\n  title: x\n  version: '1'\n"))
	require.NoError(t, err)

	result := New().ValidateParsed(res)
	assert.False(t, result.Valid)
	require.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, "parse", result.Errors[0].Rule)
	assert.Equal(t, "#/", result.Errors[0].Path)
	assert.Contains(t, result.Errors[0].Message, "neither an asyncapi nor an openapi version")
	assert.Equal(t, RuleDocumentVersion, result.Errors[1].Rule)
	assert.Contains(t, result.Errors[1].Message, "none was provided")
}

func TestValidateParsed_NoDocument(t *testing.T) {
	res := &parser.ParseResult{Errors: []error{
		&aserrors.ParseError{Path: "x.yaml", Message: "boom"},
		errors.New("ignored"),
	}}
	result := New().ValidateParsed(res)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "boom")
}

func TestValidateParsed_UnresolvedReference(t *testing.T) {
	res, err := parser.Parse([]byte(`asyncapi: 2.6.0
info:
  title: t
  version: '1'
channels:
  orders:
    subscribe:
      message:
        payload:
          $ref: '#/components/schemas/Missing'
`))
	require.NoError(t, err)
	require.Len(t, res.ReferenceErrors(), 1)

	result := New().ValidateParsed(res)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, RuleReferenceResolved, result.Errors[0].Rule)
	assert.Equal(t, "#/channels/orders/subscribe/message/payload", result.Errors[0].Path)
	assert.Equal(t, "Reference '#/components/schemas/Missing' is unresolved", result.Errors[0].Message)
}

func TestValidationResult_AsErrors(t *testing.T) {
	result := New().Validate(&dom.Document{AsyncAPI: "2.6.0"})
	errs := result.AsErrors()
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], aserrors.ErrValidation))

	var verr *aserrors.ValidationError
	require.ErrorAs(t, errs[0], &verr)
	assert.Equal(t, RuleDocumentInfo, verr.Rule)
	assert.Equal(t, "#/info", verr.Path)
}

func TestValidate_NilRulesUsesDefaults(t *testing.T) {
	v := &Validator{}
	result := v.Validate(&dom.Document{AsyncAPI: "2.6.0"})
	assert.False(t, result.Valid)
}

func TestValidateWithOptions(t *testing.T) {
	t.Run("element", func(t *testing.T) {
		result, err := ValidateWithOptions(WithElement(testutil.NewMinimalDocument()))
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("parsed", func(t *testing.T) {
		res, err := parser.Parse([]byte(testutil.PetstoreYAML))
		require.NoError(t, err)
		result, err := ValidateWithOptions(WithParsed(res))
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("file", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "streetlights.yaml", testutil.StreetlightsYAML)
		result, err := ValidateWithOptions(WithFilePath(path), WithLogger(parser.NopLogger{}))
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ValidateWithOptions(WithFilePath("does-not-exist.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validator: failed to parse document")
	})

	t.Run("rule set", func(t *testing.T) {
		doc := &dom.Document{AsyncAPI: "2.6.0"}
		result, err := ValidateWithOptions(
			WithElement(doc),
			WithRuleSet(DefaultRuleSet().Without(RuleDocumentInfo)),
		)
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("warnings disabled", func(t *testing.T) {
		schema := &dom.Schema{Required: []string{"a"}, Properties: map[string]*dom.Schema{"b": {}}}
		result, err := ValidateWithOptions(WithElement(schema), WithIncludeWarnings(false))
		require.NoError(t, err)
		assert.Empty(t, result.Warnings)
	})
}

func TestValidateWithOptions_InvalidOptions(t *testing.T) {
	doc := testutil.NewMinimalDocument()
	tests := []struct {
		name    string
		opts    []Option
		message string
	}{
		{"no source", nil, "must specify an input source"},
		{"two sources", []Option{WithElement(doc), WithFilePath("a.yaml")}, "must specify exactly one input source"},
		{"nil parsed", []Option{WithParsed(nil)}, "parse result cannot be nil"},
		{"nil element", []Option{WithElement(nil)}, "element cannot be nil"},
		{"nil rule set", []Option{WithElement(doc), WithRuleSet(nil)}, "rule set cannot be nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateWithOptions(tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, aserrors.ErrConfig)
			assert.Contains(t, err.Error(), tt.message)
			assert.Contains(t, err.Error(), "validator: invalid options")
		})
	}
}
