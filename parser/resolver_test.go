package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/asynctools/aserrors"
	"github.com/erraggy/asynctools/dom"
)

func schemaRef(t *testing.T, ref string) *dom.Schema {
	t.Helper()
	r, err := dom.ParseReference(ref, dom.RefSchema)
	require.NoError(t, err)
	return dom.NewPlaceholder(r).(*dom.Schema)
}

// ordersDocument has one channel whose message payload is an inline
// object schema with a single property slot.
func ordersDocument(item *dom.Schema, components map[string]*dom.Schema) *dom.Document {
	doc := &dom.Document{
		AsyncAPI: "2.6.0",
		Info:     &dom.Info{Title: "orders", Version: "1"},
		Channels: map[string]*dom.Channel{
			"orders": {
				Subscribe: &dom.Operation{
					Message: &dom.Message{
						Payload: &dom.Schema{
							Type:       "object",
							Properties: map[string]*dom.Schema{"item": item},
						},
					},
				},
			},
		},
		Components: &dom.Components{Schemas: components},
	}
	doc.AssignReferences()
	return doc
}

func itemSlot(doc *dom.Document) *dom.Schema {
	return doc.Channels["orders"].Subscribe.Message.Payload.Properties["item"]
}

// stubSource answers external references from a fixed table.
type stubSource struct {
	elements map[string]dom.Element
	err      error
	calls    int
}

func (s *stubSource) ResolveReference(ref *dom.Reference) (dom.Element, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if el, ok := s.elements[ref.String()]; ok {
		return el, nil
	}
	return nil, &aserrors.ReferenceError{
		Ref:     ref.String(),
		RefType: aserrors.RefTypeWorkspace,
		Message: "no such location",
	}
}

func TestResolveReferences_SharesComponents(t *testing.T) {
	pet := &dom.Schema{Type: "object"}
	first := schemaRef(t, "#/components/schemas/Pet")
	doc := ordersDocument(first, map[string]*dom.Schema{"Pet": pet})
	doc.Channels["orders"].Publish = &dom.Operation{
		Message: &dom.Message{Payload: schemaRef(t, "#/components/schemas/Pet")},
	}

	errs := ResolveReferences(doc)
	require.Empty(t, errs)

	assert.Same(t, pet, itemSlot(doc))
	assert.Same(t, pet, doc.Channels["orders"].Publish.Message.Payload)
	assert.False(t, pet.UnresolvedReference)
}

func TestResolveReferences_MissingLocalTarget(t *testing.T) {
	ph := schemaRef(t, "#/components/schemas/Missing")
	doc := ordersDocument(ph, nil)

	errs := ResolveReferences(doc)
	require.Len(t, errs, 1)

	var refErr *aserrors.ReferenceError
	require.ErrorAs(t, errs[0], &refErr)
	assert.Equal(t, "#/components/schemas/Missing", refErr.Ref)
	assert.Equal(t, aserrors.RefTypeLocal, refErr.RefType)
	assert.Equal(t, "#/channels/orders/subscribe/message/payload/properties/item", refErr.Path)
	assert.Equal(t, `target schemas "Missing" not found`, refErr.Message)
	assert.False(t, refErr.IsExternal)

	// The slot keeps its placeholder.
	assert.Same(t, ph, itemSlot(doc))
	assert.True(t, itemSlot(doc).UnresolvedReference)
}

func TestResolveReferences_ExternalWithoutWorkspace(t *testing.T) {
	doc := ordersDocument(schemaRef(t, "other.yaml#/components/schemas/X"), nil)

	errs := ResolveReferences(doc)
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], aserrors.ErrExternalReference))
	assert.True(t, errors.Is(errs[0], aserrors.ErrReference))
	assert.Contains(t, errs[0].Error(), "not in a workspace")

	slot := itemSlot(doc)
	assert.True(t, slot.UnresolvedReference)
	assert.Equal(t, "other.yaml", slot.Reference.ExternalResource)
	assert.Equal(t, "X", slot.Reference.ID)
}

func TestResolveReferences_RemoteDisabled(t *testing.T) {
	ph := schemaRef(t, "other.yaml#/components/schemas/X")
	doc := ordersDocument(ph, nil)
	src := &stubSource{}

	errs := ResolveReferences(doc, WithWorkspace(src), WithResolveRemoteReferences(false))
	assert.Empty(t, errs)
	assert.Zero(t, src.calls)

	slot := itemSlot(doc)
	assert.True(t, slot.UnresolvedReference)
	assert.Equal(t, *ph.Reference, *slot.Reference)
}

func TestResolveReferences_Workspace(t *testing.T) {
	id := &dom.Schema{Type: "string", Format: "uuid"}
	src := &stubSource{elements: map[string]dom.Element{
		"common.yaml#/components/schemas/Id":      id,
		"common.yaml#/components/messages/Signup": &dom.Message{Name: "Signup"},
	}}

	t.Run("resolved", func(t *testing.T) {
		doc := ordersDocument(schemaRef(t, "common.yaml#/components/schemas/Id"), nil)
		errs := ResolveReferences(doc, WithWorkspace(src))
		require.Empty(t, errs)
		assert.Same(t, id, itemSlot(doc))
	})

	t.Run("wrong kind", func(t *testing.T) {
		ph := &dom.Schema{
			Reference:           &dom.Reference{ExternalResource: "common.yaml", Type: dom.RefMessage, ID: "Signup"},
			UnresolvedReference: true,
		}
		doc := ordersDocument(ph, nil)
		errs := ResolveReferences(doc, WithWorkspace(src))
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Error(), "target is a Message, not a Schema")
		assert.Same(t, ph, itemSlot(doc))
	})

	t.Run("workspace failure", func(t *testing.T) {
		doc := ordersDocument(schemaRef(t, "missing.yaml#/components/schemas/Id"), nil)
		errs := ResolveReferences(doc, WithWorkspace(src))
		require.Len(t, errs, 1)

		var refErr *aserrors.ReferenceError
		require.ErrorAs(t, errs[0], &refErr)
		assert.Equal(t, aserrors.RefTypeWorkspace, refErr.RefType)
		assert.Equal(t, "no such location", refErr.Message)
		assert.True(t, refErr.IsExternal)
		assert.Equal(t, "#/channels/orders/subscribe/message/payload/properties/item", refErr.Path)
	})

	t.Run("plain error", func(t *testing.T) {
		boom := errors.New("boom")
		doc := ordersDocument(schemaRef(t, "common.yaml#/components/schemas/Id"), nil)
		errs := ResolveReferences(doc, WithWorkspace(&stubSource{err: boom}))
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], boom)
	})
}

func TestResolveReferences_Tags(t *testing.T) {
	lights := &dom.Tag{Name: "lights"}
	known := dom.NewPlaceholder(&dom.Reference{Type: dom.RefTag, ID: "lights"}).(*dom.Tag)
	unknown := dom.NewPlaceholder(&dom.Reference{Type: dom.RefTag, ID: "misc"}).(*dom.Tag)

	op := &dom.Operation{Tags: []*dom.Tag{known, unknown}}
	doc := &dom.Document{
		AsyncAPI: "2.6.0",
		Tags:     []*dom.Tag{lights},
		Channels: map[string]*dom.Channel{"c": {Publish: op}},
	}
	doc.AssignReferences()

	errs := ResolveReferences(doc)
	require.Empty(t, errs, "unknown tags are synthesized, not reported")

	assert.Same(t, lights, op.Tags[0])
	assert.Equal(t, "misc", op.Tags[1].Name)
	assert.False(t, op.Tags[1].UnresolvedReference)
	assert.Nil(t, op.Tags[1].Reference)
}

func TestResolveReferences_SecurityRequirement(t *testing.T) {
	oauth := &dom.SecurityScheme{Type: dom.SecurityOAuth2}
	keyRef := dom.NewPlaceholder(&dom.Reference{Type: dom.RefSecurityScheme, ID: "oauth"}).(*dom.SecurityScheme)
	missing := dom.NewPlaceholder(&dom.Reference{Type: dom.RefSecurityScheme, ID: "nope"}).(*dom.SecurityScheme)

	req := dom.SecurityRequirement{
		keyRef:  {"read", "write"},
		missing: {},
	}
	doc := &dom.Document{
		AsyncAPI:   "2.6.0",
		Security:   []dom.SecurityRequirement{req},
		Components: &dom.Components{SecuritySchemes: map[string]*dom.SecurityScheme{"oauth": oauth}},
	}
	doc.AssignReferences()

	errs := ResolveReferences(doc)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `securitySchemes "nope" not found`)

	require.Len(t, req, 2)
	assert.Equal(t, []string{"read", "write"}, req[oauth])
	assert.NotContains(t, req, keyRef)
	assert.Contains(t, req, missing)
}

func TestResolveReferences_ComponentAlias(t *testing.T) {
	target := &dom.Schema{Type: "string"}
	doc := ordersDocument(schemaRef(t, "#/components/schemas/Alias"), map[string]*dom.Schema{
		"Target": target,
		"Alias":  schemaRef(t, "#/components/schemas/Target"),
	})

	errs := ResolveReferences(doc)
	require.Empty(t, errs)
	assert.Same(t, target, doc.Components.Schemas["Alias"])
	assert.Same(t, target, itemSlot(doc), "use sites follow the alias")
}

func TestResolveReferences_AliasCycle(t *testing.T) {
	doc := ordersDocument(schemaRef(t, "#/components/schemas/A"), map[string]*dom.Schema{
		"A": schemaRef(t, "#/components/schemas/B"),
		"B": schemaRef(t, "#/components/schemas/A"),
	})

	errs := ResolveReferences(doc)
	require.Len(t, errs, 3)
	for _, err := range errs {
		assert.Contains(t, err.Error(), "reference cycle")
	}
	assert.True(t, itemSlot(doc).UnresolvedReference)
}

func TestResolveReferences_Idempotent(t *testing.T) {
	pet := &dom.Schema{Type: "object"}
	doc := ordersDocument(schemaRef(t, "#/components/schemas/Pet"), map[string]*dom.Schema{"Pet": pet})

	require.Empty(t, ResolveReferences(doc))
	require.Empty(t, ResolveReferences(doc))
	assert.Same(t, pet, itemSlot(doc))
}

func TestResolveReferences_NilDocument(t *testing.T) {
	assert.Empty(t, ResolveReferences(nil))
}

func TestReferenceResolver_Logger(t *testing.T) {
	rec := &recordingLogger{}
	doc := ordersDocument(schemaRef(t, "#/components/schemas/Missing"), nil)

	r := NewReferenceResolver(doc, WithResolverLogger(rec))
	r.Resolve()
	assert.Len(t, r.Errors(), 1)
	assert.Contains(t, rec.messages, "reference unresolved")
}
