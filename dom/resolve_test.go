package dom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/asynctools/aserrors"
)

func newResolveDoc() *Document {
	return &Document{
		AsyncAPI: "2.6.0",
		Tags:     []*Tag{{Name: "users"}, {Name: "admin"}},
		Components: &Components{
			Schemas:         map[string]*Schema{"User": {Type: "object"}},
			Messages:        map[string]*Message{"UserSignedUp": {Name: "UserSignedUp"}},
			SecuritySchemes: map[string]*SecurityScheme{"token": {Type: SecurityHTTP}},
			Channels:        map[string]*Channel{"users": {Description: "user events"}},
		},
	}
}

func TestDocument_ResolveReference(t *testing.T) {
	doc := newResolveDoc()

	el, err := doc.ResolveReference(&Reference{Type: RefSchema, ID: "User"})
	require.NoError(t, err)
	assert.Same(t, doc.Components.Schemas["User"], el)

	el, err = doc.ResolveReference(&Reference{Type: RefTag, ID: "admin"})
	require.NoError(t, err)
	assert.Same(t, doc.Tags[1], el)

	el, err = doc.ResolveReference(&Reference{Type: RefChannel, ID: "users"})
	require.NoError(t, err)
	assert.Equal(t, KindChannel, el.Kind())
}

func TestDocument_ResolveReference_Errors(t *testing.T) {
	doc := newResolveDoc()

	_, err := doc.ResolveReference(&Reference{Type: RefSchema, ID: "Missing"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, aserrors.ErrReference))
	assert.Contains(t, err.Error(), `"Missing" not found`)

	_, err = doc.ResolveReference(&Reference{ExternalResource: "other.yaml", Type: RefSchema, ID: "X"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, aserrors.ErrExternalReference))

	_, err = doc.ResolveReference(nil)
	require.Error(t, err)

	_, err = (&Document{}).ResolveReference(&Reference{Type: RefMessage, ID: "M"})
	require.Error(t, err)
}

func TestDocument_AssignReferences(t *testing.T) {
	doc := newResolveDoc()
	alias := &Schema{Reference: &Reference{Type: RefSchema, ID: "User"}, UnresolvedReference: true}
	doc.Components.Schemas["Alias"] = alias

	doc.AssignReferences()

	user := doc.Components.Schemas["User"]
	require.NotNil(t, user.Reference)
	assert.Equal(t, RefSchema, user.Reference.Type)
	assert.Equal(t, "User", user.Reference.ID)
	assert.False(t, user.IsUnresolved())
	assert.True(t, user.Reference.BelongsTo(doc.Components))
	assert.False(t, user.Reference.BelongsTo(&Components{}), "stamped by another components section")

	assert.Equal(t, "User", alias.Reference.ID, "existing references are kept")
	assert.Equal(t, RefTag, doc.Tags[0].Reference.Type)
	assert.Equal(t, "users", doc.Tags[0].Reference.ID)
	assert.True(t, doc.Tags[0].Reference.BelongsTo(doc))
	assert.True(t, alias.Reference.BelongsTo(&Components{}), "parsed references have no owner")
	assert.Equal(t, "token", doc.Components.SecuritySchemes["token"].Reference.ID)
	assert.Equal(t, "users", doc.Components.Channels["users"].Reference.ID)
}

func TestElementKind_String(t *testing.T) {
	assert.Equal(t, "Schema", (&Schema{}).Kind().String())
	assert.Equal(t, "SecurityRequirement", SecurityRequirement{}.Kind().String())
	assert.Equal(t, "Unknown", ElementKind(-1).String())

	var nilSchema *Schema
	assert.Equal(t, KindSchema, nilSchema.Kind())
}

func TestSecurityRequirement_Schemes(t *testing.T) {
	b := &SecurityScheme{Reference: &Reference{Type: RefSecurityScheme, ID: "b"}}
	a := &SecurityScheme{Reference: &Reference{Type: RefSecurityScheme, ID: "a"}}
	req := SecurityRequirement{b: {"write"}, a: nil}
	assert.Equal(t, []*SecurityScheme{a, b}, req.Schemes())
}

func TestObject_Get(t *testing.T) {
	obj := Object{{Name: "a", Value: Integer(1)}, {Name: "b", Value: Str("x")}}
	v, ok := obj.Get("b")
	require.True(t, ok)
	assert.Equal(t, Str("x"), v)
	_, ok = obj.Get("c")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, obj.Names())
	assert.Equal(t, AnyObject, obj.AnyKind())
	assert.True(t, IsNull(nil))
	assert.True(t, IsNull(Null{}))
	assert.False(t, IsNull(Boolean(false)))
}
