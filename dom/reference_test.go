package dom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/asynctools/aserrors"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		typ  ReferenceType
		want Reference
	}{
		{
			name: "local component",
			ref:  "#/components/schemas/Pet",
			typ:  RefSchema,
			want: Reference{Type: RefSchema, ID: "Pet"},
		},
		{
			name: "local component with untyped slot",
			ref:  "#/components/messages/UserSignedUp",
			want: Reference{Type: RefMessage, ID: "UserSignedUp"},
		},
		{
			name: "legacy deep fragment uses the fourth segment",
			ref:  "#/components/schemas/Pet/properties/name",
			typ:  RefSchema,
			want: Reference{Type: RefSchema, ID: "Pet"},
		},
		{
			name: "escaped id",
			ref:  "#/components/schemas/a~1b~0c",
			typ:  RefSchema,
			want: Reference{Type: RefSchema, ID: "a/b~c"},
		},
		{
			name: "tag short form",
			ref:  "pets",
			typ:  RefTag,
			want: Reference{Type: RefTag, ID: "pets"},
		},
		{
			name: "security scheme short form",
			ref:  "api_key",
			typ:  RefSecurityScheme,
			want: Reference{Type: RefSecurityScheme, ID: "api_key"},
		},
		{
			name: "external document",
			ref:  "common.yaml",
			typ:  RefSchema,
			want: Reference{ExternalResource: "common.yaml", Type: RefSchema},
		},
		{
			name: "external component",
			ref:  "common.yaml#/components/schemas/Error",
			typ:  RefSchema,
			want: Reference{ExternalResource: "common.yaml", Type: RefSchema, ID: "Error"},
		},
		{
			name: "external fragment keeps pointer",
			ref:  "person.json#/properties/name",
			typ:  RefSchema,
			want: Reference{ExternalResource: "person.json", Type: RefSchema, ID: "/properties/name"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReference(tt.ref, tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseReference_Errors(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		typ  ReferenceType
		msg  string
	}{
		{"empty", "", RefSchema, "empty"},
		{"kind mismatch", "#/components/messages/Pet", RefSchema, "expected a schemas reference"},
		{"unknown kind", "#/components/widgets/Pet", "", "unknown component type"},
		{"missing id", "#/components/schemas", RefSchema, "has no id"},
		{"local outside components", "#/definitions/Pet", RefSchema, "must point into components"},
		{"two hashes", "a#b#c", RefSchema, "more than one"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReference(tt.ref, tt.typ)
			require.Error(t, err)
			assert.True(t, errors.Is(err, aserrors.ErrReference))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestReference_String(t *testing.T) {
	assert.Equal(t, "#/components/schemas/Pet", (&Reference{Type: RefSchema, ID: "Pet"}).String())
	assert.Equal(t, "#/components/schemas/a~1b", (&Reference{Type: RefSchema, ID: "a/b"}).String())
	assert.Equal(t, "pets", (&Reference{Type: RefTag, ID: "pets"}).String())
	assert.Equal(t, "common.yaml", (&Reference{ExternalResource: "common.yaml"}).String())
	assert.Equal(t, "common.yaml#/components/messages/M",
		(&Reference{ExternalResource: "common.yaml", Type: RefMessage, ID: "M"}).String())
	assert.Equal(t, "p.json#/properties/name",
		(&Reference{ExternalResource: "p.json", Type: RefSchema, ID: "/properties/name"}).String())

	var nilRef *Reference
	assert.Equal(t, "", nilRef.String())
	assert.False(t, nilRef.IsExternal())
}

func TestReference_RoundTrip(t *testing.T) {
	for _, s := range []string{
		"#/components/schemas/Pet",
		"#/components/callbacks/onEvent",
		"other.yaml#/components/channels/user~1signedup",
	} {
		ref, err := ParseReference(s, "")
		require.NoError(t, err)
		assert.Equal(t, s, ref.String())
	}
}

func TestNewPlaceholder(t *testing.T) {
	for _, typ := range ReferenceTypes {
		t.Run(string(typ), func(t *testing.T) {
			ref := &Reference{Type: typ, ID: "x"}
			p := NewPlaceholder(ref)
			require.NotNil(t, p)
			assert.True(t, p.IsUnresolved())
			assert.Equal(t, *ref, *p.GetReference())
			assert.NotSame(t, ref, p.GetReference())
		})
	}
	assert.Nil(t, NewPlaceholder(nil))
	assert.Nil(t, NewPlaceholder(&Reference{Type: "widgets"}))
}

func TestParseReferenceType(t *testing.T) {
	typ, ok := ParseReferenceType("requestBodies")
	assert.True(t, ok)
	assert.Equal(t, RefRequestBody, typ)

	_, ok = ParseReferenceType("definitions")
	assert.False(t, ok)
}
