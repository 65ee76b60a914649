package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asynctools/dom"
)

func TestNewStreetlightsDocument(t *testing.T) {
	doc := NewStreetlightsDocument()

	require.NotNil(t, doc.Components)
	assert.True(t, doc.IsAsyncAPI())
	assert.Len(t, doc.Channels, 2)

	sentAt := doc.Components.Schemas["sentAt"]
	require.NotNil(t, sentAt)
	assert.Same(t, sentAt, doc.Components.Schemas["lightMeasuredPayload"].Properties["sentAt"])
	assert.Same(t, sentAt, doc.Components.Schemas["turnOnOffPayload"].Properties["sentAt"])
	require.NotNil(t, sentAt.Reference)
	assert.Equal(t, "#/components/schemas/sentAt", sentAt.Reference.String())

	node := doc.Components.Schemas["node"]
	assert.Same(t, node, node.Properties["next"], "node schema should reference itself")

	assert.Same(t, doc.Tags[0], doc.Channels["smartylighting/streetlights/{streetlightId}/lighting/measured"].Subscribe.Tags[0])
}

func TestNewMinimalDocument(t *testing.T) {
	doc := NewMinimalDocument()
	require.NotNil(t, doc.Info)
	assert.Equal(t, "Test API", doc.Info.Title)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	assert.Nil(t, doc.Components)
}

func TestYAMLFixturesAreMappings(t *testing.T) {
	for name, content := range map[string]string{
		"streetlights": StreetlightsYAML,
		"petstore":     PetstoreYAML,
	} {
		t.Run(name, func(t *testing.T) {
			var node yaml.Node
			require.NoError(t, yaml.Unmarshal([]byte(content), &node))
			require.Equal(t, yaml.DocumentNode, node.Kind)
			require.Len(t, node.Content, 1)
			assert.Equal(t, yaml.MappingNode, node.Content[0].Kind)
		})
	}
}

func TestWriteTempFile(t *testing.T) {
	path := WriteTempFile(t, "api.yaml", StreetlightsYAML)

	assert.FileExists(t, path)
	assert.Equal(t, "api.yaml", filepath.Base(path))
	assert.True(t, filepath.IsAbs(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, StreetlightsYAML, string(data))
}

func TestWriteTempFileCleanup(t *testing.T) {
	var path string
	t.Run("create", func(t *testing.T) {
		path = WriteTempFile(t, "gone.json", `{}`)
		assert.FileExists(t, path)
	})
	assert.NoFileExists(t, path)
}

func TestFixtureReferencesAreLocal(t *testing.T) {
	doc := NewStreetlightsDocument()
	for name, s := range doc.Components.Schemas {
		require.NotNil(t, s.Reference, name)
		assert.Equal(t, dom.RefSchema, s.Reference.Type)
		assert.Equal(t, name, s.Reference.ID)
		assert.True(t, s.Reference.IsLocal())
	}
}
