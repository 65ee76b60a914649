package parser

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/asynctools/internal/testutil"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{-1, "-1 B"},
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{3 << 30, "3.0 GiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.size), "size %d", tt.size)
	}
}

func TestFormatDetection(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, formatFromPath("api.JSON"))
	assert.Equal(t, SourceFormatYAML, formatFromPath("dir/api.yml"))
	assert.Equal(t, SourceFormatUnknown, formatFromPath("api.txt"))

	assert.Equal(t, SourceFormatJSON, sniffFormat([]byte("\n  {\"asyncapi\": \"2.6.0\"}")))
	assert.Equal(t, SourceFormatYAML, sniffFormat([]byte("asyncapi: 2.6.0")))
	assert.Equal(t, SourceFormatUnknown, sniffFormat([]byte(" \n")))

	assert.Equal(t, SourceFormatYAML, formatFromURL("https://x/api.yaml?v=1", "application/json"))
	assert.Equal(t, SourceFormatJSON, formatFromURL("https://x/api", "application/json; charset=utf-8"))
	assert.Equal(t, SourceFormatYAML, formatFromURL("https://x/api", "Text/YAML"))
	assert.Equal(t, SourceFormatUnknown, formatFromURL("https://x/api", ""))

	assert.True(t, isRemote("https://example.com/a.yaml"))
	assert.False(t, isRemote("file.yaml"))
}

func TestParse_URL(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(testutil.StreetlightsYAML))
	}))
	defer server.Close()

	p := New()
	p.UserAgent = "asynctools-test"
	res, err := p.Parse(server.URL + "/streetlights")
	require.NoError(t, err)
	assert.Equal(t, "asynctools-test", gotUA)
	assert.Equal(t, SourceFormatYAML, res.SourceFormat)
	assert.Equal(t, "Streetlights API", res.Document.Info.Title)

	_, err = p.Parse(server.URL + "/missing")
	assert.ErrorContains(t, err, "404")
}
