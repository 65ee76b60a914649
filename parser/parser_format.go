package parser

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/erraggy/asynctools"
)

// defaultFetchTimeout bounds remote document loads when no HTTPClient is set.
const defaultFetchTimeout = 30 * time.Second

var byteUnits = []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// FormatBytes renders a byte count with binary units, e.g. "1.5 KiB".
func FormatBytes(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}
	value := float64(size) / 1024
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", value, byteUnits[unit])
}

var formatsByExt = map[string]SourceFormat{
	".json": SourceFormatJSON,
	".yaml": SourceFormatYAML,
	".yml":  SourceFormatYAML,
}

var formatsByMediaType = map[string]SourceFormat{
	"application/json":   SourceFormatJSON,
	"application/yaml":   SourceFormatYAML,
	"application/x-yaml": SourceFormatYAML,
	"text/yaml":          SourceFormatYAML,
	"text/x-yaml":        SourceFormatYAML,
}

// formatFromPath maps a file extension to a source format.
func formatFromPath(p string) SourceFormat {
	if f, ok := formatsByExt[strings.ToLower(path.Ext(p))]; ok {
		return f
	}
	return SourceFormatUnknown
}

// sniffFormat reports JSON when the first non-blank byte opens an object or
// array, and YAML for any other non-empty input.
func sniffFormat(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	switch {
	case len(trimmed) == 0:
		return SourceFormatUnknown
	case trimmed[0] == '{' || trimmed[0] == '[':
		return SourceFormatJSON
	default:
		return SourceFormatYAML
	}
}

// isRemote reports whether location is an http(s) URL.
func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// formatFromURL prefers the URL path extension, then the Content-Type.
func formatFromURL(rawURL, contentType string) SourceFormat {
	if u, err := url.Parse(rawURL); err == nil {
		if f := formatFromPath(u.Path); f != SourceFormatUnknown {
			return f
		}
	}
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		if f, ok := formatsByMediaType[mt]; ok {
			return f
		}
	}
	return SourceFormatUnknown
}

// fetch downloads a remote document and returns its body and Content-Type.
func (p *Parser) fetch(rawURL string) ([]byte, string, error) {
	client := p.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("parser: building request for %s: %w", rawURL, err)
	}
	ua := p.UserAgent
	if ua == "" {
		ua = asynctools.UserAgent()
	}
	req.Header.Set("User-Agent", ua)

	resp, err := client.Do(req) //nolint:gosec // URL is caller-provided input
	if err != nil {
		return nil, "", fmt.Errorf("parser: fetching %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("parser: fetching %s: %s", rawURL, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("parser: reading %s: %w", rawURL, err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}
