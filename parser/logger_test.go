package parser

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	l := NopLogger{}
	l.Debug("m", "k", "v")
	l.Info("m", "k", "v")
	l.Warn("m", "k", "v")
	l.Error("m", "k", "v")

	_, ok := l.With("k", "v").(NopLogger)
	assert.True(t, ok, "With should return NopLogger")
}

func newBufferLogger() (*SlogAdapter, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogAdapter(slog.New(handler)), &buf
}

func TestSlogAdapter(t *testing.T) {
	t.Run("nil uses default", func(t *testing.T) {
		assert.NotNil(t, NewSlogAdapter(nil).logger)
	})

	t.Run("levels", func(t *testing.T) {
		adapter, buf := newBufferLogger()
		adapter.Debug("debug message", "foo", "bar")
		adapter.Info("info message")
		adapter.Warn("warn message")
		adapter.Error("error message")

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG msg=\"debug message\" foo=bar")
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "level=ERROR")
	})

	t.Run("With adds attributes", func(t *testing.T) {
		adapter, buf := newBufferLogger()
		adapter.With("component", "resolver").Info("hello")
		assert.Contains(t, buf.String(), "component=resolver")
	})
}

func TestOrNop(t *testing.T) {
	assert.Equal(t, NopLogger{}, orNop(nil))
	adapter, _ := newBufferLogger()
	assert.Same(t, adapter, orNop(adapter))
}
