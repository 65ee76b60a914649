package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/asynctools"
	"github.com/erraggy/asynctools/cmd/asynctools/commands"
	"github.com/erraggy/asynctools/internal/testutil"
)

func captureOutput(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr := commands.Stdout, commands.Stderr
	commands.Stdout, commands.Stderr = stdout, stderr
	t.Cleanup(func() { commands.Stdout, commands.Stderr = oldOut, oldErr })
	return stdout, stderr
}

func TestRun(t *testing.T) {
	valid := testutil.WriteTempFile(t, "streetlights.yaml", testutil.StreetlightsYAML)
	invalid := testutil.WriteTempFile(t, "orders.yaml", "asyncapi: 2.6.0\ninfo:\n  title: Orders\n")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "no args", wantCode: 1, wantStderr: "Usage:"},
		{name: "version", args: []string{"--version"}, wantStdout: "asynctools v" + asynctools.Version()},
		{name: "help", args: []string{"help"}, wantStderr: "Commands:"},
		{name: "unknown", args: []string{"convert"}, wantCode: 1, wantStderr: "Unknown command: convert"},
		{name: "validate ok", args: []string{"validate", "-q", valid}},
		{name: "parse ok", args: []string{"parse", valid}, wantStdout: "Document Type: AsyncAPI"},
		{name: "walk ok", args: []string{"walk", "operations", valid}, wantStdout: "turnOn"},
		{name: "command error", args: []string{"parse"}, wantCode: 1, wantStderr: "Error: parse command requires"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr := captureOutput(t)
			assert.Equal(t, tt.wantCode, run(tt.args))
			assert.Contains(t, stdout.String(), tt.wantStdout)
			assert.Contains(t, stderr.String(), tt.wantStderr)
		})
	}

	t.Run("validation failure is not repeated", func(t *testing.T) {
		_, stderr := captureOutput(t)
		assert.Equal(t, 1, run([]string{"validate", invalid}))
		assert.NotContains(t, stderr.String(), "Error:")
		assert.Contains(t, stderr.String(), "Validation failed")
	})
}
