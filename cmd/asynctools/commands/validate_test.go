package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/asynctools/internal/testutil"
	"github.com/erraggy/asynctools/validator"
)

const ordersMissingVersionYAML = `asyncapi: 2.6.0
info:
  title: Orders
`

func TestSetupValidateFlags(t *testing.T) {
	fs, flags := SetupValidateFlags()

	t.Run("default values", func(t *testing.T) {
		assert.False(t, flags.NoWarnings)
		assert.False(t, flags.Quiet)
		assert.False(t, flags.Debug)
		assert.Equal(t, FormatText, flags.Format)
		assert.Empty(t, flags.Disable)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--no-warnings", "-q", "--format", "json", "--disable", "tags", "test.yaml"}
		require.NoError(t, fs.Parse(args))

		assert.True(t, flags.NoWarnings)
		assert.True(t, flags.Quiet)
		assert.Equal(t, "json", flags.Format)
		assert.Equal(t, "tags", flags.Disable)
		assert.Equal(t, "test.yaml", fs.Arg(0))
	})
}

func TestRuleSetFromDisable(t *testing.T) {
	all := validator.DefaultRuleSet().Len()

	rs, err := ruleSet("")
	require.NoError(t, err)
	assert.Equal(t, all, rs.Len())

	rs, err = ruleSet(validator.RuleComponentKeys + ", " + validator.RuleExtensionKeys + ",")
	require.NoError(t, err)
	assert.NotContains(t, rs.Names(), validator.RuleComponentKeys)
	assert.NotContains(t, rs.Names(), validator.RuleExtensionKeys)

	_, err = ruleSet("no-such-rule")
	assert.EqualError(t, err, "unknown rule 'no-such-rule'")
}

func TestHandleValidate_NoArgs(t *testing.T) {
	captureOutput(t, "")
	assert.Error(t, HandleValidate([]string{}))
}

func TestHandleValidate_Help(t *testing.T) {
	_, stderr := captureOutput(t, "")
	assert.NoError(t, HandleValidate([]string{"--help"}))
	assert.Contains(t, stderr.String(), validator.RuleDocumentVersion)
}

func TestHandleValidate_InvalidFormat(t *testing.T) {
	captureOutput(t, "")
	err := HandleValidate([]string{"--format", "invalid", "test.yaml"})
	assert.ErrorContains(t, err, "invalid format 'invalid'")
}

func TestHandleValidate_UnknownRule(t *testing.T) {
	captureOutput(t, "")
	err := HandleValidate([]string{"--disable", "bogus", "test.yaml"})
	assert.EqualError(t, err, "unknown rule 'bogus'")
}

func TestHandleValidate_MissingFile(t *testing.T) {
	captureOutput(t, "")
	err := HandleValidate([]string{"does-not-exist.yaml"})
	assert.ErrorContains(t, err, "parsing does-not-exist.yaml")
}

func TestHandleValidate_ValidDocument(t *testing.T) {
	path := testutil.WriteTempFile(t, "streetlights.yaml", testutil.StreetlightsYAML)
	_, stderr := captureOutput(t, "")

	require.NoError(t, HandleValidate([]string{path}))
	assert.Contains(t, stderr.String(), "AsyncAPI Version: 2.6.0")
	assert.Contains(t, stderr.String(), "✓ Validation passed")
}

func TestHandleValidate_InvalidDocument(t *testing.T) {
	path := testutil.WriteTempFile(t, "orders.yaml", ordersMissingVersionYAML)
	_, stderr := captureOutput(t, "")

	err := HandleValidate([]string{path})
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, stderr.String(), "#/info/version")
	assert.Contains(t, stderr.String(), "✗ Validation failed")
}

func TestHandleValidate_Quiet(t *testing.T) {
	path := testutil.WriteTempFile(t, "orders.yaml", ordersMissingVersionYAML)
	stdout, stderr := captureOutput(t, "")

	err := HandleValidate([]string{"-q", path})
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestHandleValidate_JSONReport(t *testing.T) {
	path := testutil.WriteTempFile(t, "orders.yaml", ordersMissingVersionYAML)
	stdout, _ := captureOutput(t, "")

	err := HandleValidate([]string{"--format", "json", path})
	require.ErrorIs(t, err, ErrValidationFailed)

	var report validationReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.False(t, report.Valid)
	assert.Equal(t, path, report.Specification)
	require.NotEmpty(t, report.Errors)

	var found bool
	for _, e := range report.Errors {
		if e.Path == "#/info/version" {
			found = true
			assert.Equal(t, validator.RuleInfoFields, e.Rule)
		}
	}
	assert.True(t, found, "expected an error at #/info/version")
}

func TestHandleValidate_Stdin(t *testing.T) {
	stdout, _ := captureOutput(t, testutil.StreetlightsYAML)

	require.NoError(t, HandleValidate([]string{"--format", "yaml", "-"}))
	assert.Contains(t, stdout.String(), "specification: <stdin>")
	assert.Contains(t, stdout.String(), "valid: true")
}
