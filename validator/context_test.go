package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/asynctools/dom"
	"github.com/erraggy/asynctools/internal/testutil"
)

func validateWith(root dom.Element, rules ...Rule) *ValidationResult {
	v := &Validator{IncludeWarnings: true, Rules: NewRuleSet(rules...)}
	return v.Validate(root)
}

func TestContext_EnterExit(t *testing.T) {
	doc := testutil.NewMinimalDocument()
	result := validateWith(doc, NewRule("nested", func(c *Context, i *dom.Info) {
		c.CreateWarning("nested", "at info")
		c.Enter("contact")
		c.Enter("a/b")
		c.CreateError("nested", "escaped")
		c.Exit()
		c.CreateWarning("nested", "at contact")
		c.Exit()
	}))

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "#/info/contact/a~1b", result.Errors[0].Path)
	assert.Equal(t, SeverityError, result.Errors[0].Severity)
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, "#/info", result.Warnings[0].Path)
	assert.Equal(t, "#/info/contact", result.Warnings[1].Path)
	assert.Equal(t, SeverityWarning, result.Warnings[1].Severity)
}

func TestContext_ExitWithoutEnter(t *testing.T) {
	doc := testutil.NewMinimalDocument()
	assert.PanicsWithValue(t, "validator: Exit called without a matching Enter", func() {
		validateWith(doc, NewRule("bad", func(c *Context, i *dom.Info) { c.Exit() }))
	})
}

func TestContext_UnbalancedEnter(t *testing.T) {
	doc := testutil.NewMinimalDocument()
	assert.PanicsWithValue(t, `validator: rule "leaky" returned with 2 unmatched Enter calls`, func() {
		validateWith(doc, NewRule("leaky", func(c *Context, i *dom.Info) {
			c.Enter("a")
			c.Enter("b")
		}))
	})
}

func TestContext_Accessors(t *testing.T) {
	doc := testutil.NewStreetlightsDocument()

	var names []string
	var components int
	var sawDocument, asyncAPI bool
	validateWith(doc, NewRule("context-check", func(c *Context, s *dom.Schema) {
		if c.IsComponent() {
			components++
			names = append(names, c.Name())
		}
		sawDocument = c.Document() == doc
		asyncAPI = c.IsAsyncAPI()
	}))

	assert.Equal(t, []string{"lightMeasuredPayload", "node", "sentAt", "turnOnOffPayload"}, names)
	assert.Equal(t, 4, components)
	assert.True(t, sawDocument)
	assert.True(t, asyncAPI)
}

func TestContext_FragmentHasNoDocument(t *testing.T) {
	var doc *dom.Document
	var asyncAPI = true
	validateWith(&dom.Info{}, NewRule("context-check", func(c *Context, i *dom.Info) {
		doc = c.Document()
		asyncAPI = c.IsAsyncAPI()
	}))
	assert.Nil(t, doc)
	assert.False(t, asyncAPI)
}
