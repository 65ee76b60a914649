package validator

import (
	"fmt"

	"github.com/erraggy/asynctools/dom"
	"github.com/erraggy/asynctools/internal/issues"
	"github.com/erraggy/asynctools/internal/pathutil"
	"github.com/erraggy/asynctools/internal/severity"
	"github.com/erraggy/asynctools/walker"
)

// Context is handed to each rule. It locates the element being checked and
// collects the issues rules report.
//
// Enter and Exit scope issues to a child of the current element; every
// Enter must be matched by an Exit before the rule returns.
type Context struct {
	wc       *walker.WalkContext
	segments []string
	run      *run
}

// run is the state shared by every Context of a single validation.
type run struct {
	document *dom.Document
	errors   []issues.Issue
	warnings []issues.Issue

	// operationIDs maps each operation id to the path it was first seen at.
	operationIDs map[string]string
}

// Enter scopes subsequent issues to the named child of the current path.
func (c *Context) Enter(segment string) {
	c.segments = append(c.segments, segment)
}

// Exit undoes the most recent Enter. It panics when there is nothing to exit.
func (c *Context) Exit() {
	if len(c.segments) == 0 {
		panic("validator: Exit called without a matching Enter")
	}
	c.segments = c.segments[:len(c.segments)-1]
}

// Path returns the document pointer issues are currently reported at.
func (c *Context) Path() string {
	if len(c.segments) == 0 {
		return c.wc.Path()
	}
	return pathutil.Join(append(c.wc.Segments(), c.segments...)...)
}

// Name returns the map key of the element being checked.
func (c *Context) Name() string {
	return c.wc.Name
}

// IsComponent reports whether the element is a components entry.
func (c *Context) IsComponent() bool {
	return c.wc.IsComponent
}

// Document returns the validated document, or nil when a fragment is being
// validated.
func (c *Context) Document() *dom.Document {
	return c.run.document
}

// IsAsyncAPI reports whether the validated document is an AsyncAPI document.
func (c *Context) IsAsyncAPI() bool {
	return c.run.document.IsAsyncAPI()
}

// CreateError reports a rule violation at the current path.
func (c *Context) CreateError(rule, message string) {
	c.run.errors = append(c.run.errors, issues.Issue{
		Rule:     rule,
		Path:     c.Path(),
		Message:  message,
		Severity: severity.SeverityError,
	})
}

// CreateWarning reports a recommendation at the current path.
func (c *Context) CreateWarning(rule, message string) {
	c.run.warnings = append(c.run.warnings, issues.Issue{
		Rule:     rule,
		Path:     c.Path(),
		Message:  message,
		Severity: severity.SeverityWarning,
	})
}

// operationPath returns where id was first declared, recording path as the
// first declaration if id is new.
func (c *Context) operationPath(id, path string) string {
	if c.run.operationIDs == nil {
		c.run.operationIDs = make(map[string]string)
		if c.run.document != nil {
			for _, info := range walker.CollectOperations(c.run.document).All {
				if info.Operation.OperationID == "" {
					continue
				}
				if _, ok := c.run.operationIDs[info.Operation.OperationID]; !ok {
					c.run.operationIDs[info.Operation.OperationID] = info.Path
				}
			}
		}
	}
	if first, ok := c.run.operationIDs[id]; ok {
		return first
	}
	c.run.operationIDs[id] = path
	return path
}

// checkBalanced panics when rule left Enter calls open.
func (c *Context) checkBalanced(rule string) {
	if n := len(c.segments); n > 0 {
		c.segments = c.segments[:0]
		panic(fmt.Sprintf("validator: rule %q returned with %d unmatched Enter calls", rule, n))
	}
}
