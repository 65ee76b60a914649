package validator

import (
	"fmt"
	"slices"

	"github.com/erraggy/asynctools/dom"
)

type target int

const (
	targetKind target = iota
	targetReference
	targetExtensible
)

// Rule checks a single kind of element and reports problems through a
// Context. Rules must not modify the element they check.
type Rule struct {
	name   string
	target target
	kind   dom.ElementKind
	check  func(c *Context, el dom.Element)
}

// NewRule creates a rule evaluated for every visited element of type T.
// T must be a concrete element type such as *dom.Schema.
func NewRule[T dom.Element](name string, check func(c *Context, el T)) Rule {
	var zero T
	if any(zero) == nil {
		panic(fmt.Sprintf("validator: rule %q must target a concrete element type", name))
	}
	return Rule{
		name:   name,
		target: targetKind,
		kind:   zero.Kind(),
		check: func(c *Context, el dom.Element) {
			check(c, el.(T))
		},
	}
}

// NewReferenceRule creates a rule evaluated for every reference that is
// still unresolved when the validator reaches it.
func NewReferenceRule(name string, check func(c *Context, ref dom.Referenceable)) Rule {
	return Rule{
		name:   name,
		target: targetReference,
		check: func(c *Context, el dom.Element) {
			check(c, el.(dom.Referenceable))
		},
	}
}

// NewExtensibleRule creates a rule evaluated for every visited element that
// carries specification extensions.
func NewExtensibleRule(name string, check func(c *Context, el dom.Extensible)) Rule {
	return Rule{
		name:   name,
		target: targetExtensible,
		check: func(c *Context, el dom.Element) {
			check(c, el.(dom.Extensible))
		},
	}
}

// Name returns the rule name reported with each issue.
func (r Rule) Name() string {
	return r.name
}

// RuleSet is an ordered collection of rules indexed by the element kind
// they check.
type RuleSet struct {
	rules      []Rule
	byKind     map[dom.ElementKind][]Rule
	references []Rule
	extensible []Rule
}

// NewRuleSet creates a rule set holding rules in the given order.
func NewRuleSet(rules ...Rule) *RuleSet {
	rs := &RuleSet{byKind: make(map[dom.ElementKind][]Rule)}
	return rs.Add(rules...)
}

// Add appends rules to the set and returns it.
func (rs *RuleSet) Add(rules ...Rule) *RuleSet {
	for _, r := range rules {
		rs.rules = append(rs.rules, r)
		switch r.target {
		case targetReference:
			rs.references = append(rs.references, r)
		case targetExtensible:
			rs.extensible = append(rs.extensible, r)
		default:
			rs.byKind[r.kind] = append(rs.byKind[r.kind], r)
		}
	}
	return rs
}

// Without returns a copy of the set minus the named rules.
func (rs *RuleSet) Without(names ...string) *RuleSet {
	out := NewRuleSet()
	for _, r := range rs.rules {
		if !slices.Contains(names, r.name) {
			out.Add(r)
		}
	}
	return out
}

// Names returns the rule names in registration order.
func (rs *RuleSet) Names() []string {
	names := make([]string, len(rs.rules))
	for i, r := range rs.rules {
		names[i] = r.name
	}
	return names
}

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// forElement returns the rules registered for el's kind followed by the
// extensible rules when el carries extensions.
func (rs *RuleSet) forElement(el dom.Element) []Rule {
	kindRules := rs.byKind[el.Kind()]
	if _, ok := el.(dom.Extensible); !ok || len(rs.extensible) == 0 {
		return kindRules
	}
	out := make([]Rule, 0, len(kindRules)+len(rs.extensible))
	out = append(out, kindRules...)
	return append(out, rs.extensible...)
}
