package parser

import (
	"fmt"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asynctools/aserrors"
	"github.com/erraggy/asynctools/coerce"
	"github.com/erraggy/asynctools/dom"
)

// decoder maps yaml nodes onto dom elements. Structural problems are
// recorded and decoding continues with the next field.
type decoder struct {
	source string
	errs   []error
}

func (d *decoder) errorf(n *yaml.Node, format string, args ...any) {
	e := &aserrors.ParseError{Path: d.source, Message: fmt.Sprintf(format, args...)}
	if n != nil {
		e.Line, e.Column = n.Line, n.Column
	}
	d.errs = append(d.errs, e)
}

// resolveAlias follows yaml aliases to their anchored node.
func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// each calls fn for every key of a mapping node, in document order.
func (d *decoder) each(n *yaml.Node, what string, fn func(key string, value *yaml.Node)) {
	n = resolveAlias(n)
	if n == nil {
		return
	}
	if n.Kind != yaml.MappingNode {
		d.errorf(n, "%s must be a mapping", what)
		return
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := resolveAlias(n.Content[i])
		fn(key.Value, resolveAlias(n.Content[i+1]))
	}
}

// lookup returns the value of key in a mapping node.
func lookup(n *yaml.Node, key string) *yaml.Node {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return resolveAlias(n.Content[i+1])
		}
	}
	return nil
}

func (d *decoder) scalar(n *yaml.Node, what string) (string, bool) {
	if n.Kind != yaml.ScalarNode {
		d.errorf(n, "%s must be a scalar", what)
		return "", false
	}
	return n.Value, true
}

func (d *decoder) str(n *yaml.Node, what string) string {
	v, _ := d.scalar(n, what)
	return v
}

func (d *decoder) boolean(n *yaml.Node, what string) bool {
	v, ok := d.scalar(n, what)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		d.errorf(n, "%s must be a boolean, got %q", what, v)
	}
	return b
}

func (d *decoder) boolPtr(n *yaml.Node, what string) *bool {
	b := d.boolean(n, what)
	return &b
}

func (d *decoder) intPtr(n *yaml.Node, what string) *int {
	v, ok := d.scalar(n, what)
	if !ok {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		d.errorf(n, "%s must be an integer, got %q", what, v)
		return nil
	}
	return &i
}

func (d *decoder) floatPtr(n *yaml.Node, what string) *float64 {
	v, ok := d.scalar(n, what)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		d.errorf(n, "%s must be a number, got %q", what, v)
		return nil
	}
	return &f
}

func (d *decoder) strings(n *yaml.Node, what string) []string {
	if n.Kind != yaml.SequenceNode {
		d.errorf(n, "%s must be a sequence", what)
		return nil
	}
	out := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		if v, ok := d.scalar(resolveAlias(item), what); ok {
			out = append(out, v)
		}
	}
	return out
}

func (d *decoder) stringMap(n *yaml.Node, what string) map[string]string {
	out := make(map[string]string)
	d.each(n, what, func(key string, v *yaml.Node) {
		out[key] = d.str(v, what+"."+key)
	})
	return out
}

// explicitStyles mark scalars whose author asked for a string.
const explicitStyles = yaml.DoubleQuotedStyle | yaml.SingleQuotedStyle |
	yaml.LiteralStyle | yaml.FoldedStyle | yaml.TaggedStyle

// value converts a node into an uncoerced dom.Any: scalars become Strings
// tagged explicit or implicit, sequences Arrays and mappings Objects.
func (d *decoder) value(n *yaml.Node) dom.Any {
	n = resolveAlias(n)
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Style&explicitStyles != 0 {
			return dom.ExplicitStr(n.Value)
		}
		if n.ShortTag() == "!!null" {
			return dom.Str("null")
		}
		return dom.Str(n.Value)
	case yaml.SequenceNode:
		out := make(dom.Array, 0, len(n.Content))
		for _, item := range n.Content {
			out = append(out, d.value(item))
		}
		return out
	case yaml.MappingNode:
		out := make(dom.Object, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			out = append(out, dom.Member{
				Name:  resolveAlias(n.Content[i]).Value,
				Value: d.value(n.Content[i+1]),
			})
		}
		return out
	}
	d.errorf(n, "unsupported value")
	return nil
}

// extension records key on ext when it is a specification extension.
// Other unknown keys are ignored.
func (d *decoder) extension(ext *dom.Extensions, key string, v *yaml.Node) {
	if !strings.HasPrefix(key, "x-") {
		return
	}
	if *ext == nil {
		*ext = make(dom.Extensions)
	}
	(*ext)[key] = coerce.Value(d.value(v), nil)
}

// placeholder returns an unresolved element when n is a "$ref" mapping.
func placeholder[T dom.Referenceable](d *decoder, n *yaml.Node, typ dom.ReferenceType) (T, bool) {
	var zero T
	refNode := lookup(n, "$ref")
	if refNode == nil {
		return zero, false
	}
	ref, err := dom.ParseReference(refNode.Value, typ)
	if err != nil {
		d.errs = append(d.errs, &aserrors.ParseError{
			Path:    d.source,
			Line:    refNode.Line,
			Column:  refNode.Column,
			Message: "invalid $ref",
			Cause:   err,
		})
		return zero, false
	}
	ph, ok := dom.NewPlaceholder(ref).(T)
	return ph, ok
}

func decodeMap[T any](d *decoder, n *yaml.Node, what string, fn func(*yaml.Node) T) map[string]T {
	out := make(map[string]T)
	d.each(n, what, func(key string, v *yaml.Node) {
		out[key] = fn(v)
	})
	return out
}

func decodeList[T any](d *decoder, n *yaml.Node, what string, fn func(*yaml.Node) T) []T {
	n = resolveAlias(n)
	if n.Kind != yaml.SequenceNode {
		d.errorf(n, "%s must be a sequence", what)
		return nil
	}
	out := make([]T, 0, len(n.Content))
	for _, item := range n.Content {
		out = append(out, fn(resolveAlias(item)))
	}
	return out
}
