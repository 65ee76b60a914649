package coerce

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/erraggy/asynctools/dom"
)

// Value returns v coerced against schema. Arrays and objects are rebuilt with
// coerced members; v itself is never modified.
func Value(v dom.Any, schema *dom.Schema) dom.Any {
	switch val := v.(type) {
	case dom.Array:
		var items *dom.Schema
		if schema != nil {
			items = schema.Items
		}
		out := make(dom.Array, len(val))
		for i, item := range val {
			out[i] = Value(item, items)
		}
		return out
	case dom.Object:
		out := make(dom.Object, len(val))
		for i, m := range val {
			out[i] = dom.Member{Name: m.Name, Value: Value(m.Value, memberSchema(schema, m.Name))}
		}
		return out
	case dom.String:
		if val.Explicit {
			return explicit(val, schema)
		}
		return implicit(val, schema)
	}
	return v
}

func memberSchema(schema *dom.Schema, name string) *dom.Schema {
	if schema == nil {
		return nil
	}
	if p, ok := schema.Properties[name]; ok {
		return p
	}
	return schema.AdditionalProperties
}

// explicit handles quoted or block scalars. Only string formats and a
// date-time guess apply: quoting means the author wanted a string.
func explicit(s dom.String, schema *dom.Schema) dom.Any {
	if schema == nil || schema.Type == "" {
		if t, ok := parseDateTime(s.Value); ok {
			return dom.DateTime{Time: t}
		}
		return s
	}
	if schema.Type != "string" {
		return s
	}
	if out, ok := stringFormat(s.Value, schema.Format); ok {
		return out
	}
	return s
}

func implicit(s dom.String, schema *dom.Schema) dom.Any {
	if s.Value == "" || s.Value == "null" {
		return dom.Null{}
	}
	if schema == nil || schema.Type == "" {
		return infer(s)
	}
	var (
		out dom.Any
		ok  bool
	)
	switch schema.Type {
	case "integer":
		if schema.Format == "int64" {
			out, ok = parseLong(s.Value)
		} else {
			out, ok = parseInteger(s.Value)
		}
	case "number":
		if schema.Format == "float" {
			out, ok = parseFloat(s.Value)
		} else {
			out, ok = parseDouble(s.Value)
		}
	case "string":
		out, ok = stringFormat(s.Value, schema.Format)
	case "boolean":
		var b bool
		b, ok = parseBool(s.Value)
		out = dom.Boolean(b)
	}
	if !ok {
		return s
	}
	return out
}

// infer tries boolean, 32-bit, 64-bit, double and date-time in that order.
func infer(s dom.String) dom.Any {
	switch s.Value {
	case "true":
		return dom.Boolean(true)
	case "false":
		return dom.Boolean(false)
	}
	if v, ok := parseInteger(s.Value); ok {
		return v
	}
	if v, ok := parseLong(s.Value); ok {
		return v
	}
	if v, ok := parseDouble(s.Value); ok {
		return v
	}
	if t, ok := parseDateTime(s.Value); ok {
		return dom.DateTime{Time: t}
	}
	return s
}

// stringFormat converts by string format. An unknown or empty format leaves
// the value alone and reports false.
func stringFormat(v, format string) (dom.Any, bool) {
	switch format {
	case "byte":
		b, err := base64.StdEncoding.DecodeString(v)
		if err != nil {
			return nil, false
		}
		return dom.Byte(b), true
	case "binary":
		return dom.Binary([]byte(v)), true
	case "date":
		if t, ok := parseDate(v); ok {
			return dom.Date{Time: t}, true
		}
	case "date-time":
		if t, ok := parseDateTime(v); ok {
			return dom.DateTime{Time: t}, true
		}
	case "password":
		return dom.Password(v), true
	}
	return nil, false
}

func parseBool(v string) (bool, bool) {
	switch strings.ToLower(v) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func parseInteger(v string) (dom.Any, bool) {
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return nil, false
	}
	return dom.Integer(n), true
}

func parseLong(v string) (dom.Any, bool) {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, false
	}
	return dom.Long(n), true
}

func parseDouble(v string) (dom.Any, bool) {
	f, ok := parseNumber(v)
	if !ok {
		return nil, false
	}
	return dom.Double(f), true
}

func parseFloat(v string) (dom.Any, bool) {
	f, ok := parseNumber(v)
	if !ok || (!math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32) {
		return nil, false
	}
	return dom.Float(float32(f)), true
}

// parseNumber reads a decimal independent of locale. Thousands separators are
// accepted between digit groups, and the symbols NaN, Infinity and -Infinity
// name the IEEE special values. Finite input that overflows is rejected.
func parseNumber(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	switch v {
	case "":
		return 0, false
	case "NaN":
		return math.NaN(), true
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	if strings.Contains(v, ",") {
		if !validThousands(v) {
			return 0, false
		}
		v = strings.ReplaceAll(v, ",", "")
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return 0, false
	}
	f, _ := d.Float64()
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// validThousands checks that commas only separate groups of three digits in
// the integer part.
func validThousands(v string) bool {
	intPart := v
	if i := strings.IndexAny(v, ".eE"); i >= 0 {
		intPart = v[:i]
		if strings.Contains(v[i:], ",") {
			return false
		}
	}
	intPart = strings.TrimLeft(intPart, "+-")
	groups := strings.Split(intPart, ",")
	if len(groups[0]) == 0 || len(groups[0]) > 3 {
		return false
	}
	for _, g := range groups {
		if _, err := strconv.ParseUint(g, 10, 64); err != nil {
			return false
		}
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return false
		}
	}
	return true
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDateTime(v string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseDate(v string) (time.Time, bool) {
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, true
	}
	return parseDateTime(v)
}
