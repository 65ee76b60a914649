package parser

import (
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asynctools/coerce"
	"github.com/erraggy/asynctools/dom"
)

func (d *decoder) schema(n *yaml.Node) *dom.Schema {
	if ph, ok := placeholder[*dom.Schema](d, n, dom.RefSchema); ok {
		return ph
	}
	s := &dom.Schema{AdditionalPropertiesAllowed: true}
	var (
		defaultNode, exampleNode *yaml.Node
		enumNode                 *yaml.Node
	)
	d.each(n, "schema", func(key string, v *yaml.Node) {
		switch key {
		case "title":
			s.Title = d.str(v, key)
		case "description":
			s.Description = d.str(v, key)
		case "type":
			d.schemaType(s, v)
		case "format":
			s.Format = d.str(v, key)
		case "multipleOf":
			s.MultipleOf = d.floatPtr(v, key)
		case "maximum":
			s.Maximum = d.floatPtr(v, key)
		case "exclusiveMaximum":
			s.ExclusiveMaximum = d.exclusiveBound(v, key, &s.Maximum)
		case "minimum":
			s.Minimum = d.floatPtr(v, key)
		case "exclusiveMinimum":
			s.ExclusiveMinimum = d.exclusiveBound(v, key, &s.Minimum)
		case "maxLength":
			s.MaxLength = d.intPtr(v, key)
		case "minLength":
			s.MinLength = d.intPtr(v, key)
		case "pattern":
			s.Pattern = d.str(v, key)
		case "items":
			s.Items = d.schema(v)
		case "maxItems":
			s.MaxItems = d.intPtr(v, key)
		case "minItems":
			s.MinItems = d.intPtr(v, key)
		case "uniqueItems":
			s.UniqueItems = d.boolean(v, key)
		case "properties":
			s.Properties = decodeMap(d, v, key, d.schema)
		case "maxProperties":
			s.MaxProperties = d.intPtr(v, key)
		case "minProperties":
			s.MinProperties = d.intPtr(v, key)
		case "required":
			s.Required = dedupe(d.strings(v, key))
		case "additionalProperties":
			if v.Kind == yaml.ScalarNode {
				s.AdditionalPropertiesAllowed = d.boolean(v, key)
				return
			}
			s.AdditionalProperties = d.schema(v)
		case "allOf":
			s.AllOf = decodeList(d, v, key, d.schema)
		case "anyOf":
			s.AnyOf = decodeList(d, v, key, d.schema)
		case "oneOf":
			s.OneOf = decodeList(d, v, key, d.schema)
		case "not":
			s.Not = d.schema(v)
		case "discriminator":
			s.Discriminator = d.discriminator(v)
		case "default":
			defaultNode = v
		case "example":
			exampleNode = v
		case "enum":
			enumNode = v
		case "nullable":
			s.Nullable = d.boolean(v, key)
		case "readOnly":
			s.ReadOnly = d.boolean(v, key)
		case "writeOnly":
			s.WriteOnly = d.boolean(v, key)
		case "deprecated":
			s.Deprecated = d.boolean(v, key)
		case "externalDocs":
			s.ExternalDocs = d.externalDocs(v)
		default:
			d.extension(&s.Extensions, key, v)
		}
	})

	// Values are typed once the schema they are typed against is complete.
	if defaultNode != nil {
		s.Default = coerce.Value(d.value(defaultNode), s)
	}
	if exampleNode != nil {
		s.Example = coerce.Value(d.value(exampleNode), s)
	}
	if enumNode != nil {
		s.Enum = decodeList(d, enumNode, "enum", func(v *yaml.Node) dom.Any {
			return coerce.Value(d.value(v), s)
		})
	}
	return s
}

// schemaType accepts a single type or a list of types. A "null" entry in a
// list sets Nullable; the first other entry becomes the type.
func (d *decoder) schemaType(s *dom.Schema, v *yaml.Node) {
	if v.Kind != yaml.SequenceNode {
		s.Type = d.str(v, "type")
		return
	}
	for _, t := range d.strings(v, "type") {
		if t == "null" {
			s.Nullable = true
			continue
		}
		if s.Type == "" {
			s.Type = t
		}
	}
}

// exclusiveBound accepts the boolean form, or the numeric form which also
// sets the bound.
func (d *decoder) exclusiveBound(v *yaml.Node, key string, bound **float64) bool {
	if v.ShortTag() == "!!bool" {
		return d.boolean(v, key)
	}
	if f := d.floatPtr(v, key); f != nil {
		*bound = f
		return true
	}
	return false
}

func (d *decoder) discriminator(n *yaml.Node) *dom.Discriminator {
	disc := &dom.Discriminator{}
	d.each(n, "discriminator", func(key string, v *yaml.Node) {
		switch key {
		case "propertyName":
			disc.PropertyName = d.str(v, key)
		case "mapping":
			disc.Mapping = d.stringMap(v, key)
		}
	})
	return disc
}

func (d *decoder) securityScheme(n *yaml.Node) *dom.SecurityScheme {
	if ph, ok := placeholder[*dom.SecurityScheme](d, n, dom.RefSecurityScheme); ok {
		return ph
	}
	s := &dom.SecurityScheme{}
	d.each(n, "security scheme", func(key string, v *yaml.Node) {
		switch key {
		case "type":
			s.Type = dom.SecuritySchemeType(d.str(v, key))
		case "description":
			s.Description = d.str(v, key)
		case "name":
			s.Name = d.str(v, key)
		case "in":
			s.In = d.str(v, key)
		case "scheme":
			s.Scheme = d.str(v, key)
		case "bearerFormat":
			s.BearerFormat = d.str(v, key)
		case "flows":
			s.Flows = d.oauthFlows(v)
		case "openIdConnectUrl":
			s.OpenIDConnectURL = d.str(v, key)
		default:
			d.extension(&s.Extensions, key, v)
		}
	})
	return s
}

func (d *decoder) oauthFlows(n *yaml.Node) *dom.OAuthFlows {
	flows := &dom.OAuthFlows{}
	d.each(n, "flows", func(key string, v *yaml.Node) {
		switch key {
		case "implicit":
			flows.Implicit = d.oauthFlow(v)
		case "password":
			flows.Password = d.oauthFlow(v)
		case "clientCredentials":
			flows.ClientCredentials = d.oauthFlow(v)
		case "authorizationCode":
			flows.AuthorizationCode = d.oauthFlow(v)
		default:
			d.extension(&flows.Extensions, key, v)
		}
	})
	return flows
}

func (d *decoder) oauthFlow(n *yaml.Node) *dom.OAuthFlow {
	f := &dom.OAuthFlow{}
	d.each(n, "flow", func(key string, v *yaml.Node) {
		switch key {
		case "authorizationUrl":
			f.AuthorizationURL = d.str(v, key)
		case "tokenUrl":
			f.TokenURL = d.str(v, key)
		case "refreshUrl":
			f.RefreshURL = d.str(v, key)
		case "scopes":
			f.Scopes = d.stringMap(v, key)
		default:
			d.extension(&f.Extensions, key, v)
		}
	})
	return f
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
