package dom

// Schema is a JSON Schema subset used for payloads, parameters and bodies.
// Schemas may be cyclic through any child slot.
type Schema struct {
	Reference           *Reference `json:"-"`
	UnresolvedReference bool       `json:"-"`

	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`

	// Numeric constraints
	MultipleOf       *float64 `json:"multipleOf,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMaximum bool     `json:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `json:"minimum,omitempty"`
	ExclusiveMinimum bool     `json:"exclusiveMinimum,omitempty"`

	// String constraints
	MaxLength *int   `json:"maxLength,omitempty"`
	MinLength *int   `json:"minLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Array constraints
	Items       *Schema `json:"items,omitempty"`
	MaxItems    *int    `json:"maxItems,omitempty"`
	MinItems    *int    `json:"minItems,omitempty"`
	UniqueItems bool    `json:"uniqueItems,omitempty"`

	// Object constraints
	Properties    map[string]*Schema `json:"properties,omitempty"`
	MaxProperties *int               `json:"maxProperties,omitempty"`
	MinProperties *int               `json:"minProperties,omitempty"`
	Required      []string           `json:"required,omitempty"`
	// AdditionalPropertiesAllowed is false only for "additionalProperties: false".
	AdditionalPropertiesAllowed bool    `json:"-"`
	AdditionalProperties        *Schema `json:"additionalProperties,omitempty"`

	// Composition
	AllOf []*Schema `json:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`

	Discriminator *Discriminator `json:"discriminator,omitempty"`
	Default       Any            `json:"-"`
	Example       Any            `json:"-"`
	Enum          []Any          `json:"-"`
	Nullable      bool           `json:"nullable,omitempty"`
	ReadOnly      bool           `json:"readOnly,omitempty"`
	WriteOnly     bool           `json:"writeOnly,omitempty"`
	Deprecated    bool           `json:"deprecated,omitempty"`
	ExternalDocs  *ExternalDocs  `json:"externalDocs,omitempty"`
	Extensions    Extensions     `json:"-"`
}

// IsRequired reports whether name is listed in Required.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Discriminator selects a schema alternative by the value of a property.
type Discriminator struct {
	PropertyName string            `json:"propertyName"`
	Mapping      map[string]string `json:"mapping,omitempty"`
}
