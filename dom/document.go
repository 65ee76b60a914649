package dom

// Document is the root of an AsyncAPI or OpenAPI-style specification.
// Exactly one of AsyncAPI or OpenAPI is normally set.
type Document struct {
	AsyncAPI           string                `json:"asyncapi,omitempty"`
	OpenAPI            string                `json:"openapi,omitempty"`
	ID                 string                `json:"id,omitempty"`
	DefaultContentType string                `json:"defaultContentType,omitempty"`
	Info               *Info                 `json:"info,omitempty"`
	Servers            []*Server             `json:"servers,omitempty"`
	Channels           map[string]*Channel   `json:"channels,omitempty"`
	Paths              map[string]*PathItem  `json:"paths,omitempty"`
	Components         *Components           `json:"components,omitempty"`
	Security           []SecurityRequirement `json:"-"`
	Tags               []*Tag                `json:"tags,omitempty"`
	ExternalDocs       *ExternalDocs         `json:"externalDocs,omitempty"`
	Extensions         Extensions            `json:"-"`
}

// IsAsyncAPI reports whether the document declares an AsyncAPI version.
func (d *Document) IsAsyncAPI() bool { return d != nil && d.AsyncAPI != "" }

// Info provides metadata about the API.
type Info struct {
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	TermsOfService string     `json:"termsOfService,omitempty"`
	Contact        *Contact   `json:"contact,omitempty"`
	License        *License   `json:"license,omitempty"`
	Version        string     `json:"version"`
	Extensions     Extensions `json:"-"`
}

// Contact information for the API.
type Contact struct {
	Name       string     `json:"name,omitempty"`
	URL        string     `json:"url,omitempty"`
	Email      string     `json:"email,omitempty"`
	Extensions Extensions `json:"-"`
}

// License information for the API.
type License struct {
	Name       string     `json:"name"`
	URL        string     `json:"url,omitempty"`
	Extensions Extensions `json:"-"`
}

// ExternalDocs points at external documentation.
type ExternalDocs struct {
	Description string     `json:"description,omitempty"`
	URL         string     `json:"url"`
	Extensions  Extensions `json:"-"`
}

// Tag adds metadata to a tag used by operations or messages.
// Operation tags referring to a root tag by name hold the shared root *Tag
// once references are resolved.
type Tag struct {
	Reference           *Reference    `json:"-"`
	UnresolvedReference bool          `json:"-"`
	Name                string        `json:"name"`
	Description         string        `json:"description,omitempty"`
	ExternalDocs        *ExternalDocs `json:"externalDocs,omitempty"`
	Extensions          Extensions    `json:"-"`
}

// Server describes a server hosting the API or broker hosting channels.
// Name is set when servers were declared as a named map (AsyncAPI).
type Server struct {
	Name            string                     `json:"-"`
	URL             string                     `json:"url"`
	Protocol        string                     `json:"protocol,omitempty"`
	ProtocolVersion string                     `json:"protocolVersion,omitempty"`
	Description     string                     `json:"description,omitempty"`
	Variables       map[string]*ServerVariable `json:"variables,omitempty"`
	Security        []SecurityRequirement      `json:"-"`
	Extensions      Extensions                 `json:"-"`
}

// ServerVariable is a substitution variable for a server URL template.
type ServerVariable struct {
	Enum        []string   `json:"enum,omitempty"`
	Default     string     `json:"default"`
	Description string     `json:"description,omitempty"`
	Extensions  Extensions `json:"-"`
}

// Components holds reusable objects. Map keys are component names.
type Components struct {
	Schemas         map[string]*Schema         `json:"schemas,omitempty"`
	Messages        map[string]*Message        `json:"messages,omitempty"`
	Parameters      map[string]*Parameter      `json:"parameters,omitempty"`
	Responses       map[string]*Response       `json:"responses,omitempty"`
	RequestBodies   map[string]*RequestBody    `json:"requestBodies,omitempty"`
	Headers         map[string]*Header         `json:"headers,omitempty"`
	Examples        map[string]*Example        `json:"examples,omitempty"`
	SecuritySchemes map[string]*SecurityScheme `json:"securitySchemes,omitempty"`
	Links           map[string]*Link           `json:"links,omitempty"`
	Callbacks       map[string]*Callback       `json:"callbacks,omitempty"`
	Channels        map[string]*Channel        `json:"channels,omitempty"`
	Extensions      Extensions                 `json:"-"`
}
