package dom

// OperationType is the HTTP method an Operation is bound to on a PathItem.
type OperationType string

// Operation types in traversal order.
const (
	OperationGet     OperationType = "get"
	OperationPut     OperationType = "put"
	OperationPost    OperationType = "post"
	OperationDelete  OperationType = "delete"
	OperationOptions OperationType = "options"
	OperationHead    OperationType = "head"
	OperationPatch   OperationType = "patch"
	OperationTrace   OperationType = "trace"
)

// OperationTypes lists operation types in traversal order.
var OperationTypes = []OperationType{
	OperationGet, OperationPut, OperationPost, OperationDelete,
	OperationOptions, OperationHead, OperationPatch, OperationTrace,
}

// PathItem describes the operations available on a single path.
type PathItem struct {
	Summary     string                       `json:"summary,omitempty"`
	Description string                       `json:"description,omitempty"`
	Operations  map[OperationType]*Operation `json:"-"`
	Servers     []*Server                    `json:"servers,omitempty"`
	Parameters  []*Parameter                 `json:"parameters,omitempty"`
	Extensions  Extensions                   `json:"-"`
}

// Callback maps runtime expressions to path items invoked out of band.
// Path items may form cycles through nested callbacks.
type Callback struct {
	Reference           *Reference           `json:"-"`
	UnresolvedReference bool                 `json:"-"`
	PathItems           map[string]*PathItem `json:"-"`
	Extensions          Extensions           `json:"-"`
}

// ParameterLocation is where a parameter appears.
type ParameterLocation string

// Parameter locations.
const (
	InQuery  ParameterLocation = "query"
	InHeader ParameterLocation = "header"
	InPath   ParameterLocation = "path"
	InCookie ParameterLocation = "cookie"
)

// Parameter describes an operation or channel parameter.
// Location holds the AsyncAPI runtime expression for channel parameters.
type Parameter struct {
	Reference           *Reference            `json:"-"`
	UnresolvedReference bool                  `json:"-"`
	Name                string                `json:"name,omitempty"`
	In                  ParameterLocation     `json:"in,omitempty"`
	Description         string                `json:"description,omitempty"`
	Required            bool                  `json:"required,omitempty"`
	Deprecated          bool                  `json:"deprecated,omitempty"`
	AllowEmptyValue     bool                  `json:"allowEmptyValue,omitempty"`
	Style               string                `json:"style,omitempty"`
	Explode             *bool                 `json:"explode,omitempty"`
	Location            string                `json:"location,omitempty"`
	Schema              *Schema               `json:"schema,omitempty"`
	Example             Any                   `json:"-"`
	Examples            map[string]*Example   `json:"examples,omitempty"`
	Content             map[string]*MediaType `json:"content,omitempty"`
	Extensions          Extensions            `json:"-"`
}

// RequestBody describes a single request body.
type RequestBody struct {
	Reference           *Reference            `json:"-"`
	UnresolvedReference bool                  `json:"-"`
	Description         string                `json:"description,omitempty"`
	Content             map[string]*MediaType `json:"content,omitempty"`
	Required            bool                  `json:"required,omitempty"`
	Extensions          Extensions            `json:"-"`
}

// MediaType pairs a schema with examples for one content type.
type MediaType struct {
	Schema     *Schema             `json:"schema,omitempty"`
	Example    Any                 `json:"-"`
	Examples   map[string]*Example `json:"examples,omitempty"`
	Extensions Extensions          `json:"-"`
}

// Response describes a single response from an operation.
type Response struct {
	Reference           *Reference            `json:"-"`
	UnresolvedReference bool                  `json:"-"`
	Description         string                `json:"description"`
	Headers             map[string]*Header    `json:"headers,omitempty"`
	Content             map[string]*MediaType `json:"content,omitempty"`
	Links               map[string]*Link      `json:"links,omitempty"`
	Extensions          Extensions            `json:"-"`
}

// Header describes a response header.
type Header struct {
	Reference           *Reference            `json:"-"`
	UnresolvedReference bool                  `json:"-"`
	Description         string                `json:"description,omitempty"`
	Required            bool                  `json:"required,omitempty"`
	Deprecated          bool                  `json:"deprecated,omitempty"`
	Style               string                `json:"style,omitempty"`
	Explode             *bool                 `json:"explode,omitempty"`
	Schema              *Schema               `json:"schema,omitempty"`
	Example             Any                   `json:"-"`
	Examples            map[string]*Example   `json:"examples,omitempty"`
	Content             map[string]*MediaType `json:"content,omitempty"`
	Extensions          Extensions            `json:"-"`
}

// Example holds an example value or a link to one.
type Example struct {
	Reference           *Reference `json:"-"`
	UnresolvedReference bool       `json:"-"`
	Summary             string     `json:"summary,omitempty"`
	Description         string     `json:"description,omitempty"`
	Value               Any        `json:"-"`
	ExternalValue       string     `json:"externalValue,omitempty"`
	Extensions          Extensions `json:"-"`
}

// Link describes a design-time link for a response.
type Link struct {
	Reference           *Reference     `json:"-"`
	UnresolvedReference bool           `json:"-"`
	OperationRef        string         `json:"operationRef,omitempty"`
	OperationID         string         `json:"operationId,omitempty"`
	Parameters          map[string]Any `json:"-"`
	RequestBody         Any            `json:"-"`
	Description         string         `json:"description,omitempty"`
	Server              *Server        `json:"server,omitempty"`
	Extensions          Extensions     `json:"-"`
}
