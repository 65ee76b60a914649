package dom

// Channel is an addressable component of a message broker (AsyncAPI).
type Channel struct {
	Reference           *Reference            `json:"-"`
	UnresolvedReference bool                  `json:"-"`
	Description         string                `json:"description,omitempty"`
	Servers             []string              `json:"servers,omitempty"`
	Subscribe           *Operation            `json:"subscribe,omitempty"`
	Publish             *Operation            `json:"publish,omitempty"`
	Parameters          map[string]*Parameter `json:"parameters,omitempty"`
	Extensions          Extensions            `json:"-"`
}

// Message describes a message exchanged on a channel (AsyncAPI).
type Message struct {
	Reference           *Reference    `json:"-"`
	UnresolvedReference bool          `json:"-"`
	MessageID           string        `json:"messageId,omitempty"`
	Name                string        `json:"name,omitempty"`
	Title               string        `json:"title,omitempty"`
	Summary             string        `json:"summary,omitempty"`
	Description         string        `json:"description,omitempty"`
	ContentType         string        `json:"contentType,omitempty"`
	SchemaFormat        string        `json:"schemaFormat,omitempty"`
	CorrelationID       string        `json:"-"`
	Headers             *Schema       `json:"headers,omitempty"`
	Payload             *Schema       `json:"payload,omitempty"`
	Tags                []*Tag        `json:"tags,omitempty"`
	ExternalDocs        *ExternalDocs `json:"externalDocs,omitempty"`
	Examples            []Any         `json:"-"`
	// OneOf lists alternative messages; the other fields are then unused.
	OneOf      []*Message `json:"oneOf,omitempty"`
	Extensions Extensions `json:"-"`
}

// Operation describes a channel operation (AsyncAPI publish/subscribe) or an
// HTTP operation on a path item.
type Operation struct {
	OperationID  string                `json:"operationId,omitempty"`
	Summary      string                `json:"summary,omitempty"`
	Description  string                `json:"description,omitempty"`
	Tags         []*Tag                `json:"tags,omitempty"`
	ExternalDocs *ExternalDocs         `json:"externalDocs,omitempty"`
	Parameters   []*Parameter          `json:"parameters,omitempty"`
	RequestBody  *RequestBody          `json:"requestBody,omitempty"`
	Responses    map[string]*Response  `json:"responses,omitempty"`
	Callbacks    map[string]*Callback  `json:"callbacks,omitempty"`
	Deprecated   bool                  `json:"deprecated,omitempty"`
	Security     []SecurityRequirement `json:"-"`
	Servers      []*Server             `json:"servers,omitempty"`
	Message      *Message              `json:"message,omitempty"`
	Extensions   Extensions            `json:"-"`
}
