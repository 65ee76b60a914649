package dom

// ElementKind identifies the concrete kind of an Element.
type ElementKind int

// Element kinds.
const (
	KindDocument ElementKind = iota
	KindInfo
	KindContact
	KindLicense
	KindExternalDocs
	KindTag
	KindServer
	KindServerVariable
	KindChannel
	KindPathItem
	KindOperation
	KindParameter
	KindRequestBody
	KindMediaType
	KindResponse
	KindHeader
	KindExample
	KindLink
	KindCallback
	KindMessage
	KindSchema
	KindDiscriminator
	KindSecurityScheme
	KindOAuthFlows
	KindOAuthFlow
	KindSecurityRequirement
	KindComponents
)

var elementKindNames = [...]string{
	KindDocument:            "Document",
	KindInfo:                "Info",
	KindContact:             "Contact",
	KindLicense:             "License",
	KindExternalDocs:        "ExternalDocs",
	KindTag:                 "Tag",
	KindServer:              "Server",
	KindServerVariable:      "ServerVariable",
	KindChannel:             "Channel",
	KindPathItem:            "PathItem",
	KindOperation:           "Operation",
	KindParameter:           "Parameter",
	KindRequestBody:         "RequestBody",
	KindMediaType:           "MediaType",
	KindResponse:            "Response",
	KindHeader:              "Header",
	KindExample:             "Example",
	KindLink:                "Link",
	KindCallback:            "Callback",
	KindMessage:             "Message",
	KindSchema:              "Schema",
	KindDiscriminator:       "Discriminator",
	KindSecurityScheme:      "SecurityScheme",
	KindOAuthFlows:          "OAuthFlows",
	KindOAuthFlow:           "OAuthFlow",
	KindSecurityRequirement: "SecurityRequirement",
	KindComponents:          "Components",
}

// String returns the name of the element kind.
func (k ElementKind) String() string {
	if k >= 0 && int(k) < len(elementKindNames) {
		return elementKindNames[k]
	}
	return "Unknown"
}

// Element is a node of a document graph.
// The interface is sealed: only types in this package implement it.
type Element interface {
	Kind() ElementKind
	isElement()
}

// Extensions maps specification extension names ("x-*") to their values.
type Extensions map[string]Any

// Extensible is implemented by elements that carry specification extensions.
type Extensible interface {
	Element
	GetExtensions() Extensions
}

// Kind reports the element kind of the receiver. It is safe on nil pointers.
func (*Document) Kind() ElementKind           { return KindDocument }
func (*Info) Kind() ElementKind               { return KindInfo }
func (*Contact) Kind() ElementKind            { return KindContact }
func (*License) Kind() ElementKind            { return KindLicense }
func (*ExternalDocs) Kind() ElementKind       { return KindExternalDocs }
func (*Tag) Kind() ElementKind                { return KindTag }
func (*Server) Kind() ElementKind             { return KindServer }
func (*ServerVariable) Kind() ElementKind     { return KindServerVariable }
func (*Channel) Kind() ElementKind            { return KindChannel }
func (*PathItem) Kind() ElementKind           { return KindPathItem }
func (*Operation) Kind() ElementKind          { return KindOperation }
func (*Parameter) Kind() ElementKind          { return KindParameter }
func (*RequestBody) Kind() ElementKind        { return KindRequestBody }
func (*MediaType) Kind() ElementKind          { return KindMediaType }
func (*Response) Kind() ElementKind           { return KindResponse }
func (*Header) Kind() ElementKind             { return KindHeader }
func (*Example) Kind() ElementKind            { return KindExample }
func (*Link) Kind() ElementKind               { return KindLink }
func (*Callback) Kind() ElementKind           { return KindCallback }
func (*Message) Kind() ElementKind            { return KindMessage }
func (*Schema) Kind() ElementKind             { return KindSchema }
func (*Discriminator) Kind() ElementKind      { return KindDiscriminator }
func (*SecurityScheme) Kind() ElementKind     { return KindSecurityScheme }
func (*OAuthFlows) Kind() ElementKind         { return KindOAuthFlows }
func (*OAuthFlow) Kind() ElementKind          { return KindOAuthFlow }
func (SecurityRequirement) Kind() ElementKind { return KindSecurityRequirement }
func (*Components) Kind() ElementKind         { return KindComponents }

func (*Document) isElement()           {}
func (*Info) isElement()               {}
func (*Contact) isElement()            {}
func (*License) isElement()            {}
func (*ExternalDocs) isElement()       {}
func (*Tag) isElement()                {}
func (*Server) isElement()             {}
func (*ServerVariable) isElement()     {}
func (*Channel) isElement()            {}
func (*PathItem) isElement()           {}
func (*Operation) isElement()          {}
func (*Parameter) isElement()          {}
func (*RequestBody) isElement()        {}
func (*MediaType) isElement()          {}
func (*Response) isElement()           {}
func (*Header) isElement()             {}
func (*Example) isElement()            {}
func (*Link) isElement()               {}
func (*Callback) isElement()           {}
func (*Message) isElement()            {}
func (*Schema) isElement()             {}
func (*Discriminator) isElement()      {}
func (*SecurityScheme) isElement()     {}
func (*OAuthFlows) isElement()         {}
func (*OAuthFlow) isElement()          {}
func (SecurityRequirement) isElement() {}
func (*Components) isElement()         {}

// GetExtensions returns the "x-" extensions declared on the element.
func (d *Document) GetExtensions() Extensions       { return d.Extensions }
func (i *Info) GetExtensions() Extensions           { return i.Extensions }
func (c *Contact) GetExtensions() Extensions        { return c.Extensions }
func (l *License) GetExtensions() Extensions        { return l.Extensions }
func (e *ExternalDocs) GetExtensions() Extensions   { return e.Extensions }
func (t *Tag) GetExtensions() Extensions            { return t.Extensions }
func (s *Server) GetExtensions() Extensions         { return s.Extensions }
func (v *ServerVariable) GetExtensions() Extensions { return v.Extensions }
func (c *Channel) GetExtensions() Extensions        { return c.Extensions }
func (p *PathItem) GetExtensions() Extensions       { return p.Extensions }
func (o *Operation) GetExtensions() Extensions      { return o.Extensions }
func (p *Parameter) GetExtensions() Extensions      { return p.Extensions }
func (r *RequestBody) GetExtensions() Extensions    { return r.Extensions }
func (m *MediaType) GetExtensions() Extensions      { return m.Extensions }
func (r *Response) GetExtensions() Extensions       { return r.Extensions }
func (h *Header) GetExtensions() Extensions         { return h.Extensions }
func (e *Example) GetExtensions() Extensions        { return e.Extensions }
func (l *Link) GetExtensions() Extensions           { return l.Extensions }
func (c *Callback) GetExtensions() Extensions       { return c.Extensions }
func (m *Message) GetExtensions() Extensions        { return m.Extensions }
func (s *Schema) GetExtensions() Extensions         { return s.Extensions }
func (s *SecurityScheme) GetExtensions() Extensions { return s.Extensions }
func (f *OAuthFlows) GetExtensions() Extensions     { return f.Extensions }
func (f *OAuthFlow) GetExtensions() Extensions      { return f.Extensions }
func (c *Components) GetExtensions() Extensions     { return c.Extensions }
