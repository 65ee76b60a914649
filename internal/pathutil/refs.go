package pathutil

// ComponentsPrefix is the fragment prefix shared by all component references.
const ComponentsPrefix = "#/components/"

// Component reference prefixes.
const (
	RefPrefixSchemas         = ComponentsPrefix + "schemas/"
	RefPrefixMessages        = ComponentsPrefix + "messages/"
	RefPrefixParameters      = ComponentsPrefix + "parameters/"
	RefPrefixResponses       = ComponentsPrefix + "responses/"
	RefPrefixRequestBodies   = ComponentsPrefix + "requestBodies/"
	RefPrefixHeaders         = ComponentsPrefix + "headers/"
	RefPrefixExamples        = ComponentsPrefix + "examples/"
	RefPrefixSecuritySchemes = ComponentsPrefix + "securitySchemes/"
	RefPrefixLinks           = ComponentsPrefix + "links/"
	RefPrefixCallbacks       = ComponentsPrefix + "callbacks/"
	RefPrefixChannels        = ComponentsPrefix + "channels/"
)

// ComponentRef builds "#/components/{kind}/{name}".
// The name is escaped as a pointer token.
func ComponentRef(kind, name string) string {
	return ComponentsPrefix + kind + "/" + escapeToken(name)
}

// SchemaRef builds "#/components/schemas/{name}".
func SchemaRef(name string) string {
	return RefPrefixSchemas + escapeToken(name)
}

// MessageRef builds "#/components/messages/{name}".
func MessageRef(name string) string {
	return RefPrefixMessages + escapeToken(name)
}

// ParameterRef builds "#/components/parameters/{name}".
func ParameterRef(name string) string {
	return RefPrefixParameters + escapeToken(name)
}
