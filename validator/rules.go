package validator

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/nobl9/govy/pkg/govy"
	"github.com/nobl9/govy/pkg/rules"

	"github.com/erraggy/asynctools/dom"
	"github.com/erraggy/asynctools/internal/httputil"
	"github.com/erraggy/asynctools/internal/pathutil"
)

// Default rule names.
const (
	RuleDocumentVersion     = "document-version"
	RuleDocumentInfo        = "document-info"
	RuleInfoFields          = "info-fields"
	RuleContactFields       = "contact-fields"
	RuleLicenseFields       = "license-fields"
	RuleExternalDocsURL     = "external-docs-url"
	RuleServerFields        = "server-fields"
	RuleServerVariables     = "server-variables"
	RuleServerVariable      = "server-variable"
	RuleChannelParameters   = "channel-parameters"
	RulePathParameters      = "path-parameters"
	RuleOperationIDUnique   = "operation-id-unique"
	RuleResponseCodes       = "response-codes"
	RuleMediaType           = "media-type"
	RuleParameterFields     = "parameter-fields"
	RuleResponseDescription = "response-description"
	RuleSchemaDiscriminator = "schema-discriminator"
	RuleSchemaRequired      = "schema-required-properties"
	RuleSecurityScheme      = "security-scheme-fields"
	RuleOAuthFlowURLs       = "oauth-flow-urls"
	RuleLinkOperation       = "link-operation"
	RuleTagName             = "tag-name"
	RuleComponentKeys       = "component-keys"
	RuleExtensionKeys       = "extension-keys"
	RuleReferenceResolved   = "reference-resolved"
)

// DefaultRuleSet returns the rules applied when no rule set is configured.
func DefaultRuleSet() *RuleSet {
	return NewRuleSet(
		NewRule(RuleDocumentVersion, func(c *Context, d *dom.Document) { report(c, RuleDocumentVersion, documentVersionValidator, d) }),
		NewRule(RuleDocumentInfo, func(c *Context, d *dom.Document) { report(c, RuleDocumentInfo, documentInfoValidator, d) }),
		NewRule(RuleOperationIDUnique, checkOperationID),
		NewRule(RuleInfoFields, func(c *Context, i *dom.Info) { report(c, RuleInfoFields, infoValidator, i) }),
		NewRule(RuleContactFields, func(c *Context, ct *dom.Contact) { report(c, RuleContactFields, contactValidator, ct) }),
		NewRule(RuleLicenseFields, func(c *Context, l *dom.License) { report(c, RuleLicenseFields, licenseValidator, l) }),
		NewRule(RuleExternalDocsURL, func(c *Context, d *dom.ExternalDocs) { report(c, RuleExternalDocsURL, externalDocsValidator, d) }),
		NewRule(RuleServerFields, func(c *Context, s *dom.Server) { report(c, RuleServerFields, serverValidator, s) }),
		NewRule(RuleServerVariables, checkServerVariables),
		NewRule(RuleServerVariable, func(c *Context, v *dom.ServerVariable) { report(c, RuleServerVariable, serverVariableValidator, v) }),
		NewRule(RuleChannelParameters, checkChannelParameters),
		NewRule(RulePathParameters, checkPathParameters),
		NewRule(RuleResponseCodes, checkResponseCodes),
		NewRule(RuleMediaType, checkDefaultContentType),
		NewRule(RuleMediaType, checkMessageContentType),
		NewRule(RuleMediaType, checkMediaType),
		NewRule(RuleParameterFields, checkParameter),
		NewRule(RuleResponseDescription, func(c *Context, r *dom.Response) { report(c, RuleResponseDescription, responseValidator, r) }),
		NewRule(RuleSchemaDiscriminator, checkDiscriminator),
		NewRule(RuleSchemaRequired, checkRequiredProperties),
		NewRule(RuleSecurityScheme, func(c *Context, s *dom.SecurityScheme) { report(c, RuleSecurityScheme, securitySchemeValidator, s) }),
		NewRule(RuleOAuthFlowURLs, checkOAuthFlows),
		NewRule(RuleLinkOperation, func(c *Context, l *dom.Link) { report(c, RuleLinkOperation, linkValidator, l) }),
		NewRule(RuleTagName, func(c *Context, t *dom.Tag) { report(c, RuleTagName, tagValidator, t) }),
		NewRule(RuleComponentKeys, checkComponentKeys),
		NewExtensibleRule(RuleExtensionKeys, checkExtensionKeys),
		NewReferenceRule(RuleReferenceResolved, checkReference),
	)
}

// report runs a govy validator against el and records each rule error at
// the path of the offending property.
func report[T any](c *Context, rule string, v govy.Validator[T], el T) {
	err := v.Validate(el)
	if err == nil {
		return
	}
	var verr *govy.ValidatorError
	if !errors.As(err, &verr) {
		c.CreateError(rule, err.Error())
		return
	}
	for _, pe := range verr.Errors {
		for _, re := range pe.Errors {
			if pe.PropertyName == "" {
				c.CreateError(rule, re.Message)
				continue
			}
			c.Enter(pe.PropertyName)
			c.CreateError(rule, re.Message)
			c.Exit()
		}
	}
}

var (
	componentKeyRule = rules.StringMatchRegexp(regexp.MustCompile(`^[a-zA-Z0-9.\-_]+$`))
	extensionKeyRule = rules.StringStartsWith("x-")
	urlRule          = rules.StringURL()
)

var statusCodeRule = govy.NewRule(func(code string) error {
	if httputil.ValidStatusCode(code) {
		return nil
	}
	return errors.New("must be an HTTP status code, a range like 2XX, or default")
})

var mediaTypeRule = govy.NewRule(func(mt string) error {
	if httputil.IsValidMediaType(mt) {
		return nil
	}
	return fmt.Errorf("invalid media type '%s'", mt)
})

var documentVersionValidator = govy.New[*dom.Document](
	govy.For(govy.GetSelf[*dom.Document]()).
		Rules(rules.MutuallyExclusive(true, map[string]func(*dom.Document) any{
			"asyncapi": func(d *dom.Document) any { return d.AsyncAPI },
			"openapi":  func(d *dom.Document) any { return d.OpenAPI },
		})),
)

var documentInfoValidator = govy.New[*dom.Document](
	govy.ForPointer(func(d *dom.Document) *dom.Info { return d.Info }).
		WithName("info").
		Required(),
)

var infoValidator = govy.New[*dom.Info](
	govy.For(func(i *dom.Info) string { return i.Title }).
		WithName("title").
		Required(),
	govy.For(func(i *dom.Info) string { return i.Version }).
		WithName("version").
		Required(),
)

var contactValidator = govy.New[*dom.Contact](
	govy.For(func(c *dom.Contact) string { return c.URL }).
		WithName("url").
		OmitEmpty().
		Rules(rules.StringURL()),
	govy.For(func(c *dom.Contact) string { return c.Email }).
		WithName("email").
		OmitEmpty().
		Rules(rules.StringEmail()),
)

var licenseValidator = govy.New[*dom.License](
	govy.For(func(l *dom.License) string { return l.Name }).
		WithName("name").
		Required(),
	govy.For(func(l *dom.License) string { return l.URL }).
		WithName("url").
		OmitEmpty().
		Rules(rules.StringURL()),
)

var externalDocsValidator = govy.New[*dom.ExternalDocs](
	govy.For(func(d *dom.ExternalDocs) string { return d.URL }).
		WithName("url").
		Required().
		Rules(rules.StringURL()),
)

var serverValidator = govy.New[*dom.Server](
	govy.For(func(s *dom.Server) string { return s.URL }).
		WithName("url").
		Required(),
)

var serverVariableValidator = govy.New[*dom.ServerVariable](
	govy.For(func(v *dom.ServerVariable) string { return v.Default }).
		WithName("default").
		Required(),
	govy.For(govy.GetSelf[*dom.ServerVariable]()).
		Rules(govy.NewRule(func(v *dom.ServerVariable) error {
			if len(v.Enum) == 0 || v.Default == "" || slices.Contains(v.Enum, v.Default) {
				return nil
			}
			return fmt.Errorf("default %q is not one of the enum values", v.Default)
		})),
)

var parameterValidator = govy.New[*dom.Parameter](
	govy.For(func(p *dom.Parameter) string { return p.Name }).
		WithName("name").
		Required(),
	govy.For(func(p *dom.Parameter) dom.ParameterLocation { return p.In }).
		WithName("in").
		Required().
		Rules(rules.OneOf(dom.InQuery, dom.InHeader, dom.InPath, dom.InCookie)),
	govy.For(func(p *dom.Parameter) bool { return p.Required }).
		WithName("required").
		Rules(rules.EQ(true).WithMessage("path parameters must be required")).
		When(func(p *dom.Parameter) bool { return p.In == dom.InPath }),
)

var responseValidator = govy.New[*dom.Response](
	govy.For(func(r *dom.Response) string { return r.Description }).
		WithName("description").
		Required(),
)

var securitySchemeValidator = govy.New[*dom.SecurityScheme](
	govy.For(func(s *dom.SecurityScheme) dom.SecuritySchemeType { return s.Type }).
		WithName("type").
		Required().
		Rules(rules.OneOf(
			dom.SecurityAPIKey, dom.SecurityHTTP, dom.SecurityOAuth2, dom.SecurityOpenIDConnect,
			dom.SecurityUserPassword, dom.SecurityX509, dom.SecuritySymmetric, dom.SecurityAsymmetric,
			dom.SecurityHTTPAPIKey, dom.SecurityPlain, dom.SecurityScramSHA256, dom.SecurityScramSHA512,
			dom.SecurityGSSAPI,
		)),
	govy.For(func(s *dom.SecurityScheme) string { return s.Name }).
		WithName("name").
		Required().
		When(func(s *dom.SecurityScheme) bool { return s.Type == dom.SecurityHTTPAPIKey }),
	govy.For(func(s *dom.SecurityScheme) string { return s.In }).
		WithName("in").
		Required().
		When(func(s *dom.SecurityScheme) bool {
			return s.Type == dom.SecurityAPIKey || s.Type == dom.SecurityHTTPAPIKey
		}),
	govy.For(func(s *dom.SecurityScheme) string { return s.Scheme }).
		WithName("scheme").
		Required().
		When(func(s *dom.SecurityScheme) bool { return s.Type == dom.SecurityHTTP }),
	govy.ForPointer(func(s *dom.SecurityScheme) *dom.OAuthFlows { return s.Flows }).
		WithName("flows").
		Required().
		When(func(s *dom.SecurityScheme) bool { return s.Type == dom.SecurityOAuth2 }),
	govy.For(func(s *dom.SecurityScheme) string { return s.OpenIDConnectURL }).
		WithName("openIdConnectUrl").
		Required().
		Rules(rules.StringURL()).
		When(func(s *dom.SecurityScheme) bool { return s.Type == dom.SecurityOpenIDConnect }),
)

var linkValidator = govy.New[*dom.Link](
	govy.For(govy.GetSelf[*dom.Link]()).
		Rules(rules.MutuallyExclusive(true, map[string]func(*dom.Link) any{
			"operationId":  func(l *dom.Link) any { return l.OperationID },
			"operationRef": func(l *dom.Link) any { return l.OperationRef },
		})),
)

var tagValidator = govy.New[*dom.Tag](
	govy.For(func(t *dom.Tag) string { return t.Name }).
		WithName("name").
		Required(),
)

func checkOperationID(c *Context, op *dom.Operation) {
	if op.OperationID == "" {
		return
	}
	path := c.Path()
	if first := c.operationPath(op.OperationID, path); first != path {
		c.Enter("operationId")
		c.CreateError(RuleOperationIDUnique,
			fmt.Sprintf("Duplicate operationId '%s' (first seen at %s)", op.OperationID, first))
		c.Exit()
	}
}

func checkServerVariables(c *Context, s *dom.Server) {
	for _, name := range pathutil.ParamNames(s.URL) {
		if _, ok := s.Variables[name]; !ok {
			c.Enter("url")
			c.CreateError(RuleServerVariables, fmt.Sprintf("URL variable '%s' is not declared in variables", name))
			c.Exit()
		}
	}
}

// checkChannelParameters matches the name expressions of a channel address
// against its declared parameters. Component channels have no address.
func checkChannelParameters(c *Context, ch *dom.Channel) {
	if c.IsComponent() {
		return
	}
	expressions := pathutil.ParamNames(c.Name())
	for _, name := range expressions {
		if _, ok := ch.Parameters[name]; !ok {
			c.CreateError(RuleChannelParameters,
				fmt.Sprintf("Channel parameter '%s' is not declared in parameters", name))
		}
	}
	for _, name := range slices.Sorted(maps.Keys(ch.Parameters)) {
		if !slices.Contains(expressions, name) {
			c.Enter("parameters")
			c.Enter(name)
			c.CreateWarning(RuleChannelParameters,
				fmt.Sprintf("Parameter '%s' does not appear in the channel name", name))
			c.Exit()
			c.Exit()
		}
	}
}

// checkPathParameters requires every template variable of a path to be
// declared as a path parameter on the item or on each of its operations.
func checkPathParameters(c *Context, item *dom.PathItem) {
	if !strings.HasPrefix(c.Name(), "/") {
		return
	}
	for _, name := range pathutil.ParamNames(c.Name()) {
		if declaresPathParam(item.Parameters, name) {
			continue
		}
		for _, typ := range dom.OperationTypes {
			op := item.Operations[typ]
			if op == nil || declaresPathParam(op.Parameters, name) {
				continue
			}
			c.Enter(string(typ))
			c.CreateError(RulePathParameters,
				fmt.Sprintf("Path parameter '%s' is not declared", name))
			c.Exit()
		}
	}
}

func declaresPathParam(params []*dom.Parameter, name string) bool {
	for _, p := range params {
		if p != nil && !p.IsUnresolved() && p.In == dom.InPath && p.Name == name {
			return true
		}
	}
	return false
}

func checkResponseCodes(c *Context, op *dom.Operation) {
	for _, code := range slices.Sorted(maps.Keys(op.Responses)) {
		c.Enter("responses")
		c.Enter(code)
		switch err := statusCodeRule.Validate(code); {
		case err != nil:
			c.CreateError(RuleResponseCodes, err.Error())
		case len(code) == httputil.StatusCodeLength && code[1] != httputil.WildcardChar &&
			!httputil.IsStandardStatusCode(code):
			c.CreateWarning(RuleResponseCodes,
				fmt.Sprintf("Status code '%s' is not a standard HTTP status code", code))
		}
		c.Exit()
		c.Exit()
	}
}

func checkDefaultContentType(c *Context, d *dom.Document) {
	if d.DefaultContentType == "" {
		return
	}
	if err := mediaTypeRule.Validate(d.DefaultContentType); err != nil {
		c.Enter("defaultContentType")
		c.CreateError(RuleMediaType, err.Error())
		c.Exit()
	}
}

func checkMessageContentType(c *Context, m *dom.Message) {
	if m.ContentType == "" {
		return
	}
	if err := mediaTypeRule.Validate(m.ContentType); err != nil {
		c.Enter("contentType")
		c.CreateError(RuleMediaType, err.Error())
		c.Exit()
	}
}

// checkMediaType validates the content map key a media type is declared
// under.
func checkMediaType(c *Context, _ *dom.MediaType) {
	if c.Name() == "" {
		return
	}
	if err := mediaTypeRule.Validate(c.Name()); err != nil {
		c.CreateError(RuleMediaType, err.Error())
	}
}

// checkParameter applies to OpenAPI parameters; AsyncAPI channel
// parameters are keyed by name and carry no location.
func checkParameter(c *Context, p *dom.Parameter) {
	if c.IsAsyncAPI() {
		return
	}
	report(c, RuleParameterFields, parameterValidator, p)
}

func checkDiscriminator(c *Context, s *dom.Schema) {
	if s.Discriminator == nil || s.Discriminator.PropertyName == "" {
		return
	}
	if !s.IsRequired(s.Discriminator.PropertyName) {
		c.Enter("discriminator")
		c.CreateError(RuleSchemaDiscriminator, fmt.Sprintf(
			"Discriminator property '%s' must be listed in required", s.Discriminator.PropertyName))
		c.Exit()
	}
}

func checkRequiredProperties(c *Context, s *dom.Schema) {
	if len(s.Properties) == 0 {
		return
	}
	for i, name := range s.Required {
		if _, ok := s.Properties[name]; !ok {
			c.Enter("required")
			c.Enter(fmt.Sprint(i))
			c.CreateWarning(RuleSchemaRequired,
				fmt.Sprintf("Required property '%s' is not defined in properties", name))
			c.Exit()
			c.Exit()
		}
	}
}

func checkOAuthFlows(c *Context, flows *dom.OAuthFlows) {
	check := func(name string, flow *dom.OAuthFlow, needAuth, needToken bool) {
		if flow == nil {
			return
		}
		c.Enter(name)
		if needAuth {
			checkURLField(c, "authorizationUrl", flow.AuthorizationURL)
		}
		if needToken {
			checkURLField(c, "tokenUrl", flow.TokenURL)
		}
		if flow.RefreshURL != "" {
			checkURLField(c, "refreshUrl", flow.RefreshURL)
		}
		c.Exit()
	}
	check("implicit", flows.Implicit, true, false)
	check("password", flows.Password, false, true)
	check("clientCredentials", flows.ClientCredentials, false, true)
	check("authorizationCode", flows.AuthorizationCode, true, true)
}

func checkURLField(c *Context, field, value string) {
	c.Enter(field)
	defer c.Exit()
	if value == "" {
		c.CreateError(RuleOAuthFlowURLs, "property is required but was empty")
		return
	}
	if err := urlRule.Validate(value); err != nil {
		c.CreateError(RuleOAuthFlowURLs, err.Error())
	}
}

func checkComponentKeys(c *Context, comp *dom.Components) {
	checkKeys(c, "schemas", comp.Schemas)
	checkKeys(c, "messages", comp.Messages)
	checkKeys(c, "parameters", comp.Parameters)
	checkKeys(c, "responses", comp.Responses)
	checkKeys(c, "requestBodies", comp.RequestBodies)
	checkKeys(c, "headers", comp.Headers)
	checkKeys(c, "examples", comp.Examples)
	checkKeys(c, "securitySchemes", comp.SecuritySchemes)
	checkKeys(c, "links", comp.Links)
	checkKeys(c, "callbacks", comp.Callbacks)
	checkKeys(c, "channels", comp.Channels)
}

func checkKeys[V any](c *Context, segment string, m map[string]V) {
	for _, key := range slices.Sorted(maps.Keys(m)) {
		if err := componentKeyRule.Validate(key); err != nil {
			c.Enter(segment)
			c.Enter(key)
			c.CreateError(RuleComponentKeys, err.Error())
			c.Exit()
			c.Exit()
		}
	}
}

func checkExtensionKeys(c *Context, el dom.Extensible) {
	for _, key := range slices.Sorted(maps.Keys(el.GetExtensions())) {
		if err := extensionKeyRule.Validate(key); err != nil {
			c.Enter(key)
			c.CreateError(RuleExtensionKeys, err.Error())
			c.Exit()
		}
	}
}

func checkReference(c *Context, ref dom.Referenceable) {
	c.CreateError(RuleReferenceResolved,
		fmt.Sprintf("Reference '%s' is unresolved", ref.GetReference().String()))
}
