package dom

import (
	"cmp"
	"slices"
)

// SecuritySchemeType is the type of a security scheme.
type SecuritySchemeType string

// Security scheme types.
const (
	SecurityAPIKey        SecuritySchemeType = "apiKey"
	SecurityHTTP          SecuritySchemeType = "http"
	SecurityOAuth2        SecuritySchemeType = "oauth2"
	SecurityOpenIDConnect SecuritySchemeType = "openIdConnect"
	SecurityUserPassword  SecuritySchemeType = "userPassword"
	SecurityX509          SecuritySchemeType = "X509"
	SecuritySymmetric     SecuritySchemeType = "symmetricEncryption"
	SecurityAsymmetric    SecuritySchemeType = "asymmetricEncryption"
	SecurityHTTPAPIKey    SecuritySchemeType = "httpApiKey"
	SecurityPlain         SecuritySchemeType = "plain"
	SecurityScramSHA256   SecuritySchemeType = "scramSha256"
	SecurityScramSHA512   SecuritySchemeType = "scramSha512"
	SecurityGSSAPI        SecuritySchemeType = "gssapi"
)

// SecurityScheme defines a security scheme usable by operations.
type SecurityScheme struct {
	Reference           *Reference         `json:"-"`
	UnresolvedReference bool               `json:"-"`
	Type                SecuritySchemeType `json:"type"`
	Description         string             `json:"description,omitempty"`
	Name                string             `json:"name,omitempty"`
	In                  string             `json:"in,omitempty"`
	Scheme              string             `json:"scheme,omitempty"`
	BearerFormat        string             `json:"bearerFormat,omitempty"`
	Flows               *OAuthFlows        `json:"flows,omitempty"`
	OpenIDConnectURL    string             `json:"openIdConnectUrl,omitempty"`
	Extensions          Extensions         `json:"-"`
}

// OAuthFlows configures the supported OAuth flows.
type OAuthFlows struct {
	Implicit          *OAuthFlow `json:"implicit,omitempty"`
	Password          *OAuthFlow `json:"password,omitempty"`
	ClientCredentials *OAuthFlow `json:"clientCredentials,omitempty"`
	AuthorizationCode *OAuthFlow `json:"authorizationCode,omitempty"`
	Extensions        Extensions `json:"-"`
}

// OAuthFlow configures a single OAuth flow.
type OAuthFlow struct {
	AuthorizationURL string            `json:"authorizationUrl,omitempty"`
	TokenURL         string            `json:"tokenUrl,omitempty"`
	RefreshURL       string            `json:"refreshUrl,omitempty"`
	Scopes           map[string]string `json:"scopes,omitempty"`
	Extensions       Extensions        `json:"-"`
}

// SecurityRequirement maps security schemes to the scopes they require.
// Keys start as placeholders and are replaced by the shared component
// scheme during resolution.
type SecurityRequirement map[*SecurityScheme][]string

// Schemes returns the keys ordered by reference id, then type.
func (r SecurityRequirement) Schemes() []*SecurityScheme {
	keys := make([]*SecurityScheme, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	slices.SortStableFunc(keys, func(a, b *SecurityScheme) int {
		if c := cmp.Compare(schemeID(a), schemeID(b)); c != 0 {
			return c
		}
		return cmp.Compare(string(a.Type), string(b.Type))
	})
	return keys
}

func schemeID(s *SecurityScheme) string {
	if s == nil || s.Reference == nil {
		return ""
	}
	return s.Reference.ID
}
