package pathutil

import (
	"regexp"

	"github.com/go-openapi/jsonpointer"
)

// PathParamRegex matches name expressions like {paramName} in path templates
// and channel names. It captures the parameter name inside the braces.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// ParamNames returns the parameter names declared by a path template or channel name.
func ParamNames(template string) []string {
	matches := PathParamRegex.FindAllStringSubmatch(template, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

func escapeToken(s string) string {
	return jsonpointer.Escape(s)
}
