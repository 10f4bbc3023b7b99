package service

import "regexp"

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// RenderTemplate substitutes placeholders of the form {name} with values
// from vars. Placeholders without a matching key render as the empty string.
// There is no nesting or escaping.
func RenderTemplate(template string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1 : len(match)-1]
		return vars[key]
	})
}
