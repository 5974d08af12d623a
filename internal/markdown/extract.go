package markdown

import "regexp"

// htmlFencePattern matches a closed code fence tagged exactly `html`. Only
// tag-matched fences qualify for preview extraction; untagged or
// differently-tagged fences still render as generic code blocks.
var htmlFencePattern = regexp.MustCompile("```html\\n((?s:.*?))```")

// ExtractHTML returns the inner payload of the first html-tagged fence in s,
// or ok=false when no such fence is present or its closing marker has not
// arrived yet. Only the first qualifying fence is used even if the text
// contains several; multi-artifact messages are out of scope.
func ExtractHTML(s string) (string, bool) {
	parts := htmlFencePattern.FindStringSubmatch(s)
	if parts == nil {
		return "", false
	}
	return parts[1], true
}
