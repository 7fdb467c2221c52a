package schema

import (
	"regexp"
	"strings"
)

var (
	jsonFenceRe  = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n\\s*```")
	plainFenceRe = regexp.MustCompile("(?s)```\\s*\\n(.*?)\\n\\s*```")
)

// ExtractJSON pulls the JSON payload out of raw LLM output. A ```json fence
// wins over a plain fence; with no fences the trimmed full text is used.
func ExtractJSON(raw string) string {
	if strings.Contains(raw, "```json") {
		if m := jsonFenceRe.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}
	if strings.Contains(raw, "```") {
		if m := plainFenceRe.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}
	return strings.TrimSpace(raw)
}
