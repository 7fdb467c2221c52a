package agent

import (
	"regexp"
	"strings"
)

// Completion signals the enrichment model may emit in free text. Detection is
// deliberately loose on the textual side and strict on the JSON side: the
// phrases and markers only nominate a turn as complete, schema validation of
// the embedded JSON decides.
var completionPhrases = []*regexp.Regexp{
	regexp.MustCompile(`(?i)all\s+sections\s+(are\s+)?(now\s+)?complete`),
	regexp.MustCompile(`(?i)enrichment\s+(is\s+)?(now\s+)?complete`),
	regexp.MustCompile(`(?i)ready\s+(to\s+)?(pass|proceed)\s+to\s+(the\s+)?designer`),
	regexp.MustCompile(`(?i)passing\s+(this\s+)?to\s+(the\s+)?designer\s+agent`),
}

var completionMarkers = []string{
	`"status": "complete"`,
	`"readyForDesigner": true`,
	`"isComplete": true`,
}

// hasCompletionSignal reports whether the assistant text nominates itself as
// the final enrichment turn. It requires a textual signal (phrase or marker)
// AND a fenced block recognizable as proposal JSON.
func hasCompletionSignal(responseText string) bool {
	hasPhrase := false
	for _, pattern := range completionPhrases {
		if pattern.MatchString(responseText) {
			hasPhrase = true
			break
		}
	}

	hasMarker := false
	for _, marker := range completionMarkers {
		if strings.Contains(responseText, marker) {
			hasMarker = true
			break
		}
	}

	hasJSONBlock := strings.Contains(responseText, "```json") &&
		(strings.Contains(responseText, "executiveSummary") ||
			strings.Contains(responseText, "needs"))

	return (hasPhrase && hasJSONBlock) || (hasMarker && hasJSONBlock)
}
