package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCompletionSignal(t *testing.T) {
	jsonBlock := "```json\n{\"executiveSummary\": \"x\"}\n```"

	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "phrase without json block",
			text: "All sections are now complete, thanks for your patience.",
			want: false,
		},
		{
			name: "json block without phrase or marker",
			text: "Here is the current draft:\n" + jsonBlock,
			want: false,
		},
		{
			name: "phrase with json block",
			text: "All sections are now complete.\n" + jsonBlock,
			want: true,
		},
		{
			name: "phrase with optional words elided",
			text: "all sections complete, here you go:\n" + jsonBlock,
			want: true,
		},
		{
			name: "designer hand-off phrase",
			text: "We are ready to pass to the designer.\n" + jsonBlock,
			want: true,
		},
		{
			name: "proceed variant of hand-off phrase",
			text: "Ready to proceed to designer.\n" + jsonBlock,
			want: true,
		},
		{
			name: "marker with json block",
			text: "Done.\n```json\n{\"needs\": [], \"isComplete\": true}\n```",
			want: true,
		},
		{
			name: "status marker with json block",
			text: "```json\n{\"needs\": [], \"status\": \"complete\"}\n```",
			want: true,
		},
		{
			name: "marker without json fence",
			text: `The payload would contain "isComplete": true eventually.`,
			want: false,
		},
		{
			name: "phrase case insensitive",
			text: "ENRICHMENT IS NOW COMPLETE\n" + jsonBlock,
			want: true,
		},
		{
			name: "json fence without recognizable keys",
			text: "All sections are now complete.\n```json\n{\"foo\": 1}\n```",
			want: false,
		},
		{
			name: "plain conversational turn",
			text: "Could you tell me more about your pricing expectations?",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasCompletionSignal(tt.text))
		})
	}
}
