package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tractis/proposal-engine/internal/entity"
	"github.com/tractis/proposal-engine/internal/pkg/schema"
	"go.uber.org/zap"
)

// The canned responses must satisfy the same contracts real provider output
// is held to, or mock mode would break in ways real mode would not.
func TestMockResponsesSatisfyStageContracts(t *testing.T) {
	t.Run("parser", func(t *testing.T) {
		out, err := schema.ParseParserOutput(mockResponses[entity.StageParser])
		require.NoError(t, err)
		assert.Equal(t, entity.OverallComplete, out.Overall)
	})

	t.Run("enrichment", func(t *testing.T) {
		raw := mockResponses[entity.StageEnrichment]

		content, err := schema.ParseEnrichedContent(raw)
		require.NoError(t, err)
		assert.NotEmpty(t, content.ExecutiveSummary)

		// The text must read as a completing turn.
		assert.Contains(t, strings.ToLower(raw), "all sections are now complete")
		assert.Contains(t, raw, "```json")
	})

	t.Run("designer", func(t *testing.T) {
		out, err := schema.ParseDesignerOutput(mockResponses[entity.StageDesigner])
		require.NoError(t, err)
		assert.NotEmpty(t, out.VariantReasoning)
	})
}

func TestMockClient_Complete(t *testing.T) {
	client := NewMockClient(entity.StageParser, zap.NewNop())

	resp, err := client.Complete(context.Background(), "system", nil)
	require.NoError(t, err)
	assert.Equal(t, mockResponses[entity.StageParser], resp)
}
