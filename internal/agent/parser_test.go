package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tractis/proposal-engine/internal/entity"
	"github.com/tractis/proposal-engine/internal/pkg/schema"
	"go.uber.org/zap"
)

const validParserResponse = "```json\n" + `{
  "content": ` + validContentJSON + `,
  "completeness": {
    "executiveSummary": "complete",
    "needs": "complete",
    "solution": "complete",
    "features": "complete",
    "roadmap": "complete",
    "pricing": "complete"
  },
  "overall": "complete",
  "missingOrWeak": []
}` + "\n```"

func TestParser_Parse(t *testing.T) {
	t.Run("valid output", func(t *testing.T) {
		client := &fakeClient{responses: []string{validParserResponse}}
		parser := NewParser(client, zap.NewNop())

		out, err := parser.Parse(context.Background(), "A long client document")
		require.NoError(t, err)
		assert.Equal(t, entity.OverallComplete, out.Overall)
		assert.Empty(t, out.MissingOrWeak)

		require.Len(t, client.calls, 1)
		require.Len(t, client.calls[0], 1)
		assert.Equal(t, entity.RoleUser, client.calls[0][0].Role)
		assert.Contains(t, client.calls[0][0].Content, "A long client document")
	})

	t.Run("provider failure is wrapped with the stage", func(t *testing.T) {
		boom := errors.New("connection reset")
		client := &fakeClient{err: boom}
		parser := NewParser(client, zap.NewNop())

		_, err := parser.Parse(context.Background(), "doc")

		var provErr *entity.ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, entity.StageParser, provErr.Stage)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("non-json output is malformed", func(t *testing.T) {
		client := &fakeClient{responses: []string{"I'm sorry, I can't parse that document."}}
		parser := NewParser(client, zap.NewNop())

		_, err := parser.Parse(context.Background(), "doc")

		var malformed *schema.MalformedOutputError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, entity.StageParser, malformed.Agent)
	})
}
