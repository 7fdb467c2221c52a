package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tractis/proposal-engine/internal/entity"
	"go.uber.org/zap"
)

const completingResponse = "All sections are now complete. Ready to pass to the designer.\n\n" +
	"```json\n" + validContentJSON + "\n```"

func newEnrichment(client ChatClient) *Enrichment {
	return NewEnrichment(client, 400000, zap.NewNop())
}

func TestEnrichment_Start(t *testing.T) {
	client := &fakeClient{responses: []string{"What is your budget for this project?"}}
	enrichment := newEnrichment(client)

	gaps := []entity.MissingOrWeakItem{
		{Section: "pricing", Status: entity.VerdictMissing, Reason: "no budget information"},
	}

	turn, err := enrichment.Start(context.Background(), validContent(), gaps)
	require.NoError(t, err)
	assert.False(t, turn.Complete)
	assert.Nil(t, turn.FinalContent)
	assert.Equal(t, "What is your budget for this project?", turn.AssistantMessage)

	require.Len(t, client.calls, 1)
	require.Len(t, client.calls[0], 1)
	first := client.calls[0][0]
	assert.Equal(t, entity.RoleUser, first.Role)
	assert.Contains(t, first.Content, "Partial proposal data")
	assert.Contains(t, first.Content, "Missing/weak sections")
	assert.Contains(t, first.Content, "no budget information")
	assert.Contains(t, first.Content, "Please start the enrichment conversation")
}

func TestEnrichment_Continue(t *testing.T) {
	sess := &entity.EnrichmentSession{
		Transcript: []entity.ChatMessage{
			{Role: entity.RoleAssistant, Content: "What is your budget?"},
		},
	}

	t.Run("user message appended to candidate transcript", func(t *testing.T) {
		client := &fakeClient{responses: []string{"Got it, anything else?"}}
		enrichment := newEnrichment(client)

		turn, err := enrichment.Continue(context.Background(), sess, "Around $50k")
		require.NoError(t, err)
		assert.False(t, turn.Complete)

		require.Len(t, client.calls, 1)
		sent := client.calls[0]
		require.Len(t, sent, 2)
		assert.Equal(t, entity.RoleAssistant, sent[0].Role)
		assert.Equal(t, entity.RoleUser, sent[1].Role)
		assert.Equal(t, "Around $50k", sent[1].Content)

		// The stored transcript is never mutated by the turn itself.
		assert.Len(t, sess.Transcript, 1)
	})

	t.Run("completing turn returns validated content", func(t *testing.T) {
		client := &fakeClient{responses: []string{completingResponse}}
		enrichment := newEnrichment(client)

		turn, err := enrichment.Continue(context.Background(), sess, "That's all")
		require.NoError(t, err)
		assert.True(t, turn.Complete)
		require.NotNil(t, turn.FinalContent)
		assert.Equal(t, "A tracking platform for Acme.", turn.FinalContent.ExecutiveSummary)
	})

	t.Run("completion signal with invalid payload downgrades to another turn", func(t *testing.T) {
		bad := "All sections are now complete.\n```json\n{\"executiveSummary\": \"\", \"needs\": [], \"solution\": \"\"}\n```"
		client := &fakeClient{responses: []string{bad}}
		enrichment := newEnrichment(client)

		turn, err := enrichment.Continue(context.Background(), sess, "ok")
		require.NoError(t, err)
		assert.False(t, turn.Complete)
		assert.Nil(t, turn.FinalContent)
		assert.Equal(t, bad, turn.AssistantMessage)
	})

	t.Run("transcript over the context budget is rejected before the provider call", func(t *testing.T) {
		client := &fakeClient{responses: []string{"never reached"}}
		enrichment := NewEnrichment(client, 30, zap.NewNop())

		_, err := enrichment.Continue(context.Background(), sess, "a message that pushes the total well past thirty characters")
		require.ErrorIs(t, err, entity.ErrTranscriptTooLong)
		assert.Empty(t, client.calls)
	})

	t.Run("provider failure is wrapped with the stage", func(t *testing.T) {
		client := &fakeClient{err: assert.AnError}
		enrichment := newEnrichment(client)

		_, err := enrichment.Continue(context.Background(), sess, "hello")

		var provErr *entity.ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, entity.StageEnrichment, provErr.Stage)
	})
}
