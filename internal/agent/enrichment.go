package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/tractis/proposal-engine/internal/entity"
	"github.com/tractis/proposal-engine/internal/pkg/logger"
	"github.com/tractis/proposal-engine/internal/pkg/schema"
	"go.uber.org/zap"
)

// Enrichment runs the conversational stage that fills weak or missing
// proposal sections. Each call is one turn; session state lives outside, in
// the session store, and is committed by the orchestrator only after a turn
// succeeds.
type Enrichment struct {
	client             ChatClient
	maxTranscriptChars int
	logger             *zap.Logger
}

func NewEnrichment(client ChatClient, maxTranscriptChars int, logger *zap.Logger) *Enrichment {
	return &Enrichment{
		client:             client,
		maxTranscriptChars: maxTranscriptChars,
		logger:             logger,
	}
}

// TurnResult is the outcome of one enrichment turn. FinalContent is set only
// when Complete is true; it has already passed the enriched-content contract.
type TurnResult struct {
	AssistantMessage string
	Complete         bool
	FinalContent     *entity.ProposalContent
}

// Start opens the conversation for a freshly parsed, incomplete proposal. The
// first turn has no user input; the model is given the partial content and the
// gap list and asked to open the conversation.
func (e *Enrichment) Start(ctx context.Context, content *entity.ProposalContent, gaps []entity.MissingOrWeakItem) (*TurnResult, error) {
	contextMessage, err := buildContextMessage(content, gaps)
	if err != nil {
		return nil, err
	}

	return e.turn(ctx, []entity.ChatMessage{
		{Role: entity.RoleUser, Content: contextMessage},
	})
}

// Continue runs one more turn with the user's answer appended to the stored
// transcript. The session itself is not mutated here; the caller commits the
// user and assistant messages only when the turn succeeds.
func (e *Enrichment) Continue(ctx context.Context, sess *entity.EnrichmentSession, userMessage string) (*TurnResult, error) {
	candidate := make([]entity.ChatMessage, 0, len(sess.Transcript)+1)
	candidate = append(candidate, sess.Transcript...)
	candidate = append(candidate, entity.ChatMessage{Role: entity.RoleUser, Content: userMessage})

	total := 0
	for _, msg := range candidate {
		total += len(msg.Content)
	}
	if total > e.maxTranscriptChars {
		return nil, fmt.Errorf("%w: %d characters, limit %d", entity.ErrTranscriptTooLong, total, e.maxTranscriptChars)
	}

	return e.turn(ctx, candidate)
}

func (e *Enrichment) turn(ctx context.Context, messages []entity.ChatMessage) (*TurnResult, error) {
	ctx = logger.WithStage(ctx, entity.StageEnrichment)
	ctxzap.Info(ctx, "running enrichment turn",
		zap.Int("transcript_length", len(messages)),
	)

	raw, err := e.client.Complete(ctx, enrichmentPrompt, messages)
	if err != nil {
		return nil, &entity.ProviderError{Stage: entity.StageEnrichment, Err: err}
	}

	result := &TurnResult{AssistantMessage: raw}

	if !hasCompletionSignal(raw) {
		return result, nil
	}

	// Textual signals are advisory; the embedded JSON must independently pass
	// the enriched-content contract. A failed validation downgrades the turn
	// and the conversation continues.
	content, err := schema.ParseEnrichedContent(raw)
	if err != nil {
		ctxzap.Warn(ctx, "completion signaled but content failed validation, continuing conversation",
			zap.Error(err),
		)
		return result, nil
	}

	ctxzap.Info(ctx, "enrichment complete, content validated")

	result.Complete = true
	result.FinalContent = content

	return result, nil
}

func buildContextMessage(content *entity.ProposalContent, gaps []entity.MissingOrWeakItem) (string, error) {
	contentJSON, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal partial content: %w", err)
	}
	gapsJSON, err := json.MarshalIndent(gaps, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal gap list: %w", err)
	}

	return fmt.Sprintf(`Context:
- Partial proposal data: %s
- Missing/weak sections: %s

Please start the enrichment conversation by showing the user what's complete and what needs improvement.
`, contentJSON, gapsJSON), nil
}
