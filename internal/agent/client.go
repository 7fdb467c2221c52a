package agent

import (
	"context"

	"github.com/tractis/proposal-engine/internal/entity"
)

// ChatClient is the LLM provider boundary shared by all stages. Implementations
// live in internal/integration/llm.
type ChatClient interface {
	Complete(ctx context.Context, system string, messages []entity.ChatMessage) (string, error)
}
