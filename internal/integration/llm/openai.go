package llm

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/tractis/proposal-engine/internal/config"
	"github.com/tractis/proposal-engine/internal/entity"
	"go.uber.org/zap"
)

// OpenAIClient drives the parser stage through an OpenAI-compatible chat
// completions endpoint. The default configuration targets Groq.
type OpenAIClient struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int64
	logger      *zap.Logger
}

func NewOpenAIClient(cfg config.ParserLLMConfig, logger *zap.Logger) *OpenAIClient {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		// Bounds every completion call; a stuck provider fails the stage
		// instead of holding the request until the router gives up.
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &OpenAIClient{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      logger,
	}
}

// Complete sends the system prompt plus the transcript and returns the raw
// assistant text.
func (c *OpenAIClient) Complete(ctx context.Context, system string, messages []entity.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("message list cannot be empty")
	}

	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)
	if system != "" {
		msgs = append(msgs, openai.SystemMessage(system))
	}
	for _, msg := range messages {
		switch msg.Role {
		case entity.RoleAssistant:
			msgs = append(msgs, openai.ChatCompletionMessageParamOfAssistant(msg.Content))
		default:
			msgs = append(msgs, openai.UserMessage(msg.Content))
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(c.model),
		Messages:            msgs,
		Temperature:         openai.Float(c.temperature),
		MaxCompletionTokens: openai.Int(c.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai completion: empty choices")
	}

	text := resp.Choices[0].Message.Content

	ctxzap.Debug(ctx, "openai completion finished",
		zap.String("model", c.model),
		zap.String("finish_reason", resp.Choices[0].FinishReason),
		zap.Int("response_length", len(text)),
	)

	return text, nil
}
