package llm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tractis/proposal-engine/internal/config"
	"github.com/tractis/proposal-engine/internal/entity"
	"go.uber.org/zap"
)

const openAICompletionBody = `{
	"id": "cmpl-1",
	"object": "chat.completion",
	"choices": [
		{
			"index": 0,
			"message": {"role": "assistant", "content": "parsed"},
			"finish_reason": "stop"
		}
	]
}`

const anthropicMessageBody = `{
	"id": "msg-1",
	"type": "message",
	"role": "assistant",
	"model": "claude-sonnet-4-5-20250929",
	"content": [{"type": "text", "text": "enriched"}],
	"stop_reason": "end_turn",
	"usage": {"input_tokens": 1, "output_tokens": 1}
}`

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}
}

// hangHandler never answers; it returns only once the caller gives up.
// The request body must be drained first: the server only watches for
// client disconnects (and cancels r.Context()) after the body is consumed.
func hangHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}
}

func userMessage(content string) []entity.ChatMessage {
	return []entity.ChatMessage{{Role: entity.RoleUser, Content: content}}
}

func TestOpenAIClient_Complete(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(openAICompletionBody))
	defer srv.Close()

	client := NewOpenAIClient(config.ParserLLMConfig{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		Model:     "llama-3.3-70b-versatile",
		MaxTokens: 100,
		Timeout:   5 * time.Second,
	}, zap.NewNop())

	resp, err := client.Complete(context.Background(), "system", userMessage("document"))
	require.NoError(t, err)
	assert.Equal(t, "parsed", resp)
}

func TestOpenAIClient_EmptyMessages(t *testing.T) {
	client := NewOpenAIClient(config.ParserLLMConfig{APIKey: "test-key"}, zap.NewNop())

	_, err := client.Complete(context.Background(), "system", nil)
	require.Error(t, err)
}

func TestOpenAIClient_ConfiguredTimeoutBoundsCall(t *testing.T) {
	srv := httptest.NewServer(hangHandler())
	defer srv.Close()

	client := NewOpenAIClient(config.ParserLLMConfig{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		Model:     "llama-3.3-70b-versatile",
		MaxTokens: 100,
		Timeout:   50 * time.Millisecond,
	}, zap.NewNop())

	start := time.Now()
	_, err := client.Complete(context.Background(), "system", userMessage("document"))
	require.Error(t, err)
	// The server never answers; without the configured timeout this call
	// would block indefinitely. Retries with backoff still finish fast.
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestAnthropicClient_Complete(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(anthropicMessageBody))
	defer srv.Close()

	client := NewAnthropicClient(config.ChatLLMConfig{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		Model:     "claude-sonnet-4-5-20250929",
		MaxTokens: 100,
		Timeout:   5 * time.Second,
	}, zap.NewNop())

	resp, err := client.Complete(context.Background(), "system", userMessage("hello"))
	require.NoError(t, err)
	assert.Equal(t, "enriched", resp)
}

func TestAnthropicClient_ConfiguredTimeoutBoundsCall(t *testing.T) {
	srv := httptest.NewServer(hangHandler())
	defer srv.Close()

	client := NewAnthropicClient(config.ChatLLMConfig{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		Model:     "claude-sonnet-4-5-20250929",
		MaxTokens: 100,
		Timeout:   50 * time.Millisecond,
	}, zap.NewNop())

	start := time.Now()
	_, err := client.Complete(context.Background(), "system", userMessage("hello"))
	require.Error(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)
}
