package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicChat(t *testing.T) {
	var gotReq anthropicChatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicChatResponse{
			Model:      "claude-3-5-sonnet-20241022",
			StopReason: "end_turn",
			Content: []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			}{
				{Type: "text", Text: "You appear "},
				{Type: "text", Text: "focused."},
			},
			Usage: struct {
				InputTokens  int `json:"input_tokens"`
				OutputTokens int `json:"output_tokens"`
			}{InputTokens: 120, OutputTokens: 40},
		})
	}))
	defer server.Close()

	provider := NewAnthropicProvider(&ProviderConfig{
		Endpoint: server.URL,
		APIKey:   "test-key",
	})

	resp, err := provider.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "analyze this"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "You appear focused.", resp.Content)
	assert.Equal(t, 160, resp.TokensUsed)
	assert.Equal(t, "end_turn", resp.FinishReason)

	// Request should carry the default model and the user message.
	assert.Equal(t, "claude-3-5-sonnet-20241022", gotReq.Model)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "analyze this", gotReq.Messages[0].Content)
	assert.Greater(t, gotReq.MaxTokens, 0)
}

func TestAnthropicChatErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"type":"overloaded_error"}}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := NewAnthropicProvider(&ProviderConfig{
		Endpoint: server.URL,
		APIKey:   "test-key",
	})

	_, err := provider.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestAnthropicChatNoTextContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model":"claude","content":[]}`))
	}))
	defer server.Close()

	provider := NewAnthropicProvider(&ProviderConfig{
		Endpoint: server.URL,
		APIKey:   "test-key",
	})

	_, err := provider.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}

func TestAnthropicChatNoAPIKey(t *testing.T) {
	provider := NewAnthropicProvider(&ProviderConfig{})

	assert.False(t, provider.Available())

	_, err := provider.Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.Error(t, err)
}
