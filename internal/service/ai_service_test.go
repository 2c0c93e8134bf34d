package service

import (
	"career_path_backend/internal/config"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAIService(t *testing.T, handler http.HandlerFunc) *AIService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewAIService(config.AIConfig{
		BaseURL: server.URL + "/v1",
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
	})
	require.NoError(t, err)
	return svc
}

func TestAIServiceReply(t *testing.T) {
	var got map[string]any
	svc := newTestAIService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": "  Data scientists earn well.  "},
				"finish_reason": "stop",
			}},
		})
	})

	reply, err := svc.Reply(context.Background(), "How much do data scientists earn?", "Technology & Engineering")
	require.NoError(t, err)
	assert.Equal(t, "Data scientists earn well.", reply)

	assert.Equal(t, "gpt-4o-mini", got["model"])
	messages := got["messages"].([]any)
	require.Len(t, messages, 2)
	system := messages[0].(map[string]any)
	assert.Contains(t, system["content"], "Technology & Engineering")
}

func TestAIServiceErrors(t *testing.T) {
	svc := newTestAIService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "boom", "type": "server_error"},
		})
	})
	_, err := svc.Reply(context.Background(), "hi", "")
	assert.Error(t, err)

	_, err = NewAIService(config.AIConfig{})
	assert.Error(t, err)
}
