package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmagpt/pharmagpt/internal/faults"
)

func newClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(&Config{
		BaseURL:      baseURL,
		APIKey:       "test-key",
		Model:        "test-model",
		HTTPTimeoutS: 5,
	})
	require.NoError(t, err)
	return c
}

func TestClient_Chat_SendsPolicyAndReturnsAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.InDelta(t, 0.1, req.Temperature, 1e-9)
		assert.Equal(t, 1024, req.MaxTokens)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, RoleSystem, req.Messages[0].Role)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "Paracetamol reduces fever."}},
			},
		})
	}))
	defer srv.Close()

	answer, err := newClient(t, srv.URL).Chat(context.Background(), []Message{
		{Role: RoleSystem, Content: "context"},
		{Role: RoleUser, Content: "what reduces fever?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol reduces fever.", answer)
}

func TestClient_Chat_QuotaErrorIsUpstreamFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).Chat(context.Background(), []Message{{Role: RoleUser, Content: "x"}})
	require.Error(t, err)
	assert.Equal(t, faults.KindUpstream, faults.KindOf(err))
}

func TestClient_Chat_MalformedResponseIsUpstreamFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).Chat(context.Background(), []Message{{Role: RoleUser, Content: "x"}})
	require.Error(t, err)
	assert.Equal(t, faults.KindUpstream, faults.KindOf(err))
}

func TestClient_Chat_EmptyMessages(t *testing.T) {
	_, err := newClient(t, "http://localhost:1").Chat(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, faults.KindUpstream, faults.KindOf(err))
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(&Config{BaseURL: "http://x", Model: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENROUTER_API_KEY")
}
