// Package llm talks to the external completion service over its
// OpenAI-compatible chat completions API. The service is consumed as an
// opaque prompt-to-text function; failures are converted to upstream
// faults at this boundary and are never retried automatically.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pharmagpt/pharmagpt/internal/faults"
)

// Conversation roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// Generation policy: low randomness so answers stay grounded in the
// retrieved context, and a bounded output length so worst-case latency
// stays bounded too.
const (
	temperature = 0.1
	maxTokens   = 1024
)

// Client sends assembled message sequences to the completion service.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient constructs a completion client from Config.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("llm: invalid config: %w", err)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
	}, nil
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Chat sends the message sequence and returns the generated answer text.
// Cancelling ctx aborts the in-flight completion call.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", faults.Upstream("llm.chat", fmt.Errorf("no messages provided"))
	}

	body := chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	data, err := json.Marshal(body)
	if err != nil {
		return "", faults.Upstream("llm.chat", fmt.Errorf("encode request: %w", err))
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", faults.Upstream("llm.chat", fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", faults.Upstream("llm.chat", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", faults.Upstream("llm.chat", fmt.Errorf("http %d for %s", resp.StatusCode, url))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", faults.Upstream("llm.chat", fmt.Errorf("decode response: %w", err))
	}
	if len(parsed.Choices) == 0 {
		return "", faults.Upstream("llm.chat", fmt.Errorf("response contains no choices"))
	}

	return parsed.Choices[0].Message.Content, nil
}

// Model returns the completion model this client requests.
func (c *Client) Model() string {
	return c.model
}
