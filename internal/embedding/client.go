package embedding

import (
	"context"
	"fmt"

	"github.com/pharmagpt/pharmagpt/internal/faults"
)

// Client is the public entrypoint for computing embeddings.
//
// It hides all provider details (inference endpoints, HTTP, etc.)
// from the application layer. One Client instance is shared between the
// ingestion and query paths so both operate in the same vector space.
type Client struct {
	provider  *inferenceProvider
	model     string
	dimension int // set once by Warmup, read-only afterwards
}

// NewClient constructs a Client from Config.
// It validates the config and internally constructs the inference provider.
// Application code should depend on *Client, not on the provider.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	p, err := newInferenceProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create provider: %w", err)
	}

	return &Client{provider: p, model: cfg.Model}, nil
}

// Warmup materializes the model with a single inference call and records
// the vector dimension. Must be called once before the client is shared;
// a failure here aborts startup.
func (c *Client) Warmup(ctx context.Context) error {
	vecs, err := c.provider.Create(ctx, c.model, "warmup")
	if err != nil {
		return faults.Embedding("embedding.warmup", err)
	}
	c.dimension = len(vecs[0])
	if c.dimension == 0 {
		return faults.Embedding("embedding.warmup", fmt.Errorf("model %q returned an empty vector", c.model))
	}
	return nil
}

// Embed computes the vector for a single text.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := c.provider.Create(ctx, c.model, text)
	if err != nil {
		return nil, faults.Embedding("embedding.create", err)
	}
	return vecs[0], nil
}

// EmbedBatch computes vectors for several texts in one request.
// The result is index-aligned with the input.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	vecs, err := c.provider.Create(ctx, c.model, texts...)
	if err != nil {
		return nil, faults.Embedding("embedding.create_batch", err)
	}
	if len(vecs) != len(texts) {
		return nil, faults.Embedding("embedding.create_batch",
			fmt.Errorf("requested %d embeddings, got %d", len(texts), len(vecs)))
	}
	return vecs, nil
}

// Model returns the model identity this client embeds with.
func (c *Client) Model() string {
	return c.model
}

// Dimension returns the vector dimension recorded by Warmup,
// or 0 if Warmup has not run.
func (c *Client) Dimension() int {
	return c.dimension
}
