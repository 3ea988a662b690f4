package embedding

import (
	"fmt"
	"os"
	"strconv"
)

// EMBEDDING_ENDPOINT must point to the root of the OpenAI-compatible inference
// service (no /embeddings appended). The provider appends paths automatically,
// so callers only need to supply the host base URL.

type Config struct {
	// Endpoint is the base URL of the embedding inference server.
	Endpoint string `yaml:"endpoint" env:"EMBEDDING_ENDPOINT"`

	// Model fixes the vector space; changing it invalidates built indexes.
	Model string `yaml:"model" env:"EMBEDDING_MODEL"`

	// ServiceToken is an optional bearer token for secured deployments.
	ServiceToken string `yaml:"service_token" env:"EMBEDDING_SERVICE_TOKEN"`

	// HTTPTimeoutS bounds one inference round-trip (default 30).
	HTTPTimeoutS int `yaml:"http_timeout_s" env:"EMBEDDING_HTTP_TIMEOUT_SECONDS"`
}

// NewConfig reads from environment variables.
func NewConfig() *Config {
	timeout := 30
	if v := os.Getenv("EMBEDDING_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	model := os.Getenv("EMBEDDING_MODEL")
	if model == "" {
		// The collection schema is tied to this model; changing it
		// invalidates any previously built index.
		model = "all-MiniLM-L6-v2"
	}

	return &Config{
		Endpoint:     os.Getenv("EMBEDDING_ENDPOINT"),
		Model:        model,
		ServiceToken: os.Getenv("EMBEDDING_SERVICE_TOKEN"),
		HTTPTimeoutS: timeout,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_ENDPOINT")
	}
	if c.Model == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_MODEL")
	}
	return nil
}
