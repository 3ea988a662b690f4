package llm

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// BaseURL is the OpenAI-compatible API root. Defaults to OpenRouter.
	BaseURL string `yaml:"base_url" env:"LLM_BASE_URL"`

	// APIKey authenticates against the completion service.
	APIKey string `yaml:"api_key" env:"OPENROUTER_API_KEY"`

	// Model is the completion model to request.
	Model string `yaml:"model" env:"LLM_MODEL"`

	// HTTPTimeoutS bounds one completion round-trip (default 120).
	HTTPTimeoutS int `yaml:"http_timeout_s" env:"LLM_HTTP_TIMEOUT_SECONDS"`
}

// NewConfig reads from environment variables.
func NewConfig() *Config {
	timeout := 120
	if v := os.Getenv("LLM_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "nvidia/nemotron-3-nano-30b-a3b:free"
	}

	return &Config{
		BaseURL:      baseURL,
		APIKey:       os.Getenv("OPENROUTER_API_KEY"),
		Model:        model,
		HTTPTimeoutS: timeout,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("llm: missing LLM_BASE_URL")
	}
	if c.APIKey == "" {
		return fmt.Errorf("llm: missing OPENROUTER_API_KEY")
	}
	if c.Model == "" {
		return fmt.Errorf("llm: missing LLM_MODEL")
	}
	return nil
}
