package vectorstore

import (
	"fmt"
	"os"
	"strconv"
)

// Backend selectors.
const (
	BackendChromem = "chromem"
	BackendQdrant  = "qdrant"
)

// Config selects and configures the vector store backend.
//
// Example (programmatic):
//
//	cfg := vectorstore.DefaultConfig()
//	cfg.Path = "./chroma_db"
//	cfg.Collection = "medicines"
type Config struct {
	// Backend selects the implementation: "chromem" (embedded, default)
	// or "qdrant" (remote).
	Backend string `yaml:"backend" env:"STORE_BACKEND"`

	// Path is the persistence directory for the embedded backend.
	Path string `yaml:"path" env:"STORE_PATH"`

	// Collection is the named collection all documents live in.
	Collection string `yaml:"collection" env:"STORE_COLLECTION"`

	// Qdrant holds connection details for the remote backend.
	Qdrant QdrantConfig `yaml:"qdrant"`
}

// QdrantConfig contains connection details for a Qdrant vector store.
type QdrantConfig struct {
	// Hostname of the Qdrant server, e.g. "localhost".
	Endpoint string `yaml:"endpoint" env:"QDRANT_ENDPOINT"`

	// gRPC port of the Qdrant server. Defaults to 6334.
	Port int `yaml:"port" env:"QDRANT_PORT"`

	// Optional authentication token for secured deployments.
	ApiKey string `yaml:"api_key" env:"QDRANT_API_KEY"`

	// Whether to perform version compatibility checks between client and server.
	CheckCompatibility bool `yaml:"check_compatibility" env:"QDRANT_CHECK_COMPATIBILITY"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Backend:    BackendChromem,
		Path:       "./chroma_db",
		Collection: "medicines",
		Qdrant: QdrantConfig{
			Endpoint: "localhost",
			Port:     6334,
		},
	}
}

// NewConfig reads the store configuration from environment variables,
// falling back to defaults for anything unset.
func NewConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("STORE_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("STORE_PATH"); v != "" {
		cfg.Path = v
	}
	if v := os.Getenv("STORE_COLLECTION"); v != "" {
		cfg.Collection = v
	}
	if v := os.Getenv("QDRANT_ENDPOINT"); v != "" {
		cfg.Qdrant.Endpoint = v
	}
	if v := os.Getenv("QDRANT_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Qdrant.Port = n
		}
	}
	if v := os.Getenv("QDRANT_API_KEY"); v != "" {
		cfg.Qdrant.ApiKey = v
	}
	if v := os.Getenv("QDRANT_CHECK_COMPATIBILITY"); v == "true" || v == "1" {
		cfg.Qdrant.CheckCompatibility = true
	}

	return cfg
}

// Validate ensures the configuration names a known backend and the fields
// that backend needs.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendChromem:
		if c.Path == "" {
			return fmt.Errorf("vectorstore: missing STORE_PATH for chromem backend")
		}
	case BackendQdrant:
		if c.Qdrant.Endpoint == "" {
			return fmt.Errorf("vectorstore: missing QDRANT_ENDPOINT for qdrant backend")
		}
	default:
		return fmt.Errorf("vectorstore: unknown backend %q", c.Backend)
	}
	if c.Collection == "" {
		return fmt.Errorf("vectorstore: missing STORE_COLLECTION")
	}
	return nil
}
