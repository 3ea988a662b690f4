package ingest

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// DataPath is the source table (CSV with a header row).
	DataPath string `yaml:"data_path" env:"INGEST_DATA_PATH"`

	// RowLimit caps how many rows are read from the source.
	RowLimit int `yaml:"row_limit" env:"INGEST_ROW_LIMIT"`

	// BatchSize bounds per-call upsert size and progress granularity.
	BatchSize int `yaml:"batch_size" env:"INGEST_BATCH_SIZE"`

	// Verify runs a smoke query against the index after ingestion.
	Verify bool `yaml:"verify" env:"INGEST_VERIFY"`
}

const (
	defaultRowLimit  = 200000
	defaultBatchSize = 100
)

// NewConfig reads the ingestion configuration from environment variables.
func NewConfig() *Config {
	cfg := &Config{
		DataPath:  os.Getenv("INGEST_DATA_PATH"),
		RowLimit:  defaultRowLimit,
		BatchSize: defaultBatchSize,
	}

	if v := os.Getenv("INGEST_ROW_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RowLimit = n
		}
	}
	if v := os.Getenv("INGEST_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BatchSize = n
		}
	}
	if v := os.Getenv("INGEST_VERIFY"); v == "true" || v == "1" {
		cfg.Verify = true
	}

	return cfg
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("ingest: missing INGEST_DATA_PATH")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("ingest: batch size must be positive, got %d", c.BatchSize)
	}
	return nil
}
