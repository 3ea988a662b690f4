package metrics

import "os"

type Config struct {
	// ServiceName is applied to every metric as a constant "service" label.
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`

	// EnableDefaultCollectors registers the Go runtime, process and build
	// info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_DEFAULT_COLLECTORS"`
}

// NewConfig reads the metrics configuration from environment variables.
func NewConfig() Config {
	name := os.Getenv("SERVICE_NAME")
	if name == "" {
		name = "pharmagpt"
	}
	return Config{
		ServiceName:             name,
		EnableDefaultCollectors: os.Getenv("METRICS_DEFAULT_COLLECTORS") != "false",
	}
}
