package logger

import "os"

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

type Config struct {
	// Level controls the minimum log level:
	// 1. debug -> DEBUG
	// 2. info / unset -> INFO
	Level string `yaml:"level" env:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`
}

// NewConfig reads the logger configuration from environment variables.
func NewConfig() Config {
	name := os.Getenv("SERVICE_NAME")
	if name == "" {
		name = "pharmagpt"
	}
	return Config{
		Level:       os.Getenv("ZAP_LOGGER_LEVEL"),
		ServiceName: name,
	}
}
