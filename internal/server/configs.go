package server

import (
	"os"
	"strings"
)

type Config struct {
	// Address is the listen address of the query service.
	Address string `yaml:"address" env:"SERVER_ADDRESS"`

	// AllowedOrigins are the CORS origins allowed to call the API,
	// comma-separated in the environment.
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
}

// NewConfig reads the server configuration from environment variables.
func NewConfig() Config {
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = ":8000"
	}

	origins := []string{"http://localhost:3000"}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return Config{
		Address:        address,
		AllowedOrigins: origins,
	}
}
