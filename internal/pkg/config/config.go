package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API   APIConfig
	Token TokenConfig
}

type APIConfig struct {
	BaseURL string `env:"API_BASE_URL, default=http://localhost:8080"`
	// TimeoutSeconds bounds every request to the remote API.
	TimeoutSeconds int `env:"API_TIMEOUT_SECONDS, default=15"`
}

type TokenConfig struct {
	// Path is the durable location of the bearer token: the single fixed
	// key the session survives restarts under.
	Path string `env:"TOKEN_PATH, default=.console-token"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
