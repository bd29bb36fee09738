package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string `env:"JWT_SECRET, required"`
	// JWTExpirationMS is the token lifetime in milliseconds (default 24h).
	JWTExpirationMS int64 `env:"JWT_EXPIRATION_MS, default=86400000"`

	Genomic UpstreamConfig `env:", prefix=GENOMIC_"`
	Clinic  UpstreamConfig `env:", prefix=CLINIC_"`

	Mongo MongoConfig
}

// UpstreamConfig holds the connection settings for one downstream backend.
type UpstreamConfig struct {
	BaseURL string        `env:"BASE_URL"`
	Timeout time.Duration `env:"TIMEOUT, default=15s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=genosentinel"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.Genomic.BaseURL == "" {
		cfg.Genomic.BaseURL = "http://localhost:8000"
	}
	if cfg.Clinic.BaseURL == "" {
		cfg.Clinic.BaseURL = "http://localhost:3000"
	}
	return &cfg
}

// TokenTTL converts the configured lifetime into a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpirationMS) * time.Millisecond
}
