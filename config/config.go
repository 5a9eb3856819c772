package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultBaseID is the Airtable base used when BASE_ID is unset.
const DefaultBaseID = "appDxcv3BlLT1jkCL"

// Config holds the process configuration, read from the environment
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// AirtableToken is checked per request so a missing token surfaces as a
	// 500 from the proxy instead of a failed start.
	AirtableToken  string `env:"AIRTABLE_TOKEN"`
	BaseID         string `env:"BASE_ID" envDefault:"appDxcv3BlLT1jkCL"`
	AirtableAPIURL string `env:"AIRTABLE_API_URL" envDefault:"https://api.airtable.com"`
	AirtableTable  string `env:"AIRTABLE_TABLE" envDefault:"Experiences"`

	// Redis is optional; an empty address serves the catalog roster directly.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	ProxyBaseURL string `env:"PROXY_BASE_URL"`
	CatalogPath  string `env:"CATALOG_PATH"`
	GinMode      string `env:"GIN_MODE" envDefault:"release"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
		log.Printf("Loaded environment from %s", file)
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.BaseID == "" {
		cfg.BaseID = DefaultBaseID
	}
	if cfg.ProxyBaseURL == "" {
		cfg.ProxyBaseURL = "http://127.0.0.1:" + cfg.Port
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
