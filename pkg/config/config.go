package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the pipeline needs at startup. It is built once
// by Load and handed to constructors; nothing reads the environment after
// that point.
type Config struct {
	PlannerProvider string
	PlannerModel    string
	GeminiAPIKey    string
	OpenAIAPIKey    string
	PostgresURL     string
	Port            string
}

func Load() (*Config, error) {
	// Missing .env is fine in containerized deployments, the variables are
	// injected directly.
	_ = godotenv.Load()

	cfg := &Config{
		PlannerProvider: strings.ToLower(os.Getenv("PLANNER_PROVIDER")),
		PlannerModel:    os.Getenv("PLANNER_MODEL"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		PostgresURL:     os.Getenv("POSTGRES_URL"),
		Port:            os.Getenv("PORT"),
	}

	if cfg.PlannerProvider == "" {
		cfg.PlannerProvider = "gemini"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.PostgresURL == "" {
		return fmt.Errorf("POSTGRES_URL not set")
	}
	switch c.PlannerProvider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY not set")
		}
	default:
		return fmt.Errorf("unsupported planner provider: %s", c.PlannerProvider)
	}
	return nil
}

// PlannerAPIKey returns the key for the selected provider.
func (c *Config) PlannerAPIKey() string {
	if c.PlannerProvider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}
