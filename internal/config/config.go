package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey string
	Model        string // generative model name; empty means the engine default
}

// LoadConfig loads the configuration from a .env file (if present) and
// environment variables.
func LoadConfig() (*Config, error) {
	// A missing .env is fine; the environment may carry the key directly.
	_ = godotenv.Load()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	return &Config{
		GeminiAPIKey: apiKey,
		Model:        os.Getenv("CURSED_FOREST_MODEL"),
	}, nil
}
