// Package config loads application configuration from environment variables,
// with an optional .env file for development. Defaults are safe: placeholder
// credentials let the process start and simply fail generation calls through
// the standard error path instead of crashing startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Provider identifiers accepted in MODEL_PROVIDER.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config holds application configuration values loaded from environment variables.
type Config struct {
	// Generation backend.
	Provider       string
	BaseURL        string
	APIKey         string
	ModelName      string
	Timeout        time.Duration
	Verbose        bool
	ProfanityCheck bool

	// Conversation.
	HistoryTurns int

	// Session persistence; empty means in-memory.
	SessionDBPath string

	// Academic plan sources.
	PlanAICSV         string
	PlanAIText        string
	PlanAIProductCSV  string
	PlanAIProductText string

	// Transport.
	HTTPPort string
}

// Load reads configuration from the environment. It looks for a .env file
// first, then checks actual environment variables.
func Load() (*Config, error) {
	// Missing .env is fine; production supplies real environment variables.
	_ = godotenv.Load()

	timeoutSecs, err := getEnvInt("MODEL_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	historyTurns, err := getEnvInt("HISTORY_TURNS", 3)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Provider:       getEnv("MODEL_PROVIDER", ProviderOpenAI),
		BaseURL:        getEnv("MODEL_BASE_URL", ""),
		APIKey:         getEnv("MODEL_API_KEY", "placeholder-api-key"),
		ModelName:      getEnv("MODEL_NAME", ""),
		Timeout:        time.Duration(timeoutSecs) * time.Second,
		Verbose:        getEnvBool("VERBOSE", false),
		ProfanityCheck: getEnvBool("PROFANITY_CHECK", false),

		HistoryTurns:  historyTurns,
		SessionDBPath: getEnv("SESSION_DB_PATH", ""),

		PlanAICSV:         getEnv("PLAN_AI_CSV", "resources/academic_plan_ai.csv"),
		PlanAIText:        getEnv("PLAN_AI_TEXT", "resources/academic_plan_ai.txt"),
		PlanAIProductCSV:  getEnv("PLAN_AI_PRODUCT_CSV", "resources/academic_plan_ai_product.csv"),
		PlanAIProductText: getEnv("PLAN_AI_PRODUCT_TEXT", "resources/academic_plan_ai_product.txt"),

		HTTPPort: getEnv("HTTP_PORT", "8080"),
	}

	if cfg.Provider != ProviderOpenAI && cfg.Provider != ProviderAnthropic {
		return nil, fmt.Errorf("unsupported MODEL_PROVIDER %q", cfg.Provider)
	}
	if cfg.HistoryTurns < 1 {
		return nil, fmt.Errorf("HISTORY_TURNS must be at least 1, got %d", cfg.HistoryTurns)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return parsed, nil
}
