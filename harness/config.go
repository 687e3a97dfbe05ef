package harness

import (
	"os"
	"strconv"
	"strings"
)

// Config holds configuration for an evaluation run. Everything comes in as
// explicit parameters; the core never reads process-wide state, the driver
// loads this once and passes it down.
type Config struct {
	Generators  []string
	Sizes       []int
	Seed        int64
	Parallelism int
	AgentMode   string // "mock" or "openai"
	MockMode    string // mock failure mode when AgentMode is "mock"
	Model       string
	APIKey      string
	BaseURL     string
	LogLevel    string
	CacheSize   int
	PlanFile    string
	Output      string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Generators:  parseCommaSeparated(getEnv("AFBENCH_GENERATORS", "linear_attack_chain,cycle,symmetric_pairs")),
		Sizes:       parseSizes(getEnv("AFBENCH_SIZES", "4,8")),
		Seed:        getEnvInt64("AFBENCH_SEED", 1),
		Parallelism: getEnvInt("AFBENCH_PARALLELISM", 1),
		AgentMode:   getEnv("AFBENCH_AGENT", "mock"),
		MockMode:    getEnv("AFBENCH_MOCK_MODE", "exact"),
		Model:       getEnv("AFBENCH_MODEL", "gpt-4o"),
		APIKey:      getEnv("OPENAI_API_KEY", ""),
		BaseURL:     getEnv("AFBENCH_BASE_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CacheSize:   getEnvInt("AFBENCH_CACHE_SIZE", 256),
		PlanFile:    getEnv("AFBENCH_PLAN", ""),
		Output:      getEnv("AFBENCH_OUTPUT", ""),
	}
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// parseCommaSeparated parses a comma-separated string into a slice.
func parseCommaSeparated(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func parseSizes(value string) []int {
	var sizes []int
	for _, part := range parseCommaSeparated(value) {
		if n, err := strconv.Atoi(part); err == nil {
			sizes = append(sizes, n)
		}
	}
	return sizes
}
