// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, providers, and logging

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Search contains search-results provider configuration
	Search SearchConfig

	// Answer contains generative-text provider configuration
	Answer AnswerConfig

	// Geocode contains geocoding provider configuration
	Geocode GeocodeConfig

	// Recency contains recent-search store configuration
	Recency RecencyConfig

	// Logging contains logger configuration
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is requests allowed per window per IP; 0 disables limiting
	RateLimit int

	// RateWindowSeconds is the rate limit window in seconds
	RateWindowSeconds int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SearchConfig holds search-results provider configuration
type SearchConfig struct {
	// APIKey authenticates against the provider
	APIKey string

	// BaseURL overrides the provider endpoint, mainly for tests
	BaseURL string
}

// AnswerConfig holds generative-text provider configuration
type AnswerConfig struct {
	// APIKey authenticates against the provider
	APIKey string

	// BaseURL points at an OpenAI-compatible endpoint
	BaseURL string

	// Model is the completion model name
	Model string
}

// GeocodeConfig holds geocoding provider configuration
type GeocodeConfig struct {
	// APIKey authenticates against the provider
	APIKey string

	// BaseURL overrides the provider endpoint, mainly for tests
	BaseURL string
}

// RecencyConfig holds recent-search store configuration
type RecencyConfig struct {
	// DBPath is the SQLite database file path
	DBPath string
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	// Level is the minimum level to emit: debug, info, warn, error
	Level string

	// FilePath enables rotating file output when non-empty
	FilePath string

	// Console mirrors output to stdout
	Console bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnvOrDefault("PORT", "8000"),
			RateLimit:         getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindowSeconds: getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Search: SearchConfig{
			APIKey:  os.Getenv("SEARCH_API_KEY"),
			BaseURL: os.Getenv("SEARCH_BASE_URL"),
		},
		Answer: AnswerConfig{
			APIKey:  os.Getenv("ANSWER_API_KEY"),
			BaseURL: getEnvOrDefault("ANSWER_BASE_URL", "https://api.deepseek.com"),
			Model:   getEnvOrDefault("ANSWER_MODEL", "deepseek-chat"),
		},
		Geocode: GeocodeConfig{
			APIKey:  os.Getenv("GEOCODE_API_KEY"),
			BaseURL: os.Getenv("GEOCODE_BASE_URL"),
		},
		Recency: RecencyConfig{
			DBPath: getEnvOrDefault("RECENCY_DB_PATH", "recent_searches.db"),
		},
		Logging: LoggingConfig{
			Level:    getEnvOrDefault("LOG_LEVEL", "info"),
			FilePath: os.Getenv("LOG_FILE"),
			Console:  getEnvAsBoolOrDefault("LOG_CONSOLE", true),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Search.APIKey == "" {
		return errors.New("search provider API key cannot be empty")
	}

	if c.Answer.APIKey == "" {
		return errors.New("answer provider API key cannot be empty")
	}

	return nil
}
