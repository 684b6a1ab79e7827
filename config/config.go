package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Planner   PlannerConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds meal catalog configuration
type CatalogConfig struct {
	// Path points at an external catalog JSON file. Empty means the
	// embedded dataset.
	Path string `mapstructure:"path"`
}

// PlannerConfig holds plan-generation tunables
type PlannerConfig struct {
	MaxPerWeek       int           `mapstructure:"max_per_week"`
	TopK             int           `mapstructure:"top_k"`
	BalancedMatchAny bool          `mapstructure:"balanced_match_any"`
	CacheTTL         time.Duration `mapstructure:"cache_ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// PerIP is requests per minute allowed per client IP. Zero disables
	// the limiter.
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/bitetrak/")

	// Environment variable settings: BITETRAK_SERVER_PORT overrides server.port
	v.SetEnvPrefix("BITETRAK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Catalog defaults
	v.SetDefault("catalog.path", "")

	// Planner defaults
	v.SetDefault("planner.max_per_week", 2)
	v.SetDefault("planner.top_k", 10)
	v.SetDefault("planner.balanced_match_any", false)
	v.SetDefault("planner.cache_ttl", "30s")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}

	if config.Planner.MaxPerWeek < 1 {
		return fmt.Errorf("planner max_per_week must be at least 1, got: %d", config.Planner.MaxPerWeek)
	}

	if config.Planner.TopK < 1 {
		return fmt.Errorf("planner top_k must be at least 1, got: %d", config.Planner.TopK)
	}

	if config.RateLimit.PerIP < 0 {
		return fmt.Errorf("ratelimit per_ip must not be negative, got: %d", config.RateLimit.PerIP)
	}

	return nil
}
