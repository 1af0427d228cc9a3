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
	Reviews   ReviewsConfig
	Groomers  GroomersConfig
	Recommend RecommendConfig
	Cache     CacheConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds storefront scraping configuration
type CatalogConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
}

// ReviewsConfig holds web review search configuration. An empty APIKey puts
// the review fetcher in degraded mode: recommendations still work, scored
// without review evidence.
type ReviewsConfig struct {
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxPerItem int           `mapstructure:"max_per_item"`
}

// GroomersConfig holds groomer directory configuration
type GroomersConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	BaseURL    string `mapstructure:"base_url"`
	Location   string `mapstructure:"location"`
	MaxResults int    `mapstructure:"max_results"`
}

// RecommendConfig holds recommendation pipeline configuration
type RecommendConfig struct {
	MaxConcurrentFetches int `mapstructure:"max_concurrent_fetches"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pawpick/")

	// Environment variable settings
	v.SetEnvPrefix("PAWPICK")
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
	v.SetDefault("catalog.base_url", "https://www.petexpress.com.ph")
	v.SetDefault("catalog.timeout", "20s")
	v.SetDefault("catalog.requests_per_minute", 60)

	// Review search defaults
	v.SetDefault("reviews.base_url", "https://api.tavily.com")
	v.SetDefault("reviews.timeout", "10s")
	v.SetDefault("reviews.max_per_item", 3)

	// Groomer defaults
	v.SetDefault("groomers.enabled", true)
	v.SetDefault("groomers.base_url", "https://www.petbacker.ph")
	v.SetDefault("groomers.location", "manila--metro-manila--philippines")
	v.SetDefault("groomers.max_results", 3)

	// Recommendation pipeline defaults
	v.SetDefault("recommend.max_concurrent_fetches", 4)

	// Cache defaults
	v.SetDefault("cache.ttl", "10m")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required (set PAWPICK_CATALOG_BASE_URL)")
	}

	if config.Reviews.MaxPerItem < 1 || config.Reviews.MaxPerItem > 5 {
		return fmt.Errorf("reviews.max_per_item must be between 1 and 5, got: %d", config.Reviews.MaxPerItem)
	}

	if config.Recommend.MaxConcurrentFetches < 1 {
		return fmt.Errorf("recommend.max_concurrent_fetches must be at least 1, got: %d", config.Recommend.MaxConcurrentFetches)
	}

	if config.Groomers.Enabled && config.Groomers.BaseURL == "" {
		return fmt.Errorf("groomers base URL is required when groomer lookups are enabled")
	}

	return nil
}
