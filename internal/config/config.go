package config

import (
	"fmt"
	"time"

	apperrors "schoolpay-backend/internal/errors"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Document store configuration
	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoHost     string `mapstructure:"MONGO_HOST"`
	MongoPort     string `mapstructure:"MONGO_PORT"`
	MongoUser     string `mapstructure:"MONGO_USER"`
	MongoPassword string `mapstructure:"MONGO_PASSWORD"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Payment provider configuration
	PaystackPublicKey string `mapstructure:"PAYSTACK_PUBLIC_KEY"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Rate limiter configuration
	RateLimitWindowSec int `mapstructure:"RATE_LIMIT_WINDOW_SEC"`
	RateLimitMax       int `mapstructure:"RATE_LIMIT_MAX"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build Mongo URI if not provided
	if config.MongoURI == "" {
		config.MongoURI = buildMongoURI(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "4000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Document store defaults. MONGO_URI and PAYSTACK_PUBLIC_KEY default to
	// empty so environment overrides are picked up during unmarshal.
	viper.SetDefault("MONGO_URI", "")
	viper.SetDefault("MONGO_HOST", "localhost")
	viper.SetDefault("MONGO_PORT", "27017")
	viper.SetDefault("MONGO_USER", "")
	viper.SetDefault("MONGO_PASSWORD", "")
	viper.SetDefault("MONGO_DATABASE", "schoolpay")

	// Payment provider key has no usable default; it must come from the
	// environment or the config file.
	viper.SetDefault("PAYSTACK_PUBLIC_KEY", "")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"*"})

	// Rate limiter defaults: 100 requests per 15 minutes per client address
	viper.SetDefault("RATE_LIMIT_WINDOW_SEC", 900)
	viper.SetDefault("RATE_LIMIT_MAX", 100)
}

func buildMongoURI(config *Config) string {
	if config.MongoUser != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s",
			config.MongoUser,
			config.MongoPassword,
			config.MongoHost,
			config.MongoPort,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s", config.MongoHost, config.MongoPort)
}

func validate(config *Config) error {
	// The payment provider key is required at startup; the frontend reads it
	// back from this process, so a missing key means broken checkout flows.
	if config.PaystackPublicKey == "" {
		return apperrors.ErrPaymentKeyMissing
	}

	if config.MongoDatabase == "" {
		return fmt.Errorf("document store database name is required")
	}

	if config.RateLimitWindowSec <= 0 || config.RateLimitMax <= 0 {
		return fmt.Errorf("rate limit window and ceiling must be positive")
	}

	return nil
}

// RateLimitWindow returns the limiter window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSec) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
