// Package infrastructure loads runtime configuration from the environment.
package infrastructure

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// Auth settings
	AuthToken string `json:"-"` // Don't expose in JSON

	// Storage settings
	StoreType string `json:"store_type"` // memory or cloud-storage
	GCSBucket string `json:"gcs_bucket"`

	// Batch settings
	BatchSchedule string `json:"batch_schedule"` // cron expression
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		Host:          getEnvOrDefault("HOST", "0.0.0.0"),
		AuthToken:     getEnvOrDefault("AUTH_TOKEN", ""),
		StoreType:     getEnvOrDefault("STORE_TYPE", "memory"),
		GCSBucket:     getEnvOrDefault("GCS_BUCKET", ""),
		BatchSchedule: getEnvOrDefault("BATCH_SCHEDULE", "0 * * * *"),
	}

	return config, config.validate()
}

// validate checks if required configuration values are present
func (c *Config) validate() error {
	if c.AuthToken == "" {
		return &ConfigError{Field: "AUTH_TOKEN", Message: "auth token is required"}
	}
	if c.StoreType != "memory" && c.StoreType != "cloud-storage" {
		return &ConfigError{Field: "STORE_TYPE", Message: "must be memory or cloud-storage"}
	}
	if c.StoreType == "cloud-storage" && c.GCSBucket == "" {
		return &ConfigError{Field: "GCS_BUCKET", Message: "bucket is required for cloud-storage"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
