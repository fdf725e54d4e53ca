// Package config handles application configuration loading from
// environment variables. Every external collaborator (PostgreSQL,
// Valkey, object storage, AI providers) is optional: an empty host,
// endpoint, or API key means the collaborator is absent and the service
// runs with the documented fallback behaviour instead.
package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host      string
	Port      string
	Env       string // "development", "production", "testing"
	PublicURL string // base URL used for preview/share links

	// PostgreSQL connection. Empty DBHost disables persistence: generated
	// sites are returned with a demo identifier instead of being stored.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible record cache). Empty host disables caching.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// AI provider settings. Providers without API keys are skipped.
	AIProvider string // "openai", "mistral"

	OpenAIKey        string
	OpenAIModel      string
	OpenAIImageModel string
	OpenAIBaseURL    string

	MistralKey     string
	MistralModel   string
	MistralBaseURL string

	// S3-compatible object storage for mirroring generated hero images.
	// Empty endpoint or credentials disable mirroring.
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host:      envOrDefault("APP_HOST", "0.0.0.0"),
		Port:      envOrDefault("APP_PORT", "8080"),
		Env:       envOrDefault("APP_ENV", "development"),
		PublicURL: envOrDefault("APP_PUBLIC_URL", "http://localhost:8080"),

		DBHost:     os.Getenv("POSTGRES_HOST"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "siteforge"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "siteforge"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		AIProvider: envOrDefault("AI_PROVIDER", "openai"),

		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      os.Getenv("OPENAI_MODEL"),
		OpenAIImageModel: os.Getenv("OPENAI_IMAGE_MODEL"),
		OpenAIBaseURL:    os.Getenv("OPENAI_BASE_URL"),

		MistralKey:     os.Getenv("MISTRAL_API_KEY"),
		MistralModel:   os.Getenv("MISTRAL_MODEL"),
		MistralBaseURL: os.Getenv("MISTRAL_BASE_URL"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "siteforge-public"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
	}

	if cfg.Env == "production" && cfg.HasDatabase() {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// HasDatabase reports whether a PostgreSQL host is configured.
func (c *Config) HasDatabase() bool {
	return c.DBHost != ""
}

// HasValkey reports whether a Valkey host is configured.
func (c *Config) HasValkey() bool {
	return c.ValkeyHost != ""
}

// HasObjectStorage reports whether S3-compatible storage is configured.
func (c *Config) HasObjectStorage() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
