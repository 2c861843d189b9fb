package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr  string
	BaseURL     string
	ServiceName string

	// Database
	DatabaseURL  string
	SeedProducts bool // Insert the sample catalog when the products table is empty

	// Redis backs the rate limiter when set; otherwise limits are per process.
	RedisURL string

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://shop.example.com"

	// Requests per minute per client IP on the API. 0 disables the limiter.
	RateLimitMax int

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json or console

	// Bot
	LexiconFile    string // Optional YAML overlay for the bot vocabulary
	BotMatchPolicy string // "substring" (default) or "word"

	// Cart janitor
	CartTTL           time.Duration
	CartSweepInterval time.Duration

	// SMTP
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPTLS      string // none, tls, starttls

	// Recipients of new order notifications
	OrderNotifyEmails []string

	// Site Branding
	SiteTitle string // env: SITE_TITLE, default: "Storefront"
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present; variables
// already set in the environment take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:            getEnv("ENV", "development"),
		ServerAddr:     getEnv("SERVER_ADDR", ":5000"),
		BaseURL:        getEnv("BASE_URL", "http://localhost:5000"),
		ServiceName:    getEnv("SERVICE_NAME", "ecommerce-bot"),
		DatabaseURL:    getEnv("DATABASE_URL", "postgres://localhost:5432/storefront?sslmode=disable"),
		RedisURL:       getEnv("REDIS_URL", ""),
		CORSOrigins:    getEnv("CORS_ORIGINS", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", ""),
		LexiconFile:    getEnv("LEXICON_FILE", "lexicon.yaml"),
		BotMatchPolicy: getEnv("BOT_MATCH_POLICY", "substring"),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:       getEnv("SMTP_FROM", ""),
		SMTPFromName:   getEnv("SMTP_FROM_NAME", "Storefront"),
		SMTPTLS:        strings.ToLower(getEnv("SMTP_TLS", "starttls")),
		SiteTitle:      getEnv("SITE_TITLE", "Storefront"),

		OrderNotifyEmails: splitList(getEnv("ORDER_NOTIFY_EMAILS", "")),
	}

	var err error
	if cfg.SeedProducts, err = getEnvBool("SEED_PRODUCTS", true); err != nil {
		return nil, err
	}
	if cfg.RateLimitMax, err = getEnvInt("RATE_LIMIT_MAX", 60); err != nil {
		return nil, err
	}
	if cfg.SMTPPort, err = getEnvInt("SMTP_PORT", 587); err != nil {
		return nil, err
	}
	if cfg.CartTTL, err = getEnvDuration("CART_TTL", 72*time.Hour); err != nil {
		return nil, err
	}
	if cfg.CartSweepInterval, err = getEnvDuration("CART_SWEEP_INTERVAL", time.Hour); err != nil {
		return nil, err
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
		if cfg.IsDev() {
			cfg.LogFormat = "console"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be caught while parsing.
func (c *Config) Validate() error {
	if c.RateLimitMax < 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must not be negative, got %d", c.RateLimitMax)
	}
	if c.CartTTL <= 0 {
		return fmt.Errorf("CART_TTL must be positive, got %s", c.CartTTL)
	}
	if c.CartSweepInterval <= 0 {
		return fmt.Errorf("CART_SWEEP_INTERVAL must be positive, got %s", c.CartSweepInterval)
	}
	switch c.SMTPTLS {
	case "none", "tls", "starttls":
	default:
		return fmt.Errorf("SMTP_TLS must be none, tls or starttls, got %q", c.SMTPTLS)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsEmailEnabled returns true if SMTP is configured well enough to send mail.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}

// AllowedOrigins returns the configured CORS origins as a list.
func (c *Config) AllowedOrigins() []string {
	return splitList(c.CORSOrigins)
}
