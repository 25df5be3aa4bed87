package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults used when the environment leaves a value unset.
const (
	DefaultContactEmail = "kontakt@investdom.com.pl"
	DefaultContactFrom  = "Formularz InvestDom <formularz@investdom.com.pl>"
	DefaultWebDomain    = "https://investdom.com.pl"
)

// Rate limit storage backends.
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config is the full process configuration.
type Config struct {
	Server     ServerConfig     `json:"server"`
	Email      EmailConfig      `json:"email"`
	Security   SecurityConfig   `json:"security"`
	RateLimits RateLimitsConfig `json:"rateLimits"`
	Redis      RedisConfig      `json:"redis"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	BaseRoute string `json:"baseRoute"`
	WebDomain string `json:"webDomain"`
	SiteDir   string `json:"siteDir"`
	Debug     bool   `json:"debug"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// EmailConfig holds the transactional email provider settings.
// An empty ResendAPIKey is allowed at startup; the contact endpoint
// reports it per request.
type EmailConfig struct {
	ResendAPIKey  string        `json:"-"`
	ResendBaseURL string        `json:"resendBaseUrl"`
	ContactEmail  string        `json:"contactEmail"`
	From          string        `json:"from"`
	Timeout       time.Duration `json:"timeout"`
}

// SecurityConfig holds anti-spam configuration
type SecurityConfig struct {
	RecaptchaKey      string `json:"-"`
	RecaptchaDisabled bool   `json:"recaptchaDisabled"`
}

// RecaptchaEnabled reports whether submissions must carry a valid reCAPTCHA token.
func (s SecurityConfig) RecaptchaEnabled() bool {
	return !s.RecaptchaDisabled && strings.TrimSpace(s.RecaptchaKey) != ""
}

// RateLimitConfig holds rate limiting configuration for a specific endpoint
type RateLimitConfig struct {
	Enabled  bool          `json:"enabled"`
	Max      int           `json:"max"`
	Duration time.Duration `json:"duration"`
}

// RateLimitsConfig holds rate limiting configuration for all endpoints
type RateLimitsConfig struct {
	Contact RateLimitConfig `json:"contact"`
	Storage string          `json:"storage"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string `json:"address"`
	Password string `json:"-"`
	Database int    `json:"database"`
	PoolSize int    `json:"poolSize"`
	Prefix   string `json:"prefix"`
}

const redactedValue = "[redacted]"

// Redacted returns a copy safe to log: credentials are masked, empty ones stay empty.
func (c Config) Redacted() Config {
	mask := func(v string) string {
		if v == "" {
			return ""
		}
		return redactedValue
	}
	c.Email.ResendAPIKey = mask(c.Email.ResendAPIKey)
	c.Security.RecaptchaKey = mask(c.Security.RecaptchaKey)
	c.Redis.Password = mask(c.Redis.Password)
	return c
}

// LoadFromEnv loads configuration from the environment.
// Precedence:
// 1. Explicit environment variables
// 2. Values from the .env file (if it exists)
// 3. Hardcoded defaults
func LoadFromEnv() (*Config, error) {
	// godotenv.Load never overrides variables that are already set.
	envPaths := []string{".env", "../.env", "../../.env"}

	var loadErr error
	for _, envPath := range envPaths {
		loadErr = godotenv.Load(envPath)
		if loadErr == nil {
			break
		}
	}
	if loadErr != nil {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	return build(func(key string) (string, bool) {
		value := os.Getenv(key)
		return value, value != ""
	})
}

// LoadFromMap loads configuration from an in-memory map.
// This is the primary helper for testing configuration logic in isolation
// without manipulating global environment variables.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	return build(func(key string) (string, bool) {
		value, ok := envMap[key]
		return value, ok
	})
}

type lookupFunc func(key string) (string, bool)

func build(lookup lookupFunc) (*Config, error) {
	get := func(key, defaultValue string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return defaultValue
	}
	getInt := func(key string, defaultValue int) int {
		if value, ok := lookup(key); ok {
			if intValue, err := strconv.Atoi(value); err == nil {
				return intValue
			}
		}
		return defaultValue
	}
	getBool := func(key string, defaultValue bool) bool {
		if value, ok := lookup(key); ok {
			if boolValue, err := strconv.ParseBool(value); err == nil {
				return boolValue
			}
		}
		return defaultValue
	}
	getDuration := func(key string, defaultValue time.Duration) time.Duration {
		if value, ok := lookup(key); ok {
			if duration, err := time.ParseDuration(value); err == nil {
				return duration
			}
		}
		return defaultValue
	}

	config := &Config{
		Server: ServerConfig{
			Host:      get("HOST", "0.0.0.0"),
			Port:      getInt("SERVER_PORT", 8080),
			BaseRoute: strings.TrimRight(get("BASE_ROUTE", "/api"), "/"),
			WebDomain: get("WEB_DOMAIN", DefaultWebDomain),
			SiteDir:   get("SITE_DIR", ""),
			Debug:     getBool("DEBUG", false),
		},
		Email: EmailConfig{
			ResendAPIKey:  strings.TrimSpace(get("RESEND_API_KEY", "")),
			ResendBaseURL: get("RESEND_BASE_URL", ""),
			ContactEmail:  get("CONTACT_EMAIL", DefaultContactEmail),
			From:          get("CONTACT_FROM", DefaultContactFrom),
			Timeout:       getDuration("EMAIL_TIMEOUT", 10*time.Second),
		},
		Security: SecurityConfig{
			RecaptchaKey:      get("RECAPTCHA_KEY", ""),
			RecaptchaDisabled: getBool("RECAPTCHA_DISABLED", false),
		},
		RateLimits: RateLimitsConfig{
			Contact: RateLimitConfig{
				Enabled:  getBool("RATE_LIMIT_CONTACT_ENABLED", true),
				Max:      getInt("RATE_LIMIT_CONTACT_MAX", 5),
				Duration: getDuration("RATE_LIMIT_CONTACT_DURATION", 1*time.Hour),
			},
			Storage: strings.ToLower(get("RATE_LIMIT_STORAGE", StorageMemory)),
		},
		Redis: RedisConfig{
			Address:  get("REDIS_ADDRESS", "localhost:6379"),
			Password: get("REDIS_PASSWORD", ""),
			Database: getInt("REDIS_DATABASE", 0),
			PoolSize: getInt("REDIS_POOL_SIZE", 10),
			Prefix:   get("REDIS_PREFIX", "investdom:ratelimit:"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks only what the process cannot start without.
func (c *Config) Validate() error {
	var errors []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errors = append(errors, "SERVER_PORT must be between 1 and 65535")
	}

	if c.RateLimits.Contact.Enabled {
		if c.RateLimits.Contact.Max <= 0 {
			errors = append(errors, "RATE_LIMIT_CONTACT_MAX must be positive")
		}
		if c.RateLimits.Contact.Duration <= 0 {
			errors = append(errors, "RATE_LIMIT_CONTACT_DURATION must be positive")
		}
	}

	validStorages := []string{StorageMemory, StorageRedis}
	if !contains(validStorages, c.RateLimits.Storage) {
		errors = append(errors, fmt.Sprintf("RATE_LIMIT_STORAGE must be one of: %s", strings.Join(validStorages, ", ")))
	}

	if c.Email.Timeout <= 0 {
		errors = append(errors, "EMAIL_TIMEOUT must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
