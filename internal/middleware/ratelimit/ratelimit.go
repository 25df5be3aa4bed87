// Package ratelimit provides per-client rate limiting for public form endpoints
package ratelimit

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/Sp94dev/investdom-website/internal/pkg/log"
	"github.com/Sp94dev/investdom-website/internal/types"
)

// EndpointLimits defines rate limiting configuration for specific endpoints
type EndpointLimits struct {
	// Contact form: 5 per hour per IP
	ContactMaxRequests    int
	ContactWindowDuration time.Duration
}

// DefaultEndpointLimits returns the default rate limits
func DefaultEndpointLimits() EndpointLimits {
	return EndpointLimits{
		ContactMaxRequests:    5,
		ContactWindowDuration: 1 * time.Hour,
	}
}

// EndpointType represents different public endpoints for rate limiting
type EndpointType int

const (
	EndpointContact EndpointType = iota
)

// Config holds the configuration for rate limiting middleware
type Config struct {
	// Endpoint type to determine which limits to apply
	EndpointType EndpointType

	// Custom limits (optional - uses defaults if not provided)
	Limits *EndpointLimits

	// Storage keeps the counters; nil means in-process memory
	Storage fiber.Storage

	// Next defines a function to skip this middleware when returned true
	Next func(c *fiber.Ctx) bool

	// Custom key generator (optional - uses default IP-based if not provided)
	KeyGenerator func(c *fiber.Ctx) string

	// LimitReached defines the response when rate limit is exceeded
	LimitReached func(c *fiber.Ctx) error
}

// configDefault sets default configuration values
func configDefault(config Config) Config {
	if config.Limits == nil {
		limits := DefaultEndpointLimits()
		config.Limits = &limits
	}

	// rate limit by IP + endpoint path
	if config.KeyGenerator == nil {
		config.KeyGenerator = func(c *fiber.Ctx) string {
			return c.IP() + ":" + c.Path()
		}
	}

	windowDuration := getWindowDuration(config.EndpointType, config.Limits)
	next := config.LimitReached
	if next == nil {
		next = func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":      "Rate limit exceeded",
				"retryAfter": int(windowDuration.Seconds()),
			})
		}
	}
	endpointName := getEndpointName(config.EndpointType)
	config.LimitReached = func(c *fiber.Ctx) error {
		log.WarnWithContext(c.UserContext(), "[RateLimit] Rate limit exceeded for %s from IP: %s", endpointName, c.IP())
		c.Set(types.HeaderRetryAfter, strconv.Itoa(int(windowDuration.Seconds())))
		return next(c)
	}

	return config
}

// getEndpointName returns human-readable endpoint name for logging
func getEndpointName(endpointType EndpointType) string {
	switch endpointType {
	case EndpointContact:
		return "contact form"
	default:
		return "unknown"
	}
}

// getMaxRequests returns the max requests for the endpoint type
func getMaxRequests(endpointType EndpointType, limits *EndpointLimits) int {
	switch endpointType {
	case EndpointContact:
		return limits.ContactMaxRequests
	default:
		return 5 // Conservative default
	}
}

// getWindowDuration returns the window duration for the endpoint type
func getWindowDuration(endpointType EndpointType, limits *EndpointLimits) time.Duration {
	switch endpointType {
	case EndpointContact:
		return limits.ContactWindowDuration
	default:
		return 15 * time.Minute // Conservative default
	}
}

// RetryAfterSeconds is the window length reported to limited clients.
func RetryAfterSeconds(limits *EndpointLimits, endpointType EndpointType) int {
	if limits == nil {
		defaults := DefaultEndpointLimits()
		limits = &defaults
	}
	return int(getWindowDuration(endpointType, limits).Seconds())
}

// New creates a new rate limiting middleware handler
func New(config Config) fiber.Handler {
	cfg := configDefault(config)

	return limiter.New(limiter.Config{
		Max:          getMaxRequests(cfg.EndpointType, cfg.Limits),
		Expiration:   getWindowDuration(cfg.EndpointType, cfg.Limits),
		KeyGenerator: cfg.KeyGenerator,
		LimitReached: cfg.LimitReached,
		Next:         cfg.Next,
		Storage:      cfg.Storage,
	})
}

// NewContactLimiter creates a rate limiter for the contact form endpoint
func NewContactLimiter(customLimits *EndpointLimits, storage fiber.Storage, limitReached func(c *fiber.Ctx) error) fiber.Handler {
	return New(Config{
		EndpointType: EndpointContact,
		Limits:       customLimits,
		Storage:      storage,
		LimitReached: limitReached,
	})
}
