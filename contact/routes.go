package contact

import (
	"github.com/gofiber/fiber/v2"

	contactErrors "github.com/Sp94dev/investdom-website/contact/errors"
	"github.com/Sp94dev/investdom-website/contact/handlers"
	"github.com/Sp94dev/investdom-website/internal/middleware/ratelimit"
	platformconfig "github.com/Sp94dev/investdom-website/internal/platform/config"
)

// ContactHandlers holds all the handlers this router needs.
type ContactHandlers struct {
	ContactHandler *handlers.ContactHandler
}

// RegisterRoutes is the single entry point for setting up contact routes.
// storage may be nil, in which case limiter counters stay in process memory.
func RegisterRoutes(app *fiber.App, handlers *ContactHandlers, cfg *platformconfig.Config, storage fiber.Storage) {
	group := app.Group(cfg.Server.BaseRoute)

	chain := []fiber.Handler{}
	if cfg.RateLimits.Contact.Enabled {
		limits := &ratelimit.EndpointLimits{
			ContactMaxRequests:    cfg.RateLimits.Contact.Max,
			ContactWindowDuration: cfg.RateLimits.Contact.Duration,
		}
		retryAfter := ratelimit.RetryAfterSeconds(limits, ratelimit.EndpointContact)
		chain = append(chain, ratelimit.NewContactLimiter(limits, storage, func(c *fiber.Ctx) error {
			return contactErrors.HandleRateLimitError(c, retryAfter)
		}))
	}
	chain = append(chain, handlers.ContactHandler.Submit)

	group.Post("/contact", chain...)
}
