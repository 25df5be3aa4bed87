// Package server assembles the HTTP application: middleware, the contact API
// and the static site.
package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Sp94dev/investdom-website/contact"
	contactErrors "github.com/Sp94dev/investdom-website/contact/errors"
	contactHandlers "github.com/Sp94dev/investdom-website/contact/handlers"
	contactServices "github.com/Sp94dev/investdom-website/contact/services"
	"github.com/Sp94dev/investdom-website/internal/middleware/requestid"
	"github.com/Sp94dev/investdom-website/internal/pkg/log"
	platformconfig "github.com/Sp94dev/investdom-website/internal/platform/config"
	platformemail "github.com/Sp94dev/investdom-website/internal/platform/email"
	"github.com/Sp94dev/investdom-website/internal/recaptcha"
	"github.com/Sp94dev/investdom-website/internal/types"
)

// Deps are the external collaborators of the app. Any of them may be nil:
// a nil Sender leaves the contact endpoint unconfigured, a nil Verifier
// skips reCAPTCHA and a nil Storage keeps limiter counters in memory.
type Deps struct {
	Sender   platformemail.Sender
	Verifier recaptcha.Verifier
	Storage  fiber.Storage
}

// New builds the fiber app for cfg.
func New(cfg *platformconfig.Config, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "investdom-api",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.WebDomain,
		AllowHeaders: "Origin, Content-Type, Accept, " + types.HeaderRequestID,
		AllowMethods: "GET, POST, OPTIONS",
	}))

	service := contactServices.NewService(deps.Sender, contactServices.SettingsFromConfig(cfg.Email))
	handler := contactHandlers.NewContactHandler(service)
	if deps.Verifier != nil {
		handler = handler.WithRecaptcha(deps.Verifier)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":          "ok",
			"emailConfigured": service.Configured(),
		})
	})

	contact.RegisterRoutes(app, &contact.ContactHandlers{ContactHandler: handler}, cfg, deps.Storage)

	if cfg.Server.SiteDir != "" {
		app.Static("/", cfg.Server.SiteDir)
	}

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := contactErrors.MsgUnexpected

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		if code != fiber.StatusInternalServerError {
			message = fiberErr.Message
		}
	}

	if code >= fiber.StatusInternalServerError {
		log.ErrorWithContext(c.UserContext(), "[ErrorHandler] Path: %s, Error: %v", c.Path(), err)
	}

	return c.Status(code).JSON(contactErrors.ErrorResponse{Error: message})
}
