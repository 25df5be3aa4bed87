package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"

	contactErrors "github.com/Sp94dev/investdom-website/contact/errors"
	"github.com/Sp94dev/investdom-website/contact/models"
	"github.com/Sp94dev/investdom-website/contact/services"
	"github.com/Sp94dev/investdom-website/contact/validation"
	"github.com/Sp94dev/investdom-website/internal/pkg/log"
	"github.com/Sp94dev/investdom-website/internal/recaptcha"
	"github.com/Sp94dev/investdom-website/internal/types"
)

var formDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

type ContactHandler struct {
	service           services.Service
	recaptchaVerifier recaptcha.Verifier
}

func NewContactHandler(service services.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// WithRecaptcha enables token verification (e.g., a fake in tests)
func (h *ContactHandler) WithRecaptcha(v recaptcha.Verifier) *ContactHandler {
	h.recaptchaVerifier = v
	return h
}

// Submit relays one contact form post to the configured inbox.
// Endpoint: POST /contact
func (h *ContactHandler) Submit(c *fiber.Ctx) (err error) {
	ctx := c.UserContext()

	defer func() {
		if r := recover(); r != nil {
			log.ErrorWithContext(ctx, "Unexpected error in contact handler: %v", r)
			err = contactErrors.HandleUnexpectedError(c)
		}
	}()

	if h.service == nil || !h.service.Configured() {
		log.ErrorWithContext(ctx, "RESEND_API_KEY is not configured")
		return contactErrors.HandleConfigError(c)
	}

	sub, parseErr := parseSubmission(c)
	if parseErr != nil {
		log.WarnWithContext(ctx, "Rejected contact body: %v", parseErr)
		return contactErrors.HandleValidationError(c, contactErrors.MsgInvalidBody)
	}

	if validationErr := validation.ValidateSubmission(sub); validationErr != nil {
		log.WarnWithContext(ctx, "Contact validation failed: %v", validationErr)
		return contactErrors.HandleServiceError(c, validationErr)
	}

	if h.recaptchaVerifier != nil {
		ok, verifyErr := h.recaptchaVerifier.Verify(ctx, sub.Recaptcha, c.IP())
		if verifyErr != nil {
			log.ErrorWithContext(ctx, "reCAPTCHA verification error: %v", verifyErr)
			return contactErrors.HandleUnexpectedError(c)
		}
		if !ok {
			log.WarnWithContext(ctx, "reCAPTCHA rejected submission from %s", c.IP())
			return contactErrors.HandleServiceError(c, contactErrors.NewCaptchaError())
		}
	}

	messageID, submitErr := h.service.Submit(ctx, sub)
	if submitErr != nil {
		return contactErrors.HandleServiceError(c, submitErr)
	}

	return c.Status(http.StatusOK).JSON(models.SuccessResponse{
		Success:   true,
		MessageID: messageID,
	})
}

// parseSubmission reads JSON bodies and, for forms posted without
// JavaScript, url-encoded or multipart bodies. Malformed JSON and fields of
// the wrong type are the client's fault and answer 400, not 500.
func parseSubmission(c *fiber.Ctx) (*models.Submission, error) {
	contentType := strings.ToLower(c.Get(types.HeaderContentType))
	sub := &models.Submission{}

	switch {
	case strings.HasPrefix(contentType, types.MIMEFormURLEncoded):
		values, err := url.ParseQuery(string(c.Body()))
		if err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
		if err := formDecoder.Decode(sub, values); err != nil {
			return nil, fmt.Errorf("decode form: %w", err)
		}
	case strings.HasPrefix(contentType, types.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
		if err := formDecoder.Decode(sub, form.Value); err != nil {
			return nil, fmt.Errorf("decode multipart form: %w", err)
		}
	default:
		if err := json.Unmarshal(c.Body(), sub); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}

	return sub, nil
}
