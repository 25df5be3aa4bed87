package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// User-facing messages. Validation messages are specific so the visitor can
// fix the form; everything else stays generic.
const (
	MsgConfig          = "Błąd konfiguracji serwera"
	MsgRequiredFields  = "Wszystkie wymagane pola muszą być wypełnione"
	MsgInvalidEmail    = "Niepoprawny format adresu email"
	MsgInvalidBody     = "Nieprawidłowe dane formularza"
	MsgCaptchaRejected = "Weryfikacja reCAPTCHA nie powiodła się"
	MsgDelivery        = "Nie udało się wysłać wiadomości. Spróbuj ponownie później."
	MsgUnexpected      = "Wystąpił nieoczekiwany błąd serwera"
	MsgRateLimited     = "Zbyt wiele prób. Spróbuj ponownie później."
)

// Contact service error kinds
var (
	ErrConfig     = errors.New("email provider is not configured")
	ErrValidation = errors.New("validation failed")
	ErrCaptcha    = errors.New("recaptcha rejected")
	ErrDelivery   = errors.New("email delivery failed")
)

// ErrorResponse is the JSON envelope of every failed contact request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ContactError represents a contact service error
type ContactError struct {
	Kind    error
	Message string
	Details string
	Cause   error
}

// Error implements the error interface
func (e *ContactError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error
func (e *ContactError) Unwrap() error {
	return e.Cause
}

// Is matches the error kind so callers can use errors.Is(err, ErrDelivery).
func (e *ContactError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// NewValidationError creates an error whose message is shown to the visitor.
func NewValidationError(message string) *ContactError {
	return &ContactError{Kind: ErrValidation, Message: message}
}

// NewConfigError reports a missing provider credential.
func NewConfigError() *ContactError {
	return &ContactError{Kind: ErrConfig, Message: MsgConfig}
}

// NewCaptchaError reports a rejected reCAPTCHA token.
func NewCaptchaError() *ContactError {
	return &ContactError{Kind: ErrCaptcha, Message: MsgCaptchaRejected}
}

// NewDeliveryError wraps a provider failure; details is the upstream description.
func NewDeliveryError(details string, cause error) *ContactError {
	return &ContactError{Kind: ErrDelivery, Message: MsgDelivery, Details: details, Cause: cause}
}

// HandleValidationError handles validation errors with 400 Bad Request
func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: message})
}

// HandleConfigError handles a missing provider credential with 500
func HandleConfigError(c *fiber.Ctx) error {
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: MsgConfig})
}

// HandleDeliveryError handles provider failures with 500 and a details field
func HandleDeliveryError(c *fiber.Ctx, details string) error {
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error:   MsgDelivery,
		Details: details,
	})
}

// HandleUnexpectedError hides anything unplanned behind a generic 500
func HandleUnexpectedError(c *fiber.Ctx) error {
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: MsgUnexpected})
}

// HandleRateLimitError answers 429 with the window length in seconds
func HandleRateLimitError(c *fiber.Ctx, retryAfterSeconds int) error {
	return c.Status(http.StatusTooManyRequests).JSON(fiber.Map{
		"error":      MsgRateLimited,
		"retryAfter": retryAfterSeconds,
	})
}

// HandleServiceError handles service errors and returns appropriate HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var contactErr *ContactError
	if !errors.As(err, &contactErr) {
		return HandleUnexpectedError(c)
	}

	switch {
	case errors.Is(contactErr, ErrConfig):
		return HandleConfigError(c)
	case errors.Is(contactErr, ErrValidation), errors.Is(contactErr, ErrCaptcha):
		return HandleValidationError(c, contactErr.Message)
	case errors.Is(contactErr, ErrDelivery):
		return HandleDeliveryError(c, contactErr.Details)
	default:
		return HandleUnexpectedError(c)
	}
}
