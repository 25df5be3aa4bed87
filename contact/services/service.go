package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	contactErrors "github.com/Sp94dev/investdom-website/contact/errors"
	"github.com/Sp94dev/investdom-website/contact/models"
	"github.com/Sp94dev/investdom-website/contact/validation"
	"github.com/Sp94dev/investdom-website/internal/pkg/log"
	platformconfig "github.com/Sp94dev/investdom-website/internal/platform/config"
	platformemail "github.com/Sp94dev/investdom-website/internal/platform/email"
)

// Service defines contact form operations.
type Service interface {
	// Configured reports whether an email provider is available.
	Configured() bool

	// Submit validates the submission, sends the notification once and
	// returns the provider's message id.
	Submit(ctx context.Context, sub *models.Submission) (string, error)
}

// Settings are the fixed parts of every notification.
type Settings struct {
	From    string
	To      string
	Timeout time.Duration
}

// SettingsFromConfig extracts notification settings from the platform config.
func SettingsFromConfig(cfg platformconfig.EmailConfig) Settings {
	return Settings{
		From:    cfg.From,
		To:      cfg.ContactEmail,
		Timeout: cfg.Timeout,
	}
}

type service struct {
	sender   platformemail.Sender
	settings Settings
}

// NewService constructs a contact service. A nil sender yields a service
// that reports every submission as a configuration error.
func NewService(sender platformemail.Sender, settings Settings) Service {
	if settings.From == "" {
		settings.From = platformconfig.DefaultContactFrom
	}
	if settings.To == "" {
		settings.To = platformconfig.DefaultContactEmail
	}
	return &service{sender: sender, settings: settings}
}

func (s *service) Configured() bool {
	return s.sender != nil
}

func (s *service) Submit(ctx context.Context, sub *models.Submission) (string, error) {
	if !s.Configured() {
		return "", contactErrors.NewConfigError()
	}
	if err := validation.ValidateSubmission(sub); err != nil {
		return "", err
	}

	msg, err := Compose(sub, s.settings)
	if err != nil {
		return "", fmt.Errorf("compose contact email: %w", err)
	}

	sendCtx := ctx
	if s.settings.Timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.settings.Timeout)
		defer cancel()
	}

	id, err := s.sender.Send(sendCtx, msg)
	if err != nil {
		log.ErrorWithContext(ctx, "Email provider error: %v", err)
		return "", contactErrors.NewDeliveryError(deliveryDetails(err), err)
	}

	log.InfoWithContext(ctx, "Email sent successfully: %s", id)
	return id, nil
}

func deliveryDetails(err error) string {
	var providerErr *platformemail.ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Details()
	}
	return err.Error()
}
