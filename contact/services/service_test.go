package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	contactErrors "github.com/Sp94dev/investdom-website/contact/errors"
	"github.com/Sp94dev/investdom-website/contact/models"
	platformconfig "github.com/Sp94dev/investdom-website/internal/platform/config"
	platformemail "github.com/Sp94dev/investdom-website/internal/platform/email"
)

func validSubmission() *models.Submission {
	return &models.Submission{
		Name:    "Anna",
		Email:   "a@b.com",
		Phone:   "",
		Subject: "kupno",
		Message: "Hi",
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	settings := Settings{From: "Form <form@example.com>", To: "office@example.com", Timeout: time.Second}

	t.Run("sends one message and returns the provider id", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(msg platformemail.Message) bool {
			return msg.From == settings.From &&
				len(msg.To) == 1 && msg.To[0] == settings.To &&
				msg.ReplyTo == "a@b.com" &&
				msg.Subject == "Nowa wiadomość od Anna - Chcę kupić dom"
		})).Return("abc", nil).Once()

		svc := NewService(sender, settings)
		id, err := svc.Submit(ctx, validSubmission())

		require.NoError(t, err)
		require.Equal(t, "abc", id)
		sender.AssertExpectations(t)
	})

	t.Run("bounds the provider call with the configured timeout", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.MatchedBy(func(c context.Context) bool {
			_, ok := c.Deadline()
			return ok
		}), mock.Anything).Return("abc", nil).Once()

		svc := NewService(sender, settings)
		_, err := svc.Submit(ctx, validSubmission())

		require.NoError(t, err)
		sender.AssertExpectations(t)
	})

	t.Run("without a sender every submission is a config error", func(t *testing.T) {
		svc := NewService(nil, settings)
		require.False(t, svc.Configured())

		_, err := svc.Submit(ctx, &models.Submission{})
		require.ErrorIs(t, err, contactErrors.ErrConfig)
	})

	t.Run("invalid submissions never reach the provider", func(t *testing.T) {
		sender := new(MockSender)
		svc := NewService(sender, settings)

		sub := validSubmission()
		sub.Email = "not-an-email"
		_, err := svc.Submit(ctx, sub)

		require.ErrorIs(t, err, contactErrors.ErrValidation)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("provider errors become delivery errors with details", func(t *testing.T) {
		upstream := &platformemail.ProviderError{Provider: "resend", Message: "The domain is not verified"}
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return("", upstream).Once()

		svc := NewService(sender, settings)
		id, err := svc.Submit(ctx, validSubmission())

		require.Empty(t, id)
		require.ErrorIs(t, err, contactErrors.ErrDelivery)
		require.ErrorIs(t, err, upstream)

		var contactErr *contactErrors.ContactError
		require.True(t, errors.As(err, &contactErr))
		require.Equal(t, "The domain is not verified", contactErr.Details)
		sender.AssertExpectations(t)
	})

	t.Run("plain sender errors use their text as details", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return("", errors.New("connection refused")).Once()

		svc := NewService(sender, settings)
		_, err := svc.Submit(ctx, validSubmission())

		var contactErr *contactErrors.ContactError
		require.True(t, errors.As(err, &contactErr))
		require.Equal(t, "connection refused", contactErr.Details)
	})
}

func TestNewService_Defaults(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg platformemail.Message) bool {
		return msg.From == platformconfig.DefaultContactFrom &&
			msg.To[0] == platformconfig.DefaultContactEmail
	})).Return("id-1", nil).Once()

	svc := NewService(sender, Settings{})
	_, err := svc.Submit(context.Background(), validSubmission())

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestSettingsFromConfig(t *testing.T) {
	cfg, err := platformconfig.LoadFromMap(map[string]string{
		"CONTACT_EMAIL": "biuro@example.com",
		"EMAIL_TIMEOUT": "2s",
	})
	require.NoError(t, err)

	settings := SettingsFromConfig(cfg.Email)
	require.Equal(t, "biuro@example.com", settings.To)
	require.Equal(t, platformconfig.DefaultContactFrom, settings.From)
	require.Equal(t, 2*time.Second, settings.Timeout)
}
