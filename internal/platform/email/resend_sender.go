package email

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"
)

const providerResend = "resend"

// resend-go prefixes upstream API messages with this marker.
const resendErrorPrefix = "[ERROR]: "

// ResendSender is the production implementation of the Sender interface.
type ResendSender struct {
	client *resend.Client
}

// NewResendSender creates a sender for the Resend API. baseURL and
// httpClient are optional overrides.
func NewResendSender(apiKey, baseURL string, httpClient *http.Client) (*ResendSender, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	var client *resend.Client
	if httpClient != nil {
		client = resend.NewCustomClient(httpClient, apiKey)
	} else {
		client = resend.NewClient(apiKey)
	}

	if baseURL != "" {
		// resolved relative to the base, so the trailing slash matters
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid resend base url %q: %w", baseURL, err)
		}
		client.BaseURL = u
	}

	return &ResendSender{client: client}, nil
}

func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	if len(msg.To) == 0 {
		return "", fmt.Errorf("email: at least one recipient is required")
	}

	resp, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.Body,
	})
	if err != nil {
		return "", &ProviderError{
			Provider: providerResend,
			Message:  strings.TrimPrefix(err.Error(), resendErrorPrefix),
			Err:      err,
		}
	}
	if resp == nil {
		return "", nil
	}
	return resp.Id, nil
}
