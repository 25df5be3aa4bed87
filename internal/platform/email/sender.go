package email

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when a provider is built without a credential.
var ErrMissingAPIKey = errors.New("email provider API key is not configured")

// Message represents an email to be sent.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Body    string // HTML allowed
}

// Sender abstracts email sending for DI and testing.
// Send returns the provider's message identifier, which may be empty.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// ProviderError is an error reported by the delivery provider itself.
type ProviderError struct {
	Provider string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	}
	return e.Provider + ": delivery failed"
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Details is the short upstream description exposed to API clients.
func (e *ProviderError) Details() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Provider
}
