package recaptcha

import "context"

// Verifier is the interface that wraps the basic Recaptcha verification method.
type Verifier interface {
	// Verify takes a Recaptcha token and the client IP and returns true if the token is valid.
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}
