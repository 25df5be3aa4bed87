package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Sp94dev/investdom-website/internal/types"
)

// GoogleVerifyURL is the siteverify endpoint.
const GoogleVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// googleRecaptchaVerifier is the production implementation of the Verifier interface.
type googleRecaptchaVerifier struct {
	secretKey  string
	verifyURL  string
	httpClient *http.Client
}

// Option customises the Google verifier.
type Option func(*googleRecaptchaVerifier)

// WithVerifyURL points the verifier at another siteverify endpoint.
func WithVerifyURL(u string) Option {
	return func(v *googleRecaptchaVerifier) { v.verifyURL = u }
}

// WithHTTPClient replaces the default client (5s timeout).
func WithHTTPClient(c *http.Client) Option {
	return func(v *googleRecaptchaVerifier) { v.httpClient = c }
}

// NewGoogleVerifier creates a new production-ready verifier.
func NewGoogleVerifier(secretKey string, opts ...Option) (Verifier, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("recaptcha secret key cannot be empty")
	}
	v := &googleRecaptchaVerifier{
		secretKey:  secretKey,
		verifyURL:  GoogleVerifyURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

type googleResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func (v *googleRecaptchaVerifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if token == "" {
		return false, nil
	}

	formData := url.Values{
		"secret":   {v.secretKey},
		"response": {token},
	}
	if remoteIP != "" {
		formData.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return false, fmt.Errorf("failed to create recaptcha request: %w", err)
	}
	req.Header.Set(types.HeaderContentType, types.MIMEFormURLEncoded)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to call recaptcha api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("recaptcha api returned status %d", resp.StatusCode)
	}

	var googleResp googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&googleResp); err != nil {
		return false, fmt.Errorf("failed to decode recaptcha response: %w", err)
	}
	return googleResp.Success, nil
}
