package validation

import (
	"regexp"
	"strings"

	contactErrors "github.com/Sp94dev/investdom-website/contact/errors"
	"github.com/Sp94dev/investdom-website/contact/models"
)

// emailPattern is a deliberately loose address check: something@something.tld
// with no whitespace and a single @ per part. The class also excludes the
// Unicode space separators a browser treats as whitespace.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// EscapeHTML replaces & < > " ' with their entity forms.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// ValidateSubmission checks required fields first, then the address format.
// The first failure is returned as a validation ContactError.
func ValidateSubmission(s *models.Submission) error {
	if s == nil || s.Name == "" || s.Email == "" || s.Message == "" {
		return contactErrors.NewValidationError(contactErrors.MsgRequiredFields)
	}
	if !IsValidEmail(s.Email) {
		return contactErrors.NewValidationError(contactErrors.MsgInvalidEmail)
	}
	return nil
}
