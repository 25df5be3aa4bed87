package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contactErrors "github.com/Sp94dev/investdom-website/contact/errors"
	"github.com/Sp94dev/investdom-website/contact/models"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"a@b.com",
		"jan.kowalski@investdom.com.pl",
		"user+tag@example.org",
		"łukasz@przykład.pl",
		"a@b.c.d",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"a@b",
		"@b.com",
		"a@.com.",
		"a@b.",
		"a b@c.com",
		"a@b@c.com",
		"a@b .com",
		"a@b.com\n",
		"a\t@b.com",
		"a @b.com",
		"a@b.com ",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"Anna", "Anna"},
		{"<script>alert('x')</script>", "&lt;script&gt;alert(&#039;x&#039;)&lt;/script&gt;"},
		{`Tom & "Jerry"`, "Tom &amp; &quot;Jerry&quot;"},
		{"&amp;", "&amp;amp;"},
		{"zażółć gęślą jaźń", "zażółć gęślą jaźń"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeHTML(tt.input))
		})
	}
}

func TestValidateSubmission(t *testing.T) {
	valid := models.Submission{Name: "Anna", Email: "a@b.com", Message: "Hi"}

	t.Run("accepts a complete submission", func(t *testing.T) {
		s := valid
		require.NoError(t, ValidateSubmission(&s))
	})

	t.Run("phone and subject are optional", func(t *testing.T) {
		s := valid
		s.Phone = ""
		s.Subject = ""
		require.NoError(t, ValidateSubmission(&s))
	})

	missing := map[string]func(*models.Submission){
		"name":    func(s *models.Submission) { s.Name = "" },
		"email":   func(s *models.Submission) { s.Email = "" },
		"message": func(s *models.Submission) { s.Message = "" },
	}
	for field, clear := range missing {
		t.Run("rejects missing "+field, func(t *testing.T) {
			s := valid
			clear(&s)
			err := ValidateSubmission(&s)
			require.ErrorIs(t, err, contactErrors.ErrValidation)
			require.Equal(t, contactErrors.MsgRequiredFields, err.Error())
		})
	}

	t.Run("rejects nil", func(t *testing.T) {
		require.ErrorIs(t, ValidateSubmission(nil), contactErrors.ErrValidation)
	})

	t.Run("required fields are checked before the address format", func(t *testing.T) {
		err := ValidateSubmission(&models.Submission{Email: "not-an-email", Message: "Hi"})
		require.Equal(t, contactErrors.MsgRequiredFields, err.Error())
	})

	t.Run("rejects malformed address", func(t *testing.T) {
		s := valid
		s.Email = "not-an-email"
		err := ValidateSubmission(&s)
		require.ErrorIs(t, err, contactErrors.ErrValidation)
		require.Equal(t, contactErrors.MsgInvalidEmail, err.Error())
	})
}
