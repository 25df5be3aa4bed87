package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sp94dev/investdom-website/contact/models"
)

func TestRenderBody_EscapesEveryField(t *testing.T) {
	sub := &models.Submission{
		Name:    `<b>Jan</b>`,
		Email:   `"x"@evil.com`,
		Phone:   `+48 <123>`,
		Message: `Tom & 'Jerry'`,
	}

	body, err := RenderBody(sub, `<i>label</i>`)
	require.NoError(t, err)

	assert.Contains(t, body, `<div class="value">&lt;b&gt;Jan&lt;/b&gt;</div>`)
	assert.Contains(t, body, `<a href="mailto:&quot;x&quot;@evil.com">&quot;x&quot;@evil.com</a>`)
	assert.Contains(t, body, `<a href="tel:+48 &lt;123&gt;">+48 &lt;123&gt;</a>`)
	assert.Contains(t, body, `<div class="value">&lt;i&gt;label&lt;/i&gt;</div>`)
	assert.Contains(t, body, `<div class="message-box">Tom &amp; &#039;Jerry&#039;</div>`)

	for _, raw := range []string{"<b>", `"x"`, "<123>", "<i>", "'Jerry'", "Tom & "} {
		assert.NotContains(t, body, raw)
	}
}

func TestRenderBody_PhoneFallback(t *testing.T) {
	body, err := RenderBody(&models.Submission{Name: "Anna", Email: "a@b.com", Message: "Hi"}, "Kontakt")
	require.NoError(t, err)
	assert.Contains(t, body, `<a href="tel:">Nie podano</a>`)
}

func TestRenderBody_MessageNewlines(t *testing.T) {
	body, err := RenderBody(&models.Submission{Name: "Anna", Email: "a@b.com", Message: "line 1\nline <2>\nline 3"}, "Kontakt")
	require.NoError(t, err)
	assert.Contains(t, body, `line 1<br>line &lt;2&gt;<br>line 3`)
}

func TestCompose(t *testing.T) {
	settings := Settings{From: "Form <form@example.com>", To: "office@example.com"}

	tests := []struct {
		code        string
		wantSubject string
	}{
		{"kupno", "Nowa wiadomość od Anna - Chcę kupić dom"},
		{"budowa", "Nowa wiadomość od Anna - Zlecenie budowy domu"},
		{"dzialka", "Nowa wiadomość od Anna - dzialka"},
		{"", "Nowa wiadomość od Anna - Kontakt"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			sub := &models.Submission{Name: "Anna", Email: "a@b.com", Subject: tt.code, Message: "Hi"}
			msg, err := Compose(sub, settings)
			require.NoError(t, err)

			require.Equal(t, tt.wantSubject, msg.Subject)
			require.Equal(t, settings.From, msg.From)
			require.Equal(t, []string{"office@example.com"}, msg.To)
			require.Equal(t, "a@b.com", msg.ReplyTo)
			require.True(t, strings.Contains(msg.Body, "InvestDom - Formularz kontaktowy"))
		})
	}
}
