package services

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Sp94dev/investdom-website/contact/models"
	"github.com/Sp94dev/investdom-website/contact/validation"
	platformemail "github.com/Sp94dev/investdom-website/internal/platform/email"
)

// PhoneNotProvided is shown in place of an empty phone number.
const PhoneNotProvided = "Nie podano"

// Values reach the template already escaped through esc/nl2br, so the
// non-escaping text/template is used on purpose.
var bodyTemplate = template.Must(template.New("contact-email").Funcs(template.FuncMap{
	"esc":   validation.EscapeHTML,
	"nl2br": func(s string) string { return strings.ReplaceAll(validation.EscapeHTML(s), "\n", "<br>") },
}).Parse(bodyLayout))

const bodyLayout = `
<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #0f172a; color: white; padding: 20px; border-radius: 8px 8px 0 0; }
    .content { background: #f8f9fa; padding: 20px; border: 1px solid #e9ecef; }
    .field { margin-bottom: 15px; }
    .label { font-weight: bold; color: #0f172a; }
    .value { margin-top: 5px; padding: 10px; background: white; border-radius: 4px; }
    .message-box { background: white; padding: 15px; border-left: 4px solid #0ea5e9; margin-top: 10px; }
    .footer { padding: 15px; font-size: 12px; color: #6c757d; text-align: center; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0; font-size: 24px;">📬 Nowa wiadomość z formularza</h1>
      <p style="margin: 10px 0 0 0; opacity: 0.9;">InvestDom - Formularz kontaktowy</p>
    </div>
    <div class="content">
      <div class="field">
        <div class="label">👤 Imię i nazwisko:</div>
        <div class="value">{{esc .Name}}</div>
      </div>
      <div class="field">
        <div class="label">📧 Email:</div>
        <div class="value"><a href="mailto:{{esc .Email}}">{{esc .Email}}</a></div>
      </div>
      <div class="field">
        <div class="label">📱 Telefon:</div>
        <div class="value"><a href="tel:{{esc .Phone}}">{{esc .PhoneDisplay}}</a></div>
      </div>
      <div class="field">
        <div class="label">📋 Temat:</div>
        <div class="value">{{esc .SubjectLabel}}</div>
      </div>
      <div class="field">
        <div class="label">💬 Wiadomość:</div>
        <div class="message-box">{{nl2br .Message}}</div>
      </div>
    </div>
    <div class="footer">
      Wiadomość wysłana przez formularz kontaktowy na stronie investdom.com.pl
    </div>
  </div>
</body>
</html>
`

type bodyData struct {
	Name         string
	Email        string
	Phone        string
	PhoneDisplay string
	SubjectLabel string
	Message      string
}

// RenderBody renders the notification HTML for a submission.
func RenderBody(sub *models.Submission, subjectLabel string) (string, error) {
	data := bodyData{
		Name:         sub.Name,
		Email:        sub.Email,
		Phone:        sub.Phone,
		PhoneDisplay: sub.Phone,
		SubjectLabel: subjectLabel,
		Message:      sub.Message,
	}
	if data.PhoneDisplay == "" {
		data.PhoneDisplay = PhoneNotProvided
	}

	var b strings.Builder
	if err := bodyTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render contact email: %w", err)
	}
	return b.String(), nil
}

// Subject builds the notification subject line.
func Subject(name, subjectLabel string) string {
	return fmt.Sprintf("Nowa wiadomość od %s - %s", name, subjectLabel)
}

// Compose builds the outgoing message for a validated submission.
func Compose(sub *models.Submission, settings Settings) (platformemail.Message, error) {
	label := models.SubjectLabel(sub.Subject)

	body, err := RenderBody(sub, label)
	if err != nil {
		return platformemail.Message{}, err
	}

	return platformemail.Message{
		From:    settings.From,
		To:      []string{settings.To},
		ReplyTo: sub.Email,
		Subject: Subject(sub.Name, label),
		Body:    body,
	}, nil
}
