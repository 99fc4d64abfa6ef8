package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
)

// EmailData fills the account email templates under templates/.
type EmailData struct {
	Name            string
	Message         string
	VerificationURL string
	LogoURL         string
}

// SendEmail renders the given HTML template and delivers it over SMTP using
// the FROM_EMAIL, FROM_EMAIL_PASSWORD, FROM_EMAIL_SMTP and SMTP_ADDRESS
// environment variables.
func SendEmail(recipient string, subject string, data EmailData, templatePath string) error {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	from := os.Getenv("FROM_EMAIL")
	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		from,
		subject,
		body.String(),
	)

	auth := smtp.PlainAuth(
		"",
		from,
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("FROM_EMAIL_SMTP"),
	)

	if err := smtp.SendMail(os.Getenv("SMTP_ADDRESS"), auth, from, []string{recipient}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
