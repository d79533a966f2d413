// Package mailer sends best-effort notification email over SMTP.
package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	mail "github.com/go-mail/mail/v2"
)

// dialer abstracts the SMTP transport so tests can substitute a fake.
// *mail.Dialer satisfies it.
type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// Mailer formats and sends messages through an SMTP dialer.
// Sending is a single attempt; callers own any failure policy.
type Mailer struct {
	dialer dialer
	sender string
}

// New creates a Mailer connected to the given SMTP endpoint.
func New(host string, port int, username, password, sender string) *Mailer {
	return &Mailer{
		dialer: mail.NewDialer(host, port, username, password),
		sender: sender,
	}
}

// newWithDialer is used by tests to inject a fake transport.
func newWithDialer(d dialer, sender string) *Mailer {
	return &Mailer{dialer: d, sender: sender}
}

// Send renders the subject, plainBody and htmlBody blocks of the template
// with the given data and attempts one delivery.
func (m *Mailer) Send(to string, tmpl *template.Template, data any) error {
	var subject bytes.Buffer
	if err := tmpl.ExecuteTemplate(&subject, "subject", data); err != nil {
		return fmt.Errorf("failed to render subject: %w", err)
	}
	var plainBody bytes.Buffer
	if err := tmpl.ExecuteTemplate(&plainBody, "plainBody", data); err != nil {
		return fmt.Errorf("failed to render plain body: %w", err)
	}
	var htmlBody bytes.Buffer
	if err := tmpl.ExecuteTemplate(&htmlBody, "htmlBody", data); err != nil {
		return fmt.Errorf("failed to render html body: %w", err)
	}

	msg := mail.NewMessage()
	msg.SetHeader("To", to)
	msg.SetHeader("From", m.sender)
	msg.SetHeader("Subject", subject.String())
	msg.SetBody("text/plain", plainBody.String())
	msg.AddAlternative("text/html", htmlBody.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
