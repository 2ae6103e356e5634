// Package mailer delivers exported match reports over authenticated SMTP.
package mailer

import (
	"context"
	"fmt"
	"log"

	mail "github.com/wneessen/go-mail"

	"github.com/verdant/green-matcher/internal/config"
)

// defaultBody is used when the caller supplies no body text.
const defaultBody = "Attached is your matched project report."

// Mailer sends report emails. Each send is a single blocking attempt; a
// failure surfaces to the caller and the already-written PDF is left in
// place.
type Mailer struct {
	cfg config.SMTP
}

// New creates a Mailer from SMTP settings.
func New(cfg config.SMTP) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendReport emails the report PDF to one recipient. The subject is templated
// with the investor's display name.
func (m *Mailer) SendReport(ctx context.Context, recipient, investorName, body, pdfPath string) error {
	if body == "" {
		body = defaultBody
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", m.cfg.From, err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", recipient, err)
	}
	msg.Subject(fmt.Sprintf("%s – Project Matches", investorName))
	msg.SetBodyString(mail.TypeTextPlain, body)
	msg.AttachFile(pdfPath)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send report to %s: %w", recipient, err)
	}

	log.Printf("[MAIL] sent %s report to %s", investorName, recipient)
	return nil
}
