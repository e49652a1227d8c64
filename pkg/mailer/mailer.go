// Package mailer delivers contact-form mail through the configured SMTP relay.
package mailer

import (
	"context"
	"fmt"

	"github.com/fkventa/clubsite/pkg/config"
	"github.com/wneessen/go-mail"
)

// ContactMessage carries a validated contact-form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Mailer sends transactional mail via SMTP.
type Mailer struct {
	cfg    config.SMTPConfig
	client *mail.Client
}

// New creates a Mailer from SMTP configuration.
func New(cfg config.SMTPConfig) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host must be configured")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("smtp from address must be configured")
	}
	if len(cfg.AdminRecipients) == 0 {
		return nil, fmt.Errorf("at least one admin recipient must be configured")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &Mailer{cfg: cfg, client: client}, nil
}

// SendContact delivers the administrator notification and the submitter
// confirmation in a single SMTP session. A failure on either message fails
// the whole call; nothing is retried.
func (m *Mailer) SendContact(ctx context.Context, msg ContactMessage) error {
	subject := msg.Subject
	if subject == "" {
		subject = "Jauna ziņa no mājaslapas"
	}

	notify := mail.NewMsg()
	if err := notify.From(m.cfg.From); err != nil {
		return fmt.Errorf("notification from: %w", err)
	}
	if err := notify.To(m.cfg.AdminRecipients...); err != nil {
		return fmt.Errorf("notification to: %w", err)
	}
	if err := notify.ReplyTo(msg.Email); err != nil {
		return fmt.Errorf("notification reply-to: %w", err)
	}
	notify.Subject(fmt.Sprintf("[Kontaktforma] %s", subject))
	notify.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Sūtītājs: %s <%s>\n\n%s\n", msg.Name, msg.Email, msg.Message))

	confirm := mail.NewMsg()
	if err := confirm.From(m.cfg.From); err != nil {
		return fmt.Errorf("confirmation from: %w", err)
	}
	if err := confirm.To(msg.Email); err != nil {
		return fmt.Errorf("confirmation to: %w", err)
	}
	confirm.Subject("Paldies, ziņa saņemta")
	confirm.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Sveiki, %s!\n\nPaldies par ziņu. Atbildēsim, cik drīz vien iespējams.\n\nFK Venta\n", msg.Name))

	if err := m.client.DialAndSendWithContext(ctx, notify, confirm); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}
