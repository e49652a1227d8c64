package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/fkventa/clubsite/pkg/mailer"
)

// ErrMailerUnavailable is returned when no SMTP relay is configured.
var ErrMailerUnavailable = errors.New("mail relay not configured")

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactInput is a contact-form submission.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (in *ContactInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(in.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	if !emailRegexp.MatchString(strings.TrimSpace(in.Email)) {
		return fmt.Errorf("%w: a valid email address is required", ErrValidation)
	}
	return nil
}

// SubmitContact validates the submission and fans out the admin
// notification plus the submitter confirmation. Delivery is one-shot; a
// relay failure surfaces to the caller with nothing retried.
func (s *Service) SubmitContact(ctx context.Context, in *ContactInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	if s.mailer == nil {
		return ErrMailerUnavailable
	}
	return s.mailer.SendContact(ctx, mailer.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
	})
}
