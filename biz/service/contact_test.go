package service

import (
	"context"
	"errors"
	"testing"

	dal "github.com/fkventa/clubsite/biz/dal/db"
	"github.com/fkventa/clubsite/pkg/mailer"
)

type fakeMailer struct {
	sent []mailer.ContactMessage
	err  error
}

func (f *fakeMailer) SendContact(ctx context.Context, msg mailer.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newContactService(t *testing.T, m Mailer) *Service {
	t.Helper()
	db := dal.SetupTestDB(t)
	t.Cleanup(func() { dal.CleanupTestDB(t, db) })
	return New(db, nil, m, nil, nil)
}

func TestSubmitContact(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidSubmission", func(t *testing.T) {
		fm := &fakeMailer{}
		svc := newContactService(t, fm)
		err := svc.SubmitContact(ctx, &ContactInput{
			Name:    "Jānis Bērziņš",
			Email:   "janis@example.lv",
			Subject: "Treniņu laiki",
			Message: "Labdien, kad notiek jauniešu treniņi?",
		})
		if err != nil {
			t.Fatalf("SubmitContact failed: %v", err)
		}
		if len(fm.sent) != 1 {
			t.Fatalf("Expected 1 message handed to the mailer, got %d", len(fm.sent))
		}
		if fm.sent[0].Email != "janis@example.lv" {
			t.Errorf("Expected submitter address to pass through, got %q", fm.sent[0].Email)
		}
	})

	t.Run("MissingName", func(t *testing.T) {
		svc := newContactService(t, &fakeMailer{})
		err := svc.SubmitContact(ctx, &ContactInput{
			Email:   "janis@example.lv",
			Message: "sveiki",
		})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Expected ErrValidation, got %v", err)
		}
	})

	t.Run("MalformedEmail", func(t *testing.T) {
		svc := newContactService(t, &fakeMailer{})
		err := svc.SubmitContact(ctx, &ContactInput{
			Name:    "Jānis",
			Email:   "ne-epasts",
			Message: "sveiki",
		})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Expected ErrValidation, got %v", err)
		}
	})

	t.Run("NoMailerConfigured", func(t *testing.T) {
		svc := newContactService(t, nil)
		err := svc.SubmitContact(ctx, &ContactInput{
			Name:    "Jānis",
			Email:   "janis@example.lv",
			Message: "sveiki",
		})
		if !errors.Is(err, ErrMailerUnavailable) {
			t.Errorf("Expected ErrMailerUnavailable, got %v", err)
		}
	})
}
