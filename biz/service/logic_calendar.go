package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fkventa/clubsite/biz/dal/model"
	"gorm.io/gorm"
)

// CalendarInput is a full calendar event payload.
type CalendarInput struct {
	Title     string    `json:"title"`
	StartsAt  time.Time `json:"starts_at"`
	Location  string    `json:"location"`
	Opponent  string    `json:"opponent"`
	Home      bool      `json:"home"`
	Result    string    `json:"result"`
	Published bool      `json:"published"`
}

func (in *CalendarInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.StartsAt.IsZero() {
		return fmt.Errorf("%w: starts_at is required", ErrValidation)
	}
	return nil
}

func (in *CalendarInput) apply(event *model.CalendarEvent) {
	event.Title = strings.TrimSpace(in.Title)
	event.StartsAt = in.StartsAt
	event.Location = in.Location
	event.Opponent = in.Opponent
	event.Home = in.Home
	event.Result = in.Result
	event.Published = in.Published
}

func (l *Logic) CreateEvent(ctx context.Context, in *CalendarInput) (*model.CalendarEvent, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	event := &model.CalendarEvent{}
	in.apply(event)
	if err := l.calendarDAO.Create(ctx, l.db, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (l *Logic) UpdateEvent(ctx context.Context, id uint, in *CalendarInput) (*model.CalendarEvent, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	event, err := l.calendarDAO.GetByID(ctx, l.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	in.apply(event)
	if err := l.calendarDAO.Update(ctx, l.db, event); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (l *Logic) DeleteEvent(ctx context.Context, id uint) error {
	if err := l.calendarDAO.Delete(ctx, l.db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	return nil
}

func (l *Logic) ListEvents(ctx context.Context) ([]model.CalendarEvent, error) {
	return l.calendarDAO.List(ctx, l.db)
}

func (l *Logic) ListPublishedEvents(ctx context.Context) ([]model.CalendarEvent, error) {
	return l.calendarDAO.ListPublished(ctx, l.db)
}
