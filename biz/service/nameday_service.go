package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fkventa/clubsite/pkg/nameday"
)

// NamedayToday returns today's celebrated names. Degraded upstream answers
// come back with source "fallback" instead of an error.
func (s *Service) NamedayToday(ctx context.Context) *nameday.Result {
	return s.nameday.Today(ctx)
}

// NamedayForDate returns the names for a specific "2006-01-02" date.
func (s *Service) NamedayForDate(ctx context.Context, date string) (*nameday.Result, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be formatted YYYY-MM-DD", ErrValidation)
	}
	return s.nameday.ForDate(ctx, parsed), nil
}

// NamedayRefresh drops the name-day cache.
func (s *Service) NamedayRefresh() {
	s.nameday.Refresh()
}
