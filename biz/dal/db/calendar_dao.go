package db

import (
	"context"
	"errors"

	"github.com/fkventa/clubsite/biz/dal/model"
	"gorm.io/gorm"
)

// CalendarDAO wraps CRUD operations for calendar events.
type CalendarDAO struct{}

func NewCalendarDAO() *CalendarDAO { return &CalendarDAO{} }

// Create persists a new event.
func (dao *CalendarDAO) Create(ctx context.Context, db *gorm.DB, event *model.CalendarEvent) error {
	if event == nil {
		return errors.New("calendar event must not be nil")
	}
	return db.WithContext(ctx).Create(event).Error
}

// Update overwrites an existing event by ID.
func (dao *CalendarDAO) Update(ctx context.Context, db *gorm.DB, event *model.CalendarEvent) error {
	if event == nil || event.ID == 0 {
		return gorm.ErrRecordNotFound
	}
	var existing model.CalendarEvent
	if err := db.WithContext(ctx).First(&existing, event.ID).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Model(&existing).Select("*").
		Omit("id", "created_at").Updates(event).Error
}

// Delete removes an event by ID.
func (dao *CalendarDAO) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	var existing model.CalendarEvent
	if err := db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&existing).Error
}

// GetByID fetches one event.
func (dao *CalendarDAO) GetByID(ctx context.Context, db *gorm.DB, id uint) (*model.CalendarEvent, error) {
	var event model.CalendarEvent
	if err := db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns every event in chronological order (admin view).
func (dao *CalendarDAO) List(ctx context.Context, db *gorm.DB) ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	if err := db.WithContext(ctx).
		Order("starts_at ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListPublished returns published events in chronological order.
func (dao *CalendarDAO) ListPublished(ctx context.Context, db *gorm.DB) ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	if err := db.WithContext(ctx).
		Where("published = ?", true).
		Order("starts_at ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
