package model

import (
	"time"

	"gorm.io/gorm"
)

// CalendarEvent is one fixture or club event shown on the calendar page.
type CalendarEvent struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Title     string         `gorm:"column:title" json:"title"`
	StartsAt  time.Time      `gorm:"column:starts_at;index" json:"starts_at"`
	Location  string         `gorm:"column:location" json:"location"`
	Opponent  string         `gorm:"column:opponent" json:"opponent"`
	Home      bool           `gorm:"column:home" json:"home"`
	Result    string         `gorm:"column:result" json:"result"`
	Published bool           `gorm:"column:published" json:"published"`
}

func (CalendarEvent) TableName() string { return "calendar_events" }
