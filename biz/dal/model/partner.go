package model

import (
	"time"

	"gorm.io/gorm"
)

// Partner is one sponsor/partner logo entry.
type Partner struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Name       string         `gorm:"column:name" json:"name"`
	LogoURL    string         `gorm:"column:logo_url" json:"logo_url"`
	WebsiteURL string         `gorm:"column:website_url" json:"website_url"`
	SortOrder  int            `gorm:"column:sort_order" json:"sort_order"`
	Active     bool           `gorm:"column:active" json:"active"`
}

func (Partner) TableName() string { return "partners" }
