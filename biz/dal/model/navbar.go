package model

import (
	"time"

	"gorm.io/gorm"
)

// NavbarMenuItem is one entry of the navigation menu. The whole list is
// replaced on every navbar save, so IDs are not stable across saves.
type NavbarMenuItem struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Label     string         `gorm:"column:label" json:"label"`
	Href      string         `gorm:"column:href" json:"href"`
	SortOrder int            `gorm:"column:sort_order" json:"sort_order"`
	Visible   bool           `gorm:"column:visible" json:"visible"`
}

func (NavbarMenuItem) TableName() string { return "navbar_menu_items" }
