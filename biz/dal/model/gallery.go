package model

import (
	"time"

	"gorm.io/gorm"
)

// GalleryItem is one photo of the public gallery.
type GalleryItem struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Title     string         `gorm:"column:title" json:"title"`
	ImageURL  string         `gorm:"column:image_url" json:"image_url"`
	Category  string         `gorm:"column:category;index" json:"category"`
	SortOrder int            `gorm:"column:sort_order" json:"sort_order"`
	Active    bool           `gorm:"column:active" json:"active"`
}

func (GalleryItem) TableName() string { return "gallery_items" }
