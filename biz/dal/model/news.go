package model

import (
	"time"

	"gorm.io/gorm"
)

// NewsArticle is a published or draft news item. Slug and ReadTime are
// derived from the title and content on every save.
type NewsArticle struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Title       string         `gorm:"column:title" json:"title"`
	Slug        string         `gorm:"column:slug;index" json:"slug"`
	Excerpt     string         `gorm:"column:excerpt;type:text" json:"excerpt"`
	Content     string         `gorm:"column:content;type:text" json:"content"`
	CoverImage  string         `gorm:"column:cover_image" json:"cover_image"`
	ReadTime    int            `gorm:"column:read_time" json:"read_time"`
	Published   bool           `gorm:"column:published" json:"published"`
	Featured    bool           `gorm:"column:featured" json:"featured"`
	PublishedAt *time.Time     `gorm:"column:published_at" json:"published_at"`
}

func (NewsArticle) TableName() string { return "news_articles" }
