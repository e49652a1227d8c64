package model

import (
	"time"

	"gorm.io/gorm"
)

// Icon identifiers the frontend knows how to render. Unknown values coming
// from older clients are normalized to DefaultStatIcon instead of being
// stored verbatim and rendering nothing.
const (
	IconTrophy   = "trophy"
	IconUsers    = "users"
	IconCalendar = "calendar"
	IconStar     = "star"
	IconHeart    = "heart"
	IconTarget   = "target"

	DefaultStatIcon = IconStar
)

var validIcons = map[string]bool{
	IconTrophy:   true,
	IconUsers:    true,
	IconCalendar: true,
	IconStar:     true,
	IconHeart:    true,
	IconTarget:   true,
}

// NormalizeIcon maps an arbitrary icon key onto the closed icon set.
func NormalizeIcon(icon string) string {
	if validIcons[icon] {
		return icon
	}
	return DefaultStatIcon
}

// Gradient color variants for stat cards.
const (
	ColorGold  = "gold"
	ColorBlue  = "blue"
	ColorGreen = "green"
	ColorRed   = "red"

	DefaultStatColor = ColorBlue
)

var validColors = map[string]bool{
	ColorGold:  true,
	ColorBlue:  true,
	ColorGreen: true,
	ColorRed:   true,
}

// NormalizeColor maps an arbitrary color key onto the closed color set.
func NormalizeColor(color string) string {
	if validColors[color] {
		return color
	}
	return DefaultStatColor
}

// AboutValue is one of the club values listed in the about section.
type AboutValue struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Title     string         `gorm:"column:title" json:"title"`
	Text      string         `gorm:"column:text;type:text" json:"text"`
	Icon      string         `gorm:"column:icon" json:"icon"`
	SortOrder int            `gorm:"column:sort_order" json:"sort_order"`
}

func (AboutValue) TableName() string { return "about_values" }

// AboutStat is one numeric stat card in the about section.
type AboutStat struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Label     string         `gorm:"column:label" json:"label"`
	Value     string         `gorm:"column:value" json:"value"`
	Icon      string         `gorm:"column:icon" json:"icon"`
	Color     string         `gorm:"column:color" json:"color"`
	SortOrder int            `gorm:"column:sort_order" json:"sort_order"`
}

func (AboutStat) TableName() string { return "about_stats" }
