package model

import "time"

// SettingsRowID is the fixed primary key shared by every settings table.
// Each table holds exactly one row; the unique key (not query ordering)
// enforces the singleton.
const SettingsRowID uint = 1

// HeroSettings configures the landing hero section.
type HeroSettings struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	Title           string     `gorm:"column:title" json:"title"`
	Subtitle        string     `gorm:"column:subtitle" json:"subtitle"`
	CountdownDate   *time.Time `gorm:"column:countdown_date" json:"countdown_date"`
	BackgroundImage string     `gorm:"column:background_image" json:"background_image"`
	UsePatternBg    bool       `gorm:"column:use_pattern_bg" json:"use_pattern_bg"`
}

func (HeroSettings) TableName() string { return "hero_settings" }

// DefaultHeroSettings returns the row materialized on first read.
func DefaultHeroSettings() *HeroSettings {
	return &HeroSettings{
		ID:           SettingsRowID,
		Title:        "FK Venta",
		Subtitle:     "Futbols Ventspilī kopš 1997. gada",
		UsePatternBg: true,
	}
}

// TopBarSettings configures the contact strip above the navigation.
type TopBarSettings struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Phone        string    `gorm:"column:phone" json:"phone"`
	Email        string    `gorm:"column:email" json:"email"`
	FacebookURL  string    `gorm:"column:facebook_url" json:"facebook_url"`
	InstagramURL string    `gorm:"column:instagram_url" json:"instagram_url"`
	YoutubeURL   string    `gorm:"column:youtube_url" json:"youtube_url"`
	ShowSocial   bool      `gorm:"column:show_social" json:"show_social"`
}

func (TopBarSettings) TableName() string { return "topbar_settings" }

func DefaultTopBarSettings() *TopBarSettings {
	return &TopBarSettings{
		ID:         SettingsRowID,
		Email:      "info@fkventa.lv",
		ShowSocial: true,
	}
}

// NavbarSettings configures the logo block of the navigation bar. The menu
// items themselves live in navbar_menu_items and are saved together with
// this row through the replace-all path.
type NavbarSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LogoURL   string    `gorm:"column:logo_url" json:"logo_url"`
	LogoText  string    `gorm:"column:logo_text" json:"logo_text"`
}

func (NavbarSettings) TableName() string { return "navbar_settings" }

func DefaultNavbarSettings() *NavbarSettings {
	return &NavbarSettings{
		ID:       SettingsRowID,
		LogoText: "FK Venta",
	}
}

// EventsSettings configures the events/calendar section heading.
type EventsSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Title     string    `gorm:"column:title" json:"title"`
	Subtitle  string    `gorm:"column:subtitle" json:"subtitle"`
	ShowPast  bool      `gorm:"column:show_past" json:"show_past"`
}

func (EventsSettings) TableName() string { return "events_settings" }

func DefaultEventsSettings() *EventsSettings {
	return &EventsSettings{
		ID:       SettingsRowID,
		Title:    "Spēļu kalendārs",
		Subtitle: "Nāc atbalstīt komandu!",
	}
}

// PartnersSettings configures the partners section heading.
type PartnersSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Title     string    `gorm:"column:title" json:"title"`
	Subtitle  string    `gorm:"column:subtitle" json:"subtitle"`
}

func (PartnersSettings) TableName() string { return "partners_settings" }

func DefaultPartnersSettings() *PartnersSettings {
	return &PartnersSettings{
		ID:    SettingsRowID,
		Title: "Mūsu atbalstītāji",
	}
}

// AboutSettings configures the about section copy. Its value and stat lists
// live in about_values / about_stats.
type AboutSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Title     string    `gorm:"column:title" json:"title"`
	Story     string    `gorm:"column:story;type:text" json:"story"`
	ImageURL  string    `gorm:"column:image_url" json:"image_url"`
}

func (AboutSettings) TableName() string { return "about_settings" }

func DefaultAboutSettings() *AboutSettings {
	return &AboutSettings{
		ID:    SettingsRowID,
		Title: "Par klubu",
		Story: "FK Venta ir Ventspils futbola klubs, kas audzina spēlētājus no pirmajiem soļiem līdz pieaugušo komandai.",
	}
}
