package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fkventa/clubsite/biz/dal/model"
)

// Settings save requests use pointer fields: nil means "leave the stored
// value unchanged". Resetting a field to its zero value goes through the
// explicit Clear list instead of a JSON null, so the clear-vs-omit
// distinction never depends on decoder behavior.

// HeroSaveRequest updates the hero section.
type HeroSaveRequest struct {
	Title           *string    `json:"title"`
	Subtitle        *string    `json:"subtitle"`
	CountdownDate   *time.Time `json:"countdown_date"`
	BackgroundImage *string    `json:"background_image"`
	UsePatternBg    *bool      `json:"use_pattern_bg"`
	Clear           []string   `json:"clear,omitempty"`
}

var heroClearable = map[string]clearSpec{
	"subtitle":         {column: "subtitle", zero: ""},
	"countdown_date":   {column: "countdown_date", zero: nil},
	"background_image": {column: "background_image", zero: ""},
}

func (l *Logic) GetHeroSettings(ctx context.Context) (*model.HeroSettings, error) {
	return l.hero.Get(ctx, l.db)
}

func (l *Logic) SaveHeroSettings(ctx context.Context, req *HeroSaveRequest) (*model.HeroSettings, error) {
	updates := map[string]any{}
	setIf(updates, "title", req.Title)
	setIf(updates, "subtitle", req.Subtitle)
	setIf(updates, "countdown_date", req.CountdownDate)
	setIf(updates, "background_image", req.BackgroundImage)
	setIf(updates, "use_pattern_bg", req.UsePatternBg)
	if err := applyClears(updates, req.Clear, heroClearable); err != nil {
		return nil, err
	}
	// The hero title is required; it is absent from heroClearable, and an
	// explicit empty value is rejected before anything is written.
	if v, ok := updates["title"]; ok {
		if s, _ := v.(string); strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("%w: title is required", ErrValidation)
		}
	}
	return l.hero.Save(ctx, l.db, updates)
}

// TopBarSaveRequest updates the contact strip.
type TopBarSaveRequest struct {
	Phone        *string  `json:"phone"`
	Email        *string  `json:"email"`
	FacebookURL  *string  `json:"facebook_url"`
	InstagramURL *string  `json:"instagram_url"`
	YoutubeURL   *string  `json:"youtube_url"`
	ShowSocial   *bool    `json:"show_social"`
	Clear        []string `json:"clear,omitempty"`
}

var topBarClearable = map[string]clearSpec{
	"phone":         {column: "phone", zero: ""},
	"email":         {column: "email", zero: ""},
	"facebook_url":  {column: "facebook_url", zero: ""},
	"instagram_url": {column: "instagram_url", zero: ""},
	"youtube_url":   {column: "youtube_url", zero: ""},
}

func (l *Logic) GetTopBarSettings(ctx context.Context) (*model.TopBarSettings, error) {
	return l.topBar.Get(ctx, l.db)
}

func (l *Logic) SaveTopBarSettings(ctx context.Context, req *TopBarSaveRequest) (*model.TopBarSettings, error) {
	updates := map[string]any{}
	setIf(updates, "phone", req.Phone)
	setIf(updates, "email", req.Email)
	setIf(updates, "facebook_url", req.FacebookURL)
	setIf(updates, "instagram_url", req.InstagramURL)
	setIf(updates, "youtube_url", req.YoutubeURL)
	setIf(updates, "show_social", req.ShowSocial)
	if err := applyClears(updates, req.Clear, topBarClearable); err != nil {
		return nil, err
	}
	return l.topBar.Save(ctx, l.db, updates)
}

// EventsSaveRequest updates the events section heading.
type EventsSaveRequest struct {
	Title    *string  `json:"title"`
	Subtitle *string  `json:"subtitle"`
	ShowPast *bool    `json:"show_past"`
	Clear    []string `json:"clear,omitempty"`
}

var eventsClearable = map[string]clearSpec{
	"title":    {column: "title", zero: ""},
	"subtitle": {column: "subtitle", zero: ""},
}

func (l *Logic) GetEventsSettings(ctx context.Context) (*model.EventsSettings, error) {
	return l.events.Get(ctx, l.db)
}

func (l *Logic) SaveEventsSettings(ctx context.Context, req *EventsSaveRequest) (*model.EventsSettings, error) {
	updates := map[string]any{}
	setIf(updates, "title", req.Title)
	setIf(updates, "subtitle", req.Subtitle)
	setIf(updates, "show_past", req.ShowPast)
	if err := applyClears(updates, req.Clear, eventsClearable); err != nil {
		return nil, err
	}
	return l.events.Save(ctx, l.db, updates)
}

// PartnersSaveRequest updates the partners section heading.
type PartnersSaveRequest struct {
	Title    *string  `json:"title"`
	Subtitle *string  `json:"subtitle"`
	Clear    []string `json:"clear,omitempty"`
}

var partnersClearable = map[string]clearSpec{
	"title":    {column: "title", zero: ""},
	"subtitle": {column: "subtitle", zero: ""},
}

func (l *Logic) GetPartnersSettings(ctx context.Context) (*model.PartnersSettings, error) {
	return l.partners.Get(ctx, l.db)
}

func (l *Logic) SavePartnersSettings(ctx context.Context, req *PartnersSaveRequest) (*model.PartnersSettings, error) {
	updates := map[string]any{}
	setIf(updates, "title", req.Title)
	setIf(updates, "subtitle", req.Subtitle)
	if err := applyClears(updates, req.Clear, partnersClearable); err != nil {
		return nil, err
	}
	return l.partners.Save(ctx, l.db, updates)
}

// AboutSaveRequest updates the about section copy.
type AboutSaveRequest struct {
	Title    *string  `json:"title"`
	Story    *string  `json:"story"`
	ImageURL *string  `json:"image_url"`
	Clear    []string `json:"clear,omitempty"`
}

var aboutClearable = map[string]clearSpec{
	"story":     {column: "story", zero: ""},
	"image_url": {column: "image_url", zero: ""},
}

func (l *Logic) GetAboutSettings(ctx context.Context) (*model.AboutSettings, error) {
	return l.about.Get(ctx, l.db)
}

func (l *Logic) SaveAboutSettings(ctx context.Context, req *AboutSaveRequest) (*model.AboutSettings, error) {
	updates := map[string]any{}
	setIf(updates, "title", req.Title)
	setIf(updates, "story", req.Story)
	setIf(updates, "image_url", req.ImageURL)
	if err := applyClears(updates, req.Clear, aboutClearable); err != nil {
		return nil, err
	}
	return l.about.Save(ctx, l.db, updates)
}
