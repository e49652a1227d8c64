package service

import (
	"errors"
	"fmt"

	dal "github.com/fkventa/clubsite/biz/dal/db"
	"github.com/fkventa/clubsite/biz/dal/model"
	"gorm.io/gorm"
)

var (
	// ErrValidation marks bad input; handlers map it to 400.
	ErrValidation = errors.New("validation failed")

	ErrArticleNotFound     = errors.New("news article not found")
	ErrGalleryItemNotFound = errors.New("gallery item not found")
	ErrEventNotFound       = errors.New("calendar event not found")
	ErrPartnerNotFound     = errors.New("partner not found")
	ErrAboutValueNotFound  = errors.New("about value not found")
	ErrAboutStatNotFound   = errors.New("about stat not found")
)

// Logic contains business rules on top of data persistence.
type Logic struct {
	db *gorm.DB

	hero     *dal.SettingsDAO[model.HeroSettings]
	topBar   *dal.SettingsDAO[model.TopBarSettings]
	navbar   *dal.SettingsDAO[model.NavbarSettings]
	events   *dal.SettingsDAO[model.EventsSettings]
	partners *dal.SettingsDAO[model.PartnersSettings]
	about    *dal.SettingsDAO[model.AboutSettings]

	menuItemDAO   *dal.MenuItemDAO
	newsDAO       *dal.NewsDAO
	galleryDAO    *dal.GalleryDAO
	calendarDAO   *dal.CalendarDAO
	partnerDAO    *dal.PartnerDAO
	aboutValueDAO *dal.AboutValueDAO
	aboutStatDAO  *dal.AboutStatDAO
}

func NewLogic(dbConn *gorm.DB) *Logic {
	return &Logic{
		db:            dbConn,
		hero:          dal.NewSettingsDAO(model.DefaultHeroSettings),
		topBar:        dal.NewSettingsDAO(model.DefaultTopBarSettings),
		navbar:        dal.NewSettingsDAO(model.DefaultNavbarSettings),
		events:        dal.NewSettingsDAO(model.DefaultEventsSettings),
		partners:      dal.NewSettingsDAO(model.DefaultPartnersSettings),
		about:         dal.NewSettingsDAO(model.DefaultAboutSettings),
		menuItemDAO:   dal.NewMenuItemDAO(),
		newsDAO:       dal.NewNewsDAO(),
		galleryDAO:    dal.NewGalleryDAO(),
		calendarDAO:   dal.NewCalendarDAO(),
		partnerDAO:    dal.NewPartnerDAO(),
		aboutValueDAO: dal.NewAboutValueDAO(),
		aboutStatDAO:  dal.NewAboutStatDAO(),
	}
}

// setIf stages a column update when the request carried the field.
func setIf[T any](updates map[string]any, column string, value *T) {
	if value != nil {
		updates[column] = *value
	}
}

// applyClears stages zero-value updates for the fields named in clears.
// clearable maps a request field name onto its column and cleared value;
// naming a field outside the map is a validation error, so a typo cannot
// silently no-op.
func applyClears(updates map[string]any, clears []string, clearable map[string]clearSpec) error {
	for _, name := range clears {
		spec, ok := clearable[name]
		if !ok {
			return fmt.Errorf("%w: field cannot be cleared: %s", ErrValidation, name)
		}
		updates[spec.column] = spec.zero
	}
	return nil
}

type clearSpec struct {
	column string
	zero   any
}
