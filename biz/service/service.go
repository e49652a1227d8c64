package service

import (
	"context"

	"github.com/fkventa/clubsite/biz/dal/model"
	"github.com/fkventa/clubsite/pkg/mailer"
	"github.com/fkventa/clubsite/pkg/nameday"
	"github.com/fkventa/clubsite/pkg/storage"
	"github.com/fkventa/clubsite/pkg/validator"
	"gorm.io/gorm"
)

// Mailer abstracts the SMTP relay so the contact service can be tested
// without a mail server.
type Mailer interface {
	SendContact(ctx context.Context, msg mailer.ContactMessage) error
}

// Service is the facade handlers talk to.
type Service struct {
	logic   *Logic
	storage storage.Storage
	mailer  Mailer
	nameday *nameday.Client
	upload  *validator.UploadConfig
}

// New wires the service with its collaborators. mailer may be nil when no
// SMTP relay is configured; the contact endpoint then reports an error.
func New(db *gorm.DB, store storage.Storage, m Mailer, nd *nameday.Client, upload *validator.UploadConfig) *Service {
	if upload == nil {
		upload = validator.DefaultUploadConfig()
	}
	return &Service{
		logic:   NewLogic(db),
		storage: store,
		mailer:  m,
		nameday: nd,
		upload:  upload,
	}
}

// --------------------- Settings ---------------------

func (s *Service) GetHeroSettings(ctx context.Context) (*model.HeroSettings, error) {
	return s.logic.GetHeroSettings(ctx)
}

func (s *Service) SaveHeroSettings(ctx context.Context, req *HeroSaveRequest) (*model.HeroSettings, error) {
	return s.logic.SaveHeroSettings(ctx, req)
}

func (s *Service) GetTopBarSettings(ctx context.Context) (*model.TopBarSettings, error) {
	return s.logic.GetTopBarSettings(ctx)
}

func (s *Service) SaveTopBarSettings(ctx context.Context, req *TopBarSaveRequest) (*model.TopBarSettings, error) {
	return s.logic.SaveTopBarSettings(ctx, req)
}

func (s *Service) GetNavbar(ctx context.Context) (*NavbarView, error) {
	return s.logic.GetNavbar(ctx)
}

func (s *Service) GetPublicNavbar(ctx context.Context) (*NavbarView, error) {
	return s.logic.GetPublicNavbar(ctx)
}

func (s *Service) SaveNavbar(ctx context.Context, req *NavbarSaveRequest) (*NavbarView, error) {
	return s.logic.SaveNavbar(ctx, req)
}

func (s *Service) GetEventsSettings(ctx context.Context) (*model.EventsSettings, error) {
	return s.logic.GetEventsSettings(ctx)
}

func (s *Service) SaveEventsSettings(ctx context.Context, req *EventsSaveRequest) (*model.EventsSettings, error) {
	return s.logic.SaveEventsSettings(ctx, req)
}

func (s *Service) GetPartnersSettings(ctx context.Context) (*model.PartnersSettings, error) {
	return s.logic.GetPartnersSettings(ctx)
}

func (s *Service) SavePartnersSettings(ctx context.Context, req *PartnersSaveRequest) (*model.PartnersSettings, error) {
	return s.logic.SavePartnersSettings(ctx, req)
}

func (s *Service) GetAboutSettings(ctx context.Context) (*model.AboutSettings, error) {
	return s.logic.GetAboutSettings(ctx)
}

func (s *Service) SaveAboutSettings(ctx context.Context, req *AboutSaveRequest) (*model.AboutSettings, error) {
	return s.logic.SaveAboutSettings(ctx, req)
}

func (s *Service) GetAbout(ctx context.Context) (*AboutView, error) {
	return s.logic.GetAbout(ctx)
}

// --------------------- News ---------------------

func (s *Service) CreateArticle(ctx context.Context, in *NewsInput) (*model.NewsArticle, error) {
	return s.logic.CreateArticle(ctx, in)
}

func (s *Service) UpdateArticle(ctx context.Context, id uint, in *NewsInput) (*model.NewsArticle, error) {
	return s.logic.UpdateArticle(ctx, id, in)
}

func (s *Service) DeleteArticle(ctx context.Context, id uint) error {
	return s.logic.DeleteArticle(ctx, id)
}

func (s *Service) GetArticle(ctx context.Context, id uint) (*model.NewsArticle, error) {
	return s.logic.GetArticle(ctx, id)
}

func (s *Service) GetPublishedArticleBySlug(ctx context.Context, slug string) (*model.NewsArticle, error) {
	return s.logic.GetPublishedArticleBySlug(ctx, slug)
}

func (s *Service) ListArticles(ctx context.Context) ([]model.NewsArticle, error) {
	return s.logic.ListArticles(ctx)
}

func (s *Service) ListPublishedArticles(ctx context.Context) ([]model.NewsArticle, error) {
	return s.logic.ListPublishedArticles(ctx)
}

// --------------------- Gallery ---------------------

func (s *Service) CreateGalleryItem(ctx context.Context, in *GalleryInput) (*model.GalleryItem, error) {
	return s.logic.CreateGalleryItem(ctx, in)
}

func (s *Service) UpdateGalleryItem(ctx context.Context, id uint, in *GalleryInput) (*model.GalleryItem, error) {
	return s.logic.UpdateGalleryItem(ctx, id, in)
}

func (s *Service) DeleteGalleryItem(ctx context.Context, id uint) error {
	return s.logic.DeleteGalleryItem(ctx, id)
}

func (s *Service) ListGalleryItems(ctx context.Context) ([]model.GalleryItem, error) {
	return s.logic.ListGalleryItems(ctx)
}

func (s *Service) ListActiveGalleryItems(ctx context.Context) ([]model.GalleryItem, error) {
	return s.logic.ListActiveGalleryItems(ctx)
}

// --------------------- Calendar ---------------------

func (s *Service) CreateEvent(ctx context.Context, in *CalendarInput) (*model.CalendarEvent, error) {
	return s.logic.CreateEvent(ctx, in)
}

func (s *Service) UpdateEvent(ctx context.Context, id uint, in *CalendarInput) (*model.CalendarEvent, error) {
	return s.logic.UpdateEvent(ctx, id, in)
}

func (s *Service) DeleteEvent(ctx context.Context, id uint) error {
	return s.logic.DeleteEvent(ctx, id)
}

func (s *Service) ListEvents(ctx context.Context) ([]model.CalendarEvent, error) {
	return s.logic.ListEvents(ctx)
}

func (s *Service) ListPublishedEvents(ctx context.Context) ([]model.CalendarEvent, error) {
	return s.logic.ListPublishedEvents(ctx)
}

// --------------------- Partners ---------------------

func (s *Service) CreatePartner(ctx context.Context, in *PartnerInput) (*model.Partner, error) {
	return s.logic.CreatePartner(ctx, in)
}

func (s *Service) UpdatePartner(ctx context.Context, id uint, in *PartnerInput) (*model.Partner, error) {
	return s.logic.UpdatePartner(ctx, id, in)
}

func (s *Service) DeletePartner(ctx context.Context, id uint) error {
	return s.logic.DeletePartner(ctx, id)
}

func (s *Service) ListPartners(ctx context.Context) ([]model.Partner, error) {
	return s.logic.ListPartners(ctx)
}

func (s *Service) ListActivePartners(ctx context.Context) ([]model.Partner, error) {
	return s.logic.ListActivePartners(ctx)
}

// --------------------- About values & stats ---------------------

func (s *Service) CreateAboutValue(ctx context.Context, in *AboutValueInput) (*model.AboutValue, error) {
	return s.logic.CreateAboutValue(ctx, in)
}

func (s *Service) UpdateAboutValue(ctx context.Context, id uint, in *AboutValueInput) (*model.AboutValue, error) {
	return s.logic.UpdateAboutValue(ctx, id, in)
}

func (s *Service) DeleteAboutValue(ctx context.Context, id uint) error {
	return s.logic.DeleteAboutValue(ctx, id)
}

func (s *Service) ListAboutValues(ctx context.Context) ([]model.AboutValue, error) {
	return s.logic.ListAboutValues(ctx)
}

func (s *Service) CreateAboutStat(ctx context.Context, in *AboutStatInput) (*model.AboutStat, error) {
	return s.logic.CreateAboutStat(ctx, in)
}

func (s *Service) UpdateAboutStat(ctx context.Context, id uint, in *AboutStatInput) (*model.AboutStat, error) {
	return s.logic.UpdateAboutStat(ctx, id, in)
}

func (s *Service) DeleteAboutStat(ctx context.Context, id uint) error {
	return s.logic.DeleteAboutStat(ctx, id)
}

func (s *Service) ListAboutStats(ctx context.Context) ([]model.AboutStat, error) {
	return s.logic.ListAboutStats(ctx)
}
