package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fkventa/clubsite/biz/dal/model"
	"gorm.io/gorm"
)

// GalleryInput is a full gallery item payload.
type GalleryInput struct {
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`
	Category  string `json:"category"`
	SortOrder int    `json:"sort_order"`
	Active    bool   `json:"active"`
}

func (in *GalleryInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		return fmt.Errorf("%w: image_url is required", ErrValidation)
	}
	return nil
}

func (in *GalleryInput) apply(item *model.GalleryItem) {
	item.Title = strings.TrimSpace(in.Title)
	item.ImageURL = strings.TrimSpace(in.ImageURL)
	item.Category = in.Category
	item.SortOrder = in.SortOrder
	item.Active = in.Active
}

func (l *Logic) CreateGalleryItem(ctx context.Context, in *GalleryInput) (*model.GalleryItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	item := &model.GalleryItem{}
	in.apply(item)
	if err := l.galleryDAO.Create(ctx, l.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (l *Logic) UpdateGalleryItem(ctx context.Context, id uint, in *GalleryInput) (*model.GalleryItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	existing, err := l.galleryDAO.GetByID(ctx, l.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, err
	}
	in.apply(existing)
	if err := l.galleryDAO.Update(ctx, l.db, existing); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (l *Logic) DeleteGalleryItem(ctx context.Context, id uint) error {
	if err := l.galleryDAO.Delete(ctx, l.db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGalleryItemNotFound
		}
		return err
	}
	return nil
}

func (l *Logic) ListGalleryItems(ctx context.Context) ([]model.GalleryItem, error) {
	return l.galleryDAO.List(ctx, l.db)
}

func (l *Logic) ListActiveGalleryItems(ctx context.Context) ([]model.GalleryItem, error) {
	return l.galleryDAO.ListActive(ctx, l.db)
}
