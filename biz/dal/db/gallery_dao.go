package db

import (
	"context"
	"errors"

	"github.com/fkventa/clubsite/biz/dal/model"
	"gorm.io/gorm"
)

// GalleryDAO wraps CRUD operations for gallery items.
type GalleryDAO struct{}

func NewGalleryDAO() *GalleryDAO { return &GalleryDAO{} }

// Create persists a new gallery item.
func (dao *GalleryDAO) Create(ctx context.Context, db *gorm.DB, item *model.GalleryItem) error {
	if item == nil {
		return errors.New("gallery item must not be nil")
	}
	return db.WithContext(ctx).Create(item).Error
}

// Update overwrites an existing item by ID.
func (dao *GalleryDAO) Update(ctx context.Context, db *gorm.DB, item *model.GalleryItem) error {
	if item == nil || item.ID == 0 {
		return gorm.ErrRecordNotFound
	}
	var existing model.GalleryItem
	if err := db.WithContext(ctx).First(&existing, item.ID).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Model(&existing).Select("*").
		Omit("id", "created_at").Updates(item).Error
}

// Delete removes an item by ID.
func (dao *GalleryDAO) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	var existing model.GalleryItem
	if err := db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&existing).Error
}

// GetByID fetches one item.
func (dao *GalleryDAO) GetByID(ctx context.Context, db *gorm.DB, id uint) (*model.GalleryItem, error) {
	var item model.GalleryItem
	if err := db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns every item ordered for display (admin view).
func (dao *GalleryDAO) List(ctx context.Context, db *gorm.DB) ([]model.GalleryItem, error) {
	var items []model.GalleryItem
	if err := db.WithContext(ctx).
		Order("sort_order ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListActive returns only items shown on the public site.
func (dao *GalleryDAO) ListActive(ctx context.Context, db *gorm.DB) ([]model.GalleryItem, error) {
	var items []model.GalleryItem
	if err := db.WithContext(ctx).
		Where("active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
