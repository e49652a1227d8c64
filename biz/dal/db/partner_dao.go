package db

import (
	"context"
	"errors"

	"github.com/fkventa/clubsite/biz/dal/model"
	"gorm.io/gorm"
)

// PartnerDAO wraps CRUD operations for partner entries.
type PartnerDAO struct{}

func NewPartnerDAO() *PartnerDAO { return &PartnerDAO{} }

// Create persists a new partner.
func (dao *PartnerDAO) Create(ctx context.Context, db *gorm.DB, partner *model.Partner) error {
	if partner == nil {
		return errors.New("partner must not be nil")
	}
	return db.WithContext(ctx).Create(partner).Error
}

// Update overwrites an existing partner by ID.
func (dao *PartnerDAO) Update(ctx context.Context, db *gorm.DB, partner *model.Partner) error {
	if partner == nil || partner.ID == 0 {
		return gorm.ErrRecordNotFound
	}
	var existing model.Partner
	if err := db.WithContext(ctx).First(&existing, partner.ID).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Model(&existing).Select("*").
		Omit("id", "created_at").Updates(partner).Error
}

// Delete removes a partner by ID.
func (dao *PartnerDAO) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	var existing model.Partner
	if err := db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&existing).Error
}

// GetByID fetches one partner.
func (dao *PartnerDAO) GetByID(ctx context.Context, db *gorm.DB, id uint) (*model.Partner, error) {
	var partner model.Partner
	if err := db.WithContext(ctx).First(&partner, id).Error; err != nil {
		return nil, err
	}
	return &partner, nil
}

// List returns every partner ordered for display (admin view).
func (dao *PartnerDAO) List(ctx context.Context, db *gorm.DB) ([]model.Partner, error) {
	var partners []model.Partner
	if err := db.WithContext(ctx).
		Order("sort_order ASC, id ASC").
		Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

// ListActive returns only partners shown on the public site.
func (dao *PartnerDAO) ListActive(ctx context.Context, db *gorm.DB) ([]model.Partner, error) {
	var partners []model.Partner
	if err := db.WithContext(ctx).
		Where("active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}
