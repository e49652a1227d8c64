package db

import (
	"context"
	"errors"

	"github.com/fkventa/clubsite/biz/dal/model"
	"gorm.io/gorm"
)

// AboutValueDAO wraps CRUD operations for about-section values.
type AboutValueDAO struct{}

func NewAboutValueDAO() *AboutValueDAO { return &AboutValueDAO{} }

func (dao *AboutValueDAO) Create(ctx context.Context, db *gorm.DB, value *model.AboutValue) error {
	if value == nil {
		return errors.New("about value must not be nil")
	}
	return db.WithContext(ctx).Create(value).Error
}

func (dao *AboutValueDAO) Update(ctx context.Context, db *gorm.DB, value *model.AboutValue) error {
	if value == nil || value.ID == 0 {
		return gorm.ErrRecordNotFound
	}
	var existing model.AboutValue
	if err := db.WithContext(ctx).First(&existing, value.ID).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Model(&existing).Select("*").
		Omit("id", "created_at").Updates(value).Error
}

func (dao *AboutValueDAO) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	var existing model.AboutValue
	if err := db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&existing).Error
}

func (dao *AboutValueDAO) GetByID(ctx context.Context, db *gorm.DB, id uint) (*model.AboutValue, error) {
	var value model.AboutValue
	if err := db.WithContext(ctx).First(&value, id).Error; err != nil {
		return nil, err
	}
	return &value, nil
}

func (dao *AboutValueDAO) List(ctx context.Context, db *gorm.DB) ([]model.AboutValue, error) {
	var values []model.AboutValue
	if err := db.WithContext(ctx).
		Order("sort_order ASC, id ASC").
		Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// AboutStatDAO wraps CRUD operations for about-section stat cards.
type AboutStatDAO struct{}

func NewAboutStatDAO() *AboutStatDAO { return &AboutStatDAO{} }

func (dao *AboutStatDAO) Create(ctx context.Context, db *gorm.DB, stat *model.AboutStat) error {
	if stat == nil {
		return errors.New("about stat must not be nil")
	}
	return db.WithContext(ctx).Create(stat).Error
}

func (dao *AboutStatDAO) Update(ctx context.Context, db *gorm.DB, stat *model.AboutStat) error {
	if stat == nil || stat.ID == 0 {
		return gorm.ErrRecordNotFound
	}
	var existing model.AboutStat
	if err := db.WithContext(ctx).First(&existing, stat.ID).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Model(&existing).Select("*").
		Omit("id", "created_at").Updates(stat).Error
}

func (dao *AboutStatDAO) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	var existing model.AboutStat
	if err := db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&existing).Error
}

func (dao *AboutStatDAO) GetByID(ctx context.Context, db *gorm.DB, id uint) (*model.AboutStat, error) {
	var stat model.AboutStat
	if err := db.WithContext(ctx).First(&stat, id).Error; err != nil {
		return nil, err
	}
	return &stat, nil
}

func (dao *AboutStatDAO) List(ctx context.Context, db *gorm.DB) ([]model.AboutStat, error) {
	var stats []model.AboutStat
	if err := db.WithContext(ctx).
		Order("sort_order ASC, id ASC").
		Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
