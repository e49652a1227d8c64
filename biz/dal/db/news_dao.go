package db

import (
	"context"
	"errors"

	"github.com/fkventa/clubsite/biz/dal/model"
	"gorm.io/gorm"
)

// NewsDAO wraps CRUD operations for news articles.
type NewsDAO struct{}

func NewNewsDAO() *NewsDAO { return &NewsDAO{} }

// Create persists a new article.
func (dao *NewsDAO) Create(ctx context.Context, db *gorm.DB, article *model.NewsArticle) error {
	if article == nil {
		return errors.New("news article must not be nil")
	}
	return db.WithContext(ctx).Create(article).Error
}

// Update overwrites an existing article by ID.
func (dao *NewsDAO) Update(ctx context.Context, db *gorm.DB, article *model.NewsArticle) error {
	if article == nil || article.ID == 0 {
		return gorm.ErrRecordNotFound
	}
	var existing model.NewsArticle
	if err := db.WithContext(ctx).First(&existing, article.ID).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Model(&existing).Select("*").
		Omit("id", "created_at").Updates(article).Error
}

// Delete removes an article by ID.
func (dao *NewsDAO) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	var existing model.NewsArticle
	if err := db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&existing).Error
}

// GetByID fetches one article.
func (dao *NewsDAO) GetByID(ctx context.Context, db *gorm.DB, id uint) (*model.NewsArticle, error) {
	var article model.NewsArticle
	if err := db.WithContext(ctx).First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// GetBySlug fetches one article by its slug, drafts included (admin view).
func (dao *NewsDAO) GetBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.NewsArticle, error) {
	var article model.NewsArticle
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// GetPublishedBySlug fetches one published article by its slug. Drafts come
// back as ErrRecordNotFound, so the public site cannot address them.
func (dao *NewsDAO) GetPublishedBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.NewsArticle, error) {
	var article model.NewsArticle
	if err := db.WithContext(ctx).
		Where("slug = ? AND published = ?", slug, true).
		First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// List returns every article, newest first (admin view).
func (dao *NewsDAO) List(ctx context.Context, db *gorm.DB) ([]model.NewsArticle, error) {
	var articles []model.NewsArticle
	if err := db.WithContext(ctx).
		Order("created_at DESC").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// ListPublished returns published articles, newest publication first.
func (dao *NewsDAO) ListPublished(ctx context.Context, db *gorm.DB) ([]model.NewsArticle, error) {
	var articles []model.NewsArticle
	if err := db.WithContext(ctx).
		Where("published = ?", true).
		Order("published_at DESC").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}
