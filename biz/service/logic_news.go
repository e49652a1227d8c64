package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fkventa/clubsite/biz/dal/model"
	"github.com/fkventa/clubsite/pkg/slug"
	"gorm.io/gorm"
)

// NewsInput is a full article payload. Slug and read time are derived on
// every save, so clients never submit them.
type NewsInput struct {
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	CoverImage  string     `json:"cover_image"`
	Published   bool       `json:"published"`
	Featured    bool       `json:"featured"`
	PublishedAt *time.Time `json:"published_at"`
}

func (in *NewsInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(in.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	return nil
}

// apply copies the input onto an article and recomputes the derived fields.
func (in *NewsInput) apply(article *model.NewsArticle) {
	article.Title = strings.TrimSpace(in.Title)
	article.Excerpt = in.Excerpt
	article.Content = in.Content
	article.CoverImage = in.CoverImage
	article.Published = in.Published
	article.Featured = in.Featured
	article.PublishedAt = in.PublishedAt
	article.Slug = slug.Make(article.Title)
	article.ReadTime = slug.ReadTime(article.Content)
	if article.Published && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}
}

func (l *Logic) CreateArticle(ctx context.Context, in *NewsInput) (*model.NewsArticle, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	article := &model.NewsArticle{}
	in.apply(article)
	if err := l.newsDAO.Create(ctx, l.db, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (l *Logic) UpdateArticle(ctx context.Context, id uint, in *NewsInput) (*model.NewsArticle, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	article, err := l.newsDAO.GetByID(ctx, l.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	in.apply(article)
	if err := l.newsDAO.Update(ctx, l.db, article); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return article, nil
}

func (l *Logic) DeleteArticle(ctx context.Context, id uint) error {
	if err := l.newsDAO.Delete(ctx, l.db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return nil
}

func (l *Logic) GetArticle(ctx context.Context, id uint) (*model.NewsArticle, error) {
	article, err := l.newsDAO.GetByID(ctx, l.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArticleNotFound
	}
	return article, err
}

// GetPublishedArticleBySlug resolves a public article URL. Draft slugs are
// indistinguishable from missing ones.
func (l *Logic) GetPublishedArticleBySlug(ctx context.Context, s string) (*model.NewsArticle, error) {
	article, err := l.newsDAO.GetPublishedBySlug(ctx, l.db, s)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArticleNotFound
	}
	return article, err
}

func (l *Logic) ListArticles(ctx context.Context) ([]model.NewsArticle, error) {
	return l.newsDAO.List(ctx, l.db)
}

func (l *Logic) ListPublishedArticles(ctx context.Context) ([]model.NewsArticle, error) {
	return l.newsDAO.ListPublished(ctx, l.db)
}
