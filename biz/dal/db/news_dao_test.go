package db

import (
	"context"
	"errors"
	"testing"

	"github.com/fkventa/clubsite/biz/dal/model"
	"gorm.io/gorm"
)

func TestNewsDAO_CRUD(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewNewsDAO()
	ctx := context.Background()

	t.Run("CreateAndList", func(t *testing.T) {
		article := &model.NewsArticle{
			Title:   "Sezonas atklāšana",
			Slug:    "sezonas-atklasana",
			Content: "Jaunā sezona sākas sestdien.",
		}
		if err := dao.Create(ctx, db, article); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if article.ID == 0 {
			t.Error("Expected ID to be set after creation")
		}

		articles, err := dao.List(ctx, db)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(articles) != 1 {
			t.Fatalf("Expected 1 article, got %d", len(articles))
		}
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		err := dao.Update(ctx, db, &model.NewsArticle{ID: 9999, Title: "x"})
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("Expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		err := dao.Delete(ctx, db, 9999)
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("Expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("DeleteRemovesFromList", func(t *testing.T) {
		articles, err := dao.List(ctx, db)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if err := dao.Delete(ctx, db, articles[0].ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		articles, err = dao.List(ctx, db)
		if err != nil {
			t.Fatalf("List after delete failed: %v", err)
		}
		if len(articles) != 0 {
			t.Fatalf("Expected empty list after delete, got %d", len(articles))
		}
	})
}

func TestNewsDAO_PublishedFilter(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewNewsDAO()
	ctx := context.Background()

	draft := &model.NewsArticle{Title: "Melnraksts", Slug: "melnraksts", Content: "..."}
	published := &model.NewsArticle{Title: "Publicēts", Slug: "publicets", Content: "...", Published: true}
	for _, a := range []*model.NewsArticle{draft, published} {
		if err := dao.Create(ctx, db, a); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	all, err := dao.List(ctx, db)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected admin list to return everything, got %d", len(all))
	}

	public, err := dao.ListPublished(ctx, db)
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	if len(public) != 1 || public[0].Slug != "publicets" {
		t.Fatalf("Expected only the published article, got %v", public)
	}

	found, err := dao.GetBySlug(ctx, db, "publicets")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if found.Title != "Publicēts" {
		t.Errorf("Unexpected article: %q", found.Title)
	}

	if _, err := dao.GetBySlug(ctx, db, "melnraksts"); err != nil {
		t.Errorf("Expected admin slug lookup to see drafts, got %v", err)
	}

	if _, err := dao.GetPublishedBySlug(ctx, db, "melnraksts"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected draft slug to be invisible publicly, got %v", err)
	}
	live, err := dao.GetPublishedBySlug(ctx, db, "publicets")
	if err != nil {
		t.Fatalf("GetPublishedBySlug failed: %v", err)
	}
	if !live.Published {
		t.Errorf("Expected a published article, got %+v", live)
	}
}
