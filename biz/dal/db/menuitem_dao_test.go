package db

import (
	"context"
	"testing"

	"github.com/fkventa/clubsite/biz/dal/model"
)

func TestMenuItemDAO_ReplaceAll(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewMenuItemDAO()
	ctx := context.Background()

	five := []model.NavbarMenuItem{
		{Label: "Sākums", Href: "/", Visible: true},
		{Label: "Jaunumi", Href: "/jaunumi", Visible: true},
		{Label: "Galerija", Href: "/galerija", Visible: true},
		{Label: "Kalendārs", Href: "/kalendars", Visible: true},
		{Label: "Kontakti", Href: "/kontakti", Visible: true},
	}
	saved, err := dao.ReplaceAll(ctx, db, five)
	if err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	if len(saved) != 5 {
		t.Fatalf("Expected 5 items, got %d", len(saved))
	}
	oldIDs := make(map[uint]bool)
	for _, item := range saved {
		if item.ID == 0 {
			t.Error("Expected ID to be assigned")
		}
		oldIDs[item.ID] = true
	}

	three := []model.NavbarMenuItem{
		{Label: "Sākums", Href: "/", Visible: true},
		{Label: "Jaunumi", Href: "/jaunumi", Visible: true},
		{Label: "Kontakti", Href: "/kontakti", Visible: false},
	}
	saved, err = dao.ReplaceAll(ctx, db, three)
	if err != nil {
		t.Fatalf("Second ReplaceAll failed: %v", err)
	}
	if len(saved) != 3 {
		t.Fatalf("Expected 3 items after replace, got %d", len(saved))
	}
	for _, item := range saved {
		if oldIDs[item.ID] {
			t.Errorf("Item %q kept a stale ID %d across a save", item.Label, item.ID)
		}
	}

	listed, err := dao.List(ctx, db)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("Expected exactly 3 stored items, got %d", len(listed))
	}
	for i, item := range listed {
		if item.SortOrder != i {
			t.Errorf("Expected sort_order %d at position %d, got %d", i, i, item.SortOrder)
		}
	}

	visible, err := dao.ListVisible(ctx, db)
	if err != nil {
		t.Fatalf("ListVisible failed: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("Expected 2 visible items, got %d", len(visible))
	}
}

func TestMenuItemDAO_ReplaceAllWithEmptyList(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewMenuItemDAO()
	ctx := context.Background()

	if _, err := dao.ReplaceAll(ctx, db, []model.NavbarMenuItem{{Label: "Sākums", Href: "/"}}); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	if _, err := dao.ReplaceAll(ctx, db, nil); err != nil {
		t.Fatalf("ReplaceAll with empty list failed: %v", err)
	}

	listed, err := dao.List(ctx, db)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("Expected empty menu, got %d items", len(listed))
	}
}
