package db

import (
	"context"
	"testing"

	"github.com/fkventa/clubsite/biz/dal/model"
)

func TestSettingsDAO_GetMaterializesDefaultOnce(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewSettingsDAO(model.DefaultHeroSettings)
	ctx := context.Background()

	first, err := dao.Get(ctx, db)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if first.ID != model.SettingsRowID {
		t.Errorf("Expected singleton ID %d, got %d", model.SettingsRowID, first.ID)
	}
	if first.Title == "" {
		t.Error("Expected default title to be set")
	}

	second, err := dao.Get(ctx, db)
	if err != nil {
		t.Fatalf("Second Get failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("Second Get returned a different row: %d vs %d", second.ID, first.ID)
	}

	var count int64
	if err := db.Model(&model.HeroSettings{}).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 settings row, got %d", count)
	}
}

func TestSettingsDAO_SavePartialUpdate(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewSettingsDAO(model.DefaultHeroSettings)
	ctx := context.Background()

	original, err := dao.Get(ctx, db)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	updated, err := dao.Save(ctx, db, map[string]any{"title": "Jaunā sezona"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if updated.Title != "Jaunā sezona" {
		t.Errorf("Expected updated title, got %q", updated.Title)
	}
	if updated.Subtitle != original.Subtitle {
		t.Errorf("Expected subtitle to be untouched, got %q", updated.Subtitle)
	}
	if updated.UsePatternBg != original.UsePatternBg {
		t.Error("Expected use_pattern_bg to be untouched")
	}

	fetched, err := dao.Get(ctx, db)
	if err != nil {
		t.Fatalf("Get after save failed: %v", err)
	}
	if fetched.Title != "Jaunā sezona" {
		t.Errorf("Expected persisted title, got %q", fetched.Title)
	}
}

func TestSettingsDAO_SaveOnEmptyStoreCreatesRow(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewSettingsDAO(model.DefaultTopBarSettings)
	ctx := context.Background()

	row, err := dao.Save(ctx, db, map[string]any{"phone": "+371 20000000"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if row.ID != model.SettingsRowID {
		t.Errorf("Expected singleton ID, got %d", row.ID)
	}
	if row.Phone != "+371 20000000" {
		t.Errorf("Expected phone to be set, got %q", row.Phone)
	}
	if row.Email == "" {
		t.Error("Expected omitted fields to carry defaults")
	}

	var count int64
	if err := db.Model(&model.TopBarSettings{}).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 settings row, got %d", count)
	}
}

func TestSettingsDAO_SaveClearsField(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewSettingsDAO(model.DefaultTopBarSettings)
	ctx := context.Background()

	if _, err := dao.Save(ctx, db, map[string]any{"email": "x@fkventa.lv"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	row, err := dao.Save(ctx, db, map[string]any{"email": ""})
	if err != nil {
		t.Fatalf("Clearing save failed: %v", err)
	}
	if row.Email != "" {
		t.Errorf("Expected cleared email, got %q", row.Email)
	}
}
