package db

import (
	"testing"

	"github.com/fkventa/clubsite/biz/dal/model"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Reduce log noise in tests
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate all tables
	if err := db.AutoMigrate(
		&model.HeroSettings{},
		&model.TopBarSettings{},
		&model.NavbarSettings{},
		&model.EventsSettings{},
		&model.PartnersSettings{},
		&model.AboutSettings{},
		&model.NavbarMenuItem{},
		&model.GalleryItem{},
		&model.CalendarEvent{},
		&model.NewsArticle{},
		&model.Partner{},
		&model.AboutValue{},
		&model.AboutStat{},
	); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	return db
}

// CleanupTestDB closes the database connection
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Logf("Warning: Failed to get underlying DB: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Logf("Warning: Failed to close DB: %v", err)
	}
}
