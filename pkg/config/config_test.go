package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load("non-existent-config.yaml")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg == nil {
		t.Fatalf("config is nil")
	}
	if cfg.Server.Address != ":8080" {
		t.Fatalf("expected default address :8080, got %s", cfg.Server.Address)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("expected default driver sqlite, got %s", cfg.Database.Driver)
	}
	if cfg.Database.SQLite.Path != "data/clubsite.db" {
		t.Fatalf("expected sqlite path data/clubsite.db, got %s", cfg.Database.SQLite.Path)
	}
	if cfg.Upload.MaxSize != 5*1024*1024 {
		t.Fatalf("expected 5MB upload cap, got %d", cfg.Upload.MaxSize)
	}
	if cfg.Nameday.TodayTTL != time.Hour {
		t.Fatalf("expected 1h today TTL, got %v", cfg.Nameday.TodayTTL)
	}
}

func TestLoadWithPartialConfigAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  address: ":9090"
database:
  driver: ""
  sqlite: {}
smtp:
  host: "smtp.example.com"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Address != ":9090" {
		t.Fatalf("expected server address :9090, got %s", cfg.Server.Address)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("expected database driver sqlite, got %s", cfg.Database.Driver)
	}
	if cfg.Database.SQLite.Path != "data/clubsite.db" {
		t.Fatalf("expected sqlite path data/clubsite.db, got %s", cfg.Database.SQLite.Path)
	}
	if cfg.SMTP.Host != "smtp.example.com" {
		t.Fatalf("expected smtp host to survive, got %s", cfg.SMTP.Host)
	}
	if cfg.SMTP.Port != 587 {
		t.Fatalf("expected default smtp port 587, got %d", cfg.SMTP.Port)
	}
	if cfg.Nameday.Country != "lv" {
		t.Fatalf("expected default nameday country lv, got %s", cfg.Nameday.Country)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  address: ":9090"
  unknown_key: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown config key")
	}
}
