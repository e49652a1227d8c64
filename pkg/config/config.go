package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fkventa/clubsite/pkg/storage"
	"gopkg.in/yaml.v3"
)

// Config captures service level configuration loaded from config.yaml.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	CORS     CORSConfig     `yaml:"cors"`
	Upload   UploadConfig   `yaml:"upload"`
	Storage  storage.Config `yaml:"storage"`
	Redis    RedisConfig    `yaml:"redis"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Nameday  NamedayConfig  `yaml:"nameday"`
	Admin    AdminConfig    `yaml:"admin"`
}

// ServerConfig defines HTTP server options.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// DatabaseConfig defines the database backend configuration.
type DatabaseConfig struct {
	Driver   string         `yaml:"driver"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	MySQL    MySQLConfig    `yaml:"mysql"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// SQLiteConfig contains SQLite specific settings.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// MySQLConfig contains MySQL specific connection details.
type MySQLConfig struct {
	DSN string `yaml:"dsn"`
}

// PostgresConfig contains PostgreSQL specific connection details.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// CORSConfig defines CORS middleware settings.
type CORSConfig struct {
	AllowOrigin      string `yaml:"allow_origin"`
	AllowMethods     string `yaml:"allow_methods"`
	AllowHeaders     string `yaml:"allow_headers"`
	AllowCredentials bool   `yaml:"allow_credentials"`
}

// UploadConfig defines file upload constraints.
type UploadConfig struct {
	MaxSize      int64    `yaml:"max_size"`
	AllowedTypes []string `yaml:"allowed_types"`
}

// RedisConfig defines Redis connection settings for the admin write lock.
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SMTPConfig defines the outbound mail relay used by the contact form.
type SMTPConfig struct {
	Host            string   `yaml:"host"`
	Port            int      `yaml:"port"`
	Username        string   `yaml:"username"`
	Password        string   `yaml:"password"`
	From            string   `yaml:"from"`
	AdminRecipients []string `yaml:"admin_recipients"`
}

// NamedayConfig defines the upstream name-day lookup service.
type NamedayConfig struct {
	BaseURL  string        `yaml:"base_url"`
	Country  string        `yaml:"country"`
	TodayTTL time.Duration `yaml:"today_ttl"`
	DateTTL  time.Duration `yaml:"date_ttl"`
}

// AdminConfig holds the shared secret for admin endpoints.
type AdminConfig struct {
	Token string `yaml:"token"`
}

// Load reads a YAML configuration file from the provided path.
// It searches in the current working directory first, then next to the binary executable.
func Load(name string) (*Config, error) {
	cfg := defaultConfig()

	configPath := findConfigFile(name)
	if configPath == "" {
		log.Printf("Warning: config file %q not found, using defaults", name)
		return cfg, nil
	}

	log.Printf("Loading config from: %s", configPath)
	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	var parsed Config
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	applyDefaults(&parsed)
	return &parsed, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address: ":8080",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			SQLite: SQLiteConfig{
				Path: "data/clubsite.db",
			},
		},
		CORS: CORSConfig{
			AllowOrigin:      "*",
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "*",
			AllowCredentials: false,
		},
		Upload: UploadConfig{
			MaxSize: 5 * 1024 * 1024, // 5MB
			AllowedTypes: []string{
				"image/jpeg",
				"image/png",
				"image/gif",
				"image/webp",
				"image/svg+xml",
			},
		},
		Storage: storage.DefaultConfig(),
		SMTP: SMTPConfig{
			Port: 587,
		},
		Nameday: NamedayConfig{
			BaseURL:  "https://nameday.abalin.net",
			Country:  "lv",
			TodayTTL: time.Hour,
			DateTTL:  24 * time.Hour,
		},
	}
}

func applyDefaults(cfg *Config) {
	def := defaultConfig()
	if cfg.Server.Address == "" {
		cfg.Server.Address = def.Server.Address
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = def.Database.Driver
	}
	if cfg.Database.Driver == "sqlite" && cfg.Database.SQLite.Path == "" {
		cfg.Database.SQLite.Path = def.Database.SQLite.Path
	}
	if cfg.CORS.AllowOrigin == "" {
		cfg.CORS.AllowOrigin = def.CORS.AllowOrigin
	}
	if cfg.CORS.AllowMethods == "" {
		cfg.CORS.AllowMethods = def.CORS.AllowMethods
	}
	if cfg.CORS.AllowHeaders == "" {
		cfg.CORS.AllowHeaders = def.CORS.AllowHeaders
	}
	if cfg.Upload.MaxSize <= 0 {
		cfg.Upload.MaxSize = def.Upload.MaxSize
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = def.Upload.AllowedTypes
	}
	if cfg.Storage.Type == "" {
		cfg.Storage = def.Storage
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = def.SMTP.Port
	}
	if cfg.Nameday.BaseURL == "" {
		cfg.Nameday.BaseURL = def.Nameday.BaseURL
	}
	if cfg.Nameday.Country == "" {
		cfg.Nameday.Country = def.Nameday.Country
	}
	if cfg.Nameday.TodayTTL <= 0 {
		cfg.Nameday.TodayTTL = def.Nameday.TodayTTL
	}
	if cfg.Nameday.DateTTL <= 0 {
		cfg.Nameday.DateTTL = def.Nameday.DateTTL
	}
}

// findConfigFile resolves the config path, trying the literal path first,
// then the directory containing the executable.
func findConfigFile(name string) string {
	if _, err := os.Stat(name); err == nil {
		return name
	}
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), filepath.Base(name))
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
