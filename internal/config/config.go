package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration for the portfolio server
type Config struct {
	Server   ServerConfig
	Content  ContentConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Admin    AdminConfig
	Privacy  PrivacyConfig
	SEO      SEOConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string
	Port         int
	TemplateGlob string
	StaticDir    string
	ImagesDir    string
}

// ContentConfig points at the static content collections
type ContentConfig struct {
	Dir string
}

func (c ContentConfig) ProjectsFile() string  { return filepath.Join(c.Dir, "projects.yaml") }
func (c ContentConfig) CompaniesFile() string { return filepath.Join(c.Dir, "companies.yaml") }
func (c ContentConfig) BlogDir() string       { return filepath.Join(c.Dir, "blog") }

// DatabaseConfig holds the analytics database location
type DatabaseConfig struct {
	Path string
}

// SMTPConfig holds contact form mail settings
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// AdminConfig holds admin dashboard credentials
type AdminConfig struct {
	Username string
	Password string
}

// PrivacyConfig holds visitor data retention settings
type PrivacyConfig struct {
	Retention time.Duration
}

// SEOConfig holds the location of the generated SEO reports
type SEOConfig struct {
	ReportPath string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("HOST", ""),
			Port:         getEnvAsInt("PORT", 8080),
			TemplateGlob: getEnv("TEMPLATE_GLOB", "templates/*"),
			StaticDir:    getEnv("STATIC_DIR", "./static"),
			ImagesDir:    getEnv("IMAGES_DIR", "./images"),
		},
		Content: ContentConfig{
			Dir: getEnv("CONTENT_DIR", "./content"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./portfolio.db"),
		},
		SMTP: SMTPConfig{
			Host: getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port: getEnv("SMTP_PORT", "587"),
			User: getEnv("SMTP_USER", ""),
			Pass: getEnv("SMTP_PASS", ""),
			To:   getEnv("TO_EMAIL", ""),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Privacy: PrivacyConfig{
			Retention: getEnvAsDuration("VISITOR_RETENTION", 365*24*time.Hour),
		},
		SEO: SEOConfig{
			ReportPath: getEnv("SEO_REPORT_PATH", "./data/seo-reports.json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Content.Dir == "" {
		return fmt.Errorf("content directory is required")
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	if c.Privacy.Retention <= 0 {
		return fmt.Errorf("invalid visitor retention: %s", c.Privacy.Retention)
	}

	return nil
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DefaultCredentials reports whether the admin login still uses the
// development defaults
func (c *Config) DefaultCredentials() bool {
	_, user := os.LookupEnv("ADMIN_USERNAME")
	_, pass := os.LookupEnv("ADMIN_PASSWORD")
	return !user || !pass
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
