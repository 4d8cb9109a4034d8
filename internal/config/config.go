// Package config loads portal configuration from environment variables,
// an optional .env file, and an optional YAML settings file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Development-time defaults; every value is overridable via environment.
const (
	DefaultBackendURL = "http://127.0.0.1:8001"
	DefaultAddr       = ":8080"

	// DefaultGoogleClientID is the development OAuth client; production
	// deployments override it via GOOGLE_CLIENT_ID.
	DefaultGoogleClientID = "683758755926-lf1jg0dmq2n9tscaa5gg3h3din4mch2g.apps.googleusercontent.com"
)

// Config holds the portal server configuration.
type Config struct {
	Addr           string // listen address
	BackendURL     string // chatbot backend base URL
	GoogleClientID string // federated login client identifier
	LogLevel       string // debug, info, warn, error
	LogFormat      string // text, json
	DBPath         string // SQLite session database path (":memory:" for testing)
	StaticDir      string // directory with the built frontend, empty to disable
	SessionTTL     time.Duration
	CacheTTL       time.Duration
	MockFallback   bool // substitute synthetic analytics when the backend is down
}

// Load builds a Config from environment variables.
// A .env file is loaded first when present (development convenience).
func Load() (*Config, error) {
	_ = godotenv.Load()

	sessionHours, err := strconv.Atoi(getEnv("PORTAL_SESSION_HOURS", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORTAL_SESSION_HOURS: %w", err)
	}

	cacheSeconds, err := strconv.Atoi(getEnv("PORTAL_CACHE_TTL_SECONDS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORTAL_CACHE_TTL_SECONDS: %w", err)
	}

	mockFallback, err := strconv.ParseBool(getEnv("PORTAL_MOCK_FALLBACK", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORTAL_MOCK_FALLBACK: %w", err)
	}

	cfg := &Config{
		Addr:           getEnv("PORTAL_ADDR", DefaultAddr),
		BackendURL:     getEnv("BACKEND_URL", DefaultBackendURL),
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", DefaultGoogleClientID),
		LogLevel:       getEnv("PORTAL_LOG_LEVEL", "info"),
		LogFormat:      getEnv("PORTAL_LOG_FORMAT", "text"),
		DBPath:         getEnv("PORTAL_DB_PATH", ""),
		StaticDir:      getEnv("PORTAL_STATIC_DIR", ""),
		SessionTTL:     time.Duration(sessionHours) * time.Hour,
		CacheTTL:       time.Duration(cacheSeconds) * time.Second,
		MockFallback:   mockFallback,
	}

	return cfg, nil
}

// fileConfig mirrors the YAML settings file. Pointer fields distinguish
// "unset" from explicit zero values.
type fileConfig struct {
	Addr           string `yaml:"addr"`
	BackendURL     string `yaml:"backend_url"`
	GoogleClientID string `yaml:"google_client_id"`
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
	DBPath         string `yaml:"db_path"`
	StaticDir      string `yaml:"static_dir"`
	MockFallback   *bool  `yaml:"mock_fallback"`
}

// ApplyFile overlays settings from a YAML file onto the config.
// Only keys present in the file override the current values.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if fc.Addr != "" {
		c.Addr = fc.Addr
	}
	if fc.BackendURL != "" {
		c.BackendURL = fc.BackendURL
	}
	if fc.GoogleClientID != "" {
		c.GoogleClientID = fc.GoogleClientID
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}
	if fc.DBPath != "" {
		c.DBPath = fc.DBPath
	}
	if fc.StaticDir != "" {
		c.StaticDir = fc.StaticDir
	}
	if fc.MockFallback != nil {
		c.MockFallback = *fc.MockFallback
	}

	return nil
}

// getEnv reads an environment variable, returning fallback when unset.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
