package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"pdf-reader-api/internal/domain"
)

// AppConfig implements the domain.Config interface.
// Values are read once at startup and never mutated afterwards.
type AppConfig struct {
	ServerPort        string
	MaxFileSize       int64
	LogLevel          string
	LogFormat         string
	AllowedOrigins    []string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ExtractTimeout    time.Duration
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:     getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "5000")),
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", domain.DefaultMaxFileSize),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:      getEnvOrDefault("LOG_FORMAT", "json"),
		AllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
		// Zero disables a timeout; the body read and extraction are unbounded
		// unless configured.
		ReadTimeout:       getEnvDurationOrDefault("READ_TIMEOUT", 0),
		ReadHeaderTimeout: getEnvDurationOrDefault("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getEnvDurationOrDefault("WRITE_TIMEOUT", 0),
		IdleTimeout:       getEnvDurationOrDefault("IDLE_TIMEOUT", 120*time.Second),
		ExtractTimeout:    getEnvDurationOrDefault("EXTRACT_TIMEOUT", 0),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns the log encoding (json or console)
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return append([]string(nil), c.AllowedOrigins...)
}

func (c *AppConfig) GetReadTimeout() time.Duration       { return c.ReadTimeout }
func (c *AppConfig) GetReadHeaderTimeout() time.Duration { return c.ReadHeaderTimeout }
func (c *AppConfig) GetWriteTimeout() time.Duration      { return c.WriteTimeout }
func (c *AppConfig) GetIdleTimeout() time.Duration       { return c.IdleTimeout }

// GetExtractTimeout bounds a single extraction; zero means no limit
func (c *AppConfig) GetExtractTimeout() time.Duration {
	return c.ExtractTimeout
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d >= 0 {
			return d
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
