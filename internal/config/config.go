// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Booking   BookingConfig
	Directory DirectoryConfig
	Cache     CacheConfig
	Listing   ListingConfig
	Metrics   MetricsConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// BookingConfig holds the availability window rules.
type BookingConfig struct {
	Buffer         time.Duration `env:"BOOKING_BUFFER" envDefault:"30m"`
	RentalDuration time.Duration `env:"RENTAL_DURATION" envDefault:"24h"`
	SlotInterval   time.Duration `env:"SLOT_INTERVAL" envDefault:"30m"`
	Timezone       string        `env:"BOOKING_TIMEZONE" envDefault:"Asia/Kolkata"`
	YearSpan       int           `env:"CALENDAR_YEAR_SPAN" envDefault:"2"`
}

// DirectoryConfig selects and tunes the city/store directory source.
type DirectoryConfig struct {
	Source        string        `env:"DIRECTORY_SOURCE" envDefault:"file"`
	File          string        `env:"DIRECTORY_FILE" envDefault:"data/cities.json"`
	BaseURL       string        `env:"DIRECTORY_BASE_URL"`
	Timeout       time.Duration `env:"DIRECTORY_TIMEOUT" envDefault:"3s"`
	RetryAttempts int           `env:"DIRECTORY_RETRY_ATTEMPTS" envDefault:"3"`
}

// CacheConfig holds directory cache settings. An empty RedisAddr keeps the
// cache in process memory.
type CacheConfig struct {
	TTL           time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	Prefix        string        `env:"CACHE_PREFIX" envDefault:"rental-search"`
}

// ListingConfig holds the listing page the search flow navigates to.
type ListingConfig struct {
	BaseURL string `env:"LISTING_BASE_URL" envDefault:"/bikes"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Path    string `env:"METRICS_PATH" envDefault:"/metrics"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if err := validateBooking(cfg.Booking); err != nil {
		return err
	}
	if err := validateDirectory(cfg.Directory); err != nil {
		return err
	}

	if cfg.Cache.TTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative")
	}
	if cfg.Cache.RedisDB < 0 {
		return fmt.Errorf("REDIS_DB must not be negative, got %d", cfg.Cache.RedisDB)
	}

	if cfg.Listing.BaseURL == "" {
		return fmt.Errorf("LISTING_BASE_URL must not be empty")
	}
	if cfg.Metrics.Enabled && (cfg.Metrics.Path == "" || cfg.Metrics.Path[0] != '/') {
		return fmt.Errorf("METRICS_PATH must start with '/', got %q", cfg.Metrics.Path)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

func validateBooking(b BookingConfig) error {
	if b.Buffer < 0 {
		return fmt.Errorf("BOOKING_BUFFER must not be negative")
	}
	if b.RentalDuration <= 0 {
		return fmt.Errorf("RENTAL_DURATION must be positive")
	}
	if b.SlotInterval <= 0 || (24*time.Hour)%b.SlotInterval != 0 {
		return fmt.Errorf("SLOT_INTERVAL must be positive and divide 24h evenly, got %s", b.SlotInterval)
	}
	if b.SlotInterval%time.Minute != 0 {
		return fmt.Errorf("SLOT_INTERVAL must be a whole number of minutes, got %s", b.SlotInterval)
	}
	if b.RentalDuration%b.SlotInterval != 0 {
		return fmt.Errorf("RENTAL_DURATION must be a multiple of SLOT_INTERVAL, got %s and %s", b.RentalDuration, b.SlotInterval)
	}
	if _, err := time.LoadLocation(b.Timezone); err != nil {
		return fmt.Errorf("BOOKING_TIMEZONE %q is not a known location: %w", b.Timezone, err)
	}
	if b.YearSpan < 1 {
		return fmt.Errorf("CALENDAR_YEAR_SPAN must be at least 1, got %d", b.YearSpan)
	}
	return nil
}

func validateDirectory(d DirectoryConfig) error {
	switch d.Source {
	case "file":
		if d.File == "" {
			return fmt.Errorf("DIRECTORY_FILE is required when DIRECTORY_SOURCE=file")
		}
	case "http":
		if d.BaseURL == "" {
			return fmt.Errorf("DIRECTORY_BASE_URL is required when DIRECTORY_SOURCE=http")
		}
	default:
		return fmt.Errorf("DIRECTORY_SOURCE must be one of: file, http; got %q", d.Source)
	}
	if d.Timeout <= 0 {
		return fmt.Errorf("DIRECTORY_TIMEOUT must be positive")
	}
	if d.RetryAttempts < 1 {
		return fmt.Errorf("DIRECTORY_RETRY_ATTEMPTS must be at least 1, got %d", d.RetryAttempts)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// UsesRedis reports whether the directory cache is shared through Redis.
func (c *Config) UsesRedis() bool {
	return c.Cache.RedisAddr != ""
}
