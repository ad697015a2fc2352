package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	JWT        JWTConfig
	CORS       CORSConfig
	Attendance AttendanceConfig
	Seed       SeedConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Name            string
	Version         string
	Port            int
	Env             string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// AttendanceConfig holds the punch policy. Durations are offsets from midnight or lengths of work.
type AttendanceConfig struct {
	LateAfter    time.Duration
	HalfDayBelow time.Duration
}

// SeedConfig selects the initial data. An empty File loads the built-in sample set.
type SeedConfig struct {
	File string
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	shutdownTimeout, err := time.ParseDuration(getEnv("APP_SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_SHUTDOWN_TIMEOUT: %w", err)
	}

	config.App = AppConfig{
		Name:            getEnv("APP_NAME", "hris-dashboard"),
		Version:         getEnv("APP_VERSION", "v1.0.0"),
		Port:            appPort,
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: shutdownTimeout,
	}

	// JWT configuration
	jwtAccessExpiration, err := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: jwtAccessExpiration,
	}

	// CORS configuration
	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	// Attendance policy
	lateAfter, ok := validator.IsValidClock(getEnv("ATTENDANCE_LATE_AFTER", "09:00"))
	if !ok {
		return nil, fmt.Errorf("invalid ATTENDANCE_LATE_AFTER: expected HH:MM")
	}
	halfDayBelow, err := time.ParseDuration(getEnv("ATTENDANCE_HALF_DAY_BELOW", "4h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_HALF_DAY_BELOW: %w", err)
	}

	config.Attendance = AttendanceConfig{
		LateAfter:    lateAfter,
		HalfDayBelow: halfDayBelow,
	}

	// Seed data
	config.Seed = SeedConfig{
		File: getEnv("SEED_FILE", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.JWT.AccessExpiration <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME must be positive")
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if c.Attendance.HalfDayBelow < 0 {
		return fmt.Errorf("ATTENDANCE_HALF_DAY_BELOW must not be negative")
	}
	if _, err := parseLevel(c.App.LogLevel); err != nil {
		return err
	}
	return nil
}

// Policy returns the punch policy for the attendance service.
func (c AttendanceConfig) Policy() attendance.Policy {
	return attendance.Policy{
		LateAfter:    c.LateAfter,
		HalfDayBelow: c.HalfDayBelow,
	}
}

// SlogLevel converts LOG_LEVEL into a slog level. Unknown values fall back to info.
func (c AppConfig) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return level, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback []string) []string {
	value := getEnv(env, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
