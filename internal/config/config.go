package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/airmetrics/rrmreport/internal/core/domain"
)

const (
	defaultBands = "2.4,5,6"
	defaultLevel = "info"
)

// Config holds all application configuration.
type Config struct {
	BaseURL   string
	Username  string
	Password  string
	VerifyTLS bool

	Bands      []domain.Band
	Thresholds domain.Thresholds

	LogoPath string
	LogLevel string
}

// LoadOptions tweaks which parts of the configuration are mandatory.
type LoadOptions struct {
	RequireCredentials bool
}

// Load reads configuration from the environment, honoring a .env file
// in the working directory when present. Required variables are
// reported together in a single error.
func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{RequireCredentials: true})
}

// LoadOptional reads configuration without requiring controller
// credentials. Used by commands that never talk to a controller.
func LoadOptional() (*Config, error) {
	return LoadWithOptions(LoadOptions{RequireCredentials: false})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	}

	cfg := &Config{
		BaseURL:   strings.TrimRight(os.Getenv("DNAC_URL"), "/"),
		Username:  os.Getenv("DNAC_USERNAME"),
		Password:  os.Getenv("DNAC_PASSWORD"),
		VerifyTLS: getEnvBool("DNAC_VERIFY_TLS", false),
		Bands:     domain.ParseBands(getEnv("FREQUENCY_BANDS", defaultBands)),
		Thresholds: domain.Thresholds{
			HealthScore: getEnvFloat("HEALTH_THRESHOLD", domain.DefaultThresholds().HealthScore),
			ChangeCount: getEnvInt("RRM_CHANGES_THRESHOLD", domain.DefaultThresholds().ChangeCount),
		},
		LogoPath: os.Getenv("LOGO_PATH"),
		LogLevel: getEnv("LOG_LEVEL", defaultLevel),
	}

	if !opts.RequireCredentials {
		return cfg, nil
	}

	var missing []string
	if cfg.BaseURL == "" {
		missing = append(missing, "DNAC_URL")
	}
	if cfg.Username == "" {
		missing = append(missing, "DNAC_USERNAME")
	}
	if cfg.Password == "" {
		missing = append(missing, "DNAC_PASSWORD")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
