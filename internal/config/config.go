// Package config holds the settings of the diacritics commands.
//
// Values are read from the environment, which may be populated from a .env
// file in the working directory. Command line flags take precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultUnicodeVersion is the UCD version the committed mapping was generated from.
const DefaultUnicodeVersion = "14.0.0"

type Config struct {
	// Unicode Character Database
	UCDBaseURL     string
	UnicodeVersion string

	// Download
	DataDir         string
	DownloadTimeout time.Duration

	// Generation
	WorkersCount int

	// Tracing
	TraceLevel string
}

func Load() (*Config, error) {
	// a missing .env file is not an error
	_ = godotenv.Load()

	cfg := &Config{
		UCDBaseURL:     getEnv("UCD_BASE_URL", "https://www.unicode.org/Public/"),
		UnicodeVersion: getEnv("UNICODE_VERSION", DefaultUnicodeVersion),

		DataDir:         getEnv("DATA_DIR", "./data"),
		DownloadTimeout: getEnvAsDuration("DOWNLOAD_TIMEOUT", 2*time.Minute),

		WorkersCount: getEnvAsInt("WORKERS_COUNT", 4),

		TraceLevel: getEnv("TRACE_LEVEL", "Info"),
	}
	if cfg.WorkersCount < 1 {
		return nil, fmt.Errorf("config: WORKERS_COUNT must be positive, is %d", cfg.WorkersCount)
	}
	return cfg, nil
}

// UnicodeDataURL is the download location of UnicodeData.txt for the
// configured Unicode version.
func (cfg *Config) UnicodeDataURL() string {
	base := strings.TrimSuffix(cfg.UCDBaseURL, "/")
	return fmt.Sprintf("%s/%s/ucd/UnicodeData.txt", base, cfg.UnicodeVersion)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
