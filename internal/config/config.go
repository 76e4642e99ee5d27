package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/vaultpass/passgen-go/internal/generator"
)

type Config struct {
	Port string
	Env  string

	// Widget defaults.
	Generator        generator.Configuration
	StatusTTL        time.Duration
	FailureAutoClear bool
	LogFile          string

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),
		Generator: generator.Configuration{
			Length:         generator.ClampLength(getEnvInt("PASSGEN_LENGTH", generator.DefaultLength)),
			IncludeDigits:  getEnvBool("PASSGEN_DIGITS", false),
			IncludeSymbols: getEnvBool("PASSGEN_SYMBOLS", false),
		},
		StatusTTL:        getEnvDuration("PASSGEN_STATUS_TTL", 2*time.Second),
		FailureAutoClear: getEnvBool("PASSGEN_FAILURE_AUTOCLEAR", true),
		LogFile:          getEnv("PASSGEN_LOG_FILE", ""),
		RateLimitRPS:     getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v)
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", v)
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v)
		return fallback
	}
	return d
}
