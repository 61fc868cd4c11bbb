package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Config holds ambient settings. Password generation and analysis rules are
// never read from the environment.
type Config struct {
	LogLevel   slog.Level
	BcryptCost int
}

func Load() Config {
	cfg := Config{
		LogLevel:   parseLevel(getEnv("PASSGEN_LOG_LEVEL", "warn")),
		BcryptCost: bcrypt.DefaultCost,
	}

	if raw := getEnv("PASSGEN_BCRYPT_COST", ""); raw != "" {
		cost, err := strconv.Atoi(raw)
		if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			slog.Warn("ignoring invalid PASSGEN_BCRYPT_COST", "value", raw,
				"min", bcrypt.MinCost, "max", bcrypt.MaxCost)
		} else {
			cfg.BcryptCost = cost
		}
	}

	return cfg
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		slog.Warn("ignoring invalid PASSGEN_LOG_LEVEL", "value", s)
		return slog.LevelWarn
	}
	return level
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
