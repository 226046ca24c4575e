package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env      string `validate:"oneof=development staging production"`
	LogLevel string `validate:"oneof=debug info warn error"`

	BotToken string `validate:"required"`
	OwnerID  int64  `validate:"required"`

	Backend     string `validate:"oneof=sqlite postgres"`
	SQLitePath  string `validate:"required_if=Backend sqlite"`
	PostgresDSN string `validate:"required_if=Backend postgres"`

	ChartsDir string `validate:"required"`
	OpsAddr   string `validate:"required"`
	OpsToken  string `validate:"required"`

	Timezone    string `validate:"required"`
	WeeklyCron  string `validate:"required"`
	MonthlyCron string `validate:"required"`
}

var validate = validator.New()

// Load reads the configuration from the environment (and an optional .env
// file) and returns it as an explicit struct. Credentials come exclusively
// from here; nothing in the core reads the environment on its own.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("config: reading .env: %w", err)
	}

	ownerID, err := strconv.ParseInt(os.Getenv("OWNER_ID"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("config: OWNER_ID must be a chat id: %w", err)
	}

	cfg := &Config{
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		BotToken:    os.Getenv("BOT_TOKEN"),
		OwnerID:     ownerID,
		Backend:     getEnv("STORAGE_BACKEND", "sqlite"),
		SQLitePath:  getEnv("SQLITE_PATH", "data/mood.db"),
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		ChartsDir:   getEnv("CHARTS_DIR", "charts"),
		OpsAddr:     getEnv("OPS_ADDR", ":8088"),
		OpsToken:    os.Getenv("OPS_TOKEN"),
		Timezone:    getEnv("BOT_TIMEZONE", "Asia/Yekaterinburg"),
		WeeklyCron:  getEnv("WEEKLY_REPORT_CRON", "0 19 * * 0"),
		MonthlyCron: getEnv("MONTHLY_REPORT_CRON", "0 19 28-31 * *"),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadDotEnv sets any KEY=VALUE pairs from the given file that are not already
// present in the environment. A missing file is not an error.
func loadDotEnv(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, line := range splitLines(string(data)) {
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		kv := splitKV(line)
		if len(kv) != 2 {
			continue
		}
		if _, ok := os.LookupEnv(kv[0]); !ok {
			os.Setenv(kv[0], kv[1])
		}
	}
	return nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, c := range s {
		if c == '\n' || c == '\r' {
			if i > start {
				lines = append(lines, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func splitKV(s string) []string {
	for i, c := range s {
		if c == '=' {
			return []string{s[:i], s[i+1:]}
		}
	}
	return nil
}
