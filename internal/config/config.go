// Package config loads startup configuration from the environment and an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"tariffwatch/internal/notify"
	"tariffwatch/pkg/news"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingAPIKey   = errors.New("NEWS_API_KEY is required")
	ErrInvalidPageSize = errors.New("page size must be at least 1")
	ErrInvalidLogLevel = errors.New("log level must be one of: debug, info, warn, error")
)

const (
	defaultKeywords = "2025 关税 贸易战 特朗普"
	defaultPort     = "8080"
	defaultSMTPPort = 587
)

var (
	defaultLanguages = []string{"zh", "en"}
	defaultClients   = []string{
		"东京世纪", "伊藤忠商事", "商船三井", "丸红", "三菱HC", "路易达浮",
		"Tokyo Century", "Itochu", "Mitsui O.S.K.", "Marubeni", "Mitsubishi HC", "Louis Dreyfus",
	}
)

type Config struct {
	APIKey           string
	NewsAPIBaseURL   string
	FinnhubAPIKey    string
	AlphaVantageKey  string
	DefaultClients   []string
	DefaultKeywords  string
	DefaultLanguages []news.Language
	PageSize         int
	Port             string
	FrontendURL      string
	LogLevel         string
	Email            notify.EmailConfig
}

// fileConfig mirrors the keys accepted in CONFIG_FILE.
type fileConfig struct {
	APIKey           string   `yaml:"api_key"`
	DefaultClients   []string `yaml:"default_clients"`
	DefaultKeywords  string   `yaml:"default_keywords"`
	DefaultLanguages []string `yaml:"default_languages"`
	PageSize         int      `yaml:"page_size"`
}

// Load reads .env (if present), then CONFIG_FILE (if set), then environment
// variables. Environment variables win over the file.
func Load() (*Config, error) {
	godotenv.Load()
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (*Config, error) {
	fc := fileConfig{}
	if path := getenv("CONFIG_FILE"); path != "" {
		loaded, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		fc = *loaded
	}

	cfg := &Config{
		APIKey:          firstNonEmpty(getenv("NEWS_API_KEY"), fc.APIKey),
		NewsAPIBaseURL:  getenv("NEWS_API_BASE_URL"),
		FinnhubAPIKey:   getenv("FINNHUB_API_KEY"),
		AlphaVantageKey: getenv("ALPHA_VANTAGE_API_KEY"),
		DefaultKeywords: firstNonEmpty(getenv("DEFAULT_KEYWORDS"), fc.DefaultKeywords, defaultKeywords),
		PageSize:        news.DefaultPageSize,
		Port:            firstNonEmpty(getenv("PORT"), defaultPort),
		FrontendURL:     getenv("FRONTEND_URL"),
		LogLevel:        strings.ToLower(firstNonEmpty(getenv("LOG_LEVEL"), "info")),
		Email: notify.EmailConfig{
			SMTPServer: getenv("SMTP_SERVER"),
			SMTPPort:   defaultSMTPPort,
			SMTPUser:   getenv("SMTP_USER"),
			SMTPPass:   getenv("SMTP_PASS"),
			FromEmail:  getenv("FROM_EMAIL"),
			ToEmail:    getenv("TO_EMAIL"),
		},
	}

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg.DefaultClients = append([]string(nil), defaultClients...)
	if len(fc.DefaultClients) > 0 {
		cfg.DefaultClients = fc.DefaultClients
	}
	if v := getenv("DEFAULT_CLIENTS"); v != "" {
		cfg.DefaultClients = splitList(v)
	}

	langs := defaultLanguages
	if len(fc.DefaultLanguages) > 0 {
		langs = fc.DefaultLanguages
	}
	if v := getenv("DEFAULT_LANGUAGES"); v != "" {
		langs = splitList(v)
	}
	parsed, err := news.ParseLanguages(langs)
	if err != nil {
		return nil, fmt.Errorf("default languages: %w", err)
	}
	cfg.DefaultLanguages = parsed

	if fc.PageSize != 0 {
		cfg.PageSize = fc.PageSize
	}
	if v := getenv("PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PAGE_SIZE: %w", err)
		}
		cfg.PageSize = n
	}
	if cfg.PageSize < 1 {
		return nil, ErrInvalidPageSize
	}

	if v := getenv("SMTP_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SMTP_PORT: %w", err)
		}
		cfg.Email.SMTPPort = n
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, ErrInvalidLogLevel
	}

	return cfg, nil
}

// SlogLevel maps LogLevel onto slog; unknown values fall back to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &fc, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
