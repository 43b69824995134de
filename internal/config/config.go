package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL   = "https://www.themealdb.com/api/json/v1/1"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5.0

	ThemeLight = "light"
	ThemeDark  = "dark"

	DetailFetch   = "fetch"
	DetailSummary = "summary"
)

type Config struct {
	BaseURL    string        `yaml:"base_url"`
	Theme      string        `yaml:"theme"`
	DetailMode string        `yaml:"detail_mode"`
	Timeout    time.Duration `yaml:"timeout"`
	RateLimit  float64       `yaml:"rate_limit"` // requests per second, 0 = unlimited
	CacheTTL   time.Duration `yaml:"cache_ttl"`  // 0 disables the response cache
	LogFile    string        `yaml:"log_file"`
	LogLevel   string        `yaml:"log_level"`
}

func Default() Config {
	return Config{
		BaseURL:    DefaultBaseURL,
		Theme:      ThemeLight,
		DetailMode: DetailFetch,
		Timeout:    DefaultTimeout,
		RateLimit:  DefaultRateLimit,
		LogLevel:   "info",
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error when optional is true.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns ~/.config/recipe-tui/config.yaml, or "" when the user
// config dir cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "recipe-tui", "config.yaml")
}

func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base url must be an absolute http(s) URL, got %q", c.BaseURL)
	}
	switch c.Theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("theme must be %q or %q, got %q", ThemeLight, ThemeDark, c.Theme)
	}
	switch c.DetailMode {
	case DetailFetch, DetailSummary:
	default:
		return fmt.Errorf("detail mode must be %q or %q, got %q", DetailFetch, DetailSummary, c.DetailMode)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache ttl must not be negative")
	}
	return nil
}

// Host returns the host part of BaseURL.
func (c Config) Host() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return ""
	}
	return u.Host
}
