// Package config loads and saves spendlens settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/spendlens/internal/categorize"
	"github.com/theirongolddev/spendlens/internal/model"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all spendlens configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
	Categories []CategoryConfig `toml:"categories"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Inputs      []string `toml:"inputs"`
	AverageMode string   `toml:"average_mode"`
	Currency    string   `toml:"currency"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LoggingConfig holds log handler settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// CategoryConfig is one user-defined categorization rule.
type CategoryConfig struct {
	Name     string   `toml:"name"`
	Keywords []string `toml:"keywords"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			AverageMode: string(model.AverageTopThree),
			Currency:    "RUB",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Categories: CategoriesFromTable(model.DefaultCategoryTable()),
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendlens")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spendlens")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// A file without [[categories]] keeps the built-in table.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	defaults := cfg.Categories
	cfg.Categories = nil
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}
	if !md.IsDefined("categories") {
		cfg.Categories = defaults
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Environment variables that override file settings.
const (
	EnvInputs      = "SPENDLENS_INPUTS"
	EnvAverageMode = "SPENDLENS_AVERAGE_MODE"
	EnvCurrency    = "SPENDLENS_CURRENCY"
	EnvTheme       = "SPENDLENS_THEME"
	EnvLogLevel    = "SPENDLENS_LOG_LEVEL"
)

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none
// are named) into the process environment. Missing files are ignored and
// variables already set are left alone.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with any SPENDLENS_* variables that are set.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvInputs); v != "" {
		cfg.General.Inputs = splitList(v)
	}
	if v := os.Getenv(EnvAverageMode); v != "" {
		cfg.General.AverageMode = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.General.Currency = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks settings that would otherwise fail deep inside a run.
func (c Config) Validate() error {
	if _, err := model.ParseAverageMode(c.General.AverageMode); err != nil {
		return fmt.Errorf("general.average_mode: %w", err)
	}
	for i, cat := range c.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			return fmt.Errorf("categories[%d]: name is empty", i)
		}
	}
	return nil
}

// Mode returns the configured average mode, falling back to the default.
func (c Config) Mode() model.AverageMode {
	mode, err := model.ParseAverageMode(c.General.AverageMode)
	if err != nil {
		return model.AverageTopThree
	}
	return mode
}

// CategoryTable returns the normalized rule table built from Categories.
func (c Config) CategoryTable() model.CategoryTable {
	table := make(model.CategoryTable, 0, len(c.Categories))
	for _, cat := range c.Categories {
		table = append(table, model.CategoryRule{
			Name:     model.Category(cat.Name),
			Keywords: cat.Keywords,
		})
	}
	return categorize.Normalize(table)
}

// CategoriesFromTable converts a rule table to its config form.
func CategoriesFromTable(t model.CategoryTable) []CategoryConfig {
	out := make([]CategoryConfig, 0, len(t))
	for _, r := range t {
		out = append(out, CategoryConfig{
			Name:     string(r.Name),
			Keywords: append([]string(nil), r.Keywords...),
		})
	}
	return out
}
