package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/spendlens/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "spendlens")
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	useTempConfigHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, Exists())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempConfigHome(t)

	cfg := DefaultConfig()
	cfg.General.Inputs = []string{"~/ledger"}
	cfg.General.AverageMode = string(model.AverageAllCategories)
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Categories = []CategoryConfig{{Name: "Pets", Keywords: []string{"vet"}}}
	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadKeepsDefaultCategoriesWhenUnset(t *testing.T) {
	dir := useTempConfigHome(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[general]
currency = "EUR"
`), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.General.Currency)
	assert.Equal(t, string(model.AverageTopThree), cfg.General.AverageMode)
	assert.Equal(t, CategoriesFromTable(model.DefaultCategoryTable()), cfg.Categories)
}

func TestLoadUserCategoriesReplaceDefaults(t *testing.T) {
	dir := useTempConfigHome(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[[categories]]
name = "Food"
keywords = [" Grocery ", ""]

[[categories]]
name = "Books"
keywords = ["bookstore"]
`), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	table := cfg.CategoryTable()
	require.Len(t, table, 2)
	assert.Equal(t, model.CategoryRule{Name: model.Food, Keywords: []string{"grocery"}}, table[0])
	assert.Equal(t, model.Category("Books"), table[1].Name)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := useTempConfigHome(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[general\n"), 0o600))

	_, err := Load()
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvInputs, "a.csv, ,b.json")
	t.Setenv(EnvAverageMode, "all-categories")
	t.Setenv(EnvCurrency, "USD")
	t.Setenv(EnvTheme, "terminal")
	t.Setenv(EnvLogLevel, "debug")

	cfg := DefaultConfig()
	ApplyEnv(&cfg)

	assert.Equal(t, []string{"a.csv", "b.json"}, cfg.General.Inputs)
	assert.Equal(t, model.AverageAllCategories, cfg.Mode())
	assert.Equal(t, "USD", cfg.General.Currency)
	assert.Equal(t, "terminal", cfg.Appearance.Theme)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadDotEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SPENDLENS_CURRENCY=GBP\n"), 0o600))
	t.Setenv(EnvCurrency, "")
	require.NoError(t, os.Unsetenv(EnvCurrency))

	require.NoError(t, LoadDotEnv(envFile))
	assert.Equal(t, "GBP", os.Getenv(EnvCurrency))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.General.AverageMode = "median"
	assert.ErrorIs(t, cfg.Validate(), model.ErrUnknownAverageMode)
	assert.Equal(t, model.AverageTopThree, cfg.Mode())

	cfg = DefaultConfig()
	cfg.Categories = append(cfg.Categories, CategoryConfig{Name: "  "})
	assert.Error(t, cfg.Validate())
}
