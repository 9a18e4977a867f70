package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErikTaylerd/soletear-calculator/internal/engine"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, engine.DefaultSavingsRatio, cfg.Calculator.SavingsRatio)
	assert.Equal(t, engine.DefaultHorizonYears, cfg.Calculator.HorizonYears)
	assert.Equal(t, "sv", cfg.Presentation.Locale)
	assert.Equal(t, "kr", cfg.Presentation.Currency)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("SOLETEAR_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("SOLETEAR_CONFIG_DIR", t.TempDir())

	cfg := Default()
	cfg.Calculator.Maintenance = 250
	cfg.Calculator.HorizonYears = 25
	cfg.Presentation.Currency = "SEK"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileLayersOverDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SOLETEAR_CONFIG_DIR", dir)

	partial := "calculator:\n  horizon_years: 20\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(partial), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Calculator.HorizonYears)
	// Untouched sections keep their defaults.
	assert.Equal(t, engine.DefaultSavingsRatio, cfg.Calculator.SavingsRatio)
	assert.Equal(t, "sv", cfg.Presentation.Locale)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(*Config) {}, false},
		{"savings ratio above one", func(c *Config) { c.Calculator.SavingsRatio = 1.2 }, true},
		{"negative savings ratio", func(c *Config) { c.Calculator.SavingsRatio = -0.1 }, true},
		{"negative maintenance", func(c *Config) { c.Calculator.Maintenance = -1 }, true},
		{"negative horizon", func(c *Config) { c.Calculator.HorizonYears = -1 }, true},
		{"kwh below floor", func(c *Config) { c.Calculator.KwhPerPerson = 400 }, true},
		{"empty version accepted", func(c *Config) { c.Version = "" }, false},
		{"future major rejected", func(c *Config) { c.Version = "2.0.0" }, true},
		{"patch bump accepted", func(c *Config) { c.Version = "1.3.7" }, false},
		{"garbage version rejected", func(c *Config) { c.Version = "not-semver" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGlobalConfigAccessor(t *testing.T) {
	SetGlobalConfig(nil)
	t.Cleanup(func() { SetGlobalConfig(nil) })

	// Never nil, even before anything is loaded.
	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)

	custom := Default()
	custom.Calculator.HorizonYears = 42
	SetGlobalConfig(custom)
	assert.Equal(t, 42, GetGlobalConfig().Calculator.HorizonYears)
	assert.Equal(t, custom.Logging, GetLoggingConfig())
}
