// Package config loads and persists the soletear configuration file:
// the fixed calculator assumptions, presentation locale/currency, and
// logging settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/ErikTaylerd/soletear-calculator/internal/engine"
)

// ConfigVersion is the schema version written to new config files.
const ConfigVersion = "1.0.0"

// supportedVersions is the semver range of config schemas this binary reads.
// Bump the major bound when a breaking schema change lands.
const supportedVersions = ">=1.0.0 <2.0.0"

// configDirName is the directory under $HOME holding the config file.
const configDirName = ".soletear"

// Config is the root configuration document.
type Config struct {
	Version      string             `yaml:"version"`
	Calculator   CalculatorConfig   `yaml:"calculator"`
	Presentation PresentationConfig `yaml:"presentation"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// CalculatorConfig holds the assumptions that are not edited per keystroke:
// they are always well-formed numbers, never raw user text.
type CalculatorConfig struct {
	Maintenance  float64 `yaml:"maintenance"`
	SavingsRatio float64 `yaml:"savings_ratio"`
	HorizonYears int     `yaml:"horizon_years"`
	KwhPerPerson float64 `yaml:"kwh_per_person"`
}

// PresentationConfig holds locale and currency for rendered amounts.
type PresentationConfig struct {
	Locale   string `yaml:"locale"`
	Currency string `yaml:"currency"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

//nolint:gochecknoglobals // Global config is set once at startup, read everywhere.
var (
	globalConfig *Config
	globalMu     sync.RWMutex
)

// Default returns a Config populated with the widget's defaults.
func Default() *Config {
	return &Config{
		Version: ConfigVersion,
		Calculator: CalculatorConfig{
			Maintenance:  engine.DefaultMaintenance,
			SavingsRatio: engine.DefaultSavingsRatio,
			HorizonYears: engine.DefaultHorizonYears,
			KwhPerPerson: engine.DefaultKwhPerPerson,
		},
		Presentation: PresentationConfig{
			Locale:   "sv",
			Currency: "kr",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Path returns the config file location, honoring SOLETEAR_CONFIG_DIR for
// tests and sandboxed installs.
func Path() string {
	dir := os.Getenv("SOLETEAR_CONFIG_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, configDirName)
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file, layering it over defaults. A missing file is
// not an error: the defaults are the product's published assumptions.
func Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to the config path, creating the directory if needed.
func (c *Config) Save() error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks the schema version and value ranges. The calculator core
// never fails on bad numbers, so range errors are caught here instead.
func (c *Config) Validate() error {
	if err := c.checkVersion(); err != nil {
		return err
	}

	if c.Calculator.SavingsRatio < 0 || c.Calculator.SavingsRatio > 1 {
		return fmt.Errorf("savings_ratio must be in [0,1], got %g", c.Calculator.SavingsRatio)
	}
	if c.Calculator.Maintenance < 0 {
		return fmt.Errorf("maintenance must be >= 0, got %g", c.Calculator.Maintenance)
	}
	if c.Calculator.HorizonYears < 0 {
		return fmt.Errorf("horizon_years must be >= 0, got %d", c.Calculator.HorizonYears)
	}
	if c.Calculator.KwhPerPerson < engine.KwhPerPersonRule.Min {
		return fmt.Errorf("kwh_per_person must be >= %g, got %g",
			engine.KwhPerPersonRule.Min, c.Calculator.KwhPerPerson)
	}
	return nil
}

// checkVersion verifies the config schema version against the supported
// semver range. An empty version is accepted as the current schema so
// hand-written minimal configs keep working.
func (c *Config) checkVersion() error {
	if c.Version == "" {
		return nil
	}

	ver, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("invalid config version %q: %w", c.Version, err)
	}

	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing supported version range: %w", err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("config version %s is outside supported range %s", c.Version, supportedVersions)
	}
	return nil
}

// SetGlobalConfig stores the process-wide configuration.
func SetGlobalConfig(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// GetGlobalConfig returns the process-wide configuration, loading defaults
// on first use so callers never see nil.
func GetGlobalConfig() *Config {
	globalMu.RLock()
	cfg := globalConfig
	globalMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		globalConfig = Default()
	}
	return globalConfig
}

// GetLoggingConfig returns a copy of the global Logging section.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
