package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/spotter/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config is the user configuration, stored as YAML.
type Config struct {
	DBPath    string                   `yaml:"db_path"`
	PlansDir  string                   `yaml:"plans_dir"`
	Muted     bool                     `yaml:"muted"`
	LogCalls  bool                     `yaml:"log_calls"`
	BarWeight float64                  `yaml:"bar_weight"`
	Rest      domain.RestTimerSettings `yaml:"rest"`
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	home, _ := os.UserHomeDir()
	base := filepath.Join(home, ".spotter")
	return Config{
		DBPath:    filepath.Join(base, "spotter.db"),
		PlansDir:  filepath.Join(base, "plans"),
		BarWeight: 45,
		Rest:      domain.DefaultRestTimerSettings(),
	}
}

// Path returns the config file location, overridable with SPOTTER_CONFIG.
func Path() string {
	if v := os.Getenv("SPOTTER_CONFIG"); v != "" {
		return v
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".spotter", "config.yaml")
}

// Load reads config from a YAML file on top of the defaults, then applies
// environment variable overrides. A missing file is not an error.
//
//	SPOTTER_DB, SPOTTER_PLANS, SPOTTER_MUTED, SPOTTER_LOG_CALLS,
//	SPOTTER_BAR_WEIGHT, SPOTTER_REST_DEFAULT, SPOTTER_REST_WARNING,
//	SPOTTER_SMART_REST, SPOTTER_SOUND, SPOTTER_VIBRATION
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	if cfg.Rest.CustomRestTimes == nil {
		cfg.Rest.CustomRestTimes = map[string]int{}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SPOTTER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SPOTTER_PLANS"); v != "" {
		cfg.PlansDir = v
	}
	applyBoolEnv(&cfg.Muted, "SPOTTER_MUTED")
	applyBoolEnv(&cfg.LogCalls, "SPOTTER_LOG_CALLS")
	applyBoolEnv(&cfg.Rest.SmartRest, "SPOTTER_SMART_REST")
	applyBoolEnv(&cfg.Rest.SoundEnabled, "SPOTTER_SOUND")
	applyBoolEnv(&cfg.Rest.VibrationEnabled, "SPOTTER_VIBRATION")

	if v := os.Getenv("SPOTTER_BAR_WEIGHT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.BarWeight = f
		}
	}
	if v := os.Getenv("SPOTTER_REST_DEFAULT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Rest.DefaultRestTime = n
		}
	}
	if v := os.Getenv("SPOTTER_REST_WARNING"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Rest.WarningTime = n
		}
	}
}

func applyBoolEnv(dst *bool, name string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	if b, err := strconv.ParseBool(v); err == nil {
		*dst = b
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.BarWeight <= 0 {
		return fmt.Errorf("bar_weight must be positive")
	}
	if c.Rest.DefaultRestTime <= 0 {
		return fmt.Errorf("rest.default_rest_time must be positive")
	}
	if c.Rest.WarningTime < 0 {
		return fmt.Errorf("rest.warning_time must not be negative")
	}
	for id, sec := range c.Rest.CustomRestTimes {
		if sec < 0 {
			return fmt.Errorf("rest.custom_rest_times[%s] must not be negative", id)
		}
	}
	return nil
}
