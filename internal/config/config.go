// Package config loads operator-tunable settings for the aspen CLI: a
// clock epoch override (useful for reproducible golden-file tests of the
// native clock() function), the REPL history file path, and a color
// toggle. Settings come from the environment first (via caarlos0/env),
// then from an optional ~/.aspenrc.yaml that fills in anything the
// environment left at its zero value.
package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Config holds the settings the driver consults before running a file,
// starting a REPL, or printing diagnostics.
type Config struct {
	// ClockEpochUnix, if non-zero, is subtracted from wall-clock time
	// before handing it to the language's native clock() function, so a
	// test fixture can pin clock() to a reproducible small number.
	ClockEpochUnix int64  `env:"ASPEN_CLOCK_EPOCH" yaml:"clock_epoch_unix"`
	HistoryFile    string `env:"ASPEN_HISTORY_FILE" yaml:"history_file"`
	NoColor        bool   `env:"ASPEN_NO_COLOR" yaml:"no_color"`
}

// fileConfig mirrors Config's yaml-tagged fields; it is decoded separately
// so its values only fill the fields the environment left at their zero
// value. An env var set explicitly to a zero value counts as unset.
type fileConfig struct {
	ClockEpochUnix int64  `yaml:"clock_epoch_unix"`
	HistoryFile    string `yaml:"history_file"`
	NoColor        bool   `yaml:"no_color"`
}

// Load reads environment variables, then fills any zero-valued field from
// ~/.aspenrc.yaml if that file exists. A missing or unreadable rc file is
// not an error; the environment (or built-in zero values) stands alone.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	path, err := rcPath()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, nil
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, nil
	}

	if cfg.ClockEpochUnix == 0 {
		cfg.ClockEpochUnix = fc.ClockEpochUnix
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = fc.HistoryFile
	}
	if !cfg.NoColor {
		cfg.NoColor = fc.NoColor
	}
	return cfg, nil
}

func rcPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".aspenrc.yaml"), nil
}
