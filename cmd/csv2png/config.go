package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/csv2png"
)

// fileConfig is the on-disk configuration shape. All keys are optional;
// unset keys keep the built-in defaults.
type fileConfig struct {
	NullPlaceholder   string   `yaml:"null_placeholder,omitempty"`
	IdentifierColumns []string `yaml:"identifier_columns,omitempty"`
	IdentifierWidth   int      `yaml:"identifier_width,omitempty"`
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "csv2png", "config.yaml"), nil
}

// loadConfig builds the effective configuration: defaults overlaid with
// the config file. A missing file at the default path is not an error; an
// explicitly given path must exist.
func loadConfig(path string) (csv2png.Config, error) {
	cfg := csv2png.DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.NullPlaceholder != "" {
		cfg.NullPlaceholder = fc.NullPlaceholder
	}
	if len(fc.IdentifierColumns) > 0 {
		cfg.IdentifierColumns = fc.IdentifierColumns
	}
	if fc.IdentifierWidth > 0 {
		cfg.IdentifierWidth = fc.IdentifierWidth
	}
	return cfg, nil
}
