package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file path relative to the XDG config home.
var DefaultConfigFile = filepath.Join(AppName, "config.yaml")

// LoadFile overlays the YAML file at path onto cfg.
//
// Keys absent from the file leave the corresponding fields untouched.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// FindConfigFile resolves the configuration file to load.
//
// An explicit path is returned as is, whether or not it exists, so that
// LoadFile can report it missing. Otherwise the XDG config directories are
// searched for DefaultConfigFile; an empty string means none was found.
func FindConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	path, err := xdg.SearchConfigFile(DefaultConfigFile)
	if err != nil {
		return ""
	}
	return path
}

// Load builds a Config from defaults and the configuration file, if any.
//
// A missing file is only an error when explicit names it.
func Load(explicit string) (*Config, error) {
	cfg := Default()

	path := FindConfigFile(explicit)
	if path == "" {
		return cfg, nil
	}
	if err := LoadFile(cfg, path); err != nil {
		if errors.Is(err, ErrConfigNotFound) && explicit == "" {
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}
