package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveTo writes the config to path as YAML.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// PersistWindowSize stores a new window size in the config file when
// window.remember_size is set. Only the size is merged into the file, so
// command-line overrides are not written back. It reports whether the file
// changed.
func (c *Config) PersistWindowSize(width, height int) (bool, error) {
	if !c.Window.RememberSize || c.Window.Fullscreen {
		return false, nil
	}
	if width <= 0 || height <= 0 || (width == c.Window.Width && height == c.Window.Height) {
		return false, nil
	}

	path := c.savePath()
	stored := Default()
	if err := loadFromFile(stored, path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	stored.Window.Width, stored.Window.Height = width, height
	if err := stored.SaveTo(path); err != nil {
		return false, err
	}

	c.Window.Width, c.Window.Height = width, height
	return true, nil
}

// savePath is the file the config was loaded from, or the user's config
// directory when only defaults were used.
func (c *Config) savePath() string {
	if c.path != "" {
		return c.path
	}
	return filepath.Join(ConfigDir(), "config.yaml")
}
