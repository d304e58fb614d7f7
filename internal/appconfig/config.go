// Package appconfig manages ssh-picker's own settings file.
//
// The file is optional and never written by ssh-picker; a missing file means
// defaults. It lives at $XDG_CONFIG_HOME/ssh-picker/config.yaml, falling back
// to ~/.config/ssh-picker/config.yaml.
package appconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/treykane/ssh-picker/internal/util"
)

const appName = "ssh-picker"

// DefaultPrompt matches ui.DefaultPrompt; appconfig cannot import ui.
const DefaultPrompt = "Select an SSH host"

// UIConfig contains picker display settings.
type UIConfig struct {
	Prompt    string `yaml:"prompt"`
	AltScreen bool   `yaml:"alt_screen"`
}

// Config holds application-level configuration.
type Config struct {
	SSHBinary string   `yaml:"ssh_binary"`
	UI        UIConfig `yaml:"ui"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		SSHBinary: util.DefaultSSHBinary,
		UI:        UIConfig{Prompt: DefaultPrompt},
	}
}

// ConfigDir returns the application config directory path.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config/ssh-picker.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// FilePath returns the full path to config.yaml.
func FilePath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.yaml"), nil
}

// Load reads config.yaml. A missing file yields Default().
func Load() (Config, error) {
	path, err := FilePath()
	if err != nil {
		return Config{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.SSHBinary = strings.TrimSpace(util.DefaultString(cfg.SSHBinary, util.DefaultSSHBinary))
	cfg.UI.Prompt = strings.TrimSpace(util.DefaultString(cfg.UI.Prompt, DefaultPrompt))
	return cfg, nil
}
