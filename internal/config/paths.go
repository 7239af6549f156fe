// ABOUTME: Standard filesystem paths for cursory configuration
// ABOUTME: $XDG_CONFIG_HOME/cursory, falling back to ~/.config/cursory

package config

import (
	"os"
	"path/filepath"
)

const (
	dirName  = "cursory"
	fileName = "config.yaml"
)

// Dir returns the configuration directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, dirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+dirName)
	}
	return filepath.Join(home, ".config", dirName)
}

// DefaultPath returns the settings file looked up when none is given.
func DefaultPath() string {
	return filepath.Join(Dir(), fileName)
}
