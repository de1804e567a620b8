package config

import (
	"os"
	"path/filepath"
)

// Dir returns the configuration directory path (~/.config/chatkit).
// It can be overridden with the CHATKIT_CONFIG_DIR environment variable.
func Dir() string {
	if d := os.Getenv("CHATKIT_CONFIG_DIR"); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "chatkit")
	}
	return filepath.Join(home, ".config", "chatkit")
}

// ConfigFile returns the path to the config.yaml file.
func ConfigFile() string {
	return filepath.Join(Dir(), "config.yaml")
}
