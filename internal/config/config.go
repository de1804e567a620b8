package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okampo/chatkit/styles"
)

// Config holds the demo application configuration.
type Config struct {
	Theme   ThemeConfig   `yaml:"theme"`
	Buttons ButtonsConfig `yaml:"buttons"`
	Update  UpdateConfig  `yaml:"update"`
}

// ThemeConfig overrides the stock design tokens. Empty values keep the
// defaults. Colors are hex strings.
type ThemeConfig struct {
	IconDark      string `yaml:"icon_dark"`
	IconLight     string `yaml:"icon_light"`
	LightButtonBg string `yaml:"light_button_bg"`
	DarkButtonBg  string `yaml:"dark_button_bg"`
	DisabledBg    string `yaml:"disabled_bg"`
	MenuBg        string `yaml:"menu_bg"`
	ProgressColor string `yaml:"progress_color"`
}

// ButtonsConfig controls the input button's placement relative to the
// text field and per-type custom icon glyphs (type name -> glyph).
type ButtonsConfig struct {
	Placement   string            `yaml:"placement"` // "prefix" or "suffix"
	CustomIcons map[string]string `yaml:"custom_icons"`
}

// UpdateConfig holds self-update settings.
type UpdateConfig struct {
	CheckOnStart bool `yaml:"check_on_start"`
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		Buttons: ButtonsConfig{
			Placement: "suffix",
		},
		Update: UpdateConfig{
			CheckOnStart: true,
		},
	}
}

// Load reads the config from disk. If the file doesn't exist, returns
// defaults. Invalid placements and unknown button type names are
// load-time errors rather than render-time surprises.
func Load() (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(ConfigFile())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), err
	}

	if err := cfg.validate(); err != nil {
		return Defaults(), err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Buttons.Placement {
	case "", "prefix", "suffix":
	default:
		return fmt.Errorf("buttons.placement must be prefix or suffix, got %q", c.Buttons.Placement)
	}
	for name := range c.Buttons.CustomIcons {
		if _, err := styles.ParseButtonType(name); err != nil {
			return fmt.Errorf("buttons.custom_icons: %w", err)
		}
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigFile(), data, 0o644)
}
