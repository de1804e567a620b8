package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Buttons.Placement != "suffix" {
		t.Errorf("buttons.placement = %q, want suffix", cfg.Buttons.Placement)
	}
	if !cfg.Update.CheckOnStart {
		t.Error("update check should be enabled by default")
	}
	if cfg.Theme.IconDark != "" {
		t.Errorf("theme.icon_dark = %q, want empty (use token default)", cfg.Theme.IconDark)
	}
}

func TestLoadMissing(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("CHATKIT_CONFIG_DIR", tmp)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Should return defaults when config file doesn't exist
	if cfg.Buttons.Placement != "suffix" {
		t.Errorf("buttons.placement = %q, want suffix", cfg.Buttons.Placement)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("CHATKIT_CONFIG_DIR", tmp)

	cfg := Defaults()
	cfg.Theme.ProgressColor = "#FF00FF"
	cfg.Buttons.Placement = "prefix"
	cfg.Buttons.CustomIcons = map[string]string{"submit": "🚀"}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmp, "config.yaml")); err != nil {
		t.Fatalf("config.yaml not created: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Theme.ProgressColor != "#FF00FF" {
		t.Errorf("theme.progress_color = %q, want #FF00FF", loaded.Theme.ProgressColor)
	}
	if loaded.Buttons.Placement != "prefix" {
		t.Errorf("buttons.placement = %q, want prefix", loaded.Buttons.Placement)
	}
	if loaded.Buttons.CustomIcons["submit"] != "🚀" {
		t.Errorf("custom icon = %q, want 🚀", loaded.Buttons.CustomIcons["submit"])
	}
}

func TestLoadRejectsUnknownButtonType(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("CHATKIT_CONFIG_DIR", tmp)

	bad := []byte("buttons:\n  custom_icons:\n    teleport: \"✨\"\n")
	if err := os.WriteFile(filepath.Join(tmp, "config.yaml"), bad, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should reject unknown button type names")
	}
}

func TestLoadRejectsBadPlacement(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("CHATKIT_CONFIG_DIR", tmp)

	bad := []byte("buttons:\n  placement: sideways\n")
	if err := os.WriteFile(filepath.Join(tmp, "config.yaml"), bad, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should reject a bad placement")
	}
}

func TestLoadBadYAML(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("CHATKIT_CONFIG_DIR", tmp)

	if err := os.WriteFile(filepath.Join(tmp, "config.yaml"), []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should report malformed yaml")
	}
}
