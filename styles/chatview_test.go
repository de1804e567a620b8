package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDefaultChatViewStyleIsValid(t *testing.T) {
	cs := DefaultChatViewStyle(DefaultTokens())
	if err := cs.Validate(); err != nil {
		t.Errorf("default bundle should validate, got: %v", err)
	}
}

func TestValidateNamesMissingFields(t *testing.T) {
	full := DefaultChatViewStyle(DefaultTokens())

	tests := []struct {
		name   string
		mutate func(*ChatViewStyle)
	}{
		{"SubmitButton", func(s *ChatViewStyle) { s.SubmitButton = nil }},
		{"StopButton", func(s *ChatViewStyle) { s.StopButton = nil }},
		{"RecordButton", func(s *ChatViewStyle) { s.RecordButton = nil }},
		{"DisabledButton", func(s *ChatViewStyle) { s.DisabledButton = nil }},
		{"ProgressColor", func(s *ChatViewStyle) { s.ProgressColor = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := full
			tt.mutate(&cs)
			err := cs.Validate()
			if err == nil {
				t.Fatalf("expected error for missing %s", tt.name)
			}
			if !strings.Contains(err.Error(), tt.name) {
				t.Errorf("error %q does not name the missing field %s", err, tt.name)
			}
		})
	}
}

func TestValidateEmptyBundle(t *testing.T) {
	err := ChatViewStyle{}.Validate()
	if err == nil {
		t.Fatal("empty bundle should not validate")
	}
	for _, field := range []string{"SubmitButton", "StopButton", "RecordButton", "DisabledButton", "ProgressColor"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error should name %s, got: %v", field, err)
		}
	}
}

func TestResolveChatViewStyleNil(t *testing.T) {
	def := DefaultChatViewStyle(DefaultTokens())
	got := ResolveChatViewStyle(nil, def)
	if got.SubmitButton != def.SubmitButton || got.ProgressColor != def.ProgressColor {
		t.Error("nil style should yield the default bundle unchanged")
	}
}

func TestResolveChatViewStyleMerge(t *testing.T) {
	def := DefaultChatViewStyle(DefaultTokens())

	glyph := "▲"
	partial := &ChatViewStyle{
		SubmitButton: &ActionButtonStyle{Icon: &glyph},
	}

	got := ResolveChatViewStyle(partial, def)
	if err := got.Validate(); err != nil {
		t.Fatalf("merged bundle should validate, got: %v", err)
	}

	if *got.SubmitButton.Icon != "▲" {
		t.Errorf("submit icon = %q, want override", *got.SubmitButton.Icon)
	}
	// The rest of the submit style falls back to the default.
	if got.SubmitButton.IconColor != def.SubmitButton.IconColor {
		t.Error("submit icon color should come from the default")
	}
	// Untouched sub-styles equal the defaults.
	if *got.StopButton.Icon != *def.StopButton.Icon {
		t.Error("stop button should be the default")
	}
	if got.ProgressColor != def.ProgressColor {
		t.Error("progress color should fall back to the default")
	}
}

func TestResolveChatViewStyleProgressOverride(t *testing.T) {
	def := DefaultChatViewStyle(DefaultTokens())
	c := lipgloss.Color("#FF00FF")
	got := ResolveChatViewStyle(&ChatViewStyle{ProgressColor: c}, def)
	if got.ProgressColor != c {
		t.Errorf("progress color = %v, want override", got.ProgressColor)
	}
}
