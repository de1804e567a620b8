package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okampo/chatkit/styles"
)

func testBundle() styles.ChatViewStyle {
	return styles.DefaultChatViewStyle(styles.DefaultTokens())
}

func TestInputButtonStartsDisabled(t *testing.T) {
	b := NewInputButton(testBundle(), Callbacks{})
	if b.State() != Disabled {
		t.Errorf("initial state = %v, want Disabled", b.State())
	}
	if b.Err() != nil {
		t.Errorf("unexpected error: %v", b.Err())
	}
	if cmd := b.Activate(); cmd != nil {
		t.Error("disabled button must not produce a command")
	}
}

func TestInputButtonActivation(t *testing.T) {
	rec := &recordingCallbacks{}
	b := NewInputButton(testBundle(), rec.callbacks())

	b.SetState(CanSubmitPrompt)
	if cmd := b.Activate(); cmd != nil {
		// The recording callback returns a nil command; any non-nil
		// command here means the wrong callback ran.
		t.Errorf("Activate() = %v, want nil command", cmd)
	}
	if rec.fired != "submit" {
		t.Errorf("fired %q, want submit", rec.fired)
	}
}

func TestInputButtonActivationByKey(t *testing.T) {
	rec := &recordingCallbacks{}
	b := NewInputButton(testBundle(), rec.callbacks())
	b.SetState(CanStt)

	// Unfocused buttons ignore the activation key.
	b, _ = b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if rec.fired != "" {
		t.Errorf("unfocused button fired %q", rec.fired)
	}

	b.Focus()
	b, _ = b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if rec.fired != "start_recording" {
		t.Errorf("fired %q, want start_recording", rec.fired)
	}
}

func TestInputButtonProgressHasNoAction(t *testing.T) {
	rec := &recordingCallbacks{}
	b := NewInputButton(testBundle(), rec.callbacks())

	cmd := b.SetState(CanCancelStt)
	if cmd == nil {
		t.Error("entering the progress state should start the spinner")
	}
	if got := b.Activate(); got != nil {
		t.Error("progress state must not produce a command")
	}
	if rec.fired != "" {
		t.Errorf("no callback should fire, got %q", rec.fired)
	}
	if b.View() == "" {
		t.Error("progress state should render a spinner")
	}
}

func TestInputButtonSpinnerTickOnlyOnce(t *testing.T) {
	b := NewInputButton(testBundle(), Callbacks{})
	if cmd := b.SetState(CanCancelStt); cmd == nil {
		t.Fatal("first transition should return a tick command")
	}
	if cmd := b.SetState(CanCancelStt); cmd != nil {
		t.Error("re-entering the same progress state should not restart the spinner")
	}
}

func TestInputButtonViewPerState(t *testing.T) {
	tok := styles.DefaultTokens()
	b := NewInputButton(testBundle(), Callbacks{})

	tests := []struct {
		state InputState
		glyph string
	}{
		{CanSubmitPrompt, tok.Glyphs.Submit},
		{CanCancelPrompt, tok.Glyphs.Stop},
		{CanStt, tok.Glyphs.Mic},
		{IsRecording, tok.Glyphs.Stop},
		{Disabled, tok.Glyphs.Submit},
	}

	for _, tt := range tests {
		b.SetState(tt.state)
		if out := b.View(); !strings.Contains(out, tt.glyph) {
			t.Errorf("state %v rendered %q, want glyph %q", tt.state, out, tt.glyph)
		}
	}
}

func TestInputButtonSurfacesConfigError(t *testing.T) {
	broken := testBundle()
	broken.RecordButton = nil

	b := NewInputButton(broken, Callbacks{})
	b.SetState(CanStt)

	if b.Err() == nil {
		t.Fatal("expected a configuration error")
	}
	if !strings.Contains(b.Err().Error(), "RecordButton") {
		t.Errorf("error %q should name RecordButton", b.Err())
	}
	if out := b.View(); !strings.Contains(out, "RecordButton") {
		t.Errorf("view %q should surface the error", out)
	}
	if cmd := b.Activate(); cmd != nil {
		t.Error("misconfigured button must not produce a command")
	}
}

func TestInputButtonFocusState(t *testing.T) {
	b := NewInputButton(testBundle(), Callbacks{})
	if b.Focused() {
		t.Error("buttons start blurred")
	}
	b.Focus()
	if !b.Focused() {
		t.Error("Focus() should focus")
	}
	b.Blur()
	if b.Focused() {
		t.Error("Blur() should blur")
	}
}
