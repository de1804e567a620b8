package styles

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
)

// ChatViewStyle bundles the button sub-styles the chat input control can
// reach, plus the color of the progress indicator shown while a
// transcription is finishing.
type ChatViewStyle struct {
	SubmitButton   *ActionButtonStyle
	StopButton     *ActionButtonStyle
	RecordButton   *ActionButtonStyle
	DisabledButton *ActionButtonStyle
	ProgressColor  lipgloss.TerminalColor
}

// DefaultChatViewStyle returns a fully-populated bundle built from the
// token set.
func DefaultChatViewStyle(tok Tokens) ChatViewStyle {
	submit := DefaultButtonStyle(ButtonSubmit, tok)
	stop := DefaultButtonStyle(ButtonStop, tok)
	record := DefaultButtonStyle(ButtonRecord, tok)
	disabled := DefaultButtonStyle(ButtonDisabled, tok)
	return ChatViewStyle{
		SubmitButton:   &submit,
		StopButton:     &stop,
		RecordButton:   &record,
		DisabledButton: &disabled,
		ProgressColor:  tok.IconDark,
	}
}

// ResolveChatViewStyle merges style over def sub-style by sub-style,
// applying Resolve to each button and falling back for the progress
// color. A nil style yields def unchanged.
func ResolveChatViewStyle(style *ChatViewStyle, def ChatViewStyle) ChatViewStyle {
	if style == nil {
		return def
	}
	submit := Resolve(style.SubmitButton, def.SubmitButton)
	stop := Resolve(style.StopButton, def.StopButton)
	record := Resolve(style.RecordButton, def.RecordButton)
	disabled := Resolve(style.DisabledButton, def.DisabledButton)
	merged := ChatViewStyle{
		SubmitButton:   &submit,
		StopButton:     &stop,
		RecordButton:   &record,
		DisabledButton: &disabled,
		ProgressColor:  style.ProgressColor,
	}
	if merged.ProgressColor == nil {
		merged.ProgressColor = def.ProgressColor
	}
	return merged
}

// Validate checks the bundle eagerly for every field a reachable input
// state needs, so misconfiguration surfaces when the bundle is assembled
// rather than as a fault mid-render.
func (s ChatViewStyle) Validate() error {
	var errs []error
	if s.SubmitButton == nil {
		errs = append(errs, errors.New("chat view style: SubmitButton is not set"))
	}
	if s.StopButton == nil {
		errs = append(errs, errors.New("chat view style: StopButton is not set"))
	}
	if s.RecordButton == nil {
		errs = append(errs, errors.New("chat view style: RecordButton is not set"))
	}
	if s.DisabledButton == nil {
		errs = append(errs, errors.New("chat view style: DisabledButton is not set"))
	}
	if s.ProgressColor == nil {
		errs = append(errs, errors.New("chat view style: ProgressColor is not set"))
	}
	return errors.Join(errs...)
}
