package widget

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okampo/chatkit/styles"
)

// Callbacks are the actions the input control can trigger. A nil entry
// is a no-op.
type Callbacks struct {
	OnSubmit         func() tea.Cmd
	OnCancel         func() tea.Cmd
	OnStartRecording func() tea.Cmd
	OnStopRecording  func() tea.Cmd
}

// PlanKind tags the two renderable outcomes of resolving an input state.
type PlanKind int

const (
	// PlanActionButton renders a generic action button.
	PlanActionButton PlanKind = iota
	// PlanProgress renders a progress indicator.
	PlanProgress
)

// RenderPlan is the resolved rendering decision for one input state:
// either an action button with a style, type tag and activation action,
// or a progress indicator with a color. Hosts pattern-match on Kind.
type RenderPlan struct {
	Kind PlanKind

	// Set when Kind is PlanActionButton.
	Style styles.ActionButtonStyle
	Tag   styles.ButtonType

	// Action is invoked on activation. nil means the state has no
	// action (Disabled and CanCancelStt never trigger a callback).
	Action func() tea.Cmd

	// Set when Kind is PlanProgress.
	ProgressColor lipgloss.TerminalColor
}

// planRow maps one input state to its sub-style, tag and callback.
type planRow struct {
	subStyle func(styles.ChatViewStyle) *styles.ActionButtonStyle
	field    string
	tag      styles.ButtonType
	action   func(Callbacks) func() tea.Cmd
}

// planRows is the per-state dispatch table. CanCancelStt is absent: it
// resolves to a progress indicator, not a button.
var planRows = map[InputState]planRow{
	CanSubmitPrompt: {
		subStyle: func(s styles.ChatViewStyle) *styles.ActionButtonStyle { return s.SubmitButton },
		field:    "SubmitButton",
		tag:      styles.ButtonSubmit,
		action:   func(c Callbacks) func() tea.Cmd { return c.OnSubmit },
	},
	CanCancelPrompt: {
		subStyle: func(s styles.ChatViewStyle) *styles.ActionButtonStyle { return s.StopButton },
		field:    "StopButton",
		tag:      styles.ButtonStop,
		action:   func(c Callbacks) func() tea.Cmd { return c.OnCancel },
	},
	CanStt: {
		subStyle: func(s styles.ChatViewStyle) *styles.ActionButtonStyle { return s.RecordButton },
		field:    "RecordButton",
		tag:      styles.ButtonRecord,
		action:   func(c Callbacks) func() tea.Cmd { return c.OnStartRecording },
	},
	IsRecording: {
		subStyle: func(s styles.ChatViewStyle) *styles.ActionButtonStyle { return s.StopButton },
		field:    "StopButton",
		tag:      styles.ButtonStop,
		action:   func(c Callbacks) func() tea.Cmd { return c.OnStopRecording },
	},
	Disabled: {
		subStyle: func(s styles.ChatViewStyle) *styles.ActionButtonStyle { return s.DisabledButton },
		field:    "DisabledButton",
		tag:      styles.ButtonDisabled,
		action:   func(Callbacks) func() tea.Cmd { return nil },
	},
}

// Plan resolves an input state against a style bundle into a render
// plan. A state whose sub-style (or progress color) is missing returns a
// descriptive configuration error instead of faulting at render time.
func Plan(state InputState, chatStyle styles.ChatViewStyle, cb Callbacks) (RenderPlan, error) {
	if state == CanCancelStt {
		if chatStyle.ProgressColor == nil {
			return RenderPlan{}, fmt.Errorf("input button: state %s needs ProgressColor, which is not set", state)
		}
		return RenderPlan{Kind: PlanProgress, ProgressColor: chatStyle.ProgressColor}, nil
	}

	row, ok := planRows[state]
	if !ok {
		return RenderPlan{}, fmt.Errorf("input button: unknown input state %d", state)
	}
	sub := row.subStyle(chatStyle)
	if sub == nil {
		return RenderPlan{}, fmt.Errorf("input button: state %s needs %s, which is not set", state, row.field)
	}

	return RenderPlan{
		Kind:   PlanActionButton,
		Style:  reduceForCustomIcon(*sub, row.tag),
		Tag:    row.tag,
		Action: row.action(cb),
	}, nil
}

// reduceForCustomIcon applies the custom-icon override: when the style's
// CustomIcons map contains the active tag, the result carries only the
// color, decoration, text and text style plus a single-entry map for that
// tag. The default icon is dropped so the override glyph is used instead.
// Styles without a matching override pass through unchanged.
func reduceForCustomIcon(st styles.ActionButtonStyle, tag styles.ButtonType) styles.ActionButtonStyle {
	override, ok := st.CustomIcons[tag]
	if !ok {
		return st
	}
	return styles.ActionButtonStyle{
		IconColor:      st.IconColor,
		IconDecoration: st.IconDecoration,
		Text:           st.Text,
		TextStyle:      st.TextStyle,
		CustomIcons:    map[styles.ButtonType]string{tag: override},
	}
}
