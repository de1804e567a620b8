package widget

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okampo/chatkit/styles"
)

// errStyle marks a misconfigured button in the rendered output instead
// of letting the fault surface as a crash.
var errStyle = lipgloss.NewStyle().Faint(true)

// InputButton is the stateful action button of a chat input control. It
// maps the current input state to the right appearance and activation
// action, showing a progress indicator while a transcription finishes.
type InputButton struct {
	chatStyle styles.ChatViewStyle
	callbacks Callbacks
	state     InputState
	plan      RenderPlan
	err       error
	spinner   spinner.Model
	focused   bool
}

// NewInputButton creates an input button over a style bundle. The button
// starts in the Disabled state; hosts drive it with SetState.
func NewInputButton(chatStyle styles.ChatViewStyle, cb Callbacks) *InputButton {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	b := &InputButton{
		chatStyle: chatStyle,
		callbacks: cb,
		spinner:   sp,
	}
	b.apply(Disabled)
	return b
}

// Init satisfies the component convention; the spinner starts ticking
// when the state first needs it.
func (b *InputButton) Init() tea.Cmd {
	return nil
}

// SetState re-resolves the render plan for the new input state. The
// returned command starts the progress spinner when the state needs one.
func (b *InputButton) SetState(s InputState) tea.Cmd {
	wasProgress := b.err == nil && b.plan.Kind == PlanProgress
	b.apply(s)
	if b.err == nil && b.plan.Kind == PlanProgress && !wasProgress {
		return b.spinner.Tick
	}
	return nil
}

func (b *InputButton) apply(s InputState) {
	b.state = s
	b.plan, b.err = Plan(s, b.chatStyle, b.callbacks)
	if b.err == nil && b.plan.Kind == PlanProgress {
		b.spinner.Style = lipgloss.NewStyle().Foreground(b.plan.ProgressColor)
	}
}

// State returns the current input state.
func (b *InputButton) State() InputState {
	return b.state
}

// Plan returns the resolved render plan, for hosts that compose the
// button into a larger layout (placement flags live on the plan style).
func (b *InputButton) Plan() RenderPlan {
	return b.plan
}

// Err reports a configuration error from the last state change, if any.
func (b *InputButton) Err() error {
	return b.err
}

// Focus makes the button respond to the activation key.
func (b *InputButton) Focus() {
	b.focused = true
}

// Blur stops the button from responding to the activation key.
func (b *InputButton) Blur() {
	b.focused = false
}

// Focused reports whether the button has focus.
func (b *InputButton) Focused() bool {
	return b.focused
}

// Activate triggers the current plan's action. States without an action
// (Disabled, CanCancelStt) and misconfigured buttons return nil.
func (b *InputButton) Activate() tea.Cmd {
	if b.err != nil || b.plan.Action == nil {
		return nil
	}
	return b.plan.Action()
}

// Update advances the spinner and handles the activation key when the
// button is focused.
func (b *InputButton) Update(msg tea.Msg) (*InputButton, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if b.err == nil && b.plan.Kind == PlanProgress {
			var cmd tea.Cmd
			b.spinner, cmd = b.spinner.Update(msg)
			return b, cmd
		}

	case tea.KeyMsg:
		if b.focused && msg.Type == tea.KeyEnter {
			return b, b.Activate()
		}
	}
	return b, nil
}

// View renders the current plan: the action button, the progress
// spinner, or a developer-facing marker when the bundle is misconfigured.
func (b *InputButton) View() string {
	if b.err != nil {
		return errStyle.Render("[" + b.err.Error() + "]")
	}
	if b.plan.Kind == PlanProgress {
		return b.spinner.View()
	}
	return RenderActionButton(b.plan.Style, b.plan.Tag)
}
