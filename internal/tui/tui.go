package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/okampo/chatkit/internal/update"
	"github.com/okampo/chatkit/styles"
	"github.com/okampo/chatkit/widget"
)

// Options configures the demo TUI.
type Options struct {
	ChatStyle    styles.ChatViewStyle
	Tokens       styles.Tokens // zero value falls back to DefaultTokens
	Version      string
	UpdateCheck  bool
	StreamPace   time.Duration // delay between streamed chunks; 0 = default
	TranscribeIn time.Duration // simulated transcription time; 0 = default
}

// submitRequestedMsg is emitted by the input button's submit callback.
type submitRequestedMsg struct{}

// cancelRequestedMsg is emitted by the input button's cancel callback.
type cancelRequestedMsg struct{}

// recordStartMsg is emitted when recording should begin.
type recordStartMsg struct{}

// recordStopMsg is emitted when recording should end.
type recordStopMsg struct{}

// streamTickMsg delivers the next chunk of the simulated response.
type streamTickMsg struct{}

// transcriptDoneMsg signals the simulated transcription finished.
type transcriptDoneMsg struct{}

// UpdateCheckMsg carries the result of a background update check.
type UpdateCheckMsg struct {
	Result *update.Result
	Err    error
}

// UpdateApplyMsg carries the result of an update apply.
type UpdateApplyMsg struct {
	Result *update.Result
	Err    error
}

// Model is the Bubble Tea model for the widget demo.
type Model struct {
	options  Options
	viewport viewport.Model
	textarea textarea.Model
	button   *widget.InputButton
	messages []displayMessage
	width    int
	height   int

	streaming     bool
	streamContent string
	pending       []string
	replyIdx      int

	recording    bool
	transcribing bool
	updating     bool

	// forcedState pins the button to one state via /state, overriding
	// the derived one; nil means derive normally.
	forcedState *widget.InputState

	chrome     chrome
	mdRenderer *glamour.TermRenderer
	ready      bool
	quitting   bool
}

type displayMessage struct {
	role    string
	content string
}

// New creates a new demo TUI model.
func New(opts Options) Model {
	if opts.Tokens.IconDark == nil {
		opts.Tokens = styles.DefaultTokens()
	}
	ui := newChrome(opts.Tokens)

	ta := textarea.New()
	ta.Placeholder = "Type a message... (Alt+Enter for newline)"
	ta.Focus()
	ta.CharLimit = 4096
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.Prompt = ui.inputPrompt.Render("> ")

	vp := viewport.New(80, 20)

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)

	if opts.StreamPace <= 0 {
		opts.StreamPace = 60 * time.Millisecond
	}
	if opts.TranscribeIn <= 0 {
		opts.TranscribeIn = 1200 * time.Millisecond
	}

	m := Model{
		options:    opts,
		textarea:   ta,
		viewport:   vp,
		chrome:     ui,
		mdRenderer: renderer,
	}

	m.button = widget.NewInputButton(opts.ChatStyle, widget.Callbacks{
		OnSubmit:         func() tea.Cmd { return emit(submitRequestedMsg{}) },
		OnCancel:         func() tea.Cmd { return emit(cancelRequestedMsg{}) },
		OnStartRecording: func() tea.Cmd { return emit(recordStartMsg{}) },
		OnStopRecording:  func() tea.Cmd { return emit(recordStopMsg{}) },
	})
	m.syncButton()
	return m
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// syncButton derives the input state from the model and pushes it to the
// button. The returned command starts the progress spinner when needed.
func (m *Model) syncButton() tea.Cmd {
	state := widget.CanSubmitPrompt
	switch {
	case m.forcedState != nil:
		state = *m.forcedState
	case m.updating:
		state = widget.Disabled
	case m.transcribing:
		state = widget.CanCancelStt
	case m.recording:
		state = widget.IsRecording
	case m.streaming:
		state = widget.CanCancelPrompt
	case strings.TrimSpace(m.textarea.Value()) == "":
		state = widget.CanStt
	}
	return m.button.SetState(state)
}

// Update always returns *Model so callers can rely on one dynamic type
// regardless of which branch handled the message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return &m, tea.Quit

		case tea.KeyEsc:
			if m.button.State() == widget.CanCancelPrompt {
				return &m, m.button.Activate()
			}

		case tea.KeyCtrlR:
			switch m.button.State() {
			case widget.CanStt, widget.IsRecording:
				return &m, m.button.Activate()
			}
			return &m, nil

		case tea.KeyEnter:
			if msg.Alt {
				m.textarea.InsertString("\n")
				return &m, nil
			}
			return m.handleSubmit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		statusH := 1
		inputH := 3
		viewH := m.height - statusH - inputH
		if viewH < 1 {
			viewH = 1
		}
		m.viewport.Width = m.width
		m.viewport.Height = viewH
		m.textarea.SetWidth(m.width - 8)

		if !m.ready {
			m.ready = true
			m.messages = append(m.messages, displayMessage{
				role:    "system",
				content: "chatkit widget demo. Type /help for commands.",
			})
			m.updateViewport()
			if m.options.UpdateCheck && m.options.Version != "" && m.options.Version != "dev" {
				return &m, m.checkForUpdate()
			}
		}
		m.updateViewport()

	case submitRequestedMsg:
		return m.startStream()

	case cancelRequestedMsg:
		if m.streaming {
			m.streaming = false
			m.pending = nil
			if m.streamContent != "" {
				m.messages = append(m.messages, displayMessage{role: "assistant", content: m.streamContent})
				m.streamContent = ""
			}
			m.messages = append(m.messages, displayMessage{role: "system", content: "Response cancelled."})
			cmds = append(cmds, m.syncButton())
			m.updateViewport()
		}
		return &m, tea.Batch(cmds...)

	case recordStartMsg:
		m.recording = true
		m.messages = append(m.messages, displayMessage{
			role:    "system",
			content: "Recording... press Ctrl+R to stop.",
		})
		cmds = append(cmds, m.syncButton())
		m.updateViewport()
		return &m, tea.Batch(cmds...)

	case recordStopMsg:
		m.recording = false
		m.transcribing = true
		cmds = append(cmds, m.syncButton())
		cmds = append(cmds, tea.Tick(m.options.TranscribeIn, func(time.Time) tea.Msg {
			return transcriptDoneMsg{}
		}))
		m.updateViewport()
		return &m, tea.Batch(cmds...)

	case transcriptDoneMsg:
		m.transcribing = false
		m.textarea.InsertString("What does the record button do?")
		cmds = append(cmds, m.syncButton())
		m.updateViewport()
		return &m, tea.Batch(cmds...)

	case streamTickMsg:
		if !m.streaming {
			return &m, nil
		}
		if len(m.pending) == 0 {
			m.streaming = false
			m.messages = append(m.messages, displayMessage{role: "assistant", content: m.streamContent})
			m.streamContent = ""
			cmds = append(cmds, m.syncButton())
			m.updateViewport()
			return &m, tea.Batch(cmds...)
		}
		m.streamContent += m.pending[0]
		m.pending = m.pending[1:]
		m.updateViewport()
		return &m, m.scheduleChunk()

	case UpdateCheckMsg:
		if msg.Err == nil && msg.Result != nil && msg.Result.UpdateAvailable {
			m.messages = append(m.messages, displayMessage{
				role:    "system",
				content: fmt.Sprintf("Update available: v%s → v%s. Run /update to upgrade.", msg.Result.CurrentVersion, msg.Result.LatestVersion),
			})
			m.updateViewport()
		}
		return &m, nil

	case UpdateApplyMsg:
		m.updating = false
		cmds = append(cmds, m.syncButton())
		switch {
		case msg.Err != nil:
			m.messages = append(m.messages, displayMessage{
				role:    "system",
				content: fmt.Sprintf("Update failed: %v", msg.Err),
			})
		case msg.Result != nil && msg.Result.Applied:
			m.messages = append(m.messages, displayMessage{
				role:    "system",
				content: fmt.Sprintf("Updated to v%s. Restart chatkit to use the new version.", msg.Result.LatestVersion),
			})
		default:
			m.messages = append(m.messages, displayMessage{
				role:    "system",
				content: "Already running the latest version.",
			})
		}
		m.updateViewport()
		return &m, tea.Batch(cmds...)
	}

	// The button owns the progress spinner.
	var btnCmd tea.Cmd
	m.button, btnCmd = m.button.Update(msg)
	cmds = append(cmds, btnCmd)

	// Update textarea while idle; the derived state may change as the
	// user types (empty input shows the record button).
	if !m.streaming && !m.recording && !m.transcribing {
		var taCmd tea.Cmd
		m.textarea, taCmd = m.textarea.Update(msg)
		cmds = append(cmds, taCmd, m.syncButton())
	}

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	cmds = append(cmds, vpCmd)

	return &m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if !m.ready {
		return "Initializing..."
	}

	status := m.chrome.statusLine(m.options.Version, m.button.State().String(), m.width)
	separator := m.chrome.separator.
		Width(m.width).
		Render(strings.Repeat("─", m.width))

	return fmt.Sprintf("%s\n%s\n%s\n%s",
		status,
		m.viewport.View(),
		separator,
		m.inputRow(),
	)
}

// inputRow composes the text field and the input button per the active
// style's placement flags.
func (m Model) inputRow() string {
	btn := m.button.View()
	ta := m.textarea.View()
	if btn == "" {
		return ta
	}
	if m.buttonAsPrefix() {
		return lipgloss.JoinHorizontal(lipgloss.Top, btn, " ", ta)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, ta, " ", btn)
}

// buttonAsPrefix reads placement off the configured bundle. The plan's
// style cannot be used here: with a custom icon it carries only the
// override fields, and placement is not one of them.
func (m Model) buttonAsPrefix() bool {
	var sub *styles.ActionButtonStyle
	switch m.button.State() {
	case widget.CanSubmitPrompt:
		sub = m.options.ChatStyle.SubmitButton
	case widget.CanCancelPrompt, widget.IsRecording:
		sub = m.options.ChatStyle.StopButton
	case widget.CanStt:
		sub = m.options.ChatStyle.RecordButton
	case widget.Disabled:
		sub = m.options.ChatStyle.DisabledButton
	}
	return sub != nil && sub.ShowAsPrefix
}

func (m *Model) handleSubmit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textarea.Value())
	if input == "" {
		return m, nil
	}

	if cmd := ParseCommand(input); cmd != nil {
		m.textarea.Reset()
		return m.handleCommand(cmd)
	}

	if m.button.State() != widget.CanSubmitPrompt {
		return m, nil
	}
	return m, m.button.Activate()
}

// startStream appends the user message and begins streaming the next
// canned reply.
func (m *Model) startStream() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textarea.Value())
	if input == "" {
		return m, nil
	}
	m.textarea.Reset()

	m.messages = append(m.messages, displayMessage{role: "user", content: input})

	reply := cannedReplies[m.replyIdx%len(cannedReplies)]
	m.replyIdx++

	m.streaming = true
	m.streamContent = ""
	m.pending = replyChunks(reply)
	m.updateViewport()

	return m, tea.Batch(m.syncButton(), m.scheduleChunk())
}

func (m *Model) scheduleChunk() tea.Cmd {
	return tea.Tick(m.options.StreamPace, func(time.Time) tea.Msg {
		return streamTickMsg{}
	})
}

func (m *Model) renderMarkdown(content string) string {
	if m.mdRenderer == nil {
		return content
	}
	rendered, err := m.mdRenderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(rendered)
}

func (m *Model) updateViewport() {
	var lines []string
	for _, msg := range m.messages {
		switch msg.role {
		case "user":
			label := m.chrome.userLabel.Render("You: ")
			lines = append(lines, lipgloss.NewStyle().Width(m.width).Render(label+msg.content))
		case "assistant":
			label := m.chrome.replyLabel.Render("Demo: ")
			lines = append(lines, label+m.renderMarkdown(msg.content))
		case "system":
			lines = append(lines, m.chrome.systemMsg.Render(msg.content))
		}
		lines = append(lines, "")
	}

	// Streaming content renders raw for speed; markdown waits for the
	// full message.
	if m.streaming && m.streamContent != "" {
		label := m.chrome.replyLabel.Render("Demo: ")
		lines = append(lines, lipgloss.NewStyle().Width(m.width).Render(label+m.streamContent+"▌"))
		lines = append(lines, "")
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) checkForUpdate() tea.Cmd {
	version := m.options.Version
	return func() tea.Msg {
		res, err := update.Check(context.Background(), version)
		return UpdateCheckMsg{Result: res, Err: err}
	}
}

func (m *Model) applyUpdate() tea.Cmd {
	version := m.options.Version
	return func() tea.Msg {
		res, err := update.Apply(context.Background(), version)
		return UpdateApplyMsg{Result: res, Err: err}
	}
}

// lastAssistantMessage returns the most recent assistant reply, or "".
func (m *Model) lastAssistantMessage() string {
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].role == "assistant" {
			return m.messages[i].content
		}
	}
	return ""
}
