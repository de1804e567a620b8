package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okampo/chatkit/widget"
)

func (m *Model) handleCommand(cmd *Command) (tea.Model, tea.Cmd) {
	switch cmd.Name {
	case "help":
		return m.systemMessage(HelpText())

	case "quit", "exit", "bye":
		m.quitting = true
		return m, tea.Quit

	case "clear":
		m.messages = nil
		m.updateViewport()
		return m, nil

	case "copy":
		return m.handleCopy()

	case "state":
		return m.handleState(cmd.Args)

	case "update":
		return m.handleUpdate()

	default:
		return m.systemMessage(fmt.Sprintf("Unknown command: /%s (try /help)", cmd.Name))
	}
}

func (m *Model) handleCopy() (tea.Model, tea.Cmd) {
	last := m.lastAssistantMessage()
	if last == "" {
		return m.systemMessage("Nothing to copy yet.")
	}
	if err := clipboard.WriteAll(last); err != nil {
		return m.systemMessage(fmt.Sprintf("Copy failed: %v", err))
	}
	return m.systemMessage("Copied the last reply to the clipboard.")
}

// handleState pins the input button to a named state so every appearance
// can be inspected; an empty argument unpins it.
func (m *Model) handleState(args string) (tea.Model, tea.Cmd) {
	if args == "" {
		m.forcedState = nil
		cmd := m.syncButton()
		newM, msgCmd := m.systemMessage("Unpinned; the button follows the input again.")
		return newM, tea.Batch(cmd, msgCmd)
	}

	for _, s := range widget.InputStates() {
		if s.String() == args {
			s := s
			m.forcedState = &s
			cmd := m.syncButton()
			newM, msgCmd := m.systemMessage(fmt.Sprintf("Pinned the button to %s.", s))
			return newM, tea.Batch(cmd, msgCmd)
		}
	}
	return m.systemMessage(fmt.Sprintf("Unknown state %q (see /help).", args))
}

func (m *Model) handleUpdate() (tea.Model, tea.Cmd) {
	if m.options.Version == "" || m.options.Version == "dev" {
		return m.systemMessage("Auto-update is not available for development builds.")
	}
	m.updating = true
	syncCmd := m.syncButton()
	newM, msgCmd := m.systemMessage("Checking for updates...")
	return newM, tea.Batch(syncCmd, msgCmd, m.applyUpdate())
}

func (m *Model) systemMessage(content string) (tea.Model, tea.Cmd) {
	m.messages = append(m.messages, displayMessage{role: "system", content: content})
	m.updateViewport()
	return m, nil
}
