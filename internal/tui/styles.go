package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/okampo/chatkit/styles"
)

// Demo-only accents. Everything else derives from the widget token set
// so a theme override in config.yaml restyles the chrome and the
// buttons together.
var (
	userAccent  = lipgloss.Color("#5B8DEF")
	replyAccent = lipgloss.Color("#2FB380")
)

// chrome holds the demo's surrounding styles, built from the same
// tokens the input button draws from.
type chrome struct {
	statusBar   lipgloss.Style
	userLabel   lipgloss.Style
	replyLabel  lipgloss.Style
	systemMsg   lipgloss.Style
	inputPrompt lipgloss.Style
	separator   lipgloss.Style
}

func newChrome(tok styles.Tokens) chrome {
	return chrome{
		statusBar: lipgloss.NewStyle().
			Background(tok.DarkButtonBackground).
			Foreground(tok.IconLight).
			Padding(0, 1),

		userLabel: lipgloss.NewStyle().
			Foreground(userAccent).
			Bold(true),

		replyLabel: lipgloss.NewStyle().
			Foreground(replyAccent).
			Bold(true),

		systemMsg: lipgloss.NewStyle().
			Foreground(tok.MenuBackground).
			Italic(true),

		inputPrompt: lipgloss.NewStyle().
			Foreground(userAccent),

		separator: lipgloss.NewStyle().
			Foreground(tok.MenuBackground),
	}
}
