package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/okampo/chatkit/styles"
)

func TestChromeFollowsTokens(t *testing.T) {
	tok := styles.DefaultTokens()
	tok.DarkButtonBackground = lipgloss.Color("#101010")
	tok.MenuBackground = lipgloss.Color("#ABCDEF")

	c := newChrome(tok)

	if got := c.statusBar.GetBackground(); got != tok.DarkButtonBackground {
		t.Errorf("status bar background = %v, want %v", got, tok.DarkButtonBackground)
	}
	if got := c.statusBar.GetForeground(); got != tok.IconLight {
		t.Errorf("status bar foreground = %v, want %v", got, tok.IconLight)
	}
	if got := c.systemMsg.GetForeground(); got != tok.MenuBackground {
		t.Errorf("system message foreground = %v, want %v", got, tok.MenuBackground)
	}
	if got := c.separator.GetForeground(); got != tok.MenuBackground {
		t.Errorf("separator foreground = %v, want %v", got, tok.MenuBackground)
	}
}
