package tui

import "fmt"

// statusLine renders the top status bar.
func (c chrome) statusLine(version, state string, width int) string {
	text := fmt.Sprintf("  chatkit %s - %s  ", version, state)
	return c.statusBar.Width(width).Render(text)
}
