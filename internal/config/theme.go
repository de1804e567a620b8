package config

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/okampo/chatkit/styles"
)

// Tokens builds the design-token set with the theme overrides applied.
func (c Config) Tokens() styles.Tokens {
	tok := styles.DefaultTokens()
	if c.Theme.IconDark != "" {
		tok.IconDark = lipgloss.Color(c.Theme.IconDark)
	}
	if c.Theme.IconLight != "" {
		tok.IconLight = lipgloss.Color(c.Theme.IconLight)
	}
	if c.Theme.LightButtonBg != "" {
		tok.LightButtonBackground = lipgloss.Color(c.Theme.LightButtonBg)
	}
	if c.Theme.DarkButtonBg != "" {
		tok.DarkButtonBackground = lipgloss.Color(c.Theme.DarkButtonBg)
	}
	if c.Theme.DisabledBg != "" {
		tok.DisabledBackground = lipgloss.Color(c.Theme.DisabledBg)
	}
	if c.Theme.MenuBg != "" {
		tok.MenuBackground = lipgloss.Color(c.Theme.MenuBg)
	}
	return tok
}

// ChatViewStyle assembles the validated style bundle the demo TUI hands
// to the input button: token-derived defaults, configured placement, and
// custom icon glyphs routed to the sub-style that owns each type.
func (c Config) ChatViewStyle() (styles.ChatViewStyle, error) {
	cs := styles.DefaultChatViewStyle(c.Tokens())

	prefix := c.Buttons.Placement == "prefix"
	for _, sub := range []*styles.ActionButtonStyle{cs.SubmitButton, cs.StopButton, cs.RecordButton, cs.DisabledButton} {
		sub.ShowAsPrefix = prefix
		sub.ShowAsSuffix = !prefix
	}

	for name, glyph := range c.Buttons.CustomIcons {
		tag, err := styles.ParseButtonType(name)
		if err != nil {
			return cs, err
		}
		var sub *styles.ActionButtonStyle
		switch tag {
		case styles.ButtonSubmit:
			sub = cs.SubmitButton
		case styles.ButtonStop:
			sub = cs.StopButton
		case styles.ButtonRecord:
			sub = cs.RecordButton
		case styles.ButtonDisabled:
			sub = cs.DisabledButton
		default:
			// Types the input control never reaches are accepted but
			// have no sub-style to land on.
			continue
		}
		if sub.CustomIcons == nil {
			sub.CustomIcons = make(map[styles.ButtonType]string)
		}
		sub.CustomIcons[tag] = glyph
	}

	if c.Theme.ProgressColor != "" {
		cs.ProgressColor = lipgloss.Color(c.Theme.ProgressColor)
	}

	if err := cs.Validate(); err != nil {
		return cs, err
	}
	return cs, nil
}
