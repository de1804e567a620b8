package styles

import "github.com/charmbracelet/lipgloss"

// GlyphSet holds the icon glyphs used by the default presets, keyed by
// semantic role rather than by button type (several types share a glyph).
type GlyphSet struct {
	Add        string
	AttachFile string
	Camera     string
	Stop       string
	Close      string
	Copy       string
	Edit       string
	Image      string
	Mic        string
	Submit     string
}

// Tokens is the design-token set the default-style factory draws from.
// Passing it explicitly keeps the factory testable without any
// framework-initialized theme.
type Tokens struct {
	// Icon foreground colors.
	IconDark  lipgloss.TerminalColor
	IconLight lipgloss.TerminalColor

	// Button decoration fills.
	LightButtonBackground lipgloss.TerminalColor
	DarkButtonBackground  lipgloss.TerminalColor
	DisabledBackground    lipgloss.TerminalColor
	MenuBackground        lipgloss.TerminalColor
	Transparent           lipgloss.TerminalColor

	// Label text styles.
	Tooltip lipgloss.Style
	Body2   lipgloss.Style

	Glyphs GlyphSet
}

// DefaultTokens returns the stock token set.
func DefaultTokens() Tokens {
	return Tokens{
		IconDark:  lipgloss.Color("#1F2937"),
		IconLight: lipgloss.Color("#FFFFFF"),

		LightButtonBackground: lipgloss.Color("#E5E7EB"),
		DarkButtonBackground:  lipgloss.Color("#374151"),
		DisabledBackground:    lipgloss.Color("#9CA3AF"),
		MenuBackground:        lipgloss.Color("#6B7280"),
		Transparent:           lipgloss.NoColor{},

		Tooltip: lipgloss.NewStyle().Faint(true),
		Body2:   lipgloss.NewStyle(),

		Glyphs: GlyphSet{
			Add:        "✚",
			AttachFile: "📎",
			Camera:     "📷",
			Stop:       "■",
			Close:      "✕",
			Copy:       "⧉",
			Edit:       "✎",
			Image:      "🖼",
			Mic:        "🎤",
			Submit:     "➤",
		},
	}
}
