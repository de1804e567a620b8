package widget

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/okampo/chatkit/styles"
)

// RenderActionButton renders the icon-only form of an action button.
// The glyph is the style's custom override for tag when one exists,
// otherwise the default icon tinted with the icon color; the decoration
// is drawn as a filled, padded cell behind it.
func RenderActionButton(st styles.ActionButtonStyle, tag styles.ButtonType) string {
	glyph, isOverride := buttonGlyph(st, tag)
	if glyph == "" {
		return ""
	}

	inner := glyph
	if !isOverride && st.IconColor != nil {
		inner = lipgloss.NewStyle().Foreground(st.IconColor).Render(glyph)
	}

	if st.IconDecoration != nil {
		deco := lipgloss.NewStyle().Padding(0, 1)
		if st.IconDecoration.Background != nil {
			deco = deco.Background(st.IconDecoration.Background)
		}
		return deco.Render(inner)
	}
	return inner
}

// RenderActionButtonWithLabel renders the icon followed by the button's
// label, wrapping the label to width (0 disables wrapping).
func RenderActionButtonWithLabel(st styles.ActionButtonStyle, tag styles.ButtonType, width int) string {
	icon := RenderActionButton(st, tag)
	if st.Text == nil || *st.Text == "" {
		return icon
	}

	label := *st.Text
	if width > 0 {
		label = wordwrap.String(label, width)
	}
	if st.TextStyle != nil {
		label = st.TextStyle.Render(label)
	}
	if icon == "" {
		return label
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, icon, " ", label)
}

// buttonGlyph picks the glyph for a button: the custom override for tag
// when present (reported as an override, rendered as-is), else the
// default icon.
func buttonGlyph(st styles.ActionButtonStyle, tag styles.ButtonType) (glyph string, isOverride bool) {
	if o, ok := st.CustomIcons[tag]; ok {
		return o, true
	}
	if st.Icon != nil {
		return *st.Icon, false
	}
	return "", false
}
