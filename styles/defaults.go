package styles

import "github.com/charmbracelet/lipgloss"

// DefaultButtonStyle returns the fully-populated preset for a button
// type, built from the given token set. Pure and deterministic; the
// table below is the single source of truth for default appearance.
func DefaultButtonStyle(tag ButtonType, tok Tokens) ActionButtonStyle {
	type preset struct {
		icon  string
		color lipgloss.TerminalColor
		fill  lipgloss.TerminalColor
		label string
		text  lipgloss.Style
	}

	presets := map[ButtonType]preset{
		ButtonAdd:        {tok.Glyphs.Add, tok.IconDark, tok.LightButtonBackground, "Add Attachment", tok.Tooltip},
		ButtonAttachFile: {tok.Glyphs.AttachFile, tok.IconDark, tok.Transparent, "Attach File", tok.Body2},
		ButtonCamera:     {tok.Glyphs.Camera, tok.IconDark, tok.Transparent, "Take Photo", tok.Body2},
		ButtonStop:       {tok.Glyphs.Stop, tok.IconDark, tok.LightButtonBackground, "Stop", tok.Tooltip},
		ButtonClose:      {tok.Glyphs.Close, tok.IconLight, tok.DarkButtonBackground, "Close", tok.Tooltip},
		ButtonCancel:     {tok.Glyphs.Close, tok.IconLight, tok.DarkButtonBackground, "Cancel", tok.Tooltip},
		ButtonCopy:       {tok.Glyphs.Copy, tok.IconLight, tok.DarkButtonBackground, "Copy to Clipboard", tok.Tooltip},
		ButtonEdit:       {tok.Glyphs.Edit, tok.IconLight, tok.DarkButtonBackground, "Edit Message", tok.Tooltip},
		ButtonGallery:    {tok.Glyphs.Image, tok.IconDark, tok.Transparent, "Attach Image", tok.Body2},
		ButtonRecord:     {tok.Glyphs.Mic, tok.IconDark, tok.LightButtonBackground, "Record Audio", tok.Tooltip},
		ButtonSubmit:     {tok.Glyphs.Submit, tok.IconLight, tok.DarkButtonBackground, "Submit Message", tok.Tooltip},
		ButtonDisabled:   {tok.Glyphs.Submit, tok.IconDark, tok.DisabledBackground, "", tok.Tooltip},
		ButtonCloseMenu:  {tok.Glyphs.Close, tok.IconLight, tok.MenuBackground, "Close Menu", tok.Tooltip},
	}

	p, ok := presets[tag]
	if !ok {
		p = presets[ButtonDisabled]
	}

	icon := p.icon
	label := p.label
	text := p.text
	return ActionButtonStyle{
		Icon:           &icon,
		IconColor:      p.color,
		IconDecoration: CircleDecoration(p.fill),
		Text:           &label,
		TextStyle:      &text,
	}
}
