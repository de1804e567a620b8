// Package styles defines the style model for chatkit widgets: immutable
// style value objects, a field-wise resolution merge, and the default
// preset table keyed by button type.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ButtonType identifies a button's semantic role. It is used as the key
// for default-style presets and custom-icon overrides.
type ButtonType int

const (
	ButtonAdd ButtonType = iota
	ButtonAttachFile
	ButtonCamera
	ButtonStop
	ButtonClose
	ButtonCancel
	ButtonCopy
	ButtonEdit
	ButtonGallery
	ButtonRecord
	ButtonSubmit
	ButtonDisabled
	ButtonCloseMenu
)

// buttonTypeNames maps each type to its canonical name. Order matches the
// constant declarations.
var buttonTypeNames = [...]string{
	ButtonAdd:        "add",
	ButtonAttachFile: "attach_file",
	ButtonCamera:     "camera",
	ButtonStop:       "stop",
	ButtonClose:      "close",
	ButtonCancel:     "cancel",
	ButtonCopy:       "copy",
	ButtonEdit:       "edit",
	ButtonGallery:    "gallery",
	ButtonRecord:     "record",
	ButtonSubmit:     "submit",
	ButtonDisabled:   "disabled",
	ButtonCloseMenu:  "close_menu",
}

// String returns the canonical name for the button type.
func (t ButtonType) String() string {
	if t < 0 || int(t) >= len(buttonTypeNames) {
		return "unknown"
	}
	return buttonTypeNames[t]
}

// ButtonTypes lists every button type in declaration order.
func ButtonTypes() []ButtonType {
	out := make([]ButtonType, len(buttonTypeNames))
	for i := range buttonTypeNames {
		out[i] = ButtonType(i)
	}
	return out
}

// ParseButtonType resolves a canonical name back to its button type.
func ParseButtonType(name string) (ButtonType, error) {
	for i, n := range buttonTypeNames {
		if n == name {
			return ButtonType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown button type %q", name)
}

// Shape identifies the outline drawn behind a button icon.
type Shape int

const (
	// ShapeCircle fills a circular area behind the icon. In terminal
	// rendering this becomes a padded cell with a background color.
	ShapeCircle Shape = iota
)

// Decoration describes the shape and fill drawn behind a button icon.
type Decoration struct {
	Shape      Shape
	Background lipgloss.TerminalColor
}

// CircleDecoration returns a circular decoration filled with bg.
func CircleDecoration(bg lipgloss.TerminalColor) *Decoration {
	return &Decoration{Shape: ShapeCircle, Background: bg}
}

// ActionButtonStyle describes the appearance of a single action button.
// Every field except the two placement booleans and CustomIcons is
// optional; absent fields are filled in by Resolve, never treated as an
// error. Values are never mutated after construction — a merge or
// reduction always produces a new value.
type ActionButtonStyle struct {
	// Icon is the glyph shown on the button.
	Icon *string

	// IconColor tints the icon glyph. nil means unset.
	IconColor lipgloss.TerminalColor

	// IconDecoration is the shape drawn behind the icon.
	IconDecoration *Decoration

	// Text is the button's label or tooltip. A present empty string is
	// distinct from an absent label.
	Text *string

	// TextStyle formats the label.
	TextStyle *lipgloss.Style

	// ShowAsPrefix and ShowAsSuffix control placement relative to the
	// host text field.
	ShowAsPrefix bool
	ShowAsSuffix bool

	// CustomIcons maps a button type to a pre-rendered glyph that
	// replaces the default icon for that type.
	CustomIcons map[ButtonType]string
}

// Resolve merges style over defaultStyle field by field: each field of the
// result is style's when present, defaultStyle's otherwise. A nil style
// yields defaultStyle unchanged. Pure and total; by convention
// defaultStyle is fully populated so the result has no gaps.
func Resolve(style, defaultStyle *ActionButtonStyle) ActionButtonStyle {
	if style == nil {
		if defaultStyle == nil {
			return ActionButtonStyle{}
		}
		return *defaultStyle
	}
	merged := *style
	if defaultStyle == nil {
		return merged
	}
	if merged.Icon == nil {
		merged.Icon = defaultStyle.Icon
	}
	if merged.IconColor == nil {
		merged.IconColor = defaultStyle.IconColor
	}
	if merged.IconDecoration == nil {
		merged.IconDecoration = defaultStyle.IconDecoration
	}
	if merged.Text == nil {
		merged.Text = defaultStyle.Text
	}
	if merged.TextStyle == nil {
		merged.TextStyle = defaultStyle.TextStyle
	}
	if len(merged.CustomIcons) == 0 {
		merged.CustomIcons = defaultStyle.CustomIcons
	}
	return merged
}
