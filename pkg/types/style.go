// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Alignment is the horizontal text alignment of a shape or table cell.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// Valid reports whether a is one of the four known alignments.
func (a Alignment) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight, AlignJustify:
		return true
	}
	return false
}

// Style is an optional bundle of visual attributes attached to a slide,
// shape, text run or table cell. The zero value of every field means
// "unset": empty strings are omitted from the rendered CSS and numeric
// fields only take effect when positive. An Opacity of zero is therefore
// indistinguishable from an unset opacity.
//
// Colors are "#RRGGBB" strings. Sizes are in pixels.
type Style struct {
	FontFamily      string    `json:"font_family,omitempty" yaml:"font_family,omitempty"`
	FontSize        float64   `json:"font_size,omitempty" yaml:"font_size,omitempty"`
	FontColor       string    `json:"font_color,omitempty" yaml:"font_color,omitempty"`
	BackgroundColor string    `json:"background_color,omitempty" yaml:"background_color,omitempty"`
	BorderColor     string    `json:"border_color,omitempty" yaml:"border_color,omitempty"`
	FillColor       string    `json:"fill_color,omitempty" yaml:"fill_color,omitempty"`
	BorderWidth     float64   `json:"border_width,omitempty" yaml:"border_width,omitempty"`
	Alignment       Alignment `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	Opacity         float64   `json:"opacity,omitempty" yaml:"opacity,omitempty"`
}

// HasBorder reports whether both a border color and a positive width are set.
func (s *Style) HasBorder() bool {
	return s != nil && s.BorderColor != "" && s.BorderWidth > 0
}

// HasFill reports whether a fill color is set.
func (s *Style) HasFill() bool {
	return s != nil && s.FillColor != ""
}

// IsZero reports whether no attribute is set.
func (s *Style) IsZero() bool {
	return s == nil || *s == Style{}
}
