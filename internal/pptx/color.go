// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// theme holds the colour and font schemes of the presentation's first
// theme part.
type theme struct {
	colors    map[string]colorful.Color
	majorFont string
	minorFont string
}

// schemeAliases maps the mapping-relative names used in shapes to the
// theme's own slot names.
var schemeAliases = map[string]string{
	"tx1": "dk1",
	"bg1": "lt1",
	"tx2": "dk2",
	"bg2": "lt2",
}

// presetColors covers the prstClr values that show up in real decks.
var presetColors = map[string]string{
	"black":  "#000000",
	"white":  "#FFFFFF",
	"red":    "#FF0000",
	"green":  "#008000",
	"blue":   "#0000FF",
	"yellow": "#FFFF00",
	"gray":   "#808080",
}

func newTheme(x *xTheme) *theme {
	t := &theme{colors: map[string]colorful.Color{}}
	if x == nil {
		return t
	}
	for _, c := range x.Elements.ColorScheme.Colors {
		var hex string
		switch {
		case c.SrgbClr != nil:
			hex = c.SrgbClr.Val
		case c.SysClr != nil:
			hex = c.SysClr.LastClr
		}
		if col, ok := parseHex(hex); ok {
			t.colors[c.XMLName.Local] = col
		}
	}
	t.majorFont = x.Elements.FontScheme.Major.Latin.Typeface
	t.minorFont = x.Elements.FontScheme.Minor.Latin.Typeface
	return t
}

func parseHex(v string) (colorful.Color, bool) {
	if len(v) != 6 {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex("#" + v)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// font resolves theme font references such as "+mn-lt".
func (t *theme) font(typeface string) string {
	switch {
	case strings.HasPrefix(typeface, "+mj"):
		return t.majorFont
	case strings.HasPrefix(typeface, "+mn"):
		return t.minorFont
	default:
		return typeface
	}
}

// color resolves a colour choice to "#RRGGBB" and an opacity in (0, 1],
// where 1 means fully opaque. Unresolvable colours yield "".
func (t *theme) color(f *xSolidFill) (string, float64) {
	if f == nil {
		return "", 1
	}
	var (
		base colorful.Color
		ok   bool
		x    *xColor
	)
	switch {
	case f.SrgbClr != nil:
		x = f.SrgbClr
		base, ok = parseHex(x.Val)
	case f.SchemeClr != nil:
		x = f.SchemeClr
		name := x.Val
		if alias, found := schemeAliases[name]; found {
			name = alias
		}
		base, ok = t.colors[name]
	case f.SysClr != nil:
		x = f.SysClr
		base, ok = parseHex(x.LastClr)
	case f.PrstClr != nil:
		x = f.PrstClr
		if hex, found := presetColors[x.Val]; found {
			base, _ = colorful.Hex(hex)
			ok = true
		}
	}
	if !ok {
		return "", 1
	}
	c := applyModifiers(base, x)
	alpha := 1.0
	if x.Alpha != nil {
		alpha = percent(x.Alpha.Val)
	}
	return strings.ToUpper(c.Clamped().Hex()), alpha
}

// percent converts a DrawingML percentage (100000 = 100%) to a fraction.
func percent(v int) float64 {
	return float64(v) / 100000
}

// applyModifiers applies shade, tint and luminance transforms in that
// order.
func applyModifiers(c colorful.Color, x *xColor) colorful.Color {
	if x.Shade != nil {
		f := percent(x.Shade.Val)
		c = colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}
	}
	if x.Tint != nil {
		f := percent(x.Tint.Val)
		c = colorful.Color{R: c.R*f + 1 - f, G: c.G*f + 1 - f, B: c.B*f + 1 - f}
	}
	if x.LumMod != nil || x.LumOff != nil {
		h, s, l := c.Hsl()
		if x.LumMod != nil {
			l *= percent(x.LumMod.Val)
		}
		if x.LumOff != nil {
			l += percent(x.LumOff.Val)
		}
		l = min(max(l, 0), 1)
		c = colorful.Hsl(h, s, l)
	}
	return c
}
