// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stylemap translates document-model styles into inline CSS
// declarations. Every function is pure and returns a possibly empty
// sequence of "property:value;" pairs. Unset attributes are omitted rather
// than rendered as defaults, so the browser's defaults apply.
package stylemap

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/deckhtml/pkg/types"
)

var (
	fontFamilySafeRe = regexp.MustCompile(`[^\p{L}\p{N} ,_-]+`)
	hexColorRe       = regexp.MustCompile(`^#[0-9a-fA-F]{3}([0-9a-fA-F]{3})?$`)
)

// sanitizeFontFamily strips characters that could break out of a CSS
// declaration inside a style attribute. Letters and digits of any script
// are kept so CJK and full-width family names survive.
func sanitizeFontFamily(s string) string {
	return strings.TrimSpace(fontFamilySafeRe.ReplaceAllString(s, ""))
}

// sanitizeColor returns s when it is a "#RGB" or "#RRGGBB" color and the
// empty string otherwise.
func sanitizeColor(s string) string {
	if hexColorRe.MatchString(s) {
		return s
	}
	return ""
}

// finite replaces NaN and infinities with zero.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// number formats v without trailing zeros ("12", "10.5").
func number(v float64) string {
	return strconv.FormatFloat(finite(v), 'f', -1, 64)
}

func writeColor(b *strings.Builder, prop, color string) {
	if c := sanitizeColor(color); c != "" {
		b.WriteString(prop)
		b.WriteByte(':')
		b.WriteString(c)
		b.WriteByte(';')
	}
}

func writeFont(b *strings.Builder, s *types.Style) {
	if f := sanitizeFontFamily(s.FontFamily); f != "" {
		fmt.Fprintf(b, "font-family:%s;", f)
	}
	if s.FontSize > 0 {
		fmt.Fprintf(b, "font-size:%spx;", number(s.FontSize))
	}
	writeColor(b, "color", s.FontColor)
}

// writeBorder emits the border shorthand when both a valid color and a
// positive width are set.
func writeBorder(b *strings.Builder, s *types.Style) {
	if s == nil || s.BorderWidth <= 0 {
		return
	}
	if c := sanitizeColor(s.BorderColor); c != "" {
		fmt.Fprintf(b, "border:%spx solid %s;", number(s.BorderWidth), c)
	}
}

func writeGeometry(b *strings.Builder, shape *types.Shape) {
	fmt.Fprintf(b, "left:%.2fpx;top:%.2fpx;width:%.2fpx;height:%.2fpx;",
		finite(shape.X), finite(shape.Y), finite(shape.Width), finite(shape.Height))
}

// Slide maps a slide background style.
func Slide(style *types.Style) string {
	if style == nil {
		return ""
	}
	var b strings.Builder
	writeColor(&b, "background-color", style.BackgroundColor)
	return b.String()
}

// Shape maps the container style of any shape. Position and size are
// always emitted since layout relies on absolute positioning.
func Shape(style *types.Style, shape *types.Shape) string {
	var b strings.Builder
	writeGeometry(&b, shape)
	if style == nil {
		return b.String()
	}
	writeColor(&b, "background-color", style.FillColor)
	writeBorder(&b, style)
	if style.Opacity > 0 && style.Opacity < 1 {
		fmt.Fprintf(&b, "opacity:%s;", number(style.Opacity))
	}
	if style.Alignment.Valid() {
		fmt.Fprintf(&b, "text-align:%s;", style.Alignment)
	}
	return b.String()
}

// Text maps a text run. The formatting flags apply even without a style,
// and a fixed line height and letter spacing are always appended.
func Text(style *types.Style, run *types.TextRun) string {
	var b strings.Builder
	if style != nil {
		writeFont(&b, style)
		writeColor(&b, "background-color", style.BackgroundColor)
	}
	if run.Bold {
		b.WriteString("font-weight:bold;")
	}
	if run.Italic {
		b.WriteString("font-style:italic;")
	}
	if run.Underlined {
		b.WriteString("text-decoration:underline;")
	}
	b.WriteString("line-height:1.5;letter-spacing:0.5px;")
	return b.String()
}

// Image maps an <img> element or its placeholder.
func Image(style *types.Style, shape *types.Shape) string {
	var b strings.Builder
	fmt.Fprintf(&b, "width:%.2fpx;height:%.2fpx;", finite(shape.Width), finite(shape.Height))
	b.WriteString("object-fit:contain;")
	writeBorder(&b, style)
	return b.String()
}

// Table maps a <table> element: the shape style plus its own background.
func Table(style *types.Style, shape *types.Shape) string {
	var b strings.Builder
	b.WriteString(Shape(style, shape))
	if style != nil {
		writeColor(&b, "background-color", style.BackgroundColor)
	}
	return b.String()
}

// Cell maps a table cell. A nil style yields no declarations at all.
func Cell(style *types.Style) string {
	if style == nil {
		return ""
	}
	var b strings.Builder
	writeFont(&b, style)
	writeColor(&b, "background-color", style.FillColor)
	writeBorder(&b, style)
	if style.Alignment.Valid() {
		fmt.Fprintf(&b, "text-align:%s;", style.Alignment)
	}
	b.WriteString("padding:8px 12px;vertical-align:middle;")
	return b.String()
}

// GenericForm is the CSS approximation chosen for a generic shape.
type GenericForm int

const (
	FormRectangle GenericForm = iota
	FormEllipse
	FormArrow
)

// ClassifyShapeType picks the CSS approximation for a free-form shape type.
// Arrows take precedence over rounded forms.
func ClassifyShapeType(shapeType string) GenericForm {
	st := strings.ToUpper(shapeType)
	switch {
	case strings.Contains(st, "ARROW"):
		return FormArrow
	case strings.Contains(st, "ROUND"), strings.Contains(st, "OVAL"), strings.Contains(st, "ELLIPSE"):
		return FormEllipse
	default:
		return FormRectangle
	}
}

// Generic maps a drawn shape. Arrows become a zero-size border triangle
// pointing up, rounded shapes get a full border radius and everything else
// is a filled rectangle. The border declaration comes last.
func Generic(style *types.Style, shape *types.Shape) string {
	var shapeType string
	if g, ok := shape.Content.(types.Generic); ok {
		shapeType = g.ShapeType
	}
	var b strings.Builder
	writeGeometry(&b, shape)
	if style == nil {
		return b.String()
	}
	switch ClassifyShapeType(shapeType) {
	case FormArrow:
		half := finite(shape.Width) / 2
		fmt.Fprintf(&b, "width:0;height:0;border-style:solid;border-width:0 %.2fpx %.2fpx %.2fpx;",
			half, finite(shape.Height), half)
		if c := sanitizeColor(style.FillColor); c != "" {
			fmt.Fprintf(&b, "border-color:transparent transparent %s transparent;", c)
		}
	case FormEllipse:
		writeColor(&b, "background-color", style.FillColor)
		b.WriteString("border-radius:50%;")
	default:
		writeColor(&b, "background-color", style.FillColor)
	}
	writeBorder(&b, style)
	return b.String()
}
