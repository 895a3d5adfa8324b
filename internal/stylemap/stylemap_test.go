// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stylemap

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/deckhtml/pkg/types"
)

// declRe matches a well-formed sequence of property:value; pairs.
var declRe = regexp.MustCompile(`^([a-z-]+:[^:;]+;)*$`)

func testShape() *types.Shape {
	return &types.Shape{ID: "7", X: 10, Y: 20.5, Width: 300.123, Height: 40}
}

func TestMappers_EmptyStyle(t *testing.T) {
	shape := testShape()
	run := &types.TextRun{Text: "x"}
	empty := &types.Style{}

	outputs := map[string]string{
		"slide nil":     Slide(nil),
		"slide empty":   Slide(empty),
		"shape nil":     Shape(nil, shape),
		"shape empty":   Shape(empty, shape),
		"text nil":      Text(nil, run),
		"text empty":    Text(empty, run),
		"image nil":     Image(nil, shape),
		"image empty":   Image(empty, shape),
		"table nil":     Table(nil, shape),
		"table empty":   Table(empty, shape),
		"cell nil":      Cell(nil),
		"cell empty":    Cell(empty),
		"generic nil":   Generic(nil, shape),
		"generic empty": Generic(empty, shape),
	}
	for name, out := range outputs {
		t.Run(name, func(t *testing.T) {
			assert.NotContains(t, out, "null")
			assert.NotContains(t, out, "<nil>")
			assert.NotContains(t, out, "NaN")
			assert.Regexp(t, declRe, out)
		})
	}
}

func TestShape_Geometry(t *testing.T) {
	got := Shape(nil, testShape())
	assert.Equal(t, "left:10.00px;top:20.50px;width:300.12px;height:40.00px;", got)
}

func TestShape_FillBorderOpacityAlignment(t *testing.T) {
	tests := []struct {
		name    string
		style   *types.Style
		want    []string
		notWant []string
	}{
		{
			name:  "fill and border",
			style: &types.Style{FillColor: "#FF0000", BorderColor: "#000000", BorderWidth: 2},
			want:  []string{"background-color:#FF0000;", "border:2px solid #000000;"},
		},
		{
			name:    "border color without width",
			style:   &types.Style{BorderColor: "#000000"},
			notWant: []string{"border"},
		},
		{
			name:    "border width without color",
			style:   &types.Style{BorderWidth: 3},
			notWant: []string{"border"},
		},
		{
			name:    "invalid color dropped",
			style:   &types.Style{FillColor: "red;position:fixed"},
			notWant: []string{"background-color", "position:fixed"},
		},
		{
			name:  "partial opacity",
			style: &types.Style{Opacity: 0.5},
			want:  []string{"opacity:0.5;"},
		},
		{
			name:    "zero opacity is unset",
			style:   &types.Style{Opacity: 0},
			notWant: []string{"opacity"},
		},
		{
			name:    "full opacity omitted",
			style:   &types.Style{Opacity: 1},
			notWant: []string{"opacity"},
		},
		{
			name:  "alignment",
			style: &types.Style{Alignment: types.AlignCenter},
			want:  []string{"text-align:center;"},
		},
		{
			name:    "unknown alignment dropped",
			style:   &types.Style{Alignment: "middle"},
			notWant: []string{"text-align"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shape(tt.style, testShape())
			assert.True(t, strings.HasPrefix(got, "left:10.00px;"), got)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, got, nw)
			}
		})
	}
}

func TestText(t *testing.T) {
	style := &types.Style{
		FontFamily:      "Calibri Light",
		FontSize:        18.5,
		FontColor:       "#112233",
		BackgroundColor: "#FFFF00",
	}
	run := &types.TextRun{Bold: true, Italic: true, Underlined: true}

	got := Text(style, run)
	assert.Equal(t,
		"font-family:Calibri Light;font-size:18.5px;color:#112233;background-color:#FFFF00;"+
			"font-weight:bold;font-style:italic;text-decoration:underline;"+
			"line-height:1.5;letter-spacing:0.5px;",
		got)

	plain := Text(nil, &types.TextRun{})
	assert.Equal(t, "line-height:1.5;letter-spacing:0.5px;", plain)

	flagsOnly := Text(nil, &types.TextRun{Bold: true})
	assert.Equal(t, "font-weight:bold;line-height:1.5;letter-spacing:0.5px;", flagsOnly)
}

func TestText_SanitizesFontFamily(t *testing.T) {
	got := Text(&types.Style{FontFamily: `Arial";}body{x:1`}, &types.TextRun{})
	assert.Contains(t, got, "font-family:Arialbodyx1;")
	assert.NotContains(t, got, `"`)
	assert.NotContains(t, got, "{")
}

func TestFontFamily_KeepsNonLatinNames(t *testing.T) {
	tests := []struct {
		name   string
		family string
		want   string
	}{
		{name: "simplified chinese", family: "微软雅黑", want: "微软雅黑"},
		{name: "full-width japanese", family: "ＭＳ ゴシック", want: "ＭＳ ゴシック"},
		{name: "korean with fallback", family: "맑은 고딕, sans-serif", want: "맑은 고딕, sans-serif"},
		{name: "accented latin", family: "Français", want: "Français"},
		{name: "cjk with injection", family: `宋体";}x{`, want: "宋体x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := &types.Style{FontFamily: tt.family}
			assert.Contains(t, Text(style, &types.TextRun{}), "font-family:"+tt.want+";")
			assert.Contains(t, Cell(style), "font-family:"+tt.want+";")
		})
	}
}

func TestImage(t *testing.T) {
	got := Image(&types.Style{BorderColor: "#ABCDEF", BorderWidth: 1, FillColor: "#000000"}, testShape())
	assert.Equal(t, "width:300.12px;height:40.00px;object-fit:contain;border:1px solid #ABCDEF;", got)
}

func TestTableAndCell(t *testing.T) {
	table := Table(&types.Style{BackgroundColor: "#EEEEEE"}, testShape())
	assert.True(t, strings.HasPrefix(table, "left:10.00px;"))
	assert.True(t, strings.HasSuffix(table, "background-color:#EEEEEE;"))

	cell := Cell(&types.Style{
		FontSize:    12,
		FillColor:   "#4472C4",
		BorderColor: "#FFFFFF",
		BorderWidth: 1,
		Alignment:   types.AlignRight,
	})
	assert.Equal(t,
		"font-size:12px;background-color:#4472C4;border:1px solid #FFFFFF;text-align:right;"+
			"padding:8px 12px;vertical-align:middle;",
		cell)

	assert.Equal(t, "padding:8px 12px;vertical-align:middle;", Cell(&types.Style{}))
	assert.Empty(t, Cell(nil))
}

func TestClassifyShapeType(t *testing.T) {
	tests := []struct {
		shapeType string
		want      GenericForm
	}{
		{"RIGHT_ARROW", FormArrow},
		{"ROUND_RECT", FormEllipse},
		{"OVAL", FormEllipse},
		{"ELLIPSE", FormEllipse},
		{"ROUND_ARROW", FormArrow},
		{"RECT", FormRectangle},
		{"", FormRectangle},
		{"leftArrow", FormArrow},
	}
	for _, tt := range tests {
		t.Run(tt.shapeType, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyShapeType(tt.shapeType))
		})
	}
}

func TestGeneric(t *testing.T) {
	style := &types.Style{FillColor: "#00FF00", BorderColor: "#000000", BorderWidth: 1}

	arrow := &types.Shape{Width: 40, Height: 30, Content: types.Generic{ShapeType: "RIGHT_ARROW"}}
	got := Generic(style, arrow)
	assert.Contains(t, got, "width:0;height:0;border-style:solid;")
	assert.Contains(t, got, "border-color:transparent transparent #00FF00 transparent;")
	assert.NotContains(t, got, "background-color")
	assert.True(t, strings.HasSuffix(got, "border:1px solid #000000;"), got)

	oval := &types.Shape{Width: 40, Height: 30, Content: types.Generic{ShapeType: "OVAL"}}
	got = Generic(style, oval)
	assert.Contains(t, got, "background-color:#00FF00;border-radius:50%;")
	assert.True(t, strings.HasSuffix(got, "border:1px solid #000000;"), got)

	rect := &types.Shape{Width: 40, Height: 30, Content: types.Generic{ShapeType: "RECT"}}
	got = Generic(style, rect)
	assert.Contains(t, got, "background-color:#00FF00;")
	assert.NotContains(t, got, "border-radius")

	chart := &types.Shape{Width: 40, Height: 30, Content: types.Chart{Name: "Sales"}}
	assert.Contains(t, Generic(style, chart), "background-color:#00FF00;")
}

func TestGlobalCSS_Constant(t *testing.T) {
	assert.Contains(t, GlobalCSS, ".slide {")
	assert.Contains(t, GlobalCSS, ".shape {")
	assert.Contains(t, GlobalCSS, "position: absolute;")
}
