// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Kind identifies which payload a Shape carries.
type Kind string

const (
	KindTextBox Kind = "text_box"
	KindImage   Kind = "image"
	KindTable   Kind = "table"
	KindChart   Kind = "chart"
	KindGeneric Kind = "generic"
)

// Kinds lists every shape kind in declaration order.
var Kinds = []Kind{KindTextBox, KindImage, KindTable, KindChart, KindGeneric}

// Content is the kind-specific payload of a Shape. The set of
// implementations is closed: TextBox, Image, TableFrame, Chart and Generic.
type Content interface {
	Kind() Kind
	content()
}

// TextBox holds the runs of a text shape in reading order.
type TextBox struct {
	Runs []TextRun
}

// Image holds an embedded picture.
type Image struct {
	// Data is the raw encoded image; nil renders a placeholder.
	Data []byte

	// Type is MIME-like ("image/jpeg" or "jpeg"); empty means png.
	Type    string
	AltText string
	Name    string
}

// TableFrame holds a table. A nil Table renders a placeholder.
type TableFrame struct {
	Table *Table
}

// Chart is a chart frame. Chart data is not extracted; it renders as a
// labelled placeholder.
type Chart struct {
	Name      string
	ChartType string
}

// Generic is any other drawn shape.
type Generic struct {
	Name string

	// ShapeType is a free-form discriminator such as "RIGHT_ARROW",
	// "ROUND_RECT" or "OVAL".
	ShapeType string
}

func (TextBox) Kind() Kind    { return KindTextBox }
func (Image) Kind() Kind      { return KindImage }
func (TableFrame) Kind() Kind { return KindTable }
func (Chart) Kind() Kind      { return KindChart }
func (Generic) Kind() Kind    { return KindGeneric }

func (TextBox) content()    {}
func (Image) content()      {}
func (TableFrame) content() {}
func (Chart) content()      {}
func (Generic) content()    {}

// Shape is a positioned element on a slide. Geometry is in pixels with a
// top-left origin.
type Shape struct {
	// ID is unique within a slide and used as the DOM anchor.
	ID string

	X      float64
	Y      float64
	Width  float64
	Height float64

	Style   *Style
	Content Content
}

// Kind returns the kind of the shape's payload. A shape without content
// is treated as generic.
func (s *Shape) Kind() Kind {
	if s.Content == nil {
		return KindGeneric
	}
	return s.Content.Kind()
}
