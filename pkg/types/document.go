// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the presentation document model shared by the
// parsers, the renderer and the catalog, plus the configuration structs.
package types

// Document is a parsed presentation: its slides in order plus the metadata
// a parser was able to recover.
type Document struct {
	// Title is the presentation title from document properties, if any.
	Title string

	// Source is the path the document was parsed from.
	Source string

	// Slides lists the slides in presentation order.
	Slides []Slide
}

// ShapeCount returns the number of shapes across all slides.
func (d *Document) ShapeCount() int {
	n := 0
	for _, s := range d.Slides {
		n += len(s.Shapes)
	}
	return n
}

// Slide is one page of a presentation.
type Slide struct {
	// Number is the 1-based slide number, unique within a document.
	Number int

	// Title may carry a leading "#".."####" prefix selecting the heading level.
	Title string

	// Shapes are in z-order: later shapes paint over earlier ones.
	Shapes []Shape

	// Notes holds the speaker notes; empty when the slide has none.
	Notes string

	// Background styles the slide container. Only BackgroundColor is used.
	Background *Style
}

// TextRun is a contiguous span of text sharing one format.
type TextRun struct {
	Text       string
	Style      *Style
	Bold       bool
	Italic     bool
	Underlined bool

	// Hyperlink is an absolute URI, or empty when the run is not a link.
	Hyperlink string
}

// Cell is one populated cell of a sparse Table.
type Cell struct {
	Row    int
	Column int

	// Text is nil when the cell carries no text at all.
	Text  *string
	Style *Style
}

// Table is a sparse grid. Positions within the declared Rows x Columns
// bounds that have no Cell render as blank cells.
type Table struct {
	Rows    int
	Columns int
	Cells   []Cell
	Style   *Style
}

// CellIndex maps (row, column) to the cell at that position. When the
// input contains duplicates the first cell wins.
func (t *Table) CellIndex() map[[2]int]*Cell {
	idx := make(map[[2]int]*Cell, len(t.Cells))
	for i := range t.Cells {
		key := [2]int{t.Cells[i].Row, t.Cells[i].Column}
		if _, ok := idx[key]; !ok {
			idx[key] = &t.Cells[i]
		}
	}
	return idx
}

// StringPtr returns a pointer to s. It is a convenience for building cells.
func StringPtr(s string) *string { return &s }
