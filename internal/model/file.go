// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package model reads and writes the presentation document model as YAML
// or JSON. Model files let a document be authored or inspected without a
// binary presentation, and every shape carries a kind discriminator.
package model

import (
	"encoding/base64"
	"fmt"

	"github.com/pdiddy/deckhtml/pkg/types"
)

// File is the on-disk representation of a document.
type File struct {
	Title  string       `yaml:"title,omitempty" json:"title,omitempty"`
	Source string       `yaml:"source,omitempty" json:"source,omitempty"`
	Slides []SlideEntry `yaml:"slides" json:"slides"`
}

// SlideEntry is one slide of a model file.
type SlideEntry struct {
	Number     int          `yaml:"number" json:"number"`
	Title      string       `yaml:"title,omitempty" json:"title,omitempty"`
	Notes      string       `yaml:"notes,omitempty" json:"notes,omitempty"`
	Background *types.Style `yaml:"background,omitempty" json:"background,omitempty"`
	Shapes     []ShapeEntry `yaml:"shapes,omitempty" json:"shapes,omitempty"`
}

// ShapeEntry flattens every shape kind into one record. Kind selects which
// of the payload fields are meaningful.
type ShapeEntry struct {
	Kind   types.Kind   `yaml:"kind" json:"kind"`
	ID     string       `yaml:"id" json:"id"`
	X      float64      `yaml:"x" json:"x"`
	Y      float64      `yaml:"y" json:"y"`
	Width  float64      `yaml:"width" json:"width"`
	Height float64      `yaml:"height" json:"height"`
	Style  *types.Style `yaml:"style,omitempty" json:"style,omitempty"`

	Runs []RunEntry `yaml:"runs,omitempty" json:"runs,omitempty"`

	// Data is base64 encoded image bytes.
	Data    string `yaml:"data,omitempty" json:"data,omitempty"`
	Type    string `yaml:"type,omitempty" json:"type,omitempty"`
	AltText string `yaml:"alt_text,omitempty" json:"alt_text,omitempty"`

	Table *TableEntry `yaml:"table,omitempty" json:"table,omitempty"`

	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	ChartType string `yaml:"chart_type,omitempty" json:"chart_type,omitempty"`
	ShapeType string `yaml:"shape_type,omitempty" json:"shape_type,omitempty"`
}

// RunEntry is a text run.
type RunEntry struct {
	Text       string       `yaml:"text" json:"text"`
	Style      *types.Style `yaml:"style,omitempty" json:"style,omitempty"`
	Bold       bool         `yaml:"bold,omitempty" json:"bold,omitempty"`
	Italic     bool         `yaml:"italic,omitempty" json:"italic,omitempty"`
	Underlined bool         `yaml:"underlined,omitempty" json:"underlined,omitempty"`
	Hyperlink  string       `yaml:"hyperlink,omitempty" json:"hyperlink,omitempty"`
}

// TableEntry is a sparse table.
type TableEntry struct {
	Rows    int          `yaml:"rows" json:"rows"`
	Columns int          `yaml:"columns" json:"columns"`
	Style   *types.Style `yaml:"style,omitempty" json:"style,omitempty"`
	Cells   []CellEntry  `yaml:"cells,omitempty" json:"cells,omitempty"`
}

// CellEntry is one populated table cell. A missing Text means the cell
// has no text at all, which differs from an empty string.
type CellEntry struct {
	Row    int          `yaml:"row" json:"row"`
	Column int          `yaml:"column" json:"column"`
	Text   *string      `yaml:"text,omitempty" json:"text,omitempty"`
	Style  *types.Style `yaml:"style,omitempty" json:"style,omitempty"`
}

// FromDocument converts a document into its file form.
func FromDocument(doc *types.Document) *File {
	f := &File{Title: doc.Title, Source: doc.Source}
	for _, s := range doc.Slides {
		entry := SlideEntry{
			Number:     s.Number,
			Title:      s.Title,
			Notes:      s.Notes,
			Background: s.Background,
		}
		for i := range s.Shapes {
			entry.Shapes = append(entry.Shapes, shapeEntry(&s.Shapes[i]))
		}
		f.Slides = append(f.Slides, entry)
	}
	return f
}

func shapeEntry(s *types.Shape) ShapeEntry {
	e := ShapeEntry{
		Kind:   s.Kind(),
		ID:     s.ID,
		X:      s.X,
		Y:      s.Y,
		Width:  s.Width,
		Height: s.Height,
		Style:  s.Style,
	}
	switch c := s.Content.(type) {
	case types.TextBox:
		for _, r := range c.Runs {
			e.Runs = append(e.Runs, RunEntry(r))
		}
	case types.Image:
		if len(c.Data) > 0 {
			e.Data = base64.StdEncoding.EncodeToString(c.Data)
		}
		e.Type = c.Type
		e.AltText = c.AltText
		e.Name = c.Name
	case types.TableFrame:
		if c.Table != nil {
			t := &TableEntry{Rows: c.Table.Rows, Columns: c.Table.Columns, Style: c.Table.Style}
			for _, cell := range c.Table.Cells {
				t.Cells = append(t.Cells, CellEntry(cell))
			}
			e.Table = t
		}
	case types.Chart:
		e.Name = c.Name
		e.ChartType = c.ChartType
	case types.Generic:
		e.Name = c.Name
		e.ShapeType = c.ShapeType
	}
	return e
}

// Document converts the file form back into a document. Slides without a
// number are numbered by position; duplicate numbers, unknown kinds and
// undecodable image data are errors.
func (f *File) Document() (*types.Document, error) {
	doc := &types.Document{Title: f.Title, Source: f.Source}
	seen := make(map[int]bool, len(f.Slides))
	for i, entry := range f.Slides {
		number := entry.Number
		if number == 0 {
			number = i + 1
		}
		if number < 0 {
			return nil, fmt.Errorf("slide %d: invalid number %d", i+1, number)
		}
		if seen[number] {
			return nil, fmt.Errorf("slide %d: duplicate number", number)
		}
		seen[number] = true

		slide := types.Slide{
			Number:     number,
			Title:      entry.Title,
			Notes:      entry.Notes,
			Background: entry.Background,
		}
		for j := range entry.Shapes {
			shape, err := entry.Shapes[j].shape()
			if err != nil {
				return nil, fmt.Errorf("slide %d shape %d: %w", number, j+1, err)
			}
			slide.Shapes = append(slide.Shapes, shape)
		}
		doc.Slides = append(doc.Slides, slide)
	}
	return doc, nil
}

func (e *ShapeEntry) shape() (types.Shape, error) {
	s := types.Shape{
		ID:     e.ID,
		X:      e.X,
		Y:      e.Y,
		Width:  e.Width,
		Height: e.Height,
		Style:  e.Style,
	}
	switch e.Kind {
	case types.KindTextBox:
		tb := types.TextBox{}
		for _, r := range e.Runs {
			tb.Runs = append(tb.Runs, types.TextRun(r))
		}
		s.Content = tb
	case types.KindImage:
		var data []byte
		if e.Data != "" {
			var err error
			data, err = base64.StdEncoding.DecodeString(e.Data)
			if err != nil {
				return s, fmt.Errorf("decoding image data: %w", err)
			}
		}
		s.Content = types.Image{Data: data, Type: e.Type, AltText: e.AltText, Name: e.Name}
	case types.KindTable:
		frame := types.TableFrame{}
		if e.Table != nil {
			t := &types.Table{Rows: e.Table.Rows, Columns: e.Table.Columns, Style: e.Table.Style}
			for _, c := range e.Table.Cells {
				t.Cells = append(t.Cells, types.Cell(c))
			}
			frame.Table = t
		}
		s.Content = frame
	case types.KindChart:
		s.Content = types.Chart{Name: e.Name, ChartType: e.ChartType}
	case types.KindGeneric, "":
		s.Content = types.Generic{Name: e.Name, ShapeType: e.ShapeType}
	default:
		return s, fmt.Errorf("unknown shape kind %q", e.Kind)
	}
	return s, nil
}
