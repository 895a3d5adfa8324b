// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"strings"

	"github.com/pdiddy/deckhtml/internal/detect"
	"github.com/pdiddy/deckhtml/pkg/types"
)

func slideTitle(s *types.Slide) string {
	_, text := detect.Heading(s.Title)
	return text
}

// slideBody collects the searchable text of a slide: text boxes, table
// cells, image alt text, chart names and speaker notes.
func slideBody(s *types.Slide) string {
	var parts []string
	add := func(text string) {
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}

	for i := range s.Shapes {
		switch c := s.Shapes[i].Content.(type) {
		case types.TextBox:
			var b strings.Builder
			for _, r := range c.Runs {
				b.WriteString(r.Text)
			}
			add(b.String())
		case types.TableFrame:
			if c.Table == nil {
				continue
			}
			for _, cell := range c.Table.Cells {
				if cell.Text != nil {
					add(*cell.Text)
				}
			}
		case types.Image:
			add(c.AltText)
		case types.Chart:
			add(c.Name)
		}
	}
	add(s.Notes)
	return strings.Join(parts, "\n")
}
