// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/deckhtml/internal/detect"
	"github.com/pdiddy/deckhtml/internal/stylemap"
	"github.com/pdiddy/deckhtml/pkg/types"
)

// table writes a rows x columns grid. Positions without a cell are
// padded with a non-breaking space so every row has the same width.
func table(b *strings.Builder, s *types.Shape, t *types.Table) {
	if t == nil {
		b.WriteString("<div class=\"table-placeholder\">[Table Content]</div>\n")
		return
	}

	style := t.Style
	if style == nil {
		style = s.Style
	}
	fmt.Fprintf(b, "<table class=\"table-container\" style=\"%s\">\n", stylemap.Table(style, s))

	cells := t.CellIndex()
	start := 0
	if detect.HasHeaderRow(t) {
		b.WriteString("<thead>\n")
		row(b, cells, 0, t.Columns, "th")
		b.WriteString("</thead>\n")
		start = 1
	}
	if start < t.Rows {
		b.WriteString("<tbody>\n")
		for r := start; r < t.Rows; r++ {
			row(b, cells, r, t.Columns, "td")
		}
		b.WriteString("</tbody>\n")
	}
	b.WriteString("</table>\n")
}

func row(b *strings.Builder, cells map[[2]int]*types.Cell, r, columns int, tag string) {
	b.WriteString("<tr>\n")
	for c := 0; c < columns; c++ {
		cell, ok := cells[[2]int{r, c}]
		if !ok {
			fmt.Fprintf(b, "<%s class=\"table-cell\">&nbsp;</%s>\n", tag, tag)
			continue
		}
		text := ""
		if cell.Text != nil {
			text = EscapeHTML(*cell.Text)
		}
		fmt.Fprintf(b, "<%s class=\"table-cell\"%s>%s</%s>\n", tag, styleAttr(stylemap.Cell(cell.Style)), text, tag)
	}
	b.WriteString("</tr>\n")
}
