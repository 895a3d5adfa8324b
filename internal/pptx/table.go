// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"github.com/pdiddy/deckhtml/pkg/types"
)

// table converts a DrawingML table. Cells covered by a horizontal or
// vertical merge are left out, so they render as blank positions.
func (sc *slideContext) table(x *xTable) *types.Table {
	t := &types.Table{Rows: len(x.Rows), Columns: len(x.GridCols)}
	for r, row := range x.Rows {
		t.Columns = max(t.Columns, len(row.Cells))
		for c := range row.Cells {
			cell := &row.Cells[c]
			if cell.HMerge || cell.VMerge {
				continue
			}
			t.Cells = append(t.Cells, sc.cell(r, c, cell))
		}
	}
	return t
}

func (sc *slideContext) cell(row, col int, x *xTableCell) types.Cell {
	cell := types.Cell{Row: row, Column: col}
	s := &types.Style{}
	if x.TxBody != nil {
		text := plainText(x.TxBody)
		cell.Text = &text
		if pr := firstRunProps(x.TxBody); pr != nil {
			if font := sc.fontStyle(pr); font != nil {
				s.FontFamily = font.FontFamily
				s.FontSize = font.FontSize
				s.FontColor = font.FontColor
			}
		}
		s.Alignment = firstAlignment(x.TxBody)
	}
	if pr := x.TcPr; pr != nil {
		s.FillColor, _ = sc.theme.color(pr.SolidFill)
		for _, ln := range []*xLine{pr.LnL, pr.LnR, pr.LnT, pr.LnB} {
			if s.HasBorder() {
				break
			}
			sc.border(s, ln)
		}
	}
	if !s.IsZero() {
		cell.Style = s
	}
	return cell
}

func firstRunProps(body *xTextBody) *xRunProps {
	for _, p := range body.Paragraphs {
		for _, it := range p.Items {
			if it.RPr != nil && !it.Break {
				return it.RPr
			}
		}
	}
	return nil
}
