// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ppt

import (
	"fmt"
	"strings"

	"github.com/pdiddy/deckhtml/pkg/types"
)

// Layout of recovered text on a 10 x 7.5 inch slide at 96 DPI.
const (
	slideMargin  = 48.0
	slideWidth   = 960.0
	titleTop     = 32.0
	titleHeight  = 96.0
	bodyGap      = 16.0
	lineHeight   = 36.0
	titleFontPx  = 40.0
	bodyFontPx   = 24.0
	bodyPaddingY = 16.0
)

var (
	titleStyle = types.Style{FontSize: titleFontPx}
	bodyStyle  = types.Style{FontSize: bodyFontPx}
)

// buildDocument lays out the recovered text: the title on top, then one
// text box per body block stacked below it. Notes pages are matched to
// slides by position.
func buildDocument(text *streamText) *types.Document {
	doc := &types.Document{}
	for i := range text.slides {
		st := &text.slides[i]
		number := i + 1
		slide := types.Slide{Number: number, Title: st.title()}
		if slide.Title == "" {
			slide.Title = fmt.Sprintf("Slide %d", number)
		} else {
			slide.Shapes = append(slide.Shapes, textShape("title", titleTop, titleHeight, slide.Title, &titleStyle, true))
		}

		top := titleTop + titleHeight + bodyGap
		for j, block := range st.body() {
			lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
			height := float64(len(lines))*lineHeight + bodyPaddingY
			slide.Shapes = append(slide.Shapes, textShape(fmt.Sprintf("body-%d", j+1), top, height, block, &bodyStyle, false))
			top += height + bodyGap
		}

		if i < len(text.notes) {
			slide.Notes = strings.TrimSpace(strings.Join(text.notes[i].body(), "\n"))
		}
		doc.Slides = append(doc.Slides, slide)
	}
	return doc
}

// textShape builds a full-width text box. Each line becomes a run with
// newline runs in between.
func textShape(id string, top, height float64, text string, style *types.Style, bold bool) types.Shape {
	var runs []types.TextRun
	for i, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if i > 0 {
			runs = append(runs, types.TextRun{Text: "\n"})
		}
		runs = append(runs, types.TextRun{Text: line, Style: style, Bold: bold})
	}
	return types.Shape{
		ID:      id,
		X:       slideMargin,
		Y:       top,
		Width:   slideWidth - 2*slideMargin,
		Height:  height,
		Content: types.TextBox{Runs: runs},
	}
}
