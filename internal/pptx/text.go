// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"fmt"
	"strings"

	"github.com/pdiddy/deckhtml/pkg/types"
)

var alignments = map[string]types.Alignment{
	"l":    types.AlignLeft,
	"ctr":  types.AlignCenter,
	"r":    types.AlignRight,
	"just": types.AlignJustify,
	"dist": types.AlignJustify,
}

func hasText(body *xTextBody) bool {
	if body == nil {
		return false
	}
	for _, p := range body.Paragraphs {
		for _, it := range p.Items {
			if !it.Break && strings.TrimSpace(it.Text) != "" {
				return true
			}
		}
	}
	return false
}

// plainText joins the paragraphs of body with newlines.
func plainText(body *xTextBody) string {
	lines := make([]string, 0, len(body.Paragraphs))
	for _, p := range body.Paragraphs {
		var b strings.Builder
		for _, it := range p.Items {
			b.WriteString(it.Text)
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func firstAlignment(body *xTextBody) types.Alignment {
	for _, p := range body.Paragraphs {
		if p.PPr != nil && p.PPr.Algn != "" {
			return alignments[p.PPr.Algn]
		}
	}
	return ""
}

// numbering tracks automatic numbers across consecutive paragraphs.
type numbering struct {
	active bool
	next   int
}

// prefix returns the list marker for a paragraph: "- " for character
// bullets, "N. " for automatic numbering and "" otherwise.
func (n *numbering) prefix(pr *xParagraphProps) string {
	switch {
	case pr == nil || pr.BuNone != nil:
	case pr.BuAutoNum != nil:
		if !n.active {
			n.active = true
			n.next = max(pr.BuAutoNum.StartAt, 1)
		}
		p := fmt.Sprintf("%d. ", n.next)
		n.next++
		return p
	case pr.BuChar != nil:
		n.active = false
		return "- "
	}
	n.active = false
	return ""
}

// runs converts a text body to runs. A list paragraph becomes one run
// carrying its marker and the formatting of its first run. Plain
// paragraphs keep their runs and are separated by newline runs.
func (sc *slideContext) runs(body *xTextBody) []types.TextRun {
	var (
		out      []types.TextRun
		num      numbering
		prevList = true
	)
	for _, p := range body.Paragraphs {
		marker := num.prefix(p.PPr)
		if marker != "" {
			if len(p.Items) == 0 {
				continue
			}
			var b strings.Builder
			for _, it := range p.Items {
				b.WriteString(it.Text)
			}
			run := sc.run(p.Items[0])
			run.Text = marker + b.String()
			out = append(out, run)
			prevList = true
			continue
		}
		if !prevList {
			out = append(out, types.TextRun{Text: "\n"})
		}
		for _, it := range p.Items {
			out = append(out, sc.run(it))
		}
		prevList = false
	}
	return out
}

func (sc *slideContext) run(it xTextItem) types.TextRun {
	run := types.TextRun{Text: it.Text}
	pr := it.RPr
	if pr == nil {
		return run
	}
	run.Bold = pr.B
	run.Italic = pr.I
	run.Underlined = pr.U != "" && pr.U != "none"
	run.Style = sc.fontStyle(pr)
	if pr.HlinkClick != nil {
		if rel, ok := sc.rels[pr.HlinkClick.RID]; ok && rel.external() {
			run.Hyperlink = rel.Target
		}
	}
	return run
}

// fontStyle returns the font attributes of pr, or nil when none is set.
func (sc *slideContext) fontStyle(pr *xRunProps) *types.Style {
	s := &types.Style{}
	if pr.Latin != nil {
		s.FontFamily = sc.theme.font(pr.Latin.Typeface)
	}
	if pr.Sz > 0 {
		s.FontSize = pointsToPx(float64(pr.Sz) / 100)
	}
	s.FontColor, _ = sc.theme.color(pr.SolidFill)
	s.BackgroundColor, _ = sc.theme.color(pr.Highlight)
	if s.IsZero() {
		return nil
	}
	return s
}
