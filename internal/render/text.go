// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/deckhtml/internal/detect"
	"github.com/pdiddy/deckhtml/internal/stylemap"
	"github.com/pdiddy/deckhtml/pkg/types"
)

// textBox writes the runs of a text box in order. Consecutive runs that
// look like list items of the same kind share one list element.
func textBox(b *strings.Builder, tb types.TextBox) {
	open := detect.NotList
	for i := range tb.Runs {
		run := &tb.Runs[i]
		kind, text := detect.ListItem(run.Text)
		if kind != open {
			closeList(b, open)
			openList(b, kind)
			open = kind
		}
		if kind == detect.NotList {
			writeRun(b, run, run.Text)
			continue
		}
		b.WriteString("<li class=\"text-run\"")
		b.WriteString(styleAttr(stylemap.Text(run.Style, run)))
		b.WriteString(">")
		if run.Hyperlink != "" {
			fmt.Fprintf(b, "<a href=\"%s\">%s</a>", EscapeHTML(run.Hyperlink), EscapeHTML(text))
		} else {
			b.WriteString(EscapeHTML(text))
		}
		b.WriteString("</li>\n")
	}
	closeList(b, open)
}

func writeRun(b *strings.Builder, run *types.TextRun, text string) {
	style := styleAttr(stylemap.Text(run.Style, run))
	if run.Hyperlink != "" {
		fmt.Fprintf(b, "<a class=\"text-run\"%s href=\"%s\">%s</a>\n", style, EscapeHTML(run.Hyperlink), EscapeHTML(text))
		return
	}
	fmt.Fprintf(b, "<span class=\"text-run\"%s>%s</span>\n", style, EscapeHTML(text))
}

func openList(b *strings.Builder, kind detect.ListKind) {
	switch kind {
	case detect.Bullet:
		b.WriteString("<ul>\n")
	case detect.Numbered:
		b.WriteString("<ol>\n")
	}
}

func closeList(b *strings.Builder, kind detect.ListKind) {
	switch kind {
	case detect.Bullet:
		b.WriteString("</ul>\n")
	case detect.Numbered:
		b.WriteString("</ol>\n")
	}
}
