// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package detect recovers semantic structure from geometric slide data.
// The heuristics are deliberately small pure functions so that each one
// can be replaced without touching the renderer.
package detect

import (
	"regexp"
	"strings"

	"github.com/pdiddy/deckhtml/pkg/types"
)

// DefaultHeadingLevel is used for titles without a "#" prefix.
const DefaultHeadingLevel = 2

var headingRe = regexp.MustCompile(`^(#{1,4})(?:[ \t]+|$)`)

// Heading returns the heading level selected by a leading markdown-style
// prefix of one to four "#" characters followed by whitespace, and the
// title with that prefix removed. Titles without such a prefix keep their
// text and get DefaultHeadingLevel.
func Heading(title string) (level int, text string) {
	m := headingRe.FindStringSubmatch(title)
	if m == nil {
		return DefaultHeadingLevel, title
	}
	return len(m[1]), title[len(m[0]):]
}

// ListKind distinguishes bulleted from numbered list items.
type ListKind int

const (
	NotList ListKind = iota
	Bullet
	Numbered
)

var (
	numberedRe       = regexp.MustCompile(`^\d+\.\s.+`)
	numberedPrefixRe = regexp.MustCompile(`^\d+\.\s+`)
)

// ListItem classifies a run of text as a list item. Runs starting with
// "- " are bullets; runs matching "<digits>. <content>" are numbered items.
// The returned text has the list marker removed; for non-list runs it is
// the input unchanged.
func ListItem(text string) (ListKind, string) {
	if strings.HasPrefix(text, "- ") {
		return Bullet, text[2:]
	}
	if numberedRe.MatchString(text) {
		return Numbered, numberedPrefixRe.ReplaceAllString(text, "")
	}
	return NotList, text
}

// HasHeaderRow reports whether row 0 of the table should render as a
// header. It does when at least one cell in row 0 has a fill color.
// Cells outside the declared grid are ignored, and a table without rows
// never has a header.
func HasHeaderRow(t *types.Table) bool {
	if t == nil || t.Rows <= 0 || t.Columns <= 0 {
		return false
	}
	for _, c := range t.Cells {
		if c.Row == 0 && c.Column >= 0 && c.Column < t.Columns && c.Style.HasFill() {
			return true
		}
	}
	return false
}
