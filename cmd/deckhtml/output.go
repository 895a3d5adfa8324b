// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"

	"github.com/pdiddy/deckhtml/internal/convert"
)

var statusColors = map[convert.Status]*color.Color{
	convert.StatusConverted: color.New(color.FgGreen, color.Bold),
	convert.StatusSkipped:   color.New(color.FgYellow),
	convert.StatusFailed:    color.New(color.FgRed, color.Bold),
}

// statusLabel renders "converted:" and friends in colour. fatih/color
// drops the escapes when stdout is not a terminal.
func statusLabel(s convert.Status) string {
	label := string(s) + ":"
	if c, ok := statusColors[s]; ok {
		return c.Sprint(label)
	}
	return label
}

// truncate shortens s to width display columns, flattening newlines so
// table rows stay on one line.
func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.Truncate(s, width, "...")
}

// newTable returns a table writer with the CLI's house style.
func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}
