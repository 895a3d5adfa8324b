//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/deckhtml/internal/model"
	"github.com/pdiddy/deckhtml/pkg/types"
)

const sampleDir = "samples"

// writeSample saves a small document that exercises every shape kind.
func writeSample() (string, error) {
	if err := os.MkdirAll(sampleDir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", sampleDir, err)
	}

	accent := &types.Style{BackgroundColor: "#1F4E79"}
	heading := &types.Style{FontFamily: "Calibri", FontSize: 32, FontColor: "#FFFFFF"}
	body := &types.Style{FontFamily: "Calibri", FontSize: 18, FontColor: "#333333"}
	header := &types.Style{FillColor: "#D9E2F3", BorderColor: "#8EAADB", BorderWidth: 1}

	doc := &types.Document{
		Title: "deckhtml sample",
		Slides: []types.Slide{
			{
				Number:     1,
				Title:      "# Welcome",
				Background: accent,
				Notes:      "Introduce the tool.\nKeep it short.",
				Shapes: []types.Shape{
					{ID: "2", X: 60, Y: 180, Width: 840, Height: 80, Content: types.TextBox{Runs: []types.TextRun{
						{Text: "Presentations as HTML", Style: heading, Bold: true},
					}}},
				},
			},
			{
				Number: 2,
				Title:  "## Features",
				Shapes: []types.Shape{
					{ID: "2", X: 60, Y: 120, Width: 520, Height: 200, Content: types.TextBox{Runs: []types.TextRun{
						{Text: "- Styled text runs", Style: body},
						{Text: "- Tables and images", Style: body},
						{Text: "- Speaker notes", Style: body},
						{Text: "Project page", Style: body, Hyperlink: "https://example.com/deckhtml", Underlined: true},
					}}},
					{ID: "3", X: 620, Y: 140, Width: 200, Height: 60, Style: &types.Style{FillColor: "#ED7D31"},
						Content: types.Generic{Name: "Arrow", ShapeType: "RIGHT_ARROW"}},
				},
			},
			{
				Number: 3,
				Title:  "Numbers",
				Shapes: []types.Shape{
					{ID: "2", X: 60, Y: 120, Width: 600, Height: 120, Content: types.TableFrame{Table: &types.Table{
						Rows: 3, Columns: 2,
						Cells: []types.Cell{
							{Row: 0, Column: 0, Text: types.StringPtr("Quarter"), Style: header},
							{Row: 0, Column: 1, Text: types.StringPtr("Revenue"), Style: header},
							{Row: 1, Column: 0, Text: types.StringPtr("Q1")},
							{Row: 1, Column: 1, Text: types.StringPtr("1.2M")},
							{Row: 2, Column: 0, Text: types.StringPtr("Q2")},
						},
					}}},
					{ID: "3", X: 700, Y: 120, Width: 200, Height: 150, Content: types.Chart{Name: "Revenue trend", ChartType: "LINE"}},
				},
			},
		},
	}

	path := filepath.Join(sampleDir, "demo.yaml")
	if err := model.WriteFile(path, doc); err != nil {
		return "", err
	}
	fmt.Printf("Wrote %s\n", path)
	return path, nil
}
