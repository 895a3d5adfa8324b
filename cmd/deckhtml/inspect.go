// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pdiddy/deckhtml/internal/convert"
	"github.com/pdiddy/deckhtml/internal/model"
	"github.com/pdiddy/deckhtml/pkg/types"
)

const (
	titleWidth = 40
	notesWidth = 30
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input>",
	Short: "Summarise a presentation without converting it",
	Long: `Inspect parses a presentation and prints one row per slide with its
title, shape counts by kind and the start of its notes.

Use --yaml or --json to print the full document model instead, or --save
to write it to a model file that convert accepts as input.`,
	Args: func(cmd *cobra.Command, args []string) error {
		return usage(cobra.ExactArgs(1)(cmd, args))
	},
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger, err := newLogger(os.Stderr, cfg.Log)
	if err != nil {
		return err
	}
	conv, err := convert.New(cfg, nil, logger)
	if err != nil {
		return usage(err)
	}

	doc, err := conv.Parse(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetString("save"); save != "" {
		if err := model.WriteFile(save, doc); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Model written to %s\n", save)
	}

	w := cmd.OutOrStdout()
	switch {
	case flagSet(cmd, "yaml"):
		return model.Encode(w, doc, model.FormatYAML)
	case flagSet(cmd, "json"):
		return model.Encode(w, doc, model.FormatJSON)
	}
	printSummary(w, doc)
	return nil
}

func flagSet(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func printSummary(w io.Writer, doc *types.Document) {
	if doc.Title != "" {
		fmt.Fprintf(w, "Title: %s\n", doc.Title)
	}

	t := newTable(w, table.Row{"#", "Title", "Shapes", "Kinds", "Notes"})
	for _, s := range doc.Slides {
		t.AppendRow(table.Row{s.Number, truncate(s.Title, titleWidth), len(s.Shapes), kindSummary(s.Shapes), truncate(s.Notes, notesWidth)})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d slides", len(doc.Slides)), doc.ShapeCount(), "", ""})
	t.Render()
}

// kindSummary counts shapes by kind, e.g. "image=1 text_box=2".
func kindSummary(shapes []types.Shape) string {
	counts := map[types.Kind]int{}
	for i := range shapes {
		counts[shapes[i].Kind()]++
	}
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[types.Kind(k)])
	}
	return strings.Join(parts, " ")
}

func init() {
	inspectCmd.Flags().Bool("yaml", false, "print the document model as YAML")
	inspectCmd.Flags().Bool("json", false, "print the document model as JSON")
	inspectCmd.Flags().String("save", "", "write the document model to a .yaml or .json file")
	inspectCmd.MarkFlagsMutuallyExclusive("yaml", "json")

	rootCmd.AddCommand(inspectCmd)
}
