// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pdiddy/deckhtml/internal/catalog"
)

const (
	sourceWidth  = 40
	snippetWidth = 60
	timeFormat   = "2006-01-02 15:04"
)

// --- search subcommand ---

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search slide text of recorded conversions",
	Long: `Search runs a full-text query over the titles, text, table cells and
notes of every slide in the catalog. Query syntax follows SQLite FTS4:
terms are ANDed, OR and quoted phrases are supported, and a trailing *
matches a prefix.`,
	Args: func(cmd *cobra.Command, args []string) error {
		return usage(cobra.MinimumNArgs(1)(cmd, args))
	},
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := catalog.Open(loadConfig().Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	hits, err := store.Search(cmd.Context(), strings.Join(args, " "), limit)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(hits) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	t := newTable(w, table.Row{"Source", "Slide", "Title", "Match"})
	for _, h := range hits {
		t.AppendRow(table.Row{truncate(h.Source, sourceWidth), h.Slide, truncate(h.SlideTitle, titleWidth), truncate(h.Snippet, snippetWidth)})
	}
	t.Render()
	fmt.Fprintf(w, "\n%d results\n", len(hits))
	return nil
}

// --- history subcommand ---

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded conversions",
	Long: `History lists conversions recorded in the catalog, newest first.
Use --yaml or --json to export every record with its slide titles.`,
	Args: func(cmd *cobra.Command, args []string) error {
		return usage(cobra.NoArgs(cmd, args))
	},
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := catalog.Open(loadConfig().Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	w := cmd.OutOrStdout()
	switch {
	case flagSet(cmd, "yaml"):
		return store.ExportYAML(ctx, w)
	case flagSet(cmd, "json"):
		return store.ExportJSON(ctx, w)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.History(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No conversions recorded.")
		return nil
	}

	t := newTable(w, table.Row{"Converted", "Source", "Title", "Slides", "Bytes"})
	for _, c := range entries {
		t.AppendRow(table.Row{c.ConvertedAt.Local().Format(timeFormat), truncate(c.Source, sourceWidth), truncate(c.Title, titleWidth), c.Slides, c.Bytes})
	}
	t.Render()
	return nil
}

func init() {
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = catalog.max_results)")

	historyCmd.Flags().Int("limit", 0, "maximum entries (0 = catalog.max_results)")
	historyCmd.Flags().Bool("yaml", false, "export all records as YAML")
	historyCmd.Flags().Bool("json", false, "export all records as JSON")
	historyCmd.MarkFlagsMutuallyExclusive("yaml", "json")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(historyCmd)
}
