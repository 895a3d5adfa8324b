// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/deckhtml/internal/catalog"
	"github.com/pdiddy/deckhtml/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> [output]",
	Short: "Convert a presentation to HTML",
	Long: `Convert parses a presentation and writes a self-contained HTML
document. The output defaults to the input path with .html appended.

With --batch every argument is an input (directories are expanded to the
supported files they contain), outputs are written next to each input or
into --out-dir, and existing outputs are skipped unless --force is given.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if batch, _ := cmd.Flags().GetBool("batch"); batch {
			return usage(cobra.MinimumNArgs(1)(cmd, args))
		}
		return usage(cobra.RangeArgs(1, 2)(cmd, args))
	},
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger, err := newLogger(os.Stderr, cfg.Log)
	if err != nil {
		return err
	}

	var rec convert.Recorder
	if cfg.Catalog.Enabled {
		store, err := catalog.Open(cfg.Catalog)
		if err != nil {
			return err
		}
		defer store.Close()
		rec = store
	}

	conv, err := convert.New(cfg, rec, logger)
	if err != nil {
		return usage(err)
	}

	ctx := cmd.Context()
	if batch, _ := cmd.Flags().GetBool("batch"); batch {
		inputs, err := collectInputs(args)
		if err != nil {
			return err
		}
		outDir, _ := cmd.Flags().GetString("out-dir")
		force, _ := cmd.Flags().GetBool("force")

		result := conv.ConvertBatch(ctx, inputs, convert.BatchOptions{
			OutDir: outDir,
			Force:  force,
			Label:  statusLabel,
		}, cmd.OutOrStdout())
		if result.HasFailures() {
			return fmt.Errorf("%d file(s) failed conversion", result.Failed)
		}
		return nil
	}

	out := ""
	if len(args) > 1 {
		out = args[1]
	}
	res, err := conv.Convert(ctx, args[0], out)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(res.Output)
	if err != nil {
		abs = res.Output
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Conversion successful! Output file: %s (%d slides)\n",
		statusLabel(convert.StatusConverted), abs, res.Slides)
	return nil
}

// collectInputs expands directories to the supported files directly
// inside them, in name order. Files are passed through unchecked so that
// validation reports them individually.
func collectInputs(args []string) ([]string, error) {
	var inputs []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			inputs = append(inputs, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", arg, err)
		}
		var found []string
		for _, e := range entries {
			if e.Type().IsRegular() && convert.Supported(e.Name()) {
				found = append(found, filepath.Join(arg, e.Name()))
			}
		}
		sort.Strings(found)
		inputs = append(inputs, found...)
	}
	return inputs, nil
}

func init() {
	convertCmd.Flags().Bool("batch", false, "treat every argument as an input")
	convertCmd.Flags().String("out-dir", "", "directory for batch outputs (default: next to each input)")
	convertCmd.Flags().Bool("force", false, "reconvert inputs whose output already exists")
	convertCmd.Flags().String("title", "", "HTML document title (default: presentation title)")
	convertCmd.Flags().Int("workers", 0, "slides rendered concurrently")
	convertCmd.Flags().Bool("notes", true, "include speaker notes")
	convertCmd.Flags().String("legacy-backend", "", "reader for legacy .ppt files: native or container")
	convertCmd.Flags().Bool("record", false, "record the conversion in the catalog")

	viper.BindPFlag("render.title", convertCmd.Flags().Lookup("title"))
	viper.BindPFlag("render.workers", convertCmd.Flags().Lookup("workers"))
	viper.BindPFlag("render.include_notes", convertCmd.Flags().Lookup("notes"))
	viper.BindPFlag("parse.legacy_backend", convertCmd.Flags().Lookup("legacy-backend"))
	viper.BindPFlag("catalog.enabled", convertCmd.Flags().Lookup("record"))

	rootCmd.AddCommand(convertCmd)
}
