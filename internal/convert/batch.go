// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Status is the per-file outcome of a batch run.
type Status string

const (
	StatusConverted Status = "converted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// BatchOptions controls ConvertBatch.
type BatchOptions struct {
	// OutDir receives the HTML files. Empty writes next to each input.
	OutDir string

	// Force reconverts inputs whose output already exists.
	Force bool

	// Label formats the status word on each progress line. Nil prints it
	// as is.
	Label func(Status) string
}

func (o BatchOptions) label(s Status) string {
	if o.Label == nil {
		return string(s) + ":"
	}
	return o.Label(s)
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
	Results   []Result
}

// Total returns the number of inputs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any input failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertBatch converts each input in turn, printing one progress line per
// file to w followed by a summary. A failed input does not stop the batch.
func (c *Converter) ConvertBatch(ctx context.Context, inputs []string, opts BatchOptions, w io.Writer) BatchResult {
	var result BatchResult
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			fmt.Fprintf(w, "%s  %s (%v)\n", opts.label(StatusFailed), in, err)
			result.Failed++
			continue
		}

		out := OutputPath(in, opts.OutDir)
		if !opts.Force {
			if _, err := os.Stat(out); err == nil {
				fmt.Fprintf(w, "%s %s (already exists)\n", opts.label(StatusSkipped), in)
				result.Skipped++
				continue
			}
		}

		res, err := c.Convert(ctx, in, out)
		if err != nil {
			fmt.Fprintf(w, "%s  %s (%v)\n", opts.label(StatusFailed), in, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "%s %s -> %s (%d slides)\n", opts.label(StatusConverted), in, out, res.Slides)
		result.Converted++
		result.Results = append(result.Results, res)
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
