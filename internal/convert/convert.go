// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert validates presentation files, picks a parser for them,
// renders the parsed document to HTML and writes the result. It also runs
// batches of conversions with per-file progress lines.
package convert

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/k1LoW/errors"

	"github.com/pdiddy/deckhtml/internal/logging"
	"github.com/pdiddy/deckhtml/internal/model"
	"github.com/pdiddy/deckhtml/internal/ppt"
	"github.com/pdiddy/deckhtml/internal/pptx"
	"github.com/pdiddy/deckhtml/internal/render"
	"github.com/pdiddy/deckhtml/pkg/types"
)

// outputExt is appended to the input path when no output is given.
const outputExt = ".html"

// Parser reads a file into the document model. The pptx, ppt and model
// packages each provide one.
type Parser interface {
	Parse(ctx context.Context, path string) (*types.Document, error)
}

// Recorder stores the outcome of a successful conversion. The catalog
// implements it.
type Recorder interface {
	Record(ctx context.Context, res Result, doc *types.Document) error
}

// Result describes one successful conversion.
type Result struct {
	Input  string
	Output string
	Format Format
	Title  string
	Slides int
	Shapes int
	Bytes  int64
}

// Converter turns presentation files into HTML documents.
type Converter struct {
	parsers  map[Format]Parser
	renderer *render.Renderer
	recorder Recorder
	logger   *slog.Logger
}

// New creates a Converter from cfg. rec may be nil, in which case
// conversions are not recorded.
func New(cfg types.Config, rec Recorder, logger *slog.Logger) (*Converter, error) {
	logger = logging.OrDiscard(logger)

	legacy, err := legacyParser(cfg.Parse, logger)
	if err != nil {
		return nil, err
	}

	return &Converter{
		parsers: map[Format]Parser{
			FormatPPTX:  pptx.NewReader(cfg.Parse, logger),
			FormatPPT:   legacy,
			FormatModel: model.Parser{},
		},
		renderer: render.New(cfg.Render, logger),
		recorder: rec,
		logger:   logger,
	}, nil
}

func legacyParser(cfg types.ParseConfig, logger *slog.Logger) (Parser, error) {
	switch cfg.LegacyBackend {
	case "", types.LegacyNative:
		return ppt.NewReader(cfg, logger), nil
	case types.LegacyContainer:
		return ppt.NewContainerReader(cfg, logger), nil
	}
	return nil, fmt.Errorf("unknown legacy backend %q (want %s or %s)",
		cfg.LegacyBackend, types.LegacyNative, types.LegacyContainer)
}

// ParserFor validates path and returns the parser for its format.
func (c *Converter) ParserFor(path string) (Parser, Format, error) {
	format, err := Validate(path)
	if err != nil {
		return nil, format, err
	}
	p, ok := c.parsers[format]
	if !ok {
		return nil, format, fmt.Errorf("%w: %w: %s", ErrInvalidInput, ErrUnsupportedFormat, format)
	}
	return p, format, nil
}

// OutputPath returns where the HTML for in is written: next to the input
// when dir is empty, otherwise inside dir. The input's extension is kept,
// so deck.pptx becomes deck.pptx.html.
func OutputPath(in, dir string) string {
	if dir == "" {
		return in + outputExt
	}
	return filepath.Join(dir, filepath.Base(in)+outputExt)
}

// Parse validates and parses in without rendering it.
func (c *Converter) Parse(ctx context.Context, in string) (doc *types.Document, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	doc, _, err = c.parse(ctx, in)
	return doc, err
}

func (c *Converter) parse(ctx context.Context, in string) (*types.Document, Format, error) {
	p, format, err := c.ParserFor(in)
	if err != nil {
		return nil, format, err
	}
	c.logger.Info("processing file", "path", in, "format", format.String())

	doc, err := p.Parse(ctx, in)
	if err != nil {
		return nil, format, parseError(in, err)
	}
	c.logger.Info("parsed presentation", "path", in, "slides", len(doc.Slides), "shapes", doc.ShapeCount())
	return doc, format, nil
}

// Convert parses in, renders it and writes the HTML to out. An empty out
// selects OutputPath(in, ""). Nothing is written when any step fails.
func (c *Converter) Convert(ctx context.Context, in, out string) (res Result, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	if out == "" {
		out = OutputPath(in, "")
	}

	doc, format, err := c.parse(ctx, in)
	if err != nil {
		return Result{}, err
	}

	html := c.renderer.RenderDocument(doc)
	if err := writeFile(out, html); err != nil {
		return Result{}, fmt.Errorf("%w: writing %s: %w", ErrConversion, out, err)
	}
	c.logger.Info("wrote HTML", "path", out, "bytes", len(html))

	res = Result{
		Input:  in,
		Output: out,
		Format: format,
		Title:  doc.Title,
		Slides: len(doc.Slides),
		Shapes: doc.ShapeCount(),
		Bytes:  int64(len(html)),
	}

	if c.recorder != nil {
		if err := c.recorder.Record(ctx, res, doc); err != nil {
			c.logger.Warn("recording conversion", "path", in, "error", err)
		}
	}
	return res, nil
}

// writeFile writes data to a temporary file next to path and renames it
// into place.
func writeFile(path, data string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.WriteString(tmp, data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
