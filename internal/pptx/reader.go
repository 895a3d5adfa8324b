// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pptx reads Office Open XML presentations (.pptx and the
// template, show and macro-enabled variants) into the document model.
// Slides, notes, the first theme and embedded media are read straight
// from the package with archive/zip and encoding/xml.
package pptx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pdiddy/deckhtml/internal/logging"
	"github.com/pdiddy/deckhtml/pkg/types"
)

// ErrNoPresentation is returned for zip files that carry no presentation
// part.
var ErrNoPresentation = errors.New("package has no presentation part")

const defaultPresentationPart = "ppt/presentation.xml"

// Reader parses presentation packages. It is safe for concurrent use.
type Reader struct {
	maxEntry   int64
	maxEntries int
	logger     *slog.Logger
}

// NewReader creates a Reader. A zero MaxEntrySize uses DefaultMaxEntrySize.
func NewReader(cfg types.ParseConfig, logger *slog.Logger) *Reader {
	maxEntry := cfg.MaxEntrySize
	if maxEntry <= 0 {
		maxEntry = DefaultMaxEntrySize
	}
	return &Reader{
		maxEntry:   maxEntry,
		maxEntries: DefaultMaxEntries,
		logger:     logging.OrDiscard(logger),
	}
}

// Parse reads the presentation at path.
func (r *Reader) Parse(ctx context.Context, path string) (*types.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	doc, err := r.ReadFrom(ctx, f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// ReadFrom reads a presentation package of the given size.
func (r *Reader) ReadFrom(ctx context.Context, ra io.ReaderAt, size int64) (*types.Document, error) {
	a, err := openArchive(ra, size, r.maxEntry, r.maxEntries)
	if err != nil {
		return nil, err
	}

	presPart := defaultPresentationPart
	if rel, ok := a.rels("").first(relOffice); ok {
		presPart = rel.Target
	}
	if !a.has(presPart) {
		return nil, ErrNoPresentation
	}
	var pres xPresentation
	if err := a.decode(presPart, &pres); err != nil {
		return nil, err
	}
	presRels := a.rels(presPart)

	doc := &types.Document{Title: r.coreTitle(a)}
	th := r.theme(a, presRels)

	for _, id := range pres.SlideIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rel, ok := presRels[id.RID]
		if !ok || !strings.HasSuffix(rel.Type, relSlide) {
			r.logger.Warn("skipping slide with unknown relationship", "rid", id.RID)
			continue
		}
		number := len(doc.Slides) + 1
		slide, err := r.readSlide(a, th, rel.Target, number)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", number, err)
		}
		doc.Slides = append(doc.Slides, *slide)
	}

	r.logger.Debug("read presentation", "slides", len(doc.Slides), "shapes", doc.ShapeCount())
	return doc, nil
}

func (r *Reader) coreTitle(a *archive) string {
	const corePart = "docProps/core.xml"
	if !a.has(corePart) {
		return ""
	}
	var core xCoreProperties
	if err := a.decode(corePart, &core); err != nil {
		r.logger.Warn("ignoring core properties", "error", err)
		return ""
	}
	return strings.TrimSpace(core.Title)
}

func (r *Reader) theme(a *archive, presRels rels) *theme {
	rel, ok := presRels.first(relTheme)
	if !ok {
		return newTheme(nil)
	}
	var x xTheme
	if err := a.decode(rel.Target, &x); err != nil {
		r.logger.Warn("ignoring theme", "part", rel.Target, "error", err)
		return newTheme(nil)
	}
	return newTheme(&x)
}

func (r *Reader) readSlide(a *archive, th *theme, part string, number int) (*types.Slide, error) {
	var xs xSlide
	if err := a.decode(part, &xs); err != nil {
		return nil, err
	}
	sc := &slideContext{
		a:      a,
		theme:  th,
		rels:   a.rels(part),
		number: number,
		ids:    map[string]int{},
		logger: r.logger,
	}

	slide := &types.Slide{Number: number}
	if bg := sc.background(xs.CSld.Bg); bg != "" {
		slide.Background = &types.Style{BackgroundColor: bg}
	}
	slide.Shapes = sc.tree(&xs.CSld.SpTree, identity)

	if sp := findPlaceholder(&xs.CSld.SpTree, "title", "ctrTitle"); sp != nil && sp.TxBody != nil {
		slide.Title = strings.TrimSpace(strings.ReplaceAll(plainText(sp.TxBody), "\n", " "))
	}
	if slide.Title == "" {
		slide.Title = fmt.Sprintf("Slide %d", number)
	}
	slide.Notes = r.notes(a, sc.rels, number)
	return slide, nil
}

// notes returns the body text of the slide's notes page.
func (r *Reader) notes(a *archive, rs rels, number int) string {
	rel, ok := rs.first(relNotesSlide)
	if !ok || !a.has(rel.Target) {
		return ""
	}
	var xs xSlide
	if err := a.decode(rel.Target, &xs); err != nil {
		r.logger.Warn("ignoring notes", "slide", number, "error", err)
		return ""
	}
	sp := findPlaceholder(&xs.CSld.SpTree, "body")
	if sp == nil || sp.TxBody == nil {
		return ""
	}
	return strings.TrimSpace(plainText(sp.TxBody))
}

// findPlaceholder returns the first shape, searching groups too, whose
// placeholder type is one of kinds.
func findPlaceholder(t *xShapeTree, kinds ...string) *xSp {
	for _, item := range t.Items {
		if item.Group != nil {
			if sp := findPlaceholder(item.Group, kinds...); sp != nil {
				return sp
			}
			continue
		}
		if item.Sp == nil {
			continue
		}
		ph := item.Sp.nv().NvPr.Ph
		if ph == nil {
			continue
		}
		for _, k := range kinds {
			if ph.Type == k {
				return item.Sp
			}
		}
	}
	return nil
}
