// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ppt reads legacy binary PowerPoint files (.ppt, .pot, .pps).
// The native reader recovers slide titles, body text and notes from the
// OLE2 compound file; layout and pictures are not available that way.
// The container reader upgrades the file to Office Open XML in a
// container and hands it to the pptx package for a full conversion.
package ppt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/richardlehane/mscfb"
	"github.com/richardlehane/msoleps"

	"github.com/pdiddy/deckhtml/internal/logging"
	"github.com/pdiddy/deckhtml/pkg/types"
)

var (
	// ErrEncrypted is returned for password protected presentations.
	ErrEncrypted = errors.New("presentation is encrypted")

	// ErrNoDocumentStream is returned for compound files that are not
	// PowerPoint presentations.
	ErrNoDocumentStream = errors.New("no PowerPoint Document stream")
)

const (
	streamDocument       = "PowerPoint Document"
	streamSummary        = "SummaryInformation"
	streamEncrypted      = "EncryptedSummary"
	defaultMaxStreamSize = 50 << 20
)

// Reader is the native legacy reader.
type Reader struct {
	maxStream int64
	logger    *slog.Logger
}

// NewReader creates a native Reader.
func NewReader(cfg types.ParseConfig, logger *slog.Logger) *Reader {
	maxStream := cfg.MaxEntrySize
	if maxStream <= 0 {
		maxStream = defaultMaxStreamSize
	}
	return &Reader{maxStream: maxStream, logger: logging.OrDiscard(logger)}
}

// Parse reads the presentation at path.
func (r *Reader) Parse(ctx context.Context, path string) (*types.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := r.ReadFrom(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// ReadFrom reads a compound file.
func (r *Reader) ReadFrom(ctx context.Context, ra io.ReaderAt) (*types.Document, error) {
	cf, err := mscfb.New(ra)
	if err != nil {
		return nil, fmt.Errorf("opening compound file: %w", err)
	}

	var (
		text  *streamText
		title string
	)
	for entry, err := cf.Next(); err == nil; entry, err = cf.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(entry.Path) > 0 {
			continue
		}
		switch strings.TrimLeft(entry.Name, "\x05") {
		case streamEncrypted:
			return nil, ErrEncrypted
		case streamDocument:
			text, err = readStream(cf, r.maxStream)
			if err != nil {
				return nil, err
			}
		case streamSummary:
			title = r.summaryTitle(cf)
		}
	}
	if text == nil {
		return nil, ErrNoDocumentStream
	}

	doc := buildDocument(text)
	doc.Title = title
	r.logger.Debug("read legacy presentation", "slides", len(doc.Slides), "shapes", doc.ShapeCount())
	return doc, nil
}

// summaryTitle returns the Title property of the SummaryInformation
// stream, or "" when it cannot be read.
func (r *Reader) summaryTitle(rd io.Reader) string {
	props := msoleps.New()
	if err := props.Reset(rd); err != nil {
		r.logger.Warn("ignoring summary information", "error", err)
		return ""
	}
	for _, p := range props.Property {
		if p.Name == "Title" {
			return strings.TrimSpace(strings.TrimRight(p.String(), "\x00"))
		}
	}
	return ""
}
