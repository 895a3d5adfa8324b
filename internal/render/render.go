// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render assembles a self-contained HTML document from the slide
// model. Layout comes from absolute positioning, styling from the
// stylemap package and structure from the detect heuristics.
package render

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sourcegraph/conc/iter"

	"github.com/pdiddy/deckhtml/internal/detect"
	"github.com/pdiddy/deckhtml/internal/logging"
	"github.com/pdiddy/deckhtml/internal/stylemap"
	"github.com/pdiddy/deckhtml/pkg/types"
)

// Renderer converts slides to HTML. The zero value is not usable; build
// one with New or use the package-level Render.
type Renderer struct {
	title        string
	workers      int
	includeNotes bool
	logger       *slog.Logger
}

// New creates a Renderer from cfg. A nil logger discards log output.
func New(cfg types.RenderConfig, logger *slog.Logger) *Renderer {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Renderer{
		title:        cfg.Title,
		workers:      workers,
		includeNotes: cfg.IncludeNotes,
		logger:       logging.OrDiscard(logger),
	}
}

// Render converts slides with the default configuration.
func Render(slides []types.Slide) string {
	r := New(types.RenderConfig{IncludeNotes: true}, nil)
	return r.Render(slides)
}

// Render returns the complete HTML document for slides. It never fails:
// a shape that cannot be rendered is replaced by a placeholder.
func (r *Renderer) Render(slides []types.Slide) string {
	return r.render(r.documentTitle(""), slides)
}

// RenderDocument is Render with the document's own title used when the
// renderer has no configured title.
func (r *Renderer) RenderDocument(doc *types.Document) string {
	return r.render(r.documentTitle(doc.Title), doc.Slides)
}

func (r *Renderer) documentTitle(docTitle string) string {
	switch {
	case r.title != "":
		return r.title
	case docTitle != "":
		return docTitle
	default:
		return types.DefaultDocumentTitle
	}
}

func (r *Renderer) render(title string, slides []types.Slide) string {
	r.logger.Debug("rendering slides", "count", len(slides), "workers", r.workers)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n")
	b.WriteString("<head>\n")
	b.WriteString("    <meta charset=\"UTF-8\">\n")
	fmt.Fprintf(&b, "    <title>%s</title>\n", EscapeHTML(title))
	b.WriteString("    <style>\n")
	b.WriteString(stylemap.GlobalCSS)
	b.WriteString("    </style>\n")
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")

	for _, fragment := range r.slides(slides) {
		b.WriteString(fragment)
	}

	b.WriteString("</body>\n")
	b.WriteString("</html>")
	return b.String()
}

// slides renders every slide, in parallel when configured. The result is
// indexed like the input so document order is preserved.
func (r *Renderer) slides(slides []types.Slide) []string {
	if r.workers == 1 || len(slides) < 2 {
		out := make([]string, len(slides))
		for i := range slides {
			out[i] = r.slide(&slides[i])
		}
		return out
	}
	mapper := iter.Mapper[types.Slide, string]{MaxGoroutines: r.workers}
	return mapper.Map(slides, r.slide)
}

func (r *Renderer) slide(s *types.Slide) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<div class=\"slide\" id=\"slide-%d\"%s>\n", s.Number, styleAttr(stylemap.Slide(s.Background)))

	level, text := detect.Heading(s.Title)
	fmt.Fprintf(&b, "    <h%d class=\"slide-title\">%s</h%d>\n", level, EscapeHTML(text), level)

	for i := range s.Shapes {
		r.shape(&b, s.Number, &s.Shapes[i])
	}

	if r.includeNotes && s.Notes != "" {
		b.WriteString("    <div class=\"slide-notes\">\n")
		b.WriteString("        <h3>Notes:</h3>\n")
		fmt.Fprintf(&b, "        <p>%s</p>\n", EscapeHTML(s.Notes))
		b.WriteString("    </div>\n")
	}

	b.WriteString("</div>\n")
	return b.String()
}

// styleAttr renders a style attribute, or nothing for an empty style.
func styleAttr(css string) string {
	if css == "" {
		return ""
	}
	return fmt.Sprintf(" style=\"%s\"", css)
}
