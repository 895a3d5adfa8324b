// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/deckhtml/internal/stylemap"
	"github.com/pdiddy/deckhtml/pkg/types"
)

const shapeErrorHTML = "<div class=\"shape-error\">[Shape unavailable]</div>\n"

// shape writes the positioned container for s and its kind-specific body.
func (r *Renderer) shape(b *strings.Builder, slide int, s *types.Shape) {
	kind := s.Kind()
	fmt.Fprintf(b, "    <div class=\"shape shape-%s\" id=\"shape-%s\" style=\"%s\">\n",
		kind, EscapeHTML(s.ID), stylemap.Shape(s.Style, s))

	body, err := r.shapeBody(s)
	if err != nil {
		r.logger.Warn("shape render failed", "slide", slide, "shape", s.ID, "kind", kind, "error", err)
		body = shapeErrorHTML
	}
	b.WriteString(body)
	b.WriteString("    </div>\n")
}

// contentRenderers writes the body for each kind of shape content. The
// shape's Content is guaranteed to match the kind it is looked up by,
// except that a nil Content is rendered as generic.
var contentRenderers = map[types.Kind]func(b *strings.Builder, s *types.Shape){
	types.KindTextBox: func(b *strings.Builder, s *types.Shape) {
		textBox(b, s.Content.(types.TextBox))
	},
	types.KindImage: func(b *strings.Builder, s *types.Shape) {
		image(b, s, s.Content.(types.Image))
	},
	types.KindTable: func(b *strings.Builder, s *types.Shape) {
		table(b, s, s.Content.(types.TableFrame).Table)
	},
	types.KindChart: func(b *strings.Builder, s *types.Shape) {
		fmt.Fprintf(b, "<div class=\"chart-placeholder\"%s>[Chart: %s]</div>\n",
			styleAttr(stylemap.Generic(s.Style, s)), EscapeHTML(s.Content.(types.Chart).Name))
	},
	types.KindGeneric: func(b *strings.Builder, s *types.Shape) {
		g, _ := s.Content.(types.Generic)
		generic(b, s, g)
	},
}

// shapeBody dispatches on the shape's kind. A panic inside a
// sub-renderer is turned into an error so one bad shape cannot abort the
// whole document.
func (r *Renderer) shapeBody(s *types.Shape) (body string, err error) {
	defer func() {
		if p := recover(); p != nil {
			body, err = "", fmt.Errorf("rendering shape %q: %v", s.ID, p)
		}
	}()

	kind := s.Kind()
	render, ok := contentRenderers[kind]
	if !ok {
		return "", fmt.Errorf("no renderer for %s shape content %T", kind, s.Content)
	}
	var b strings.Builder
	render(&b, s)
	return b.String(), nil
}

func generic(b *strings.Builder, s *types.Shape, g types.Generic) {
	if stylemap.ClassifyShapeType(g.ShapeType) == stylemap.FormArrow {
		fmt.Fprintf(b, "<div class=\"arrow-shape\" style=\"%s\"></div>\n", stylemap.Generic(s.Style, s))
		return
	}
	fmt.Fprintf(b, "<div class=\"other-shape\" style=\"%s\">%s</div>\n",
		stylemap.Generic(s.Style, s), EscapeHTML(g.Name))
}
