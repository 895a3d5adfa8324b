// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/pdiddy/deckhtml/pkg/types"
)

// slideContext carries what shape conversion needs from the slide part.
type slideContext struct {
	a      *archive
	theme  *theme
	rels   rels
	number int
	ids    map[string]int
	logger *slog.Logger
}

func (sc *slideContext) background(bg *xBackground) string {
	if bg == nil {
		return ""
	}
	var c string
	switch {
	case bg.BgPr != nil:
		c, _ = sc.theme.color(bg.BgPr.SolidFill)
	case bg.BgRef != nil:
		c, _ = sc.theme.color(bg.BgRef)
	}
	return c
}

// tree converts the shapes of a shape tree in paint order. Group children
// are flattened into the slide's coordinate space.
func (sc *slideContext) tree(t *xShapeTree, tr transform) []types.Shape {
	var out []types.Shape
	for _, item := range t.Items {
		if item.Group != nil {
			out = append(out, sc.tree(item.Group, tr.group(item.Group.Xfrm))...)
			continue
		}
		shape, err := sc.shape(item, tr)
		if err != nil {
			sc.logger.Warn("skipping shape", "slide", sc.number, "error", err)
			continue
		}
		if shape != nil {
			out = append(out, *shape)
		}
	}
	return out
}

func (sc *slideContext) shape(item xShapeItem, tr transform) (*types.Shape, error) {
	switch {
	case item.Sp != nil:
		return sc.sp(item.Sp, tr), nil
	case item.Cxn != nil:
		return sc.connector(item.Cxn, tr), nil
	case item.Pic != nil:
		return sc.picture(item.Pic, tr)
	case item.Frame != nil:
		return sc.frame(item.Frame, tr), nil
	}
	return nil, nil
}

// base creates a shape with a slide-unique ID and its geometry.
func (sc *slideContext) base(nv xNvProps, x *xXfrm, tr transform) *types.Shape {
	s := &types.Shape{ID: sc.uniqueID(nv.ID)}
	s.X, s.Y, s.Width, s.Height = tr.rect(x)
	return s
}

func (sc *slideContext) uniqueID(id string) string {
	if id == "" {
		id = "shape"
	}
	n := sc.ids[id]
	sc.ids[id] = n + 1
	if n == 0 {
		return id
	}
	return fmt.Sprintf("%s-%d", id, n+1)
}

// sp converts an auto shape. Shapes with text become text boxes; empty
// placeholders are dropped since they only prompt for input in an editor.
func (sc *slideContext) sp(x *xSp, tr transform) *types.Shape {
	nv := x.nv()
	if nv.CNvPr.Hidden {
		return nil
	}
	text := hasText(x.TxBody)
	if !text && nv.NvPr.Ph != nil {
		return nil
	}

	s := sc.base(nv.CNvPr, x.SpPr.Xfrm, tr)
	s.Style = sc.shapeStyle(&x.SpPr, x.TxBody)
	if text {
		s.Content = types.TextBox{Runs: sc.runs(x.TxBody)}
	} else {
		s.Content = types.Generic{Name: nv.CNvPr.Name, ShapeType: geometryName(&x.SpPr, "")}
	}
	return s
}

func (sc *slideContext) connector(x *xSp, tr transform) *types.Shape {
	nv := x.nv()
	if nv.CNvPr.Hidden {
		return nil
	}
	s := sc.base(nv.CNvPr, x.SpPr.Xfrm, tr)
	s.Style = sc.shapeStyle(&x.SpPr, nil)
	s.Content = types.Generic{Name: nv.CNvPr.Name, ShapeType: geometryName(&x.SpPr, "LINE")}
	return s
}

// picture embeds the blip bytes. A missing media part leaves the image
// empty so it renders as a placeholder; an unreadable one is an error.
func (sc *slideContext) picture(x *xPic, tr transform) (*types.Shape, error) {
	nv := x.NvPicPr.CNvPr
	if nv.Hidden {
		return nil, nil
	}
	img := types.Image{AltText: nv.Descr, Name: nv.Name}
	if rel, ok := sc.rels[x.BlipFill.Blip.Embed]; ok && !rel.external() && sc.a.has(rel.Target) {
		data, err := sc.a.read(rel.Target)
		if err != nil {
			return nil, fmt.Errorf("picture %q: %w", nv.Name, err)
		}
		img.Data = data
		img.Type = mediaType(rel.Target, data)
	}

	s := sc.base(nv, x.SpPr.Xfrm, tr)
	style := &types.Style{}
	sc.border(style, x.SpPr.Ln)
	if !style.IsZero() {
		s.Style = style
	}
	s.Content = img
	return s, nil
}

func (sc *slideContext) frame(x *xGraphicFrame, tr transform) *types.Shape {
	nv := x.NvGraphicFramePr.CNvPr
	if nv.Hidden {
		return nil
	}
	s := sc.base(nv, x.Xfrm, tr)
	data := x.Graphic.Data
	switch {
	case data.Table != nil:
		s.Content = types.TableFrame{Table: sc.table(data.Table)}
	case data.Chart != nil:
		s.Content = types.Chart{Name: nv.Name, ChartType: sc.chartType(data.Chart.RID)}
	default:
		s.Content = types.Generic{Name: nv.Name, ShapeType: "GRAPHIC_FRAME"}
	}
	return s
}

// chartType names the first plot of a chart part, such as BAR or PIE.
func (sc *slideContext) chartType(rid string) string {
	rel, ok := sc.rels[rid]
	if !ok || !strings.HasSuffix(rel.Type, relChart) || !sc.a.has(rel.Target) {
		return ""
	}
	var cs xChartSpace
	if err := sc.a.decode(rel.Target, &cs); err != nil {
		sc.logger.Warn("ignoring chart part", "slide", sc.number, "part", rel.Target, "error", err)
		return ""
	}
	for _, p := range cs.PlotArea.Items {
		if name, ok := strings.CutSuffix(p.XMLName.Local, "Chart"); ok && name != "" {
			return upperSnake(name)
		}
	}
	return ""
}

func (sc *slideContext) shapeStyle(pr *xSpPr, body *xTextBody) *types.Style {
	s := &types.Style{}
	if pr.NoFill == nil {
		fill, alpha := sc.theme.color(pr.SolidFill)
		s.FillColor = fill
		if fill != "" && alpha < 1 {
			s.Opacity = alpha
		}
	}
	sc.border(s, pr.Ln)
	if body != nil {
		s.Alignment = firstAlignment(body)
	}
	if s.IsZero() {
		return nil
	}
	return s
}

// border sets the border of s from an outline with a resolvable colour.
func (sc *slideContext) border(s *types.Style, ln *xLine) {
	if ln == nil || ln.NoFill != nil {
		return
	}
	color, _ := sc.theme.color(ln.SolidFill)
	if color == "" {
		return
	}
	w := ln.W
	if w <= 0 {
		w = defaultLineWidth
	}
	s.BorderColor = color
	s.BorderWidth = emuToPx(float64(w))
}

// geometryName returns the preset geometry in upper snake case
// ("rightArrow" becomes "RIGHT_ARROW").
func geometryName(pr *xSpPr, fallback string) string {
	switch {
	case pr.PrstGeom != nil && pr.PrstGeom.Prst != "":
		return upperSnake(pr.PrstGeom.Prst)
	case pr.CustGeom != nil:
		return "CUSTOM"
	default:
		return fallback
	}
}

func upperSnake(s string) string {
	var b strings.Builder
	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(prev) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
		prev = r
	}
	return b.String()
}
