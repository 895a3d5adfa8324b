// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import "math"

const (
	// emuPerPixel converts English Metric Units to CSS pixels at 96 DPI.
	emuPerPixel = 9525

	// defaultLineWidth is the outline width used when ln has no w (1pt).
	defaultLineWidth = 12700
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func emuToPx(emu float64) float64 {
	return round2(emu / emuPerPixel)
}

func pointsToPx(pt float64) float64 {
	return round2(pt * 4 / 3)
}

// transform maps child coordinates of nested groups into slide
// coordinates, all in EMU.
type transform struct {
	sx, sy float64
	tx, ty float64
}

var identity = transform{sx: 1, sy: 1}

// group composes t with the child coordinate space of a group shape.
func (t transform) group(x *xXfrm) transform {
	if x == nil || x.Off == nil || x.Ext == nil {
		return t
	}
	g := transform{sx: 1, sy: 1, tx: float64(x.Off.X), ty: float64(x.Off.Y)}
	if x.ChExt != nil && x.ChExt.Cx != 0 && x.ChExt.Cy != 0 {
		g.sx = float64(x.Ext.Cx) / float64(x.ChExt.Cx)
		g.sy = float64(x.Ext.Cy) / float64(x.ChExt.Cy)
	}
	if x.ChOff != nil {
		g.tx -= float64(x.ChOff.X) * g.sx
		g.ty -= float64(x.ChOff.Y) * g.sy
	}
	return transform{
		sx: t.sx * g.sx,
		sy: t.sy * g.sy,
		tx: t.sx*g.tx + t.tx,
		ty: t.sy*g.ty + t.ty,
	}
}

// rect returns the pixel geometry of x under t.
func (t transform) rect(x *xXfrm) (left, top, width, height float64) {
	if x == nil {
		return 0, 0, 0, 0
	}
	if x.Off != nil {
		left = emuToPx(t.sx*float64(x.Off.X) + t.tx)
		top = emuToPx(t.sy*float64(x.Off.Y) + t.ty)
	} else {
		left, top = emuToPx(t.tx), emuToPx(t.ty)
	}
	if x.Ext != nil {
		width = emuToPx(t.sx * float64(x.Ext.Cx))
		height = emuToPx(t.sy * float64(x.Ext.Cy))
	}
	return left, top, width, height
}
