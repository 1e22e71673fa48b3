// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint provides a compact CPU rasterizer used to draw device
// chrome and composite export images. It renders anti-aliased filled
// paths through golang.org/x/image/vector, and glyph-outline text from
// embedded Latin Modern fonts.
package paint

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/viewport/math32"
	"cogentcore.org/viewport/styles/sides"
	"golang.org/x/image/vector"
)

// kappa is the cubic bezier circle approximation constant, 4*(sqrt(2)-1)/3.
const kappa = 0.5522848

// Painter draws anti-aliased vector shapes and text onto an RGBA image.
// It maintains a current path, built with MoveTo, LineTo, QuadTo, CubeTo
// and the Draw shape helpers, which Fill consumes.
type Painter struct {

	// Image is the destination image being painted onto.
	Image *image.RGBA

	// FillColor is the color used by Fill and DrawText.
	FillColor color.RGBA

	// StrokeColor is the color used by the Stroke helpers.
	StrokeColor color.RGBA

	// StrokeWidth is the width in pixels of stroked lines.
	StrokeWidth float32

	ras        *vector.Rasterizer
	start      math32.Vector2
	current    math32.Vector2
	hasCurrent bool
}

// NewPainter returns a new [Painter] drawing onto the given image,
// with a default stroke width of 1.
func NewPainter(img *image.RGBA) *Painter {
	sz := img.Bounds().Size()
	pt := &Painter{Image: img, StrokeWidth: 1}
	pt.ras = vector.NewRasterizer(sz.X, sz.Y)
	return pt
}

// MoveTo starts a new subpath within the current path starting at the
// specified point.
func (pt *Painter) MoveTo(x, y float32) {
	if pt.hasCurrent {
		pt.ras.ClosePath()
	}
	pt.ras.MoveTo(x, y)
	pt.start = math32.Vec2(x, y)
	pt.current = pt.start
	pt.hasCurrent = true
}

// LineTo adds a line segment to the current path starting at the current
// point. If there is no current point, it is equivalent to MoveTo(x, y).
func (pt *Painter) LineTo(x, y float32) {
	if !pt.hasCurrent {
		pt.MoveTo(x, y)
		return
	}
	pt.ras.LineTo(x, y)
	pt.current = math32.Vec2(x, y)
}

// QuadTo adds a quadratic bezier curve to the current path starting at
// the current point. If there is no current point, it first performs
// MoveTo(x1, y1).
func (pt *Painter) QuadTo(x1, y1, x2, y2 float32) {
	if !pt.hasCurrent {
		pt.MoveTo(x1, y1)
	}
	pt.ras.QuadTo(x1, y1, x2, y2)
	pt.current = math32.Vec2(x2, y2)
}

// CubeTo adds a cubic bezier curve to the current path starting at the
// current point. If there is no current point, it first performs
// MoveTo(x1, y1).
func (pt *Painter) CubeTo(x1, y1, x2, y2, x3, y3 float32) {
	if !pt.hasCurrent {
		pt.MoveTo(x1, y1)
	}
	pt.ras.CubeTo(x1, y1, x2, y2, x3, y3)
	pt.current = math32.Vec2(x3, y3)
}

// ClosePath adds a line segment from the current point to the beginning
// of the current subpath. If there is no current point, this is a no-op.
func (pt *Painter) ClosePath() {
	if pt.hasCurrent {
		pt.ras.ClosePath()
		pt.current = pt.start
	}
}

// ClearPath clears the current path. There is no current point after
// this operation.
func (pt *Painter) ClearPath() {
	sz := pt.Image.Bounds().Size()
	pt.ras.Reset(sz.X, sz.Y)
	pt.hasCurrent = false
}

// Fill fills the current path with the fill color. Open subpaths
// are implicitly closed. The path is cleared after this operation.
func (pt *Painter) Fill() {
	pt.fillWith(pt.FillColor)
}

func (pt *Painter) fillWith(clr color.RGBA) {
	if pt.hasCurrent {
		pt.ras.ClosePath()
	}
	if clr.A == 0 {
		pt.ClearPath()
		return
	}
	pt.ras.Draw(pt.Image, pt.Image.Bounds(), image.NewUniform(clr), image.Point{})
	pt.ClearPath()
}

// DrawRectangle adds (but does not fill) a standard rectangle
// to the current path.
func (pt *Painter) DrawRectangle(x, y, w, h float32) {
	pt.MoveTo(x, y)
	pt.LineTo(x+w, y)
	pt.LineTo(x+w, y+h)
	pt.LineTo(x, y+h)
	pt.ClosePath()
}

// DrawRoundedRectangle adds a standard rounded rectangle with the given
// x and y position, width and height, and border radius for each corner
// to the current path. The radius sides correspond to the corners as
// follows: Top = top left, Right = top right, Bottom = bottom right,
// Left = bottom left.
func (pt *Painter) DrawRoundedRectangle(x, y, w, h float32, r sides.Floats) {
	// clamp border radius values
	mn := math32.Min(w/2, h/2)
	tl := math32.Clamp(r.Top, 0, mn)
	tr := math32.Clamp(r.Right, 0, mn)
	br := math32.Clamp(r.Bottom, 0, mn)
	bl := math32.Clamp(r.Left, 0, mn)

	pt.MoveTo(x+tl, y)
	pt.LineTo(x+w-tr, y)
	if tr != 0 {
		pt.CubeTo(x+w-tr+kappa*tr, y, x+w, y+tr-kappa*tr, x+w, y+tr)
	}
	pt.LineTo(x+w, y+h-br)
	if br != 0 {
		pt.CubeTo(x+w, y+h-br+kappa*br, x+w-br+kappa*br, y+h, x+w-br, y+h)
	}
	pt.LineTo(x+bl, y+h)
	if bl != 0 {
		pt.CubeTo(x+bl-kappa*bl, y+h, x, y+h-bl+kappa*bl, x, y+h-bl)
	}
	pt.LineTo(x, y+tl)
	if tl != 0 {
		pt.CubeTo(x, y+tl-kappa*tl, x+tl-kappa*tl, y, x+tl, y)
	}
	pt.ClosePath()
}

// DrawCircle adds a circle with the given center and radius
// to the current path.
func (pt *Painter) DrawCircle(cx, cy, r float32) {
	c := kappa * r
	pt.MoveTo(cx+r, cy)
	pt.CubeTo(cx+r, cy+c, cx+c, cy+r, cx, cy+r)
	pt.CubeTo(cx-c, cy+r, cx-r, cy+c, cx-r, cy)
	pt.CubeTo(cx-r, cy-c, cx-c, cy-r, cx, cy-r)
	pt.CubeTo(cx+c, cy-r, cx+r, cy-c, cx+r, cy)
	pt.ClosePath()
}

// StrokeRectangle strokes the outline of the given rectangle, centered
// on its edges, using the stroke color and width.
func (pt *Painter) StrokeRectangle(x, y, w, h float32) {
	hw := 0.5 * pt.StrokeWidth
	// outer ring clockwise
	pt.MoveTo(x-hw, y-hw)
	pt.LineTo(x+w+hw, y-hw)
	pt.LineTo(x+w+hw, y+h+hw)
	pt.LineTo(x-hw, y+h+hw)
	pt.ClosePath()
	// inner ring counterclockwise cancels the interior coverage
	pt.MoveTo(x+hw, y+hw)
	pt.LineTo(x+hw, y+h-hw)
	pt.LineTo(x+w-hw, y+h-hw)
	pt.LineTo(x+w-hw, y+hw)
	pt.ClosePath()
	pt.fillWith(pt.StrokeColor)
}

// StrokeLine strokes a line between the two given points with the
// stroke color and width.
func (pt *Painter) StrokeLine(x1, y1, x2, y2 float32) {
	d := math32.Vec2(x2-x1, y2-y1)
	if d.IsNil() {
		return
	}
	p := math32.Vec2(y1-y2, x2-x1).Normal().MulScalar(0.5 * pt.StrokeWidth)
	pt.MoveTo(x1+p.X, y1+p.Y)
	pt.LineTo(x2+p.X, y2+p.Y)
	pt.LineTo(x2-p.X, y2-p.Y)
	pt.LineTo(x1-p.X, y1-p.Y)
	pt.ClosePath()
	pt.fillWith(pt.StrokeColor)
}

// Clear fills the entire image with the given color,
// replacing any existing content.
func (pt *Painter) Clear(clr color.Color) {
	draw.Draw(pt.Image, pt.Image.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

// FillBox performs an optimized fill of the given rectangular region
// with the given color, without anti-aliasing.
func (pt *Painter) FillBox(r image.Rectangle, clr color.Color) {
	draw.Draw(pt.Image, r, image.NewUniform(clr), image.Point{}, draw.Over)
}

// DrawImage draws the given source image onto the destination at the
// given position, compositing with the Over operator.
func (pt *Painter) DrawImage(src image.Image, at image.Point) {
	r := src.Bounds().Sub(src.Bounds().Min).Add(at)
	draw.Draw(pt.Image, r, src, src.Bounds().Min, draw.Over)
}
