// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"image"
	"image/color"

	"cogentcore.org/viewport/base/errors"
	"cogentcore.org/viewport/base/iox/imagex"
	"cogentcore.org/viewport/math32"
	"cogentcore.org/viewport/paint"
	"golang.org/x/image/draw"
)

// Presentation is one rendered frame of the window for the host to
// composite: the pixels at the zoomed screen size, and the host
// position to place them at.
type Presentation struct {

	// Pixels is the rendered frame at the screen (zoomed) size.
	Pixels *image.RGBA

	// Pos is the host position of the frame's top-left corner.
	Pos image.Point
}

// Bounds returns the screen-space rectangle the presentation covers,
// the same box [Window.Contains] tests against.
func (pr *Presentation) Bounds() image.Rectangle {
	return pr.Pixels.Bounds().Sub(pr.Pixels.Bounds().Min).Add(pr.Pos)
}

var (
	// handleStroke is the outline color of the window ring and the
	// resize handles.
	handleStroke = color.RGBA{R: 0x42, G: 0x85, B: 0xf4, A: 255}

	// handleFill is the fill color of the resize handles.
	handleFill = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// NeedsRender reports whether the window has visual changes pending
// since the last [Window.Render]: geometry changes, style injection,
// or a chrome clock tick.
func (wn *Window) NeedsRender() bool {
	return wn.needsRender.Load()
}

// renderContent renders the mounted content into the boundary raster
// at the logical size. The error is returned for explicit callers;
// the live render path logs it and keeps the previous pixels.
func (wn *Window) renderContent() error {
	if wn.Content == nil {
		return nil
	}
	pc := paint.NewPainter(wn.bound.pixels)
	ctx := &RenderContext{Size: wn.size, Styles: wn.bound.Styles, Media: wn.bound.sim}
	return wn.Content.Render(pc, ctx)
}

// Render produces the current presentation of the window: content
// rendered at the logical size, device chrome composited over it when
// visible, the frame scaled by the live zoom, and handle affordances
// drawn in screen space. It returns nil before Init. Render clears
// the needs-render flag.
func (wn *Window) Render() *Presentation {
	if !wn.ready {
		return nil
	}
	wn.needsRender.Store(false)
	errors.Log(wn.renderContent())

	frame := wn.bound.pixels
	if wn.ShowChrome && wn.Preset != nil {
		frame = imagex.CloneAsRGBA(wn.bound.pixels)
		wn.drawChrome(frame)
	}
	out := wn.scaleFrame(frame)
	if wn.ShowHandles {
		if out == wn.bound.pixels {
			out = imagex.CloneAsRGBA(out)
		}
		wn.drawHandles(out)
	}
	return &Presentation{Pixels: out, Pos: wn.pos}
}

// scaleFrame scales the logical frame by the live zoom: nearest
// neighbor at integral zooms, where it is exact, and bilinear for
// fractional ones. A zoom of 1 passes the frame through.
func (wn *Window) scaleFrame(frame *image.RGBA) *image.RGBA {
	if wn.scale == 1 {
		return frame
	}
	sz := math32.Vector2FromPoint(frame.Bounds().Size()).MulScalar(wn.scale).ToPointRound()
	sz.X = max(sz.X, 1)
	sz.Y = max(sz.Y, 1)
	out := image.NewRGBA(image.Rectangle{Max: sz})
	if wn.scale == math32.Floor(wn.scale) {
		draw.NearestNeighbor.Scale(out, out.Bounds(), frame, frame.Bounds(), draw.Src, nil)
	} else {
		draw.BiLinear.Scale(out, out.Bounds(), frame, frame.Bounds(), draw.Src, nil)
	}
	return out
}

// drawHandles draws the resize affordances onto the presentation in
// screen space: a one pixel outline ring and the eight handle
// squares, clipped to the window bounds. Handle geometry is constant
// in screen pixels regardless of zoom.
func (wn *Window) drawHandles(img *image.RGBA) {
	sz := img.Bounds().Size()
	pc := paint.NewPainter(img)
	pc.StrokeColor = handleStroke
	pc.StrokeWidth = 1
	pc.StrokeRectangle(0.5, 0.5, float32(sz.X)-1, float32(sz.Y)-1)

	box := math32.Box2{Max: math32.Vec2(float32(sz.X), float32(sz.Y))}
	for h := HandleN; h < HandlesN; h++ {
		r := h.rect(box)
		pc.FillColor = handleFill
		pc.DrawRectangle(r.Min.X, r.Min.Y, r.Size().X, r.Size().Y)
		pc.Fill()
		pc.StrokeRectangle(r.Min.X, r.Min.Y, r.Size().X, r.Size().Y)
	}
}
