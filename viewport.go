// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewport provides an embeddable virtual window: an isolated,
// resizable, movable, zoomable design surface that renders arbitrary
// content at a logical size, simulates device characteristics through
// presets, frame chrome, and media queries, bridges externally
// registered pointer drags into content-local coordinates, and exports
// its pixels as encoded images.
//
// A [Window] is driven entirely by its host. The host forwards pointer
// and key events to [Window.HandleEvent], composites the presentation
// from [Window.Render] onto its own surface, and receives geometry
// changes through the On* callbacks. The window owns the isolation
// boundary (its raster root and style scope), all geometry state, and
// all interaction state machines; hosts read and set geometry only
// through the imperative surface, never by reaching into window state.
//
// Everything here must be used from one goroutine, the host's event
// loop. The only concession to other goroutines is the chrome clock
// timer, which marks the window as needing render through an atomic
// flag.
package viewport

//go:generate core generate

import (
	"image"

	"cogentcore.org/viewport/mediaquery"
	"cogentcore.org/viewport/paint"
)

var (
	// DefaultMin is the minimum content size used when [Window.Min]
	// is left zero.
	DefaultMin = image.Point{200, 150}

	// DefaultMax is the maximum content size used when [Window.Max]
	// is left zero.
	DefaultMax = image.Point{3840, 2160}

	// DefaultSize is the starting content size used when
	// [Window.StartSize] is left zero.
	DefaultSize = image.Point{800, 600}
)

const (
	// MinScale and MaxScale bound the zoom factor of every window.
	MinScale float32 = 0.1
	MaxScale float32 = 5

	// ZoomStep is the scale increment of [Window.ZoomIn] and
	// [Window.ZoomOut], with results rounded to one decimal.
	ZoomStep float32 = 0.1
)

// Content is the renderable a host mounts inside a window. Render draws
// the content into the painter's image, which has the logical size
// given in the context. Render errors are returned to the caller from
// explicit operations such as export; during live rendering they are
// logged and the previous pixels are kept.
type Content interface {
	Render(pc *paint.Painter, ctx *RenderContext) error
}

// ContentFunc adapts a plain function to the [Content] interface.
type ContentFunc func(pc *paint.Painter, ctx *RenderContext) error

func (f ContentFunc) Render(pc *paint.Painter, ctx *RenderContext) error {
	return f(pc, ctx)
}

// RenderContext carries what mounted content needs to draw itself.
type RenderContext struct {

	// Size is the logical content size in pixels.
	Size image.Point

	// Styles is the boundary's injected style scope.
	Styles *Stylesheet

	// Media evaluates media queries against the simulated environment.
	Media *mediaquery.Simulator
}
