// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"image"

	"cogentcore.org/viewport/mediaquery"
)

// Boundary is the isolation scope of a window: the raster root that
// content renders into at the logical content size, the style scope
// injected styles accumulate in, and the simulated media environment.
// It is created once by [Window.Init] and lives for the window.
type Boundary struct {

	// Styles is the style scope of the boundary. Styles injected with
	// [Window.AddGlobalStyle] accumulate here and apply only within
	// the boundary.
	Styles *Stylesheet

	// pixels is the raster root, allocated at the logical content
	// size and reallocated on every size change.
	pixels *image.RGBA

	// sim is the media query simulator, wired to the live window
	// geometry.
	sim *mediaquery.Simulator
}

func newBoundary(size image.Point, sim *mediaquery.Simulator) *Boundary {
	bd := &Boundary{Styles: &Stylesheet{}, sim: sim}
	bd.setSize(size)
	return bd
}

// setSize reallocates the raster root at the given logical size.
func (bd *Boundary) setSize(size image.Point) {
	bd.pixels = image.NewRGBA(image.Rectangle{Max: size})
}

// Pixels returns the raster root of the boundary: the live image that
// content renders into, at the logical content size.
func (bd *Boundary) Pixels() *image.RGBA {
	return bd.pixels
}

// Simulator returns the boundary's media query simulator.
func (bd *Boundary) Simulator() *mediaquery.Simulator {
	return bd.sim
}
