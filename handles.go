// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"cogentcore.org/viewport/cursors"
	"cogentcore.org/viewport/math32"
)

// Handles are the eight compass resize handles on a window's outline.
type Handles int32 //enums:enum -trim-prefix Handle -transform lower

const (
	// HandleN resizes the north edge.
	HandleN Handles = iota

	// HandleNE resizes the north and east edges together.
	HandleNE

	// HandleE resizes the east edge.
	HandleE

	// HandleSE resizes the south and east edges together.
	HandleSE

	// HandleS resizes the south edge.
	HandleS

	// HandleSW resizes the south and west edges together.
	HandleSW

	// HandleW resizes the west edge.
	HandleW

	// HandleNW resizes the north and west edges together.
	HandleNW
)

// HandleSize is the side length in screen pixels of the square handle
// affordances, for both drawing and hit testing. Handles are drawn in
// screen space, so their size does not change with the window zoom.
const HandleSize float32 = 8

// Edges returns the per-axis sign of the edges the handle touches:
// +1 for east and south, -1 for west and north, and 0 for an axis
// the handle does not resize. A positive pointer delta along an axis
// with sign +1 grows the window on that axis.
func (h Handles) Edges() (x, y int) {
	switch h {
	case HandleN:
		return 0, -1
	case HandleNE:
		return 1, -1
	case HandleE:
		return 1, 0
	case HandleSE:
		return 1, 1
	case HandleS:
		return 0, 1
	case HandleSW:
		return -1, 1
	case HandleW:
		return -1, 0
	case HandleNW:
		return -1, -1
	}
	return 0, 0
}

// Cursor returns the directional resize cursor shown over the handle.
func (h Handles) Cursor() cursors.Cursor {
	switch h {
	case HandleN:
		return cursors.ResizeN
	case HandleNE:
		return cursors.ResizeNE
	case HandleE:
		return cursors.ResizeE
	case HandleSE:
		return cursors.ResizeSE
	case HandleS:
		return cursors.ResizeS
	case HandleSW:
		return cursors.ResizeSW
	case HandleW:
		return cursors.ResizeW
	case HandleNW:
		return cursors.ResizeNW
	}
	return cursors.Arrow
}

// anchor returns the handle's anchor point on the given screen-space
// outline: corners at the corners, edge handles at edge midpoints.
func (h Handles) anchor(box math32.Box2) math32.Vector2 {
	c := box.Min.Add(box.Max).MulScalar(0.5)
	switch h {
	case HandleN:
		return math32.Vec2(c.X, box.Min.Y)
	case HandleNE:
		return math32.Vec2(box.Max.X, box.Min.Y)
	case HandleE:
		return math32.Vec2(box.Max.X, c.Y)
	case HandleSE:
		return box.Max
	case HandleS:
		return math32.Vec2(c.X, box.Max.Y)
	case HandleSW:
		return math32.Vec2(box.Min.X, box.Max.Y)
	case HandleW:
		return math32.Vec2(box.Min.X, c.Y)
	case HandleNW:
		return box.Min
	}
	return c
}

// rect returns the handle's screen-space zone, a [HandleSize] square
// centered on its anchor point.
func (h Handles) rect(box math32.Box2) math32.Box2 {
	a := h.anchor(box)
	return math32.Box2{Min: a.SubScalar(HandleSize / 2), Max: a.AddScalar(HandleSize / 2)}
}

// handleOrder is the hit-test priority of the handles, with corners
// before edges so the overlapping zones at small window sizes resolve
// to the two-axis handle.
var handleOrder = []Handles{HandleNE, HandleSE, HandleSW, HandleNW, HandleN, HandleE, HandleS, HandleW}

// HandleAt returns the resize handle whose screen-space zone contains
// the given point. It reports false when handles are hidden or no
// zone contains the point.
func (wn *Window) HandleAt(screen math32.Vector2) (Handles, bool) {
	if !wn.ready || !wn.ShowHandles {
		return 0, false
	}
	box := wn.screenBox()
	for _, h := range handleOrder {
		if h.rect(box).ContainsPoint(screen) {
			return h, true
		}
	}
	return 0, false
}
