// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"image"

	"cogentcore.org/viewport/cursors"
	"cogentcore.org/viewport/events"
	"cogentcore.org/viewport/math32"
	"cogentcore.org/viewport/styles/abilities"
)

// Target describes the interactive element under a content-local
// point, resolved by the host's [Window.HitTest].
type Target struct {

	// Abilities are the interaction abilities of the element.
	Abilities abilities.Abilities

	// Cursor is the cursor the element shows when hovered.
	Cursor cursors.Cursor
}

// interactive reports whether the target must keep pointer presses for
// itself: pressable or focusable elements, and anything showing the
// pointer cursor.
func (t Target) interactive() bool {
	return t.Abilities.IsPressable() || t.Abilities.Is(abilities.Focusable) || t.Cursor == cursors.Pointer
}

// dragSession is the transient state of one drag-to-move gesture,
// from pointer-down on the drag region to pointer-up.
type dragSession struct {
	pointer  events.PointerID
	start    math32.Vector2
	startPos image.Point
}

// canDrag reports whether a drag-to-move may start at the given
// pointer-down. The press must land in the drag region, and must not
// claim a resize handle or an interactive content element.
func (wn *Window) canDrag(e events.Event) bool {
	if !wn.Draggable {
		return false
	}
	screen := math32.Vector2FromPoint(e.WindowPos())
	if !wn.Contains(screen) {
		return false
	}
	if _, on := wn.HandleAt(screen); on {
		return false
	}
	local, ok := wn.LocalPoint(screen)
	if !ok {
		return false
	}
	if wn.DragRegion != (image.Rectangle{}) && !local.ToPointFloor().In(wn.DragRegion) {
		return false
	}
	if wn.HitTest != nil && wn.HitTest(local).interactive() {
		return false
	}
	return true
}

// startMove begins a drag-to-move gesture, recording the start
// pointer position and start window position.
func (wn *Window) startMove(e events.Event) {
	wn.dragging = &dragSession{
		pointer:  e.PointerID(),
		start:    math32.Vector2FromPoint(e.WindowPos()),
		startPos: wn.pos,
	}
	wn.cursor = cursors.Grabbing
	e.SetHandled()
}

// dragMove repositions the window for one pointer move during a
// drag-to-move gesture. The position follows the pointer delta with
// no clamping, and the host is notified on every move that changes it.
func (wn *Window) dragMove(e events.Event) {
	ds := wn.dragging
	if ds == nil || e.PointerID() != ds.pointer {
		return
	}
	d := math32.Vector2FromPoint(e.WindowPos()).Sub(ds.start)
	wn.commitPos(ds.startPos.Add(d.ToPointRound()))
	e.SetHandled()
}

// endMove clears the drag session on pointer-up.
func (wn *Window) endMove(e events.Event) {
	if wn.dragging == nil || e.PointerID() != wn.dragging.pointer {
		return
	}
	wn.dragging = nil
	wn.cursor = cursors.Arrow
	e.SetHandled()
}
