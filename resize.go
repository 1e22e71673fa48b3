// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"image"

	"cogentcore.org/viewport/cursors"
	"cogentcore.org/viewport/events"
	"cogentcore.org/viewport/events/key"
	"cogentcore.org/viewport/math32"
)

// resizeSession is the transient state of one pointer resize gesture,
// from pointer-down on a handle to pointer-up.
type resizeSession struct {
	handle    Handles
	pointer   events.PointerID
	start     math32.Vector2
	startSize image.Point
}

// startResize begins a pointer resize gesture on the given handle,
// recording the start pointer position and start size. The observer
// suppression flag is held for the whole gesture so the size observer
// never reports the same change a second time. The handle also takes
// keyboard focus.
func (wn *Window) startResize(h Handles, e events.Event) {
	wn.resizing = &resizeSession{
		handle:    h,
		pointer:   e.PointerID(),
		start:     math32.Vector2FromPoint(e.WindowPos()),
		startSize: wn.size,
	}
	wn.suppressObserve = true
	wn.focusHandle = h
	wn.handleFocused = true
	wn.cursor = h.Cursor()
}

// resizeMove updates the size for one pointer move during a resize
// gesture. The pointer delta is divided by the zoom so the grabbed
// handle tracks the pointer, applied per axis with the sign of the
// handle's edges, and each axis is clamped independently to
// [Min, Max]. The host is notified on every move that changes size.
func (wn *Window) resizeMove(e events.Event) {
	rs := wn.resizing
	if rs == nil || e.PointerID() != rs.pointer {
		return
	}
	d := math32.Vector2FromPoint(e.WindowPos()).Sub(rs.start).DivScalar(wn.scale)
	ex, ey := rs.handle.Edges()
	sz := rs.startSize
	if ex != 0 {
		sz.X = math32.Clamp(rs.startSize.X+ex*int(d.X), wn.Min.X, wn.Max.X)
	}
	if ey != 0 {
		sz.Y = math32.Clamp(rs.startSize.Y+ey*int(d.Y), wn.Min.Y, wn.Max.Y)
	}
	wn.commitSize(sz)
	e.SetHandled()
}

// endResize clears the resize session and releases the observer
// suppression on pointer-up.
func (wn *Window) endResize(e events.Event) {
	if wn.resizing == nil || e.PointerID() != wn.resizing.pointer {
		return
	}
	wn.resizing = nil
	wn.suppressObserve = false
	wn.cursor = cursors.Arrow
	e.SetHandled()
}

// FocusHandle gives keyboard focus to the given resize handle, so that
// arrow keys step its edges. Pointer-down on a handle focuses it too.
func (wn *Window) FocusHandle(h Handles) {
	wn.focusHandle = h
	wn.handleFocused = true
}

// BlurHandles removes keyboard focus from the resize handles.
func (wn *Window) BlurHandles() {
	wn.handleFocused = false
}

// keyResize applies one keyboard resize step to the focused handle.
// Arrow keys step the handle's edges by 1 content pixel, or 10 with
// Shift; opposite edges invert the direction sign, so the left arrow
// grows a west edge and shrinks an east edge. Each axis is clamped to
// [Min, Max]. Arrows along an axis the handle does not resize are
// left for the host.
func (wn *Window) keyResize(e events.Event) {
	if !wn.handleFocused || wn.Preset != nil {
		return
	}
	var dir image.Point
	switch e.KeyCode() {
	case key.CodeLeftArrow:
		dir.X = -1
	case key.CodeRightArrow:
		dir.X = 1
	case key.CodeUpArrow:
		dir.Y = -1
	case key.CodeDownArrow:
		dir.Y = 1
	default:
		return
	}
	step := 1
	if e.HasAllModifiers(key.Shift) {
		step = 10
	}
	ex, ey := wn.focusHandle.Edges()
	if dir.X*ex == 0 && dir.Y*ey == 0 {
		return
	}
	sz := wn.size
	if dir.X != 0 {
		sz.X = math32.Clamp(sz.X+dir.X*ex*step, wn.Min.X, wn.Max.X)
	}
	if dir.Y != 0 {
		sz.Y = math32.Clamp(sz.Y+dir.Y*ey*step, wn.Min.Y, wn.Max.Y)
	}
	wn.commitSize(sz)
	e.SetHandled()
}

// observeSize reconciles an externally observed content size, coming
// from :host style rules or host WindowResize events. It is ignored
// during an interactive resize gesture, which holds the suppression
// flag, so exactly one notification fires per size change. An active
// preset pins the size against observation as well.
func (wn *Window) observeSize(sz image.Point) {
	if wn.suppressObserve || wn.Preset != nil {
		return
	}
	if sz.X < 1 || sz.Y < 1 || sz == wn.size {
		return
	}
	wn.commitSize(sz)
}
