// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"cogentcore.org/viewport/cursors"
	"cogentcore.org/viewport/events"
	"cogentcore.org/viewport/events/key"
	"cogentcore.org/viewport/math32"
)

// HandleEvent processes one host-forwarded event, running the resize,
// drag-to-move, and external drag state machines. The host forwards
// all pointer and key events at its own document level, because
// gestures must keep receiving moves after the pointer leaves the
// window. Events the window consumes are marked handled; everything
// else is left for the host and content. Before Init all events are
// ignored.
func (wn *Window) HandleEvent(e events.Event) {
	if !wn.ready {
		return
	}
	switch e.Type() {
	case events.MouseDown:
		wn.mouseDown(e)
	case events.MouseMove:
		wn.externalMove(e)
		wn.hoverCursor(e)
	case events.MouseDrag:
		wn.externalMove(e)
		wn.resizeMove(e)
		wn.dragMove(e)
	case events.MouseUp:
		wn.externalUp(e)
		wn.endResize(e)
		wn.endMove(e)
	case events.KeyChord:
		wn.keyChord(e)
	case events.Scroll:
		wn.scroll(e)
	case events.DoubleClick:
		wn.doubleClick(e)
	case events.WindowResize:
		if we, ok := e.(*events.WindowEvent); ok {
			wn.observeSize(we.Size)
		}
	case events.WindowPaint:
		wn.needsRender.Store(true)
	case events.FocusLost:
		wn.handleFocused = false
	}
}

// mouseDown routes a press: a resize handle claims it first, then the
// drag-to-move region. Handle presses are inert while a preset pins
// the size, but still keep drags from starting on the handle.
func (wn *Window) mouseDown(e events.Event) {
	screen := math32.Vector2FromPoint(e.WindowPos())
	if h, on := wn.HandleAt(screen); on {
		if wn.Preset == nil {
			wn.startResize(h, e)
		}
		return
	}
	if wn.canDrag(e) {
		wn.startMove(e)
	}
}

// hoverCursor updates the cursor for a plain pointer move: the
// directional resize cursor over a handle, the grab cursor over the
// draggable region, and the default arrow elsewhere. Active gestures
// own the cursor instead.
func (wn *Window) hoverCursor(e events.Event) {
	if wn.resizing != nil || wn.dragging != nil {
		return
	}
	screen := math32.Vector2FromPoint(e.WindowPos())
	if h, on := wn.HandleAt(screen); on && wn.Preset == nil {
		wn.cursor = h.Cursor()
		return
	}
	if wn.Draggable && wn.canDrag(e) {
		wn.cursor = cursors.Grab
		return
	}
	wn.cursor = cursors.Arrow
}

// keyChord routes key chords: arrows resize through the focused
// handle, and Control+0/+/- drive the zoom as in desktop browsers.
func (wn *Window) keyChord(e events.Event) {
	if e.HasAllModifiers(key.Control) {
		switch e.KeyRune() {
		case '+', '=':
			wn.ZoomIn()
			e.SetHandled()
			return
		case '-':
			wn.ZoomOut()
			e.SetHandled()
			return
		case '0':
			wn.ResetZoom()
			e.SetHandled()
			return
		}
	}
	wn.keyResize(e)
}

// scroll zooms the window on Control+scroll, one [ZoomStep] per
// wheel notch, matching the usual zoom gesture. Plain scrolling is
// left for the content.
func (wn *Window) scroll(e events.Event) {
	if !e.HasAllModifiers(key.Control) {
		return
	}
	se, ok := e.(*events.MouseScroll)
	if !ok {
		return
	}
	switch {
	case se.Delta.Y > 0:
		wn.ZoomIn()
	case se.Delta.Y < 0:
		wn.ZoomOut()
	default:
		return
	}
	e.SetHandled()
}

// doubleClick resets the zoom on Control+double-click. Plain double
// clicks are left for the content.
func (wn *Window) doubleClick(e events.Event) {
	if !e.HasAllModifiers(key.Control) {
		return
	}
	if !wn.Contains(math32.Vector2FromPoint(e.WindowPos())) {
		return
	}
	wn.ResetZoom()
	e.SetHandled()
}
