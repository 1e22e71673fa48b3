// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"image"
	"testing"

	"cogentcore.org/viewport/cursors"
	"cogentcore.org/viewport/events"
	"cogentcore.org/viewport/events/key"
	"cogentcore.org/viewport/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mouseDown(x, y int) events.Event {
	return events.NewMouse(events.MouseDown, events.Left, image.Pt(x, y), 0)
}

func mouseDrag(x, y, sx, sy int) events.Event {
	return events.NewMouseDrag(events.Left, image.Pt(x, y), image.Pt(sx, sy), image.Pt(sx, sy), 0)
}

func mouseUp(x, y int) events.Event {
	return events.NewMouse(events.MouseUp, events.Left, image.Pt(x, y), 0)
}

func arrow(code key.Codes, mods key.Modifiers) events.Event {
	return events.NewKey(events.KeyChord, 0, code, mods)
}

func shiftMod() key.Modifiers {
	var m key.Modifiers
	m.SetFlag(true, key.Shift)
	return m
}

func ctrlMod() key.Modifiers {
	var m key.Modifiers
	m.SetFlag(true, key.Control)
	return m
}

func TestHandleAt(t *testing.T) {
	wn := newTestWindow() // 400x300 at (100,100)

	tests := []struct {
		pt   math32.Vector2
		want Handles
		ok   bool
	}{
		{math32.Vec2(500, 400), HandleSE, true},
		{math32.Vec2(100, 100), HandleNW, true},
		{math32.Vec2(300, 100), HandleN, true},
		{math32.Vec2(103, 250), HandleW, true},
		{math32.Vec2(497, 252), HandleE, true},
		{math32.Vec2(300, 250), 0, false},
		{math32.Vec2(0, 0), 0, false},
	}
	for _, tt := range tests {
		h, ok := wn.HandleAt(tt.pt)
		assert.Equal(t, tt.ok, ok, "%v", tt.pt)
		if tt.ok {
			assert.Equal(t, tt.want, h, "%v", tt.pt)
		}
	}

	wn.SetShowHandles(false)
	_, ok := wn.HandleAt(math32.Vec2(500, 400))
	assert.False(t, ok, "hidden handles never hit")
}

func TestPointerResize(t *testing.T) {
	wn := newTestWindow()
	var sizes []image.Point
	wn.OnResize = func(sz image.Point) {
		sizes = append(sizes, sz)
	}

	wn.HandleEvent(mouseDown(500, 400))
	require.NotNil(t, wn.resizing)
	assert.Equal(t, HandleSE, wn.resizing.handle)
	assert.Equal(t, cursors.ResizeSE, wn.Cursor())

	wn.HandleEvent(mouseDrag(550, 430, 500, 400))
	assert.Equal(t, image.Pt(450, 330), wn.Size())
	wn.HandleEvent(mouseDrag(560, 420, 500, 400))
	assert.Equal(t, image.Pt(460, 320), wn.Size())

	wn.HandleEvent(mouseUp(560, 420))
	assert.Nil(t, wn.resizing)
	assert.Equal(t, cursors.Arrow, wn.Cursor())
	assert.Equal(t, []image.Point{{450, 330}, {460, 320}}, sizes)

	// moves after release change nothing
	wn.HandleEvent(mouseDrag(800, 800, 500, 400))
	assert.Equal(t, image.Pt(460, 320), wn.Size())
}

func TestResizeHandleEdges(t *testing.T) {
	anchors := map[Handles]image.Point{
		HandleN:  {300, 100},
		HandleNE: {500, 100},
		HandleE:  {500, 250},
		HandleSE: {500, 400},
		HandleS:  {300, 400},
		HandleSW: {100, 400},
		HandleW:  {100, 250},
		HandleNW: {100, 100},
	}
	wants := map[Handles]image.Point{
		HandleN:  {400, 276},
		HandleNE: {440, 276},
		HandleE:  {440, 300},
		HandleSE: {440, 324},
		HandleS:  {400, 324},
		HandleSW: {360, 324},
		HandleW:  {360, 300},
		HandleNW: {360, 276},
	}
	for h := HandleN; h < HandlesN; h++ {
		wn := newTestWindow()
		a := anchors[h]
		wn.HandleEvent(mouseDown(a.X, a.Y))
		require.NotNil(t, wn.resizing, h.String())
		assert.Equal(t, h, wn.resizing.handle, h.String())

		wn.HandleEvent(mouseDrag(a.X+40, a.Y+24, a.X, a.Y))
		assert.Equal(t, wants[h], wn.Size(), h.String())
		wn.HandleEvent(mouseUp(a.X+40, a.Y+24))
	}
}

func TestResizeClamp(t *testing.T) {
	wn := newTestWindow()
	wn.HandleEvent(mouseDown(500, 400))
	require.NotNil(t, wn.resizing)

	wn.HandleEvent(mouseDrag(500-10000, 400-10000, 500, 400))
	assert.Equal(t, wn.Min, wn.Size(), "any delta clamps to Min")

	wn.HandleEvent(mouseDrag(500+100000, 400+100000, 500, 400))
	assert.Equal(t, wn.Max, wn.Size(), "any delta clamps to Max")

	wn.HandleEvent(mouseUp(500, 400))
}

func TestResizeScaleCompensation(t *testing.T) {
	wn := NewWindow(nil)
	wn.StartPos = image.Pt(100, 100)
	wn.StartSize = image.Pt(200, 150)
	wn.StartScale = 2
	wn.Init()

	// screen box is {100,100}..{500,400}; screen deltas are halved
	wn.HandleEvent(mouseDown(500, 400))
	require.NotNil(t, wn.resizing)
	wn.HandleEvent(mouseDrag(600, 450, 500, 400))
	assert.Equal(t, image.Pt(250, 175), wn.Size())
}

func TestResizeSuppression(t *testing.T) {
	wn := newTestWindow()
	var count int
	wn.OnResize = func(image.Point) {
		count++
	}

	wn.HandleEvent(mouseDown(500, 400))
	wn.HandleEvent(mouseDrag(550, 430, 500, 400))
	assert.Equal(t, 1, count)

	// the size observer is suppressed for the whole gesture
	wn.HandleEvent(events.NewWindowResize(image.Pt(450, 330)))
	wn.HandleEvent(events.NewWindowResize(image.Pt(999, 888)))
	assert.Equal(t, image.Pt(450, 330), wn.Size())
	assert.Equal(t, 1, count)

	wn.HandleEvent(mouseUp(550, 430))

	// after the gesture the observer reconciles again
	wn.HandleEvent(events.NewWindowResize(image.Pt(700, 500)))
	assert.Equal(t, image.Pt(700, 500), wn.Size())
	assert.Equal(t, 2, count)
}

func TestKeyboardResize(t *testing.T) {
	wn := newTestWindow()
	wn.FocusHandle(HandleE)

	wn.HandleEvent(arrow(key.CodeRightArrow, 0))
	assert.Equal(t, image.Pt(401, 300), wn.Size())
	wn.HandleEvent(arrow(key.CodeLeftArrow, 0))
	assert.Equal(t, image.Pt(400, 300), wn.Size())
	wn.HandleEvent(arrow(key.CodeRightArrow, shiftMod()))
	assert.Equal(t, image.Pt(410, 300), wn.Size())

	// west edge inverts the sign: left grows
	wn.FocusHandle(HandleW)
	wn.HandleEvent(arrow(key.CodeLeftArrow, 0))
	assert.Equal(t, image.Pt(411, 300), wn.Size())

	// arrows along an axis the handle does not resize are left alone
	wn.HandleEvent(arrow(key.CodeUpArrow, 0))
	assert.Equal(t, image.Pt(411, 300), wn.Size())

	// corner handles resize both axes
	wn.FocusHandle(HandleNW)
	wn.HandleEvent(arrow(key.CodeUpArrow, shiftMod()))
	assert.Equal(t, image.Pt(411, 310), wn.Size())

	// without focus nothing happens
	wn.BlurHandles()
	wn.HandleEvent(arrow(key.CodeRightArrow, 0))
	assert.Equal(t, image.Pt(411, 310), wn.Size())

	// focus is dropped when the host reports focus loss
	wn.FocusHandle(HandleE)
	wn.HandleEvent(events.NewKey(events.FocusLost, 0, 0, 0))
	wn.HandleEvent(arrow(key.CodeRightArrow, 0))
	assert.Equal(t, image.Pt(411, 310), wn.Size())
}

func TestKeyboardResizeClamp(t *testing.T) {
	wn := NewWindow(nil)
	wn.Min = image.Pt(398, 298)
	wn.StartSize = image.Pt(400, 300)
	wn.Init()
	wn.FocusHandle(HandleW)

	// west edge with a right arrow shrinks, clamped to Min
	wn.HandleEvent(arrow(key.CodeRightArrow, shiftMod()))
	assert.Equal(t, image.Pt(398, 300), wn.Size())
}

func TestZoomKeys(t *testing.T) {
	wn := newTestWindow()
	wn.HandleEvent(events.NewKey(events.KeyChord, '+', 0, ctrlMod()))
	assert.Equal(t, float32(1.1), wn.Scale())
	wn.HandleEvent(events.NewKey(events.KeyChord, '-', 0, ctrlMod()))
	wn.HandleEvent(events.NewKey(events.KeyChord, '-', 0, ctrlMod()))
	assert.Equal(t, float32(0.9), wn.Scale())
	wn.HandleEvent(events.NewKey(events.KeyChord, '0', 0, ctrlMod()))
	assert.Equal(t, float32(1), wn.Scale())

	// without Control the runes are ordinary typing
	wn.HandleEvent(events.NewKey(events.KeyChord, '+', 0, 0))
	assert.Equal(t, float32(1), wn.Scale())
}

func TestScrollZoom(t *testing.T) {
	wn := newTestWindow()
	wn.HandleEvent(events.NewScroll(image.Pt(300, 250), math32.Vec2(0, 1), ctrlMod()))
	assert.Equal(t, float32(1.1), wn.Scale())
	wn.HandleEvent(events.NewScroll(image.Pt(300, 250), math32.Vec2(0, -1), ctrlMod()))
	assert.Equal(t, float32(1), wn.Scale())

	// plain scrolling is left for the content
	wn.HandleEvent(events.NewScroll(image.Pt(300, 250), math32.Vec2(0, 1), 0))
	assert.Equal(t, float32(1), wn.Scale())
}

func TestPresetBlocksResize(t *testing.T) {
	wn := newTestWindow()
	wn.SetPresetName("iPhone SE")
	require.NotNil(t, wn.Preset)
	assert.Equal(t, image.Pt(375, 667), wn.Size())

	// handle presses are inert while the preset pins the size
	wn.HandleEvent(mouseDown(475, 767))
	assert.Nil(t, wn.resizing)

	wn.FocusHandle(HandleE)
	wn.HandleEvent(arrow(key.CodeRightArrow, 0))
	assert.Equal(t, image.Pt(375, 667), wn.Size())
}

func TestObserveSize(t *testing.T) {
	wn := newTestWindow()

	wn.HandleEvent(events.NewWindowResize(image.Pt(0, 500)))
	assert.Equal(t, image.Pt(400, 300), wn.Size(), "degenerate sizes are ignored")

	wn.HandleEvent(events.NewWindowResize(image.Pt(500, 420)))
	assert.Equal(t, image.Pt(500, 420), wn.Size())

	wn.SetPresetName("Pixel 7")
	wn.HandleEvent(events.NewWindowResize(image.Pt(800, 600)))
	assert.Equal(t, image.Pt(412, 915), wn.Size(), "a preset pins the size against observation")
}
