// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/viewport/cursors"
	"cogentcore.org/viewport/events"
	"cogentcore.org/viewport/math32"
	"cogentcore.org/viewport/styles/abilities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraggableWindow() *Window {
	wn := NewWindow(solidContent(color.RGBA{R: 250, G: 250, B: 250, A: 255}))
	wn.StartSize = image.Pt(400, 300)
	wn.StartPos = image.Pt(100, 100)
	wn.Draggable = true
	wn.Init()
	return wn
}

func TestDragMove(t *testing.T) {
	wn := newDraggableWindow()
	var moves []image.Point
	wn.OnPositionChange = func(p image.Point) {
		moves = append(moves, p)
	}

	down := mouseDown(300, 250)
	wn.HandleEvent(down)
	require.NotNil(t, wn.dragging)
	assert.True(t, down.IsHandled())
	assert.Equal(t, cursors.Grabbing, wn.Cursor())

	wn.HandleEvent(mouseDrag(340, 270, 300, 250))
	assert.Equal(t, image.Pt(140, 120), wn.Pos())
	wn.HandleEvent(mouseDrag(90, 80, 300, 250))
	assert.Equal(t, image.Pt(-110, -70), wn.Pos(), "position is unconstrained")

	wn.HandleEvent(mouseUp(90, 80))
	assert.Nil(t, wn.dragging)
	assert.Equal(t, cursors.Arrow, wn.Cursor())
	assert.Equal(t, []image.Point{{140, 120}, {-110, -70}}, moves)

	// moves after release change nothing
	wn.HandleEvent(mouseDrag(500, 500, 300, 250))
	assert.Equal(t, image.Pt(-110, -70), wn.Pos())
}

func TestDragGating(t *testing.T) {
	wn := newTestWindow()
	wn.HandleEvent(mouseDown(300, 250))
	assert.Nil(t, wn.dragging, "dragging is opt-in")

	wd := newDraggableWindow()
	wd.HandleEvent(mouseDown(50, 50))
	assert.Nil(t, wd.dragging, "presses outside never drag")

	// a handle press resizes instead
	wd.HandleEvent(mouseDown(500, 400))
	assert.Nil(t, wd.dragging)
	assert.NotNil(t, wd.resizing)
	wd.HandleEvent(mouseUp(500, 400))
}

func TestDragRegion(t *testing.T) {
	wn := NewWindow(nil)
	wn.StartSize = image.Pt(400, 300)
	wn.StartPos = image.Pt(100, 100)
	wn.Draggable = true
	wn.DragRegion = image.Rect(0, 0, 400, 40)
	wn.Init()

	wn.HandleEvent(mouseDown(300, 250))
	assert.Nil(t, wn.dragging, "presses below the bar do not drag")

	wn.HandleEvent(mouseDown(300, 120))
	require.NotNil(t, wn.dragging)
	wn.HandleEvent(mouseUp(300, 120))
}

func TestDragHitTest(t *testing.T) {
	wn := NewWindow(nil)
	wn.StartSize = image.Pt(400, 300)
	wn.StartPos = image.Pt(100, 100)
	wn.Draggable = true
	wn.HitTest = func(local math32.Vector2) Target {
		p := local.ToPointFloor()
		switch {
		case p.In(image.Rect(20, 20, 120, 60)):
			var ab abilities.Abilities
			ab.SetFlag(true, abilities.Activatable)
			return Target{Abilities: ab, Cursor: cursors.Arrow}
		case p.In(image.Rect(20, 80, 120, 100)):
			return Target{Cursor: cursors.Pointer}
		}
		return Target{}
	}
	wn.Init()

	wn.HandleEvent(mouseDown(125, 130))
	assert.Nil(t, wn.dragging, "a button keeps the press")

	wn.HandleEvent(mouseDown(125, 190))
	assert.Nil(t, wn.dragging, "a link keeps the press")

	wn.HandleEvent(mouseDown(300, 250))
	require.NotNil(t, wn.dragging, "plain content drags")
	wn.HandleEvent(mouseUp(300, 250))
}

func TestDragControlledPosition(t *testing.T) {
	wn := NewWindow(nil)
	wn.StartSize = image.Pt(400, 300)
	wn.StartPos = image.Pt(100, 100)
	wn.Draggable = true
	wn.ControlledPosition = true
	var moves []image.Point
	wn.OnPositionChange = func(p image.Point) {
		moves = append(moves, p)
	}
	wn.Init()

	wn.HandleEvent(mouseDown(300, 250))
	wn.HandleEvent(mouseDrag(350, 280, 300, 250))
	assert.Equal(t, []image.Point{{150, 130}}, moves)
	assert.Equal(t, image.Pt(100, 100), wn.Pos(), "the host owns controlled position")

	wn.SetPosQuiet(image.Pt(150, 130))
	assert.Equal(t, image.Pt(150, 130), wn.Pos())
	assert.Len(t, moves, 1)
	wn.HandleEvent(mouseUp(350, 280))
}

func TestHoverCursor(t *testing.T) {
	wn := newDraggableWindow()

	wn.HandleEvent(events.NewMouseMove(events.NoButton, image.Pt(500, 400), image.Pt(499, 399), 0))
	assert.Equal(t, cursors.ResizeSE, wn.Cursor())

	wn.HandleEvent(events.NewMouseMove(events.NoButton, image.Pt(300, 250), image.Pt(500, 400), 0))
	assert.Equal(t, cursors.Grab, wn.Cursor())

	wn.HandleEvent(events.NewMouseMove(events.NoButton, image.Pt(50, 50), image.Pt(300, 250), 0))
	assert.Equal(t, cursors.Arrow, wn.Cursor())

	wn.SetPresetName("iPhone SE")
	wn.HandleEvent(events.NewMouseMove(events.NoButton, image.Pt(475, 767), image.Pt(474, 766), 0))
	assert.Equal(t, cursors.Arrow, wn.Cursor(), "no resize cursor while a preset pins the size")
}
