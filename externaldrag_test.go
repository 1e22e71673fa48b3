// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"image"
	"testing"

	"cogentcore.org/viewport/events"
	"cogentcore.org/viewport/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extMove(id events.PointerID, x, y int) events.Event {
	return events.NewExternalDrag(events.MouseMove, id, image.Pt(x, y), 0, "payload")
}

func extUp(id events.PointerID, x, y int) events.Event {
	return events.NewExternalDrag(events.MouseUp, id, image.Pt(x, y), 0, "payload")
}

// dragLog records the external drag callbacks of one window in order.
type dragLog struct {
	overs  []math32.Vector2
	leaves int
	drops  []math32.Vector2
}

func newDragWindow(t *testing.T) (*Window, *dragLog) {
	t.Helper()
	wn := newTestWindow() // 400x300 at (100,100)
	lg := &dragLog{}
	wn.OnExternalDragOver = func(e events.Event, local math32.Vector2) {
		lg.overs = append(lg.overs, local)
	}
	wn.OnExternalDragLeave = func(e events.Event) {
		lg.leaves++
	}
	wn.OnExternalDrop = func(e events.Event, local math32.Vector2) {
		lg.drops = append(lg.drops, local)
	}
	return wn, lg
}

func TestExternalDragOverLeave(t *testing.T) {
	wn, lg := newDragWindow(t)
	wn.RegisterExternalDrag(7)

	wn.HandleEvent(extMove(7, 50, 50))
	assert.Empty(t, lg.overs, "moves outside report nothing")

	wn.HandleEvent(extMove(7, 200, 200))
	wn.HandleEvent(extMove(7, 300, 250))
	assert.Equal(t, []math32.Vector2{math32.Vec2(100, 100), math32.Vec2(200, 150)}, lg.overs)
	assert.Equal(t, 0, lg.leaves)

	// crossing out reports exactly one leave
	wn.HandleEvent(extMove(7, 600, 600))
	wn.HandleEvent(extMove(7, 700, 700))
	assert.Equal(t, 1, lg.leaves)

	// re-entering resumes over reports
	wn.HandleEvent(extMove(7, 150, 120))
	assert.Equal(t, math32.Vec2(50, 20), lg.overs[len(lg.overs)-1])

	// releasing outside drops nothing and retires the id
	wn.HandleEvent(extMove(7, 600, 50))
	wn.HandleEvent(extUp(7, 600, 50))
	assert.Empty(t, lg.drops)
	assert.Equal(t, 2, lg.leaves)

	wn.HandleEvent(extMove(7, 200, 200))
	assert.Len(t, lg.overs, 3, "retired ids report nothing")
}

func TestExternalDrop(t *testing.T) {
	wn, lg := newDragWindow(t)
	wn.OnExternalDrop = func(e events.Event, local math32.Vector2) {
		lg.drops = append(lg.drops, local)
		dd, ok := e.(*events.DragDrop)
		require.True(t, ok)
		assert.Equal(t, "payload", dd.Data)
	}
	wn.RegisterExternalDrag(7)

	wn.HandleEvent(extMove(7, 200, 200))
	up := extUp(7, 240, 260)
	wn.HandleEvent(up)
	assert.Equal(t, []math32.Vector2{math32.Vec2(140, 160)}, lg.drops)
	assert.Equal(t, 0, lg.leaves, "a drop is not a leave")
	assert.True(t, up.IsHandled())

	wn.HandleEvent(extMove(7, 200, 200))
	assert.Len(t, lg.overs, 1, "the id is retired after the drop")
}

func TestExternalDragUnregistered(t *testing.T) {
	wn, lg := newDragWindow(t)
	wn.RegisterExternalDrag(7)

	wn.HandleEvent(extMove(9, 200, 200))
	up := extUp(9, 200, 200)
	wn.HandleEvent(up)
	assert.Empty(t, lg.overs)
	assert.Empty(t, lg.drops)
	assert.False(t, up.IsHandled())
}

func TestUnregisterExternalDrag(t *testing.T) {
	wn, lg := newDragWindow(t)
	wn.RegisterExternalDrag(7)

	wn.HandleEvent(extMove(7, 200, 200))
	wn.UnregisterExternalDrag(7)
	wn.HandleEvent(extUp(7, 200, 200))
	assert.Empty(t, lg.drops, "cancelled gestures never drop")
}

func TestExternalDragScaled(t *testing.T) {
	wn := NewWindow(nil)
	wn.StartPos = image.Pt(100, 100)
	wn.StartSize = image.Pt(200, 150)
	wn.StartScale = 2
	var overs, drops []math32.Vector2
	wn.OnExternalDragOver = func(e events.Event, local math32.Vector2) {
		overs = append(overs, local)
	}
	wn.OnExternalDrop = func(e events.Event, local math32.Vector2) {
		drops = append(drops, local)
	}
	wn.Init()
	wn.RegisterExternalDrag(3)

	// screen box is {100,100}..{500,400}
	wn.HandleEvent(extMove(3, 300, 250))
	assert.Equal(t, []math32.Vector2{math32.Vec2(100, 75)}, overs)

	wn.HandleEvent(extUp(3, 500, 400))
	assert.Equal(t, []math32.Vector2{math32.Vec2(200, 150)}, drops, "the far edge is inclusive")
}

func TestExternalDragNilCallbacks(t *testing.T) {
	wn := newTestWindow()
	wn.RegisterExternalDrag(7)

	wn.HandleEvent(extMove(7, 200, 200))
	wn.HandleEvent(extMove(7, 600, 600))
	wn.HandleEvent(extMove(7, 200, 200))
	wn.HandleEvent(extUp(7, 200, 200))
}
