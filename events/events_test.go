// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"cogentcore.org/viewport/events/key"
	"github.com/stretchr/testify/assert"
)

func TestListenersReverseOrder(t *testing.T) {
	var ls Listeners
	order := []string{}
	ls.Add(Click, func(e Event) {
		order = append(order, "first")
	})
	ls.Add(Click, func(e Event) {
		order = append(order, "second")
	})
	e := NewMouse(Click, Left, image.Pt(10, 10), 0)
	e.Init()
	ls.Call(e)
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestListenersHandled(t *testing.T) {
	var ls Listeners
	got := 0
	ls.Add(Click, func(e Event) {
		got++
	})
	ls.Add(Click, func(e Event) {
		got++
		e.SetHandled()
	})
	e := NewMouse(Click, Left, image.Pt(10, 10), 0)
	e.Init()
	ls.Call(e)
	assert.Equal(t, 1, got)

	// handled events are not delivered again
	ls.Call(e)
	assert.Equal(t, 1, got)
}

func TestBasePositions(t *testing.T) {
	e := NewMouseDrag(Left, image.Pt(30, 40), image.Pt(25, 35), image.Pt(10, 10), 0)
	e.Init()
	e.SetLocalOff(image.Pt(5, 5))
	assert.Equal(t, image.Pt(30, 40), e.WindowPos())
	assert.Equal(t, image.Pt(25, 35), e.Pos())
	assert.Equal(t, image.Pt(5, 5), e.StartPos())
	assert.Equal(t, image.Pt(20, 30), e.StartDelta())
	assert.Equal(t, image.Pt(20, 30), e.PrevPos())
	assert.Equal(t, image.Pt(5, 5), e.PrevDelta())
	assert.True(t, e.HasPos())
}

func TestNewFromClone(t *testing.T) {
	down := NewMouse(MouseDown, Left, image.Pt(7, 9), 0)
	down.Init()
	down.SetHandled()
	click := down.NewFromClone(Click)
	assert.Equal(t, Click, click.Type())
	assert.False(t, click.IsHandled())
	assert.Equal(t, image.Pt(7, 9), click.Pos())
	assert.Equal(t, Left, click.MouseButton())
}

func TestKeyEvent(t *testing.T) {
	e := NewKey(KeyChord, 'a', key.CodeA, 0)
	e.Init()
	assert.Equal(t, key.Chord("a"), e.KeyChord())
	assert.True(t, e.NeedsFocus())
	assert.False(t, e.HasPos())

	var mods key.Modifiers
	mods.SetFlag(true, key.Shift)
	se := NewKey(KeyDown, 0, key.CodeRightArrow, mods)
	se.Init()
	assert.Equal(t, key.Chord("Shift+RightArrow"), se.KeyChord())
	assert.True(t, se.HasAnyModifier(key.Shift))
	assert.False(t, se.HasAllModifiers(key.Shift, key.Control))
}

func TestExternalDrag(t *testing.T) {
	e := NewExternalDrag(DragEnter, 3, image.Pt(1, 2), 0, "payload")
	e.Init()
	assert.Equal(t, PointerID(3), e.PointerID())
	assert.Equal(t, "payload", e.AsBase().Data)
	assert.True(t, e.HasPos())
	assert.Nil(t, e.Source)
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "MouseDown", MouseDown.String())
	assert.Equal(t, "Drop", Drop.String())
	var typ Types
	assert.NoError(t, typ.SetString("WindowResize"))
	assert.Equal(t, WindowResize, typ)
}
