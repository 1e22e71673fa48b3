// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"cogentcore.org/viewport/events/key"
)

// DragDrop is the event for all drag-and-drop sequence events
// (DragStart, DragMove, DragEnter, DragLeave, Drop).
// The payload being dragged is in the Data field.
type DragDrop struct {
	Base

	// Source is the object that originated the drag, for drags starting
	// within the surface. It is nil for drags forwarded from an external
	// source, which are identified by their PointerID instead.
	Source any
}

func (ev *DragDrop) HasPos() bool {
	return true
}

func (ev *DragDrop) String() string {
	return fmt.Sprintf("%v{Pointer: %v, Pos: %v, Data: %v, Time: %v}", ev.Type(), ev.Pointer, ev.Where, ev.Data, ev.Time().Format("04:05"))
}

// NewDragDrop returns a new drag event of the given type, originating
// from the given source object within the surface.
func NewDragDrop(typ Types, source any, where image.Point, mods key.Modifiers) *DragDrop {
	ev := &DragDrop{}
	ev.Typ = typ
	ev.SetUnique()
	ev.Source = source
	ev.Where = where
	ev.Mods = mods
	return ev
}

// NewExternalDrag returns a new drag event of the given type forwarded
// from an external source, identified by the given pointer id, with the
// given position, modifiers, and payload data.
func NewExternalDrag(typ Types, id PointerID, where image.Point, mods key.Modifiers, data any) *DragDrop {
	ev := &DragDrop{}
	ev.Typ = typ
	ev.SetUnique()
	ev.Pointer = id
	ev.Where = where
	ev.Mods = mods
	ev.Data = data
	return ev
}
