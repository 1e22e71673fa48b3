// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abilities defines the interaction abilities of window regions.
package abilities

//go:generate core generate

import "cogentcore.org/viewport/enums"

// Abilities represent the abilities of interactive window regions,
// such as resize handles, title bars, and the content area,
// to respond to different kinds of input events.
type Abilities int64 //enums:bitflag

const (
	// Activatable means it can be made Active by pressing down on it.
	// This also implies Clickable, receiving Click events when
	// the user executes a mouse down and up event on the same region.
	Activatable Abilities = iota

	// Clickable means it can be Clicked, receiving Click events when
	// the user executes a mouse down and up event on the same region,
	// but otherwise does not change when pressed (as Activatable does).
	Clickable

	// DoubleClickable indicates that a region does something different
	// when it is clicked on twice in a row.
	DoubleClickable

	// Draggable means it can be Dragged to move the window.
	Draggable

	// Droppable means it can receive DragEnter, DragLeave, and Drop events
	// (not specific to the current drag payload, just generally).
	Droppable

	// Slideable means it can be dragged to change a value,
	// as the resize handles change the window size.
	// Cannot be both Draggable and Slideable.
	Slideable

	// Scrollable means it can be Scrolled.
	Scrollable

	// Focusable means it can be Focused: capable of receiving and
	// processing key events directly.
	Focusable

	// Hoverable means it can be Hovered, which drives cursor changes.
	Hoverable
)

var (
	// Pressable is the list of abilities that makes something Pressable
	Pressable = []Abilities{Activatable, DoubleClickable, Draggable, Slideable, Clickable}

	pressableBits = []enums.BitFlag{Activatable, DoubleClickable, Draggable, Slideable, Clickable}
)

// Is is a shortcut for HasFlag for Abilities
func (ab *Abilities) Is(flag enums.BitFlag) bool {
	return ab.HasFlag(flag)
}

// IsPressable returns true when a region is Activatable,
// DoubleClickable, Draggable, Slideable, or Clickable.
func (ab *Abilities) IsPressable() bool {
	return enums.HasAnyFlags((*int64)(ab), pressableBits...)
}
