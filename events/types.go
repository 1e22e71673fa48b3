// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

//go:generate core generate

// Types determines the type of event, and also the level at which
// one can select which events to listen to. The type includes both
// the source / nature of the event and the "action" type of the event
// (e.g., MouseDown and MouseUp are separate event types). The standard
// [JavaScript Event](https://developer.mozilla.org/en-US/docs/Web/Events)
// types provide the basis for most of the event type names and categories.
// Most events use the same Base type and only need to set relevant
// fields and the type. Unless otherwise noted, all events are marked as
// Unique, meaning they are always delivered. Non-unique events may be
// coalesced by the host event source, with the Prev position updated
// across coalesced moves.
type Types int64 //enums:enum

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	// See Button() for which. See Click for a synthetic event
	// representing a MouseDown followed by MouseUp on the same
	// element, which is often the most useful.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button() for which.
	MouseUp

	// MouseMove is always sent when the mouse is moving but no button is down.
	// These can be numerous, so it is typically more efficient to listen to
	// other events derived from this. Not unique, and the Prev position is
	// updated during coalescing.
	MouseMove

	// MouseDrag is always sent when the mouse is moving and a button is down.
	// The Start position indicates where (and when) the button was first
	// pressed. Not unique, and the Prev position is updated during coalescing.
	MouseDrag

	// Click represents a MouseDown followed by MouseUp in sequence on the
	// same element, with the same button. See Button() for which.
	// This is the typical event for most basic user interaction.
	Click

	// DoubleClick represents two Click events in a row in rapid succession.
	// See Button() for which.
	DoubleClick

	// MouseEnter is when the mouse enters the bounding box of a new element.
	// It is used for setting the Hover state, and can trigger cursor changes.
	// See DragEnter for the alternative case during drag events.
	MouseEnter

	// MouseLeave is when the mouse leaves the bounding box of an element
	// that previously had a MouseEnter event triggered.
	// See DragLeave for the alternative case during drag events.
	MouseLeave

	// DragStart is at the start of a drag-and-drop event sequence.
	DragStart

	// DragMove is sent as the pointer moves during a drag-and-drop
	// sequence. Usually you don't need to listen to this one.
	DragMove

	// DragEnter is like MouseEnter but during a drag-and-drop sequence.
	// MouseEnter is not sent in this case.
	DragEnter

	// DragLeave is like MouseLeave but during a drag-and-drop sequence.
	// MouseLeave is not sent in this case.
	DragLeave

	// Drop is the final action of the drag-and-drop sequence, when an
	// item being dragged is released on top of a target element.
	// The Data field holds the payload being dropped.
	Drop

	// Scroll is for scroll wheel or other scrolling events (gestures).
	// These are not unique, and Delta is integrated during coalescing.
	Scroll

	// KeyDown is when a key is pressed down.
	// This provides fine-grained data about each key as it happens.
	// KeyChord is recommended for a more complete key event.
	KeyDown

	// KeyUp is when a key is released.
	// This provides fine-grained data about each key as it happens.
	// KeyChord is recommended for a more complete key event.
	KeyUp

	// KeyChord is only generated when a non-modifier key is released,
	// and it also contains a string representation of the full chord,
	// suitable for translation into keyboard commands.
	KeyChord

	// Focus is sent when an element receives keyboard focus.
	Focus

	// FocusLost is sent when an element loses keyboard focus.
	FocusLost

	// Change is when a value represented by the element has changed,
	// such as the size or scale of a window after a resize episode.
	Change

	// Window reports on changes in the window state: see [WinActions].
	// These are only sent once per event (Unique).
	Window

	// WindowResize happens when the region hosting the window has been
	// resized, which can happen continuously during a user resizing
	// episode. These are not unique events, and are coalesced to
	// minimize lag.
	WindowResize

	// WindowPaint is sent to drive an update check on the window.
	// It is not unique, and is coalesced to keep pace with updating.
	WindowPaint

	// Custom is a user-defined event with a Data any field.
	Custom
)

// EventFlags encode boolean event properties
type EventFlags int64 //enums:bitflag

const (
	// Handled indicates that the event has been handled
	Handled EventFlags = iota

	// Unique indicates that the event is not to be coalesced
	// with like events.
	Unique
)
