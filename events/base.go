// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the event structures and listener
// infrastructure used to drive interaction with virtual windows.
package events

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/viewport/enums"
	"cogentcore.org/viewport/events/key"
)

// Event is the interface for all events: the Base type implements it,
// and all other event types embed Base.
type Event interface {
	fmt.Stringer

	// Type returns the type of event associated with given event
	Type() Types

	// AsBase returns this event as a Base event type,
	// which is the underlying type for all events.
	AsBase() *Base

	// IsUnique returns true if this event must always be delivered,
	// and not coalesced with a like event already pending.
	IsUnique() bool

	// HasPos returns true if the event has a position associated with it.
	HasPos() bool

	// NeedsFocus returns true if the event is routed to the
	// current keyboard focus element, instead of by position.
	NeedsFocus() bool

	// WindowPos returns the original window-based position in raw display
	// dots (pixels) where the event took place.
	WindowPos() image.Point

	// SetLocalOff sets the offset subtracted from window-based positions
	// to compute the local versions of positions.
	SetLocalOff(off image.Point)

	// LocalOff returns the offset subtracted from window-based positions
	// to compute the local versions of positions.
	LocalOff() image.Point

	// Pos returns the local position, which is adjusted from the
	// window position via SetLocalOff.
	Pos() image.Point

	// WindowStartPos returns the starting (MouseDown) window-based position.
	WindowStartPos() image.Point

	// StartPos returns the starting (MouseDown) local position.
	StartPos() image.Point

	// StartDelta returns the position change from the starting position.
	StartDelta() image.Point

	// WindowPrevPos returns the previous (MouseMove/Drag) window-based position.
	WindowPrevPos() image.Point

	// PrevPos returns the previous (MouseMove/Drag) local position.
	PrevPos() image.Point

	// PrevDelta returns the position change from the previous position.
	PrevDelta() image.Point

	// Time returns the time at which the event was generated.
	Time() time.Time

	// StartTime returns the time at which the event started,
	// for events tracking a sequence (MouseDrag).
	StartTime() time.Time

	// SinceStart returns the time elapsed since the start time.
	SinceStart() time.Duration

	// PrevTime returns the time of the previous event in a sequence.
	PrevTime() time.Time

	// SincePrev returns the time elapsed since the previous event.
	SincePrev() time.Duration

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// so no further processing occurs.
	SetHandled()

	// ClearHandled marks the event as no longer having been processed.
	ClearHandled()

	// Init sets the time to now, and any other initialization.
	// Done automatically in constructors.
	Init()

	// Clone returns a duplicate of this event with the basic event
	// parameters copied, and the Handled flag cleared.
	Clone() *Base

	// NewFromClone returns a duplicate of this event with the basic event
	// parameters copied, and the type set to the given type.
	NewFromClone(typ Types) Event

	// MouseButton is the mouse button being pressed or released, for
	// relevant events.
	MouseButton() Buttons

	// PointerID returns the id of the pointing device generating this
	// event, distinguishing concurrent pointers from multiple devices
	// or external sources. The zero value is the primary pointer.
	PointerID() PointerID

	// Modifiers returns the modifier keys present at time of event.
	Modifiers() key.Modifiers

	// HasAllModifiers returns whether all of the given
	// modifier keys were present at time of event.
	HasAllModifiers(mods ...enums.BitFlag) bool

	// HasAnyModifier returns whether any of the given
	// modifier keys were present at time of event.
	HasAnyModifier(mods ...enums.BitFlag) bool

	// KeyRune returns the rune associated with a key event.
	KeyRune() rune

	// KeyCode returns the code associated with a key event.
	KeyCode() key.Codes

	// KeyChord returns the chord string representation for a key event.
	KeyChord() key.Chord
}

// Base is the base type for events, which can be used directly
// and is embedded in all other event types.
type Base struct {
	// Typ is the type of event, returned by Type()
	Typ Types

	// Flags records event boolean state, using atomic flag operations
	Flags EventFlags

	// GenTime records the time when the event was first generated
	GenTime time.Time

	// Mods is the modifier keys present at time of event
	Mods key.Modifiers

	// Where is the window-based position in raw display dots
	// (pixels) where the event took place
	Where image.Point

	// Start is the window-based starting position of a sequence (MouseDown)
	Start image.Point

	// StTime is the time of the starting position
	StTime time.Time

	// Prev is the window-based previous position in a sequence of moves
	Prev image.Point

	// PrvTime is the time of the previous position
	PrvTime time.Time

	// Button is the mouse button being pressed or released, for mouse events
	Button Buttons

	// Pointer is the id of the pointing device generating the event,
	// for distinguishing concurrent pointers. Zero is the primary pointer.
	Pointer PointerID

	// Rune is the meaning of the key event as determined by the
	// operating system, for key events
	Rune rune

	// Code is the physical key code, for key events
	Code key.Codes

	// LclOff is the local offset subtracted from window-based
	// positions to compute local positions
	LclOff image.Point

	// Data is any additional data associated with the event
	Data any
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) AsBase() *Base {
	return ev
}

func (ev *Base) Init() {
	ev.GenTime = time.Now()
}

// SetTime sets the event time to now.
func (ev *Base) SetTime() {
	ev.GenTime = time.Now()
}

// SetUnique marks the event as unique, so it is never coalesced.
func (ev *Base) SetUnique() {
	ev.Flags.SetFlag(true, Unique)
}

func (ev *Base) IsUnique() bool {
	return ev.Flags.HasFlag(Unique)
}

func (ev *Base) IsHandled() bool {
	return ev.Flags.HasFlag(Handled)
}

func (ev *Base) SetHandled() {
	ev.Flags.SetFlag(true, Handled)
}

func (ev *Base) ClearHandled() {
	ev.Flags.SetFlag(false, Handled)
}

// Clone returns a duplicate of this event with the basic event parameters
// copied, and the Handled flag cleared, so it is ready to be sent again.
func (ev *Base) Clone() *Base {
	nc := &Base{}
	*nc = *ev
	nc.ClearHandled()
	return nc
}

func (ev *Base) NewFromClone(typ Types) Event {
	nc := ev.Clone()
	nc.Typ = typ
	return nc
}

func (ev *Base) HasPos() bool {
	return false
}

func (ev *Base) NeedsFocus() bool {
	return false
}

func (ev *Base) WindowPos() image.Point {
	return ev.Where
}

func (ev *Base) SetLocalOff(off image.Point) {
	ev.LclOff = off
}

func (ev *Base) LocalOff() image.Point {
	return ev.LclOff
}

func (ev *Base) Pos() image.Point {
	return ev.Where.Sub(ev.LclOff)
}

func (ev *Base) WindowStartPos() image.Point {
	return ev.Start
}

func (ev *Base) StartPos() image.Point {
	return ev.Start.Sub(ev.LclOff)
}

func (ev *Base) StartDelta() image.Point {
	return ev.Where.Sub(ev.Start)
}

func (ev *Base) WindowPrevPos() image.Point {
	return ev.Prev
}

func (ev *Base) PrevPos() image.Point {
	return ev.Prev.Sub(ev.LclOff)
}

func (ev *Base) PrevDelta() image.Point {
	return ev.Where.Sub(ev.Prev)
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) StartTime() time.Time {
	return ev.StTime
}

func (ev *Base) SinceStart() time.Duration {
	return ev.Time().Sub(ev.StartTime())
}

func (ev *Base) PrevTime() time.Time {
	return ev.PrvTime
}

func (ev *Base) SincePrev() time.Duration {
	return ev.Time().Sub(ev.PrevTime())
}

func (ev *Base) MouseButton() Buttons {
	return ev.Button
}

func (ev *Base) PointerID() PointerID {
	return ev.Pointer
}

func (ev *Base) Modifiers() key.Modifiers {
	return ev.Mods
}

func (ev *Base) HasAllModifiers(mods ...enums.BitFlag) bool {
	return key.HasAllModifiers(ev.Mods, mods...)
}

func (ev *Base) HasAnyModifier(mods ...enums.BitFlag) bool {
	return key.HasAnyModifier(ev.Mods, mods...)
}

func (ev *Base) KeyRune() rune {
	return ev.Rune
}

func (ev *Base) KeyCode() key.Codes {
	return ev.Code
}

func (ev *Base) KeyChord() key.Chord {
	return key.NewChord(ev.Rune, ev.Code, ev.Mods)
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v}", ev.Type(), ev.Time().Format("04:05"))
}
