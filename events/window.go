// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
)

// WinActions is the action taken on the window by the host,
// for the Window event type.
type WinActions int32 //enums:enum

const (
	// NoWinAction is the zero value, indicating no action
	NoWinAction WinActions = iota

	// WinClose means the window is being closed and torn down
	WinClose

	// WinShow means the window has been shown for the first time,
	// after its isolation boundary became ready
	WinShow

	// WinFocus means the host region containing the window
	// has received keyboard focus
	WinFocus

	// WinFocusLost means the host region containing the window
	// has lost keyboard focus
	WinFocusLost

	// WinScreenUpdate means the screen environment has changed,
	// such as the device pixel ratio after a host zoom change
	WinScreenUpdate
)

// WindowEvent reports on actions taken on the window by the host,
// and carries the host region size for WindowResize events.
type WindowEvent struct {
	Base

	// Action taken on the window: what has changed.
	Action WinActions

	// Size is the current host region size in raw display dots,
	// for WindowResize events.
	Size image.Point
}

func NewWindow(act WinActions) *WindowEvent {
	ev := &WindowEvent{}
	ev.Typ = Window
	ev.Action = act
	ev.SetUnique()
	return ev
}

func NewWindowResize(sz image.Point) *WindowEvent {
	ev := &WindowEvent{}
	ev.Typ = WindowResize
	ev.Size = sz
	// not unique
	return ev
}

func NewWindowPaint() *WindowEvent {
	ev := &WindowEvent{}
	ev.Typ = WindowPaint
	// not unique
	return ev
}

func (ev *WindowEvent) HasPos() bool {
	return false
}

func (ev *WindowEvent) String() string {
	return fmt.Sprintf("%v{Action: %v, Time: %v}", ev.Type(), ev.Action, ev.Time().Format("04:05"))
}
