// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursors provides the cursor vocabulary for virtual window
// interaction, with mappings to the standard CSS cursor keywords
// used by web hosts.
package cursors

//go:generate core generate

// Cursor represents a cursor shape that can be requested by interactive
// regions of a window, such as resize handles and draggable title bars.
type Cursor int32 //enums:enum -transform kebab

const (
	// None indicates no preference; the host default is used
	None Cursor = iota

	// Arrow is the default arrow pointer
	Arrow

	// Pointer is a pointing hand that indicates that the thing under
	// the pointer is clickable
	Pointer

	// Grab indicates that the thing under the pointer can be grabbed (dragged)
	Grab

	// Grabbing indicates that the thing under the pointer is being grabbed (dragged)
	Grabbing

	// Move indicates that the thing under the pointer can be moved in any direction
	Move

	// NotAllowed indicates that the action under the pointer cannot be performed
	NotAllowed

	// Wait indicates that the program is busy and the user cannot interact
	Wait

	// Crosshair is a plus shape used for precise selection
	Crosshair

	// ZoomIn indicates that the thing under the pointer can be zoomed in on
	ZoomIn

	// ZoomOut indicates that the thing under the pointer can be zoomed out of
	ZoomOut

	// ResizeN indicates the north edge can be moved
	ResizeN

	// ResizeE indicates the east edge can be moved
	ResizeE

	// ResizeS indicates the south edge can be moved
	ResizeS

	// ResizeW indicates the west edge can be moved
	ResizeW

	// ResizeNE indicates the northeast corner can be moved
	ResizeNE

	// ResizeNW indicates the northwest corner can be moved
	ResizeNW

	// ResizeSE indicates the southeast corner can be moved
	ResizeSE

	// ResizeSW indicates the southwest corner can be moved
	ResizeSW

	// ResizeEW indicates the thing can be resized horizontally
	ResizeEW

	// ResizeNS indicates the thing can be resized vertically
	ResizeNS

	// ResizeNESW indicates the thing can be resized along the
	// northeast/southwest diagonal
	ResizeNESW

	// ResizeNWSE indicates the thing can be resized along the
	// northwest/southeast diagonal
	ResizeNWSE
)

// cssNames maps cursors to their CSS cursor keyword equivalents.
var cssNames = map[Cursor]string{
	None:       "",
	Arrow:      "default",
	Pointer:    "pointer",
	Grab:       "grab",
	Grabbing:   "grabbing",
	Move:       "move",
	NotAllowed: "not-allowed",
	Wait:       "wait",
	Crosshair:  "crosshair",
	ZoomIn:     "zoom-in",
	ZoomOut:    "zoom-out",
	ResizeN:    "n-resize",
	ResizeE:    "e-resize",
	ResizeS:    "s-resize",
	ResizeW:    "w-resize",
	ResizeNE:   "ne-resize",
	ResizeNW:   "nw-resize",
	ResizeSE:   "se-resize",
	ResizeSW:   "sw-resize",
	ResizeEW:   "ew-resize",
	ResizeNS:   "ns-resize",
	ResizeNESW: "nesw-resize",
	ResizeNWSE: "nwse-resize",
}

// CSS returns the standard CSS cursor keyword for this cursor,
// for hosts that set cursors through style properties.
func (c Cursor) CSS() string {
	if s, ok := cssNames[c]; ok {
		return s
	}
	return "default"
}
