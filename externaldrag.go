// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"cogentcore.org/viewport/events"
	"cogentcore.org/viewport/math32"
)

// RegisterExternalDrag adds the given pointer id to the external drag
// registry, so that document-level pointer moves carrying it are
// tracked against the window's screen bounds. The external drag
// source calls this when its own interaction begins. The per-id
// inside flag starts false; registry membership and the inside flag
// are always added and removed together.
func (wn *Window) RegisterExternalDrag(id events.PointerID) {
	if wn.external == nil {
		wn.external = map[events.PointerID]bool{}
	}
	wn.external[id] = false
}

// UnregisterExternalDrag removes the given pointer id from the
// registry without implying a drop, for cancelled external gestures.
func (wn *Window) UnregisterExternalDrag(id events.PointerID) {
	delete(wn.external, id)
}

// externalMove tracks one document-level pointer move for a
// registered external drag. Moving into or staying inside the window
// emits OnExternalDragOver with the content-local position on every
// move; crossing from inside to outside emits one OnExternalDragLeave.
// Unregistered ids never produce notifications.
func (wn *Window) externalMove(e events.Event) {
	inside, ok := wn.external[e.PointerID()]
	if !ok {
		return
	}
	screen := math32.Vector2FromPoint(e.WindowPos())
	now := wn.Contains(screen)
	wn.external[e.PointerID()] = now
	switch {
	case now:
		if local, ok := wn.LocalPoint(screen); ok && wn.OnExternalDragOver != nil {
			wn.OnExternalDragOver(e, local)
		}
	case inside:
		if wn.OnExternalDragLeave != nil {
			wn.OnExternalDragLeave(e)
		}
	}
}

// externalUp resolves a registered external drag on pointer-up: a
// release inside the window emits OnExternalDrop with the converted
// position, and the id and its inside flag are removed from the
// registry regardless of the drop outcome.
func (wn *Window) externalUp(e events.Event) {
	id := e.PointerID()
	if _, ok := wn.external[id]; !ok {
		return
	}
	screen := math32.Vector2FromPoint(e.WindowPos())
	if wn.Contains(screen) {
		if local, ok := wn.LocalPoint(screen); ok && wn.OnExternalDrop != nil {
			wn.OnExternalDrop(e, local)
		}
		e.SetHandled()
	}
	delete(wn.external, id)
}
