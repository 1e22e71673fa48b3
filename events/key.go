// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/viewport/events/key"
)

// Key is a low-level immediately-generated key event, tracking press
// and release of keys, suitable for fine-grained tracking of key events.
type Key struct {
	Base
}

func NewKey(typ Types, rn rune, code key.Codes, mods key.Modifiers) *Key {
	ev := &Key{}
	ev.Typ = typ
	ev.SetUnique()
	ev.Rune = rn
	ev.Code = code
	ev.Mods = mods
	return ev
}

func (ev *Key) HasPos() bool {
	return false
}

func (ev *Key) NeedsFocus() bool {
	return true
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Chord: %v, Rune: %d, Hex: %X, Mods: %v, Time: %v}", ev.Type(), ev.KeyChord(), ev.Rune, ev.Rune, ev.Mods.ModifiersString(), ev.Time().Format("04:05"))
}
