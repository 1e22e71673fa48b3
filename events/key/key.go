// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines an event for physical keyboard keys, for the
// [cogentcore.org/viewport/events] system.
package key

//go:generate core generate

import (
	"fmt"
	"strings"
	"unicode"

	"cogentcore.org/viewport/enums"
)

// Chord represents the key chord associated with a given key function,
// in a string representation such as "Control+S" or "Shift+UpArrow".
// Printable runes are sent directly, and non-printable ones are converted
// to their corresponding code names without the "Code" prefix.
type Chord string

// NewChord returns a string representation of the keyboard event suitable
// for keyboard function maps, etc. Printable runes are sent directly, and
// non-printable ones are converted to their corresponding code names
// without the "Code" prefix.
func NewChord(rn rune, code Codes, mods Modifiers) Chord {
	modstr := mods.ModifiersString()
	if modstr != "" && code == CodeSpacebar { // modified space is not regular space
		return Chord(modstr + "Spacebar")
	}
	if unicode.IsPrint(rn) {
		if len(modstr) > 0 {
			return Chord(modstr + string(unicode.ToUpper(rn))) // all modded keys are uppercase
		}
		return Chord(string(rn))
	}
	// now convert code
	codestr := strings.TrimPrefix(code.String(), "Code")
	return Chord(modstr + codestr)
}

func (ch Chord) String() string {
	return string(ch)
}

// Decode decodes the chord string into rune and modifiers, reversing [NewChord].
func (ch Chord) Decode() (r rune, code Codes, mods Modifiers, err error) {
	cs := string(ch)
	mods, cs = ModifiersFromString(cs)
	rs := []rune(cs)
	if len(rs) == 1 {
		r = rs[0]
		return
	}
	cstr := "Code" + cs
	err = code.SetString(cstr)
	if err == nil {
		return
	}
	err = fmt.Errorf("key.Chord: chord %q does not contain a valid rune or code name", ch)
	return
}

// Modifiers are used as bitflags representing a set of modifier keys.
type Modifiers int64 //enums:bitflag

const (
	Control Modifiers = iota
	Meta
	Alt
	Shift
)

// ModifiersString returns the string representation of the modifiers,
// in a canonical order, with a + separator after each one.
func (mo Modifiers) ModifiersString() string {
	modstr := ""
	for _, m := range ModifiersValues() {
		if mo.HasFlag(m) {
			modstr += m.BitIndexString() + "+"
		}
	}
	return modstr
}

// ModifiersFromString returns the modifiers corresponding to given string
// and the remainder of the string after modifiers have been stripped.
func ModifiersFromString(cs string) (mods Modifiers, rest string) {
	for _, m := range ModifiersValues() {
		mstr := m.BitIndexString() + "+"
		if strings.HasPrefix(cs, mstr) {
			mods.SetFlag(true, m)
			cs = strings.TrimPrefix(cs, mstr)
		}
	}
	return mods, cs
}

// HasAllModifiers tests whether all of given modifier(s) were set.
func HasAllModifiers(flags Modifiers, mods ...enums.BitFlag) bool {
	for _, m := range mods {
		if !flags.HasFlag(m) {
			return false
		}
	}
	return true
}

// HasAnyModifier tests whether any of given modifier(s) were set.
func HasAnyModifier(flags Modifiers, mods ...enums.BitFlag) bool {
	for _, m := range mods {
		if flags.HasFlag(m) {
			return true
		}
	}
	return false
}

// CodeIsModifier returns true if given code is a modifier key.
func CodeIsModifier(c Codes) bool {
	return c >= CodeLeftControl && c <= CodeRightMeta
}
