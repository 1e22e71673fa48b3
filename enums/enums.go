// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides common interfaces for enums
// and bit flag enums and utilities for using them.
package enums

// Enum is the interface that all enum types satisfy.
// Enum types must be convertible to strings and int64s,
// must be able to return a description of their value,
// and must be able to report all of their possible values.
type Enum interface {
	// String returns the string representation of the enum value.
	String() string

	// Int64 returns the enum value as an int64.
	Int64() int64

	// Desc returns the description of the enum value.
	Desc() string

	// Values returns all possible values that the enum type has.
	Values() []Enum
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy. Those pointers must allow setting
// themselves from string and int64 values.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its string representation,
	// and returns an error if the string is invalid.
	SetString(s string) error

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// BitFlag is the interface that all bit flag enum types
// satisfy. Bit flag enum types support all of the operations
// that standard enums do, and additionally can check if they
// have a given bit flag.
type BitFlag interface {
	Enum

	// HasFlag returns whether these flags
	// have the given flag set.
	HasFlag(f BitFlag) bool

	// BitIndexString returns the string
	// representation of the bit flag if
	// the bit flag is a bit index value
	// (typically an enum constant), and
	// not an actual bit flag value.
	BitIndexString() string
}

// BitFlagSetter is an expanded interface that all pointers
// to bit flag enum types satisfy. Those pointers must allow
// setting individual bit flags on themselves, in addition to
// supporting all of the operations that standard enum
// pointers do.
type BitFlagSetter interface {
	EnumSetter
	BitFlag

	// SetFlag sets the value of the given
	// flags in these flags to the given value.
	SetFlag(on bool, f ...BitFlag)

	// SetStringOr sets the bit flag from its string representation
	// while preserving any bit flags already set, and returns an
	// error if the string is invalid.
	SetStringOr(s string) error
}

// EnumConstraint is a generic type constraint that all enums satisfy.
type EnumConstraint interface {
	Enum
	comparable
}

// BitFlagConstraint is a generic type constraint that all bit flags satisfy.
type BitFlagConstraint interface {
	BitFlag
	comparable
}
