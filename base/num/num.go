// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides generic type constraints and helper
// functions for numeric types.
package num

// Signed is a constraint with all signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint with all unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint with all integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint with all floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number is a constraint with all numeric types.
type Number interface {
	Integer | Float
}

// Abs returns the absolute value of the given value.
func Abs[T Signed | Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// FromBool returns 1 if the given bool is true and 0 otherwise.
func FromBool[T Number](b bool) T {
	if b {
		return 1
	}
	return 0
}

// ToBool returns whether the given number is non-zero.
func ToBool[T Number](v T) bool {
	return v != 0
}
