// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality
// of numbers with tolerance (approximate equality).
package tolassert

import (
	"github.com/stretchr/testify/assert"

	"cogentcore.org/viewport/base/num"
)

// Equal asserts that the two given numbers are equal
// within a tolerance of 0.001.
func Equal[T num.Float](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol asserts that the two given numbers are equal
// within the given tolerance.
func EqualTol[T num.Float](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	return assert.InDelta(t, expected, actual, float64(tolerance), msgAndArgs...)
}
