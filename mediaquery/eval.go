// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mediaquery

import (
	"strconv"
	"strings"

	"cogentcore.org/viewport/math32"
)

// rangeOp is the comparison direction implied by a min- or max- feature
// name prefix.
type rangeOp int32

const (
	opEq rangeOp = iota
	opMin
	opMax
)

// eval evaluates a parsed query list: it matches if any comma-separated
// clause matches. An empty list, from a parse failure, never matches.
func (sim *Simulator) eval(cls []clause) bool {
	for _, c := range cls {
		if sim.evalClause(c) {
			return true
		}
	}
	return false
}

// evalClause evaluates one alternative. The simulated medium is always
// a screen, so "print" is a known type that does not match, and unknown
// media types make the clause never match regardless of negation,
// following the browser treatment as "not all".
func (sim *Simulator) evalClause(c clause) bool {
	switch c.typ {
	case "", "all", "screen", "print":
	default:
		return false
	}
	ok := c.typ != "print"
	for _, t := range c.terms {
		if !ok {
			break
		}
		ok = sim.evalTerm(t)
	}
	if c.not {
		ok = !ok
	}
	return ok
}

// evalTerm evaluates one feature test. Unknown features never match,
// and neither do min- or max- prefixes on discrete features.
func (sim *Simulator) evalTerm(t term) bool {
	base, op := splitRange(t.feature)
	val, ok := sim.value(base)
	if !ok {
		return false
	}
	val = strings.ToLower(val) // overrides arrive with caller casing

	if t.value == "" {
		return truthy(base, val)
	}
	switch base {
	case "width", "height", "device-width", "device-height":
		return compareParsed(op, val, t.value, parseLength)
	case "aspect-ratio", "device-aspect-ratio":
		return compareParsed(op, val, t.value, parseRatio)
	case "resolution":
		return compareParsed(op, val, t.value, parseResolution)
	}
	return op == opEq && val == t.value
}

// splitRange splits a min- or max- prefixed feature name into its base
// name and comparison direction.
func splitRange(feature string) (string, rangeOp) {
	if base, ok := strings.CutPrefix(feature, "min-"); ok {
		return base, opMin
	}
	if base, ok := strings.CutPrefix(feature, "max-"); ok {
		return base, opMax
	}
	return feature, opEq
}

// compareParsed parses both sides with the given value parser and
// compares them per the range direction. Equality is tolerant of
// float32 formatting noise.
func compareParsed(op rangeOp, have, want string, parse func(string) (float32, bool)) bool {
	h, ok := parse(have)
	if !ok {
		return false
	}
	w, ok := parse(want)
	if !ok {
		return false
	}
	switch op {
	case opMin:
		return h >= w
	case opMax:
		return h <= w
	}
	return math32.Abs(h-w) <= 0.001
}

// truthy reports the boolean-context result of a bare (feature) term:
// false for "none" and "no-preference" values and for zero-valued
// dimensions, true otherwise.
func truthy(base, val string) bool {
	switch val {
	case "none", "no-preference":
		return false
	}
	switch base {
	case "width", "height", "device-width", "device-height":
		f, ok := parseLength(val)
		return ok && f > 0
	case "aspect-ratio", "device-aspect-ratio":
		f, ok := parseRatio(val)
		return ok && f > 0
	case "resolution":
		f, ok := parseResolution(val)
		return ok && f > 0
	}
	return val != ""
}

// parseLength returns the pixel value of a CSS length such as "600px".
// Bare numbers are treated as pixels; em and rem lengths use the 16px
// initial font size, per the media query resolution rules.
func parseLength(s string) (float32, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	mul := float32(1)
	switch {
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "rem"):
		s = strings.TrimSuffix(s, "rem")
		mul = 16
	case strings.HasSuffix(s, "em"):
		s = strings.TrimSuffix(s, "em")
		mul = 16
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(f) * mul, true
}

// parseRatio parses a CSS ratio such as "16/9" or a bare number.
func parseRatio(s string) (float32, bool) {
	num, den, found := strings.Cut(s, "/")
	nf, err := strconv.ParseFloat(strings.TrimSpace(num), 32)
	if err != nil {
		return 0, false
	}
	if !found {
		return float32(nf), true
	}
	df, err := strconv.ParseFloat(strings.TrimSpace(den), 32)
	if err != nil || df <= 0 {
		return 0, false
	}
	return float32(nf) / float32(df), true
}

// parseResolution returns the dppx value of a CSS resolution such as
// "2dppx", "2x", "192dpi", or "75.6dpcm". Bare numbers are treated as
// dppx.
func parseResolution(s string) (float32, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	div := float32(1)
	switch {
	case strings.HasSuffix(s, "dppx"):
		s = strings.TrimSuffix(s, "dppx")
	case strings.HasSuffix(s, "dpcm"):
		s = strings.TrimSuffix(s, "dpcm")
		div = 96 / 2.54
	case strings.HasSuffix(s, "dpi"):
		s = strings.TrimSuffix(s, "dpi")
		div = 96
	case strings.HasSuffix(s, "x"):
		s = strings.TrimSuffix(s, "x")
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(f) / div, true
}

// fmtFloat formats a float32 in its shortest decimal form.
func fmtFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
