// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mediaquery emulates the web matchMedia capability for content
// mounted inside a virtual window. Queries are evaluated against a
// simulated [Environment] supplied by the owning window, with
// per-feature overrides taking precedence over the live values, so
// content can be previewed under device characteristics (color scheme,
// pointer type, hover capability, reduced motion) that differ from the
// real host.
//
// All types in this package must be used from the same goroutine that
// dispatches window events, matching the contract of the events
// package. None of them are safe for concurrent use.
package mediaquery

import (
	"log/slog"
	"maps"
	"reflect"
	"slices"

	"cogentcore.org/viewport/math32"
)

// Environment describes the simulated device characteristics that media
// queries evaluate against when no override is present. The zero value
// of each discrete field reports the default of a typical desktop
// screen (light scheme, fine hovering pointer, no accessibility
// preferences).
type Environment struct {

	// Size is the logical content size in pixels.
	Size math32.Vector2

	// DPR is the device pixel ratio in device pixels per logical pixel.
	// Zero is treated as 1.
	DPR float32

	// ColorScheme is "light" or "dark".
	ColorScheme string

	// Hover and AnyHover are "hover" or "none". AnyHover falls back to
	// Hover when empty.
	Hover, AnyHover string

	// Pointer and AnyPointer are "fine", "coarse", or "none".
	// AnyPointer falls back to Pointer when empty.
	Pointer, AnyPointer string

	// ReducedMotion is "reduce" or "no-preference".
	ReducedMotion string

	// Contrast is "more", "less", or "no-preference".
	Contrast string
}

// Value returns the environment's value for the given base feature name
// in canonical string form, and whether the feature is known.
func (ev Environment) Value(feature string) (string, bool) {
	switch feature {
	case "width", "device-width":
		return fmtFloat(ev.Size.X) + "px", true
	case "height", "device-height":
		return fmtFloat(ev.Size.Y) + "px", true
	case "aspect-ratio", "device-aspect-ratio":
		return fmtFloat(ev.Size.X) + "/" + fmtFloat(ev.Size.Y), true
	case "orientation":
		if ev.Size.Y >= ev.Size.X {
			return "portrait", true
		}
		return "landscape", true
	case "resolution":
		return fmtFloat(fallback(ev.DPR, 1)) + "dppx", true
	case "prefers-color-scheme":
		return fallback(ev.ColorScheme, "light"), true
	case "prefers-reduced-motion":
		return fallback(ev.ReducedMotion, "no-preference"), true
	case "prefers-contrast":
		return fallback(ev.Contrast, "no-preference"), true
	case "hover":
		return fallback(ev.Hover, "hover"), true
	case "any-hover":
		return fallback(ev.AnyHover, fallback(ev.Hover, "hover")), true
	case "pointer":
		return fallback(ev.Pointer, "fine"), true
	case "any-pointer":
		return fallback(ev.AnyPointer, fallback(ev.Pointer, "fine")), true
	}
	return "", false
}

// fallback returns v unless it is the zero value, in which case it
// returns def.
func fallback[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// Simulator evaluates media queries for one window. It is constructed
// by the window's boundary with a live environment source and hands out
// [List] values through [Simulator.MatchMedia]; the window re-evaluates
// all outstanding lists through [Simulator.Update] whenever the content
// size or other environment inputs change.
type Simulator struct {

	// Env returns the live environment. It is set at construction by
	// the owning boundary and must be non-nil.
	Env func() Environment

	// overrides maps base feature names to forced values that take
	// precedence over the live environment.
	overrides map[string]string

	// lists holds every list handed out by MatchMedia, for
	// re-evaluation on environment or override changes.
	lists []*List
}

// NewSimulator returns a simulator evaluating against the given live
// environment source, with the given initial feature overrides, which
// may be nil.
func NewSimulator(env func() Environment, overrides map[string]string) *Simulator {
	return &Simulator{Env: env, overrides: maps.Clone(overrides)}
}

// MatchMedia parses the given media query and returns a live [List]
// whose match state tracks the simulated environment. Query text that
// does not parse returns a list that never matches, following the
// browser convention of treating malformed queries as "not all".
func (sim *Simulator) MatchMedia(query string) *List {
	ls := &List{sim: sim, media: query}
	cls, err := parseQuery(query)
	if err != nil {
		slog.Warn("mediaquery: treating unparseable query as never matching", "query", query, "err", err)
	} else {
		ls.clauses = cls
		ls.matches = sim.eval(cls)
	}
	sim.lists = append(sim.lists, ls)
	return ls
}

// Overrides returns the current forced feature values.
func (sim *Simulator) Overrides() map[string]string {
	return maps.Clone(sim.overrides)
}

// SetOverrides replaces the forced feature values and re-evaluates
// every outstanding list, synchronously invoking the change subscribers
// of each list whose result flipped before returning.
func (sim *Simulator) SetOverrides(overrides map[string]string) {
	sim.overrides = maps.Clone(overrides)
	sim.Update()
}

// Update re-evaluates every outstanding list against the current
// environment and overrides, synchronously notifying the subscribers of
// each list whose match state flipped. The owning window calls this
// whenever the environment changes.
func (sim *Simulator) Update() {
	for _, ls := range sim.lists {
		ls.update()
	}
}

// Destroy releases every outstanding list and its subscriptions.
// Previously returned lists stop updating and never match again.
func (sim *Simulator) Destroy() {
	for _, ls := range sim.lists {
		ls.listeners = nil
		ls.sim = nil
		ls.matches = false
	}
	sim.lists = nil
}

// value returns the effective value of the given base feature: the
// override when one is set, the live environment otherwise.
func (sim *Simulator) value(base string) (string, bool) {
	if v, ok := sim.overrides[base]; ok {
		return v, true
	}
	return sim.Env().Value(base)
}

// ChangeEvent is delivered to list subscribers when a list's match
// state flips.
type ChangeEvent struct {

	// Media is the query text the list was created with.
	Media string

	// Matches is the new match state.
	Matches bool
}

// listener is one registered change subscriber, identified for removal
// by its function pointer.
type listener struct {
	fn  func(ChangeEvent)
	ptr uintptr
}

// List is a live media query result, the analog of the web
// MediaQueryList. It is obtained from [Simulator.MatchMedia] and
// re-evaluated whenever the environment or the overrides change.
type List struct {
	sim       *Simulator
	media     string
	clauses   []clause
	matches   bool
	listeners []listener
}

// NeverMatching returns a detached list for the given query text that
// never matches and never fires change events. Windows return it for
// queries made before their boundary is initialized.
func NeverMatching(query string) *List {
	return &List{media: query}
}

// Matches reports the current match state.
func (ls *List) Matches() bool {
	return ls.matches
}

// Media returns the query text this list was created from.
func (ls *List) Media() string {
	return ls.media
}

// AddEventListener subscribes f to the given event type. "change" is
// the only event type a list emits; other event names are ignored.
func (ls *List) AddEventListener(event string, f func(ChangeEvent)) {
	if event != "change" || f == nil {
		return
	}
	ls.listeners = append(ls.listeners, listener{fn: f, ptr: reflect.ValueOf(f).Pointer()})
}

// RemoveEventListener removes the first subscriber registered under the
// given event type with the same function. Functions are identified by
// their code pointer, so the value passed here must be the same one
// passed to [List.AddEventListener].
func (ls *List) RemoveEventListener(event string, f func(ChangeEvent)) {
	if event != "change" || f == nil {
		return
	}
	ptr := reflect.ValueOf(f).Pointer()
	for i, l := range ls.listeners {
		if l.ptr == ptr {
			ls.listeners = slices.Delete(ls.listeners, i, i+1)
			return
		}
	}
}

// AddListener subscribes f to match-state changes. It mirrors the
// deprecated web MediaQueryList.addListener style and is equivalent to
// AddEventListener("change", f).
func (ls *List) AddListener(f func(ChangeEvent)) {
	ls.AddEventListener("change", f)
}

// RemoveListener removes a subscriber previously added with
// [List.AddListener].
func (ls *List) RemoveListener(f func(ChangeEvent)) {
	ls.RemoveEventListener("change", f)
}

// update re-evaluates the list and notifies subscribers if the match
// state flipped. Detached lists, from [NeverMatching] or after
// [Simulator.Destroy], are left alone.
func (ls *List) update() {
	if ls.sim == nil {
		return
	}
	m := ls.sim.eval(ls.clauses)
	if m == ls.matches {
		return
	}
	ls.matches = m
	ev := ChangeEvent{Media: ls.media, Matches: m}
	for _, l := range slices.Clone(ls.listeners) {
		l.fn(ev)
	}
}
