// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"cogentcore.org/viewport/base/errors"
	"cogentcore.org/viewport/cursors"
	"cogentcore.org/viewport/devices"
	"cogentcore.org/viewport/events"
	"cogentcore.org/viewport/math32"
	"cogentcore.org/viewport/mediaquery"
)

// Window is a virtual window: an isolated, resizable, movable,
// zoomable surface that renders [Content] at a logical size and
// presents it to the host scaled by the live zoom.
//
// Configure the exported option fields, then call [Window.Init] once
// the host is ready to drive it. Fields other than the callbacks must
// not be modified after Init; use the setter methods instead.
type Window struct {

	// Content is the renderable mounted inside the window.
	Content Content

	// Min and Max bound the content size for construction and
	// interactive resizing, per axis. Zero values select [DefaultMin]
	// and [DefaultMax]. Direct [Window.Resize] calls are not bounded.
	Min image.Point
	Max image.Point

	// StartSize is the initial content size, clamped to [Min, Max].
	// The zero value selects [DefaultSize]. A device preset overrides it.
	StartSize image.Point

	// StartPos is the initial window position in host coordinates.
	// Position is unconstrained and may be negative.
	StartPos image.Point

	// StartScale is the initial zoom factor, clamped to
	// [MinScale, MaxScale]. The zero value selects 1.
	StartScale float32

	// ControlledSize, ControlledPosition, and ControlledScale make the
	// host authoritative for the corresponding geometry: interactive
	// gestures and setters notify the callbacks without applying the
	// change, and the host mirrors accepted values back through
	// [Window.SetSize], [Window.SetPosQuiet], and [Window.SetScaleQuiet].
	ControlledSize     bool
	ControlledPosition bool
	ControlledScale    bool

	// Draggable enables drag-to-move on the window surface.
	Draggable bool

	// DragRegion restricts where a drag-to-move may start, in content
	// local coordinates. The zero rectangle means the whole window.
	DragRegion image.Rectangle

	// Preset pins the window to a device preset, forcing the content
	// size to the device size and disabling free resizing.
	Preset *devices.Device

	// PresetName selects a preset from the catalog by name at Init,
	// when Preset itself is nil. Unknown names are logged and ignored.
	PresetName string

	// Catalog resolves preset names. nil selects [devices.Standard].
	Catalog *devices.Catalog

	// ShowChrome draws the device frame chrome of the active preset:
	// status bar with live clock, notch, and home indicator.
	ShowChrome bool

	// ShowHandles draws the resize handle affordances on the window
	// outline. [NewWindow] enables it.
	ShowHandles bool

	// MediaOverrides are the initial forced media feature values for
	// the media query simulator, keyed by feature name.
	MediaOverrides map[string]string

	// ParentBounds is the hosting region in host coordinates, used by
	// [Window.CenterInParent].
	ParentBounds image.Rectangle

	// DPR is the device pixel ratio reported to media queries.
	// The zero value selects 1.
	DPR float32

	// HitTest resolves a content-local point to the interactive
	// element under it. Drag-to-move uses it to avoid swallowing
	// presses meant for content controls. nil means no such elements.
	HitTest func(local math32.Vector2) Target

	// OnResize is called with the new content size whenever it
	// changes, from any path: setters, gestures, keys, observation.
	OnResize func(size image.Point)

	// OnScaleChange is called with the new zoom factor when it changes.
	OnScaleChange func(scale float32)

	// OnPositionChange is called with the new position when it changes.
	OnPositionChange func(pos image.Point)

	// OnExternalDragOver is called for every move of a registered
	// external drag inside the window, with the content-local position.
	OnExternalDragOver func(e events.Event, local math32.Vector2)

	// OnExternalDragLeave is called once when a registered external
	// drag moves from inside the window to outside.
	OnExternalDragLeave func(e events.Event)

	// OnExternalDrop is called when a registered external drag is
	// released inside the window, with the content-local position.
	OnExternalDrop func(e events.Event, local math32.Vector2)

	initOnce sync.Once
	ready    bool

	// bound is the isolation boundary, created at Init.
	bound *Boundary

	// size is the logical content size in pixels. It is the single
	// source of truth; the boundary raster mirrors it.
	size image.Point

	// pos is the window position in host coordinates, unconstrained.
	pos image.Point

	// scale is the zoom factor in [MinScale, MaxScale].
	scale float32

	// resizing and dragging are the transient gesture sessions,
	// nil outside a gesture.
	resizing *resizeSession
	dragging *dragSession

	// suppressObserve spans an interactive resize gesture so the size
	// observer does not report the same change a second time.
	suppressObserve bool

	// external is the external drag registry: registered pointer ids
	// mapped to their last known inside state. Registry membership and
	// the inside flag are always added and removed together.
	external map[events.PointerID]bool

	// focusHandle is the handle receiving keyboard resize steps,
	// valid while handleFocused.
	focusHandle   Handles
	handleFocused bool

	// cursor is the current pointer cursor for the host to show.
	cursor cursors.Cursor

	// needsRender reports pending visual changes. Atomic because the
	// chrome clock timer sets it from its own goroutine.
	needsRender atomic.Bool

	clockMu    sync.Mutex
	clockTimer *time.Timer
	clockOn    bool
}

// NewWindow returns a new [Window] with the given content mounted and
// resize handles shown. Set the option fields and then call
// [Window.Init].
func NewWindow(content Content) *Window {
	return &Window{Content: content, ShowHandles: true}
}

// Init initializes the window: defaults are resolved, the start
// geometry is clamped, and the isolation boundary and media simulator
// are created. Init is idempotent; calls after the first are no-ops.
func (wn *Window) Init() {
	wn.initOnce.Do(wn.init)
}

func (wn *Window) init() {
	if wn.Min == (image.Point{}) {
		wn.Min = DefaultMin
	}
	if wn.Max == (image.Point{}) {
		wn.Max = DefaultMax
	}
	if wn.StartSize == (image.Point{}) {
		wn.StartSize = DefaultSize
	}
	if wn.StartScale == 0 {
		wn.StartScale = 1
	}
	if wn.DPR == 0 {
		wn.DPR = 1
	}
	if wn.Catalog == nil {
		wn.Catalog = devices.Standard()
	}
	if wn.Preset == nil && wn.PresetName != "" {
		dev, err := wn.Catalog.Lookup(wn.PresetName)
		if errors.Log(err) == nil {
			wn.Preset = &dev
		}
	}

	wn.size = image.Point{
		X: math32.Clamp(wn.StartSize.X, wn.Min.X, wn.Max.X),
		Y: math32.Clamp(wn.StartSize.Y, wn.Min.Y, wn.Max.Y),
	}
	if wn.Preset != nil {
		wn.size = wn.Preset.Size()
	}
	wn.pos = wn.StartPos
	wn.scale = math32.Clamp(wn.StartScale, MinScale, MaxScale)
	wn.external = map[events.PointerID]bool{}
	wn.cursor = cursors.Arrow

	sim := mediaquery.NewSimulator(func() mediaquery.Environment {
		return mediaquery.Environment{
			Size: math32.Vector2FromPoint(wn.size),
			DPR:  wn.DPR,
		}
	}, wn.MediaOverrides)
	wn.bound = newBoundary(wn.size, sim)
	wn.ready = true
	if wn.ShowChrome {
		wn.startClock()
	}
	wn.needsRender.Store(true)
}

// Ready reports whether the window has been initialized and its
// boundary mounted.
func (wn *Window) Ready() bool {
	return wn.ready
}

// Boundary returns the window's isolation boundary, or nil before Init.
func (wn *Window) Boundary() *Boundary {
	return wn.bound
}

// Size returns the logical content size in pixels.
func (wn *Window) Size() image.Point {
	return wn.size
}

// Pos returns the window position in host coordinates.
func (wn *Window) Pos() image.Point {
	return wn.pos
}

// Scale returns the current zoom factor.
func (wn *Window) Scale() float32 {
	return wn.scale
}

// Cursor returns the pointer cursor the host should currently show
// over the window.
func (wn *Window) Cursor() cursors.Cursor {
	return wn.cursor
}

// applySize installs a new content size, reallocating the boundary
// raster and re-evaluating outstanding media query lists.
func (wn *Window) applySize(sz image.Point) {
	wn.size = sz
	if wn.bound != nil {
		wn.bound.setSize(sz)
		wn.bound.sim.Update()
	}
	wn.needsRender.Store(true)
}

// commitSize is the notifying size path shared by setters, gestures,
// keys, and the size observer. The size is floored at one pixel per
// axis and applied unless the host controls size, then OnResize fires.
// Unchanged sizes are not re-reported.
func (wn *Window) commitSize(sz image.Point) {
	sz.X = max(sz.X, 1)
	sz.Y = max(sz.Y, 1)
	if sz == wn.size {
		return
	}
	if !wn.ControlledSize {
		wn.applySize(sz)
	}
	if wn.OnResize != nil {
		wn.OnResize(sz)
	}
}

// Resize sets the content size directly and notifies OnResize. The
// size is trusted apart from a one pixel validity floor per axis; it
// is not clamped to [Min, Max]. Resize is a no-op while a device
// preset is active.
func (wn *Window) Resize(sz image.Point) {
	if wn.Preset != nil {
		return
	}
	wn.commitSize(sz)
}

// SetSize is [Window.Resize] without the OnResize notification, for
// hosts mirroring controlled size back in.
func (wn *Window) SetSize(sz image.Point) {
	if wn.Preset != nil {
		return
	}
	sz.X = max(sz.X, 1)
	sz.Y = max(sz.Y, 1)
	if sz == wn.size {
		return
	}
	wn.applySize(sz)
}

// commitPos applies a new position unless the host controls position,
// then notifies OnPositionChange. Position is unconstrained.
func (wn *Window) commitPos(p image.Point) {
	if p == wn.pos {
		return
	}
	if !wn.ControlledPosition {
		wn.applyPos(p)
	}
	if wn.OnPositionChange != nil {
		wn.OnPositionChange(p)
	}
}

func (wn *Window) applyPos(p image.Point) {
	wn.pos = p
	wn.needsRender.Store(true)
}

// SetPos sets the window position and notifies OnPositionChange.
func (wn *Window) SetPos(p image.Point) {
	wn.commitPos(p)
}

// SetPosQuiet is [Window.SetPos] without the notification, for hosts
// mirroring controlled position back in.
func (wn *Window) SetPosQuiet(p image.Point) {
	if p == wn.pos {
		return
	}
	wn.applyPos(p)
}

// commitScale clamps and applies a new zoom factor unless the host
// controls scale, then notifies OnScaleChange.
func (wn *Window) commitScale(v float32) {
	v = math32.Clamp(v, MinScale, MaxScale)
	if v == wn.scale {
		return
	}
	if !wn.ControlledScale {
		wn.applyScale(v)
	}
	if wn.OnScaleChange != nil {
		wn.OnScaleChange(v)
	}
}

func (wn *Window) applyScale(v float32) {
	wn.scale = v
	wn.needsRender.Store(true)
}

// SetScale sets the zoom factor, clamped to [MinScale, MaxScale], and
// notifies OnScaleChange. Scale is a presentational transform anchored
// at the window's top-left; the stored content size never changes.
func (wn *Window) SetScale(v float32) {
	wn.commitScale(v)
}

// SetScaleQuiet is [Window.SetScale] without the notification, for
// hosts mirroring controlled scale back in.
func (wn *Window) SetScaleQuiet(v float32) {
	v = math32.Clamp(v, MinScale, MaxScale)
	if v == wn.scale {
		return
	}
	wn.applyScale(v)
}

// ZoomIn increases the zoom factor by one [ZoomStep], rounded to one
// decimal and clamped to [MinScale, MaxScale].
func (wn *Window) ZoomIn() {
	wn.commitScale(round1(wn.scale + ZoomStep))
}

// ZoomOut decreases the zoom factor by one [ZoomStep], rounded to one
// decimal and clamped to [MinScale, MaxScale].
func (wn *Window) ZoomOut() {
	wn.commitScale(round1(wn.scale - ZoomStep))
}

// ResetZoom restores the default zoom factor of 1.
func (wn *Window) ResetZoom() {
	wn.commitScale(1)
}

// round1 rounds to one decimal, the zoom step granularity.
func round1(v float32) float32 {
	return math32.Round(v*10) / 10
}

// screenBox returns the window's screen bounds: its position extended
// by the content size scaled by the live zoom.
func (wn *Window) screenBox() math32.Box2 {
	mn := math32.Vector2FromPoint(wn.pos)
	mx := mn.Add(math32.Vector2FromPoint(wn.size).MulScalar(wn.scale))
	return math32.Box2{Min: mn, Max: mx}
}

// LocalPoint converts a screen point into content-local coordinates:
// the window position is subtracted and the live zoom divided out, so
// the window's visual top-left maps to (0, 0) at any scale. It reports
// false before the window is initialized. This is the single
// conversion used by the external drag bridge.
func (wn *Window) LocalPoint(screen math32.Vector2) (math32.Vector2, bool) {
	if !wn.ready {
		return math32.Vector2{}, false
	}
	return screen.Sub(math32.Vector2FromPoint(wn.pos)).DivScalar(wn.scale), true
}

// Contains reports whether the given screen point is inside the
// window's current screen bounds, inclusive on all edges.
func (wn *Window) Contains(screen math32.Vector2) bool {
	if !wn.ready {
		return false
	}
	return wn.screenBox().ContainsPoint(screen)
}

// CenterInParent positions the window so that its scaled bounds are
// centered within [Window.ParentBounds], notifying OnPositionChange.
// It warns and leaves the position unchanged when ParentBounds is
// empty. Centering is only meaningful when the host drives position.
func (wn *Window) CenterInParent() {
	if wn.ParentBounds.Empty() {
		slog.Warn("viewport: CenterInParent requires ParentBounds")
		return
	}
	sz := math32.Vector2FromPoint(wn.size).MulScalar(wn.scale)
	p := math32.Vector2FromPoint(wn.ParentBounds.Size()).Sub(sz).MulScalar(0.5).
		Add(math32.Vector2FromPoint(wn.ParentBounds.Min))
	wn.commitPos(p.ToPointRound())
}

// SetPreset pins the window to the given device preset, forcing the
// content size to the device size and disabling free resizing.
// nil clears the preset and re-enables resizing.
func (wn *Window) SetPreset(dev *devices.Device) {
	wn.Preset = dev
	if dev != nil {
		wn.commitSize(dev.Size())
	}
	if wn.ShowChrome {
		wn.startClock()
	}
	wn.needsRender.Store(true)
}

// SetPresetName resolves the named device preset in the catalog and
// applies it with [Window.SetPreset]. Unknown names are logged, with
// the closest catalog name when one is similar, and leave the preset
// unchanged.
func (wn *Window) SetPresetName(name string) {
	dev, err := wn.catalog().Lookup(name)
	if errors.Log(err) != nil {
		return
	}
	wn.SetPreset(&dev)
}

// catalog returns the preset catalog, defaulting to [devices.Standard].
func (wn *Window) catalog() *devices.Catalog {
	if wn.Catalog == nil {
		return devices.Standard()
	}
	return wn.Catalog
}

// SetShowChrome shows or hides the device frame chrome, starting or
// stopping the status bar clock with it.
func (wn *Window) SetShowChrome(on bool) {
	wn.ShowChrome = on
	if on {
		wn.startClock()
	} else {
		wn.stopClock()
	}
	wn.needsRender.Store(true)
}

// SetShowHandles shows or hides the resize handle affordances.
func (wn *Window) SetShowHandles(on bool) {
	wn.ShowHandles = on
	wn.needsRender.Store(true)
}

// SetDPR sets the device pixel ratio reported to media queries and
// re-evaluates outstanding media query lists.
func (wn *Window) SetDPR(dpr float32) {
	if dpr <= 0 {
		dpr = 1
	}
	wn.DPR = dpr
	if wn.bound != nil {
		wn.bound.sim.Update()
	}
}

// SetMediaOverrides replaces the forced media feature values,
// re-evaluating every outstanding media query list and synchronously
// notifying change subscribers whose result flipped. Before Init it
// only seeds the starting overrides.
func (wn *Window) SetMediaOverrides(overrides map[string]string) {
	wn.MediaOverrides = overrides
	if wn.ready {
		wn.bound.sim.SetOverrides(overrides)
	}
}

// MatchMedia returns a live media query list evaluated against the
// window's simulated environment, following the web matchMedia
// capability. Before Init it warns and returns a detached
// never-matching list rather than failing.
func (wn *Window) MatchMedia(query string) *mediaquery.List {
	if !wn.ready {
		slog.Warn("viewport: MatchMedia called before Init; query will never match", "query", query)
		return mediaquery.NeverMatching(query)
	}
	return wn.bound.sim.MatchMedia(query)
}

// AddGlobalStyle injects CSS text into the boundary's style scope,
// applying only within the boundary. :host width and height rules
// set the content size through the size observer. Calling before Init
// warns and drops the style.
func (wn *Window) AddGlobalStyle(text string) {
	if !wn.ready {
		slog.Warn("viewport: AddGlobalStyle called before Init; style dropped")
		return
	}
	wn.bound.Styles.AddText(text)
	if hs := wn.bound.Styles.HostSize(); hs != (image.Point{}) {
		sz := wn.size
		if hs.X > 0 {
			sz.X = hs.X
		}
		if hs.Y > 0 {
			sz.Y = hs.Y
		}
		wn.observeSize(sz)
	}
	wn.needsRender.Store(true)
}

// Close releases the window's resources: the chrome clock timer and
// all media query lists and subscriptions. The window must not be
// used after Close.
func (wn *Window) Close() {
	wn.stopClock()
	if wn.bound != nil {
		wn.bound.sim.Destroy()
	}
	wn.ready = false
}
