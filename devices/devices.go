// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package devices provides named device presets for virtual windows: a
// fixed logical viewport size plus the chrome geometry (status bar,
// home indicator) drawn above content when the device frame is shown.
// A standard catalog is embedded; additional catalogs can be loaded
// from TOML, YAML, or JSON files and hot-reloaded with a [Watcher].
package devices

import (
	"bytes"
	"cmp"
	_ "embed"
	"fmt"
	"image"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/viewport/base/errors"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Chrome is the decorative overlay geometry of a device: the heights in
// pixels of the status-bar band at the top and the home-indicator band
// at the bottom. A zero height means the device has no such band.
type Chrome struct {
	Top    int `toml:"top" json:"top" yaml:"top"`
	Bottom int `toml:"bottom" json:"bottom" yaml:"bottom"`
}

// Device is one named preset. While a preset is active on a window, its
// size is forced to the preset size and free resizing is disabled.
type Device struct {

	// Name is the unique catalog key, e.g. "iPhone 14 Pro".
	Name string `toml:"name" json:"name" yaml:"name"`

	// Width and Height are the logical viewport size in pixels.
	Width  int `toml:"width" json:"width" yaml:"width"`
	Height int `toml:"height" json:"height" yaml:"height"`

	// HasNotch draws a sensor-housing cutout in the status-bar band.
	HasNotch bool `toml:"notch" json:"notch" yaml:"notch"`

	// Chrome gives the overlay band heights.
	Chrome Chrome `toml:"chrome" json:"chrome" yaml:"chrome"`
}

// Size returns the logical viewport size as a point.
func (dv Device) Size() image.Point {
	return image.Point{dv.Width, dv.Height}
}

// valid checks the fields a catalog entry must have.
func (dv Device) valid() error {
	switch {
	case dv.Name == "":
		return errors.New("devices: preset with empty name")
	case dv.Width < 1 || dv.Height < 1:
		return fmt.Errorf("devices: preset %q has non-positive size %dx%d", dv.Name, dv.Width, dv.Height)
	case dv.Chrome.Top < 0 || dv.Chrome.Bottom < 0:
		return fmt.Errorf("devices: preset %q has negative chrome heights", dv.Name)
	}
	return nil
}

// Catalog is an ordered set of device presets with case-insensitive
// name lookup.
type Catalog struct {
	devices []Device
	byName  map[string]int // folded name to index in devices
}

// NewCatalog returns a catalog holding the given devices.
func NewCatalog(devs ...Device) *Catalog {
	ct := &Catalog{byName: make(map[string]int)}
	ct.Add(devs...)
	return ct
}

// Add adds the given devices, replacing any existing presets with the
// same folded name.
func (ct *Catalog) Add(devs ...Device) {
	if ct.byName == nil {
		ct.byName = make(map[string]int)
	}
	for _, dv := range devs {
		key := strings.ToLower(dv.Name)
		if i, ok := ct.byName[key]; ok {
			ct.devices[i] = dv
			continue
		}
		ct.byName[key] = len(ct.devices)
		ct.devices = append(ct.devices, dv)
	}
}

// ByName returns the device with the given name, folding case.
func (ct *Catalog) ByName(name string) (Device, bool) {
	i, ok := ct.byName[strings.ToLower(name)]
	if !ok {
		return Device{}, false
	}
	return ct.devices[i], true
}

// Lookup returns the device with the given name, or an error naming the
// closest presets when there is no such device.
func (ct *Catalog) Lookup(name string) (Device, error) {
	if dv, ok := ct.ByName(name); ok {
		return dv, nil
	}
	if near := ct.Suggest(name, 3); len(near) > 0 {
		return Device{}, fmt.Errorf("devices: no preset named %q (closest: %s)", name, strings.Join(near, ", "))
	}
	return Device{}, fmt.Errorf("devices: no preset named %q", name)
}

// Suggest returns up to n catalog names similar to the given name,
// best match first.
func (ct *Catalog) Suggest(name string, n int) []string {
	m := metrics.NewJaroWinkler()
	m.CaseSensitive = false
	type cand struct {
		name string
		sim  float64
	}
	var cands []cand
	for _, dv := range ct.devices {
		if sim := strutil.Similarity(name, dv.Name, m); sim >= 0.6 {
			cands = append(cands, cand{dv.Name, sim})
		}
	}
	slices.SortStableFunc(cands, func(a, b cand) int {
		return cmp.Compare(b.sim, a.sim)
	})
	names := make([]string, 0, min(n, len(cands)))
	for _, c := range cands[:min(n, len(cands))] {
		names = append(names, c.name)
	}
	return names
}

// Names returns the preset names in catalog order.
func (ct *Catalog) Names() []string {
	names := make([]string, len(ct.devices))
	for i, dv := range ct.devices {
		names[i] = dv.Name
	}
	return names
}

// Devices returns the presets in catalog order. The returned slice is
// shared; callers must not modify it.
func (ct *Catalog) Devices() []Device {
	return ct.devices
}

//go:embed catalog.toml
var standard []byte

var (
	standardOnce sync.Once
	standardCat  *Catalog
)

// Standard returns the built-in preset catalog, parsed once from the
// embedded TOML. The returned catalog is shared; callers wanting to
// extend it should Add to their own copy via [NewCatalog].
func Standard() *Catalog {
	standardOnce.Do(func() {
		standardCat = errors.Must1(Read(bytes.NewReader(standard), TOML))
	})
	return standardCat
}
