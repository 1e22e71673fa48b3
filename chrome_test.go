// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/viewport/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockFormat(t *testing.T) {
	layout := clockFormat()
	assert.Contains(t, layout, ":04")
	assert.Equal(t, layout, clockFormat(), "the locale is resolved once")
}

func newChromeWindow(t *testing.T) *Window {
	t.Helper()
	wn := NewWindow(solidContent(color.RGBA{R: 250, G: 250, B: 250, A: 255}))
	wn.PresetName = "iPhone 14 Pro"
	wn.ShowChrome = true
	wn.ShowHandles = false
	wn.Init()
	require.Equal(t, image.Pt(393, 852), wn.Size())
	return wn
}

func TestChromeBands(t *testing.T) {
	wn := newChromeWindow(t)
	pr := wn.Render()
	require.NotNil(t, pr)

	// chromeBand composited over the near-white content
	band := color.RGBA{R: 93, G: 93, B: 93, A: 255}
	assert.True(t, imagex.CompareColors(pr.Pixels.RGBAAt(5, 5), band, 2), "status bar band")
	assert.True(t, imagex.CompareColors(pr.Pixels.RGBAAt(196, 2), color.RGBA{A: 255}, 2), "notch cutout")
	assert.True(t, imagex.CompareColors(pr.Pixels.RGBAAt(5, 825), band, 2), "home indicator band")
	assert.True(t, imagex.CompareColors(pr.Pixels.RGBAAt(196, 835), chromeText, 2), "home indicator bar")

	// the content between the bands is untouched,
	// and so is the boundary raster itself
	content := color.RGBA{R: 250, G: 250, B: 250, A: 255}
	assert.Equal(t, content, pr.Pixels.RGBAAt(196, 400))
	assert.Equal(t, content, wn.Boundary().Pixels().RGBAAt(5, 5))
}

func TestChromeClockDrawn(t *testing.T) {
	wn := newChromeWindow(t)
	pr := wn.Render()
	require.NotNil(t, pr)

	lit := 0
	for y := 10; y < 45; y++ {
		for x := 24; x < 100; x++ {
			if pr.Pixels.RGBAAt(x, y).R > 180 {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 10, "the clock text renders in the status bar")
}

func TestChromeRequiresPreset(t *testing.T) {
	wn := newTestWindow()
	wn.SetShowChrome(true)
	wn.SetShowHandles(false)

	pr := wn.Render()
	require.NotNil(t, pr)
	content := color.RGBA{R: 250, G: 250, B: 250, A: 255}
	assert.Equal(t, content, pr.Pixels.RGBAAt(5, 5), "chrome needs a device preset")
}

func clockRunning(wn *Window) bool {
	wn.clockMu.Lock()
	defer wn.clockMu.Unlock()
	return wn.clockOn
}

func TestChromeClock(t *testing.T) {
	wn := newChromeWindow(t)
	assert.True(t, clockRunning(wn))

	wn.SetShowChrome(false)
	assert.False(t, clockRunning(wn))
	wn.SetShowChrome(true)
	assert.True(t, clockRunning(wn))

	wn.Close()
	assert.False(t, clockRunning(wn))
}

func TestChromeClockNoTopBand(t *testing.T) {
	wn := NewWindow(nil)
	wn.PresetName = "Surface Pro 7"
	wn.ShowChrome = true
	wn.Init()
	assert.False(t, clockRunning(wn), "a device with no status bar needs no clock")
}
