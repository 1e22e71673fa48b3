// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"image"
	"image/color"
	"sync"
	"time"

	"cogentcore.org/viewport/paint"
	"cogentcore.org/viewport/styles/sides"
	locale "github.com/jeandeaual/go-locale"
)

var (
	// chromeBand is the translucent black of the status bar and home
	// indicator bands.
	chromeBand = color.RGBA{A: 160}

	// chromeText is the foreground of chrome text and the home
	// indicator bar.
	chromeText = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// drawChrome draws the device frame chrome of the active preset onto
// the given logical-size image: the status bar band with a live clock
// and optional notch cutout at the top, and the home indicator band
// at the bottom. Chrome is a pure overlay; content layout is never
// affected.
func (wn *Window) drawChrome(img *image.RGBA) {
	dev := wn.Preset
	if dev == nil {
		return
	}
	sz := img.Bounds().Size()
	pc := paint.NewPainter(img)
	w := float32(sz.X)

	if dev.Chrome.Top > 0 {
		top := float32(dev.Chrome.Top)
		pc.FillBox(image.Rect(0, 0, sz.X, dev.Chrome.Top), chromeBand)

		if dev.HasNotch {
			nw := w * 0.4
			nh := top * 0.65
			pc.FillColor = color.RGBA{A: 255}
			pc.DrawRoundedRectangle((w-nw)/2, 0, nw, nh, sides.NewFloats(0, 0, nh/2, nh/2))
			pc.Fill()
		}

		fn := paint.SansBold()
		fsz := min(top*0.55, 15)
		txt := time.Now().Format(clockFormat())
		ty := top/2 + fsz*0.35
		pc.FillColor = chromeText
		if dev.HasNotch {
			pc.DrawText(fn, fsz, 24, ty, txt)
		} else {
			pc.DrawText(fn, fsz, (w-fn.TextWidth(fsz, txt))/2, ty, txt)
		}
	}

	if dev.Chrome.Bottom > 0 {
		bot := float32(dev.Chrome.Bottom)
		pc.FillBox(image.Rect(0, sz.Y-dev.Chrome.Bottom, sz.X, sz.Y), chromeBand)

		bw := w * 0.36
		bh := float32(5)
		by := float32(sz.Y) - bot/2 - bh/2
		pc.FillColor = chromeText
		pc.DrawRoundedRectangle((w-bw)/2, by, bw, bh, sides.NewFloats(bh/2))
		pc.Fill()
	}
}

var (
	clockOnce   sync.Once
	clockLayout string
)

// twelveHourRegions are the regions conventionally using 12-hour
// clocks in their status bars.
var twelveHourRegions = map[string]bool{
	"AU": true, "CA": true, "CO": true, "EG": true, "IN": true,
	"MY": true, "NZ": true, "PH": true, "PK": true, "SA": true,
	"US": true,
}

// clockFormat returns the time layout of the status bar clock,
// following the system locale's 12 or 24 hour convention. The locale
// is resolved once per process.
func clockFormat() string {
	clockOnce.Do(func() {
		clockLayout = "15:04"
		region, err := locale.GetRegion()
		if err == nil && twelveHourRegions[region] {
			clockLayout = "3:04"
		}
	})
	return clockLayout
}

// startClock schedules a render for the next real minute boundary, so
// the status bar clock stays current while chrome is visible. The
// timer callback runs on its own goroutine and only touches the
// atomic render flag before rescheduling.
func (wn *Window) startClock() {
	wn.clockMu.Lock()
	defer wn.clockMu.Unlock()
	if wn.Preset == nil || wn.Preset.Chrome.Top <= 0 {
		return
	}
	wn.clockOn = true
	wn.scheduleClock()
}

// scheduleClock arms the timer for the next minute boundary.
// The clock mutex must be held.
func (wn *Window) scheduleClock() {
	if wn.clockTimer != nil {
		wn.clockTimer.Stop()
	}
	now := time.Now()
	next := now.Truncate(time.Minute).Add(time.Minute)
	wn.clockTimer = time.AfterFunc(next.Sub(now), func() {
		wn.clockMu.Lock()
		defer wn.clockMu.Unlock()
		if !wn.clockOn {
			return
		}
		wn.needsRender.Store(true)
		wn.scheduleClock()
	})
}

// stopClock stops the status bar clock timer.
func (wn *Window) stopClock() {
	wn.clockMu.Lock()
	defer wn.clockMu.Unlock()
	wn.clockOn = false
	if wn.clockTimer != nil {
		wn.clockTimer.Stop()
		wn.clockTimer = nil
	}
}
