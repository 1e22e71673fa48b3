// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/viewport/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNotReady(t *testing.T) {
	wn := NewWindow(nil)
	assert.Nil(t, wn.Render())
}

func TestRenderPassThrough(t *testing.T) {
	wn := newTestWindow()
	wn.SetShowHandles(false)

	pr := wn.Render()
	require.NotNil(t, pr)
	assert.Same(t, wn.Boundary().Pixels(), pr.Pixels, "an unzoomed bare frame passes the boundary raster through")
	assert.Equal(t, image.Pt(100, 100), pr.Pos)
	assert.Equal(t, image.Rect(100, 100, 500, 400), pr.Bounds())
	assert.Equal(t, color.RGBA{R: 250, G: 250, B: 250, A: 255}, pr.Pixels.RGBAAt(200, 150))
}

func TestRenderHandles(t *testing.T) {
	wn := NewWindow(solidContent(color.RGBA{R: 200, A: 255}))
	wn.StartSize = image.Pt(400, 300)
	wn.Init()

	pr := wn.Render()
	require.NotNil(t, pr)
	assert.NotSame(t, wn.Boundary().Pixels(), pr.Pixels, "handles are drawn on a copy")
	assert.Equal(t, color.RGBA{R: 200, A: 255}, wn.Boundary().Pixels().RGBAAt(2, 2), "the boundary raster stays clean")

	// handle square interiors at the NW and SE corners
	assert.Equal(t, handleFill, pr.Pixels.RGBAAt(2, 2))
	assert.Equal(t, handleFill, pr.Pixels.RGBAAt(398, 298))
	assert.Equal(t, color.RGBA{R: 200, A: 255}, pr.Pixels.RGBAAt(200, 150))
}

func TestRenderScaled(t *testing.T) {
	wn := newTestWindow()
	wn.SetShowHandles(false)

	wn.SetScale(2)
	pr := wn.Render()
	require.NotNil(t, pr)
	assert.Equal(t, image.Pt(800, 600), pr.Pixels.Bounds().Size())
	assert.Equal(t, image.Rect(100, 100, 900, 700), pr.Bounds())
	assert.Equal(t, color.RGBA{R: 250, G: 250, B: 250, A: 255}, pr.Pixels.RGBAAt(400, 300))

	wn.SetScale(0.5)
	pr = wn.Render()
	assert.Equal(t, image.Pt(200, 150), pr.Pixels.Bounds().Size())
	assert.Equal(t, image.Rect(100, 100, 300, 250), pr.Bounds())
}

func TestRenderContentError(t *testing.T) {
	wn := NewWindow(errorContent("render failed"))
	wn.StartSize = image.Pt(100, 80)
	wn.Init()

	pr := wn.Render()
	require.NotNil(t, pr, "content failures keep the previous frame")
	assert.Equal(t, image.Pt(100, 80), pr.Bounds().Size())
}

func TestNeedsRender(t *testing.T) {
	wn := newTestWindow()
	assert.True(t, wn.NeedsRender())
	wn.Render()
	assert.False(t, wn.NeedsRender())

	wn.SetScale(2)
	assert.True(t, wn.NeedsRender())
	wn.Render()

	wn.Resize(image.Pt(500, 400))
	assert.True(t, wn.NeedsRender())
	wn.Render()

	wn.SetPos(image.Point{})
	assert.True(t, wn.NeedsRender())
	wn.Render()

	wn.AddGlobalStyle(".card { color: red; }")
	assert.True(t, wn.NeedsRender())
	wn.Render()

	wn.HandleEvent(events.NewWindowPaint())
	assert.True(t, wn.NeedsRender())
}
