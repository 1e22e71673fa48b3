// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/viewport/base/iox/imagex"
	"cogentcore.org/viewport/paint"
	"github.com/h2non/filetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyContent renders nothing, leaving the boundary transparent.
func emptyContent() ContentFunc {
	return func(pc *paint.Painter, ctx *RenderContext) error {
		return nil
	}
}

func decodeExport(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, _, err := imagex.Read(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestExportNotReady(t *testing.T) {
	wn := NewWindow(nil)
	_, err := wn.ExportImage(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestExportPNG(t *testing.T) {
	wn := newTestWindow()
	data, err := wn.ExportImage(nil)
	require.NoError(t, err)
	assert.True(t, filetype.Is(data, "png"))

	img := decodeExport(t, data)
	assert.Equal(t, image.Pt(400, 300), img.Bounds().Size())
	assert.Equal(t, color.RGBA{R: 250, G: 250, B: 250, A: 255}, rgbaAt(img, 200, 150))
}

func TestExportIgnoresZoom(t *testing.T) {
	wn := newTestWindow()
	wn.SetScale(0.5)
	data, err := wn.ExportImage(nil)
	require.NoError(t, err)
	img := decodeExport(t, data)
	assert.Equal(t, image.Pt(400, 300), img.Bounds().Size(), "capture uses the logical size, not the zoomed one")
}

func TestExportJPEG(t *testing.T) {
	wn := newTestWindow()
	data, err := wn.ExportImage(&ExportOptions{Format: imagex.JPEG, Quality: 60})
	require.NoError(t, err)
	m, err := filetype.Match(data)
	require.NoError(t, err)
	assert.Equal(t, "jpg", m.Extension)
}

func TestExportScale(t *testing.T) {
	wn := newTestWindow()
	data, err := wn.ExportImage(&ExportOptions{Scale: 2})
	require.NoError(t, err)
	img := decodeExport(t, data)
	assert.Equal(t, image.Pt(800, 600), img.Bounds().Size())
}

func TestExportBackground(t *testing.T) {
	wn := NewWindow(emptyContent())
	wn.StartSize = image.Pt(120, 90)
	wn.Init()

	data, err := wn.ExportImage(nil)
	require.NoError(t, err)
	img := decodeExport(t, data)
	assert.Equal(t, uint8(0), rgbaAt(img, 10, 10).A, "undrawn content stays transparent")

	red := color.RGBA{R: 255, A: 255}
	data, err = wn.ExportImage(&ExportOptions{Background: image.NewUniform(red)})
	require.NoError(t, err)
	img = decodeExport(t, data)
	assert.Equal(t, red, rgbaAt(img, 10, 10))
}

func TestExportHandles(t *testing.T) {
	wn := NewWindow(solidContent(color.RGBA{R: 200, A: 255}))
	wn.StartSize = image.Pt(400, 300)
	wn.Init()
	require.True(t, wn.ShowHandles)

	// the default capture excludes the handles and leaves the
	// display state alone
	data, err := wn.ExportImage(nil)
	require.NoError(t, err)
	assert.True(t, wn.ShowHandles)
	img := decodeExport(t, data)
	assert.Equal(t, color.RGBA{R: 200, A: 255}, rgbaAt(img, 2, 2))

	data, err = wn.ExportImage(&ExportOptions{IncludeHandles: true})
	require.NoError(t, err)
	assert.True(t, wn.ShowHandles)
	img = decodeExport(t, data)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, rgbaAt(img, 2, 2))
}

func TestExportError(t *testing.T) {
	wn := NewWindow(errorContent("boom"))
	wn.Init()
	wn.SetShowHandles(false)

	_, err := wn.ExportImage(&ExportOptions{IncludeHandles: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.False(t, wn.ShowHandles, "the handle display state is restored on failure")
}

func TestSaveImage(t *testing.T) {
	wn := newTestWindow()
	fn := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, wn.SaveImage(fn, nil))
	data, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.True(t, filetype.Is(data, "png"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })
	require.NoError(t, wn.SaveImage("", nil))
	_, err = os.Stat("window.png")
	assert.NoError(t, err)
}
