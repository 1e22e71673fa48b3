// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"os"

	"cogentcore.org/viewport/base/errors"
	"cogentcore.org/viewport/base/iox/imagex"
	"cogentcore.org/viewport/math32"
	"github.com/anthonynsimon/bild/transform"
)

// ExportOptions configure [Window.ExportImage] and [Window.SaveImage].
// The zero value exports a PNG of the bare content at the logical size.
type ExportOptions struct {

	// Format is the output image format. The zero value selects PNG.
	Format imagex.Formats

	// Quality is the encoding quality for lossy formats, in 1 to 100.
	// The zero value selects [imagex.DefaultQuality].
	Quality int

	// Background, when non-nil, is filled behind the content,
	// flattening any transparency. Use [image.NewUniform] for a
	// plain color.
	Background image.Image

	// Scale multiplies the output pixel size, independently of the
	// live zoom. The zero value selects 1.
	Scale float32

	// IncludeHandles includes the resize handle affordances in the
	// output. By default they are excluded: hidden for the duration
	// of the capture and restored to their prior display state
	// afterward, even when the export fails.
	IncludeHandles bool
}

// ExportImage rasterizes the window and returns the encoded image
// payload. The capture renders the live boundary content at the
// logical content size, regardless of the current zoom, then
// composites chrome bands when visible, applies the background fill
// and the export scale, and encodes in the requested format.
// It fails with a descriptive error if the window is not initialized
// or content rendering fails; the handle display state is restored in
// every case.
func (wn *Window) ExportImage(opts *ExportOptions) ([]byte, error) {
	if !wn.ready || wn.bound == nil {
		return nil, errors.New("viewport: export: boundary not initialized; call Init first")
	}
	if opts == nil {
		opts = &ExportOptions{}
	}
	format := opts.Format
	if format == imagex.None {
		format = imagex.PNG
	}
	quality := opts.Quality
	if quality <= 0 {
		quality = imagex.DefaultQuality
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	shown := wn.ShowHandles
	wn.ShowHandles = opts.IncludeHandles
	defer func() {
		wn.ShowHandles = shown
	}()

	if err := wn.renderContent(); err != nil {
		return nil, fmt.Errorf("viewport: export: rendering content failed: %w", err)
	}
	capture := imagex.CloneAsRGBA(wn.bound.pixels)
	if wn.ShowChrome && wn.Preset != nil {
		wn.drawChrome(capture)
	}
	if wn.ShowHandles {
		wn.drawHandles(capture)
	}
	if opts.Background != nil {
		flat := image.NewRGBA(capture.Bounds())
		draw.Draw(flat, flat.Bounds(), opts.Background, image.Point{}, draw.Src)
		draw.Draw(flat, flat.Bounds(), capture, capture.Bounds().Min, draw.Over)
		capture = flat
	}
	if scale != 1 {
		sz := math32.Vector2FromPoint(capture.Bounds().Size()).MulScalar(scale).ToPointRound()
		capture = transform.Resize(capture, max(sz.X, 1), max(sz.Y, 1), transform.Linear)
	}

	var buf bytes.Buffer
	if err := imagex.WriteQuality(capture, &buf, format, quality); err != nil {
		return nil, fmt.Errorf("viewport: export: encoding %v failed: %w", format, err)
	}
	return buf.Bytes(), nil
}

// SaveImage exports the window with [Window.ExportImage] and writes
// the payload to the given file. An empty filename saves to
// "window.png" (or the extension of the requested format).
func (wn *Window) SaveImage(filename string, opts *ExportOptions) error {
	data, err := wn.ExportImage(opts)
	if err != nil {
		return err
	}
	if filename == "" {
		format := imagex.PNG
		if opts != nil && opts.Format != imagex.None {
			format = opts.Format
		}
		filename = "window." + format.String()
	}
	return os.WriteFile(filename, data, 0666)
}
