// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"bytes"
	"sync"

	"cogentcore.org/viewport/base/errors"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// Font is a parsed font face that can be drawn by a [Painter].
type Font struct {
	face *font.Face
}

// LoadFont parses the given TTF font data into a [Font].
func LoadFont(ttf []byte) (*Font, error) {
	faces, err := font.ParseTTC(bytes.NewReader(ttf))
	if err != nil {
		return nil, err
	}
	return &Font{face: faces[0]}, nil
}

var (
	sansOnce sync.Once
	sans     *Font

	sansBoldOnce sync.Once
	sansBold     *Font
)

// Sans returns the default sans-serif font (Latin Modern Sans),
// used for device chrome text.
func Sans() *Font {
	sansOnce.Do(func() {
		sans = errors.Must1(LoadFont(lmsans10regular.TTF))
	})
	return sans
}

// SansBold returns the bold sans-serif font (Latin Modern Sans Bold),
// used for the status bar clock.
func SansBold() *Font {
	sansBoldOnce.Do(func() {
		sansBold = errors.Must1(LoadFont(lmsans10bold.TTF))
	})
	return sansBold
}

func (f *Font) upem() float32 {
	return float32(f.face.Upem())
}

// Extents returns the ascender and descender of the font at the given
// size, in pixels. The descender is typically negative.
func (f *Font) Extents(size float32) (ascender, descender float32) {
	ext, _ := f.face.FontHExtents()
	sc := size / f.upem()
	return ext.Ascender * sc, ext.Descender * sc
}

// TextWidth returns the width of the given text at the given size in
// pixels, as the sum of the glyph advances.
func (f *Font) TextWidth(size float32, text string) float32 {
	sc := size / f.upem()
	w := float32(0)
	for _, r := range text {
		gid, ok := f.face.Cmap.Lookup(r)
		if !ok {
			continue
		}
		w += sc * f.face.HorizontalAdvance(gid)
	}
	return w
}

// DrawText draws the given text with its baseline starting at the given
// position, using the fill color. Runes without a glyph in the font are
// skipped. It returns the advance width of the text.
func (pt *Painter) DrawText(f *Font, size float32, x, y float32, text string) float32 {
	sc := size / f.upem()
	sx := x
	for _, r := range text {
		gid, ok := f.face.Cmap.Lookup(r)
		if !ok {
			continue
		}
		pt.drawGlyph(f, gid, sc, x, y)
		x += sc * f.face.HorizontalAdvance(gid)
	}
	pt.Fill()
	return x - sx
}

// drawGlyph adds the outline of the given glyph to the current path,
// positioned with its origin at the given baseline point.
// Font y coordinates go up, so they are negated here.
func (pt *Painter) drawGlyph(f *Font, gid font.GID, sc, x, y float32) {
	data, ok := f.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return
	}
	for _, s := range data.Segments {
		px, py := s.Args[0].X*sc+x, -s.Args[0].Y*sc+y
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			pt.MoveTo(px, py)
		case opentype.SegmentOpLineTo:
			pt.LineTo(px, py)
		case opentype.SegmentOpQuadTo:
			pt.QuadTo(px, py, s.Args[1].X*sc+x, -s.Args[1].Y*sc+y)
		case opentype.SegmentOpCubeTo:
			pt.CubeTo(px, py, s.Args[1].X*sc+x, -s.Args[1].Y*sc+y, s.Args[2].X*sc+x, -s.Args[2].Y*sc+y)
		}
	}
	pt.ClosePath()
}
