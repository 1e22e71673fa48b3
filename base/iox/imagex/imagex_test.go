// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/h2non/filetype"
	"github.com/stretchr/testify/assert"
)

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".png")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)

	f, err = ExtToFormat("JPG")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)

	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".xyz")
	assert.Error(t, err)
}

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 30), uint8(y * 30), 128, 255})
		}
	}
	return img
}

func TestWriteRead(t *testing.T) {
	img := testImage()

	b := &bytes.Buffer{}
	assert.NoError(t, Write(img, b, PNG))
	assert.True(t, filetype.IsImage(b.Bytes()))

	rimg, f, err := Read(b)
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, img.Bounds(), rimg.Bounds())

	b.Reset()
	assert.NoError(t, WriteQuality(img, b, JPEG, 50))
	m, err := filetype.Match(b.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, "jpg", m.Extension)

	assert.Error(t, Write(img, &bytes.Buffer{}, None))
}

func TestAsRGBA(t *testing.T) {
	img := testImage()
	assert.Same(t, img, AsRGBA(img))

	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	rgba := AsRGBA(gray)
	assert.NotNil(t, rgba)
	assert.Equal(t, gray.Bounds(), rgba.Bounds())

	clone := CloneAsRGBA(img)
	assert.NotSame(t, img, clone)
	assert.Equal(t, img.Pix, clone.Pix)

	assert.Nil(t, AsRGBA(nil))
}

func TestCompare(t *testing.T) {
	assert.True(t, CompareUint8(100, 101, 1))
	assert.False(t, CompareUint8(100, 102, 1))
	assert.True(t, CompareColors(color.RGBA{1, 2, 3, 255}, color.RGBA{2, 3, 4, 255}, 1))
	assert.False(t, CompareColors(color.RGBA{1, 2, 3, 255}, color.RGBA{5, 3, 4, 255}, 1))

	a := testImage()
	d := DiffImage(a, a)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, d.(*image.RGBA).RGBAAt(3, 3))
}

func TestFormatsEnum(t *testing.T) {
	assert.Equal(t, "png", PNG.String())
	var f Formats
	assert.NoError(t, f.SetString("jpeg"))
	assert.Equal(t, JPEG, f)
	assert.Error(t, f.SetString("avif"))
	assert.Equal(t, int64(6), WebP.Int64())
	assert.Len(t, FormatsValues(), int(FormatsN))
}
