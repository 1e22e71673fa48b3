// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	v.SetZero()
	assert.Equal(t, Vector2{0, 0}, v)
	assert.True(t, v.IsNil())

	v.SetPoint(image.Pt(8, 9))
	assert.Equal(t, Vector2{8, 9}, v)
}

func TestVector2Arithmetic(t *testing.T) {
	a := Vec2(3, 4)
	b := Vec2(1, -2)

	assert.Equal(t, Vec2(4, 2), a.Add(b))
	assert.Equal(t, Vec2(5, 6), a.AddScalar(2))
	assert.Equal(t, Vec2(2, 6), a.Sub(b))
	assert.Equal(t, Vec2(1, 2), a.SubScalar(2))
	assert.Equal(t, Vec2(3, -8), a.Mul(b))
	assert.Equal(t, Vec2(6, 8), a.MulScalar(2))
	assert.Equal(t, Vec2(3, -2), a.Div(b))
	assert.Equal(t, Vec2(1.5, 2), a.DivScalar(2))
	assert.Equal(t, Vector2{}, a.DivScalar(0))

	c := a
	c.SetAdd(b)
	assert.Equal(t, Vec2(4, 2), c)
	c = a
	c.SetSub(b)
	assert.Equal(t, Vec2(2, 6), c)
	c = a
	c.SetMulScalar(2)
	assert.Equal(t, Vec2(6, 8), c)
	c = a
	c.SetDivScalar(2)
	assert.Equal(t, Vec2(1.5, 2), c)
	c = a
	c.SetDivScalar(0)
	assert.Equal(t, Vector2{}, c)
}

func TestVector2MinMaxClamp(t *testing.T) {
	a := Vec2(3, -4)
	b := Vec2(1, 2)

	assert.Equal(t, Vec2(1, -4), a.Min(b))
	assert.Equal(t, Vec2(3, 2), a.Max(b))

	c := a
	c.SetMin(b)
	assert.Equal(t, Vec2(1, -4), c)
	c = a
	c.SetMax(b)
	assert.Equal(t, Vec2(3, 2), c)

	c = Vec2(5, -10)
	c.Clamp(Vec2(0, 0), Vec2(4, 4))
	assert.Equal(t, Vec2(4, 0), c)
}

func TestVector2Length(t *testing.T) {
	v := Vec2(3, 4)

	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, float32(25), v.LengthSquared())
	assert.Equal(t, float32(11), v.Dot(Vec2(1, 2)))
	assert.Equal(t, float32(2), v.Cross(Vec2(1, 2)))
	assert.Equal(t, Vec2(0.6, 0.8), v.Normal())
	assert.Equal(t, float32(5), Vector2{}.DistanceTo(v))
	assert.Equal(t, Vec2(-3, -4), v.Negate())
	assert.Equal(t, Vec2(3, 4), Vec2(-3, 4).Abs())
	assert.Equal(t, Vec2(4, 6), Vec2(2, 4).Lerp(Vec2(6, 8), 0.5))
}

func TestVector2Conversions(t *testing.T) {
	v := Vec2(3.7, -1.2)

	assert.Equal(t, image.Pt(3, -1), v.ToPoint())
	assert.Equal(t, image.Pt(3, -2), v.ToPointFloor())
	assert.Equal(t, image.Pt(4, -1), v.ToPointCeil())
	assert.Equal(t, image.Pt(4, -1), v.ToPointRound())

	assert.Equal(t, fixed.P(8, 3), Vec2(8, 3).ToFixed())
	assert.Equal(t, float32(2.5), FromFixed(ToFixed(2.5)))
	assert.Equal(t, float32(-2.5), FromFixed(ToFixed(-2.5)))
}
