// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyColor(t *testing.T) {
	old := UseColor
	defer func() { UseColor = old }()

	UseColor = false
	assert.Equal(t, "hello", ApplyColor("#D03030", "hello"))
	assert.Equal(t, "hello", ErrorColor("hello"))
	assert.Equal(t, "hello", LevelColor(slog.LevelError, "hello"))
	assert.Equal(t, "hello", InfoColor("hello"))
}

func TestHandler(t *testing.T) {
	old := UseColor
	UseColor = false
	defer func() { UseColor = old }()

	b := &strings.Builder{}
	lg := slog.New(NewHandler(b, &slog.HandlerOptions{Level: slog.LevelInfo}))

	lg.Info("resized", "width", 375, "height", 812)
	out := b.String()
	assert.Contains(t, out, "INFO resized width=375 height=812")

	b.Reset()
	lg.Debug("not shown")
	assert.Equal(t, "", b.String())

	b.Reset()
	lg.With("window", "main").WithGroup("geom").Warn("clamped", "scale", 5.0)
	out = b.String()
	assert.Contains(t, out, `window="main"`)
	assert.Contains(t, out, "geom.scale=5")
}

func TestHandlerUserLevel(t *testing.T) {
	oldColor := UseColor
	oldLevel := UserLevel
	UseColor = false
	defer func() {
		UseColor = oldColor
		UserLevel = oldLevel
	}()

	b := &strings.Builder{}
	lg := slog.New(NewHandler(b, nil))

	UserLevel = slog.LevelWarn
	lg.Info("hidden")
	assert.Equal(t, "", b.String())

	UserLevel = slog.LevelDebug
	lg.Info("shown")
	assert.Contains(t, b.String(), "shown")
	assert.Contains(t, b.String(), time.Now().Format(time.DateOnly))
}
