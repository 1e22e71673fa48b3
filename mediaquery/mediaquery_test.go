// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mediaquery

import (
	"testing"

	"cogentcore.org/viewport/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSim returns a simulator with a fixed content size and otherwise
// default environment.
func fixedSim(width, height float32) *Simulator {
	return NewSimulator(func() Environment {
		return Environment{Size: math32.Vec2(width, height)}
	}, nil)
}

func TestMatchDimensions(t *testing.T) {
	sim := fixedSim(800, 600)
	tests := []struct {
		query string
		want  bool
	}{
		{"(min-width: 600px)", true},
		{"(min-width: 800px)", true},
		{"(min-width: 900px)", false},
		{"(max-width: 800px)", true},
		{"(max-width: 640px)", false},
		{"(width: 800px)", true},
		{"(width: 640px)", false},
		{"(height: 600px)", true},
		{"(min-width: 50em)", true},
		{"(max-width: 49em)", false},
		{"screen and (min-width: 600px) and (max-height: 700px)", true},
		{"only screen and (min-width: 600px)", true},
		{"print", false},
		{"not print", true},
		{"tv", false},
		{"not tv", false},
		{"(min-width: 2000px), (orientation: landscape)", true},
		{"(min-width: 2000px), (orientation: portrait)", false},
		{"not (min-width: 2000px)", true},
		{"(aspect-ratio: 4/3)", true},
		{"(min-aspect-ratio: 16/9)", false},
		{"(max-aspect-ratio: 16/9)", true},
		{"", true},
		{"all", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sim.MatchMedia(tt.query).Matches(), "query: %s", tt.query)
	}
}

func TestEnvironmentUpdate(t *testing.T) {
	sz := math32.Vec2(800, 600)
	sim := NewSimulator(func() Environment {
		return Environment{Size: sz}
	}, nil)
	ls := sim.MatchMedia("(orientation: portrait)")
	assert.False(t, ls.Matches())

	var got []ChangeEvent
	ls.AddEventListener("change", func(e ChangeEvent) {
		got = append(got, e)
	})
	sz = math32.Vec2(600, 800)
	sim.Update()
	assert.True(t, ls.Matches())
	require.Len(t, got, 1)
	assert.True(t, got[0].Matches)
	assert.Equal(t, "(orientation: portrait)", got[0].Media)

	// a square viewport counts as portrait: no flip, no event
	sz = math32.Vec2(700, 700)
	sim.Update()
	assert.True(t, ls.Matches())
	assert.Len(t, got, 1)
}

func TestOverrides(t *testing.T) {
	sim := fixedSim(800, 600)
	ls := sim.MatchMedia("(prefers-color-scheme: dark)")
	assert.False(t, ls.Matches())

	var got []ChangeEvent
	ls.AddListener(func(e ChangeEvent) {
		got = append(got, e)
	})
	sim.SetOverrides(map[string]string{"prefers-color-scheme": "dark"})
	assert.True(t, ls.Matches())
	require.Len(t, got, 1)
	assert.True(t, got[0].Matches)

	// override values compare case-insensitively, so no flip here
	sim.SetOverrides(map[string]string{"prefers-color-scheme": "Dark"})
	assert.True(t, ls.Matches())
	assert.Len(t, got, 1)

	sim.SetOverrides(nil)
	assert.False(t, ls.Matches())
	require.Len(t, got, 2)
	assert.False(t, got[1].Matches)
}

func TestOverrideWidth(t *testing.T) {
	sim := fixedSim(800, 600)
	ls := sim.MatchMedia("(max-width: 500px)")
	assert.False(t, ls.Matches())
	sim.SetOverrides(map[string]string{"width": "480px"})
	assert.True(t, ls.Matches())
	assert.Equal(t, map[string]string{"width": "480px"}, sim.Overrides())
}

func TestBooleanContext(t *testing.T) {
	sim := fixedSim(800, 600)
	assert.True(t, sim.MatchMedia("(hover)").Matches())
	assert.True(t, sim.MatchMedia("(pointer)").Matches())
	assert.True(t, sim.MatchMedia("(width)").Matches())
	assert.False(t, sim.MatchMedia("(prefers-reduced-motion)").Matches())

	sim.SetOverrides(map[string]string{"hover": "none", "prefers-reduced-motion": "reduce"})
	assert.False(t, sim.MatchMedia("(hover)").Matches())
	assert.True(t, sim.MatchMedia("(any-hover)").Matches())
	assert.True(t, sim.MatchMedia("(prefers-reduced-motion)").Matches())
	assert.True(t, sim.MatchMedia("(prefers-reduced-motion: reduce)").Matches())
}

func TestResolution(t *testing.T) {
	sim := NewSimulator(func() Environment {
		return Environment{Size: math32.Vec2(800, 600), DPR: 2}
	}, nil)
	tests := []struct {
		query string
		want  bool
	}{
		{"(min-resolution: 2dppx)", true},
		{"(min-resolution: 192dpi)", true},
		{"(resolution: 2x)", true},
		{"(min-resolution: 3dppx)", false},
		{"(max-resolution: 1dppx)", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sim.MatchMedia(tt.query).Matches(), "query: %s", tt.query)
	}
}

func TestMalformedQueries(t *testing.T) {
	sim := fixedSim(800, 600)
	for _, q := range []string{"(((", "(min-width:)", "screen and", "(: 5px)", "@media screen", "16px"} {
		assert.False(t, sim.MatchMedia(q).Matches(), "query: %s", q)
	}
}

func TestNeverMatching(t *testing.T) {
	ls := NeverMatching("(min-width: 1px)")
	assert.False(t, ls.Matches())
	assert.Equal(t, "(min-width: 1px)", ls.Media())
	ls.AddEventListener("change", func(ChangeEvent) {
		t.Error("detached list must never fire")
	})
	ls.update()
	assert.False(t, ls.Matches())
}

func TestListenerRemoval(t *testing.T) {
	sz := math32.Vec2(800, 600)
	sim := NewSimulator(func() Environment {
		return Environment{Size: sz}
	}, nil)
	ls := sim.MatchMedia("(min-width: 700px)")
	require.True(t, ls.Matches())

	aCount := 0
	bCount := 0
	fa := func(ChangeEvent) { aCount++ }
	fb := func(ChangeEvent) { bCount++ }
	ls.AddEventListener("change", fa)
	ls.AddEventListener("change", fb)
	ls.RemoveEventListener("change", fa)
	ls.RemoveEventListener("resize", fb) // not an event type lists emit

	sz = math32.Vec2(600, 600)
	sim.Update()
	assert.Equal(t, 0, aCount)
	assert.Equal(t, 1, bCount)

	ls.RemoveListener(fb)
	sz = math32.Vec2(800, 600)
	sim.Update()
	assert.Equal(t, 1, bCount)
	assert.True(t, ls.Matches())
}

func TestDestroy(t *testing.T) {
	sim := fixedSim(800, 600)
	ls := sim.MatchMedia("(prefers-color-scheme: dark)")
	ls.AddEventListener("change", func(ChangeEvent) {
		t.Error("destroyed list must never fire")
	})
	sim.Destroy()
	sim.SetOverrides(map[string]string{"prefers-color-scheme": "dark"})
	assert.False(t, ls.Matches())

	// lists created after override changes see them at creation
	ls2 := sim.MatchMedia("(prefers-color-scheme: dark)")
	assert.True(t, ls2.Matches())
}
