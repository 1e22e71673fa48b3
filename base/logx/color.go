// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log and print messages.
// It is on by default.
var UseColor = true

// colorProfile is the termenv color profile of the terminal,
// captured once at startup.
var colorProfile = termenv.ColorProfile()

// ApplyColor applies the given color to the given string
// and returns the resulting string. If [UseColor] is set
// to false, it just returns the string it was passed.
func ApplyColor(clr string, str string) string {
	if !UseColor {
		return str
	}
	return termenv.String(str).Foreground(colorProfile.Color(clr)).String()
}

// LevelColor applies the color associated with the given level to the given string.
func LevelColor(level slog.Level, str string) string {
	switch {
	case level >= slog.LevelError:
		return ErrorColor(str)
	case level >= slog.LevelWarn:
		return WarnColor(str)
	case level >= slog.LevelInfo:
		return InfoColor(str)
	default:
		return DebugColor(str)
	}
}

// DebugColor returns the given string formatted in the color
// associated with the debug level (gray).
func DebugColor(str string) string {
	return ApplyColor("#808080", str)
}

// InfoColor returns the given string formatted in the color
// associated with the info level, which is just the default color.
func InfoColor(str string) string {
	return str
}

// WarnColor returns the given string formatted in the color
// associated with the warn level (orange).
func WarnColor(str string) string {
	return ApplyColor("#C08000", str)
}

// ErrorColor returns the given string formatted in the color
// associated with the error level (red).
func ErrorColor(str string) string {
	return ApplyColor("#D03030", str)
}

// SuccessColor returns the given string formatted in the color
// associated with success (green).
func SuccessColor(str string) string {
	return ApplyColor("#008060", str)
}

// CmdColor returns the given string formatted in the color
// associated with commands and code (cyan).
func CmdColor(str string) string {
	return ApplyColor("#008080", str)
}
