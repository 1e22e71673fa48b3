// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a colored structured log handler and
// global user verbosity levels for log and print calls.
package logx

import (
	"fmt"
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically be
// set through command line flags. It defaults to [slog.LevelInfo], and
// is set to [slog.LevelDebug] by the "debug" build tag and
// [slog.LevelWarn] by the "release" build tag.
var UserLevel = defaultUserLevel

func init() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, nil)))
}

// PrintlnDebug prints the given arguments with a newline
// if [UserLevel] is at or below [slog.LevelDebug].
func PrintlnDebug(a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Println(a...)
	}
}

// PrintfDebug prints the given formatted arguments
// if [UserLevel] is at or below [slog.LevelDebug].
func PrintfDebug(format string, a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Printf(format, a...)
	}
}

// PrintlnInfo prints the given arguments with a newline
// if [UserLevel] is at or below [slog.LevelInfo].
func PrintlnInfo(a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Println(a...)
	}
}

// PrintfInfo prints the given formatted arguments
// if [UserLevel] is at or below [slog.LevelInfo].
func PrintfInfo(format string, a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Printf(format, a...)
	}
}

// PrintlnWarn prints the given arguments with a newline
// if [UserLevel] is at or below [slog.LevelWarn].
func PrintlnWarn(a ...any) {
	if UserLevel <= slog.LevelWarn {
		fmt.Println(a...)
	}
}

// PrintfWarn prints the given formatted arguments
// if [UserLevel] is at or below [slog.LevelWarn].
func PrintfWarn(format string, a ...any) {
	if UserLevel <= slog.LevelWarn {
		fmt.Printf(format, a...)
	}
}

// PrintlnError prints the given arguments with a newline
// if [UserLevel] is at or below [slog.LevelError].
func PrintlnError(a ...any) {
	if UserLevel <= slog.LevelError {
		fmt.Println(a...)
	}
}

// PrintfError prints the given formatted arguments
// if [UserLevel] is at or below [slog.LevelError].
func PrintfError(format string, a ...any) {
	if UserLevel <= slog.LevelError {
		fmt.Printf(format, a...)
	}
}
