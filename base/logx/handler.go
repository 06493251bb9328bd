// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// levelColors are the ANSI colors used for level labels.
var levelColors = map[slog.Level]termenv.ANSIColor{
	slog.LevelDebug: termenv.ANSIBrightBlack,
	slog.LevelInfo:  termenv.ANSICyan,
	slog.LevelWarn:  termenv.ANSIYellow,
	slog.LevelError: termenv.ANSIRed,
}

// NewHandler returns a text [slog.Handler] writing to w at [UserLevel].
// If w is a terminal that supports color, level labels are colored.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	color := out.ColorProfile() != termenv.Ascii
	opts := &slog.HandlerOptions{
		Level: &UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				if !color {
					return a
				}
				lv, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				c, ok := levelColors[lv]
				if !ok {
					return a
				}
				a.Value = slog.StringValue(out.String(lv.String()).Foreground(c).String())
			}
			return a
		},
	}
	return slog.NewTextHandler(w, opts)
}

// SetDefaultLogger sets the default [slog] logger to one
// writing to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
