// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up [log/slog] logging for the command line,
// with the level chosen by verbosity flags and colored level labels.
package logx

import (
	"log/slog"

	"github.com/spf13/pflag"
)

// UserLevel is the minimum level of the messages that are shown.
// Handlers from [NewHandler] follow changes to it.
var UserLevel slog.LevelVar

func init() {
	UserLevel.Set(slog.LevelWarn)
}

// Verbosity holds the verbosity flags of a command.
type Verbosity struct {
	Verbose     bool
	VeryVerbose bool
	Quiet       bool
}

// AddFlags adds -v, --vv and -q to fs.
func (v *Verbosity) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&v.Verbose, "verbose", "v", false, "show info messages")
	fs.BoolVar(&v.VeryVerbose, "vv", false, "show debug messages")
	fs.BoolVarP(&v.Quiet, "quiet", "q", false, "only show errors")
}

// Level returns the level selected by the flags. The most verbose
// flag wins, and warnings are shown when no flag is set.
func (v Verbosity) Level() slog.Level {
	switch {
	case v.VeryVerbose:
		return slog.LevelDebug
	case v.Verbose:
		return slog.LevelInfo
	case v.Quiet:
		return slog.LevelError
	}
	return slog.LevelWarn
}
