// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerbosity(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Verbosity{VeryVerbose: true}.Level())
	assert.Equal(t, slog.LevelInfo, Verbosity{Verbose: true}.Level())
	assert.Equal(t, slog.LevelError, Verbosity{Quiet: true}.Level())
	assert.Equal(t, slog.LevelWarn, Verbosity{}.Level())
	assert.Equal(t, slog.LevelDebug, Verbosity{VeryVerbose: true, Quiet: true}.Level())

	var v Verbosity
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v.AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"-q", "--vv"}))
	assert.Equal(t, Verbosity{VeryVerbose: true, Quiet: true}, v)
}

func TestHandler(t *testing.T) {
	prev := UserLevel.Level()
	defer UserLevel.Set(prev)
	UserLevel.Set(slog.LevelInfo)

	var buf bytes.Buffer
	h := NewHandler(&buf)
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))

	lg := slog.New(h)
	lg.Info("laid out", "lines", 2)
	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "lines=2")
	assert.NotContains(t, out, "time=")

	UserLevel.Set(slog.LevelError)
	assert.False(t, h.Enabled(context.Background(), slog.LevelWarn))
}
