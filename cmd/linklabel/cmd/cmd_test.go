// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"cogentcore.org/linklabel/label"
	"cogentcore.org/linklabel/text/shaped"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "-q"))
	err := root.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	out, err := run(t, "render", "--profile", "ascii", "--width", "40", "Visit https://example.com today")
	require.NoError(t, err)
	assert.Equal(t, "Visit https://example.com today\n", out)

	out, err = run(t, "render", "--profile", "truecolor", "--width", "40", "Visit https://example.com today")
	require.NoError(t, err)
	assert.Contains(t, out, "8;;https://example.com")

	out, err = run(t, "render", "--profile", "ascii", "--width", "10", "--lines", "1", "--break", "truncate-tail", "abcdefghijklmnop")
	require.NoError(t, err)
	assert.Equal(t, "abcdefghi…\n", out)
}

func TestDetect(t *testing.T) {
	out, err := run(t, "detect", "Call 555-123-4567 today")
	require.NoError(t, err)
	assert.Contains(t, out, "type: phone\n  start: 5\n  end: 17\n  text: 555-123-4567\n")

	out, err = run(t, "detect", "--html", `See <a href="https://example.com/a">the docs</a>`)
	require.NoError(t, err)
	assert.Contains(t, out, "text: the docs")
	assert.Contains(t, out, "value: https://example.com/a")

	out, err = run(t, "detect", "--md", "See [the docs](https://example.com/b)")
	require.NoError(t, err)
	assert.Contains(t, out, "value: https://example.com/b")

	_, err = run(t, "detect", "--md", "--html", "x")
	assert.Error(t, err)
}

func TestMeasure(t *testing.T) {
	out, err := run(t, "measure", "--width", "40", "hello world")
	require.NoError(t, err)
	assert.Equal(t, "size: 132.0 x 12.0\ncells: 11 x 1\nlines: 1\n", out)

	out, err = run(t, "measure", "--width", "5", "hello world")
	require.NoError(t, err)
	assert.Contains(t, out, "lines: 2\n")
}

func TestHit(t *testing.T) {
	out, err := run(t, "hit", "--width", "40", "Visit https://example.com today", "8", "0")
	require.NoError(t, err)
	assert.Equal(t, "tap url \"https://example.com\" https://example.com\n", out)

	out, err = run(t, "hit", "--width", "40", "Visit https://example.com today", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, "no link at 0,0\n", out)

	out, err = run(t, "hit", "--hold", "--width", "40", "Visit https://example.com today", "8", "0")
	require.NoError(t, err)
	assert.Equal(t, "long-press url \"https://example.com\" https://example.com\n", out)

	_, err = run(t, "hit", "x", "a", "0")
	assert.Error(t, err)
}

func TestConfig(t *testing.T) {
	out, err := run(t, "config", "--lines", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "max_lines = 3")
	assert.Contains(t, out, "[links]")

	out, err = run(t, "config", "--yaml", "--break", "clip")
	require.NoError(t, err)
	assert.Contains(t, out, "line_break: clip")

	path := filepath.Join(t.TempDir(), "label.toml")
	_, err = run(t, "config", "--break", "truncate-middle", "--save", path)
	require.NoError(t, err)
	cfg, err := label.OpenConfig(path)
	require.NoError(t, err)
	assert.Equal(t, shaped.TruncateMiddle, cfg.LineBreak)

	out, err = run(t, "render", "--profile", "ascii", "--config", path, "--width", "10", "--lines", "1", "abcdefghijklmnop")
	require.NoError(t, err)
	assert.Equal(t, "abcde…mnop\n", out)

	_, err = run(t, "config", "--break", "sideways")
	assert.Error(t, err)
	_, err = run(t, "render", "--shaper", "nope", "x")
	assert.Error(t, err)
}
