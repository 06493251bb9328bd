// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termpaint

import (
	"bytes"
	"testing"

	"cogentcore.org/linklabel/colors"
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/paint"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/shaped"
	"cogentcore.org/linklabel/text/shaped/shapedmono"
	"cogentcore.org/linklabel/text/textpos"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, tx rich.Text, width float32, targets []paint.Target) paint.Render {
	ls, err := shaped.LayoutChecked(shapedmono.NewAspect(1), tx, shaped.Options{Size: math32.Vec2(width, 0)})
	require.NoError(t, err)
	return paint.TextRender(ls, math32.Vector2{}, targets)
}

func plain(s string) rich.Text {
	sty := rich.NewStyle()
	sty.SetSize(10)
	return rich.NewPlain(sty, s)
}

func TestPlain(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, math32.Vec2(10, 10), termenv.WithProfile(termenv.Ascii))
	p.Paint(render(t, plain("hello world"), 60, nil))
	assert.Equal(t, "hello\nworld\n", p.String())

	p.Width = 3
	require.NoError(t, p.Flush())
	assert.Equal(t, "hel\nwor\n", buf.String())
	assert.Empty(t, p.String())
}

func TestWide(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, math32.Vec2(10, 10), termenv.WithProfile(termenv.Ascii))
	p.Paint(render(t, plain("日本 é"), 500, nil))
	assert.Equal(t, "日本 é\n", p.String())
}

func TestStyledLink(t *testing.T) {
	tx := plain("see example.com")
	sty := rich.NewStyle()
	sty.SetSize(10)
	sty.SetColor(colors.Blue).SetUnderline(true)
	tx = tx.OverlayRange(textpos.R(4, 15), sty)

	var buf bytes.Buffer
	p := New(&buf, math32.Vec2(10, 10), termenv.WithProfile(termenv.TrueColor))
	p.Paint(render(t, tx, 500, []paint.Target{{Range: textpos.R(4, 15), URL: "http://example.com"}}))
	require.NoError(t, p.Flush())
	out := buf.String()
	assert.Contains(t, out, "8;;http://example.com")
	assert.Contains(t, out, "example.com")
	assert.Contains(t, out, ";4m") // underline
	assert.Contains(t, out, "38;2;0;0;")
}
