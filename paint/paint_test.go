// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"testing"

	"cogentcore.org/linklabel/colors"
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/shaped"
	"cogentcore.org/linklabel/text/shaped/shapedmono"
	"cogentcore.org/linklabel/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layout(t *testing.T, tx rich.Text, width float32) *shaped.Lines {
	ls, err := shaped.LayoutChecked(shapedmono.NewAspect(1), tx, shaped.Options{Size: math32.Vec2(width, 0)})
	require.NoError(t, err)
	return ls
}

func TestTextRenderLinks(t *testing.T) {
	sty := rich.NewStyle()
	sty.SetSize(10)
	tx := rich.NewPlain(sty, "go to example.com now")
	link := sty
	link.SetUnderline(true).SetColor(colors.Blue)
	tx = tx.OverlayRange(textpos.R(6, 17), link)
	ls := layout(t, tx, 500)

	r := TextRender(ls, math32.Vec2(1, 2), []Target{{Range: textpos.R(6, 17), URL: "http://example.com"}})
	var rc Recorder
	rc.Paint(r)
	gs := rc.Glyphs()
	require.Len(t, gs, 3)
	assert.Equal(t, "go to ", string(gs[0].Runes))
	assert.Equal(t, "example.com", string(gs[1].Runes))
	assert.Equal(t, math32.Vec2(61, 2+ls.Lines[0].Baseline), gs[1].Pos)
	assert.Equal(t, float32(110), gs[1].Width())

	var push *LinkPush
	var lines []*Line
	pops := 0
	for _, it := range rc.Render {
		switch it := it.(type) {
		case *LinkPush:
			push = it
		case *LinkPop:
			pops++
		case *Line:
			lines = append(lines, it)
		}
	}
	require.NotNil(t, push)
	assert.Equal(t, "http://example.com", push.URL)
	assert.Equal(t, 1, pops)
	require.Len(t, lines, 1)
	assert.Equal(t, colors.Blue, lines[0].Color)
	assert.Equal(t, float32(110), lines[0].To.X-lines[0].From.X)
}

func TestTextRenderSplitsAtTargets(t *testing.T) {
	sty := rich.NewStyle()
	sty.SetSize(10)
	ls := layout(t, rich.NewPlain(sty, "abcdef"), 500)
	r := TextRender(ls, math32.Vector2{}, []Target{{Range: textpos.R(0, 4)}, {Range: textpos.R(2, 6)}})
	var rc Recorder
	rc.Paint(r)
	gs := rc.Glyphs()
	require.Len(t, gs, 2)
	assert.Equal(t, "ab", string(gs[0].Runes))
	assert.Equal(t, "cdef", string(gs[1].Runes))
	var idx []int
	for _, it := range rc.Render {
		if p, ok := it.(*LinkPush); ok {
			idx = append(idx, p.Index)
		}
	}
	assert.Equal(t, []int{0, 1}, idx)
}

func TestTextRenderDecorations(t *testing.T) {
	sty := rich.NewStyle()
	sty.SetSize(10)
	sty.SetShadow(rich.Shadow{Offset: math32.Vec2(1, 1), Color: colors.Black})
	sty.SetBackground(rich.Background{Fill: colors.Blue})
	sty.SetStrikeout(true)
	ls := layout(t, rich.NewPlain(sty, "hi"), 500)
	var rc Recorder
	rc.Paint(TextRender(ls, math32.Vector2{}, nil))
	require.Len(t, rc.Render, 4)
	box, ok := rc.Render[0].(*Box)
	require.True(t, ok)
	assert.Equal(t, float32(20), box.Bounds.Size().X)
	sh, ok := rc.Render[1].(*Glyphs)
	require.True(t, ok)
	assert.True(t, sh.Shadow)
	assert.Len(t, rc.Glyphs(), 1)
	ln, ok := rc.Render[3].(*Line)
	require.True(t, ok)
	assert.Equal(t, Strikeout, ln.Kind)

	rc.Render.Reset()
	assert.Empty(t, rc.Render)
	assert.Empty(t, TextRender(nil, math32.Vector2{}, nil))
}
