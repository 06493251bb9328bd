// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/linklabel/colors"
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/styles/sides"
	"cogentcore.org/linklabel/text/links"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/shaped"
	"cogentcore.org/linklabel/text/shaped/shapedmono"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSaveOpen(t *testing.T) {
	c := DefaultConfig()
	c.Family = rich.Serif
	c.LineBreak = shaped.TruncateMiddle
	c.MaxLines = 2
	c.Insets = sides.NewFloats(1, 2)
	c.Align = rich.Center
	c.Links.Types = links.TypesOf(links.URL, links.PhoneNumber)
	c.Links.Patterns = []links.CustomPattern{{Name: "ticket", Pattern: `#\d+`}}
	c.Links.ActiveBackground = colors.Hex(colors.FromStringMust("#ffff00"))
	c.Touch.LongPressDuration = Duration(time.Second)
	c.Kerning = 0.5
	c.MinimumScaleFactor = 0.75
	c.Shadow = rich.ShadowProps{OffsetX: 1, OffsetY: 2, Blur: 3, Color: colors.Hex(colors.Gray)}
	c.Links.HighlightedShadow = rich.ShadowProps{OffsetY: 1, Color: colors.Hex(colors.Black)}
	red := colors.Hex(colors.FromStringMust("red"))
	c.TruncationTokenStyle = &rich.Props{Color: &red}

	dir := t.TempDir()
	for _, name := range []string{"label.toml", "label.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, SaveConfig(c, path))
		got, err := OpenConfig(path)
		require.NoError(t, err)
		assert.Equal(t, c, got, name)
	}
}

func TestOpenConfigPartial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "label.toml")
	require.NoError(t, os.WriteFile(path, []byte("font_size = 20\n[links]\ntypes = \"url\"\n"), 0o644))
	c, err := OpenConfig(path)
	require.NoError(t, err)
	assert.Equal(t, float32(20), c.FontSize)
	assert.Equal(t, links.TypesOf(links.URL), c.Links.Types)
	assert.Equal(t, shaped.AlignCenter, c.AlignV)
	assert.Equal(t, Duration(500*time.Millisecond), c.Touch.LongPressDuration)

	c, err = OpenConfig(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)

	_, err = OpenConfig(filepath.Join(dir, "label.json"))
	assert.ErrorIs(t, err, ErrConfigFormat)
	assert.ErrorIs(t, SaveConfig(c, filepath.Join(dir, "label.ini")), ErrConfigFormat)

	require.NoError(t, os.WriteFile(path, []byte("font_size = \"big\""), 0o644))
	_, err = OpenConfig(path)
	assert.Error(t, err)
}

func TestConfigStyles(t *testing.T) {
	c := DefaultConfig()
	c.LineSpacing = 2
	s := c.BaseStyle()
	assert.Equal(t, float32(12), s.Size)
	assert.Equal(t, colors.Black, s.Color)
	assert.True(t, s.Has(rich.AttrParagraph))
	assert.Equal(t, float32(2), s.Paragraph.LineSpacing)

	n, a, i := c.LinkStyles()
	assert.True(t, n.Underline)
	assert.Equal(t, colors.Blue, n.Color)
	assert.Equal(t, colors.FromStringMust("red"), a.Color)
	assert.False(t, a.Has(rich.AttrBackground))
	assert.Equal(t, colors.Gray, i.Color)

	c.Links.InactiveColor = colors.Hex{}
	_, _, i = c.LinkStyles()
	assert.Equal(t, colors.Dim(colors.Blue), i.Color)

	opts := c.Options(math32.Vec2(10, 20))
	assert.Equal(t, math32.Vec2(10, 20), opts.Size)
	assert.Nil(t, opts.Token)
	c.TruncationToken = "..."
	assert.Equal(t, "...", c.Options(math32.Vector2{}).Token.String())
}

func TestConfigTextEffects(t *testing.T) {
	c := DefaultConfig()
	s := c.BaseStyle()
	assert.False(t, s.Has(rich.AttrKerning))
	assert.False(t, s.Has(rich.AttrShadow))

	c.Kerning = 1.5
	c.Shadow = rich.ShadowProps{OffsetX: 1, OffsetY: 2, Color: colors.Hex(colors.Gray)}
	s = c.BaseStyle()
	assert.True(t, s.Has(rich.AttrKerning))
	assert.Equal(t, float32(1.5), s.Kerning)
	require.True(t, s.Has(rich.AttrShadow))
	assert.Equal(t, math32.Vec2(1, 2), s.Shadow.Offset)
	assert.Equal(t, colors.Gray, s.Shadow.Color)

	n, a, _ := c.LinkStyles()
	assert.False(t, a.Has(rich.AttrShadow))
	c.Links.HighlightedShadow = rich.ShadowProps{OffsetY: 1, Blur: 2, Color: colors.Hex(colors.Black)}
	n, a, _ = c.LinkStyles()
	assert.False(t, n.Has(rich.AttrShadow))
	require.True(t, a.Has(rich.AttrShadow))
	assert.Equal(t, float32(2), a.Shadow.Blur)
	assert.Equal(t, colors.Black, a.Shadow.Color)
}

func TestConfigTokenStyle(t *testing.T) {
	c := DefaultConfig()
	red := colors.Hex(colors.FromStringMust("red"))
	c.TruncationTokenStyle = &rich.Props{Color: &red}
	tok := c.Options(math32.Vector2{}).Token
	require.Equal(t, shaped.DefaultToken, tok.String())
	ts, _ := tok.StyleAt(0)
	assert.Equal(t, colors.FromStringMust("red"), ts.Color)
	assert.False(t, ts.Has(rich.AttrSize))

	c.TruncationToken = " more"
	tok = c.Options(math32.Vector2{}).Token
	assert.Equal(t, " more", tok.String())
	ts, _ = tok.StyleAt(0)
	assert.True(t, ts.Has(rich.AttrColor))
}

func TestSetConfigNil(t *testing.T) {
	c := DefaultConfig()
	c.FontSize = 20
	l := New(c, shapedmono.NewAspect(1), nil)
	l.SetText("abc")
	require.NoError(t, l.SetConfig(nil))
	assert.Equal(t, DefaultConfig(), l.Config())
	st, _ := l.Source().StyleAt(0)
	assert.Equal(t, float32(12), st.Size)
}

func TestSetConfigInvalidTokenStyle(t *testing.T) {
	l := New(nil, shapedmono.NewAspect(1), nil)
	c := DefaultConfig()
	bad := "heaviest"
	c.TruncationTokenStyle = &rich.Props{Weight: &bad}
	assert.ErrorIs(t, l.SetConfig(c), rich.ErrInvalidInput)
	assert.Equal(t, DefaultConfig(), l.Config())
}

func TestSetConfigInvalidPattern(t *testing.T) {
	l := New(nil, shapedmono.NewAspect(1), nil)
	c := DefaultConfig()
	c.Links.Patterns = []links.CustomPattern{{Name: "bad", Pattern: `(`}}
	assert.ErrorIs(t, l.SetConfig(c), links.ErrPatternEngineUnavailable)
	assert.Equal(t, DefaultConfig(), l.Config())
}
