// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmltext

import (
	"image/color"
	"strings"
	"testing"
	"testing/iotest"

	"cogentcore.org/linklabel/base/errors"
	"cogentcore.org/linklabel/text/links"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTML(t *testing.T) {
	base := rich.NewStyle()
	tx, lks, err := HTMLToRich(strings.NewReader(`The <i>lazy</i>   fox <b>typed</b> some <s>text</s>`), base)
	require.NoError(t, err)
	assert.Empty(t, lks)
	assert.Equal(t, "The lazy fox typed some text", tx.String())
	require.Len(t, tx, 6)

	it := base
	it.SetSlant(rich.Italic)
	assert.Equal(t, it, tx[1].Style)
	assert.Equal(t, base, tx[2].Style)
	bold := base
	bold.SetWeight(rich.Bold)
	assert.Equal(t, bold, tx[3].Style)
	assert.True(t, tx[5].Style.Strikeout)
}

func TestLink(t *testing.T) {
	tx, lks, err := HTMLToRich(strings.NewReader(`See <a href="https://example.com">the <b>site</b></a> now.`), rich.NewStyle())
	require.NoError(t, err)
	assert.Equal(t, "See the site now.", tx.String())
	require.Len(t, lks, 1)
	assert.Equal(t, textpos.R(4, 12), lks[0].Range)
	assert.Equal(t, links.URL, lks[0].Type)
	assert.Equal(t, "https://example.com", lks[0].Payload.URL.String())
	assert.Equal(t, "the site", lks[0].Text)

	_, lks, err = HTMLToRich(strings.NewReader(`<a href="">empty</a> <a>none</a>`), rich.NewStyle())
	require.NoError(t, err)
	assert.Empty(t, lks)
}

func TestParagraphs(t *testing.T) {
	tx, _, err := HTMLToRich(strings.NewReader("<p>one</p>\n  <p>two<br>three</p>"), rich.NewStyle())
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree", tx.String())
}

func TestInlineStyle(t *testing.T) {
	tx, _, err := HTMLToRich(strings.NewReader(`a <span style="color: #ff0000; font-weight: 700; text-decoration: underline; font-family: 'Courier', monospace; bogus: 1">red</span>`), rich.Style{})
	require.NoError(t, err)
	require.Len(t, tx, 2)
	s := tx[1].Style
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, s.Color)
	assert.Equal(t, rich.Bold, s.Weight)
	assert.True(t, s.Underline)
	assert.Equal(t, rich.Monospace, s.Family)

	tx, _, err = HTMLToRich(strings.NewReader(`<span style="background-color: yellow; font-style: italic; font-size: 20px">x</span>`), rich.Style{})
	require.NoError(t, err)
	s = tx[0].Style
	assert.True(t, s.Has(rich.AttrBackground))
	assert.Equal(t, rich.Italic, s.Slant)
	assert.Equal(t, float32(20), s.Size)
}

func TestNormalize(t *testing.T) {
	tx, _, err := HTMLToRich(strings.NewReader("caf&eacute; e\u0301 &amp;"), rich.NewStyle())
	require.NoError(t, err)
	assert.Equal(t, "caf\u00e9 \u00e9 &", tx.String())
	assert.Equal(t, 8, tx.Len())
}

func TestPre(t *testing.T) {
	tx, _, err := HTMLPreToRich(strings.NewReader("a  b\n<i>c</i>"), rich.NewStyle())
	require.NoError(t, err)
	assert.Equal(t, "a  b\nc", tx.String())
}

func TestReadError(t *testing.T) {
	boom := errors.New("boom")
	_, _, err := HTMLToRich(iotest.ErrReader(boom), rich.NewStyle())
	assert.ErrorIs(t, err, boom)
}
