// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtext

import (
	"strings"
	"testing"

	"cogentcore.org/linklabel/text/links"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	base := rich.NewStyle()
	tx, lks, err := MarkdownToRich([]byte("Some **bold** and *it* text, see [the docs](https://example.com/docs).\n\nSecond ~~old~~ paragraph."), base)
	require.NoError(t, err)
	assert.Equal(t, "Some bold and it text, see the docs.\nSecond old paragraph.", tx.String())

	require.Len(t, lks, 1)
	assert.Equal(t, links.URL, lks[0].Type)
	assert.Equal(t, "https://example.com/docs", lks[0].Payload.URL.String())
	assert.Equal(t, "the docs", lks[0].Text)
	assert.Equal(t, textpos.R(27, 35), lks[0].Range)

	bold := base
	bold.SetWeight(rich.Bold)
	assert.Equal(t, bold, tx[1].Style)
	assert.Equal(t, "bold", string(tx[1].Runes))
	it := base
	it.SetSlant(rich.Italic)
	assert.Equal(t, it, tx[3].Style)
}

func TestHeadingAndList(t *testing.T) {
	tx, _, err := MarkdownToRich([]byte("# Title\n\n- one\n- two\n"), rich.NewStyle())
	require.NoError(t, err)
	assert.Equal(t, "Title\none\ntwo", tx.String())
	assert.Equal(t, rich.Bold, tx[0].Style.Weight)
}

func TestAutolink(t *testing.T) {
	tx, lks, err := MarkdownToRich([]byte("Go to https://example.org now"), rich.NewStyle())
	require.NoError(t, err)
	require.Len(t, lks, 1)
	assert.Equal(t, "https://example.org", lks[0].Text)
	assert.Equal(t, "https://example.org", string(tx.Join()[lks[0].Range.Start:lks[0].Range.End]))
}

func TestWikilink(t *testing.T) {
	issues := func(text string) (string, string) {
		if !strings.HasPrefix(text, "issue:") {
			return "", ""
		}
		n := strings.TrimPrefix(text, "issue:")
		return "https://example.com/issues/" + n, "#" + n
	}
	tx, lks, err := MarkdownToRich([]byte("Fixed in [[issue:42]], not [[other]]."), rich.NewStyle(), issues)
	require.NoError(t, err)
	assert.Equal(t, "Fixed in #42, not [[other]].", tx.String())
	require.Len(t, lks, 1)
	assert.Equal(t, "https://example.com/issues/42", lks[0].Payload.URL.String())
	assert.Equal(t, textpos.R(9, 12), lks[0].Range)
}
