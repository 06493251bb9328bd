// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package links

import (
	"errors"
	"net/url"
	"testing"

	"cogentcore.org/linklabel/colors"
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionBounds(t *testing.T) {
	c := &Collection{}
	_, err := c.Add(New(textpos.R(0, 5), URL, Payload{}), 5)
	require.NoError(t, err)
	for _, r := range []textpos.Range{{Start: 3, End: 6}, {Start: -1, End: 2}, {Start: 6, End: 8}, {Start: 2, End: 2}, {Start: 4, End: 3}} {
		_, err = c.Add(New(r, URL, Payload{}), 5)
		assert.True(t, errors.Is(err, ErrRangeOutOfBounds), r.String())
	}
	assert.Equal(t, 1, c.Len())
}

func TestCollectionReplace(t *testing.T) {
	c := &Collection{}
	_, err := c.Add(New(textpos.R(0, 3), URL, Payload{Phone: "first"}), 10)
	require.NoError(t, err)
	_, err = c.Add(New(textpos.R(4, 6), PhoneNumber, Payload{}), 10)
	require.NoError(t, err)
	l, err := c.Add(New(textpos.R(0, 3), URL, Payload{Phone: "second"}), 10)
	require.NoError(t, err)
	assert.Equal(t, "second", l.Payload.Phone)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "second", c.At(1).Payload.Phone)
	assert.Equal(t, 1, c.Index(textpos.R(0, 3), URL))
	assert.Equal(t, -1, c.Index(textpos.R(0, 3), PhoneNumber))

	// same range, different type is kept
	_, err = c.Add(New(textpos.R(0, 3), Custom, Payload{}), 10)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	c.RemoveAll()
	assert.Zero(t, c.Len())
}

func TestLinksAreCopies(t *testing.T) {
	c := &Collection{}
	u, _ := url.Parse("https://example.com")
	_, err := c.Add(New(textpos.R(0, 3), Address, Payload{URL: u, Components: map[string]string{KeyCity: "Paris"}}), 3)
	require.NoError(t, err)
	ls := c.Links()
	assert.Equal(t, "Paris", ls[0].Payload.Components[KeyCity])
	ls[0].Payload.Components[KeyCity] = "Rome"
	ls[0].Payload.URL.Host = "changed"
	assert.Equal(t, "Paris", c.At(0).Payload.Components[KeyCity])
	assert.Equal(t, "example.com", c.At(0).Payload.URL.Host)
}

func TestApply(t *testing.T) {
	tx := rich.NewPlain(rich.NewStyle(), "one two three")
	c := &Collection{}
	l := New(textpos.R(0, 7), URL, Payload{})
	l.Attributes.SetColor(colors.Blue).SetUnderline(true)
	l.ActiveAttributes.SetColor(colors.FromStringMust("red"))
	l.InactiveAttributes.SetColor(colors.Gray)
	_, err := c.Add(l, tx.Len())
	require.NoError(t, err)
	l2 := New(textpos.R(4, 13), PhoneNumber, Payload{})
	l2.Attributes.SetColor(colors.FromStringMust("green"))
	_, err = c.Add(l2, tx.Len())
	require.NoError(t, err)

	nt := c.Apply(tx, -1, false)
	s, _ := nt.StyleAt(1)
	assert.Equal(t, colors.Blue, s.Color)
	assert.True(t, s.Underline)
	s, _ = nt.StyleAt(5) // overlap: later link wins
	assert.Equal(t, colors.FromStringMust("green"), s.Color)
	assert.True(t, s.Underline)

	nt = c.Apply(tx, 0, false)
	s, _ = nt.StyleAt(1)
	assert.Equal(t, colors.FromStringMust("red"), s.Color)

	nt = c.Apply(tx, -1, true)
	s, _ = nt.StyleAt(1)
	assert.Equal(t, colors.Gray, s.Color)

	// source text is not changed
	s, _ = tx.StyleAt(1)
	assert.Equal(t, colors.Black, s.Color)
}

func TestLinkEvent(t *testing.T) {
	l := New(textpos.R(0, 3), PhoneNumber, Payload{Phone: "555"})
	l.Text = "555"
	assert.Equal(t, "555", l.AccessibilityLabel())
	l.AccessibilityValue = "call"
	assert.Equal(t, "call", l.AccessibilityLabel())

	ev := l.Event(LongPress, math32.Vec2(3, 4))
	assert.Equal(t, LongPress, ev.Kind)
	assert.Equal(t, PhoneNumber, ev.Type)
	assert.Equal(t, "555", ev.Payload.Phone)
	assert.Equal(t, math32.Vec2(3, 4), ev.Point)
	assert.Equal(t, l.Range, ev.Link.Range)
	assert.Equal(t, "long-press", ev.Kind.String())
}
