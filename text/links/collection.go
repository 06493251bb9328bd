// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package links

import (
	"fmt"

	"cogentcore.org/linklabel/base/errors"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/textpos"
)

// ErrRangeOutOfBounds is returned when a link range does not lie
// within the current text.
var ErrRangeOutOfBounds = errors.New("links: range out of bounds")

// Collection is the ordered set of links of a label, in the order
// they were added. Later links take precedence over earlier ones
// where they overlap.
type Collection struct {
	links []Link
}

// Len returns the number of links.
func (c *Collection) Len() int {
	return len(c.links)
}

// At returns the link at the given index.
func (c *Collection) At(i int) *Link {
	return &c.links[i]
}

// Links returns a copy of the links, in order.
func (c *Collection) Links() []Link {
	ls := make([]Link, len(c.links))
	for i, l := range c.links {
		ls[i] = l.Clone()
	}
	return ls
}

// Add adds a link for a text with the given number of runes.
// The range must be non-empty and lie within [0, textLen), otherwise
// [ErrRangeOutOfBounds] is returned and the collection is unchanged.
// A link with the same range and type as an existing link replaces it,
// becoming the most recently added link.
func (c *Collection) Add(l Link, textLen int) (*Link, error) {
	if l.Range.IsEmpty() || !l.Range.InBounds(textLen) {
		return nil, fmt.Errorf("%w: %v %v in text of length %d", ErrRangeOutOfBounds, l.Type, l.Range, textLen)
	}
	if i := c.Index(l.Range, l.Type); i >= 0 {
		c.links = append(c.links[:i], c.links[i+1:]...)
	}
	c.links = append(c.links, l)
	return &c.links[len(c.links)-1], nil
}

// Index returns the index of the link with the given range and type,
// which [Collection.Add] would replace, or -1.
func (c *Collection) Index(r textpos.Range, mt MatchType) int {
	for i := range c.links {
		if c.links[i].Range == r && c.links[i].Type == mt {
			return i
		}
	}
	return -1
}

// RemoveAll removes all links.
func (c *Collection) RemoveAll() {
	c.links = nil
}

// Apply returns the text with the style overlays of the links applied,
// in order, so later links win where they overlap. The link at index
// active (if >= 0) gets its active overlay, and all links get their
// inactive overlay if dimmed. Links that do not fit the text are skipped.
func (c *Collection) Apply(tx rich.Text, active int, dimmed bool) rich.Text {
	n := tx.Len()
	for i := range c.links {
		l := &c.links[i]
		if !l.Range.InBounds(n) {
			continue
		}
		s := l.StyleFor(i == active, dimmed)
		if s.IsZero() {
			continue
		}
		tx = tx.OverlayRange(l.Range, s)
	}
	return tx
}
