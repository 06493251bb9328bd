// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"fmt"
	"hash/fnv"

	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/styles/sides"
	"cogentcore.org/linklabel/text/rich"
)

// Cache holds the result of the last [Layout], and returns it again
// as long as the text and options are the same and it has not been
// invalidated. The cached Lines must not be modified.
type Cache struct {
	key   cacheKey
	lines *Lines
}

type cacheKey struct {
	text      string
	textHash  uint64
	token     string
	tokenHash uint64
	size      math32.Vector2
	maxLines  int
	lineBreak LineBreaks
	insets    sides.Floats
	alignV    AlignsV
	align     rich.Aligns
}

func newCacheKey(tx rich.Text, opts *Options) cacheKey {
	return cacheKey{
		text:      tx.String(),
		textHash:  HashText(tx),
		token:     opts.Token.String(),
		tokenHash: HashText(opts.Token),
		size:      opts.Size,
		maxLines:  opts.MaxLines,
		lineBreak: opts.LineBreak,
		insets:    opts.Insets,
		alignV:    opts.AlignV,
		align:     opts.Align,
	}
}

// Layout returns the cached Lines if the text and options match
// the last call, and otherwise calls [Layout] and caches the result.
func (c *Cache) Layout(sh Shaper, tx rich.Text, opts Options) *Lines {
	key := newCacheKey(tx, &opts)
	if c.lines != nil && c.key == key {
		return c.lines
	}
	c.lines = Layout(sh, tx, opts)
	c.key = key
	return c.lines
}

// Lines returns the cached Lines, which is nil if there are none.
func (c *Cache) Lines() *Lines {
	return c.lines
}

// Valid returns true if there is a cached result.
func (c *Cache) Valid() bool {
	return c.lines != nil
}

// Invalidate drops the cached result, so that the next
// call to [Cache.Layout] lays out the text again.
func (c *Cache) Invalidate() {
	c.lines = nil
}

// HashText returns a hash of the runes and the styles of the text.
func HashText(tx rich.Text) uint64 {
	h := fnv.New64a()
	for si := range tx {
		sp := &tx[si]
		fmt.Fprintf(h, "%#v", sp.Style)
		h.Write([]byte(string(sp.Runes)))
	}
	return h.Sum64()
}
