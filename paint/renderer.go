// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint turns laid out text into a list of render items,
// and defines the Painter interface that backends implement to draw them.
package paint

import (
	"image/color"

	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/text/rich"
)

// Painter is the interface for all backend rendering outputs.
type Painter interface {
	// Paint renders the list of render items, in order.
	Paint(r Render)
}

// Render represents a collection of render [Item]s to be rendered.
type Render []Item

// Item is a union interface for render items:
// [Box], [Glyphs], [Line], [LinkPush] and [LinkPop].
type Item interface {
	isRenderItem()
}

// Add adds item(s) to render.
func (r *Render) Add(item ...Item) Render {
	*r = append(*r, item...)
	return *r
}

// Reset resets back to an empty Render state.
// It preserves the existing slice memory for re-use.
func (r *Render) Reset() Render {
	*r = (*r)[:0]
	return *r
}

// Box is a background decoration box drawn behind text.
type Box struct {
	// Bounds is the box, including any padding.
	Bounds math32.Box2

	// Background has the fill, stroke and corner radius.
	Background rich.Background
}

// Glyphs is a run of glyphs in one style.
type Glyphs struct {
	// Runes are the runes to draw.
	Runes []rune

	// Advances is the horizontal advance of each rune.
	Advances []float32

	// Pos is the left edge of the first glyph, on the baseline.
	Pos math32.Vector2

	// Style is the style of the glyphs. For a shadow this is the
	// style of the text, with the Color set to the shadow color.
	Style rich.Style

	// Token is true for the truncation token.
	Token bool

	// Shadow is true if this is the shadow of the text that follows it.
	Shadow bool
}

// Width returns the total advance of the glyphs.
func (g *Glyphs) Width() float32 {
	var w float32
	for _, a := range g.Advances {
		w += a
	}
	return w
}

// Decorations are the kinds of line decoration.
type Decorations int32

const (
	Underline Decorations = iota
	Strikeout
)

// Line is a straight line decoration, for underline and strikeout.
type Line struct {
	Kind     Decorations
	From, To math32.Vector2
	Color    color.RGBA
	Width    float32
}

// LinkPush starts the items that belong to a link.
// Backends that support hyperlinks can group the items up to
// the matching [LinkPop].
type LinkPush struct {
	// Index is the index of the link in the label.
	Index int

	// URL is the link destination, if it has one.
	URL string
}

// LinkPop ends the items of the current link.
type LinkPop struct{}

func (*Box) isRenderItem()      {}
func (*Glyphs) isRenderItem()   {}
func (*Line) isRenderItem()     {}
func (*LinkPush) isRenderItem() {}
func (*LinkPop) isRenderItem()  {}

// Recorder is a [Painter] that records everything painted to it.
type Recorder struct {
	Render Render
}

func (rc *Recorder) Paint(r Render) {
	rc.Render.Add(r...)
}

// Glyphs returns all the glyph items that are not shadows.
func (rc *Recorder) Glyphs() []*Glyphs {
	var gs []*Glyphs
	for _, it := range rc.Render {
		if g, ok := it.(*Glyphs); ok && !g.Shadow {
			gs = append(gs, g)
		}
	}
	return gs
}
