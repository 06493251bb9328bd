// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/paint"
	"cogentcore.org/linklabel/styles/sides"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/shaped"
)

// RenderableTextSurface is a surface that lays out and draws text.
type RenderableTextSurface interface {
	// Measure returns the size needed for the text within maxSize,
	// without changing the surface.
	Measure(maxSize math32.Vector2) math32.Vector2

	// Draw draws the text.
	Draw(p paint.Painter)

	// SetInsets sets the space between the edges and the text.
	SetInsets(in sides.Floats)

	// SetAlignV sets the vertical alignment of the text.
	SetAlignV(a shaped.AlignsV)
}

// Base is a [RenderableTextSurface] that keeps the text to draw, its
// layout options and the cached layout. Every change that can
// affect the layout invalidates the cache, and the layout is only
// recomputed when it is next needed.
type Base struct {
	// Shaper is the text shaper.
	Shaper shaped.Shaper

	text    rich.Text
	opts    shaped.Options
	targets []paint.Target
	cache   shaped.Cache
}

// NewBase returns a new Base that uses the given shaper.
func NewBase(sh shaped.Shaper) *Base {
	return &Base{Shaper: sh}
}

// Text returns the text that is drawn.
func (b *Base) Text() rich.Text {
	return b.text
}

// SetText sets the text to draw.
func (b *Base) SetText(tx rich.Text) {
	b.text = tx
	b.cache.Invalidate()
}

// Options returns the layout options.
func (b *Base) Options() shaped.Options {
	return b.opts
}

// SetOptions sets all the layout options.
func (b *Base) SetOptions(opts shaped.Options) {
	b.opts = opts
	b.cache.Invalidate()
}

// SetTargets sets the link regions used when drawing.
func (b *Base) SetTargets(ts []paint.Target) {
	b.targets = ts
}

func (b *Base) SetInsets(in sides.Floats) {
	b.opts.Insets = in
	b.cache.Invalidate()
}

func (b *Base) SetAlignV(a shaped.AlignsV) {
	b.opts.AlignV = a
	b.cache.Invalidate()
}

// Resize sets the size of the surface.
func (b *Base) Resize(size math32.Vector2) {
	if b.opts.Size == size {
		return
	}
	b.opts.Size = size
	b.cache.Invalidate()
}

// Size returns the size of the surface.
func (b *Base) Size() math32.Vector2 {
	return b.opts.Size
}

// Layout returns the layout of the text, from the cache if it is valid.
func (b *Base) Layout() *shaped.Lines {
	return b.cache.Layout(b.Shaper, b.text, b.opts)
}

// LayoutValid returns true if the cached layout can be reused.
func (b *Base) LayoutValid() bool {
	return b.cache.Valid()
}

func (b *Base) Measure(maxSize math32.Vector2) math32.Vector2 {
	return shaped.Measure(b.Shaper, b.text, maxSize, b.opts.MaxLines, b.opts)
}

func (b *Base) Draw(p paint.Painter) {
	p.Paint(paint.TextRender(b.Layout(), math32.Vector2{}, b.targets))
}
