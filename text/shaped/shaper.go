// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/text/rich"
)

// NewShaper returns the default type of shaper, if one has been
// registered by importing a shaper package.
var NewShaper func() Shaper

// Shaper is a text shaping backend: it measures runs of runes
// in a single style. Line breaking, truncation and positioning
// are done by [Layout] on top of the measured advances, so any
// backend gets the same layout semantics.
type Shaper interface {

	// Advances returns the horizontal advance of each rune of r,
	// shaped in the given style. The result has the same length as r;
	// runes that are part of a multi-rune cluster after the first one
	// have a zero advance.
	Advances(r []rune, sty *rich.Style) []float32

	// Metrics returns the vertical font metrics for the given style.
	Metrics(sty *rich.Style) Metrics
}

// WrapSizeEstimate returns a size for laying out nChars runes of
// text with the given style when no width is known: a box with the
// given ratio of width to height whose area holds the text, counting
// each rune as one advance of '0' by one line height.
func WrapSizeEstimate(nChars int, ratio float32, sh Shaper, sty *rich.Style) math32.Vector2 {
	cell := math32.Vec2(sh.Advances([]rune{'0'}, sty)[0], sh.Metrics(sty).Height())
	if cell.X <= 0 || cell.Y <= 0 {
		cell = math32.Vector2Scalar(FontSize(sty))
	}
	if ratio <= 0 {
		ratio = 1
	}
	area := float32(nChars) * cell.X * cell.Y
	h := math32.Sqrt(area / ratio)
	return math32.Vec2(ratio*h, h)
}
