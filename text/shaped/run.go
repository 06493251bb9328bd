// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/textpos"
)

// Run is a span of shaped text with the same style,
// with layout information to enable interaction with shaped text.
type Run struct {

	// Style is the full style of the run.
	Style rich.Style

	// SourceRange is the range of runes in the original source that
	// the run renders. It is empty for a truncation token.
	SourceRange textpos.Range

	// Runes are the runes that are rendered. For a source run these
	// are the source runes, for a token run the token runes.
	Runes []rune

	// Advances is the horizontal advance of each rune.
	Advances []float32

	// X is the offset of the start of the run from the line origin.
	X float32

	// Width is the total advance of the run.
	Width float32

	// Metrics are the vertical font metrics of the run style.
	Metrics Metrics

	// Token is true if this run renders the truncation token.
	Token bool
}

// RuneX returns the offset from the line origin of the leading edge
// of the given source rune index, clamped to the run.
func (rn *Run) RuneX(i int) float32 {
	x := rn.X
	if rn.Token {
		return x
	}
	n := min(i-rn.SourceRange.Start, len(rn.Advances))
	for ri := 0; ri < n; ri++ {
		x += rn.Advances[ri]
	}
	return x
}

// RangeX returns the extent of the given source range within the run,
// relative to the line origin, and false if they do not intersect.
func (rn *Run) RangeX(r textpos.Range) (x0, x1 float32, ok bool) {
	if rn.Token {
		return 0, 0, false
	}
	ir := rn.SourceRange.Intersect(r)
	if ir.IsEmpty() {
		return 0, 0, false
	}
	return rn.RuneX(ir.Start), rn.RuneX(ir.End), true
}

// RuneAtX returns the source rune index at the given offset from the
// line origin, or -1 if the offset is outside the run or the run is a token.
func (rn *Run) RuneAtX(x float32) int {
	if rn.Token || x < rn.X || x >= rn.X+rn.Width {
		return -1
	}
	cx := rn.X
	for ri, adv := range rn.Advances {
		if x < cx+adv {
			return rn.SourceRange.Start + ri
		}
		cx += adv
	}
	return rn.SourceRange.End - 1
}

// Bounds returns the bounding box of the run for a line at the
// given origin, with the given line height.
func (rn *Run) Bounds(origin math32.Vector2, height float32) math32.Box2 {
	return math32.B2(origin.X+rn.X, origin.Y, origin.X+rn.X+rn.Width, origin.Y+height)
}
