// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/text/textpos"
)

// RangeRects returns one rectangle for each line that renders part
// of the given range of source runes, spanning the extent of those
// runes on the line and the full height of the line. Runes that were
// replaced by a truncation token have no geometry.
func (ls *Lines) RangeRects(r textpos.Range) []math32.Box2 {
	if ls.IsEmpty() || r.IsEmpty() {
		return nil
	}
	var rects []math32.Box2
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		if !ln.SourceRange.Overlaps(r) {
			continue
		}
		x0, x1 := math32.Infinity, -math32.Infinity
		for ri := range ln.Runs {
			rx0, rx1, ok := ln.Runs[ri].RangeX(r)
			if !ok {
				continue
			}
			x0 = min(x0, rx0)
			x1 = max(x1, rx1)
		}
		if x0 > x1 {
			continue
		}
		rects = append(rects, math32.B2(ln.Origin.X+x0, ln.Origin.Y, ln.Origin.X+x1, ln.Origin.Y+ln.Size.Y))
	}
	return rects
}

// LinkAt returns the index of the link range that is at the given point,
// or -1 if none. Links that are not within the source text are skipped.
// Links that contain the point win, later links first. Otherwise, if
// tolerance is > 0, the last link with a rectangle that contains the
// point when expanded by tolerance wins.
// Points outside of the Bounds never hit a link.
func (ls *Lines) LinkAt(pt math32.Vector2, ranges []textpos.Range, tolerance float32) int {
	if ls.IsEmpty() || !ls.Bounds.ContainsPoint(pt) {
		return -1
	}
	n := ls.Source.Len()
	rects := make([][]math32.Box2, len(ranges))
	for i := len(ranges) - 1; i >= 0; i-- {
		r := ranges[i]
		if r.IsEmpty() || !r.InBounds(n) {
			continue
		}
		rects[i] = ls.RangeRects(r)
		for _, rb := range rects[i] {
			if rb.ContainsPoint(pt) {
				return i
			}
		}
	}
	if tolerance <= 0 {
		return -1
	}
	for i := len(rects) - 1; i >= 0; i-- {
		for _, rb := range rects[i] {
			if rb.Expand(tolerance).ContainsPoint(pt) {
				return i
			}
		}
	}
	return -1
}

// RuneAt returns the source rune index at the given point, or -1
// if the point is not over a source rune.
func (ls *Lines) RuneAt(pt math32.Vector2) int {
	if ls.IsEmpty() {
		return -1
	}
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		if pt.Y < ln.Origin.Y || pt.Y >= ln.Origin.Y+ln.Size.Y {
			continue
		}
		x := pt.X - ln.Origin.X
		for ri := range ln.Runs {
			if i := ln.Runs[ri].RuneAtX(x); i >= 0 {
				return i
			}
		}
		return -1
	}
	return -1
}

// LineAt returns the index of the line that contains the given
// source rune index, or -1 if it is not rendered.
func (ls *Lines) LineAt(i int) int {
	if ls.IsEmpty() {
		return -1
	}
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		for ri := range ln.Runs {
			rn := &ln.Runs[ri]
			if !rn.Token && rn.SourceRange.Contains(i) {
				return li
			}
		}
	}
	return -1
}
