// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos provides text position and range types
// shared by the rich text, link and layout packages.
package textpos

import "fmt"

// Range defines a half-open range of rune indexes [Start, End)
// within a source text.
type Range struct {
	// Start is the starting index of the range, inclusive.
	Start int

	// End is the ending index of the range, exclusive.
	End int
}

// R returns a new [Range] from the given start and end.
func R(start, end int) Range {
	return Range{start, end}
}

// Len returns the length of the range: End - Start.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has no length.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// Contains returns true if range contains given index.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// ContainsRange returns true if o lies entirely within r.
func (r Range) ContainsRange(o Range) bool {
	return o.Start >= r.Start && o.End <= r.End
}

// Intersect returns the intersection of two ranges.
// If they do not overlap, then the Start is >= End.
func (r Range) Intersect(o Range) Range {
	o.Start = max(o.Start, r.Start)
	o.End = min(o.End, r.End)
	return o
}

// Overlaps returns true if the two ranges share at least one index.
func (r Range) Overlaps(o Range) bool {
	return !r.Intersect(o).IsEmpty()
}

// InBounds returns true if the range is well formed (0 <= Start <= End)
// and lies within a text of length n.
func (r Range) InBounds(n int) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= n
}

// Shift returns the range moved by the given offset.
func (r Range) Shift(off int) Range {
	return Range{r.Start + off, r.End + off}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
