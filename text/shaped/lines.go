// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"fmt"
	"strings"

	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/styles/sides"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/textpos"
)

// Lines is a list of Lines of shaped text, with an overall bounding
// box for the entire collection. This is the result of a [Layout],
// and the geometry used for hit testing.
type Lines struct {

	// Source is the original input source that generated this set of lines.
	Source rich.Text

	// Lines are the shaped lines, in order.
	Lines []Line

	// Bounds is the box that the text was laid out into,
	// including insets, starting at the origin. Points outside
	// of it never hit anything.
	Bounds math32.Box2

	// TextBounds is the union of the bounds of all lines.
	TextBounds math32.Box2

	// Insets are the insets that were applied.
	Insets sides.Floats

	// Truncated indicates whether any text was truncated
	// or dropped because of line limits.
	Truncated bool
}

// Line is one line of shaped text, containing multiple Runs.
type Line struct {

	// Origin is the upper left corner of the line box, in the
	// coordinates of the [Lines.Bounds].
	Origin math32.Vector2

	// Size is the width of the visible content (excluding trailing
	// white space) and the height of the line box.
	Size math32.Vector2

	// Baseline is the distance from the top of the line box
	// to the baseline.
	Baseline float32

	// SourceRange is the range of runes in the original source from
	// the first to the last rune rendered in this line, including
	// trailing white space. For middle truncation it includes the
	// runes that were replaced by the token.
	SourceRange textpos.Range

	// Truncated is true if part of the line content was
	// replaced by the truncation token.
	Truncated bool

	// Runs are the shaped runs of the line, in visual order.
	Runs []Run
}

// Bounds returns the bounding box of the line.
func (ln *Line) Bounds() math32.Box2 {
	return math32.Box2{Min: ln.Origin, Max: ln.Origin.Add(ln.Size)}
}

// Text returns the rendered text of the line, including any token.
func (ln *Line) Text() string {
	var b strings.Builder
	for ri := range ln.Runs {
		b.WriteString(string(ln.Runs[ri].Runes))
	}
	return b.String()
}

func (ln *Line) String() string {
	return fmt.Sprintf("%q %v origin: %v size: %v runs: %d", ln.Text(), ln.SourceRange, ln.Origin, ln.Size, len(ln.Runs))
}

func (ls *Lines) String() string {
	str := ""
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		str += fmt.Sprintf("#### Line: %d\n", li)
		str += ln.String() + "\n"
	}
	return str
}

// IsEmpty returns true if there are no lines.
func (ls *Lines) IsEmpty() bool {
	return ls == nil || len(ls.Lines) == 0
}

// Size returns the size of the text including insets, which is the
// size that fits the text exactly.
func (ls *Lines) Size() math32.Vector2 {
	if ls.IsEmpty() {
		return math32.Vector2{}
	}
	return ls.TextBounds.Max.Add(math32.Vec2(ls.Insets.Right, ls.Insets.Bottom))
}

// VisibleRange returns the range of source runes that is rendered,
// from the start of the first line to the end of the last.
func (ls *Lines) VisibleRange() textpos.Range {
	if ls.IsEmpty() {
		return textpos.Range{}
	}
	return textpos.R(ls.Lines[0].SourceRange.Start, ls.Lines[len(ls.Lines)-1].SourceRange.End)
}
