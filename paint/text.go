// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"
	"sort"

	"cogentcore.org/linklabel/colors"
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/shaped"
	"cogentcore.org/linklabel/text/textpos"
)

// Target is a link region of the source text for [TextRender].
type Target struct {
	Range textpos.Range
	URL   string
}

// TextRender returns the render items for the given lines, placed at pos.
// Glyph runs are split at target boundaries, and the glyphs of each
// target are bracketed by [LinkPush] and [LinkPop]. Where targets
// overlap, the last one wins.
func TextRender(ls *shaped.Lines, pos math32.Vector2, targets []Target) Render {
	var r Render
	if ls == nil {
		return r
	}
	for li := range ls.Lines {
		ln := &ls.Lines[li]
		org := pos.Add(ln.Origin)
		base := org.Y + ln.Baseline
		for ri := range ln.Runs {
			run := &ln.Runs[ri]
			if !run.Style.Background.IsNil() && run.Style.Has(rich.AttrBackground) {
				bg := run.Style.Background
				r.Add(&Box{Bounds: bg.Padding.Outset(run.Bounds(org, ln.Size.Y)), Background: bg})
			}
			for _, seg := range segments(run, targets) {
				r.Add(glyphItems(run, seg, org.X, base, targets)...)
			}
		}
	}
	return r
}

// segment is a part of a run in which the link target does not change.
type segment struct {
	start, end int // indexes into the run runes
	link       int
}

func segments(run *shaped.Run, targets []Target) []segment {
	n := len(run.Runes)
	if run.Token || len(targets) == 0 {
		return []segment{{0, n, -1}}
	}
	src := run.SourceRange
	cuts := []int{0, n}
	for _, t := range targets {
		for _, b := range []int{t.Range.Start, t.Range.End} {
			if b > src.Start && b < src.End {
				cuts = append(cuts, b-src.Start)
			}
		}
	}
	sort.Ints(cuts)
	var segs []segment
	for i := 1; i < len(cuts); i++ {
		if cuts[i] == cuts[i-1] {
			continue
		}
		lk := targetAt(targets, src.Start+cuts[i-1])
		if ns := len(segs); ns > 0 && segs[ns-1].link == lk {
			segs[ns-1].end = cuts[i]
			continue
		}
		segs = append(segs, segment{cuts[i-1], cuts[i], lk})
	}
	return segs
}

// targetAt returns the last target containing source index i, or -1.
func targetAt(targets []Target, i int) int {
	for ti := len(targets) - 1; ti >= 0; ti-- {
		if targets[ti].Range.Contains(i) {
			return ti
		}
	}
	return -1
}

func glyphItems(run *shaped.Run, seg segment, x0, base float32, targets []Target) []Item {
	var items []Item
	x := x0 + run.X
	for _, a := range run.Advances[:seg.start] {
		x += a
	}
	g := &Glyphs{Runes: run.Runes[seg.start:seg.end], Advances: run.Advances[seg.start:seg.end], Pos: math32.Vec2(x, base), Style: run.Style, Token: run.Token}
	if seg.link >= 0 {
		items = append(items, &LinkPush{Index: seg.link, URL: targets[seg.link].URL})
	}
	if sh := run.Style.Shadow; run.Style.Has(rich.AttrShadow) && !sh.IsNil() {
		sg := *g
		sg.Pos = g.Pos.Add(sh.Offset)
		sg.Style.Color = sh.Color
		sg.Shadow = true
		items = append(items, &sg)
	}
	items = append(items, g)
	col := textColor(&run.Style)
	w := g.Width()
	lw := max(1, shaped.FontSize(&run.Style)/16)
	if run.Style.Underline {
		y := base + run.Metrics.Descent*0.5
		items = append(items, &Line{Kind: Underline, From: math32.Vec2(x, y), To: math32.Vec2(x+w, y), Color: col, Width: lw})
	}
	if run.Style.Strikeout {
		y := base - run.Metrics.Ascent*0.3
		items = append(items, &Line{Kind: Strikeout, From: math32.Vec2(x, y), To: math32.Vec2(x+w, y), Color: col, Width: lw})
	}
	if seg.link >= 0 {
		items = append(items, &LinkPop{})
	}
	return items
}

func textColor(sty *rich.Style) color.RGBA {
	if sty.Has(rich.AttrColor) {
		return sty.Color
	}
	return colors.Black
}
