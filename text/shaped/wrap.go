// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"fmt"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"cogentcore.org/linklabel/base/errors"
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/textpos"
	"github.com/rivo/uniseg"
)

// ErrLayoutUnavailable is returned by [LayoutChecked] when the text
// cannot be laid out, for example because the box has no room for it.
var ErrLayoutUnavailable = errors.New("shaped: layout unavailable")

// Layout performs line wrapping, truncation and positioning of the given
// rich text source, in the box given by the options. Paragraphs are
// separated by newline runes and wrapped separately. A degenerate box
// results in empty Lines.
func Layout(sh Shaper, tx rich.Text, opts Options) *Lines {
	lns, err := LayoutChecked(sh, tx, opts)
	if err != nil {
		slog.Debug("shaped.Layout", "err", err)
	}
	return lns
}

// LayoutChecked is [Layout], also returning an error wrapping
// [ErrLayoutUnavailable] when the result is empty because the
// layout is not possible.
func LayoutChecked(sh Shaper, tx rich.Text, opts Options) (*Lines, error) {
	lns := &Lines{Source: tx, Insets: opts.Insets}
	avail := opts.Size.Sub(opts.Insets.Size())
	if sh == nil {
		return lns, fmt.Errorf("no shaper: %w", ErrLayoutUnavailable)
	}
	if avail.X <= 0 || (opts.Size.Y != 0 && avail.Y < 0) {
		return lns, fmt.Errorf("size %v with insets %v: %w", opts.Size, opts.Insets, ErrLayoutUnavailable)
	}
	height := float32(0)
	if opts.Size.Y != 0 {
		height = avail.Y
	}
	wr := newWrapper(sh, tx, &opts)
	lns.Lines, lns.Truncated = wr.lines(avail.X, opts.MaxLines, height, true)

	bh := wr.blockHeight(lns.Lines)
	off := opts.Insets.Pos()
	if height > 0 {
		off.Y += max(0, opts.AlignV.Factor()*(height-bh))
		lns.Bounds = math32.B2(0, 0, opts.Size.X, opts.Size.Y)
	} else {
		lns.Bounds = math32.B2(0, 0, opts.Size.X, bh+opts.Insets.Top+opts.Insets.Bottom)
	}
	lns.TextBounds = math32.B2Empty()
	for li := range lns.Lines {
		ln := &lns.Lines[li]
		ln.Origin = ln.Origin.Add(off)
		lns.TextBounds.ExpandByBox(ln.Bounds())
	}
	if len(lns.Lines) == 0 {
		lns.TextBounds = math32.Box2{}
	}
	return lns, nil
}

// Measure returns the size needed to lay out the given text within
// maxSize, with at most maxLines lines if > 0, using the other options
// (LineBreak, Token, Insets) from opts. A zero maxSize width means
// that the width is not constrained. The result includes the insets,
// is rounded up to whole units, and is clamped to each positive
// dimension of maxSize. Measure has no side effects.
func Measure(sh Shaper, tx rich.Text, maxSize math32.Vector2, maxLines int, opts Options) math32.Vector2 {
	if sh == nil || tx.Len() == 0 {
		return math32.Vector2{}
	}
	opts.Size = maxSize
	opts.MaxLines = maxLines
	width := math32.Infinity
	if maxSize.X > 0 {
		width = maxSize.X - opts.Insets.Left - opts.Insets.Right
		if width <= 0 {
			return math32.Vector2{}
		}
	}
	wr := newWrapper(sh, tx, &opts)
	lines, _ := wr.lines(width, maxLines, 0, false)
	var sz math32.Vector2
	for li := range lines {
		ln := &lines[li]
		sz.X = max(sz.X, ln.Origin.X+ln.Size.X)
	}
	sz.Y = wr.blockHeight(lines)
	sz = sz.Add(opts.Insets.Size()).Ceil()
	if maxSize.X > 0 {
		sz.X = min(sz.X, maxSize.X)
	}
	if maxSize.Y > 0 {
		sz.Y = min(sz.Y, maxSize.Y)
	}
	return sz
}

// cluster is a grapheme cluster of a paragraph, which is the
// smallest unit that is never split across lines.
type cluster struct {
	start, end int
	width      float32
	space      bool
	canBreak   bool
	mustBreak  bool
}

// paragraph is a range of runes between hard line breaks.
type paragraph struct {
	rng      textpos.Range
	style    rich.Style
	clusters []cluster
}

// para returns the paragraph metrics of the style.
func (p *paragraph) para() rich.Paragraph {
	if p.style.Has(rich.AttrParagraph) {
		return p.style.Paragraph
	}
	return rich.Paragraph{}
}

// edges returns the leading indent and the available width
// for a line of the paragraph.
func (p *paragraph) edges(width float32, first bool) (indent, avail float32) {
	pp := p.para()
	indent = pp.HeadIndent
	if first {
		indent = pp.FirstLineIndent
	}
	right := width + pp.TailIndent
	if pp.TailIndent > 0 {
		right = pp.TailIndent
	}
	return indent, max(right-indent, 0)
}

// span is a line break result: a range of source runes for one line.
type span struct {
	para       int
	start, end int
	first      bool
}

// piece is a part of the content of a line: either
// a source range or the truncation token.
type piece struct {
	rng   textpos.Range
	token bool
	style rich.Style
}

// wrapper holds the shaped source text for one layout.
type wrapper struct {
	sh    Shaper
	tx    rich.Text
	opts  *Options
	runes []rune
	spans []textpos.Range

	// cum is the cumulative advance: cum[i] is the advance of runes [0, i).
	cum   []float32
	paras []paragraph
}

func newWrapper(sh Shaper, tx rich.Text, opts *Options) *wrapper {
	wr := &wrapper{sh: sh, tx: tx, opts: opts, runes: tx.Join(), spans: tx.Ranges()}
	wr.cum = make([]float32, len(wr.runes)+1)
	for si := range tx {
		sp := &tx[si]
		sr := wr.spans[si]
		adv := sh.Advances(sp.Runes, &sp.Style)
		for i, r := range sp.Runes {
			a := float32(0)
			if i < len(adv) && !isHardBreak(r) {
				a = adv[i]
				if sp.Style.Has(rich.AttrKerning) && a > 0 {
					a += sp.Style.Kerning
				}
			}
			wr.cum[sr.Start+i+1] = wr.cum[sr.Start+i] + a
		}
	}
	wr.splitParagraphs()
	return wr
}

func isHardBreak(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2029'
}

// width returns the advance of the given source range.
func (wr *wrapper) width(start, end int) float32 {
	if end <= start {
		return 0
	}
	return wr.cum[end] - wr.cum[start]
}

// styleAt returns the style of the given rune index, clamped to the text.
func (wr *wrapper) styleAt(i int) rich.Style {
	i = min(max(i, 0), len(wr.runes)-1)
	sty, _ := wr.tx.StyleAt(i)
	return sty
}

func (wr *wrapper) splitParagraphs() {
	n := len(wr.runes)
	start := 0
	for i := 0; i < n; i++ {
		if !isHardBreak(wr.runes[i]) {
			continue
		}
		wr.addParagraph(start, i)
		if wr.runes[i] == '\r' && i+1 < n && wr.runes[i+1] == '\n' {
			i++
		}
		start = i + 1
	}
	wr.addParagraph(start, n)
}

func (wr *wrapper) addParagraph(start, end int) {
	p := paragraph{rng: textpos.R(start, end), style: wr.styleAt(start)}
	str := string(wr.runes[start:end])
	state := -1
	ri := start
	for len(str) > 0 {
		var cl string
		var bounds int
		cl, str, bounds, state = uniseg.StepString(str, state)
		nr := utf8.RuneCountInString(cl)
		c := cluster{start: ri, end: ri + nr}
		c.width = wr.width(c.start, c.end)
		c.space = isSpace(wr.runes[c.start:c.end])
		switch bounds & uniseg.MaskLine {
		case uniseg.LineCanBreak:
			c.canBreak = true
		case uniseg.LineMustBreak:
			c.canBreak = true
			c.mustBreak = len(str) > 0
		}
		p.clusters = append(p.clusters, c)
		ri += nr
	}
	wr.paras = append(wr.paras, p)
}

func isSpace(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// wrap returns the line break spans for the given paragraph.
func (wr *wrapper) wrap(pi int, width float32) []span {
	p := &wr.paras[pi]
	n := len(p.clusters)
	if n == 0 {
		return []span{{para: pi, start: p.rng.Start, end: p.rng.Start, first: true}}
	}
	mode := wr.opts.LineBreak
	if mode == Clip || mode.IsTruncate() {
		return []span{{para: pi, start: p.rng.Start, end: p.rng.End, first: true}}
	}
	var out []span
	for ci := 0; ci < n; {
		first := len(out) == 0
		_, avail := p.edges(width, first)
		x, trail := float32(0), float32(0)
		brk, end := -1, -1
		for j := ci; j < n && end < 0; j++ {
			c := &p.clusters[j]
			x += c.width
			if c.space {
				trail += c.width
			} else {
				trail = 0
			}
			if x-trail > avail {
				switch {
				case brk >= 0:
					end = brk
				case j > ci:
					end = j - 1
				default:
					end = j
				}
				continue
			}
			if mode == CharWrap || c.canBreak {
				brk = j
			}
			if c.mustBreak {
				end = j
			}
		}
		if end < 0 {
			end = n - 1
		}
		out = append(out, span{para: pi, start: p.clusters[ci].start, end: p.clusters[end].end, first: first})
		ci = end + 1
	}
	return out
}

// lines computes the line breaks of all paragraphs, applies line limits
// and truncation, and returns the lines positioned relative to the top
// left of the content box. If align is false, lines are not aligned
// horizontally, which is needed for an unconstrained width.
func (wr *wrapper) lines(width float32, maxLines int, height float32, align bool) ([]Line, bool) {
	if len(wr.runes) == 0 {
		return nil, false
	}
	var spans []span
	for pi := range wr.paras {
		spans = append(spans, wr.wrap(pi, width)...)
	}
	mode := wr.opts.LineBreak
	limit := maxLines
	if mode.IsTruncate() {
		limit = 1
	}
	if height > 0 {
		if fit := wr.linesThatFit(spans, height); limit <= 0 || fit < limit {
			limit = fit
		}
	}
	truncated := false
	lines := make([]Line, 0, len(spans))
	for si := range spans {
		sp := &spans[si]
		if limit > 0 && si == limit {
			truncated = true
			break
		}
		last := limit > 0 && si == limit-1
		lines = append(lines, wr.line(sp, width, last && si < len(spans)-1))
		if lines[si].Truncated {
			truncated = true
		}
	}
	wr.position(lines, spans, width, align)
	return lines, truncated
}

// linesThatFit returns the number of lines that fit within the given
// height, which is always at least one.
func (wr *wrapper) linesThatFit(spans []span, height float32) int {
	y := float32(0)
	for si := range spans {
		p := &wr.paras[spans[si].para]
		y += wr.lineHeight(wr.spanMetrics(&spans[si]), p.para())
		if y > height {
			return max(si, 1)
		}
		y += wr.gapAfter(spans, si)
	}
	return len(spans)
}

// spanMetrics returns the maximum metrics over the styles of the span.
func (wr *wrapper) spanMetrics(sp *span) Metrics {
	if sp.end <= sp.start {
		sty := wr.paras[sp.para].style
		return wr.sh.Metrics(&sty)
	}
	var m Metrics
	for si, sr := range wr.spans {
		if sr.Overlaps(textpos.R(sp.start, sp.end)) {
			m = m.Max(wr.sh.Metrics(&wr.tx[si].Style))
		}
	}
	return m
}

// lineHeight returns the height of a line with the given natural
// metrics, according to the paragraph metrics.
func (wr *wrapper) lineHeight(m Metrics, pp rich.Paragraph) float32 {
	h := m.Height()
	if pp.LineHeightMultiple > 0 {
		h *= pp.LineHeightMultiple
	}
	if pp.MinLineHeight > 0 {
		h = max(h, pp.MinLineHeight)
	}
	if pp.MaxLineHeight > 0 {
		h = min(h, pp.MaxLineHeight)
	}
	return h
}

// gapAfter returns the space after the given line: line spacing,
// plus paragraph spacing after the last line of a paragraph.
func (wr *wrapper) gapAfter(spans []span, si int) float32 {
	if si >= len(spans)-1 {
		return 0
	}
	pp := wr.paras[spans[si].para].para()
	gap := pp.LineSpacing
	if spans[si+1].para != spans[si].para {
		gap += pp.Spacing
	}
	return gap
}

// blockHeight returns the total height of the given positioned lines.
func (wr *wrapper) blockHeight(lines []Line) float32 {
	if len(lines) == 0 {
		return 0
	}
	ln := &lines[len(lines)-1]
	return ln.Origin.Y + ln.Size.Y - lines[0].Origin.Y
}

// line returns the line for the given span, truncating it if it
// is too wide in a truncating mode, or if more text follows and
// force is true.
func (wr *wrapper) line(sp *span, width float32, force bool) Line {
	p := &wr.paras[sp.para]
	_, avail := p.edges(width, sp.first)
	mode := wr.opts.LineBreak
	ln := Line{SourceRange: textpos.R(sp.start, sp.end)}
	pieces := []piece{{rng: ln.SourceRange}}
	switch {
	case mode.IsTruncate():
		if force || wr.trimmedWidth(sp.start, sp.end) > avail {
			pieces = wr.truncate(mode, sp.start, sp.end, avail)
			ln.Truncated = true
		}
	case force && (mode == WordWrap || mode == CharWrap):
		// the last visible line takes the rest of the paragraph,
		// cut to fit with the token.
		pieces = wr.truncate(TruncateTail, sp.start, p.rng.End, avail)
		ln.Truncated = true
	}
	if ln.Truncated {
		ln.SourceRange = textpos.Range{Start: -1}
	}
	for _, pc := range pieces {
		if pc.token {
			ln.Runs = append(ln.Runs, wr.tokenRuns(pc.style)...)
			continue
		}
		if ln.SourceRange.Start < 0 {
			ln.SourceRange.Start = pc.rng.Start
		}
		ln.SourceRange.End = pc.rng.End
		ln.Runs = append(ln.Runs, wr.sourceRuns(pc.rng)...)
	}
	x := float32(0)
	for ri := range ln.Runs {
		rn := &ln.Runs[ri]
		rn.X = x
		x += rn.Width
	}
	ln.Size.X = x - wr.trailingSpace(ln.Runs)
	return ln
}

// trimmedWidth returns the advance of the range without trailing white space.
func (wr *wrapper) trimmedWidth(start, end int) float32 {
	for end > start && unicode.IsSpace(wr.runes[end-1]) {
		end--
	}
	return wr.width(start, end)
}

// trailingSpace returns the advance of the white space at the end of
// the given runs.
func (wr *wrapper) trailingSpace(runs []Run) float32 {
	w := float32(0)
	for ri := len(runs) - 1; ri >= 0; ri-- {
		rn := &runs[ri]
		for i := len(rn.Runes) - 1; i >= 0; i-- {
			if !unicode.IsSpace(rn.Runes[i]) {
				return w
			}
			w += rn.Advances[i]
		}
	}
	return w
}

// sourceRuns returns the runs for the given source range,
// split at span boundaries.
func (wr *wrapper) sourceRuns(r textpos.Range) []Run {
	var runs []Run
	for si, sr := range wr.spans {
		ir := sr.Intersect(r)
		if ir.IsEmpty() {
			continue
		}
		sty := wr.tx[si].Style
		rn := Run{Style: sty, SourceRange: ir, Runes: wr.runes[ir.Start:ir.End], Metrics: wr.sh.Metrics(&sty)}
		rn.Advances = make([]float32, ir.Len())
		for i := range rn.Advances {
			rn.Advances[i] = wr.width(ir.Start+i, ir.Start+i+1)
		}
		rn.Width = wr.width(ir.Start, ir.End)
		runs = append(runs, rn)
	}
	return runs
}

// tokenRuns returns the runs for the truncation token,
// with each token span overlaid on the given base style.
func (wr *wrapper) tokenRuns(base rich.Style) []Run {
	tok := wr.opts.token()
	runs := make([]Run, 0, len(tok))
	for si := range tok {
		sp := &tok[si]
		if len(sp.Runes) == 0 {
			continue
		}
		sty := base.Overlay(sp.Style)
		rn := Run{Style: sty, Runes: sp.Runes, Token: true, Metrics: wr.sh.Metrics(&sty)}
		rn.Advances = wr.sh.Advances(sp.Runes, &sty)
		for _, a := range rn.Advances {
			rn.Width += a
		}
		runs = append(runs, rn)
	}
	return runs
}

// tokenWidth returns the width of the token in the given base style.
func (wr *wrapper) tokenWidth(base rich.Style) float32 {
	w := float32(0)
	for _, rn := range wr.tokenRuns(base) {
		w += rn.Width
	}
	return w
}

// position sets the origin, size and baseline of each line,
// relative to the top left of the content box.
func (wr *wrapper) position(lines []Line, spans []span, width float32, align bool) {
	y := float32(0)
	for li := range lines {
		ln := &lines[li]
		sp := &spans[li]
		p := &wr.paras[sp.para]
		pp := p.para()
		m := Metrics{}
		for ri := range ln.Runs {
			m = m.Max(ln.Runs[ri].Metrics)
		}
		if len(ln.Runs) == 0 {
			m = wr.sh.Metrics(&p.style)
		}
		h := wr.lineHeight(m, pp)
		ln.Size.Y = h
		ln.Baseline = h - m.Descent
		indent, avail := p.edges(width, sp.first)
		ln.Origin = math32.Vec2(indent, y)
		if align {
			al := wr.opts.Align
			if p.style.Has(rich.AttrParagraph) {
				al = pp.Align
			}
			if free := avail - ln.Size.X; free > 0 {
				ln.Origin.X += al.AlignFactor() * free
			}
		}
		y += h + wr.gapAfter(spans, li)
	}
}
