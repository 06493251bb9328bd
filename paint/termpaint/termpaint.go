// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termpaint is a [paint.Painter] that draws text to a terminal,
// using one character cell per cell-sized area of the label.
// Colors, bold, italic, underline and strikeout are drawn with ANSI
// escapes, and links with OSC 8 hyperlinks, as supported by the terminal.
package termpaint

import (
	"image/color"
	"io"
	"strings"

	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/paint"
	"cogentcore.org/linklabel/text/rich"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
)

// cellStyle is the drawing state of one cell.
type cellStyle struct {
	fg        color.RGBA
	hasFg     bool
	bg        color.RGBA
	bold      bool
	italic    bool
	underline bool
	strike    bool
	url       string
}

type cell struct {
	text  string
	style cellStyle

	// wide is set on the second cell of a double width character.
	wide bool
}

// Painter paints render items into a grid of cells, which is written
// to the output by [Painter.Flush].
type Painter struct {
	// Cell is the size of one terminal cell in label units.
	Cell math32.Vector2

	// Width is the maximum number of cells in a row. Longer rows
	// are cut, keeping escape sequences intact. 0 means no limit.
	Width int

	out  *termenv.Output
	rows [][]cell
	url  string
}

// New returns a new Painter writing to w. The options are passed to
// [termenv.NewOutput], and determine the color profile.
func New(w io.Writer, cellSize math32.Vector2, opts ...termenv.OutputOption) *Painter {
	return &Painter{Cell: cellSize, out: termenv.NewOutput(w, opts...)}
}

// cellAt returns the cell at the given row and column, growing the grid.
func (p *Painter) cellAt(row, col int) *cell {
	for len(p.rows) <= row {
		p.rows = append(p.rows, nil)
	}
	for len(p.rows[row]) <= col {
		p.rows[row] = append(p.rows[row], cell{text: " "})
	}
	return &p.rows[row][col]
}

func (p *Painter) row(y float32) int {
	return max(0, int(math32.Floor(y/p.Cell.Y)))
}

func (p *Painter) col(x float32) int {
	return max(0, int(math32.Round(x/p.Cell.X)))
}

func (p *Painter) Paint(r paint.Render) {
	for _, it := range r {
		switch it := it.(type) {
		case *paint.Box:
			p.box(it)
		case *paint.Glyphs:
			if !it.Shadow {
				p.glyphs(it)
			}
		case *paint.Line:
			p.line(it)
		case *paint.LinkPush:
			p.url = it.URL
		case *paint.LinkPop:
			p.url = ""
		}
	}
}

func (p *Painter) box(b *paint.Box) {
	if b.Background.Fill.A == 0 {
		return
	}
	r0, r1 := p.row(b.Bounds.Min.Y), p.row(b.Bounds.Max.Y-0.5*p.Cell.Y)
	c0, c1 := p.col(b.Bounds.Min.X), p.col(b.Bounds.Max.X)
	for row := r0; row <= r1; row++ {
		for col := c0; col < c1; col++ {
			p.cellAt(row, col).style.bg = b.Background.Fill
		}
	}
}

func (p *Painter) glyphs(g *paint.Glyphs) {
	row := p.row(g.Pos.Y)
	x := g.Pos.X
	prev := -1
	for i, r := range g.Runes {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			if prev >= 0 {
				p.cellAt(row, prev).text += string(r)
			}
			x += g.Advances[i]
			continue
		}
		col := p.col(x)
		c := p.cellAt(row, col)
		bg := c.style.bg
		*c = cell{text: string(r), style: styleOf(&g.Style, p.url)}
		c.style.bg = bg
		for k := 1; k < w; k++ {
			wc := p.cellAt(row, col+k)
			wc.wide = true
			wc.text = ""
		}
		prev = col
		x += g.Advances[i]
	}
}

func (p *Painter) line(ln *paint.Line) {
	row := p.row(ln.From.Y)
	for col := p.col(ln.From.X); col < p.col(ln.To.X); col++ {
		c := p.cellAt(row, col)
		if ln.Kind == paint.Strikeout {
			c.style.strike = true
		} else {
			c.style.underline = true
		}
	}
}

func styleOf(sty *rich.Style, url string) cellStyle {
	cs := cellStyle{url: url}
	if sty.Has(rich.AttrColor) {
		cs.fg, cs.hasFg = sty.Color, true
	}
	cs.bold = sty.Has(rich.AttrWeight) && sty.Weight >= rich.SemiBold
	cs.italic = sty.Has(rich.AttrSlant) && sty.Slant == rich.Italic
	return cs
}

// Flush writes all painted rows to the output, followed by a newline
// each, and clears the grid.
func (p *Painter) Flush() error {
	for _, row := range p.rows {
		line := p.render(row)
		if _, err := p.out.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	p.rows = nil
	return nil
}

// String returns the painted rows as they would be written by Flush,
// without clearing the grid.
func (p *Painter) String() string {
	var b strings.Builder
	for _, row := range p.rows {
		b.WriteString(strings.TrimRight(p.render(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// render returns one row with escape sequences, grouping runs of
// cells with the same style, and cut to [Painter.Width].
func (p *Painter) render(row []cell) string {
	var b strings.Builder
	used := 0
	for i := 0; i < len(row); {
		cs := row[i].style
		var txt strings.Builder
		for ; i < len(row) && row[i].style == cs; i++ {
			if !row[i].wide {
				txt.WriteString(row[i].text)
			}
		}
		seg := txt.String()
		sw := runewidth.StringWidth(seg)
		if p.Width > 0 && used+sw > p.Width {
			b.WriteString(p.styled(seg, cs, p.Width-used))
			break
		}
		used += sw
		b.WriteString(p.styled(seg, cs, -1))
	}
	return b.String()
}

// styled returns s with the escape sequences for cs. If width >= 0,
// the visible text is cut to that many cells.
func (p *Painter) styled(s string, cs cellStyle, width int) string {
	if p.out.Profile == termenv.Ascii {
		if width >= 0 {
			return truncate.String(s, uint(width))
		}
		return s
	}
	st := p.out.String(s)
	if cs.hasFg {
		st = st.Foreground(p.out.FromColor(cs.fg))
	}
	if cs.bg.A > 0 {
		st = st.Background(p.out.FromColor(cs.bg))
	}
	if cs.bold {
		st = st.Bold()
	}
	if cs.italic {
		st = st.Italic()
	}
	if cs.underline {
		st = st.Underline()
	}
	if cs.strike {
		st = st.CrossOut()
	}
	out := st.String()
	if width >= 0 {
		out = truncate.String(out, uint(width))
	}
	if cs.url != "" {
		return p.out.Hyperlink(cs.url, out)
	}
	return out
}
