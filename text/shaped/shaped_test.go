// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped_test

import (
	"testing"

	"cogentcore.org/linklabel/base/errors"
	"cogentcore.org/linklabel/colors"
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/styles/sides"
	"cogentcore.org/linklabel/text/rich"
	. "cogentcore.org/linklabel/text/shaped"
	"cogentcore.org/linklabel/text/shaped/shapedmono"
	"cogentcore.org/linklabel/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// every rune is 10 wide and every line 10 high, with a baseline at 8.
func testShaper() Shaper {
	return shapedmono.NewAspect(1)
}

func plain(s string) rich.Text {
	sty := rich.NewStyle()
	sty.SetSize(10)
	return rich.NewPlain(sty, s)
}

func lineTexts(lns *Lines) []string {
	var s []string
	for li := range lns.Lines {
		s = append(s, lns.Lines[li].Text())
	}
	return s
}

func TestWordWrap(t *testing.T) {
	lns := Layout(testShaper(), plain("hello world foo"), Options{Size: math32.Vec2(60, 0)})
	require.Len(t, lns.Lines, 3)
	assert.Equal(t, []string{"hello ", "world ", "foo"}, lineTexts(lns))
	assert.Equal(t, textpos.R(0, 6), lns.Lines[0].SourceRange)
	assert.Equal(t, textpos.R(6, 12), lns.Lines[1].SourceRange)
	assert.Equal(t, textpos.R(12, 15), lns.Lines[2].SourceRange)
	assert.Equal(t, math32.Vec2(50, 10), lns.Lines[0].Size)
	assert.Equal(t, math32.Vec2(30, 10), lns.Lines[2].Size)
	assert.Equal(t, float32(8), lns.Lines[0].Baseline)
	assert.Equal(t, float32(20), lns.Lines[2].Origin.Y)
	assert.False(t, lns.Truncated)
}

func TestLongWordFallsBackToCharWrap(t *testing.T) {
	lns := Layout(testShaper(), plain("abcdefghij ab"), Options{Size: math32.Vec2(40, 0)})
	assert.Equal(t, []string{"abcd", "efgh", "ij ", "ab"}, lineTexts(lns))
}

func TestCharWrap(t *testing.T) {
	lns := Layout(testShaper(), plain("hello world"), Options{Size: math32.Vec2(40, 0), LineBreak: CharWrap})
	assert.Equal(t, []string{"hell", "o wo", "rld"}, lineTexts(lns))
}

func TestClip(t *testing.T) {
	lns := Layout(testShaper(), plain("hello world\nnext"), Options{Size: math32.Vec2(40, 0), LineBreak: Clip})
	assert.Equal(t, []string{"hello world", "next"}, lineTexts(lns))
	assert.False(t, lns.Truncated)
}

func TestHardBreaks(t *testing.T) {
	lns := Layout(testShaper(), plain("ab\ncd\r\n\nef\n"), Options{Size: math32.Vec2(100, 0)})
	assert.Equal(t, []string{"ab", "cd", "", "ef", ""}, lineTexts(lns))
	assert.Equal(t, textpos.R(3, 5), lns.Lines[1].SourceRange)
	assert.Equal(t, textpos.R(8, 10), lns.Lines[3].SourceRange)
	assert.Equal(t, float32(40), lns.Lines[4].Origin.Y)
}

func TestTruncateTail(t *testing.T) {
	for _, mode := range []LineBreaks{TruncateTail, WordWrap, CharWrap} {
		lns := Layout(testShaper(), plain("abcdefghij"), Options{Size: math32.Vec2(50, 0), MaxLines: 1, LineBreak: mode})
		require.Len(t, lns.Lines, 1, mode.String())
		ln := &lns.Lines[0]
		assert.Equal(t, textpos.R(0, 4), ln.SourceRange, mode.String())
		assert.Equal(t, "abcd…", ln.Text(), mode.String())
		assert.True(t, ln.Truncated)
		assert.True(t, lns.Truncated)
		assert.Equal(t, float32(50), ln.Size.X)
		require.Len(t, ln.Runs, 2)
		assert.True(t, ln.Runs[1].Token)
		assert.True(t, ln.Runs[1].SourceRange.IsEmpty())
	}
}

func TestTruncateIgnoresMaxLines(t *testing.T) {
	lns := Layout(testShaper(), plain("abcdefghij"), Options{Size: math32.Vec2(50, 0), MaxLines: 3, LineBreak: TruncateTail})
	require.Len(t, lns.Lines, 1)
	assert.Equal(t, "abcd…", lns.Lines[0].Text())

	lns = Layout(testShaper(), plain("ab\ncd"), Options{Size: math32.Vec2(50, 0), LineBreak: TruncateTail})
	require.Len(t, lns.Lines, 1)
	assert.Equal(t, "ab…", lns.Lines[0].Text())

	lns = Layout(testShaper(), plain("abc"), Options{Size: math32.Vec2(50, 0), LineBreak: TruncateTail})
	assert.Equal(t, "abc", lns.Lines[0].Text())
	assert.False(t, lns.Truncated)
}

func TestTruncateHead(t *testing.T) {
	lns := Layout(testShaper(), plain("abcdefghij"), Options{Size: math32.Vec2(50, 0), LineBreak: TruncateHead})
	require.Len(t, lns.Lines, 1)
	ln := &lns.Lines[0]
	assert.Equal(t, "…ghij", ln.Text())
	assert.Equal(t, textpos.R(6, 10), ln.SourceRange)
	assert.True(t, ln.Runs[0].Token)
}

func TestTruncateMiddle(t *testing.T) {
	lns := Layout(testShaper(), plain("abcdefghij"), Options{Size: math32.Vec2(50, 0), LineBreak: TruncateMiddle})
	assert.Equal(t, "ab…ij", lns.Lines[0].Text())
	assert.Equal(t, textpos.R(0, 10), lns.Lines[0].SourceRange)

	lns = Layout(testShaper(), plain("abcdefghij"), Options{Size: math32.Vec2(40, 0), LineBreak: TruncateMiddle})
	assert.Equal(t, "ab…j", lns.Lines[0].Text())
}

func TestTruncateWordWrapLastLine(t *testing.T) {
	lns := Layout(testShaper(), plain("one two three four"), Options{Size: math32.Vec2(80, 0), MaxLines: 2})
	require.Len(t, lns.Lines, 2)
	assert.Equal(t, "one two ", lns.Lines[0].Text())
	assert.Equal(t, "three f…", lns.Lines[1].Text())
	assert.Equal(t, textpos.R(8, 15), lns.Lines[1].SourceRange)
	assert.True(t, lns.Truncated)
}

func TestTokenStyle(t *testing.T) {
	blue := rich.NewStyle()
	blue.SetSize(10).SetColor(colors.Blue)
	red := rich.NewStyle()
	red.SetSize(10).SetColor(colors.FromStringMust("red"))
	tx := rich.NewPlain(blue, "abcd")
	tx.AddSpan(red, []rune("efghij"))

	lns := Layout(testShaper(), tx, Options{Size: math32.Vec2(50, 0), LineBreak: TruncateTail})
	tok := lns.Lines[0].Runs[len(lns.Lines[0].Runs)-1]
	require.True(t, tok.Token)
	assert.Equal(t, colors.Blue, tok.Style.Color)

	ul := rich.Style{}
	ul.SetUnderline(true)
	lns = Layout(testShaper(), tx, Options{Size: math32.Vec2(50, 0), LineBreak: TruncateTail, Token: rich.NewPlain(ul, "~")})
	tok = lns.Lines[0].Runs[len(lns.Lines[0].Runs)-1]
	assert.Equal(t, "~", string(tok.Runes))
	assert.Equal(t, colors.Blue, tok.Style.Color)
	assert.True(t, tok.Style.Underline)
}

func TestHeightLimit(t *testing.T) {
	lns := Layout(testShaper(), plain("a\nb\nc"), Options{Size: math32.Vec2(50, 25), AlignV: AlignTop})
	assert.Equal(t, []string{"a", "b…"}, lineTexts(lns))
	assert.True(t, lns.Truncated)
}

func TestAlignment(t *testing.T) {
	sh := testShaper()
	tx := plain("ab")
	lns := Layout(sh, tx, Options{Size: math32.Vec2(100, 50)})
	assert.Equal(t, math32.Vec2(0, 20), lns.Lines[0].Origin)

	lns = Layout(sh, tx, Options{Size: math32.Vec2(100, 50), AlignV: AlignTop, Align: rich.Center})
	assert.Equal(t, math32.Vec2(40, 0), lns.Lines[0].Origin)

	lns = Layout(sh, tx, Options{Size: math32.Vec2(100, 50), AlignV: AlignBottom, Align: rich.End})
	assert.Equal(t, math32.Vec2(80, 40), lns.Lines[0].Origin)

	lns = Layout(sh, tx, Options{Size: math32.Vec2(100, 50), Insets: sides.NewFloats(5)})
	assert.Equal(t, math32.Vec2(5, 20), lns.Lines[0].Origin)
	assert.Equal(t, math32.B2(5, 20, 25, 30), lns.TextBounds)
	assert.Equal(t, math32.B2(0, 0, 100, 50), lns.Bounds)
}

func TestParagraphStyle(t *testing.T) {
	sty := rich.NewStyle()
	sty.SetSize(10).SetParagraph(rich.Paragraph{FirstLineIndent: 20, HeadIndent: 10, LineSpacing: 2})
	lns := Layout(testShaper(), rich.NewPlain(sty, "aaaa bbbb cccc"), Options{Size: math32.Vec2(80, 0)})
	require.Len(t, lns.Lines, 3)
	assert.Equal(t, math32.Vec2(20, 0), lns.Lines[0].Origin)
	assert.Equal(t, math32.Vec2(10, 12), lns.Lines[1].Origin)
	assert.Equal(t, math32.Vec2(10, 24), lns.Lines[2].Origin)

	sty.SetParagraph(rich.Paragraph{LineHeightMultiple: 2, Align: rich.End})
	lns = Layout(testShaper(), rich.NewPlain(sty, "ab"), Options{Size: math32.Vec2(80, 0)})
	assert.Equal(t, float32(20), lns.Lines[0].Size.Y)
	assert.Equal(t, float32(18), lns.Lines[0].Baseline)
	assert.Equal(t, float32(60), lns.Lines[0].Origin.X)

	sty.SetParagraph(rich.Paragraph{MinLineHeight: 14, MaxLineHeight: 12})
	lns = Layout(testShaper(), rich.NewPlain(sty, "ab"), Options{Size: math32.Vec2(80, 0)})
	assert.Equal(t, float32(12), lns.Lines[0].Size.Y)
}

func TestKerning(t *testing.T) {
	sty := rich.NewStyle()
	sty.SetSize(10).SetKerning(1)
	lns := Layout(testShaper(), rich.NewPlain(sty, "abc"), Options{Size: math32.Vec2(100, 0)})
	assert.Equal(t, float32(33), lns.Lines[0].Size.X)
}

func TestDegenerate(t *testing.T) {
	sh := testShaper()
	lns, err := LayoutChecked(sh, plain("abc"), Options{Size: math32.Vec2(0, 10)})
	assert.True(t, errors.Is(err, ErrLayoutUnavailable))
	assert.True(t, lns.IsEmpty())
	assert.Equal(t, math32.Vector2{}, lns.Size())

	lns, err = LayoutChecked(sh, plain("abc"), Options{Size: math32.Vec2(10, 10), Insets: sides.NewFloats(0, 6)})
	assert.True(t, errors.Is(err, ErrLayoutUnavailable))
	assert.True(t, lns.IsEmpty())

	_, err = LayoutChecked(nil, plain("abc"), Options{Size: math32.Vec2(10, 10)})
	assert.True(t, errors.Is(err, ErrLayoutUnavailable))

	lns, err = LayoutChecked(sh, rich.Text{}, Options{Size: math32.Vec2(10, 10)})
	assert.NoError(t, err)
	assert.True(t, lns.IsEmpty())
}

func TestMeasure(t *testing.T) {
	sh := testShaper()
	tx := plain("hello world")
	assert.Equal(t, math32.Vec2(110, 10), Measure(sh, tx, math32.Vector2{}, 0, Options{}))
	assert.Equal(t, math32.Vec2(50, 20), Measure(sh, tx, math32.Vec2(60, 0), 0, Options{}))
	assert.Equal(t, math32.Vec2(60, 10), Measure(sh, tx, math32.Vec2(60, 0), 1, Options{}))
	assert.Equal(t, math32.Vec2(54, 24), Measure(sh, tx, math32.Vec2(64, 0), 0, Options{Insets: sides.NewFloats(2)}))
	assert.Equal(t, math32.Vec2(50, 15), Measure(sh, tx, math32.Vec2(60, 15), 0, Options{}))
	assert.Equal(t, math32.Vector2{}, Measure(sh, rich.Text{}, math32.Vec2(60, 15), 0, Options{}))

	a := Measure(sh, tx, math32.Vec2(60, 0), 0, Options{})
	b := Measure(sh, tx, math32.Vec2(60, 0), 0, Options{})
	assert.Equal(t, a, b)
}

func TestRangeRects(t *testing.T) {
	lns := Layout(testShaper(), plain("aaaa bbbb"), Options{Size: math32.Vec2(50, 0)})
	require.Len(t, lns.Lines, 2)
	rects := lns.RangeRects(textpos.R(2, 7))
	require.Len(t, rects, 2)
	assert.Equal(t, math32.B2(20, 0, 50, 10), rects[0])
	assert.Equal(t, math32.B2(0, 10, 20, 20), rects[1])
	assert.Empty(t, lns.RangeRects(textpos.R(3, 3)))
}

func TestRangeRectsTruncated(t *testing.T) {
	lns := Layout(testShaper(), plain("abcdefghij"), Options{Size: math32.Vec2(50, 0), LineBreak: TruncateTail})
	assert.Empty(t, lns.RangeRects(textpos.R(5, 8)))
	assert.Equal(t, []math32.Box2{math32.B2(20, 0, 40, 10)}, lns.RangeRects(textpos.R(2, 8)))
}

func TestLinkAtLines(t *testing.T) {
	lns := Layout(testShaper(), plain("aaaa bbbb"), Options{Size: math32.Vec2(50, 0)})
	first := textpos.R(0, 4)
	second := textpos.R(5, 9)
	tol := float32(5) // half the line height

	pt := math32.Vec2(15, 12)
	assert.Equal(t, 1, lns.LinkAt(pt, []textpos.Range{first, second}, tol))
	assert.Equal(t, 0, lns.LinkAt(pt, []textpos.Range{second, first}, tol))

	// in the trailing space of line 1, within tolerance of both links:
	// the last added wins
	pt = math32.Vec2(45, 5)
	assert.Equal(t, -1, lns.LinkAt(pt, []textpos.Range{first, second}, 0))
	assert.Equal(t, 1, lns.LinkAt(pt, []textpos.Range{first, second}, tol))
	assert.Equal(t, 0, lns.LinkAt(pt, []textpos.Range{second, first}, tol))

	// only within tolerance of line 1
	pt = math32.Vec2(45, 2)
	assert.Equal(t, 0, lns.LinkAt(pt, []textpos.Range{first, second}, tol))

	assert.Equal(t, -1, lns.LinkAt(math32.Vec2(-1, -1), []textpos.Range{first, second}, tol))
	assert.Equal(t, -1, lns.LinkAt(math32.Vec2(5, 5), []textpos.Range{textpos.R(0, 20)}, tol))
}

func TestLinkAtOverlapAndTies(t *testing.T) {
	lns := Layout(testShaper(), plain("abcdefgh"), Options{Size: math32.Vec2(100, 0)})
	outer := textpos.R(0, 8)
	inner := textpos.R(2, 4)
	assert.Equal(t, 1, lns.LinkAt(math32.Vec2(25, 5), []textpos.Range{outer, inner}, 0))
	assert.Equal(t, 1, lns.LinkAt(math32.Vec2(25, 5), []textpos.Range{inner, outer}, 0))

	// expanded rects overlap at the point: last added wins,
	// even when the point is nearer to the earlier link
	left := textpos.R(0, 2)
	right := textpos.R(4, 6)
	assert.Equal(t, 1, lns.LinkAt(math32.Vec2(30, 5), []textpos.Range{left, right}, 20))
	assert.Equal(t, 1, lns.LinkAt(math32.Vec2(30, 5), []textpos.Range{right, left}, 20))
	assert.Equal(t, 1, lns.LinkAt(math32.Vec2(25, 5), []textpos.Range{left, right}, 20))
	assert.Equal(t, 1, lns.LinkAt(math32.Vec2(25, 5), []textpos.Range{right, left}, 20))
	assert.Equal(t, 0, lns.LinkAt(math32.Vec2(25, 5), []textpos.Range{left, right}, 8))
}

type rangeLink struct {
	r textpos.Range
}

func (l *rangeLink) LinkRange() textpos.Range { return l.r }

func TestRanges(t *testing.T) {
	ls := []rangeLink{{textpos.R(0, 2)}, {textpos.R(3, 4)}}
	assert.Equal(t, []textpos.Range{textpos.R(0, 2), textpos.R(3, 4)}, Ranges(ls))
}

func TestRuneAt(t *testing.T) {
	lns := Layout(testShaper(), plain("aaaa bbbb"), Options{Size: math32.Vec2(50, 0)})
	assert.Equal(t, 2, lns.RuneAt(math32.Vec2(25, 5)))
	assert.Equal(t, 6, lns.RuneAt(math32.Vec2(15, 15)))
	assert.Equal(t, -1, lns.RuneAt(math32.Vec2(45, 15)))
	assert.Equal(t, 1, lns.LineAt(6))
	assert.Equal(t, -1, lns.LineAt(20))
}

func TestCache(t *testing.T) {
	sh := testShaper()
	var c Cache
	tx := plain("hello world")
	opts := Options{Size: math32.Vec2(60, 0)}
	a := c.Layout(sh, tx, opts)
	assert.Same(t, a, c.Layout(sh, tx, opts))
	assert.True(t, c.Valid())

	c.Invalidate()
	assert.False(t, c.Valid())
	b := c.Layout(sh, tx, opts)
	assert.NotSame(t, a, b)

	opts.MaxLines = 1
	assert.NotSame(t, b, c.Layout(sh, tx, opts))

	ul := rich.Style{}
	ul.SetUnderline(true)
	d := c.Layout(sh, tx, opts)
	assert.NotSame(t, d, c.Layout(sh, tx.OverlayRange(textpos.R(0, 2), ul), opts))
	assert.NotEqual(t, HashText(tx), HashText(tx.OverlayRange(textpos.R(0, 2), ul)))
}

func TestWrapSizeEstimate(t *testing.T) {
	sty := rich.NewStyle()
	sty.SetSize(10)
	sz := WrapSizeEstimate(100, 1, testShaper(), &sty)
	assert.InDelta(t, 100, sz.X, 0.01)
	assert.InDelta(t, 100, sz.Y, 0.01)
	sz = WrapSizeEstimate(100, 4, testShaper(), &sty)
	assert.InDelta(t, 200, sz.X, 0.01)
	assert.InDelta(t, 50, sz.Y, 0.01)
}
