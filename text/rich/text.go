// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rich provides styled text: spans of runes that share a
// common [Style], and the composition of source text with a base style.
package rich

import (
	"slices"
	"strings"

	"cogentcore.org/linklabel/text/textpos"
)

// Span is a run of runes that share a common [Style].
type Span struct {
	Style Style
	Runes []rune
}

// Text is the basic rich text representation, with spans of []rune unicode
// characters that share a common set of text styling properties.
// Spans are contiguous, so the span ranges exactly cover [0, Len()),
// and indexing by rune index in the original source is fast.
// Text values are treated as immutable once built: methods that
// change styling return a new Text.
type Text []Span

// NewText returns a new [Text] starting with given style and runes,
// which can be empty.
func NewText(s Style, r []rune) Text {
	tx := Text{}
	tx.AddSpan(s, r)
	return tx
}

// NewPlain returns a new [Text] with one span of the given string.
func NewPlain(s Style, str string) Text {
	return NewText(s, []rune(str))
}

// Index represents the [Span][Rune] index of a given rune.
type Index struct {
	Span, Rune int
}

// NumSpans returns the number of spans in this Text.
func (tx Text) NumSpans() int {
	return len(tx)
}

// Len returns the total number of runes in this Text.
func (tx Text) Len() int {
	n := 0
	for _, s := range tx {
		n += len(s.Runes)
	}
	return n
}

// Range returns the start, end range of indexes into original source
// for given span index.
func (tx Text) Range(span int) (start, end int) {
	ci := 0
	for si, s := range tx {
		ns := len(s.Runes)
		if si == span {
			return ci, ci + ns
		}
		ci += ns
	}
	return -1, -1
}

// Ranges returns the source range of every span, in order.
func (tx Text) Ranges() []textpos.Range {
	rs := make([]textpos.Range, len(tx))
	ci := 0
	for si, s := range tx {
		rs[si] = textpos.R(ci, ci+len(s.Runes))
		ci += len(s.Runes)
	}
	return rs
}

// Index returns the span, rune slice [Index] for the given logical
// index into the original source rune slice.
// If the logical index is invalid for the text, the returned index is -1,-1.
func (tx Text) Index(li int) Index {
	ci := 0
	for si, s := range tx {
		ns := len(s.Runes)
		if li >= ci && li < ci+ns {
			return Index{Span: si, Rune: li - ci}
		}
		ci += ns
	}
	return Index{Span: -1, Rune: -1}
}

// At returns the rune at given logical index. Returns 0
// if index is invalid.
func (tx Text) At(li int) rune {
	i := tx.Index(li)
	if i.Span < 0 {
		return 0
	}
	return tx[i.Span].Runes[i.Rune]
}

// StyleAt returns the style of the rune at given logical index,
// and false if the index is invalid.
func (tx Text) StyleAt(li int) (Style, bool) {
	i := tx.Index(li)
	if i.Span < 0 {
		return Style{}, false
	}
	return tx[i.Span].Style, true
}

// Join returns a single slice of runes with the contents of all span runes.
func (tx Text) Join() []rune {
	rn := make([]rune, 0, tx.Len())
	for _, s := range tx {
		rn = append(rn, s.Runes...)
	}
	return rn
}

// String returns the plain text content.
func (tx Text) String() string {
	var b strings.Builder
	for _, s := range tx {
		b.WriteString(string(s.Runes))
	}
	return b.String()
}

// Dump returns a description of each span, for debugging.
func (tx Text) Dump() string {
	var b strings.Builder
	for _, s := range tx {
		b.WriteString("[" + s.Style.String() + "]: " + string(s.Runes) + "\n")
	}
	return b.String()
}

// AddSpan adds a span to the Text using the given Style and runes.
func (tx *Text) AddSpan(s Style, r []rune) *Text {
	*tx = append(*tx, Span{Style: s, Runes: r})
	return tx
}

// AddRunes adds given runes to current span.
// If no existing span, then a new default one is made.
func (tx *Text) AddRunes(r []rune) *Text {
	n := len(*tx)
	if n == 0 {
		return tx.AddSpan(NewStyle(), r)
	}
	(*tx)[n-1].Runes = append((*tx)[n-1].Runes, r...)
	return tx
}

// Clone returns a deep copy of the text, sharing no rune storage.
func (tx Text) Clone() Text {
	if tx == nil {
		return nil
	}
	nt := make(Text, len(tx))
	for i, s := range tx {
		nt[i] = Span{Style: s.Style, Runes: slices.Clone(s.Runes)}
	}
	return nt
}

// Slice returns a new Text with the runes in the given range,
// keeping their styles.
func (tx Text) Slice(r textpos.Range) Text {
	var nt Text
	ci := 0
	for _, s := range tx {
		sr := textpos.R(ci, ci+len(s.Runes)).Intersect(r)
		if !sr.IsEmpty() {
			nt = append(nt, Span{Style: s.Style, Runes: slices.Clone(s.Runes[sr.Start-ci : sr.End-ci])})
		}
		ci += len(s.Runes)
	}
	return nt
}

// splitAt returns a copy of the text with a span boundary at
// logical index li, so that li starts a span.
func (tx Text) splitAt(li int) Text {
	nt := make(Text, 0, len(tx)+1)
	ci := 0
	for _, s := range tx {
		ns := len(s.Runes)
		if li > ci && li < ci+ns {
			off := li - ci
			nt = append(nt, Span{Style: s.Style, Runes: s.Runes[:off:off]})
			nt = append(nt, Span{Style: s.Style, Runes: s.Runes[off:]})
		} else {
			nt = append(nt, s)
		}
		ci += ns
	}
	return nt
}

// SetStyleRange returns a new Text where fun has been applied to the
// style of every span within the given range, splitting spans at the
// range boundaries as needed. The range is clamped to the text.
func (tx Text) SetStyleRange(r textpos.Range, fun func(s *Style)) Text {
	r = r.Intersect(textpos.R(0, tx.Len()))
	nt := tx.Clone()
	if r.IsEmpty() {
		return nt
	}
	nt = nt.splitAt(r.Start).splitAt(r.End)
	ci := 0
	for i := range nt {
		ns := len(nt[i].Runes)
		if ci >= r.Start && ci+ns <= r.End {
			fun(&nt[i].Style)
		}
		ci += ns
	}
	return nt.Normalize()
}

// OverlayRange returns a new Text with the given style overlaid on
// every span within the given range. See [Style.Overlay].
func (tx Text) OverlayRange(r textpos.Range, o Style) Text {
	return tx.SetStyleRange(r, func(s *Style) {
		*s = s.Overlay(o)
	})
}

// Normalize returns the text with empty spans removed and
// adjacent spans with equal styles merged.
func (tx Text) Normalize() Text {
	nt := make(Text, 0, len(tx))
	for _, s := range tx {
		if len(s.Runes) == 0 {
			continue
		}
		n := len(nt)
		if n > 0 && nt[n-1].Style == s.Style {
			nt[n-1].Runes = append(slices.Clip(nt[n-1].Runes), s.Runes...)
			continue
		}
		nt = append(nt, s)
	}
	return nt
}

// Join joins multiple texts into one text. Just appends the spans.
func Join(txts ...Text) Text {
	nt := Text{}
	for _, tx := range txts {
		nt = append(nt, tx...)
	}
	return nt
}
