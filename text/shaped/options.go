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
)

// LineBreaks are the ways of breaking and truncating lines.
type LineBreaks int32

const (
	// WordWrap breaks lines at word boundaries, falling back
	// to character boundaries for words wider than the line.
	WordWrap LineBreaks = iota

	// CharWrap breaks lines at any character boundary.
	CharWrap

	// Clip does not wrap: each paragraph is one line, clipped
	// at the edge of the box.
	Clip

	// TruncateHead shows one line, with the start of the text
	// replaced by the truncation token when it does not fit.
	TruncateHead

	// TruncateTail shows one line, with the end of the text
	// replaced by the truncation token when it does not fit.
	TruncateTail

	// TruncateMiddle shows one line, with the middle of the text
	// replaced by the truncation token when it does not fit.
	TruncateMiddle

	LineBreaksN
)

var lineBreakNames = [...]string{"word-wrap", "char-wrap", "clip", "truncate-head", "truncate-tail", "truncate-middle"}

func (lb LineBreaks) String() string {
	if lb < 0 || lb >= LineBreaksN {
		return fmt.Sprintf("LineBreaks(%d)", int32(lb))
	}
	return lineBreakNames[lb]
}

// IsTruncate returns true for the truncating modes, which always
// lay out a single line.
func (lb LineBreaks) IsTruncate() bool {
	return lb >= TruncateHead && lb <= TruncateMiddle
}

// SetString sets the value from its string name.
func (lb *LineBreaks) SetString(s string) error {
	for i, n := range lineBreakNames {
		if strings.EqualFold(n, s) {
			*lb = LineBreaks(i)
			return nil
		}
	}
	return fmt.Errorf("shaped: unknown line break mode %q", s)
}

func (lb LineBreaks) MarshalText() ([]byte, error) {
	return []byte(lb.String()), nil
}

func (lb *LineBreaks) UnmarshalText(text []byte) error {
	return lb.SetString(string(text))
}

// AlignsV are the vertical alignments of the text block within the box.
type AlignsV int32

const (
	// AlignCenter centers the text block vertically.
	AlignCenter AlignsV = iota

	// AlignTop places the text block at the top of the box.
	AlignTop

	// AlignBottom places the text block at the bottom of the box.
	AlignBottom

	AlignsVN
)

var alignVNames = [...]string{"center", "top", "bottom"}

func (a AlignsV) String() string {
	if a < 0 || a >= AlignsVN {
		return fmt.Sprintf("AlignsV(%d)", int32(a))
	}
	return alignVNames[a]
}

// Factor returns the fraction of the free vertical space
// that is placed above the text block.
func (a AlignsV) Factor() float32 {
	switch a {
	case AlignTop:
		return 0
	case AlignBottom:
		return 1
	}
	return 0.5
}

// SetString sets the value from its string name.
func (a *AlignsV) SetString(s string) error {
	for i, n := range alignVNames {
		if strings.EqualFold(n, s) {
			*a = AlignsV(i)
			return nil
		}
	}
	return fmt.Errorf("shaped: unknown vertical alignment %q", s)
}

func (a AlignsV) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *AlignsV) UnmarshalText(text []byte) error {
	return a.SetString(string(text))
}

// DefaultToken is the truncation token used when
// [Options.Token] is empty.
const DefaultToken = "…"

// Options are the parameters of a [Layout].
type Options struct {

	// Size is the size of the box to lay out into, including Insets.
	// A zero height means that the height is not constrained.
	Size math32.Vector2

	// MaxLines is the maximum number of lines, if > 0.
	MaxLines int

	// LineBreak is the line breaking and truncation mode.
	LineBreak LineBreaks

	// Token is the text that replaces truncated text. If it is empty,
	// [DefaultToken] is used. Attributes set in the token style are
	// overlaid on the style of the rune preceding the cut.
	Token rich.Text

	// Insets are subtracted from Size before layout, and added
	// to every line origin.
	Insets sides.Floats

	// AlignV is the vertical alignment of the text block.
	AlignV AlignsV

	// Align is the horizontal alignment of lines, used for paragraphs
	// whose style does not set [rich.AttrParagraph].
	Align rich.Aligns
}

// token returns the truncation token text.
func (o *Options) token() rich.Text {
	if o.Token.Len() > 0 {
		return o.Token
	}
	return rich.NewPlain(rich.Style{}, DefaultToken)
}
