// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/linklabel/bitflag"
	"cogentcore.org/linklabel/colors"
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/styles/sides"
)

// Attrs are the optional attributes of a [Style]. A Style records
// which attributes it sets, so that an unset attribute can fall back
// to a base style, distinct from an attribute explicitly set to zero.
type Attrs int32

const (
	AttrFamily Attrs = iota
	AttrSize
	AttrWeight
	AttrSlant
	AttrColor
	AttrKerning
	AttrShadow
	AttrStrikeout
	AttrUnderline
	AttrBackground
	AttrParagraph

	AttrsN
)

var attrNames = [...]string{"family", "size", "weight", "slant", "color", "kerning", "shadow", "strikeout", "underline", "background", "paragraph"}

func (a Attrs) String() string {
	if a >= 0 && a < AttrsN {
		return attrNames[a]
	}
	return fmt.Sprintf("Attrs(%d)", int32(a))
}

// Families are the generic font families.
type Families int32

const (
	// SansSerif is a font without serifs, the default.
	SansSerif Families = iota

	// Serif is a font with serifs.
	Serif

	// Monospace is a fixed-width font.
	Monospace
)

func (f Families) String() string {
	switch f {
	case Serif:
		return "serif"
	case Monospace:
		return "monospace"
	}
	return "sans-serif"
}

// SetString sets the family from its name.
func (f *Families) SetString(s string) error {
	for _, nf := range []Families{SansSerif, Serif, Monospace} {
		if strings.EqualFold(nf.String(), s) {
			*f = nf
			return nil
		}
	}
	return fmt.Errorf("rich: unknown font family %q", s)
}

func (f Families) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Families) UnmarshalText(text []byte) error { return f.SetString(string(text)) }

// Weights are the font weights, in CSS order.
type Weights int32

const (
	Thin Weights = iota
	ExtraLight
	Light
	Normal
	Medium
	SemiBold
	Bold
	ExtraBold
	Black
)

// ToFloat32 converts the weight to its numerical 100x value
func (w Weights) ToFloat32() float32 {
	return float32((w + 1) * 100)
}

// Slants are the font slant styles.
type Slants int32

const (
	// SlantNormal is an upright font.
	SlantNormal Slants = iota

	// Italic is an italic or oblique font.
	Italic
)

// Aligns are the horizontal alignments of lines within a paragraph.
type Aligns int32

const (
	Start Aligns = iota
	Center
	End
	Justify
)

var alignNames = [...]string{"start", "center", "end", "justify"}

func (a Aligns) String() string {
	if a < Start || a > Justify {
		return fmt.Sprintf("Aligns(%d)", int32(a))
	}
	return alignNames[a]
}

// SetString sets the alignment from its name.
func (a *Aligns) SetString(s string) error {
	for i, n := range alignNames {
		if strings.EqualFold(n, s) {
			*a = Aligns(i)
			return nil
		}
	}
	return fmt.Errorf("rich: unknown alignment %q", s)
}

func (a Aligns) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Aligns) UnmarshalText(text []byte) error { return a.SetString(string(text)) }

// AlignFactor returns the fraction of the free space on a line
// that is placed before the line content.
func (a Aligns) AlignFactor() float32 {
	switch a {
	case Center:
		return 0.5
	case End:
		return 1
	}
	return 0
}

// Shadow is a drop shadow drawn under the glyphs.
type Shadow struct {
	Offset math32.Vector2
	Blur   float32
	Color  color.RGBA
}

// IsNil returns true if the shadow would not be visible.
func (sh Shadow) IsNil() bool {
	return sh.Color.A == 0
}

// Background is a decoration box drawn behind a run of text.
type Background struct {
	Fill         color.RGBA
	Stroke       color.RGBA
	StrokeWidth  float32
	CornerRadius float32
	Padding      sides.Floats
}

// IsNil returns true if the background would not be visible.
func (bg Background) IsNil() bool {
	return bg.Fill.A == 0 && (bg.Stroke.A == 0 || bg.StrokeWidth <= 0)
}

// Paragraph has the paragraph level metrics that apply to
// whole lines. The paragraph style of the first rune of a paragraph
// applies to the entire paragraph.
type Paragraph struct {

	// LineSpacing is extra space added between lines.
	LineSpacing float32

	// FirstLineIndent is the indent of the first line of the paragraph.
	FirstLineIndent float32

	// HeadIndent is the indent of lines other than the first.
	HeadIndent float32

	// TailIndent is the trailing edge of lines: a positive value
	// is the distance from the leading edge, a value <= 0 is the
	// distance in from the trailing edge.
	TailIndent float32

	// LineHeightMultiple scales the natural line height, if > 0.
	LineHeightMultiple float32

	// MinLineHeight is the minimum line height, if > 0.
	MinLineHeight float32

	// MaxLineHeight is the maximum line height, if > 0.
	MaxLineHeight float32

	// Spacing is extra space after the paragraph.
	Spacing float32

	// Align is the horizontal alignment of lines.
	Align Aligns
}

// Style is the set of attributes applied to a span of text.
// It is a comparable value type: copying it copies all attributes.
type Style struct {

	// Set has one bit per [Attrs] value that is set in this style.
	Set int64

	Family     Families
	Size       float32
	Weight     Weights
	Slant      Slants
	Color      color.RGBA
	Kerning    float32
	Shadow     Shadow
	Strikeout  bool
	Underline  bool
	Background Background
	Paragraph  Paragraph
}

// NewStyle returns a fully specified default style:
// 12 size normal sans-serif black text.
func NewStyle() Style {
	s := Style{}
	s.SetFamily(SansSerif).SetSize(12).SetWeight(Normal).SetSlant(SlantNormal).SetColor(colors.Black)
	return s
}

// Has returns true if the given attribute is set.
func (s *Style) Has(a Attrs) bool {
	return bitflag.Has(s.Set, a)
}

func (s *Style) mark(a Attrs) *Style {
	bitflag.Set(&s.Set, a)
	return s
}

// Unset clears the given attributes, resetting them to zero.
func (s *Style) Unset(attrs ...Attrs) *Style {
	var z Style
	for _, a := range attrs {
		s.copyAttr(a, &z)
	}
	bitflag.Clear(&s.Set, attrs...)
	return s
}

// SetFamily sets the font family.
func (s *Style) SetFamily(f Families) *Style {
	s.Family = f
	return s.mark(AttrFamily)
}

// SetSize sets the font size, in dots.
func (s *Style) SetSize(sz float32) *Style {
	s.Size = sz
	return s.mark(AttrSize)
}

// SetWeight sets the font weight.
func (s *Style) SetWeight(w Weights) *Style {
	s.Weight = w
	return s.mark(AttrWeight)
}

// SetSlant sets the font slant.
func (s *Style) SetSlant(sl Slants) *Style {
	s.Slant = sl
	return s.mark(AttrSlant)
}

// SetColor sets the text fill color.
func (s *Style) SetColor(c color.RGBA) *Style {
	s.Color = c
	return s.mark(AttrColor)
}

// SetKerning sets the extra space added after each character.
func (s *Style) SetKerning(k float32) *Style {
	s.Kerning = k
	return s.mark(AttrKerning)
}

// SetShadow sets the drop shadow.
func (s *Style) SetShadow(sh Shadow) *Style {
	s.Shadow = sh
	return s.mark(AttrShadow)
}

// SetStrikeout sets the strikeout line.
func (s *Style) SetStrikeout(on bool) *Style {
	s.Strikeout = on
	return s.mark(AttrStrikeout)
}

// SetUnderline sets the underline.
func (s *Style) SetUnderline(on bool) *Style {
	s.Underline = on
	return s.mark(AttrUnderline)
}

// SetBackground sets the background decoration.
func (s *Style) SetBackground(b Background) *Style {
	s.Background = b
	return s.mark(AttrBackground)
}

// SetParagraph sets the paragraph metrics.
func (s *Style) SetParagraph(p Paragraph) *Style {
	s.Paragraph = p
	return s.mark(AttrParagraph)
}

// copyAttr copies the value of one attribute from o, without
// touching the Set bits.
func (s *Style) copyAttr(a Attrs, o *Style) {
	switch a {
	case AttrFamily:
		s.Family = o.Family
	case AttrSize:
		s.Size = o.Size
	case AttrWeight:
		s.Weight = o.Weight
	case AttrSlant:
		s.Slant = o.Slant
	case AttrColor:
		s.Color = o.Color
	case AttrKerning:
		s.Kerning = o.Kerning
	case AttrShadow:
		s.Shadow = o.Shadow
	case AttrStrikeout:
		s.Strikeout = o.Strikeout
	case AttrUnderline:
		s.Underline = o.Underline
	case AttrBackground:
		s.Background = o.Background
	case AttrParagraph:
		s.Paragraph = o.Paragraph
	}
}

// Overlay returns s with every attribute that is set in o
// replaced by the value from o.
func (s Style) Overlay(o Style) Style {
	for a := Attrs(0); a < AttrsN; a++ {
		if o.Has(a) {
			s.copyAttr(a, &o)
			s.mark(a)
		}
	}
	return s
}

// Inherit returns s with every attribute that is not set in s
// taken from base.
func (s Style) Inherit(base Style) Style {
	return base.Overlay(s)
}

// IsZero returns true if no attributes are set.
func (s Style) IsZero() bool {
	return s.Set == 0
}

func (s Style) String() string {
	var b strings.Builder
	for a := Attrs(0); a < AttrsN; a++ {
		if !s.Has(a) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(a.String())
		switch a {
		case AttrFamily:
			b.WriteString("=" + s.Family.String())
		case AttrSize:
			fmt.Fprintf(&b, "=%g", s.Size)
		case AttrWeight:
			fmt.Fprintf(&b, "=%g", s.Weight.ToFloat32())
		case AttrColor:
			b.WriteString("=" + colors.AsHex(s.Color))
		case AttrUnderline:
			fmt.Fprintf(&b, "=%v", s.Underline)
		}
	}
	return b.String()
}
