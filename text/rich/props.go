// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"fmt"
	"strings"

	"cogentcore.org/linklabel/colors"
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/styles/sides"
)

// Props is the serializable form of a [Style], as used in
// configuration files. A nil field is an unset attribute.
type Props struct {
	Family     *string          `toml:"family,omitempty" yaml:"family,omitempty"`
	Size       *float32         `toml:"size,omitempty" yaml:"size,omitempty"`
	Weight     *string          `toml:"weight,omitempty" yaml:"weight,omitempty"`
	Italic     *bool            `toml:"italic,omitempty" yaml:"italic,omitempty"`
	Color      *colors.Hex      `toml:"color,omitempty" yaml:"color,omitempty"`
	Kerning    *float32         `toml:"kerning,omitempty" yaml:"kerning,omitempty"`
	Underline  *bool            `toml:"underline,omitempty" yaml:"underline,omitempty"`
	Strikeout  *bool            `toml:"strikeout,omitempty" yaml:"strikeout,omitempty"`
	Shadow     *ShadowProps     `toml:"shadow,omitempty" yaml:"shadow,omitempty"`
	Background *BackgroundProps `toml:"background,omitempty" yaml:"background,omitempty"`
}

// ShadowProps is the serializable form of a [Shadow].
type ShadowProps struct {
	OffsetX float32    `toml:"offset_x" yaml:"offset_x"`
	OffsetY float32    `toml:"offset_y" yaml:"offset_y"`
	Blur    float32    `toml:"blur" yaml:"blur"`
	Color   colors.Hex `toml:"color" yaml:"color"`
}

// BackgroundProps is the serializable form of a [Background].
type BackgroundProps struct {
	Fill         colors.Hex   `toml:"fill" yaml:"fill"`
	Stroke       colors.Hex   `toml:"stroke" yaml:"stroke"`
	StrokeWidth  float32      `toml:"stroke_width" yaml:"stroke_width"`
	CornerRadius float32      `toml:"corner_radius" yaml:"corner_radius"`
	Padding      sides.Floats `toml:"padding" yaml:"padding"`
}

var weightNames = map[string]Weights{
	"thin": Thin, "extra-light": ExtraLight, "light": Light, "normal": Normal,
	"medium": Medium, "semibold": SemiBold, "bold": Bold, "extra-bold": ExtraBold, "black": Black,
}

var familyNames = map[string]Families{
	"sans-serif": SansSerif, "sans": SansSerif, "serif": Serif, "monospace": Monospace, "mono": Monospace,
}

// Style converts the props to a [Style], returning an error
// for unknown family or weight names.
func (p *Props) Style() (Style, error) {
	s := Style{}
	if p == nil {
		return s, nil
	}
	if p.Family != nil {
		f, ok := familyNames[strings.ToLower(*p.Family)]
		if !ok {
			return s, fmt.Errorf("%w: unknown font family %q", ErrInvalidInput, *p.Family)
		}
		s.SetFamily(f)
	}
	if p.Size != nil {
		s.SetSize(*p.Size)
	}
	if p.Weight != nil {
		w, ok := weightNames[strings.ToLower(*p.Weight)]
		if !ok {
			return s, fmt.Errorf("%w: unknown font weight %q", ErrInvalidInput, *p.Weight)
		}
		s.SetWeight(w)
	}
	if p.Italic != nil {
		sl := SlantNormal
		if *p.Italic {
			sl = Italic
		}
		s.SetSlant(sl)
	}
	if p.Color != nil {
		s.SetColor(p.Color.RGBA())
	}
	if p.Kerning != nil {
		s.SetKerning(*p.Kerning)
	}
	if p.Underline != nil {
		s.SetUnderline(*p.Underline)
	}
	if p.Strikeout != nil {
		s.SetStrikeout(*p.Strikeout)
	}
	if p.Shadow != nil {
		s.SetShadow(Shadow{Offset: math32.Vec2(p.Shadow.OffsetX, p.Shadow.OffsetY), Blur: p.Shadow.Blur, Color: p.Shadow.Color.RGBA()})
	}
	if p.Background != nil {
		b := p.Background
		s.SetBackground(Background{Fill: b.Fill.RGBA(), Stroke: b.Stroke.RGBA(), StrokeWidth: b.StrokeWidth, CornerRadius: b.CornerRadius, Padding: b.Padding})
	}
	return s, nil
}

// PropsFromStyle returns the serializable form of the set attributes
// of the given style. Paragraph metrics are configured separately and
// are not included.
func PropsFromStyle(s Style) *Props {
	p := &Props{}
	if s.Has(AttrFamily) {
		f := s.Family.String()
		p.Family = &f
	}
	if s.Has(AttrSize) {
		sz := s.Size
		p.Size = &sz
	}
	if s.Has(AttrWeight) {
		for n, w := range weightNames {
			if w == s.Weight {
				n := n
				p.Weight = &n
				break
			}
		}
	}
	if s.Has(AttrSlant) {
		it := s.Slant == Italic
		p.Italic = &it
	}
	if s.Has(AttrColor) {
		c := colors.Hex(s.Color)
		p.Color = &c
	}
	if s.Has(AttrKerning) {
		k := s.Kerning
		p.Kerning = &k
	}
	if s.Has(AttrUnderline) {
		u := s.Underline
		p.Underline = &u
	}
	if s.Has(AttrStrikeout) {
		st := s.Strikeout
		p.Strikeout = &st
	}
	if s.Has(AttrShadow) {
		sh := s.Shadow
		p.Shadow = &ShadowProps{OffsetX: sh.Offset.X, OffsetY: sh.Offset.Y, Blur: sh.Blur, Color: colors.Hex(sh.Color)}
	}
	if s.Has(AttrBackground) {
		b := s.Background
		p.Background = &BackgroundProps{Fill: colors.Hex(b.Fill), Stroke: colors.Hex(b.Stroke), StrokeWidth: b.StrokeWidth, CornerRadius: b.CornerRadius, Padding: b.Padding}
	}
	return p
}
