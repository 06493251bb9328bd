// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapedgt is a [shaped.Shaper] based on go-text/typesetting
// HarfBuzz shaping, with embedded Go and Latin Modern fonts.
// Importing it sets [shaped.NewShaper].
package shapedgt

import (
	"bytes"

	"cogentcore.org/linklabel/base/errors"
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/shaped"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

func init() {
	shaped.NewShaper = func() shaped.Shaper {
		return New()
	}
}

// faceKey identifies one of the embedded faces.
type faceKey struct {
	family rich.Families
	bold   bool
	italic bool
}

// fontData are the embedded font files.
var fontData = map[faceKey][]byte{
	{rich.SansSerif, false, false}: goregular.TTF,
	{rich.SansSerif, true, false}:  gobold.TTF,
	{rich.SansSerif, false, true}:  goitalic.TTF,
	{rich.SansSerif, true, true}:   gobolditalic.TTF,
	{rich.Serif, false, false}:     lmroman10regular.TTF,
	{rich.Serif, true, false}:      lmroman10bold.TTF,
	{rich.Serif, false, true}:      lmroman10italic.TTF,
	{rich.Serif, true, true}:       lmroman10bolditalic.TTF,
	{rich.Monospace, false, false}: gomono.TTF,
	{rich.Monospace, true, false}:  gomonobold.TTF,
	{rich.Monospace, false, true}:  gomonoitalic.TTF,
	{rich.Monospace, true, true}:   gomonobolditalic.TTF,
}

// Shaper is the text shaper, from go-text/shaping.
type Shaper struct {
	shaper   shaping.HarfbuzzShaper
	splitter shaping.Segmenter
	faces    map[faceKey]*font.Face

	// Language is the language used for shaping.
	Language language.Language
}

// New returns a new Shaper. Faces are parsed when first used.
func New() *Shaper {
	sh := &Shaper{faces: map[faceKey]*font.Face{}, Language: language.NewLanguage("en")}
	return sh
}

// StyleToAspect translates the rich.Style to go-text font.Aspect parameters.
func StyleToAspect(sty *rich.Style) font.Aspect {
	as := font.Aspect{Style: font.StyleNormal, Weight: font.WeightNormal, Stretch: font.StretchNormal}
	if sty.Has(rich.AttrSlant) {
		as.Style = font.Style(1 + sty.Slant)
	}
	if sty.Has(rich.AttrWeight) {
		as.Weight = font.Weight(sty.Weight.ToFloat32())
	}
	return as
}

func keyFor(sty *rich.Style) faceKey {
	as := StyleToAspect(sty)
	k := faceKey{bold: as.Weight >= font.WeightSemibold, italic: as.Style == font.StyleItalic}
	if sty.Has(rich.AttrFamily) {
		k.family = sty.Family
	}
	return k
}

// face returns the face for the given key, parsing it if needed.
// Faces that fail to parse fall back to the regular sans-serif face.
func (sh *Shaper) face(k faceKey) *font.Face {
	if f, ok := sh.faces[k]; ok {
		return f
	}
	data, ok := fontData[k]
	if !ok {
		data = fontData[faceKey{bold: k.bold, italic: k.italic}]
	}
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if errors.Log(err) != nil || len(faces) == 0 {
		if k != (faceKey{}) {
			return sh.face(faceKey{})
		}
		return nil
	}
	sh.faces[k] = faces[0]
	return faces[0]
}

// fontmap resolves each rune to the first face that has a glyph for it.
type fontmap []*font.Face

func (fm fontmap) ResolveFace(r rune) *font.Face {
	for _, f := range fm {
		if _, ok := f.NominalGlyph(r); ok {
			return f
		}
	}
	return fm[0]
}

func (sh *Shaper) fontmap(sty *rich.Style) fontmap {
	k := keyFor(sty)
	fm := fontmap{}
	for _, fk := range []faceKey{k, {}, {family: rich.Monospace}, {family: rich.Serif}} {
		if f := sh.face(fk); f != nil {
			fm = append(fm, f)
		}
	}
	return fm
}

func (sh *Shaper) Advances(r []rune, sty *rich.Style) []float32 {
	adv := make([]float32, len(r))
	fm := sh.fontmap(sty)
	if len(r) == 0 || len(fm) == 0 {
		return adv
	}
	in := shaping.Input{
		Text:      r,
		RunStart:  0,
		RunEnd:    len(r),
		Direction: di.DirectionLTR,
		Size:      math32.ToFixed(shaped.FontSize(sty)),
		Script:    language.Latin,
		Language:  sh.Language,
	}
	for _, sin := range sh.splitter.Split(in, fm) {
		if sin.Face == nil {
			continue
		}
		out := sh.shaper.Shape(sin)
		for gi := range out.Glyphs {
			g := &out.Glyphs[gi]
			if g.ClusterIndex >= 0 && g.ClusterIndex < len(adv) {
				adv[g.ClusterIndex] += math32.FromFixed(g.XAdvance)
			}
		}
	}
	return adv
}

func (sh *Shaper) Metrics(sty *rich.Style) shaped.Metrics {
	sz := shaped.FontSize(sty)
	f := sh.face(keyFor(sty))
	if f == nil {
		return shaped.Metrics{Ascent: 0.8 * sz, Descent: 0.2 * sz}
	}
	ext, ok := f.FontHExtents()
	if !ok || f.Upem() == 0 {
		return shaped.Metrics{Ascent: 0.8 * sz, Descent: 0.2 * sz}
	}
	scale := sz / float32(f.Upem())
	return shaped.Metrics{Ascent: ext.Ascender * scale, Descent: -ext.Descender * scale}
}
