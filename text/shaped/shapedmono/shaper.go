// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapedmono is a deterministic monospaced [shaped.Shaper],
// where every rune advances by its terminal cell width times a fixed
// fraction of the font size. It is used for terminal rendering and
// for tests that need exact geometry.
package shapedmono

import (
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/shaped"
	"github.com/mattn/go-runewidth"
)

// Shaper is a monospaced shaper based on cell widths.
type Shaper struct {

	// Aspect is the width of one cell as a fraction of the font size.
	Aspect float32

	// Ascent is the ascent as a fraction of the font size.
	Ascent float32

	// Descent is the descent as a fraction of the font size.
	Descent float32

	cond *runewidth.Condition
}

// New returns a new Shaper with standard proportions.
func New() *Shaper {
	return NewAspect(0.6)
}

// NewAspect returns a new Shaper with the given cell aspect ratio.
// An aspect of 1 with a font size of 1 makes every advance equal to
// the number of terminal cells.
func NewAspect(aspect float32) *Shaper {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	return &Shaper{Aspect: aspect, Ascent: 0.8, Descent: 0.2, cond: cond}
}

// Cells returns the number of terminal cells of the rune.
func (sh *Shaper) Cells(r rune) int {
	return sh.cond.RuneWidth(r)
}

func (sh *Shaper) Advances(r []rune, sty *rich.Style) []float32 {
	cell := shaped.FontSize(sty) * sh.Aspect
	adv := make([]float32, len(r))
	for i, c := range r {
		adv[i] = float32(sh.Cells(c)) * cell
	}
	return adv
}

func (sh *Shaper) Metrics(sty *rich.Style) shaped.Metrics {
	sz := shaped.FontSize(sty)
	return shaped.Metrics{Ascent: sh.Ascent * sz, Descent: sh.Descent * sz}
}
