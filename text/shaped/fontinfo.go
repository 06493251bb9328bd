// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import "cogentcore.org/linklabel/text/rich"

// DefaultFontSize is the font size used for styles that do not
// set [rich.AttrSize].
const DefaultFontSize = 12

// Metrics are the vertical font metrics for a given style,
// in the same units as the advances returned by a [Shaper].
type Metrics struct {

	// Ascent is the distance from the baseline to the top of the line.
	Ascent float32

	// Descent is the distance from the baseline to the bottom
	// of the line, as a positive number.
	Descent float32
}

// Height returns the natural line height of the metrics.
func (m Metrics) Height() float32 {
	return m.Ascent + m.Descent
}

// Max returns the maximum of each metric.
func (m Metrics) Max(o Metrics) Metrics {
	return Metrics{Ascent: max(m.Ascent, o.Ascent), Descent: max(m.Descent, o.Descent)}
}

// FontSize returns the font size of the given style, using
// [DefaultFontSize] when it is not set.
func FontSize(sty *rich.Style) float32 {
	if !sty.Has(rich.AttrSize) || sty.Size <= 0 {
		return DefaultFontSize
	}
	return sty.Size
}
