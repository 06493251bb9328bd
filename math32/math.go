// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 has the float32 geometry used for text layout:
// vectors, boxes, and conversions to and from the 26.6 fixed point
// values that font shaping works in.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/fixed"
)

// Infinity is positive infinity, used as an unconstrained size.
var Infinity = float32(math.Inf(1))

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 { return math32.Ceil(x) }

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 { return math32.Floor(x) }

// Round rounds half away from zero.
func Round(x float32) float32 { return math32.Round(x) }

func Max(x, y float32) float32 { return math32.Max(x, y) }

func Min(x, y float32) float32 { return math32.Min(x, y) }

func Sqrt(x float32) float32 { return math32.Sqrt(x) }

// Hypot returns Sqrt(p*p + q*q) without needless overflow.
func Hypot(p, q float32) float32 { return math32.Hypot(p, q) }

// Clamp limits x to the closed interval [lo, hi].
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

// ToFixed converts x to 26.6 fixed point, rounding to the nearest 1/64.
func ToFixed(x float32) fixed.Int26_6 {
	return fixed.Int26_6(math32.Round(x * 64))
}

// FromFixed converts a 26.6 fixed point value to float32.
func FromFixed(x fixed.Int26_6) float32 {
	return float32(x) / 64
}
