// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sides has per-side float values for the insets of a label
// and the padding of a background span.
package sides

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/linklabel/math32"
)

// Floats has a value for each side of a box. It is written as a
// CSS-style list of 1 to 4 numbers, such as "2" or "1 4".
type Floats struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// NewFloats returns the sides given by 0 to 4 values in CSS order:
// one value is used for all sides, two are vertical then horizontal,
// three are top, horizontal, bottom, and four go clockwise from top.
// It panics with more than 4 values.
func NewFloats(vals ...float32) Floats {
	switch len(vals) {
	case 0:
		return Floats{}
	case 1:
		return Floats{vals[0], vals[0], vals[0], vals[0]}
	case 2:
		return Floats{vals[0], vals[1], vals[0], vals[1]}
	case 3:
		return Floats{vals[0], vals[1], vals[2], vals[1]}
	case 4:
		return Floats{vals[0], vals[1], vals[2], vals[3]}
	}
	panic(fmt.Sprintf("sides.NewFloats: %d values", len(vals)))
}

// Pos returns the offset of the content: (Left, Top).
func (sf Floats) Pos() math32.Vector2 {
	return math32.Vec2(sf.Left, sf.Top)
}

// Size returns the space that the sides take up on each axis.
func (sf Floats) Size() math32.Vector2 {
	return math32.Vec2(sf.Left+sf.Right, sf.Top+sf.Bottom)
}

// Inset returns b shrunk by the sides.
func (sf Floats) Inset(b math32.Box2) math32.Box2 {
	return math32.Box2{Min: b.Min.Add(sf.Pos()), Max: b.Max.Sub(math32.Vec2(sf.Right, sf.Bottom))}
}

// Outset returns b grown by the sides.
func (sf Floats) Outset(b math32.Box2) math32.Box2 {
	return math32.Box2{Min: b.Min.Sub(sf.Pos()), Max: b.Max.Add(math32.Vec2(sf.Right, sf.Bottom))}
}

// String returns the shortest CSS-style list for the sides.
func (sf Floats) String() string {
	vals := []float32{sf.Top, sf.Right, sf.Bottom, sf.Left}
	switch {
	case sf.Left != sf.Right:
	case sf.Top != sf.Bottom:
		vals = vals[:3]
	case sf.Top != sf.Right:
		vals = vals[:2]
	default:
		vals = vals[:1]
	}
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return strings.Join(strs, " ")
}

// SetString sets the sides from a list of 1 to 4 numbers,
// separated by spaces or commas.
func (sf *Floats) SetString(str string) error {
	fields := strings.Fields(strings.ReplaceAll(str, ",", " "))
	if len(fields) == 0 || len(fields) > 4 {
		return fmt.Errorf("sides: %q: expected 1 to 4 values, got %d", str, len(fields))
	}
	vals := make([]float32, len(fields))
	for i, fs := range fields {
		v, err := strconv.ParseFloat(fs, 32)
		if err != nil {
			return fmt.Errorf("sides: %q: %w", str, err)
		}
		vals[i] = float32(v)
	}
	*sf = NewFloats(vals...)
	return nil
}

func (sf Floats) MarshalText() ([]byte, error) {
	return []byte(sf.String()), nil
}

func (sf *Floats) UnmarshalText(text []byte) error {
	return sf.SetString(string(text))
}
