// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box2 is an axis-aligned rectangle given by its minimum (top left)
// and maximum (bottom right) corners. Edges are inclusive, so a
// point on the border of a link rectangle hits it.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns the box from (x0, y0) to (x1, y1).
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns an inverted box that contains nothing, and that
// becomes the other box when expanded by it.
func B2Empty() Box2 {
	return Box2{Vector2Scalar(Infinity), Vector2Scalar(-Infinity)}
}

// IsEmpty reports whether the box is inverted on either axis.
// A box with zero width or height is not empty.
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// ExpandByBox grows b to the union of b and o.
func (b *Box2) ExpandByBox(o Box2) {
	b.Min = b.Min.Min(o.Min)
	b.Max = b.Max.Max(o.Max)
}

// Expand returns the box grown by d on every side.
func (b Box2) Expand(d float32) Box2 {
	return Box2{b.Min.SubScalar(d), b.Max.AddScalar(d)}
}

// Size returns the width and height of the box.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint reports whether p is inside or on the border of the box.
func (b Box2) ContainsPoint(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// DistanceToPoint returns the distance from p to the nearest point
// of the box, which is 0 when p is inside it.
func (b Box2) DistanceToPoint(p Vector2) float32 {
	return p.Clamp(b.Min, b.Max).Sub(p).Length()
}
