// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)
	v.SetScalar(8.5)
	assert.Equal(t, Vector2{8.5, 8.5}, v)

	a, b := Vec2(1, 5), Vec2(3, 2)
	assert.Equal(t, Vec2(4, 7), a.Add(b))
	assert.Equal(t, Vec2(-2, 3), a.Sub(b))
	assert.Equal(t, Vec2(2, 10), a.MulScalar(2))
	assert.Equal(t, Vec2(1, 2), a.Min(b))
	assert.Equal(t, Vec2(3, 5), a.Max(b))
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.Equal(t, Vec2(2, 1), Vec2(1.2, 0.5).Ceil())
	assert.Equal(t, Vec2(1, 0), Vec2(1.2, 0.5).Floor())
	assert.True(t, Vector2{}.IsZero())

	assert.Equal(t, Vec2(0, 5), Vec2(-1, 9).Clamp(Vec2(0, 0), Vec2(5, 5)))
}
