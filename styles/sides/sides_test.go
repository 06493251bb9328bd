// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sides

import (
	"testing"

	"cogentcore.org/linklabel/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFloats(t *testing.T) {
	assert.Equal(t, Floats{}, NewFloats())
	assert.Equal(t, Floats{1, 1, 1, 1}, NewFloats(1))
	assert.Equal(t, Floats{1, 2, 1, 2}, NewFloats(1, 2))
	assert.Equal(t, Floats{1, 2, 3, 2}, NewFloats(1, 2, 3))
	assert.Equal(t, Floats{1, 2, 3, 4}, NewFloats(1, 2, 3, 4))
	assert.Panics(t, func() { NewFloats(1, 2, 3, 4, 5) })
}

func TestBoxes(t *testing.T) {
	f := NewFloats(1, 2, 3, 4)
	assert.Equal(t, math32.Vec2(4, 1), f.Pos())
	assert.Equal(t, math32.Vec2(6, 4), f.Size())
	b := math32.B2(0, 0, 100, 50)
	in := f.Inset(b)
	assert.Equal(t, math32.B2(4, 1, 98, 47), in)
	assert.Equal(t, b, f.Outset(in))
}

func TestText(t *testing.T) {
	for _, s := range []string{"5", "1 2", "1 2 3", "1 2 3 4", "0.5 0"} {
		var f Floats
		require.NoError(t, f.UnmarshalText([]byte(s)))
		b, err := f.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, s, string(b))
	}
	var f Floats
	require.NoError(t, f.SetString("1, 2, 3"))
	assert.Equal(t, NewFloats(1, 2, 3), f)
	assert.Error(t, f.SetString("1 2 3 4 5"))
	assert.Error(t, f.SetString(""))
	assert.Error(t, f.SetString("x"))
}
