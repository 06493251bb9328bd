// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitflag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fruit int32

const (
	apple fruit = iota
	pear
	plum
	fruitN
)

type basket int64

func TestFlags(t *testing.T) {
	var b basket
	Set(&b, apple, plum)
	assert.Equal(t, basket(5), b)
	assert.True(t, Has(b, apple))
	assert.False(t, Has(b, pear))
	assert.Equal(t, b, Mask[basket](plum, apple))

	var got []fruit
	Each(b, fruitN, func(f fruit) { got = append(got, f) })
	assert.Equal(t, []fruit{apple, plum}, got)

	Clear(&b, apple, pear)
	assert.Equal(t, Mask[basket](plum), b)
	Clear(&b, plum)
	assert.Zero(t, b)
}
