// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitflag keeps sets of enum values as bits of an integer,
// where each enum value is the position of its bit. It is used for
// link type sets, style attribute sets, and event flags.
package bitflag

// Ordinal is the constraint for enum types used as bit positions.
// Values must be in [0, 64).
type Ordinal interface {
	~int | ~int32 | ~int64 | ~uint8
}

// Bits is the constraint for the integer types that hold the set.
type Bits interface {
	~int64 | ~uint64
}

// Mask returns the bits for the given flags.
func Mask[B Bits, F Ordinal](flags ...F) B {
	var m B
	for _, f := range flags {
		m |= 1 << uint(f)
	}
	return m
}

// Set adds the flags to bits.
func Set[B Bits, F Ordinal](bits *B, flags ...F) {
	*bits |= Mask[B](flags...)
}

// Clear removes the flags from bits.
func Clear[B Bits, F Ordinal](bits *B, flags ...F) {
	*bits &^= Mask[B](flags...)
}

// Has reports whether flag is in bits.
func Has[B Bits, F Ordinal](bits B, flag F) bool {
	return bits&(1<<uint(flag)) != 0
}

// Each calls fn with each flag in bits below n, in increasing order.
func Each[B Bits, F Ordinal](bits B, n F, fn func(F)) {
	for f := F(0); f < n; f++ {
		if Has(bits, f) {
			fn(f)
		}
	}
}
