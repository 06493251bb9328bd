// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

// Hex is a [color.RGBA] that marshals to and from text as a hex
// string (or color name), for use in configuration files.
type Hex color.RGBA

// RGBA returns the color as a [color.RGBA].
func (h Hex) RGBA() color.RGBA {
	return color.RGBA(h)
}

// IsNil returns true if the color is fully transparent, which is
// used to mean "unset" in style configuration.
func (h Hex) IsNil() bool {
	return h.A == 0
}

func (h Hex) MarshalText() ([]byte, error) {
	return []byte(AsHex(color.RGBA(h))), nil
}

func (h *Hex) UnmarshalText(text []byte) error {
	c, err := FromString(string(text))
	if err != nil {
		return err
	}
	*h = Hex(c)
	return nil
}
