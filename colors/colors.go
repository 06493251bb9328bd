// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing, conversion and blending
// for text styles, using go-colorful for the color math.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Standard colors used as defaults.
var (
	Black       = color.RGBA{0, 0, 0, 255}
	White       = color.RGBA{255, 255, 255, 255}
	Gray        = color.RGBA{128, 128, 128, 255}
	Blue        = color.RGBA{0, 0, 238, 255}
	Transparent = color.RGBA{}
)

// names are the named colors accepted by [FromString].
var names = map[string]color.RGBA{
	"black":       Black,
	"white":       White,
	"gray":        Gray,
	"grey":        Gray,
	"blue":        Blue,
	"red":         {255, 0, 0, 255},
	"green":       {0, 128, 0, 255},
	"yellow":      {255, 255, 0, 255},
	"orange":      {255, 165, 0, 255},
	"purple":      {128, 0, 128, 255},
	"transparent": Transparent,
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromString returns a color value from the given string:
// a color name or a hex value of the form #RGB, #RRGGBB or #RRGGBBAA.
func FromString(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := names[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("colors.FromString: unknown color %q", s)
	}
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: invalid alpha in %q: %w", s, err)
		}
		c, err := FromString(s[:7])
		if err != nil {
			return c, err
		}
		return WithAF32(c, float32(a)/255), nil
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromString: %w", err)
	}
	r, g, b := cf.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string, with an alpha suffix when the color is not opaque.
func AsHex(c color.RGBA) string {
	if c.A == 0 {
		return "#00000000"
	}
	nc := unpremultiply(c)
	cf := colorful.Color{R: float64(nc.R) / 255, G: float64(nc.G) / 255, B: float64(nc.B) / 255}
	if c.A == 255 {
		return cf.Hex()
	}
	return fmt.Sprintf("%s%02x", cf.Hex(), c.A)
}

// WithAF32 returns the given color with the given alpha (0-1),
// premultiplied as [color.RGBA] requires.
func WithAF32(c color.RGBA, a float32) color.RGBA {
	n := unpremultiply(c)
	af := a * 255
	return color.RGBA{
		R: uint8(float32(n.R) * a),
		G: uint8(float32(n.G) * a),
		B: uint8(float32(n.B) * a),
		A: uint8(af),
	}
}

// Blend returns the color that is the given proportion (0-1) of the
// way from a to b, blended in RGB space. Alpha is interpolated linearly.
func Blend(a, b color.RGBA, t float32) color.RGBA {
	ca, _ := colorful.MakeColor(opaque(a))
	cb, _ := colorful.MakeColor(opaque(b))
	r, g, bl := ca.BlendRgb(cb, float64(t)).Clamped().RGB255()
	alpha := float32(a.A) + (float32(b.A)-float32(a.A))*t
	return WithAF32(color.RGBA{r, g, bl, 255}, alpha/255)
}

// Dim returns a desaturated and lightened version of the given color,
// used for text that is shown in an inactive state.
func Dim(c color.RGBA) color.RGBA {
	cf, ok := colorful.MakeColor(opaque(c))
	if !ok {
		return c
	}
	h, ch, l := cf.Hcl()
	d := colorful.Hcl(h, ch*0.2, l+(1-l)*0.4).Clamped()
	r, g, b := d.RGB255()
	return WithAF32(color.RGBA{r, g, b, 255}, float32(c.A)/255)
}

func unpremultiply(c color.RGBA) color.RGBA {
	if c.A == 0 || c.A == 255 {
		return c
	}
	f := 255 / float32(c.A)
	return color.RGBA{uint8(float32(c.R) * f), uint8(float32(c.G) * f), uint8(float32(c.B) * f), c.A}
}

// opaque returns the color with full alpha, for color space math.
func opaque(c color.RGBA) color.RGBA {
	c = unpremultiply(c)
	c.A = 255
	return c
}

// FromStringMust returns the color for the given string,
// panicking on error. It is for use with known constant values.
func FromStringMust(s string) color.RGBA {
	c, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return c
}
