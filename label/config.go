// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/linklabel/base/errors"
	"cogentcore.org/linklabel/base/iox/tomlx"
	"cogentcore.org/linklabel/base/iox/yamlx"
	"cogentcore.org/linklabel/colors"
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/styles/sides"
	"cogentcore.org/linklabel/text/links"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/shaped"
)

// Duration is a [time.Duration] that is saved as text, such as "500ms".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	td, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(td)
	return nil
}

// Config is the configuration of a [Label]: the base text style,
// the layout options, the link styles and the touch behavior.
// It is the only part of a label that is saved.
type Config struct {

	// Family is the font family of the text.
	Family rich.Families `toml:"family" yaml:"family"`

	// FontSize is the font size of the text.
	FontSize float32 `toml:"font_size" yaml:"font_size"`

	// Color is the color of the text.
	Color colors.Hex `toml:"color" yaml:"color"`

	// Align is the horizontal alignment of lines.
	Align rich.Aligns `toml:"align" yaml:"align"`

	// AlignV is the vertical alignment of the text within the label.
	AlignV shaped.AlignsV `toml:"align_v" yaml:"align_v"`

	// LineBreak is how lines are wrapped or truncated.
	LineBreak shaped.LineBreaks `toml:"line_break" yaml:"line_break"`

	// MaxLines is the maximum number of lines, or 0 for no limit.
	MaxLines int `toml:"max_lines" yaml:"max_lines"`

	// TruncationToken replaces truncated text. It is drawn in the
	// style of the text next to it, with TruncationTokenStyle on top.
	TruncationToken string `toml:"truncation_token" yaml:"truncation_token"`

	// TruncationTokenStyle are the attributes of the truncation token
	// that differ from the text next to it.
	TruncationTokenStyle *rich.Props `toml:"truncation_token_style,omitempty" yaml:"truncation_token_style,omitempty"`

	// MinimumScaleFactor is the smallest factor by which the font sizes
	// are scaled down to fit the text on one line, when MaxLines is 1.
	// Values outside of (0, 1) turn shrinking off.
	MinimumScaleFactor float32 `toml:"minimum_scale_factor" yaml:"minimum_scale_factor"`

	// Kerning is extra space after each glyph.
	Kerning float32 `toml:"kerning" yaml:"kerning"`

	// Shadow is a drop shadow under the text, if its color is set.
	Shadow rich.ShadowProps `toml:"shadow" yaml:"shadow"`

	// LineSpacing is extra space between lines.
	LineSpacing float32 `toml:"line_spacing" yaml:"line_spacing"`

	// LineHeightMultiple scales the natural line height, if > 0.
	LineHeightMultiple float32 `toml:"line_height_multiple" yaml:"line_height_multiple"`

	// FirstLineIndent is the indent of the first line of each paragraph.
	FirstLineIndent float32 `toml:"first_line_indent" yaml:"first_line_indent"`

	// Insets are the space between the edges of the label and the text.
	Insets sides.Floats `toml:"insets" yaml:"insets"`

	// Links configures links.
	Links LinkConfig `toml:"links" yaml:"links"`

	// Touch configures touch handling.
	Touch TouchConfig `toml:"touch" yaml:"touch"`
}

// LinkConfig configures the detection and the default styles of links.
type LinkConfig struct {

	// Types are the categories detected automatically in new text.
	Types links.Types `toml:"types" yaml:"types"`

	// Patterns are extra patterns for custom links.
	Patterns []links.CustomPattern `toml:"patterns" yaml:"patterns"`

	// Color is the text color of links.
	Color colors.Hex `toml:"color" yaml:"color"`

	// Underline underlines links.
	Underline bool `toml:"underline" yaml:"underline"`

	// ActiveColor is the text color of a pressed link.
	ActiveColor colors.Hex `toml:"active_color" yaml:"active_color"`

	// ActiveBackground is the background of a pressed link, if set.
	ActiveBackground colors.Hex `toml:"active_background" yaml:"active_background"`

	// InactiveColor is the text color of links when the label is dimmed.
	// If it is not set, a dimmed version of Color is used.
	InactiveColor colors.Hex `toml:"inactive_color" yaml:"inactive_color"`

	// HighlightedShadow is the shadow of a pressed link, if its color is set.
	HighlightedShadow rich.ShadowProps `toml:"highlighted_shadow" yaml:"highlighted_shadow"`
}

// TouchConfig configures touch handling.
type TouchConfig struct {

	// LongPressDuration is how long a link must be held for a long press.
	LongPressDuration Duration `toml:"long_press_duration" yaml:"long_press_duration"`

	// MovementTolerance is how far a touch can move before it stops
	// being a tap or long press.
	MovementTolerance float32 `toml:"movement_tolerance" yaml:"movement_tolerance"`

	// ExtendsLinkTouchArea makes links hittable from points near them.
	ExtendsLinkTouchArea bool `toml:"extends_link_touch_area" yaml:"extends_link_touch_area"`

	// ExtendedTouchTolerance is how near a point must be to a link
	// when ExtendsLinkTouchArea is set.
	ExtendedTouchTolerance float32 `toml:"extended_touch_tolerance" yaml:"extended_touch_tolerance"`
}

// DefaultConfig returns a new config with default values.
func DefaultConfig() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Defaults sets the default values.
func (c *Config) Defaults() {
	*c = Config{
		Family:          rich.SansSerif,
		FontSize:        shaped.DefaultFontSize,
		Color:           colors.Hex(colors.Black),
		AlignV:          shaped.AlignCenter,
		TruncationToken: shaped.DefaultToken,
		Links: LinkConfig{
			Types:         links.AllTypes,
			Color:         colors.Hex(colors.Blue),
			Underline:     true,
			ActiveColor:   colors.Hex(colors.FromStringMust("red")),
			InactiveColor: colors.Hex(colors.Gray),
		},
		Touch: TouchConfig{
			LongPressDuration:      Duration(500 * time.Millisecond),
			MovementTolerance:      4,
			ExtendsLinkTouchArea:   true,
			ExtendedTouchTolerance: 8,
		},
	}
}

// BaseStyle returns the style applied to text that does not set its own.
func (c *Config) BaseStyle() rich.Style {
	s := rich.NewStyle()
	s.SetFamily(c.Family).SetSize(c.FontSize).SetColor(c.Color.RGBA())
	if c.Kerning != 0 {
		s.SetKerning(c.Kerning)
	}
	if !c.Shadow.Color.IsNil() {
		s.SetShadow(shadow(c.Shadow))
	}
	if c.LineSpacing != 0 || c.LineHeightMultiple != 0 || c.FirstLineIndent != 0 {
		s.SetParagraph(rich.Paragraph{LineSpacing: c.LineSpacing, LineHeightMultiple: c.LineHeightMultiple, FirstLineIndent: c.FirstLineIndent, Align: c.Align})
	}
	return s
}

// LinkStyles returns the default overlays of new links,
// for the normal, active and inactive states.
func (c *Config) LinkStyles() (normal, active, inactive rich.Style) {
	lc := &c.Links
	if !lc.Color.IsNil() {
		normal.SetColor(lc.Color.RGBA())
	}
	if lc.Underline {
		normal.SetUnderline(true)
	}
	if !lc.ActiveColor.IsNil() {
		active.SetColor(lc.ActiveColor.RGBA())
	}
	if !lc.ActiveBackground.IsNil() {
		active.SetBackground(rich.Background{Fill: lc.ActiveBackground.RGBA(), CornerRadius: 2})
	}
	if !lc.HighlightedShadow.Color.IsNil() {
		active.SetShadow(shadow(lc.HighlightedShadow))
	}
	if !lc.InactiveColor.IsNil() {
		inactive.SetColor(lc.InactiveColor.RGBA())
	} else if !lc.Color.IsNil() {
		inactive.SetColor(colors.Dim(lc.Color.RGBA()))
	}
	return
}

// Options returns the layout options for a label of the given size.
func (c *Config) Options(size math32.Vector2) shaped.Options {
	opts := shaped.Options{
		Size:      size,
		MaxLines:  c.MaxLines,
		LineBreak: c.LineBreak,
		Insets:    c.Insets,
		AlignV:    c.AlignV,
		Align:     c.Align,
	}
	ts := errors.Log1(c.TruncationTokenStyle.Style())
	tok := c.TruncationToken
	if tok == "" {
		tok = shaped.DefaultToken
	}
	if tok != shaped.DefaultToken || !ts.IsZero() {
		opts.Token = rich.NewPlain(ts, tok)
	}
	return opts
}

// shrinks returns true if the font sizes are scaled down to fit
// text with the given maximum number of lines.
func (c *Config) shrinks(maxLines int) bool {
	return maxLines == 1 && c.MinimumScaleFactor > 0 && c.MinimumScaleFactor < 1
}

func shadow(sp rich.ShadowProps) rich.Shadow {
	return rich.Shadow{Offset: math32.Vec2(sp.OffsetX, sp.OffsetY), Blur: sp.Blur, Color: sp.Color.RGBA()}
}

// Detector returns a new link detector for the configured
// types and patterns.
func (c *Config) Detector(types links.Types) (*links.Detector, error) {
	return links.NewDetector(types, c.Links.Patterns...)
}

// validate returns an error if the config has invalid link patterns
// or an invalid truncation token style.
func (c *Config) validate() error {
	if _, err := c.Detector(c.Links.Types); err != nil {
		return err
	}
	if _, err := c.TruncationTokenStyle.Style(); err != nil {
		return fmt.Errorf("label: truncation token style: %w", err)
	}
	return nil
}

// tolerance returns the hit test tolerance for touches.
func (c *Config) tolerance() float32 {
	if c.Touch.ExtendsLinkTouchArea {
		return c.Touch.ExtendedTouchTolerance
	}
	return 0
}

// ErrConfigFormat is returned for config files with an unknown extension.
var ErrConfigFormat = errors.New("label: unknown config file format")

func format(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrConfigFormat, ext)
	}
}

// OpenConfig opens a config from a TOML or YAML file, chosen by the
// file extension. Values missing from the file keep their defaults,
// and a missing file gives the default config.
func OpenConfig(path string) (*Config, error) {
	c := DefaultConfig()
	f, err := format(path)
	if err != nil {
		return c, err
	}
	if f == "toml" {
		err = tomlx.Open(c, path)
	} else {
		err = yamlx.Open(c, path)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("label: open config %q: %w", path, err)
	}
	return c, nil
}

// SaveConfig saves the config to a TOML or YAML file, chosen by the
// file extension.
func SaveConfig(c *Config, path string) error {
	f, err := format(path)
	if err != nil {
		return err
	}
	if f == "toml" {
		return tomlx.Save(c, path)
	}
	return yamlx.Save(c, path)
}
