// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package label provides a rich text label with links: styled text
// that is laid out into a box, with links that are detected in the
// text or added explicitly, drawn in normal, active and inactive
// styles, and resolved from touches into tap and long press events.
//
// A Label is not safe for concurrent use: all of its methods, and
// the callbacks it calls, run on the goroutine that owns it, such as
// the one running an [events.Loop].
package label

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"cogentcore.org/linklabel/base/errors"
	"cogentcore.org/linklabel/events"
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/paint"
	"cogentcore.org/linklabel/text/links"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/shaped"
	"cogentcore.org/linklabel/text/textpos"
)

// Label is a rich text label with links. It embeds a [Base], which
// implements [RenderableTextSurface] for the styled text with the
// link styles applied.
type Label struct {
	*Base

	cfg   *Config
	sched events.Scheduler

	// enabled are the link types detected by the next SetText.
	enabled links.Types

	// input is the last text source and transform, kept to
	// compose the text again when the config changes.
	input     any
	transform func(rich.Text) rich.Text

	// source is the composed text without link styles.
	source rich.Text
	links  links.Collection
	dimmed bool

	// scale is the factor applied to the font sizes to fit the text.
	scale float32

	onSelect           map[links.MatchType]func(ev links.Event)
	onSelectDefault    func(ev links.Event)
	onLongPress        map[links.MatchType]func(ev links.Event)
	onLongPressDefault func(ev links.Event)

	touch interaction
}

// New returns a new empty label. A nil config uses [DefaultConfig],
// and a nil shaper uses [shaped.NewShaper]. Long press timers are
// scheduled with sched.
func New(cfg *Config, sh shaped.Shaper, sched events.Scheduler) *Label {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if sh == nil && shaped.NewShaper != nil {
		sh = shaped.NewShaper()
	}
	l := &Label{
		Base:        NewBase(sh),
		cfg:         cfg,
		sched:       sched,
		enabled:     cfg.Links.Types,
		scale:       1,
		onSelect:    map[links.MatchType]func(links.Event){},
		onLongPress: map[links.MatchType]func(links.Event){},
	}
	l.touch.reset()
	l.Base.SetOptions(cfg.Options(math32.Vector2{}))
	return l
}

// Config returns the config of the label, which must not be modified.
func (l *Label) Config() *Config {
	return l.cfg
}

// SetConfig sets a new config, where nil means [DefaultConfig].
// The text is composed again with the new base style, and the layout
// options are updated. Existing links keep their styles, and detection
// is not run again. If the config has invalid link patterns or an
// invalid truncation token style, the label is unchanged.
func (l *Label) SetConfig(cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	l.cfg = cfg
	l.enabled = cfg.Links.Types
	size := l.Size()
	l.Base.SetOptions(cfg.Options(size))
	if l.input != nil {
		tx, err := rich.Compose(l.input, cfg.BaseStyle(), l.transform)
		if err == nil && tx.Len() == l.source.Len() {
			l.source = tx
		}
	}
	l.refresh()
	return nil
}

// SetText sets plain text, detecting links of the enabled types.
func (l *Label) SetText(s string) {
	errors.Log(l.SetTextWith(s, nil))
}

// SetStyledText sets styled text, detecting links of the enabled types.
// Attributes not set in the text come from the config.
func (l *Label) SetStyledText(tx rich.Text) {
	errors.Log(l.SetTextWith(tx, nil))
}

// SetTextWith sets the text from a string, []rune or [rich.Text] source,
// passing the composed text through transform if it is not nil.
// All links are removed, any touch in progress is canceled, and links
// of the enabled types are detected in the new text. An invalid source
// returns [rich.ErrInvalidInput] and leaves the label unchanged.
func (l *Label) SetTextWith(source any, transform func(rich.Text) rich.Text) error {
	tx, err := rich.Compose(source, l.cfg.BaseStyle(), transform)
	if err != nil {
		return err
	}
	l.cancelTouch()
	l.input, l.transform = source, transform
	l.source = tx
	l.links.RemoveAll()
	l.detect()
	l.refresh()
	return nil
}

// detect adds links for the enabled types found in the source text.
func (l *Label) detect() {
	if l.enabled == 0 || l.source.Len() == 0 {
		return
	}
	d, err := l.cfg.Detector(l.enabled)
	if errors.Log(err) != nil {
		return
	}
	for _, res := range d.Detect(l.source.String()) {
		errors.Log1(l.addLink(links.FromResult(res)))
	}
}

// Source returns the composed text without link styles.
func (l *Label) Source() rich.Text {
	return l.source
}

// SetEnabledTypes sets the link types that are detected. It does not
// change the links of the current text: the new types are used the
// next time the text is set.
func (l *Label) SetEnabledTypes(t links.Types) {
	l.enabled = t
}

// EnabledTypes returns the link types that are detected.
func (l *Label) EnabledTypes() links.Types {
	return l.enabled
}

// SetDimmed sets whether the label is dimmed, which draws links
// with their inactive styles.
func (l *Label) SetDimmed(dimmed bool) {
	if l.dimmed == dimmed {
		return
	}
	l.dimmed = dimmed
	l.refresh()
}

// Dimmed returns whether the label is dimmed.
func (l *Label) Dimmed() bool {
	return l.dimmed
}

// refresh applies the link styles to the source text for the current
// state, which invalidates the layout.
func (l *Label) refresh() {
	tx, scale := fit(l.Shaper, l.styled(), l.cfg, l.cfg.MaxLines, l.Size().X)
	l.scale = scale
	l.Base.SetText(tx)
	ts := make([]paint.Target, l.links.Len())
	for i := range ts {
		lk := l.links.At(i)
		ts[i].Range = lk.Range
		if lk.Type == links.URL && lk.Payload.URL != nil {
			ts[i].URL = lk.Payload.URL.String()
		}
	}
	l.Base.SetTargets(ts)
}

// styled returns the source text with the link styles of the current state.
func (l *Label) styled() rich.Text {
	active := -1
	if l.touch.state == pressed || l.touch.state == longPressed {
		active = l.touch.link
	}
	return l.links.Apply(l.source, active, l.dimmed)
}

// Resize sets the size of the label. If the config shrinks text to
// fit, the text is fitted again to the new width.
func (l *Label) Resize(size math32.Vector2) {
	if size == l.Size() {
		return
	}
	l.Base.Resize(size)
	if l.cfg.shrinks(l.cfg.MaxLines) {
		l.refresh()
	}
}

// ScaleFactor returns the factor by which the font sizes are scaled
// down to fit the text on one line, or 1 if they are not.
func (l *Label) ScaleFactor() float32 {
	return l.scale
}

// AddLink adds a link to the text. The link gets the default link styles
// of the config unless it sets any styles itself. A link with the same
// range and type as an existing link replaces it. A link outside of the
// text returns [links.ErrRangeOutOfBounds]. The returned link is valid
// until the links next change.
func (l *Label) AddLink(lk links.Link) (*links.Link, error) {
	nl, err := l.addLink(lk)
	if err != nil {
		return nil, err
	}
	l.refresh()
	return nl, nil
}

func (l *Label) addLink(lk links.Link) (*links.Link, error) {
	if lk.Attributes.IsZero() && lk.ActiveAttributes.IsZero() && lk.InactiveAttributes.IsZero() {
		lk.Attributes, lk.ActiveAttributes, lk.InactiveAttributes = l.cfg.LinkStyles()
	}
	if lk.Text == "" && lk.Range.InBounds(l.source.Len()) {
		lk.Text = l.source.Slice(lk.Range).String()
	}
	replaced := l.links.Index(lk.Range, lk.Type)
	nl, err := l.links.Add(lk, l.source.Len())
	if err != nil {
		return nil, err
	}
	l.touch.linkReplaced(replaced, l.links.Len()-1)
	return nl, nil
}

// AddResult adds a link for a detection result.
func (l *Label) AddResult(res links.Result) (*links.Link, error) {
	return l.AddLink(links.FromResult(res))
}

// AddURL adds a link to a URL.
func (l *Label) AddURL(u *url.URL, r textpos.Range) (*links.Link, error) {
	return l.AddLink(links.New(r, links.URL, links.Payload{URL: u}))
}

// AddPhone adds a link to a phone number.
func (l *Label) AddPhone(phone string, r textpos.Range) (*links.Link, error) {
	return l.AddLink(links.New(r, links.PhoneNumber, links.Payload{Phone: phone}))
}

// AddAddress adds a link to a postal address with the given components,
// keyed by [links.KeyStreet] etc.
func (l *Label) AddAddress(components map[string]string, r textpos.Range) (*links.Link, error) {
	return l.AddLink(links.New(r, links.Address, links.Payload{Components: components}))
}

// AddDate adds a link to a date.
func (l *Label) AddDate(t time.Time, r textpos.Range) (*links.Link, error) {
	return l.AddLink(links.New(r, links.Date, links.Payload{Date: t, TimeZone: t.Location()}))
}

// AddDateWithZone adds a link to a date in the given time zone with
// the given duration. A positive duration makes a [links.DateWithDuration] link.
func (l *Label) AddDateWithZone(t time.Time, tz *time.Location, d time.Duration, r textpos.Range) (*links.Link, error) {
	mt := links.Date
	if d > 0 {
		mt = links.DateWithDuration
	}
	if tz != nil {
		t = t.In(tz)
	}
	return l.AddLink(links.New(r, mt, links.Payload{Date: t, TimeZone: tz, Duration: d}))
}

// AddTransit adds a link to transit information with the given
// components, keyed by [links.KeyAirline] and [links.KeyFlight].
func (l *Label) AddTransit(components map[string]string, r textpos.Range) (*links.Link, error) {
	return l.AddLink(links.New(r, links.Transit, links.Payload{Components: components}))
}

// RemoveAllLinks removes all links, and cancels any touch in progress.
func (l *Label) RemoveAllLinks() {
	l.cancelTouch()
	l.links.RemoveAll()
	l.refresh()
}

// Links returns copies of the links, in the order they were added.
func (l *Label) Links() []links.Link {
	return l.links.Links()
}

// OnSelect sets the handler for taps on links of the given type,
// used for links that do not have their own OnTap.
func (l *Label) OnSelect(mt links.MatchType, fn func(ev links.Event)) {
	l.onSelect[mt] = fn
}

// OnSelectDefault sets the handler for taps on links that have
// no OnTap and no type handler.
func (l *Label) OnSelectDefault(fn func(ev links.Event)) {
	l.onSelectDefault = fn
}

// OnLongPress sets the handler for long presses on links of the
// given type, used for links that do not have their own OnLongPress.
func (l *Label) OnLongPress(mt links.MatchType, fn func(ev links.Event)) {
	l.onLongPress[mt] = fn
}

// OnLongPressDefault sets the handler for long presses on links
// that have no OnLongPress and no type handler.
func (l *Label) OnLongPressDefault(fn func(ev links.Event)) {
	l.onLongPressDefault = fn
}

// linkIndexAt returns the index of the link at the given point,
// using the touch tolerance, or -1.
func (l *Label) linkIndexAt(pt math32.Vector2, tolerance float32) int {
	if l.links.Len() == 0 {
		return -1
	}
	return l.Layout().LinkAt(pt, shaped.Ranges(l.links.Links()), tolerance)
}

// LinkAt returns the link at the given point, in label coordinates,
// using the touch tolerance of the config.
func (l *Label) LinkAt(pt math32.Vector2) (*links.Link, bool) {
	i := l.linkIndexAt(pt, l.cfg.tolerance())
	if i < 0 {
		return nil, false
	}
	return l.links.At(i), true
}

// SizeThatFits returns the size needed for the text within the given
// size, where 0 means no limit. It does not change the label.
func (l *Label) SizeThatFits(size math32.Vector2) math32.Vector2 {
	if !l.cfg.shrinks(l.cfg.MaxLines) {
		return l.Base.Measure(size)
	}
	tx, _ := fit(l.Shaper, l.styled(), l.cfg, l.cfg.MaxLines, size.X)
	return shaped.Measure(l.Shaper, tx, size, l.cfg.MaxLines, l.Base.Options())
}

// Measure returns the size needed for the given text with the given
// config, within maxSize and maxLines, without making a label.
// With one line, the text is shrunk to fit as configured.
func Measure(sh shaped.Shaper, tx rich.Text, cfg *Config, maxSize math32.Vector2, maxLines int) math32.Vector2 {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	ctx, err := rich.Compose(tx, cfg.BaseStyle(), nil)
	if errors.Log(err) != nil {
		return math32.Vector2{}
	}
	ctx, _ = fit(sh, ctx, cfg, maxLines, maxSize.X)
	return shaped.Measure(sh, ctx, maxSize, maxLines, cfg.Options(maxSize))
}

// fitStep is the amount by which the scale factor is lowered
// on each try when shrinking text to fit.
const fitStep = 0.05

// fit returns tx with its font sizes scaled down in steps until it
// fits on one line within width, but not below the minimum scale
// factor of the config, and the factor used. The text is returned
// unchanged with a factor of 1 if it fits or the config does not
// shrink text.
func fit(sh shaped.Shaper, tx rich.Text, cfg *Config, maxLines int, width float32) (rich.Text, float32) {
	if sh == nil || width <= 0 || tx.Len() == 0 || !cfg.shrinks(maxLines) {
		return tx, 1
	}
	opts := cfg.Options(math32.Vector2{})
	fits := func(t rich.Text) bool {
		return shaped.Measure(sh, t, math32.Vector2{}, 1, opts).X <= width
	}
	if fits(tx) {
		return tx, 1
	}
	lo := cfg.MinimumScaleFactor
	for i := 1; ; i++ {
		f := max(1-fitStep*float32(i), lo)
		st := tx.SetStyleRange(textpos.R(0, tx.Len()), func(s *rich.Style) {
			s.SetSize(shaped.FontSize(s) * f)
		})
		if f == lo || fits(st) {
			return st, f
		}
	}
}

// AccessibilityElement describes one link for assistive technology.
type AccessibilityElement struct {
	// Label is the accessibility value of the link, or its text.
	Label string

	// Type is the type of the link.
	Type links.MatchType

	// Frame is the union of the Rects.
	Frame math32.Box2

	// Rects are the rectangles of the visible link text, one per line.
	Rects []math32.Box2

	// Index is the index of the link.
	Index int
}

// AccessibilityElements returns one element for each link with
// visible text, in order.
func (l *Label) AccessibilityElements() []AccessibilityElement {
	ls := l.Layout()
	var els []AccessibilityElement
	for i := range l.links.Len() {
		lk := l.links.At(i)
		rs := ls.RangeRects(lk.Range)
		if len(rs) == 0 {
			continue
		}
		fr := math32.B2Empty()
		for _, r := range rs {
			fr.ExpandByBox(r)
		}
		els = append(els, AccessibilityElement{Label: lk.AccessibilityLabel(), Type: lk.Type, Frame: fr, Rects: rs, Index: i})
	}
	return els
}

func (l *Label) String() string {
	return fmt.Sprintf("Label{%q, links: %d, size: %v}", l.source.String(), l.links.Len(), l.Size())
}

func (l *Label) logState(msg string, args ...any) {
	slog.Debug("label: "+msg, append([]any{"state", l.touch.state, "link", l.touch.link}, args...)...)
}
