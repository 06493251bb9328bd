// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package links provides the link model for rich text labels:
// tappable ranges with a semantic type, a payload and per state
// style overlays, along with automatic detection of links in text.
package links

import (
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/textpos"
)

// Kinds are the kinds of link [Event].
type Kinds int32

const (
	// Tap is a touch released over the link before the
	// long press duration.
	Tap Kinds = iota

	// LongPress is a touch held on the link past the long
	// press duration.
	LongPress
)

func (k Kinds) String() string {
	if k == LongPress {
		return "long-press"
	}
	return "tap"
}

// Event is sent to link callbacks when a link is tapped or long pressed.
type Event struct {
	Kind    Kinds
	Type    MatchType
	Payload Payload

	// Point is the touch location, in label coordinates.
	Point math32.Vector2

	// Link is a copy of the link.
	Link Link
}

// Link is a tappable range of text. A Link owns copies of its
// style overlays: changing the label configuration later does
// not affect existing links.
type Link struct {

	// Range is the half-open rune range of the link in the text.
	Range textpos.Range

	// Type is the semantic category of the link.
	Type MatchType

	// Payload is the type specific data.
	Payload Payload

	// Text is the source text of the link, filled in when the
	// link is added to a label.
	Text string

	// Attributes is overlaid on the link text in the normal state.
	Attributes rich.Style

	// ActiveAttributes is overlaid on top of Attributes while
	// the link is pressed.
	ActiveAttributes rich.Style

	// InactiveAttributes is overlaid on top of Attributes while
	// the label is dimmed.
	InactiveAttributes rich.Style

	// AccessibilityValue overrides the text used to describe
	// the link to assistive technology.
	AccessibilityValue string

	// OnTap, if set, is called instead of the label handlers
	// when the link is tapped.
	OnTap func(ev Event)

	// OnLongPress, if set, is called instead of the label handlers
	// when the link is long pressed.
	OnLongPress func(ev Event)
}

// New returns a new link for the given range, type and payload.
func New(r textpos.Range, mt MatchType, p Payload) Link {
	return Link{Range: r, Type: mt, Payload: p}
}

// FromResult returns a new link for a detection [Result].
func FromResult(res Result) Link {
	l := New(res.Range, res.Type, res.Payload)
	l.Text = res.Text
	return l
}

// LinkRange returns the range of the link, for hit testing.
func (l *Link) LinkRange() textpos.Range {
	return l.Range
}

// Clone returns a copy of the link that shares no mutable state.
func (l Link) Clone() Link {
	nl := l
	nl.Payload = l.Payload.Clone()
	return nl
}

// AccessibilityLabel returns the description of the link for
// assistive technology.
func (l *Link) AccessibilityLabel() string {
	if l.AccessibilityValue != "" {
		return l.AccessibilityValue
	}
	return l.Text
}

// StyleFor returns the overlay style for the link in the given state.
func (l *Link) StyleFor(active, dimmed bool) rich.Style {
	s := l.Attributes
	if dimmed {
		s = s.Overlay(l.InactiveAttributes)
	}
	if active {
		s = s.Overlay(l.ActiveAttributes)
	}
	return s
}

// Event returns a new event for the link.
func (l *Link) Event(kind Kinds, pt math32.Vector2) Event {
	return Event{Kind: kind, Type: l.Type, Payload: l.Payload.Clone(), Point: pt, Link: l.Clone()}
}
