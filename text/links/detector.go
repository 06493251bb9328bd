// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package links

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"cogentcore.org/linklabel/base/errors"
	"cogentcore.org/linklabel/text/textpos"
	"github.com/dlclark/regexp2"
	"golang.org/x/text/width"
)

// ErrPatternEngineUnavailable is returned by [NewDetector] when a
// custom pattern cannot be compiled.
var ErrPatternEngineUnavailable = errors.New("links: pattern engine unavailable")

// Result is one link found by a [Detector].
type Result struct {
	Range   textpos.Range
	Type    MatchType
	Payload Payload

	// Text is the matched source text.
	Text string
}

// CustomPattern is a caller supplied pattern for [Custom] links.
// Patterns use .NET / Perl regular expression syntax, so lookaround
// and backreferences are available.
type CustomPattern struct {
	Name    string `toml:"name" yaml:"name"`
	Pattern string `toml:"pattern" yaml:"pattern"`
}

// CustomMatch is the payload of a [Custom] link found by a [CustomPattern].
type CustomMatch struct {
	// Name is the name of the pattern that matched.
	Name string

	// Groups are the capture groups of the match, starting with
	// the whole match.
	Groups []string
}

// MatchTimeout bounds the time spent matching each custom pattern.
var MatchTimeout = time.Second

type customMatcher struct {
	name string
	re   *regexp2.Regexp
}

// Detector finds links in plain text for a set of enabled [Types].
// A Detector is immutable after construction and can be reused.
type Detector struct {

	// Types are the enabled categories.
	Types Types

	// Location is the time zone for detected dates that do
	// not specify one. It defaults to UTC.
	Location *time.Location

	custom []customMatcher
}

// NewDetector returns a new [Detector] for the given types and custom
// patterns. Supplying custom patterns enables the [Custom] category.
// It fails with [ErrPatternEngineUnavailable] if a pattern is invalid.
func NewDetector(types Types, custom ...CustomPattern) (*Detector, error) {
	d := &Detector{Types: types, Location: time.UTC}
	for _, cp := range custom {
		re, err := regexp2.Compile(cp.Pattern, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("%w: custom pattern %q: %v", ErrPatternEngineUnavailable, cp.Name, err)
		}
		re.MatchTimeout = MatchTimeout
		d.custom = append(d.custom, customMatcher{name: cp.Name, re: re})
	}
	if len(d.custom) > 0 {
		d.Types |= TypesOf(Custom)
	}
	return d, nil
}

// Detect runs one pass per enabled category over the text, in the
// order URL, phone number, address, date, transit, custom. A match that
// overlaps a match accepted by an earlier pass is dropped. Results are
// sorted by range start, with ranges in rune indexes.
func (d *Detector) Detect(text string) []Result {
	if text == "" || d.Types == 0 {
		return nil
	}
	src := foldWidth(text)
	ix := newRuneIndex(src)
	runes := []rune(text)
	var acc []Result
	add := func(res Result) {
		if res.Range.IsEmpty() {
			return
		}
		for _, a := range acc {
			if a.Range.Overlaps(res.Range) {
				return
			}
		}
		res.Text = string(runes[res.Range.Start:res.Range.End])
		acc = append(acc, res)
	}
	if d.Types.Has(URL) {
		detectURLs(src, ix, add)
	}
	if d.Types.Has(PhoneNumber) {
		detectPhones(src, ix, add)
	}
	if d.Types.Has(Address) {
		detectAddresses(src, ix, add)
	}
	if d.Types.Has(Date) {
		loc := d.Location
		if loc == nil {
			loc = time.UTC
		}
		detectDates(src, ix, loc, add)
	}
	if d.Types.Has(Transit) {
		detectTransit(src, ix, add)
	}
	if d.Types.Has(Custom) {
		for _, cm := range d.custom {
			cm.detect(src, add)
		}
	}
	slices.SortStableFunc(acc, func(a, b Result) int {
		return a.Range.Start - b.Range.Start
	})
	return acc
}

func (cm *customMatcher) detect(src string, add func(Result)) {
	m, err := cm.re.FindStringMatch(src)
	for m != nil && err == nil {
		if m.Length > 0 {
			gs := m.Groups()
			cp := &CustomMatch{Name: cm.name, Groups: make([]string, len(gs))}
			for i, g := range gs {
				cp.Groups[i] = g.String()
			}
			add(Result{Range: textpos.R(m.Index, m.Index+m.Length), Type: Custom, Payload: Payload{Custom: cp}})
		}
		m, err = cm.re.FindNextMatch(m)
	}
	errors.Log(err)
}

// foldWidth maps fullwidth characters such as fullwidth digits to
// their narrow forms, one rune for one rune, so that rune indexes
// into the result are valid for the original text.
func foldWidth(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		p := width.LookupRune(r)
		if p.Kind() == width.EastAsianFullwidth {
			if n := p.Narrow(); n != 0 {
				r = n
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// runeIndex maps byte offsets in a string to rune indexes.
type runeIndex []int

func newRuneIndex(s string) runeIndex {
	ix := make(runeIndex, len(s)+1)
	ri := 0
	for bi := 0; bi < len(s); {
		_, sz := utf8.DecodeRuneInString(s[bi:])
		for k := range sz {
			ix[bi+k] = ri
		}
		bi += sz
		ri++
	}
	ix[len(s)] = ri
	return ix
}

// Range returns the rune range for the given byte offsets.
func (ix runeIndex) Range(start, end int) textpos.Range {
	return textpos.R(ix[start], ix[end])
}

// forEachMatch calls fun with the byte offsets of every
// match and its submatches.
func forEachMatch(re *regexp.Regexp, src string, fun func(m []int)) {
	for _, m := range re.FindAllStringSubmatchIndex(src, -1) {
		fun(m)
	}
}

// group returns submatch i of m in src, or "" if it did not participate.
func group(src string, m []int, i int) string {
	if 2*i+1 >= len(m) || m[2*i] < 0 {
		return ""
	}
	return src[m[2*i]:m[2*i+1]]
}
