// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package links

import (
	"fmt"
	"strings"

	"cogentcore.org/linklabel/bitflag"
)

// MatchType is the semantic category of a link.
type MatchType int32

const (
	// URL is a web or mail link, with a [net/url.URL] payload.
	URL MatchType = iota

	// PhoneNumber is a telephone number, with the number as payload.
	PhoneNumber

	// Address is a postal address, with a components map payload.
	Address

	// Date is a date or date and time.
	Date

	// DateWithDuration is a date with a duration, such as
	// "March 3, 2025 at 2pm for 2 hours".
	DateWithDuration

	// Transit is transit information such as a flight number,
	// with a components map payload.
	Transit

	// Custom is a link from a caller supplied pattern or an
	// explicitly added link with an opaque payload.
	Custom

	MatchTypesN
)

var matchTypeNames = [...]string{"url", "phone", "address", "date", "date-duration", "transit", "custom"}

func (mt MatchType) String() string {
	if mt >= 0 && mt < MatchTypesN {
		return matchTypeNames[mt]
	}
	return fmt.Sprintf("MatchType(%d)", int32(mt))
}

// SetString sets the match type from its name.
func (mt *MatchType) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range matchTypeNames {
		if n == s {
			*mt = MatchType(i)
			return nil
		}
	}
	return fmt.Errorf("links: unknown match type %q", s)
}

func (mt MatchType) MarshalText() ([]byte, error) {
	return []byte(mt.String()), nil
}

func (mt *MatchType) UnmarshalText(text []byte) error {
	return mt.SetString(string(text))
}

// Types is a bitset of [MatchType] values, used to select
// the categories that a [Detector] runs.
type Types int64

// TypesOf returns the [Types] with the given match types set.
func TypesOf(mts ...MatchType) Types {
	return bitflag.Mask[Types](mts...)
}

// AllTypes has every detectable category set.
var AllTypes = TypesOf(URL, PhoneNumber, Address, Date, Transit)

// Has returns true if the given match type is in the set.
// [DateWithDuration] is selected by [Date].
func (t Types) Has(mt MatchType) bool {
	if mt == DateWithDuration {
		mt = Date
	}
	return bitflag.Has(t, mt)
}

// List returns the match types in the set, in order.
func (t Types) List() []MatchType {
	var mts []MatchType
	bitflag.Each(t, MatchTypesN, func(mt MatchType) { mts = append(mts, mt) })
	return mts
}

func (t Types) String() string {
	var ns []string
	for _, mt := range t.List() {
		ns = append(ns, mt.String())
	}
	return strings.Join(ns, "|")
}

// SetString sets the types from a list of match type names
// separated by '|' or ','. "all" selects [AllTypes] and an
// empty string selects nothing.
func (t *Types) SetString(s string) error {
	var nt Types
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		f = strings.TrimSpace(f)
		if strings.EqualFold(f, "all") {
			nt |= AllTypes
			continue
		}
		var mt MatchType
		if err := mt.SetString(f); err != nil {
			return err
		}
		nt |= TypesOf(mt)
	}
	*t = nt
	return nil
}

func (t Types) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Types) UnmarshalText(text []byte) error {
	return t.SetString(string(text))
}
