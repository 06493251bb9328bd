// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package links

import (
	"net/url"
	"time"

	"cogentcore.org/linklabel/base/errors"
	"github.com/jinzhu/copier"
)

// Component keys for [Address] and [Transit] payloads.
const (
	KeyStreet  = "street"
	KeyCity    = "city"
	KeyState   = "state"
	KeyZip     = "zip"
	KeyCountry = "country"
	KeyAirline = "airline"
	KeyFlight  = "flight"
)

// Payload is the type specific data of a link. Which fields are
// meaningful depends on the [MatchType] of the link:
//   - URL: URL
//   - PhoneNumber: Phone
//   - Address, Transit: Components
//   - Date: Date and TimeZone
//   - DateWithDuration: Date, TimeZone and Duration
//   - Custom: Custom
type Payload struct {
	URL        *url.URL
	Phone      string
	Components map[string]string
	Date       time.Time
	TimeZone   *time.Location
	Duration   time.Duration
	Custom     any
}

// Clone returns a copy of the payload that shares no mutable
// state with p. The opaque Custom value is shared.
func (p Payload) Clone() Payload {
	np := p
	if p.URL != nil {
		u := *p.URL
		np.URL = &u
	}
	if p.Components != nil {
		np.Components = make(map[string]string, len(p.Components))
		errors.Log(copier.CopyWithOption(&np.Components, &p.Components, copier.Option{DeepCopy: true}))
	}
	return np
}

// String returns a short text form of the payload.
func (p Payload) String() string {
	switch {
	case p.URL != nil:
		return p.URL.String()
	case p.Phone != "":
		return p.Phone
	case !p.Date.IsZero():
		s := p.Date.Format(time.RFC3339)
		if p.Duration > 0 {
			s += " +" + p.Duration.String()
		}
		return s
	}
	return ""
}
