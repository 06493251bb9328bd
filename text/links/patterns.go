// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package links

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
)

var (
	urlRe = regexp.MustCompile(`(?i)\b(?:(?:https?|ftp)://[^\s<>"]+|[a-z0-9._%+-]+@[a-z0-9-]+(?:\.[a-z0-9-]+)+|www\.[^\s<>"]+|[a-z0-9][a-z0-9-]*(?:\.[a-z0-9-]+)+(?:/[^\s<>"]*)?)`)

	phoneRe = regexp.MustCompile(`(?:\+\d{1,3}[\s.-]?)?(?:\(\d{3}\)[\s.-]?|\b\d{3}[\s.-])\d{3}[\s.-]\d{4}\b|\b\d{3}-\d{4}\b`)

	addressRe = regexp.MustCompile(`\b(\d{1,5}(?:\s+[A-Z][a-zA-Z]*\.?){1,4}\s+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Court|Ct|Way|Place|Pl|Loop|Terrace|Parkway|Pkwy)\b\.?)(?:,\s*([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*))?(?:,\s*([A-Z]{2})(?:\s+(\d{5}(?:-\d{4})?))?)?`)

	transitRe = regexp.MustCompile(`\b[Ff]light\s+([A-Z]{2}|[A-Z]\d|\d[A-Z])\s?(\d{1,4})\b`)
)

const (
	monthNames     = `(?i:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|June?|July?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`
	timeSuffix     = `(?:,?\s+at\s+(\d{1,2})(?::(\d{2}))?\s*([AaPp]\.?[Mm]\.?)?)?`
	durationSuffix = `(?:\s+for\s+(\d+)\s*(hours?|hrs?|minutes?|mins?|days?))?`
)

var (
	// groups: year, month, day, hour, minute, duration n, duration unit
	isoDateRe = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})(?:[T ](\d{2}):(\d{2}))?` + durationSuffix)

	// groups: month, day, year, hour, minute, ampm, duration n, duration unit
	mdyDateRe = regexp.MustCompile(`\b(` + monthNames + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b` + timeSuffix + durationSuffix)

	// groups: day, month, year, hour, minute, ampm, duration n, duration unit
	dmyDateRe = regexp.MustCompile(`\b(\d{1,2})\s+(` + monthNames + `)\.?,?\s+(\d{4})\b` + timeSuffix + durationSuffix)
)

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

// trailingPunct is trimmed from the end of matched URLs.
const trailingPunct = ".,;:!?'\")]}"

func detectURLs(src string, ix runeIndex, add func(Result)) {
	forEachMatch(urlRe, src, func(m []int) {
		st, ed := m[0], m[1]
		for ed > st && strings.ContainsRune(trailingPunct, rune(src[ed-1])) {
			if src[ed-1] == ')' && strings.Count(src[st:ed], "(") >= strings.Count(src[st:ed], ")") {
				break
			}
			ed--
		}
		u := parseURL(src[st:ed])
		if u == nil {
			return
		}
		add(Result{Range: ix.Range(st, ed), Type: URL, Payload: Payload{URL: u}})
	})
}

// parseURL returns the URL for a matched candidate, or nil if the
// candidate does not have a valid host.
func parseURL(s string) *url.URL {
	ls := strings.ToLower(s)
	switch {
	case strings.Contains(ls, "://"):
		u, err := url.Parse(s)
		if err != nil || u.Host == "" {
			return nil
		}
		return u
	case strings.Contains(s, "@"):
		at := strings.LastIndex(s, "@")
		if !validHost(s[at+1:]) {
			return nil
		}
		return &url.URL{Scheme: "mailto", Opaque: s}
	}
	u, err := url.Parse("http://" + s)
	if err != nil || !validHost(u.Hostname()) {
		return nil
	}
	return u
}

// validHost returns true if the host ends in a public suffix
// under ICANN management and has a label before it.
func validHost(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "" {
		return false
	}
	suffix, icann := publicsuffix.PublicSuffix(host)
	return icann && suffix != host
}

func detectPhones(src string, ix runeIndex, add func(Result)) {
	forEachMatch(phoneRe, src, func(m []int) {
		add(Result{Range: ix.Range(m[0], m[1]), Type: PhoneNumber, Payload: Payload{Phone: src[m[0]:m[1]]}})
	})
}

func detectAddresses(src string, ix runeIndex, add func(Result)) {
	forEachMatch(addressRe, src, func(m []int) {
		comp := map[string]string{KeyStreet: strings.TrimSuffix(group(src, m, 1), ".")}
		if c := group(src, m, 2); c != "" {
			comp[KeyCity] = c
		}
		if s := group(src, m, 3); s != "" {
			comp[KeyState] = s
		}
		if z := group(src, m, 4); z != "" {
			comp[KeyZip] = z
		}
		add(Result{Range: ix.Range(m[0], m[1]), Type: Address, Payload: Payload{Components: comp}})
	})
}

func detectTransit(src string, ix runeIndex, add func(Result)) {
	forEachMatch(transitRe, src, func(m []int) {
		comp := map[string]string{KeyAirline: group(src, m, 1), KeyFlight: group(src, m, 2)}
		add(Result{Range: ix.Range(m[0], m[1]), Type: Transit, Payload: Payload{Components: comp}})
	})
}

func detectDates(src string, ix runeIndex, loc *time.Location, add func(Result)) {
	var found []Result
	emit := func(m []int, y, mo, d, h, mi, ampm, dn, du string) {
		year, _ := strconv.Atoi(y)
		day, _ := strconv.Atoi(d)
		month, ok := parseMonth(mo)
		if !ok {
			return
		}
		hour, minute := 0, 0
		if h != "" {
			hour, _ = strconv.Atoi(h)
			minute, _ = strconv.Atoi(mi)
			ap := strings.ToLower(strings.ReplaceAll(ampm, ".", ""))
			switch {
			case ap == "pm" && hour < 12:
				hour += 12
			case ap == "am" && hour == 12:
				hour = 0
			}
			if hour > 23 || minute > 59 {
				return
			}
		}
		t := time.Date(year, month, day, hour, minute, 0, 0, loc)
		if t.Day() != day || t.Month() != month {
			return
		}
		p := Payload{Date: t, TimeZone: loc}
		mt := Date
		if dur := parseDuration(dn, du); dur > 0 {
			p.Duration = dur
			mt = DateWithDuration
		}
		found = append(found, Result{Range: ix.Range(m[0], m[1]), Type: mt, Payload: p})
	}
	forEachMatch(isoDateRe, src, func(m []int) {
		g := func(i int) string { return group(src, m, i) }
		emit(m, g(1), g(2), g(3), g(4), g(5), "", g(6), g(7))
	})
	forEachMatch(mdyDateRe, src, func(m []int) {
		g := func(i int) string { return group(src, m, i) }
		emit(m, g(3), g(1), g(2), g(4), g(5), g(6), g(7), g(8))
	})
	forEachMatch(dmyDateRe, src, func(m []int) {
		g := func(i int) string { return group(src, m, i) }
		emit(m, g(3), g(2), g(1), g(4), g(5), g(6), g(7), g(8))
	})
	for _, r := range found {
		add(r)
	}
}

// parseMonth parses a month number or name.
func parseMonth(s string) (time.Month, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, false
		}
		return time.Month(n), true
	}
	if len(s) < 3 {
		return 0, false
	}
	m, ok := monthIndex[strings.ToLower(s[:3])]
	return m, ok
}

func parseDuration(n, unit string) time.Duration {
	if n == "" {
		return 0
	}
	v, err := strconv.Atoi(n)
	if err != nil {
		return 0
	}
	switch {
	case strings.HasPrefix(unit, "h"):
		return time.Duration(v) * time.Hour
	case strings.HasPrefix(unit, "m"):
		return time.Duration(v) * time.Minute
	case strings.HasPrefix(unit, "d"):
		return time.Duration(v) * 24 * time.Hour
	}
	return 0
}
