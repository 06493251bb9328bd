// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htmltext converts simple inline HTML into [rich.Text]
// and the links of its anchors.
package htmltext

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode"

	"cogentcore.org/linklabel/text/links"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/textpos"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
)

// HTMLToRich translates HTML-styled text into a [rich.Text] using the
// given base style, and returns a URL link for each <a href> element.
// This uses the Go XML decoder in non-strict mode, and all runs of
// white space are collapsed to a single space, as in HTML. See
// [HTMLPreToRich] for preformatted text.
//
// The supported inline elements are b, strong, i, em, u, s, del,
// strike, code, tt, a, span and br, and the style attribute of any
// element. Paragraphs, headings, list items and other block elements
// start on a new line. Other elements are ignored, but their content
// is kept.
func HTMLToRich(r io.Reader, base rich.Style) (rich.Text, []links.Link, error) {
	str, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	str = bytes.Join(bytes.Fields(str), []byte(" "))
	return decode(str, base, false)
}

// HTMLPreToRich is like [HTMLToRich], except that all white space
// is kept as it is, including new lines.
func HTMLPreToRich(r io.Reader, base rich.Style) (rich.Text, []links.Link, error) {
	str, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	return decode(str, base, true)
}

// builder accumulates runes with the current style, merging
// runs of the same style into one span.
type builder struct {
	tx rich.Text
	n  int
}

func (b *builder) add(s rich.Style, r []rune) {
	if len(r) == 0 {
		return
	}
	if k := len(b.tx); k > 0 && b.tx[k-1].Style == s {
		b.tx[k-1].Runes = append(b.tx[k-1].Runes, r...)
	} else {
		b.tx.AddSpan(s, r)
	}
	b.n += len(r)
}

func (b *builder) endsWith(r rune) bool {
	k := len(b.tx)
	if k == 0 {
		return false
	}
	rs := b.tx[k-1].Runes
	return len(rs) > 0 && rs[len(rs)-1] == r
}

// blockTags are the elements that start on a new line.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true, "blockquote": true, "pre": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// anchor is an open <a> element.
type anchor struct {
	depth int
	start int
	url   *url.URL
}

func decode(str []byte, base rich.Style, pre bool) (rich.Text, []links.Link, error) {
	decoder := xml.NewDecoder(bytes.NewReader(str))
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	fstack := []rich.Style{base}
	var b builder
	var lks []links.Link
	var anchors []anchor
	nextIsParaStart := false

	for {
		t, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: html: %v", rich.ErrInvalidInput, err)
		}
		switch se := t.(type) {
		case xml.StartElement:
			fs := fstack[len(fstack)-1]
			nm := strings.ToLower(se.Name.Local)
			setFromTag(&fs, nm)
			if blockTags[nm] {
				if b.n > 0 && !b.endsWith('\n') {
					b.add(fstack[len(fstack)-1], []rune{'\n'})
				}
				nextIsParaStart = true
			}
			switch nm {
			case "a":
				for _, attr := range se.Attr {
					if strings.ToLower(attr.Name.Local) != "href" {
						continue
					}
					if u, err := url.Parse(strings.TrimSpace(attr.Value)); err == nil && attr.Value != "" {
						anchors = append(anchors, anchor{depth: len(fstack), start: b.n, url: u})
					}
				}
			case "br":
				b.add(fs, []rune{'\n'})
				nextIsParaStart = false
			}
			for _, attr := range se.Attr {
				if strings.ToLower(attr.Name.Local) == "style" {
					fs = fs.Overlay(parseStyle(attr.Value))
				}
			}
			fstack = append(fstack, fs)
		case xml.EndElement:
			nm := strings.ToLower(se.Name.Local)
			if len(fstack) > 1 {
				fstack = fstack[:len(fstack)-1]
			}
			if blockTags[nm] {
				nextIsParaStart = true
			}
			if nm == "a" {
				if n := len(anchors); n > 0 && anchors[n-1].depth >= len(fstack) {
					a := anchors[n-1]
					anchors = anchors[:n-1]
					if b.n > a.start {
						l := links.New(textpos.R(a.start, b.n), links.URL, links.Payload{URL: a.url})
						l.Text = string(b.tx.Join()[a.start:b.n])
						lks = append(lks, l)
					}
				}
			}
		case xml.CharData:
			s := norm.NFC.String(string(se))
			if nextIsParaStart && !pre {
				s = strings.TrimLeftFunc(s, unicode.IsSpace)
			}
			if s == "" {
				continue
			}
			nextIsParaStart = false
			b.add(fstack[len(fstack)-1], []rune(s))
		}
	}
	return b.tx, lks, nil
}

// setFromTag sets the styling for the basic inline tags.
func setFromTag(fs *rich.Style, tag string) {
	switch tag {
	case "b", "strong", "h1", "h2", "h3", "h4", "h5", "h6":
		fs.SetWeight(rich.Bold)
	case "i", "em", "var", "cite", "dfn":
		fs.SetSlant(rich.Italic)
	case "u", "ins":
		fs.SetUnderline(true)
	case "s", "del", "strike":
		fs.SetStrikeout(true)
	case "code", "tt", "kbd", "samp":
		fs.SetFamily(rich.Monospace)
	}
}
