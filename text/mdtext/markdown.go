// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdtext converts markdown into [rich.Text] and the links
// it contains.
package mdtext

import (
	"bytes"
	"fmt"

	"cogentcore.org/linklabel/text/htmltext"
	"cogentcore.org/linklabel/text/links"
	"cogentcore.org/linklabel/text/rich"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// WikilinkHandler converts wikilink text to a URL and label text.
// Wikilinks are of the form [[wikilink text]], and only the text
// inside the brackets is passed to the handler. If it returns "", "",
// the next handler is tried.
type WikilinkHandler func(text string) (url string, label string)

// MarkdownToRich converts markdown into a [rich.Text] with the given
// base style, and returns a URL link for each markdown link and
// autolink. The markdown is rendered as HTML and then read with
// [htmltext.HTMLToRich], so raw HTML in the source is kept. Wikilinks
// are resolved by the given handlers, in order.
func MarkdownToRich(src []byte, base rich.Style, wikilinks ...WikilinkHandler) (rich.Text, []links.Link, error) {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	if len(wikilinks) > 0 {
		prev := p.RegisterInline('[', nil)
		p.RegisterInline('[', wikilink(wikilinks, prev))
	}
	doc := markdown.Parse(src, p)
	r := html.NewRenderer(html.RendererOptions{})
	b := markdown.Render(doc, r)
	tx, lks, err := htmltext.HTMLToRich(bytes.NewReader(b), base)
	if err != nil {
		return nil, nil, fmt.Errorf("mdtext: %w", err)
	}
	return tx, lks, nil
}

// wikilink returns an inline parser function for '[' that handles
// wikilinks, and calls fn for everything else.
func wikilink(handlers []WikilinkHandler, fn parser.InlineParser) parser.InlineParser {
	return func(p *parser.Parser, original []byte, offset int) (int, ast.Node) {
		data := original[offset:]
		// minimum: [[X]]
		if len(data) < 5 || data[1] != '[' {
			return fn(p, original, offset)
		}
		end := bytes.Index(data[2:], []byte("]]"))
		if end <= 0 {
			return fn(p, original, offset)
		}
		text := string(data[2 : 2+end])
		url, label := "", ""
		for _, h := range handlers {
			if u, l := h(text); u != "" || l != "" {
				url, label = u, l
				break
			}
		}
		if url == "" && label == "" {
			return fn(p, original, offset)
		}
		link := &ast.Link{Destination: []byte(url)}
		ast.AppendChild(link, &ast.Text{Leaf: ast.Leaf{Literal: []byte(label)}})
		return end + 4, link
	}
}
