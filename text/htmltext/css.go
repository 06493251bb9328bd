// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmltext

import (
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/linklabel/base/errors"
	"cogentcore.org/linklabel/colors"
	"cogentcore.org/linklabel/text/rich"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// parseStyle returns the style overlay for the declarations of an
// inline style attribute. Unknown properties and invalid values
// are skipped.
func parseStyle(decl string) rich.Style {
	p := &rich.Props{}
	cp := css.NewParser(parse.NewInputString(decl), true)
	for {
		gt, _, data := cp.Next()
		if gt == css.ErrorGrammar {
			break
		}
		if gt != css.DeclarationGrammar {
			continue
		}
		var vals []string
		for _, t := range cp.Values() {
			if t.TokenType == css.WhitespaceToken {
				continue
			}
			vals = append(vals, string(t.Data))
		}
		setProp(p, strings.ToLower(string(data)), vals)
	}
	s, err := p.Style()
	if err != nil {
		slog.Debug("htmltext: style", "style", decl, "err", err)
		return rich.Style{}
	}
	return s
}

func setProp(p *rich.Props, name string, vals []string) {
	if len(vals) == 0 {
		return
	}
	v := strings.ToLower(strings.Join(vals, ""))
	switch name {
	case "color":
		if c, err := colors.FromString(v); errors.Log(err) == nil {
			h := colors.Hex(c)
			p.Color = &h
		}
	case "background-color", "background":
		if c, err := colors.FromString(v); errors.Log(err) == nil {
			p.Background = &rich.BackgroundProps{Fill: colors.Hex(c)}
		}
	case "font-weight":
		if n, err := strconv.Atoi(v); err == nil {
			v = weightFromNumber(n)
		} else if v == "bolder" {
			v = "bold"
		} else if v == "lighter" {
			v = "light"
		}
		p.Weight = &v
	case "font-style":
		it := v == "italic" || v == "oblique"
		p.Italic = &it
	case "font-family":
		for _, f := range strings.Split(v, ",") {
			var fm rich.Families
			if fm.SetString(strings.Trim(f, `"'`)) == nil {
				name := fm.String()
				p.Family = &name
				break
			}
		}
	case "font-size":
		if sz, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 32); err == nil {
			f := float32(sz)
			p.Size = &f
		}
	case "text-decoration", "text-decoration-line":
		on := true
		for _, d := range vals {
			switch strings.ToLower(d) {
			case "underline":
				p.Underline = &on
			case "line-through":
				p.Strikeout = &on
			case "none":
				off := false
				p.Underline = &off
				p.Strikeout = &off
			}
		}
	}
}

// weightFromNumber returns the weight name for a CSS numeric weight.
func weightFromNumber(n int) string {
	names := []string{"thin", "extra-light", "light", "normal", "medium", "semibold", "bold", "extra-bold", "black"}
	i := min(max(n/100-1, 0), len(names)-1)
	return names[i]
}
