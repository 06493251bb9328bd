// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the linklabel tool.
package cmd

import (
	"fmt"
	"strings"

	"cogentcore.org/linklabel/base/logx"
	"cogentcore.org/linklabel/events"
	"cogentcore.org/linklabel/label"
	"cogentcore.org/linklabel/math32"
	"cogentcore.org/linklabel/text/htmltext"
	"cogentcore.org/linklabel/text/links"
	"cogentcore.org/linklabel/text/mdtext"
	"cogentcore.org/linklabel/text/rich"
	"cogentcore.org/linklabel/text/shaped"
	"cogentcore.org/linklabel/text/shaped/shapedgt"
	"cogentcore.org/linklabel/text/shaped/shapedmono"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// Options are the flags shared by all commands.
type Options struct {

	// Config is the path of a TOML or YAML config file.
	Config string

	// Width is the width of the label in terminal cells,
	// or 0 to estimate it from the text.
	Width int

	// Lines is the maximum number of lines, overriding the config if set.
	Lines int

	// Break is the line break mode, overriding the config if set.
	Break string

	// HTML reads the text as HTML.
	HTML bool

	// Markdown reads the text as markdown.
	Markdown bool

	// Shaper is the text shaper: mono for terminal cells, or gt for
	// the embedded fonts.
	Shaper string

	// Profile is the terminal color profile: ascii, ansi, ansi256,
	// truecolor, or empty to detect it.
	Profile string

	logx.Verbosity
}

// maxEstimatedWidth is the widest label, in cells, when the width
// is estimated from the text.
const maxEstimatedWidth = 80

// NewRoot returns the root command with all of the subcommands.
func NewRoot() *cobra.Command {
	o := &Options{}
	root := &cobra.Command{
		Use:          "linklabel",
		Short:        "Lay out text with tappable links",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel.Set(o.Level())
			logx.SetDefaultLogger()
			if o.HTML && o.Markdown {
				return fmt.Errorf("--html and --md cannot be used together")
			}
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&o.Config, "config", "c", "", "config file (.toml or .yaml)")
	pf.IntVarP(&o.Width, "width", "w", 0, "label width in cells (0 estimates it)")
	pf.IntVarP(&o.Lines, "lines", "n", 0, "maximum number of lines")
	pf.StringVar(&o.Break, "break", "", "line break mode: word-wrap, char-wrap, clip, truncate-head, truncate-tail, truncate-middle")
	pf.BoolVar(&o.HTML, "html", false, "read the text as HTML")
	pf.BoolVar(&o.Markdown, "md", false, "read the text as markdown")
	pf.StringVar(&o.Shaper, "shaper", "mono", "text shaper: mono or gt")
	pf.StringVar(&o.Profile, "profile", "", "color profile: ascii, ansi, ansi256 or truecolor")
	o.AddFlags(pf)

	root.AddCommand(newRender(o), newDetect(o), newMeasure(o), newHit(o), newConfig(o))
	return root
}

// loadConfig returns the config from the config file, if any,
// with the flag overrides applied.
func (o *Options) loadConfig(cmd *cobra.Command) (*label.Config, error) {
	cfg := label.DefaultConfig()
	if o.Config != "" {
		var err error
		cfg, err = label.OpenConfig(o.Config)
		if err != nil {
			return nil, err
		}
	}
	pf := cmd.Flags()
	if pf.Changed("lines") {
		cfg.MaxLines = o.Lines
	}
	if pf.Changed("break") {
		if err := cfg.LineBreak.SetString(o.Break); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newShaper returns the shaper selected by the shaper flag.
func (o *Options) newShaper() (shaped.Shaper, error) {
	switch strings.ToLower(o.Shaper) {
	case "", "mono":
		return shapedmono.NewAspect(1), nil
	case "gt":
		return shapedgt.New(), nil
	}
	return nil, fmt.Errorf("unknown shaper %q", o.Shaper)
}

// profile returns the termenv output options for the profile flag.
func (o *Options) profile() ([]termenv.OutputOption, error) {
	switch strings.ToLower(o.Profile) {
	case "":
		return nil, nil
	case "ascii":
		return []termenv.OutputOption{termenv.WithProfile(termenv.Ascii)}, nil
	case "ansi":
		return []termenv.OutputOption{termenv.WithProfile(termenv.ANSI)}, nil
	case "ansi256":
		return []termenv.OutputOption{termenv.WithProfile(termenv.ANSI256)}, nil
	case "truecolor":
		return []termenv.OutputOption{termenv.WithProfile(termenv.TrueColor)}, nil
	}
	return nil, fmt.Errorf("unknown color profile %q", o.Profile)
}

// view is a label together with its terminal cell size.
type view struct {
	*label.Label
	cell math32.Vector2
}

// toCell converts a point in cells to label units, at the cell center.
func (v *view) toCell(col, row float32) math32.Vector2 {
	return math32.Vec2((col+0.5)*v.cell.X, (row+0.5)*v.cell.Y)
}

// newView returns a new label for the given text, laid out at the
// configured width. Timers are scheduled on sched, which can be nil
// for commands that do not handle touches.
func (o *Options) newView(cmd *cobra.Command, text string, sched events.Scheduler) (*view, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	sh, err := o.newShaper()
	if err != nil {
		return nil, err
	}
	lbl := label.New(cfg, sh, sched)
	if err := o.setText(lbl, text); err != nil {
		return nil, err
	}
	base := cfg.BaseStyle()
	m := sh.Metrics(&base)
	v := &view{Label: lbl, cell: math32.Vec2(sh.Advances([]rune{'0'}, &base)[0], m.Height())}

	width := float32(o.Width) * v.cell.X
	if o.Width <= 0 {
		est := shaped.WrapSizeEstimate(lbl.Source().Len(), 4, sh, &base)
		width = min(math32.Ceil(est.X/v.cell.X), maxEstimatedWidth) * v.cell.X
	}
	lbl.Resize(math32.Vec2(width, 0))
	return v, nil
}

// setText sets the label text from the plain, HTML or markdown source,
// adding the links of HTML and markdown anchors.
func (o *Options) setText(lbl *label.Label, text string) error {
	if !o.HTML && !o.Markdown {
		lbl.SetText(text)
		return nil
	}
	base := lbl.Config().BaseStyle()
	var tx rich.Text
	var lks []links.Link
	var err error
	if o.Markdown {
		tx, lks, err = mdtext.MarkdownToRich([]byte(text), base)
	} else {
		tx, lks, err = htmltext.HTMLToRich(strings.NewReader(text), base)
	}
	if err != nil {
		return err
	}
	lbl.SetStyledText(tx)
	for _, lk := range lks {
		if _, err := lbl.AddLink(lk); err != nil {
			return err
		}
	}
	return nil
}
