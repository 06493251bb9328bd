// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/linklabel/events"
	"cogentcore.org/linklabel/paint/termpaint"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newRender(o *Options) *cobra.Command {
	watch := false
	cmd := &cobra.Command{
		Use:   "render <text>",
		Short: "Draw the text and its links to the terminal",
		Long: `Draw the text to the terminal, with colors, underlines and
OSC 8 hyperlinks as supported by the terminal.

With --watch, the text is drawn again each time the config file changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := o.newView(cmd, args[0], nil)
			if err != nil {
				return err
			}
			if err := o.render(cmd.OutOrStdout(), v); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			if o.Config == "" {
				return errors.New("--watch needs a config file")
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			return o.watch(ctx, cmd, v)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "draw again when the config file changes")
	return cmd
}

// render draws the label to w.
func (o *Options) render(w io.Writer, v *view) error {
	opts, err := o.profile()
	if err != nil {
		return err
	}
	p := termpaint.New(w, v.cell, opts...)
	if o.Width > 0 {
		p.Width = o.Width
	}
	v.Draw(p)
	return p.Flush()
}

// watch draws the label again each time the config file is written,
// until the context is done. File events are posted to an event loop
// so that the label is only used on one goroutine.
func (o *Options) watch(ctx context.Context, cmd *cobra.Command, v *view) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	path, err := filepath.Abs(o.Config)
	if err != nil {
		return err
	}
	// editors often replace the file, so watch the directory
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	loop := events.NewLoop()
	out := cmd.OutOrStdout()
	reload := func() {
		cfg, err := o.loadConfig(cmd)
		if err != nil {
			slog.Warn("linklabel: config not reloaded", "path", o.Config, "err", err)
			return
		}
		if err := v.SetConfig(cfg); err != nil {
			slog.Warn("linklabel: config not applied", "path", o.Config, "err", err)
			return
		}
		termenv.NewOutput(out).ClearScreen()
		if err := o.render(out, v); err != nil {
			slog.Error("linklabel: render", "err", err)
		}
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					slog.Info("linklabel: config changed", "op", ev.Op.String())
					loop.Post(reload)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("linklabel: watch", "err", err)
			}
		}
	}()
	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s\n", o.Config)
	err = loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
