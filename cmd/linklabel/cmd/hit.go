// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"cogentcore.org/linklabel/events"
	"cogentcore.org/linklabel/text/links"
	"github.com/spf13/cobra"
)

// holdMargin is how much longer than the long press duration
// a held touch lasts.
const holdMargin = 20 * time.Millisecond

func newHit(o *Options) *cobra.Command {
	hold := false
	cmd := &cobra.Command{
		Use:   "hit <text> <column> <row>",
		Short: "Touch the text at a terminal cell and print the link event",
		Long: `Touch the text at the center of the given terminal cell, as a tap,
or as a long press with --hold, and print the resulting link event.
The touch is sent through an event loop, so the long press uses
the real long press duration.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := strconv.ParseFloat(args[1], 32)
			if err != nil {
				return fmt.Errorf("column: %w", err)
			}
			row, err := strconv.ParseFloat(args[2], 32)
			if err != nil {
				return fmt.Errorf("row: %w", err)
			}
			loop := events.NewLoop()
			v, err := o.newView(cmd, args[0], loop)
			if err != nil {
				return err
			}
			pt := v.toCell(float32(col), float32(row))
			out := cmd.OutOrStdout()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			fired := false
			report := func(ev links.Event) {
				fired = true
				fmt.Fprintf(out, "%s %s %q %s\n", ev.Kind, ev.Type, ev.Link.Text, ev.Payload)
			}
			v.OnSelectDefault(report)
			v.OnLongPressDefault(report)
			v.Listen(&loop.Listeners)

			loop.Send(events.NewTouch(events.TouchStart, 1, pt))
			end := func() {
				loop.Send(events.NewTouch(events.TouchEnd, 1, pt))
				loop.Post(cancel)
			}
			if hold {
				loop.AfterFunc(time.Duration(v.Config().Touch.LongPressDuration)+holdMargin, end)
			} else {
				end()
			}
			if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			if !fired {
				_, err = fmt.Fprintf(out, "no link at %s,%s\n", args[1], args[2])
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&hold, "hold", false, "hold the touch for a long press")
	return cmd
}
