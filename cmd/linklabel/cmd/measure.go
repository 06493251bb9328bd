// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/linklabel/math32"
	"github.com/spf13/cobra"
)

func newMeasure(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "measure <text>",
		Short: "Print the size that the text needs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := o.newView(cmd, args[0], nil)
			if err != nil {
				return err
			}
			sz := v.SizeThatFits(math32.Vec2(v.Size().X, 0))
			lines := len(v.Layout().Lines)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "size: %.1f x %.1f\ncells: %g x %g\nlines: %d\n",
				sz.X, sz.Y, math32.Round(sz.X/v.cell.X), math32.Round(sz.Y/v.cell.Y), lines)
			return err
		},
	}
}
