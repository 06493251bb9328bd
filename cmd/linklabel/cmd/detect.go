// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"cogentcore.org/linklabel/base/iox/yamlx"
	"cogentcore.org/linklabel/text/links"
	"github.com/spf13/cobra"
)

// detected is the printed form of a link.
type detected struct {
	Type  links.MatchType `yaml:"type"`
	Start int             `yaml:"start"`
	End   int             `yaml:"end"`
	Text  string          `yaml:"text"`
	Value string          `yaml:"value,omitempty"`
}

func newDetect(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "detect <text>",
		Short: "Print the links in the text as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := o.newView(cmd, args[0], nil)
			if err != nil {
				return err
			}
			lks := v.Links()
			ds := make([]detected, len(lks))
			for i, lk := range lks {
				ds[i] = detected{Type: lk.Type, Start: lk.Range.Start, End: lk.Range.End, Text: lk.Text, Value: lk.Payload.String()}
			}
			return yamlx.Write(ds, cmd.OutOrStdout())
		},
	}
}
