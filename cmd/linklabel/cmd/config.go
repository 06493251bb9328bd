// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"cogentcore.org/linklabel/base/iox/tomlx"
	"cogentcore.org/linklabel/base/iox/yamlx"
	"cogentcore.org/linklabel/label"
	"github.com/spf13/cobra"
)

func newConfig(o *Options) *cobra.Command {
	asYAML := false
	save := ""
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective config",
		Long: `Print the effective config: the defaults, overridden by the config
file and then by the flags. With --save, the config is saved to a file
instead, in the format given by its extension.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.loadConfig(cmd)
			if err != nil {
				return err
			}
			if save != "" {
				return label.SaveConfig(cfg, save)
			}
			if asYAML {
				return yamlx.Write(cfg, cmd.OutOrStdout())
			}
			return tomlx.Write(cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print YAML instead of TOML")
	cmd.Flags().StringVar(&save, "save", "", "save the config to this file")
	return cmd
}
