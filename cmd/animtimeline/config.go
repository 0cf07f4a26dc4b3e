// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/animedit/base/iox/tomlx"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective timeline configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			if save != "" {
				return tomlx.Save(&cfg, save)
			}
			return tomlx.Write(&cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&save, "save", "o", "", "file to save the configuration to")
	return cmd
}
