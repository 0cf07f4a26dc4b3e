// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"

	"cogentcore.org/animedit/anim"
	"cogentcore.org/animedit/base/errors"
	"cogentcore.org/animedit/timeline"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the timeline layout each time the motion path file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Paths == "" {
				return errors.New("no motion path file given; use --paths")
			}
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			st := timeline.NewState(opts.Target)
			for _, e := range opts.Expand {
				st.SetExpanded(e, true)
			}
			p := anim.NewProvider()
			if err := p.SetTarget(opts.Target); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			p.OnChange(func(d *anim.Data) {
				printFrame(out, st, timeline.Layout(st, &cfg, d))
			})
			w, err := anim.Watch(opts.Paths, p)
			if err != nil {
				return err
			}
			defer w.Close()
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			<-ctx.Done()
			return nil
		},
	}
}
