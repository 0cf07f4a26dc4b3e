// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command animtimeline loads motion paths and a timeline view
// configuration, and prints the resulting timeline layout. It can
// replay a scripted pointer session against the timeline, applying
// keyframe drags to the motion paths, and watch a motion path file
// for changes.
package main

import (
	"fmt"
	"os"

	"cogentcore.org/animedit/base/logx"
	"cogentcore.org/animedit/timeline"
	"github.com/spf13/cobra"
)

// options are the flags shared by all commands.
type options struct {

	// Config is the timeline configuration TOML file.
	Config string

	// Paths is the motion path YAML file.
	Paths string

	// Target is the animated target to show; empty shows all paths.
	Target string

	// Expand are the properties to show expanded.
	Expand []string

	// verbosity flags
	V, VV, Q bool
}

// config returns the timeline configuration, which is
// [timeline.DefaultConfig] when no file is given.
func (o *options) config() (timeline.Config, error) {
	if o.Config == "" {
		return timeline.DefaultConfig(), nil
	}
	return timeline.OpenConfig(o.Config)
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "animtimeline",
		Short:         "Inspect and edit motion paths through a keyframe timeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(opts.VV, opts.V, opts.Q)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&opts.Config, "config", "c", "", "timeline configuration TOML file (default built-in layout)")
	pf.StringVarP(&opts.Paths, "paths", "p", "", "motion path YAML file")
	pf.StringVarP(&opts.Target, "target", "t", "", "animated target to show (default all)")
	pf.StringSliceVarP(&opts.Expand, "expand", "e", nil, "properties to show expanded")
	pf.BoolVarP(&opts.V, "verbose", "v", false, "print informational log messages")
	pf.BoolVar(&opts.VV, "vv", false, "print debug log messages")
	pf.BoolVarP(&opts.Q, "quiet", "q", false, "print only errors")

	root.AddCommand(newLayoutCmd(opts), newReplayCmd(opts), newWatchCmd(opts), newConfigCmd(opts))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "animtimeline:", err)
		os.Exit(1)
	}
}
