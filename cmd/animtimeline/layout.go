// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"cogentcore.org/animedit/anim"
	"cogentcore.org/animedit/timeline"
	"github.com/spf13/cobra"
)

func newLayoutCmd(opts *options) *cobra.Command {
	var (
		current time.Duration
		zoom    float64
		scroll  float64
	)
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the timeline layout of the motion paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			s, err := openStore(opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			st := timeline.NewState(opts.Target)
			st.CurrentTime = current
			st.ZoomLevel = zoom
			st.ScrollOffset = scroll
			for _, e := range opts.Expand {
				st.SetExpanded(e, true)
			}
			printFrame(cmd.OutOrStdout(), st, timeline.Layout(st, &cfg, s.provider.Snapshot()))
			return nil
		},
	}
	cmd.Flags().DurationVar(&current, "time", 0, "playhead time")
	cmd.Flags().Float64Var(&zoom, "zoom", 1, "zoom level")
	cmd.Flags().Float64Var(&scroll, "scroll", 0, "horizontal scroll offset in pixels")
	return cmd
}

// printFrame prints the render facts of the given frame.
func printFrame(w io.Writer, st *timeline.State, f *timeline.Frame) {
	fmt.Fprintf(w, "time %v zoom %.2f scroll %.1f playhead %.1f end %.1f\n", st.CurrentTime, st.ZoomLevel, st.ScrollOffset, f.PlayheadX, f.EndX)
	if len(f.GridLines) > 0 {
		var gl []string
		for _, g := range f.GridLines {
			gl = append(gl, fmt.Sprintf("%v@%.1f", g.Time, g.X))
		}
		fmt.Fprintf(w, "grid %v: %s\n", f.GridStep, strings.Join(gl, " "))
	}
	for _, r := range f.Rows {
		p := r.Property
		mark := " "
		if len(p.Children) > 0 {
			mark = "+"
			if r.Expanded {
				mark = "-"
			}
		}
		fmt.Fprintf(w, "%s%s %s y=%.1f\n", strings.Repeat("  ", p.Depth), mark, p.Name, r.Y)
		for _, m := range f.Markers {
			if m.PropertyPath != p.Path {
				continue
			}
			fmt.Fprintf(w, "%s    %v x=%.1f %v %s%s\n", strings.Repeat("  ", p.Depth), m.Keyframe.Time, m.Pos.X, m.Keyframe.Easing, valueString(m.Keyframe.Value), markerFlags(m))
		}
	}
}

func valueString(v anim.Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func markerFlags(m timeline.Marker) string {
	s := ""
	if m.Selected {
		s += " selected"
	}
	if m.Hovered {
		s += " hovered"
	}
	return s
}
