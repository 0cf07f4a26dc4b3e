// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/animedit/anim"
	"cogentcore.org/animedit/base/iox/yamlx"
	"cogentcore.org/animedit/events"
	"cogentcore.org/animedit/math32"
	"cogentcore.org/animedit/timeline"
	"github.com/spf13/cobra"
)

// step is one pointer event of a replay script.
type step struct {

	// Type is one of down, move, drag, up or wheel.
	Type string `yaml:"type"`

	// X and Y are the pointer position in view coordinates.
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`

	// Delta is the vertical wheel delta.
	Delta float32 `yaml:"delta,omitempty"`
}

var stepTypes = map[string]events.Types{
	"down":  events.MouseDown,
	"move":  events.MouseMove,
	"drag":  events.MouseDrag,
	"up":    events.MouseUp,
	"wheel": events.Scroll,
}

// event returns the event for the step. start is the position
// of the last pointer press, used for drag events.
func (s *step) event(start math32.Vector2) (events.Event, error) {
	typ, ok := stepTypes[s.Type]
	if !ok {
		return nil, fmt.Errorf("invalid step type %q; must be down, move, drag, up or wheel", s.Type)
	}
	pos := math32.Vec2(s.X, s.Y)
	switch typ {
	case events.MouseDrag:
		return events.NewMouseDrag(pos, start), nil
	case events.Scroll:
		return events.NewScroll(pos, math32.Vec2(0, s.Delta)), nil
	}
	return events.NewMouse(typ, pos), nil
}

func newReplayCmd(opts *options) *cobra.Command {
	var script, save string
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a scripted pointer session against the timeline",
		Long: `Replay reads a YAML list of pointer steps ({type: down|move|drag|up|wheel, x, y, delta})
and sends them to the timeline controller. Playhead and keyframe moves are
printed as they happen; keyframe moves are applied to the motion paths,
which are written to --save if given. The final layout is printed last.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			var steps []step
			if err := yamlx.Open(&steps, script); err != nil {
				return err
			}
			s, err := openStore(opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			c, err := replay(cfg, s, opts, steps)
			if err != nil {
				return err
			}
			printFrame(cmd.OutOrStdout(), c.State, timeline.Layout(c.State.Clone(), &c.Config, s.provider.Snapshot()))
			if save != "" {
				return anim.SavePaths(s.paths, save)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&script, "script", "s", "", "pointer session YAML file")
	cmd.Flags().StringVarP(&save, "save", "o", "", "file to save the edited motion paths to")
	cmd.MarkFlagRequired("script")
	return cmd
}

// replay sends the given steps to a new controller on the store.
func replay(cfg timeline.Config, s *store, opts *options, steps []step) (*timeline.Controller, error) {
	c := timeline.NewController(cfg, s.provider, s, opts.Target)
	for _, e := range opts.Expand {
		c.State.SetExpanded(e, true)
	}
	ls := &events.Listeners{}
	c.AddListeners(ls)
	var start math32.Vector2
	for i := range steps {
		ev, err := steps[i].event(start)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if ev.Type() == events.MouseDown {
			start = ev.Pos()
		}
		ls.Call(ev)
		slog.Debug("animtimeline: replay", "step", i, "event", ev, "handled", ev.IsHandled(), "drag", c.State.Dragging.Kind)
	}
	return c, nil
}
