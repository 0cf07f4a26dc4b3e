// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"cogentcore.org/animedit/anim"
	"cogentcore.org/animedit/base/errors"
	"cogentcore.org/animedit/timeline"
)

// store is the authoritative set of motion paths being edited.
// It applies keyframe moves from the timeline and republishes
// the paths to its provider.
type store struct {
	paths    []*anim.MotionPath
	provider *anim.Provider
	out      io.Writer
}

// openStore reads the motion paths of the given options and
// builds the first snapshot for the selected target.
func openStore(opts *options, out io.Writer) (*store, error) {
	if opts.Paths == "" {
		return nil, errors.New("no motion path file given; use --paths")
	}
	paths, err := anim.OpenPaths(opts.Paths)
	if err != nil {
		return nil, err
	}
	s := &store{paths: paths, provider: anim.NewProvider(), out: out}
	if err := s.provider.SetTarget(opts.Target); err != nil {
		return nil, err
	}
	if err := s.provider.Update(paths); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *store) CurrentTimeChanged(t time.Duration) {
	fmt.Fprintf(s.out, "playhead %v\n", t)
}

func (s *store) KeyframeMoved(mv timeline.KeyframeMove) {
	target := s.provider.Target()
	for _, mp := range s.paths {
		if target != "" && mp.Target != target {
			continue
		}
		if !mp.MoveKeyframe(mv.SkelKeyID, mv.NewTime) {
			continue
		}
		fmt.Fprintf(s.out, "move %s keyframe %d %v -> %v\n", mv.PropertyPath, mv.SkelKeyID, mv.OriginalTime, mv.NewTime)
		s.provider.Update(s.paths)
		return
	}
	slog.Warn("animtimeline: moved keyframe not found", "path", mv.PropertyPath, "id", mv.SkelKeyID)
}
