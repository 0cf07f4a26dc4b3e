// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"cogentcore.org/animedit/base/errors"
	"cogentcore.org/animedit/math32"
)

// Names of the top-level property groups.
const (
	PositionGroup = "Position"
	RotationGroup = "Rotation"
)

// ErrMissingEasing is returned by [Build] when a source keyframe has
// no easing. It indicates an upstream data integrity fault.
var ErrMissingEasing = errors.New("keyframe has no easing")

// lastID is the last [UIKeyframe.ID] handed out.
var lastID atomic.Uint64

func nextID() uint64 {
	return lastID.Add(1)
}

// Data is an immutable snapshot of the animation of the selected
// target, in a display-oriented form. It is rebuilt wholesale,
// never patched, whenever the motion paths or the target change.
type Data struct {

	// Paths are the motion paths included in the snapshot.
	Paths []*MotionPath

	// Duration is the maximum duration over Paths, 0 if empty.
	Duration time.Duration

	// Properties is the property display tree.
	Properties *Properties
}

// Build converts the given motion paths into a new [Data] snapshot.
// It always creates the "Position" group with "X", "Y" and "Z" children
// and the childless "Rotation" group. Each position keyframe is
// decomposed into one [UIKeyframe] per axis child, holding only that axis
// component with the other two zeroed. Each rotation keyframe is emitted
// once under "Rotation". Scale and custom keyframes have no display group.
// The paths are copied and never modified; nil paths are skipped.
// Any keyframe without an easing aborts the build with an error
// wrapping [ErrMissingEasing].
func Build(paths []*MotionPath) (*Data, error) {
	ps := &Properties{}
	pos := ps.add(-1, PositionGroup)
	var axes [math32.DimsN]int
	for d := math32.X; d < math32.DimsN; d++ {
		axes[d] = ps.add(pos, d.String())
	}
	rot := ps.add(-1, RotationGroup)

	data := &Data{Properties: ps, Paths: make([]*MotionPath, 0, len(paths))}
	for _, mp := range paths {
		if mp == nil {
			continue
		}
		data.Paths = append(data.Paths, mp.Clone())
		data.Duration = max(data.Duration, mp.Duration)
		for _, kf := range mp.Keyframes {
			if !kf.Easing.IsValid() {
				return nil, fmt.Errorf("anim.Build: target %q keyframe %d at %v: %w", mp.Target, kf.ID, kf.Time, ErrMissingEasing)
			}
			switch v := kf.Value.(type) {
			case Position:
				for d := math32.X; d < math32.DimsN; d++ {
					ps.addKeyframe(axes[d], kf, Position(v.Vector().OnlyDim(d)))
				}
			case Rotation:
				ps.addKeyframe(rot, kf, v)
			case Scale, Custom:
				slog.Debug("anim.Build: keyframe has no display group", "target", mp.Target, "id", kf.ID, "value", v)
			default:
				return nil, fmt.Errorf("anim.Build: target %q keyframe %d has invalid value %T", mp.Target, kf.ID, kf.Value)
			}
		}
	}
	return data, nil
}

// MustBuild is like [Build] but panics on a data integrity fault.
func MustBuild(paths []*MotionPath) *Data {
	return errors.Must1(Build(paths))
}

// BuildForTarget builds a snapshot from only the paths animating the
// given target. An empty target includes all of the paths.
func BuildForTarget(paths []*MotionPath, target string) (*Data, error) {
	if target == "" {
		return Build(paths)
	}
	var sel []*MotionPath
	for _, mp := range paths {
		if mp != nil && mp.Target == target {
			sel = append(sel, mp)
		}
	}
	return Build(sel)
}

func (ps *Properties) addKeyframe(idx int, kf Keyframe, v Value) {
	p := &ps.Nodes[idx]
	p.Keyframes = append(p.Keyframes, UIKeyframe{
		ID:        nextID(),
		SkelKeyID: kf.ID,
		Time:      kf.Time,
		Value:     v,
		Easing:    kf.Easing,
	})
}
