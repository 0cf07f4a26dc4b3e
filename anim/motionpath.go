// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"cmp"
	"slices"
	"time"
)

// MotionPath is the full animation of one animatable target
// (for example one skeleton joint): its total duration and the
// ordered sequence of keyframes driving it.
// Motion paths are owned by the external animation store;
// this package only reads them.
type MotionPath struct {

	// Target identifies the animated target.
	Target string

	// Duration is the total duration of the animation.
	Duration time.Duration

	// Keyframes are the keyframes, in time order.
	Keyframes []Keyframe
}

// Keyframe is a timestamped control-point value on a motion path.
type Keyframe struct {

	// ID identifies the keyframe within the animation store.
	ID uint64

	// Time is the time of the keyframe, >= 0.
	Time time.Duration

	// Value is the value at this keyframe.
	Value Value

	// Easing is the interpolation toward the next keyframe.
	// It must not be [NoEasing].
	Easing Easing
}

// Clone returns a copy of the motion path that shares no
// keyframe storage with it.
func (mp *MotionPath) Clone() *MotionPath {
	cp := *mp
	cp.Keyframes = slices.Clone(mp.Keyframes)
	for i := range cp.Keyframes {
		if c, ok := cp.Keyframes[i].Value.(Custom); ok {
			cp.Keyframes[i].Value = slices.Clone(c)
		}
	}
	return &cp
}

// MoveKeyframe sets the time of the keyframe with the given id,
// keeping the keyframes in time order and extending the duration
// if needed. It returns false if there is no such keyframe.
func (mp *MotionPath) MoveKeyframe(id uint64, t time.Duration) bool {
	idx := slices.IndexFunc(mp.Keyframes, func(kf Keyframe) bool { return kf.ID == id })
	if idx < 0 {
		return false
	}
	mp.Keyframes[idx].Time = max(t, 0)
	slices.SortStableFunc(mp.Keyframes, func(a, b Keyframe) int {
		return cmp.Compare(a.Time, b.Time)
	})
	mp.Duration = max(mp.Duration, t)
	return true
}
