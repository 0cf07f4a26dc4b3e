// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeline

import (
	"time"

	"cogentcore.org/animedit/anim"
)

// testSource is a fixed snapshot.
type testSource struct {
	data *anim.Data
}

func (ts *testSource) Snapshot() *anim.Data { return ts.data }

// testSink records everything it receives.
type testSink struct {
	times []time.Duration
	moves []KeyframeMove
}

func (ts *testSink) CurrentTimeChanged(t time.Duration) { ts.times = append(ts.times, t) }
func (ts *testSink) KeyframeMoved(mv KeyframeMove)      { ts.moves = append(ts.moves, mv) }

// testData has position keyframes at 0s and 1s and
// rotation keyframes at 0.5s and 1s.
func testData() *anim.Data {
	return anim.MustBuild([]*anim.MotionPath{{
		Target:   "hips",
		Duration: 2 * time.Second,
		Keyframes: []anim.Keyframe{
			{ID: 1, Time: 0, Value: anim.Position{X: 0, Y: 0, Z: 0}, Easing: anim.Linear},
			{ID: 2, Time: 500 * time.Millisecond, Value: anim.Rotation{X: 0, Y: 0, Z: 0, W: 1}, Easing: anim.Linear},
			{ID: 3, Time: time.Second, Value: anim.Position{X: 2, Y: 0, Z: 0}, Easing: anim.EaseOut},
			{ID: 4, Time: time.Second, Value: anim.Rotation{X: 0, Y: 1, Z: 0, W: 0}, Easing: anim.Step},
		},
	}})
}

// With the default config and Position collapsed, the Position row is
// centered at y=42 and the Rotation row at y=66; expanded, the rows are
// Position 42, X 66, Y 90, Z 114 and Rotation 138.
const (
	positionY         = 42
	rotationY         = 66
	expandedXY        = 66
	expandedRotationY = 138
)

func newTestController() (*Controller, *testSink) {
	sink := &testSink{}
	return NewController(DefaultConfig(), &testSource{testData()}, sink, "hips"), sink
}
