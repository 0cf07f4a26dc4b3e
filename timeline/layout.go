// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeline

import (
	"math"
	"time"

	"cogentcore.org/animedit/anim"
	"cogentcore.org/animedit/math32"
)

// GridSteps are the candidate time steps between grid lines, in seconds.
var GridSteps = []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60}

// Marker is a keyframe marker to draw.
type Marker struct {

	// Keyframe is the displayed keyframe.
	Keyframe anim.UIKeyframe

	// PropertyPath is the row of the keyframe.
	PropertyPath string

	// Pos is the center of the marker in view coordinates.
	Pos math32.Vector2

	// Selected is whether the keyframe is selected.
	Selected bool

	// Hovered is whether the keyframe is under the pointer.
	Hovered bool
}

// GridLine is a vertical time grid line.
type GridLine struct {

	// Time is the time of the line.
	Time time.Duration

	// X is the position of the line in view coordinates.
	X float64
}

// Frame is everything needed to draw a timeline view
// without any further geometry computation.
type Frame struct {

	// Rows are the visible property rows.
	Rows []Row

	// Markers are the visible keyframe markers.
	Markers []Marker

	// PlayheadX is the position of the playhead in view coordinates.
	PlayheadX float64

	// EndX is the position of the end of the animation in view coordinates.
	EndX float64

	// GridStep is the time between grid lines.
	GridStep time.Duration

	// GridLines are the visible time grid lines.
	GridLines []GridLine
}

// Layout computes the frame for the given state and snapshot.
// It does not modify either of them.
func Layout(st *State, cfg *Config, data *anim.Data) *Frame {
	f := &Frame{PlayheadX: TimeToX(st.CurrentTime, cfg, st) + cfg.OffsetX}
	if data == nil {
		return f
	}
	f.EndX = TimeToX(data.Duration, cfg, st) + cfg.OffsetX
	f.Rows = VisibleRows(data.Properties, st.Expansions, cfg)
	for _, r := range f.Rows {
		if r.Y-cfg.RowHeight/2 > cfg.Height {
			break
		}
		for _, kf := range r.Property.Keyframes {
			x := TimeToX(kf.Time, cfg, st)
			if x < -HitRadius || x > cfg.Width+HitRadius {
				continue
			}
			f.Markers = append(f.Markers, Marker{
				Keyframe:     kf,
				PropertyPath: r.Property.Path,
				Pos:          math32.Vec2(float32(x+cfg.OffsetX), float32(r.Y)),
				Selected:     st.IsSelected(kf),
				Hovered:      st.IsHovered(r.Property.Path, kf.Time),
			})
		}
	}
	f.gridLines(st, cfg)
	return f
}

// GridStep returns the smallest of [GridSteps], in seconds, whose
// spacing at the current zoom is at least cfg.MinGridSpacing pixels.
func GridStep(st *State, cfg *Config) float64 {
	pps := pixelsPerSecond(cfg, st)
	for _, s := range GridSteps {
		if s*pps >= cfg.MinGridSpacing {
			return s
		}
	}
	return GridSteps[len(GridSteps)-1]
}

func (f *Frame) gridLines(st *State, cfg *Config) {
	if !(pixelsPerSecond(cfg, st) > 0) {
		return
	}
	step := GridStep(st, cfg)
	f.GridStep = time.Duration(math.Round(step * float64(time.Second)))
	start := XToTime(0, cfg, st).Seconds()
	end := XToTime(cfg.Width, cfg, st).Seconds()
	for k := math.Ceil(start / step); k*step <= end; k++ {
		ns := math.Round(k * step * float64(time.Second))
		if ns >= math.MaxInt64 {
			break
		}
		t := time.Duration(ns)
		x := TimeToX(t, cfg, st)
		if x > cfg.Width {
			break
		}
		f.GridLines = append(f.GridLines, GridLine{Time: t, X: x + cfg.OffsetX})
	}
}
