// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeline

import (
	"math"

	"cogentcore.org/animedit/anim"
	"cogentcore.org/animedit/math32"
)

// HitRadius is the distance in pixels within which
// the pointer hits a keyframe marker.
const HitRadius = 6.0

// HitTest returns the keyframe marker within [HitRadius] of the given
// point. Only the rows of top-level properties are considered, in
// order, and within a row the first matching keyframe wins.
func HitTest(st *State, cfg *Config, data *anim.Data, pos math32.Vector2) (KeyframeRef, bool) {
	if data == nil {
		return KeyframeRef{}, false
	}
	for _, p := range data.Properties.TopLevel() {
		y := RowY(p.Path, data.Properties, st.Expansions, cfg)
		if ref, ok := hitRow(p, y, st, cfg, pos); ok {
			return ref, true
		}
	}
	return KeyframeRef{}, false
}

// HitTestVisible is like [HitTest] but considers every visible row,
// including the children of expanded properties.
func HitTestVisible(st *State, cfg *Config, data *anim.Data, pos math32.Vector2) (KeyframeRef, bool) {
	if data == nil {
		return KeyframeRef{}, false
	}
	for _, r := range VisibleRows(data.Properties, st.Expansions, cfg) {
		if ref, ok := hitRow(r.Property, r.Y, st, cfg, pos); ok {
			return ref, true
		}
	}
	return KeyframeRef{}, false
}

func hitRow(p *anim.Property, y float64, st *State, cfg *Config, pos math32.Vector2) (KeyframeRef, bool) {
	py := float64(pos.Y)
	if math.Abs(y-py) > HitRadius {
		return KeyframeRef{}, false
	}
	for _, kf := range p.Keyframes {
		center := math32.Vec2(float32(TimeToX(kf.Time, cfg, st)), float32(y))
		if pos.DistanceTo(center) <= HitRadius {
			return KeyframeRef{PropertyPath: p.Path, Time: kf.Time, SkelKeyID: kf.SkelKeyID}, true
		}
	}
	return KeyframeRef{}, false
}

// InHeader returns whether the given point is within the time header.
func InHeader(cfg *Config, pos math32.Vector2) bool {
	return float64(pos.Y) <= cfg.HeaderHeight
}
