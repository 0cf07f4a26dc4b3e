// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeline

import (
	"math"
	"time"

	"cogentcore.org/animedit/anim"
)

// pixelsPerSecond returns the horizontal scale at the current zoom.
func pixelsPerSecond(cfg *Config, st *State) float64 {
	return cfg.PropertyColumnWidth * st.ZoomLevel
}

// TimeToX returns the x position of the given time.
func TimeToX(t time.Duration, cfg *Config, st *State) float64 {
	return t.Seconds()*pixelsPerSecond(cfg, st) - st.ScrollOffset
}

// XToTime returns the time at the given x position. It is the inverse
// of [TimeToX] for results >= 0; positions left of time zero map to 0.
func XToTime(x float64, cfg *Config, st *State) time.Duration {
	pps := pixelsPerSecond(cfg, st)
	if !(pps > 0) {
		return 0
	}
	ns := (x + st.ScrollOffset) / pps * float64(time.Second)
	switch {
	case !(ns > 0):
		return 0
	case ns >= math.MaxInt64:
		return math.MaxInt64
	}
	return time.Duration(math.Round(ns))
}

// RowY returns the vertical center of the row of the property with the
// given path, walking the property tree depth-first and only descending
// into expanded properties. If the property is not visible, it returns
// the accumulated height of all visited rows, without OffsetY.
func RowY(path string, props *anim.Properties, expansions map[string]bool, cfg *Config) float64 {
	y := 0.0
	found := false
	props.Walk(func(p string) bool { return expansions[p] }, func(p *anim.Property) bool {
		if p.Path == path {
			found = true
			return false
		}
		y += cfg.RowHeight
		return true
	})
	if !found {
		return y
	}
	return y + cfg.RowHeight/2 + cfg.OffsetY
}

// Row is one visible property row.
type Row struct {

	// Property is the property shown on the row.
	Property *anim.Property

	// Y is the vertical center of the row.
	Y float64

	// Expanded is whether the row's children are shown.
	Expanded bool
}

// VisibleRows returns the rows shown for the given expansion
// state, in display order, using the same walk as [RowY].
func VisibleRows(props *anim.Properties, expansions map[string]bool, cfg *Config) []Row {
	var rows []Row
	y := 0.0
	props.Walk(func(p string) bool { return expansions[p] }, func(p *anim.Property) bool {
		rows = append(rows, Row{Property: p, Y: y + cfg.RowHeight/2 + cfg.OffsetY, Expanded: expansions[p.Path]})
		y += cfg.RowHeight
		return true
	})
	return rows
}
