// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeline

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"cogentcore.org/animedit/anim"
	"github.com/jinzhu/copier"
)

// Zoom limits and wheel sensitivity.
const (
	MinZoom = 0.1
	MaxZoom = 10.0

	// ZoomSensitivity is the relative zoom change per wheel delta unit.
	ZoomSensitivity = 0.001
)

// DragKinds are the kinds of drag operation.
type DragKinds int32

const (
	// NoDrag is the idle state.
	NoDrag DragKinds = iota

	// DragPlayhead is dragging the playhead.
	DragPlayhead

	// DragKeyframe is dragging a keyframe in time.
	DragKeyframe
)

var dragKindsNames = [...]string{"NoDrag", "DragPlayhead", "DragKeyframe"}

func (d DragKinds) String() string {
	if d < NoDrag || int(d) >= len(dragKindsNames) {
		return fmt.Sprintf("DragKinds(%d)", int32(d))
	}
	return dragKindsNames[d]
}

// DragOperation is the current drag state of the timeline.
type DragOperation struct {

	// Kind is the kind of drag, NoDrag when idle.
	Kind DragKinds

	// AnchorX is the pointer x where the drag started.
	AnchorX float64

	// PropertyPath is the row of the dragged keyframe.
	PropertyPath string

	// OriginalTime is the time of the dragged keyframe when the drag started.
	OriginalTime time.Duration

	// SkelKeyID is the source keyframe id of the dragged keyframe.
	SkelKeyID uint64
}

// IsDragging returns whether a drag is in progress.
func (d DragOperation) IsDragging() bool {
	return d.Kind != NoDrag
}

// KeyframeRef locates a keyframe marker by property row and time.
type KeyframeRef struct {

	// PropertyPath is the row of the keyframe.
	PropertyPath string

	// Time is the time of the keyframe.
	Time time.Duration

	// SkelKeyID is the source keyframe id.
	SkelKeyID uint64
}

// State is the mutable state of a timeline view. It has a single
// owner, the [Controller], which is the only writer; rendering reads
// a [State.Clone].
type State struct {

	// Target is the animated target this state was created for.
	Target string

	// CurrentTime is the playhead time.
	CurrentTime time.Duration

	// ZoomLevel scales time to pixels, in [MinZoom, MaxZoom].
	ZoomLevel float64

	// ScrollOffset is the horizontal scroll in pixels.
	ScrollOffset float64

	// SelectedKeyframes are set by the selection owner. Only the
	// first one is the active keyframe.
	SelectedKeyframes []anim.UIKeyframe `copier:"-"`

	// Hovered is the keyframe under the pointer while idle, if any.
	Hovered *KeyframeRef

	// Dragging is the current drag operation.
	Dragging DragOperation

	// Expansions records which properties show their children.
	Expansions map[string]bool `copier:"-"`
}

// NewState returns a new state for the given target at zoom 1.
func NewState(target string) *State {
	return &State{Target: target, ZoomLevel: 1, Expansions: map[string]bool{}}
}

// Clone returns a deep copy of the state, safe to hand to a render stage.
func (s *State) Clone() *State {
	c := &State{}
	if err := copier.CopyWithOption(c, s, copier.Option{DeepCopy: true}); err != nil {
		slog.Error("timeline.State.Clone", "err", err)
	}
	c.SelectedKeyframes = slices.Clone(s.SelectedKeyframes)
	c.Expansions = maps.Clone(s.Expansions)
	return c
}

// IsExpanded returns whether the given property shows its children.
func (s *State) IsExpanded(path string) bool {
	return s.Expansions[path]
}

// SetExpanded sets whether the given property shows its children.
func (s *State) SetExpanded(path string, expanded bool) {
	if s.Expansions == nil {
		s.Expansions = map[string]bool{}
	}
	s.Expansions[path] = expanded
}

// ToggleExpanded flips the expansion of the given property.
func (s *State) ToggleExpanded(path string) {
	s.SetExpanded(path, !s.IsExpanded(path))
}
