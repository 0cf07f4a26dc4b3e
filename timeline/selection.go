// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeline

import (
	"slices"
	"time"

	"cogentcore.org/animedit/anim"
)

// SetSelection sets the selected keyframes. Selection is owned by
// the caller; the timeline only reads it for highlighting and for
// the active keyframe. UI keyframe ids are fresh for each snapshot,
// so the selection must be set again after a rebuild.
func (s *State) SetSelection(kfs ...anim.UIKeyframe) {
	s.SelectedKeyframes = slices.Clone(kfs)
}

// ClearSelection removes all selected keyframes.
func (s *State) ClearSelection() {
	s.SelectedKeyframes = nil
}

// Active returns the keyframe shown in the properties panel,
// which is the first selected keyframe.
func (s *State) Active() (anim.UIKeyframe, bool) {
	if len(s.SelectedKeyframes) == 0 {
		return anim.UIKeyframe{}, false
	}
	return s.SelectedKeyframes[0], true
}

// IsSelected returns whether the given keyframe is selected.
func (s *State) IsSelected(kf anim.UIKeyframe) bool {
	return slices.ContainsFunc(s.SelectedKeyframes, func(sk anim.UIKeyframe) bool {
		return sk.ID == kf.ID
	})
}

// IsHovered returns whether the keyframe at the given
// property row and time is under the pointer.
func (s *State) IsHovered(path string, t time.Duration) bool {
	return s.Hovered != nil && s.Hovered.PropertyPath == path && s.Hovered.Time == t
}
