// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeline

import (
	"testing"
	"time"

	"cogentcore.org/animedit/anim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	st := NewState("hips")
	assert.Equal(t, "hips", st.Target)
	assert.Equal(t, 1.0, st.ZoomLevel)
	assert.Equal(t, time.Duration(0), st.CurrentTime)
	assert.False(t, st.Dragging.IsDragging())
	assert.Nil(t, st.Hovered)
	_, ok := st.Active()
	assert.False(t, ok)
}

func TestExpansions(t *testing.T) {
	st := &State{}
	assert.False(t, st.IsExpanded("Position"))
	st.ToggleExpanded("Position")
	assert.True(t, st.IsExpanded("Position"))
	st.ToggleExpanded("Position")
	assert.False(t, st.IsExpanded("Position"))
	st.SetExpanded("Rotation", true)
	assert.True(t, st.IsExpanded("Rotation"))
}

func TestStateClone(t *testing.T) {
	data := testData()
	rot, ok := data.Properties.Lookup("Rotation")
	require.True(t, ok)

	st := NewState("hips")
	st.CurrentTime = 1500 * time.Millisecond
	st.ZoomLevel = 2.5
	st.ScrollOffset = 40
	st.SetExpanded("Position", true)
	st.SetSelection(rot.Keyframes...)
	st.Hovered = &KeyframeRef{PropertyPath: "Rotation", Time: time.Second, SkelKeyID: 4}
	st.Dragging = DragOperation{Kind: DragKeyframe, AnchorX: 200, PropertyPath: "Rotation", OriginalTime: time.Second, SkelKeyID: 4}

	c := st.Clone()
	assert.Equal(t, st.Target, c.Target)
	assert.Equal(t, st.CurrentTime, c.CurrentTime)
	assert.Equal(t, st.ZoomLevel, c.ZoomLevel)
	assert.Equal(t, st.ScrollOffset, c.ScrollOffset)
	assert.Equal(t, st.Dragging, c.Dragging)
	assert.Equal(t, st.SelectedKeyframes, c.SelectedKeyframes)
	require.NotNil(t, c.Hovered)
	assert.Equal(t, *st.Hovered, *c.Hovered)
	assert.True(t, c.IsExpanded("Position"))

	c.SetExpanded("Position", false)
	c.SelectedKeyframes[0].Time = 0
	c.ZoomLevel = 1
	assert.True(t, st.IsExpanded("Position"))
	assert.Equal(t, 500*time.Millisecond, st.SelectedKeyframes[0].Time)
	assert.Equal(t, 2.5, st.ZoomLevel)
}

func TestSelection(t *testing.T) {
	data := testData()
	rot, ok := data.Properties.Lookup("Rotation")
	require.True(t, ok)
	x, ok := data.Properties.Lookup("Position.X")
	require.True(t, ok)

	st := NewState("hips")
	st.SetSelection(rot.Keyframes[1], x.Keyframes[0])
	act, ok := st.Active()
	require.True(t, ok)
	assert.Equal(t, rot.Keyframes[1].ID, act.ID)
	assert.Equal(t, anim.Step, act.Easing)

	assert.True(t, st.IsSelected(rot.Keyframes[1]))
	assert.True(t, st.IsSelected(x.Keyframes[0]))
	assert.False(t, st.IsSelected(rot.Keyframes[0]))

	// a rebuilt snapshot has fresh ids
	again, _ := testData().Properties.Lookup("Rotation")
	assert.False(t, st.IsSelected(again.Keyframes[1]))

	st.ClearSelection()
	_, ok = st.Active()
	assert.False(t, ok)
	assert.False(t, st.IsSelected(rot.Keyframes[1]))
}

func TestIsHovered(t *testing.T) {
	st := NewState("hips")
	assert.False(t, st.IsHovered("Rotation", time.Second))
	st.Hovered = &KeyframeRef{PropertyPath: "Rotation", Time: time.Second}
	assert.True(t, st.IsHovered("Rotation", time.Second))
	assert.False(t, st.IsHovered("Rotation", 500*time.Millisecond))
	assert.False(t, st.IsHovered("Position", time.Second))
}

func TestDragKindsString(t *testing.T) {
	assert.Equal(t, "NoDrag", NoDrag.String())
	assert.Equal(t, "DragKeyframe", DragKeyframe.String())
	assert.Equal(t, "DragKinds(7)", DragKinds(7).String())
}
