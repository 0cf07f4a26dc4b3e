// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"
	"time"

	"cogentcore.org/animedit/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoKeyPath() *MotionPath {
	return &MotionPath{
		Target:   "hips",
		Duration: time.Second,
		Keyframes: []Keyframe{
			{ID: 10, Time: 0, Value: Position{0, 0, 0}, Easing: Linear},
			{ID: 11, Time: time.Second, Value: Position{2, 0, 0}, Easing: EaseInOut},
		},
	}
}

func TestBuildPositionAxes(t *testing.T) {
	d, err := Build([]*MotionPath{twoKeyPath()})
	require.NoError(t, err)
	assert.Equal(t, time.Second, d.Duration)

	px, ok := d.Properties.Lookup("Position.X")
	require.True(t, ok)
	require.Len(t, px.Keyframes, 2)
	assert.Equal(t, Position{0, 0, 0}, px.Keyframes[0].Value)
	assert.Equal(t, time.Duration(0), px.Keyframes[0].Time)
	assert.Equal(t, Position{2, 0, 0}, px.Keyframes[1].Value)
	assert.Equal(t, time.Second, px.Keyframes[1].Time)
	assert.Equal(t, uint64(11), px.Keyframes[1].SkelKeyID)
	assert.Equal(t, EaseInOut, px.Keyframes[1].Easing)
	assert.Equal(t, 1, px.Depth)

	for _, path := range []string{"Position.Y", "Position.Z"} {
		p, ok := d.Properties.Lookup(path)
		require.True(t, ok, path)
		require.Len(t, p.Keyframes, 2)
		for _, kf := range p.Keyframes {
			assert.Equal(t, Position{0, 0, 0}, kf.Value, path)
		}
	}

	rot, ok := d.Properties.Lookup("Rotation")
	require.True(t, ok)
	assert.Empty(t, rot.Keyframes)
	assert.Empty(t, rot.Children)
}

func TestBuildGroups(t *testing.T) {
	d, err := Build(nil)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), d.Duration)
	assert.Equal(t, 5, d.Properties.Len())

	tl := d.Properties.TopLevel()
	require.Len(t, tl, 2)
	assert.Equal(t, "Position", tl[0].Path)
	assert.Equal(t, "Rotation", tl[1].Path)
	require.Len(t, tl[0].Children, 3)
	for i, nm := range []string{"X", "Y", "Z"} {
		c := d.Properties.Node(tl[0].Children[i])
		assert.Equal(t, nm, c.Name)
		assert.Equal(t, "Position."+nm, c.Path)
	}
	assert.Equal(t, -1, d.Properties.Index("Scale"))
}

func TestBuildRotationAndOthers(t *testing.T) {
	mp := &MotionPath{
		Target:   "spine",
		Duration: 3 * time.Second,
		Keyframes: []Keyframe{
			{ID: 1, Time: 0, Value: Rotation{0, 0, 0, 1}, Easing: Step},
			{ID: 2, Time: time.Second, Value: Scale{1, 1, 1}, Easing: Linear},
			{ID: 3, Time: 2 * time.Second, Value: Custom{4}, Easing: Linear},
		},
	}
	d, err := Build([]*MotionPath{twoKeyPath(), mp})
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, d.Duration)

	rot, _ := d.Properties.Lookup("Rotation")
	require.Len(t, rot.Keyframes, 1)
	assert.Equal(t, Rotation{0, 0, 0, 1}, rot.Keyframes[0].Value)
	assert.Equal(t, Step, rot.Keyframes[0].Easing)

	px, _ := d.Properties.Lookup("Position.X")
	assert.Len(t, px.Keyframes, 2)
}

func TestBuildMissingEasing(t *testing.T) {
	mp := twoKeyPath()
	mp.Keyframes[1].Easing = NoEasing
	d, err := Build([]*MotionPath{mp})
	assert.Nil(t, d)
	assert.True(t, errors.Is(err, ErrMissingEasing))
	assert.Contains(t, err.Error(), `target "hips" keyframe 11`)

	assert.Panics(t, func() { MustBuild([]*MotionPath{mp}) })
}

func TestBuildInvalidValue(t *testing.T) {
	mp := &MotionPath{Target: "x", Keyframes: []Keyframe{{ID: 1, Easing: Linear}}}
	_, err := Build([]*MotionPath{mp})
	assert.Error(t, err)
}

func TestBuildFreshIDs(t *testing.T) {
	paths := []*MotionPath{twoKeyPath()}
	d1 := MustBuild(paths)
	d2 := MustBuild(paths)
	seen := map[uint64]bool{}
	for _, d := range []*Data{d1, d2} {
		for _, p := range d.Properties.Nodes {
			for _, kf := range p.Keyframes {
				assert.False(t, seen[kf.ID], "duplicate id %d", kf.ID)
				seen[kf.ID] = true
			}
		}
	}
	assert.Len(t, seen, 12)
}

func TestBuildDoesNotShare(t *testing.T) {
	mp := twoKeyPath()
	d := MustBuild([]*MotionPath{mp})
	mp.Keyframes[0].Time = 5 * time.Second
	mp.Duration = 10 * time.Second
	assert.Equal(t, time.Duration(0), d.Paths[0].Keyframes[0].Time)
	assert.Equal(t, time.Second, d.Duration)
}

func TestBuildForTarget(t *testing.T) {
	other := &MotionPath{Target: "head", Duration: 4 * time.Second}
	paths := []*MotionPath{twoKeyPath(), other}

	d, err := BuildForTarget(paths, "hips")
	require.NoError(t, err)
	assert.Len(t, d.Paths, 1)
	assert.Equal(t, time.Second, d.Duration)

	d, err = BuildForTarget(paths, "")
	require.NoError(t, err)
	assert.Len(t, d.Paths, 2)
	assert.Equal(t, 4*time.Second, d.Duration)

	d, err = BuildForTarget(paths, "none")
	require.NoError(t, err)
	assert.Empty(t, d.Paths)
	assert.Equal(t, time.Duration(0), d.Duration)
}

func TestMoveKeyframe(t *testing.T) {
	mp := twoKeyPath()
	assert.True(t, mp.MoveKeyframe(10, 1500*time.Millisecond))
	assert.Equal(t, uint64(11), mp.Keyframes[0].ID)
	assert.Equal(t, uint64(10), mp.Keyframes[1].ID)
	assert.Equal(t, 1500*time.Millisecond, mp.Duration)
	assert.False(t, mp.MoveKeyframe(99, 0))
}

func TestEasingText(t *testing.T) {
	var e Easing
	require.NoError(t, e.UnmarshalText([]byte("EaseOut")))
	assert.Equal(t, EaseOut, e)
	assert.Error(t, e.UnmarshalText([]byte("Bounce")))
	assert.False(t, NoEasing.IsValid())
	assert.True(t, Step.IsValid())
	assert.False(t, EasingN.IsValid())
	assert.Equal(t, "Easing(9)", Easing(9).String())
}

func TestBuildSkipsNil(t *testing.T) {
	d, err := Build([]*MotionPath{nil, twoKeyPath(), nil})
	require.NoError(t, err)
	require.Len(t, d.Paths, 1)
	assert.Equal(t, time.Second, d.Duration)
	x, ok := d.Properties.Lookup("Position.X")
	require.True(t, ok)
	assert.Len(t, x.Keyframes, 2)

	d, err = BuildForTarget([]*MotionPath{nil, twoKeyPath()}, "hips")
	require.NoError(t, err)
	assert.Len(t, d.Paths, 1)

	p := NewProvider()
	assert.NoError(t, p.Update([]*MotionPath{nil}))
	assert.Empty(t, p.Snapshot().Paths)
}
