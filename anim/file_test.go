// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hipsYAML = `
paths:
  - target: hips
    duration: 1.5
    keyframes:
      - id: 1
        time: 0
        easing: Linear
        position: [0, 0, 0]
      - id: 2
        time: 0.5
        easing: EaseInOut
        rotation: [0, 0.7071, 0, 0.7071]
      - id: 3
        time: 1.5
        easing: Step
        scale: [1, 2, 1]
      - id: 4
        time: 1.5
        easing: Linear
        custom: [0.25]
`

func TestReadPaths(t *testing.T) {
	paths, err := ReadPaths(strings.NewReader(hipsYAML))
	require.NoError(t, err)
	require.Len(t, paths, 1)
	mp := paths[0]
	assert.Equal(t, "hips", mp.Target)
	assert.Equal(t, 1500*time.Millisecond, mp.Duration)
	require.Len(t, mp.Keyframes, 4)
	assert.Equal(t, Keyframe{ID: 1, Time: 0, Value: Position{0, 0, 0}, Easing: Linear}, mp.Keyframes[0])
	assert.Equal(t, Rotation{0, 0.7071, 0, 0.7071}, mp.Keyframes[1].Value)
	assert.Equal(t, 500*time.Millisecond, mp.Keyframes[1].Time)
	assert.Equal(t, Scale{1, 2, 1}, mp.Keyframes[2].Value)
	assert.Equal(t, Custom{0.25}, mp.Keyframes[3].Value)
}

func TestReadPathsErrors(t *testing.T) {
	bad := []string{
		"paths:\n  - target: a\n    keyframes:\n      - id: 1\n        easing: Linear\n",
		"paths:\n  - target: a\n    keyframes:\n      - id: 1\n        easing: Linear\n        position: [1, 2, 3]\n        scale: [1, 1, 1]\n",
		"paths:\n  - target: a\n    keyframes:\n      - id: 1\n        time: -1\n        easing: Linear\n        position: [1, 2, 3]\n",
		"paths:\n  - target: a\n    duration: -2\n",
		"paths:\n  - target: a\n    keyframes:\n      - id: 1\n        easing: Bounce\n        position: [1, 2, 3]\n",
		"paths:\n  - target: a\n    color: red\n",
		"paths:\n  - target: a\n    duration: 1e10\n",
		"paths:\n  - target: a\n    duration: .inf\n",
		"paths:\n  - target: a\n    duration: .nan\n",
		"paths:\n  - target: a\n    keyframes:\n      - id: 1\n        time: 1e10\n        easing: Linear\n        position: [1, 2, 3]\n",
		"paths:\n  - target: a\n    keyframes:\n      - id: 1\n        time: .nan\n        easing: Linear\n        position: [1, 2, 3]\n",
	}
	for _, b := range bad {
		_, err := ReadPaths(strings.NewReader(b))
		assert.Error(t, err, b)
	}
}

func TestReadPathsMissingEasing(t *testing.T) {
	paths, err := ReadPaths(strings.NewReader("paths:\n  - target: a\n    keyframes:\n      - id: 1\n        position: [1, 2, 3]\n"))
	require.NoError(t, err)
	assert.Equal(t, NoEasing, paths[0].Keyframes[0].Easing)
	_, err = Build(paths)
	assert.ErrorIs(t, err, ErrMissingEasing)
}

func TestSaveOpenPaths(t *testing.T) {
	paths, err := ReadPaths(strings.NewReader(hipsYAML))
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, WritePaths(paths, &b))
	assert.Contains(t, b.String(), "easing: EaseInOut")
	assert.Contains(t, b.String(), "position: [0, 0, 0]")

	fn := filepath.Join(t.TempDir(), "hips.yaml")
	require.NoError(t, SavePaths(paths, fn))
	got, err := OpenPaths(fn)
	require.NoError(t, err)
	assert.Equal(t, paths, got)

	_, err = OpenPaths(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReadPathsRange(t *testing.T) {
	_, err := ReadPaths(strings.NewReader("paths:\n  - target: a\n    duration: 1e10\n"))
	assert.ErrorContains(t, err, "out of range")
	_, err = ReadPaths(strings.NewReader("paths:\n  - target: a\n    keyframes:\n      - id: 3\n        time: .nan\n        easing: Linear\n        position: [1, 2, 3]\n"))
	assert.ErrorContains(t, err, "keyframe 3 time")

	// the largest representable whole second still loads
	paths, err := ReadPaths(strings.NewReader("paths:\n  - target: a\n    duration: 9223372036\n"))
	require.NoError(t, err)
	assert.Equal(t, 9223372036*time.Second, paths[0].Duration)
}

func TestSavePathsError(t *testing.T) {
	err := SavePaths([]*MotionPath{twoKeyPath()}, filepath.Join(t.TempDir(), "missing", "paths.yaml"))
	assert.Error(t, err)
}
