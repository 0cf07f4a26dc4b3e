// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"cogentcore.org/animedit/base/iox/yamlx"
	"cogentcore.org/animedit/math32"
)

// pathsFile is the YAML file format for a set of motion paths.
// Times and durations are in seconds.
type pathsFile struct {
	Paths []pathRecord `yaml:"paths"`
}

type pathRecord struct {
	Target    string           `yaml:"target"`
	Duration  float64          `yaml:"duration"`
	Keyframes []keyframeRecord `yaml:"keyframes"`
}

// keyframeRecord has exactly one of the value fields set.
type keyframeRecord struct {
	ID       uint64      `yaml:"id"`
	Time     float64     `yaml:"time"`
	Easing   Easing      `yaml:"easing,omitempty"`
	Position *[3]float32 `yaml:"position,omitempty,flow"`
	Rotation *[4]float32 `yaml:"rotation,omitempty,flow"`
	Scale    *[3]float32 `yaml:"scale,omitempty,flow"`
	Custom   []float32   `yaml:"custom,omitempty,flow"`
}

// seconds converts s seconds to a duration. It must be
// non-negative and within the range of [time.Duration].
func seconds(s float64) (time.Duration, error) {
	ns := math.Round(s * float64(time.Second))
	switch {
	case math.IsNaN(ns):
		return 0, fmt.Errorf("%g is not a number", s)
	case ns < 0:
		return 0, fmt.Errorf("%g is negative", s)
	case ns >= math.MaxInt64:
		return 0, fmt.Errorf("%g is out of range", s)
	}
	return time.Duration(ns), nil
}

func (kr *keyframeRecord) value() (Value, error) {
	var vals []Value
	if kr.Position != nil {
		vals = append(vals, Position(math32.Vector3FromArray(*kr.Position)))
	}
	if kr.Rotation != nil {
		vals = append(vals, Rotation(math32.QuatFromArray(*kr.Rotation)))
	}
	if kr.Scale != nil {
		vals = append(vals, Scale(math32.Vector3FromArray(*kr.Scale)))
	}
	if kr.Custom != nil {
		vals = append(vals, Custom(kr.Custom))
	}
	if len(vals) != 1 {
		return nil, fmt.Errorf("keyframe %d must have exactly one of position, rotation, scale or custom, not %d", kr.ID, len(vals))
	}
	return vals[0], nil
}

func recordFromKeyframe(kf Keyframe) keyframeRecord {
	kr := keyframeRecord{ID: kf.ID, Time: kf.Time.Seconds(), Easing: kf.Easing}
	switch v := kf.Value.(type) {
	case Position:
		a := v.Vector().Array()
		kr.Position = &a
	case Rotation:
		a := v.Quat().Array()
		kr.Rotation = &a
	case Scale:
		a := v.Vector().Array()
		kr.Scale = &a
	case Custom:
		kr.Custom = []float32(v)
	}
	return kr
}

// ReadPaths reads motion paths in YAML format from the given reader.
// Keyframes with a missing easing are read as [NoEasing] and
// rejected later by [Build].
func ReadPaths(r io.Reader) ([]*MotionPath, error) {
	var pf pathsFile
	if err := yamlx.Read(&pf, r); err != nil {
		return nil, err
	}
	paths := make([]*MotionPath, len(pf.Paths))
	for i, pr := range pf.Paths {
		dur, err := seconds(pr.Duration)
		if err != nil {
			return nil, fmt.Errorf("anim.ReadPaths: target %q duration: %w", pr.Target, err)
		}
		mp := &MotionPath{Target: pr.Target, Duration: dur}
		for _, kr := range pr.Keyframes {
			t, err := seconds(kr.Time)
			if err != nil {
				return nil, fmt.Errorf("anim.ReadPaths: target %q keyframe %d time: %w", pr.Target, kr.ID, err)
			}
			v, err := kr.value()
			if err != nil {
				return nil, fmt.Errorf("anim.ReadPaths: target %q: %w", pr.Target, err)
			}
			mp.Keyframes = append(mp.Keyframes, Keyframe{ID: kr.ID, Time: t, Value: v, Easing: kr.Easing})
		}
		paths[i] = mp
	}
	return paths, nil
}

// OpenPaths reads motion paths in YAML format from the given file.
func OpenPaths(filename string) ([]*MotionPath, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	paths, err := ReadPaths(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return paths, nil
}

// WritePaths writes the given motion paths in YAML format.
func WritePaths(paths []*MotionPath, w io.Writer) error {
	pf := pathsFile{Paths: make([]pathRecord, len(paths))}
	for i, mp := range paths {
		pr := pathRecord{Target: mp.Target, Duration: mp.Duration.Seconds()}
		for _, kf := range mp.Keyframes {
			pr.Keyframes = append(pr.Keyframes, recordFromKeyframe(kf))
		}
		pf.Paths[i] = pr
	}
	return yamlx.Write(&pf, w)
}

// SavePaths writes the given motion paths in YAML format to the given file.
func SavePaths(paths []*MotionPath, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WritePaths(paths, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
