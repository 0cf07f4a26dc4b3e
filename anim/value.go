// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"

	"cogentcore.org/animedit/math32"
)

// Value is the value of a keyframe. It is one of [Position],
// [Rotation], [Scale] or [Custom]; consumers switch over
// exactly these variants.
type Value interface {
	isValue()

	// String returns a human-readable representation of the value.
	String() string
}

// Position is a translation keyframe value.
type Position math32.Vector3

// Rotation is a quaternion rotation keyframe value.
type Rotation math32.Quat

// Scale is a per-axis scale keyframe value.
type Scale math32.Vector3

// Custom is an application-defined keyframe value.
type Custom []float32

func (Position) isValue() {}
func (Rotation) isValue() {}
func (Scale) isValue()    {}
func (Custom) isValue()   {}

// Vector returns the position as a [math32.Vector3].
func (v Position) Vector() math32.Vector3 { return math32.Vector3(v) }

// Quat returns the rotation as a [math32.Quat].
func (v Rotation) Quat() math32.Quat { return math32.Quat(v) }

// Vector returns the scale as a [math32.Vector3].
func (v Scale) Vector() math32.Vector3 { return math32.Vector3(v) }

func (v Position) String() string { return "Position" + v.Vector().String() }
func (v Rotation) String() string { return "Rotation" + v.Quat().String() }
func (v Scale) String() string    { return "Scale" + v.Vector().String() }
func (v Custom) String() string   { return fmt.Sprintf("Custom%v", []float32(v)) }
