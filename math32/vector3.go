// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Dims are the 3D dimensions.
type Dims int32

const (
	X Dims = iota
	Y
	Z

	// DimsN is the number of dimensions.
	DimsN
)

var dimNames = [...]string{"X", "Y", "Z"}

// String returns the name of the dimension.
func (d Dims) String() string {
	if d < X || d >= DimsN {
		return fmt.Sprintf("Dims(%d)", int32(d))
	}
	return dimNames[d]
}

// Vector3 is a 3D vector/point with X, Y and Z components.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Vector3FromArray returns a new [Vector3] from the given array.
func Vector3FromArray(a [3]float32) Vector3 {
	return Vector3{a[0], a[1], a[2]}
}

// Array returns the components as an array.
func (v Vector3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// String returns the vector as a string.
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Dim returns the given vector component.
// Invalid dimensions return 0.
func (v Vector3) Dim(dim Dims) float32 {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	}
	return 0
}

// SetDim sets the given vector component value.
func (v *Vector3) SetDim(dim Dims, value float32) {
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	case Z:
		v.Z = value
	}
}

// OnlyDim returns a copy of the vector with every component
// except the given one set to zero.
func (v Vector3) OnlyDim(dim Dims) Vector3 {
	nv := Vector3{}
	nv.SetDim(dim, v.Dim(dim))
	return nv
}
