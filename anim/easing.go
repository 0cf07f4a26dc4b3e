// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "fmt"

// Easing is the interpolation shape used between a keyframe
// and the next one on the same motion path.
type Easing int32

const (
	// NoEasing is the zero value, meaning the easing is absent.
	// Keyframes with no easing are rejected by [Build].
	NoEasing Easing = iota

	// Linear interpolates at a constant rate.
	Linear

	// EaseIn starts slowly and accelerates.
	EaseIn

	// EaseOut starts quickly and decelerates.
	EaseOut

	// EaseInOut accelerates and then decelerates.
	EaseInOut

	// Step holds the value until the next keyframe.
	Step

	// EasingN is the number of easing kinds.
	EasingN
)

var easingNames = [...]string{"NoEasing", "Linear", "EaseIn", "EaseOut", "EaseInOut", "Step"}

// String returns the name of the easing.
func (e Easing) String() string {
	if e < NoEasing || e >= EasingN {
		return fmt.Sprintf("Easing(%d)", int32(e))
	}
	return easingNames[e]
}

// IsValid returns whether the easing is one of the defined
// kinds other than [NoEasing].
func (e Easing) IsValid() bool {
	return e > NoEasing && e < EasingN
}

// SetString sets the easing from its name.
func (e *Easing) SetString(s string) error {
	for i, nm := range easingNames {
		if nm == s {
			*e = Easing(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type anim.Easing", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (e Easing) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (e *Easing) UnmarshalText(text []byte) error {
	return e.SetString(string(text))
}
