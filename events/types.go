// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Types determines the type of pointer event, and also the
// level at which one can select which events to listen to.
// The type includes both the source and the "action" of the event
// (e.g., MouseDown and MouseUp are separate event types).
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a pointer button is pressed down.
	MouseDown

	// MouseUp happens when a pointer button is released.
	MouseUp

	// MouseMove is sent when the pointer is moving but no button is down.
	MouseMove

	// MouseDrag is sent when the pointer is moving and there
	// is a button down. The start pos indicates where the
	// button was first pressed.
	MouseDrag

	// Scroll is for scroll wheel events. The delta is in pixel units.
	Scroll

	// TypesN is the number of event types.
	TypesN
)

var typesNames = [...]string{"UnknownType", "MouseDown", "MouseUp", "MouseMove", "MouseDrag", "Scroll"}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < UnknownType || tp >= TypesN {
		return fmt.Sprintf("Types(%d)", int32(tp))
	}
	return typesNames[tp]
}

// SetString sets the type from its name.
func (tp *Types) SetString(s string) error {
	for i, nm := range typesNames {
		if nm == s {
			*tp = Types(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type events.Types", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (tp Types) MarshalText() ([]byte, error) {
	return []byte(tp.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (tp *Types) UnmarshalText(text []byte) error {
	return tp.SetString(string(text))
}
