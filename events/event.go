// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer and wheel events delivered
// to the timeline editor, and listener lists for dispatching them.
package events

import (
	"time"

	"cogentcore.org/animedit/math32"
)

// Event is the interface for all pointer and wheel events.
// Events are delivered to a chain of handlers; a handler that
// consumes an event marks it handled, which stops propagation.
type Event interface {
	// Type returns the type of the event.
	Type() Types

	// Pos returns the local position of the event.
	Pos() math32.Vector2

	// Time returns the time at which the event was generated.
	Time() time.Time

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as consumed, stopping propagation.
	SetHandled()

	// String returns a human-readable representation of the event.
	String() string
}

// Base is the base type for events.
// It is designed to have all the fields needed for pointer events,
// so subtypes only add what is unique to them.
type Base struct {

	// Typ is the type of event.
	Typ Types

	// Where is the event location in local view coordinates.
	Where math32.Vector2

	// Start is where the pointer button was first pressed, for drag events.
	Start math32.Vector2

	// GenTime records the time when the event was first generated.
	GenTime time.Time

	handled bool
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Pos() math32.Vector2 {
	return ev.Where
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) IsHandled() bool {
	return ev.handled
}

func (ev *Base) SetHandled() {
	ev.handled = true
}

// Init sets the generation time to now.
func (ev *Base) Init() {
	ev.GenTime = time.Now()
}
