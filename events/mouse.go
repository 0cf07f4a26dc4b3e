// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/animedit/math32"
)

// Mouse is a basic pointer event for all pointer events except Scroll.
type Mouse struct {
	Base
}

// NewMouse returns a new pointer event of the given type at the given position.
func NewMouse(typ Types, where math32.Vector2) *Mouse {
	ev := &Mouse{}
	ev.Typ = typ
	ev.Where = where
	ev.Init()
	return ev
}

// NewMouseDrag returns a new [MouseDrag] event, with the button first
// pressed at start.
func NewMouseDrag(where, start math32.Vector2) *Mouse {
	ev := NewMouse(MouseDrag, where)
	ev.Start = start
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Pos: %v, Time: %v}", ev.Type(), ev.Where, ev.Time().Format("04:05"))
}

// MouseScroll is for wheel scrolling, recording the delta of the scroll.
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis, in pixel units.
	// The vertical axis drives zooming.
	Delta math32.Vector2
}

// NewScroll returns a new [Scroll] event at the given position.
func NewScroll(where, delta math32.Vector2) *MouseScroll {
	ev := &MouseScroll{}
	ev.Typ = Scroll
	ev.Where = where
	ev.Delta = delta
	ev.Init()
	return ev
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Time: %v}", ev.Type(), ev.Delta, ev.Where, ev.Time().Format("04:05"))
}
