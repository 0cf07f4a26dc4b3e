// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeline

import (
	"log/slog"
	"math"
	"time"

	"cogentcore.org/animedit/anim"
	"cogentcore.org/animedit/events"
	"cogentcore.org/animedit/math32"
)

// Source supplies the current animation snapshot.
// [anim.Provider] is the standard implementation.
type Source interface {
	Snapshot() *anim.Data
}

// Sink receives the results of pointer interaction that must be
// applied to the authoritative motion path store or to playback.
// The timeline never writes to the store itself.
type Sink interface {

	// CurrentTimeChanged is called when the playhead moves.
	CurrentTimeChanged(t time.Duration)

	// KeyframeMoved is called for each pointer move while dragging a keyframe.
	KeyframeMoved(mv KeyframeMove)
}

// KeyframeMove is the computed new time of a dragged keyframe.
type KeyframeMove struct {

	// PropertyPath is the row of the dragged keyframe.
	PropertyPath string

	// SkelKeyID is the source keyframe id.
	SkelKeyID uint64

	// OriginalTime is the time of the keyframe when the drag started.
	OriginalTime time.Duration

	// NewTime is the time under the pointer.
	NewTime time.Duration
}

// Controller is the pointer interaction state machine of a timeline
// view. It is the single writer of its [State]. All of its methods
// must be called on the UI goroutine; each one completes before the
// next event is processed.
type Controller struct {

	// Config is the layout of the view.
	Config Config

	// State is the current view state, replaced by [Controller.SetTarget].
	State *State

	// Source supplies the snapshot, which is read anew at every event.
	Source Source

	// Sink receives playhead and keyframe moves. It may be nil.
	Sink Sink

	// lastMove is the result of the last keyframe drag move.
	lastMove KeyframeMove

	// hasMove is whether lastMove is valid.
	hasMove bool
}

// NewController returns a new idle controller for the given target.
func NewController(cfg Config, src Source, sink Sink, target string) *Controller {
	return &Controller{Config: cfg, Source: src, Sink: sink, State: NewState(target)}
}

// SetTarget replaces the state with a new one for the given target.
func (c *Controller) SetTarget(target string) {
	c.State = NewState(target)
	c.hasMove = false
}

// LastMove returns the result of the most recent keyframe drag move,
// if any happened during the current drag or the last one.
func (c *Controller) LastMove() (KeyframeMove, bool) {
	return c.lastMove, c.hasMove
}

// snapshot returns the current snapshot, which may be nil.
func (c *Controller) snapshot() *anim.Data {
	if c.Source == nil {
		return nil
	}
	return c.Source.Snapshot()
}

// local converts a view position to keyframe area coordinates.
func (c *Controller) local(pos math32.Vector2) math32.Vector2 {
	return math32.Vec2(pos.X-float32(c.Config.OffsetX), pos.Y)
}

func (c *Controller) hitTest(pos math32.Vector2) (KeyframeRef, bool) {
	if c.Config.HitNested {
		return HitTestVisible(c.State, &c.Config, c.snapshot(), pos)
	}
	return HitTest(c.State, &c.Config, c.snapshot(), pos)
}

// HandleEvent runs the transition for the given event,
// marking it handled if the transition consumes it.
func (c *Controller) HandleEvent(ev events.Event) {
	var consumed bool
	switch ev.Type() {
	case events.MouseDown:
		consumed = c.PointerDown(ev.Pos())
	case events.MouseMove, events.MouseDrag:
		consumed = c.PointerMove(ev.Pos())
	case events.MouseUp:
		consumed = c.PointerUp()
	case events.Scroll:
		if se, ok := ev.(*events.MouseScroll); ok {
			consumed = c.Wheel(float64(se.Delta.Y))
		}
	}
	if consumed {
		ev.SetHandled()
	}
}

// AddListeners registers the controller on the given listeners.
func (c *Controller) AddListeners(ls *events.Listeners) {
	for _, typ := range []events.Types{events.MouseDown, events.MouseMove, events.MouseDrag, events.MouseUp, events.Scroll} {
		ls.Add(typ, c.HandleEvent)
	}
}

// PointerDown starts a keyframe drag when a keyframe is hit, or
// moves the playhead and starts a playhead drag when the header is hit.
// It returns whether the event is consumed.
func (c *Controller) PointerDown(pos math32.Vector2) bool {
	st := c.State
	lp := c.local(pos)
	x := float64(lp.X)
	if ref, ok := c.hitTest(lp); ok {
		st.Dragging = DragOperation{Kind: DragKeyframe, AnchorX: x, PropertyPath: ref.PropertyPath, OriginalTime: ref.Time, SkelKeyID: ref.SkelKeyID}
		c.hasMove = false
		slog.Debug("timeline: start keyframe drag", "path", ref.PropertyPath, "time", ref.Time)
		return true
	}
	if InHeader(&c.Config, lp) {
		st.Dragging = DragOperation{Kind: DragPlayhead, AnchorX: x}
		c.setCurrentTime(XToTime(x, &c.Config, st))
		slog.Debug("timeline: start playhead drag", "time", st.CurrentTime)
		return true
	}
	return false
}

// PointerMove updates the current drag, or the hovered keyframe
// when idle. It returns whether the event is consumed, which
// is never the case when idle.
func (c *Controller) PointerMove(pos math32.Vector2) bool {
	st := c.State
	lp := c.local(pos)
	x := float64(lp.X)
	switch st.Dragging.Kind {
	case DragPlayhead:
		c.setCurrentTime(XToTime(x, &c.Config, st))
		return true
	case DragKeyframe:
		d := st.Dragging
		dx := x - d.AnchorX
		mv := KeyframeMove{
			PropertyPath: d.PropertyPath,
			SkelKeyID:    d.SkelKeyID,
			OriginalTime: d.OriginalTime,
			NewTime:      XToTime(TimeToX(d.OriginalTime, &c.Config, st)+dx, &c.Config, st),
		}
		c.lastMove, c.hasMove = mv, true
		if c.Sink != nil {
			c.Sink.KeyframeMoved(mv)
		}
		return true
	}
	if ref, ok := c.hitTest(lp); ok {
		st.Hovered = &ref
	} else {
		st.Hovered = nil
	}
	return false
}

// PointerUp ends any drag. It returns whether a drag was ended;
// releasing while idle does nothing.
func (c *Controller) PointerUp() bool {
	st := c.State
	if !st.Dragging.IsDragging() {
		return false
	}
	slog.Debug("timeline: end drag", "kind", st.Dragging.Kind)
	st.Dragging = DragOperation{}
	return true
}

// Wheel zooms by the given wheel delta, scaling the scroll offset by
// the same factor. It returns whether the event is consumed, which is
// the case for any non-zero delta.
func (c *Controller) Wheel(delta float64) bool {
	st := c.State
	old := st.ZoomLevel
	zoom := old * (1 + delta*ZoomSensitivity)
	if math.IsNaN(zoom) {
		return false
	}
	st.ZoomLevel = math32.Clamp(zoom, MinZoom, MaxZoom)
	if old > 0 {
		st.ScrollOffset *= st.ZoomLevel / old
	}
	return delta != 0
}

func (c *Controller) setCurrentTime(t time.Duration) {
	c.State.CurrentTime = t
	if c.Sink != nil {
		c.Sink.CurrentTimeChanged(t)
	}
}
