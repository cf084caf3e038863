// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package minipaint

import (
	"fmt"
	"math"
)

// State is the stroke tracker state.
type State int

const (
	// StateIdle means no pointer is down.
	StateIdle State = iota
	// StateTracking means a stroke is in progress.
	StateTracking
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTracking:
		return "tracking"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Committer receives finished curve segments. *Surface implements it.
type Committer interface {
	CommitSegment(seg Segment, paint Paint) error
}

// Tracker turns a stream of pointer events into smoothed curve segments.
//
// Each accepted move appends a quadratic segment whose control point is
// the previous anchor and whose end point is the midpoint between that
// anchor and the new sample, then commits just that segment. Moves that
// stay within the tolerance on both axes are dropped as jitter.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	target     Committer
	paint      Paint
	tolerance  float64
	invalidate func()

	state  State
	path   *Path
	anchor Point // last raw sample a segment was built from
	motion Point // latest raw sample
	drawn  int   // segments committed in the current stroke
}

// NewTracker creates an idle tracker that commits into target with paint.
// The tracker does not own target.
func NewTracker(target Committer, paint Paint, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		target:    target,
		paint:     paint,
		tolerance: DefaultTouchTolerance,
		path:      NewPath(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns the current tracker state.
func (t *Tracker) State() State {
	return t.state
}

// Anchor returns the last raw sample used as a control point.
func (t *Tracker) Anchor() Point {
	return t.anchor
}

// Motion returns the latest raw sample seen by the tracker.
func (t *Tracker) Motion() Point {
	return t.motion
}

// Tolerance returns the wander slop.
func (t *Tracker) Tolerance() float64 {
	return t.tolerance
}

// Path returns the in-progress path. It is owned by the tracker and is
// reset at stroke start and end.
func (t *Tracker) Path() *Path {
	return t.path
}

// HandleEvent feeds one pointer event to the tracker. Unknown actions and
// samples with a NaN or infinite coordinate are ignored. The returned error
// comes from committing a segment; the tracker state has already advanced
// when it is returned.
func (t *Tracker) HandleEvent(ev Event) error {
	if !ev.Point().IsFinite() {
		return nil
	}
	switch ev.Action {
	case ActionDown:
		t.motion = ev.Point()
		t.touchStart()
	case ActionMove:
		if t.state != StateTracking {
			return nil
		}
		t.motion = ev.Point()
		return t.touchMove()
	case ActionUp:
		if t.state != StateTracking {
			return nil
		}
		t.motion = ev.Point()
		t.touchUp()
	}
	return nil
}

// Cancel drops an in-flight stroke without committing anything more.
func (t *Tracker) Cancel() {
	if t.state == StateTracking {
		Logger().Debug("minipaint: stroke cancelled", "segments", t.drawn)
	}
	t.path.Reset()
	t.state = StateIdle
	t.drawn = 0
}

func (t *Tracker) touchStart() {
	t.path.Reset()
	t.path.MoveTo(t.motion.X, t.motion.Y)
	t.anchor = t.motion
	t.state = StateTracking
	t.drawn = 0
	Logger().Debug("minipaint: stroke start", "x", t.motion.X, "y", t.motion.Y)
}

func (t *Tracker) touchMove() error {
	d := t.motion.Sub(t.anchor)
	if math.Abs(d.X) <= t.tolerance && math.Abs(d.Y) <= t.tolerance {
		return nil
	}

	end := t.anchor.Mid(t.motion)
	t.path.QuadraticTo(t.anchor.X, t.anchor.Y, end.X, end.Y)
	t.anchor = t.motion

	seg, _ := t.path.LastSegment()
	if err := t.target.CommitSegment(seg, t.paint); err != nil {
		return err
	}
	t.drawn++
	if t.invalidate != nil {
		t.invalidate()
	}
	return nil
}

// touchUp discards the path. Motion since the last accepted move is not
// flushed, so a sub-tolerance tail before lift-off is never drawn.
func (t *Tracker) touchUp() {
	Logger().Debug("minipaint: stroke end", "segments", t.drawn)
	t.path.Reset()
	t.state = StateIdle
	t.drawn = 0
}
