// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package minipaint

import "fmt"

// Action identifies the kind of pointer event.
type Action int

const (
	// ActionNone is the zero Action. The tracker ignores it.
	ActionNone Action = iota
	// ActionDown starts a stroke.
	ActionDown
	// ActionMove reports pointer motion during a stroke.
	ActionMove
	// ActionUp ends a stroke.
	ActionUp
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Event is one pointer sample in output-surface coordinates.
// Actions other than down, move and up, including the zero ActionNone, are
// ignored by the tracker.
type Event struct {
	Action Action
	X, Y   float64
}

// Down returns a pointer-down event at (x, y).
func Down(x, y float64) Event { return Event{Action: ActionDown, X: x, Y: y} }

// Move returns a pointer-move event at (x, y).
func Move(x, y float64) Event { return Event{Action: ActionMove, X: x, Y: y} }

// Up returns a pointer-up event at (x, y).
func Up(x, y float64) Event { return Event{Action: ActionUp, X: x, Y: y} }

// Point returns the event position.
func (e Event) Point() Point {
	return Pt(e.X, e.Y)
}
