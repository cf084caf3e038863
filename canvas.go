// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package minipaint

import (
	"image"
	"image/draw"
)

// Canvas wires a Tracker to the Surface it draws into. It exposes the three
// operations a host event loop calls: Resize, Render and HandleEvent.
//
// Canvas is not safe for concurrent use. Hosts that deliver size, draw and
// pointer callbacks on different goroutines must serialize them.
type Canvas struct {
	surface *Surface
	tracker *Tracker
}

// NewCanvas creates a canvas and sizes it to width x height.
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	o := canvasOptions{paint: DefaultPaint()}
	for _, opt := range opts {
		opt(&o)
	}

	s := NewSurface(o.paint, o.surface...)
	c := &Canvas{
		surface: s,
		tracker: NewTracker(s, o.paint, o.tracker...),
	}
	if err := c.Resize(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

// Surface returns the canvas raster surface.
func (c *Canvas) Surface() *Surface {
	return c.surface
}

// Tracker returns the canvas stroke tracker.
func (c *Canvas) Tracker() *Tracker {
	return c.tracker
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.surface.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.surface.Height()
}

// Resize resizes the surface, clearing all ink. An in-flight stroke is
// dropped since its path refers to the old buffer. On error the canvas is
// unchanged.
func (c *Canvas) Resize(width, height int) error {
	if err := c.surface.Resize(width, height); err != nil {
		return err
	}
	c.tracker.Cancel()
	return nil
}

// Render composites the canvas onto dst. Canvas pixel (0, 0) lands on
// dst.Bounds().Min, so a sub-image renders the canvas at its own origin.
func (c *Canvas) Render(dst draw.Image) error {
	return c.surface.RenderTo(dst)
}

// Snapshot renders the canvas into a new image.
func (c *Canvas) Snapshot() (*image.RGBA, error) {
	return c.surface.Snapshot()
}

// HandleEvent forwards a pointer event to the tracker. It always reports
// the event as consumed; commit failures are logged.
func (c *Canvas) HandleEvent(ev Event) bool {
	if err := c.tracker.HandleEvent(ev); err != nil {
		Logger().Warn("minipaint: event dropped", "action", ev.Action, "err", err)
	}
	return true
}
