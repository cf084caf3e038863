// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package minipaint is the core of a freehand drawing surface.
//
// # Overview
//
// Raw pointer samples are smoothed into quadratic Bezier segments and
// committed, one segment at a time, into a persistent off-screen raster.
// Every repaint composites that raster plus a cosmetic frame outline onto
// the visible output, so committed ink is never replayed from history.
//
// # Quick Start
//
//	c, err := minipaint.NewCanvas(800, 600,
//	    minipaint.WithPaint(minipaint.DefaultPaint().WithColor(minipaint.Hex("#FFEB3B"))),
//	    minipaint.WithTrackerOptions(minipaint.WithInvalidator(requestFrame)),
//	)
//	if err != nil {
//	    return err
//	}
//
//	c.HandleEvent(minipaint.Down(10, 10))
//	c.HandleEvent(minipaint.Move(20, 10))
//	c.HandleEvent(minipaint.Up(20, 10))
//
//	out := image.NewRGBA(image.Rect(0, 0, 800, 600))
//	_ = c.Render(out)
//
// # Architecture
//
//   - [Surface]: owns the raster buffer; Resize, CommitSegment, RenderTo.
//   - [Tracker]: idle/tracking state machine; turns events into segments.
//   - [Canvas]: wires the two together for a host event loop.
//   - internal/rasterize: curve flattening and anti-aliased stroking.
//
// # Smoothing
//
// For an anchor A and an accepted sample S the tracker appends a quadratic
// curve with control point A ending at (A+S)/2, then moves the anchor to S.
// The drawn curve lags the pointer by half a step. Samples that move no more
// than the tolerance on both axes are ignored, and a stroke's last
// sub-tolerance motion before lift-off is not drawn.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left of the output
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// Nothing in this package locks. Hosts drive a Canvas from a single
// goroutine, or serialize calls themselves.
package minipaint
