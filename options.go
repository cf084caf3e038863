// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package minipaint

import "image/color"

const (
	// FrameInset is the default distance from each edge to the frame outline.
	FrameInset = 40

	// DefaultTouchTolerance is the default wander slop in pixels, the
	// platform touch slop of a baseline-density screen.
	DefaultTouchTolerance = 8.0

	// DefaultMaxPixels bounds the raster buffer allocation (256 MiB of RGBA).
	DefaultMaxPixels = 1 << 26
)

// SurfaceOption configures a Surface during creation.
//
// Example:
//
//	s := minipaint.NewSurface(paint,
//	    minipaint.WithBackground(minipaint.Hex("#512DA8")),
//	    minipaint.WithFrameInset(24),
//	)
type SurfaceOption func(*surfaceOptions)

type surfaceOptions struct {
	background color.Color
	frameColor color.Color
	frameInset int
	renderer   Renderer
	maxPixels  int
}

func defaultSurfaceOptions() surfaceOptions {
	return surfaceOptions{
		background: White,
		frameInset: FrameInset,
		maxPixels:  DefaultMaxPixels,
	}
}

// WithBackground sets the color a buffer is filled with on (re)creation.
func WithBackground(c color.Color) SurfaceOption {
	return func(o *surfaceOptions) {
		o.background = c
	}
}

// WithFrameColor draws the frame outline in a color distinct from the ink.
func WithFrameColor(c color.Color) SurfaceOption {
	return func(o *surfaceOptions) {
		o.frameColor = c
	}
}

// WithFrameInset sets the frame rectangle inset. Negative values are
// treated as zero.
func WithFrameInset(inset int) SurfaceOption {
	return func(o *surfaceOptions) {
		o.frameInset = max(inset, 0)
	}
}

// WithRenderer sets a custom renderer for the Surface.
// The default is a SoftwareRenderer.
func WithRenderer(r Renderer) SurfaceOption {
	return func(o *surfaceOptions) {
		o.renderer = r
	}
}

// WithMaxPixels caps the number of pixels a resize may allocate.
// Non-positive values keep the default.
func WithMaxPixels(n int) SurfaceOption {
	return func(o *surfaceOptions) {
		if n > 0 {
			o.maxPixels = n
		}
	}
}

// TrackerOption configures a Tracker during creation.
type TrackerOption func(*Tracker)

// WithTolerance sets the wander slop: a move must exceed it on either axis
// to be drawn. Negative values are treated as zero.
func WithTolerance(tolerance float64) TrackerOption {
	return func(t *Tracker) {
		t.tolerance = max(tolerance, 0)
	}
}

// WithInvalidator sets the repaint request the tracker calls after it
// commits ink. The call is fire-and-forget.
func WithInvalidator(invalidate func()) TrackerOption {
	return func(t *Tracker) {
		t.invalidate = invalidate
	}
}

// CanvasOption configures a Canvas during creation.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	paint   Paint
	surface []SurfaceOption
	tracker []TrackerOption
}

// WithPaint sets the ink style shared by strokes and the frame outline.
func WithPaint(p Paint) CanvasOption {
	return func(o *canvasOptions) {
		o.paint = p
	}
}

// WithSurfaceOptions forwards options to the Canvas surface.
func WithSurfaceOptions(opts ...SurfaceOption) CanvasOption {
	return func(o *canvasOptions) {
		o.surface = append(o.surface, opts...)
	}
}

// WithTrackerOptions forwards options to the Canvas tracker.
func WithTrackerOptions(opts ...TrackerOption) CanvasOption {
	return func(o *canvasOptions) {
		o.tracker = append(o.tracker, opts...)
	}
}
