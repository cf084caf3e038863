// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package minipaint

import "image/color"

// StrokeWidth is the default ink width in pixels.
const StrokeWidth = 12.0

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// PaintStyle selects whether a path is outlined or filled.
type PaintStyle int

const (
	// StyleStroke outlines the path.
	StyleStroke PaintStyle = iota
	// StyleFill fills the path interior.
	StyleFill
)

// Paint is an immutable style descriptor. The With* methods return
// modified copies, so a Paint can be shared by every committed segment.
type Paint struct {
	// Color is the ink color.
	Color RGBA

	// Width is the stroke width in pixels.
	Width float64

	// Cap is the shape of stroke endpoints.
	Cap LineCap

	// Join is the shape of stroke joins.
	Join LineJoin

	// MiterLimit is the miter cutoff for LineJoinMiter.
	MiterLimit float64

	// Style selects stroking or filling.
	Style PaintStyle

	// Antialias smooths edges without changing shape.
	Antialias bool

	// Dither is carried for hosts that down-sample to fewer than 8 bits per
	// channel. The RGBA raster is never dithered.
	Dither bool
}

// DefaultPaint returns the freehand ink style: 12px, round caps and joins,
// anti-aliased, stroke only.
func DefaultPaint() Paint {
	return Paint{
		Color:      Black,
		Width:      StrokeWidth,
		Cap:        LineCapRound,
		Join:       LineJoinRound,
		MiterLimit: 4.0,
		Style:      StyleStroke,
		Antialias:  true,
		Dither:     true,
	}
}

// WithColor returns a copy of the Paint with the given color.
func (p Paint) WithColor(c color.Color) Paint {
	p.Color = FromColor(c)
	return p
}

// WithWidth returns a copy of the Paint with the given width.
func (p Paint) WithWidth(w float64) Paint {
	p.Width = w
	return p
}

// WithCap returns a copy of the Paint with the given line cap style.
func (p Paint) WithCap(lineCap LineCap) Paint {
	p.Cap = lineCap
	return p
}

// WithJoin returns a copy of the Paint with the given line join style.
func (p Paint) WithJoin(join LineJoin) Paint {
	p.Join = join
	return p
}

// WithStyle returns a copy of the Paint with the given style.
func (p Paint) WithStyle(s PaintStyle) Paint {
	p.Style = s
	return p
}

// WithAntialias returns a copy of the Paint with anti-aliasing toggled.
func (p Paint) WithAntialias(on bool) Paint {
	p.Antialias = on
	return p
}
