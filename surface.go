// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package minipaint

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Surface is the persistent off-screen raster. It accumulates committed ink
// across frames and composites it, plus a cosmetic frame outline, on every
// render. Ink is only lost when the surface is resized.
//
// A Surface is not safe for concurrent use; it is driven from the single
// goroutine that dispatches host events.
type Surface struct {
	pixmap     *Pixmap
	frame      image.Rectangle
	paint      Paint
	framePaint Paint
	background color.Color
	frameInset int
	renderer   Renderer
	maxPixels  int
}

// NewSurface creates a zero-sized surface. The paint is the stroke style
// used for the frame outline. Call Resize once the host knows its size.
func NewSurface(paint Paint, opts ...SurfaceOption) *Surface {
	o := defaultSurfaceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.renderer == nil {
		o.renderer = NewSoftwareRenderer()
	}

	framePaint := paint.WithStyle(StyleStroke)
	if o.frameColor != nil {
		framePaint = framePaint.WithColor(o.frameColor)
	}

	return &Surface{
		pixmap:     NewPixmap(0, 0),
		paint:      paint,
		framePaint: framePaint,
		background: o.background,
		frameInset: o.frameInset,
		renderer:   o.renderer,
		maxPixels:  o.maxPixels,
	}
}

// Width returns the buffer width in pixels.
func (s *Surface) Width() int {
	return s.pixmap.Width()
}

// Height returns the buffer height in pixels.
func (s *Surface) Height() int {
	return s.pixmap.Height()
}

// Pixmap returns the persistent buffer. It is replaced by every Resize, so
// callers must not hold on to it across resizes.
func (s *Surface) Pixmap() *Pixmap {
	return s.pixmap
}

// Frame returns the frame rectangle. The rectangle is not canonicalized: on
// surfaces smaller than twice the inset it is empty and is not drawn.
func (s *Surface) Frame() image.Rectangle {
	return s.frame
}

// Paint returns the stroke style of the surface.
func (s *Surface) Paint() Paint {
	return s.paint
}

// Resize replaces the buffer with a new one of exactly width x height,
// filled with the background color, and recomputes the frame rectangle.
// All committed ink is discarded. Zero dimensions give an empty buffer on
// which commits and renders are no-ops.
//
// On error the previous buffer and frame are kept.
func (s *Surface) Resize(width, height int) error {
	if width < 0 || height < 0 {
		Logger().Warn("minipaint: resize rejected", "width", width, "height", height)
		return fmt.Errorf("%w: width=%d, height=%d (both must be >= 0)", ErrInvalidDimensions, width, height)
	}
	if width != 0 && height > min(s.maxPixels, math.MaxInt/4)/width {
		Logger().Warn("minipaint: resize rejected", "width", width, "height", height, "max_pixels", s.maxPixels)
		return fmt.Errorf("%w: width=%d, height=%d exceeds %d pixels", ErrBufferTooLarge, width, height, s.maxPixels)
	}

	oldW, oldH := s.Width(), s.Height()
	if oldW == width && oldH == height {
		// Same size: reuse the storage, the content is cleared all the same.
		s.pixmap.Clear(s.background)
	} else {
		s.pixmap = NewPixmap(width, height)
		s.pixmap.Clear(s.background)
	}

	inset := s.frameInset
	s.frame = image.Rectangle{
		Min: image.Pt(inset, inset),
		Max: image.Pt(width-inset, height-inset),
	}

	Logger().Debug("minipaint: resize",
		"old_width", oldW, "old_height", oldH,
		"width", width, "height", height)
	return nil
}

// CommitSegment draws a single curve segment into the persistent buffer.
// It only ever adds ink.
func (s *Surface) CommitSegment(seg Segment, paint Paint) error {
	if s.pixmap.IsEmpty() {
		return nil
	}
	return Draw(s.renderer, s.pixmap.Image(), seg.Path(), paint)
}

// RenderTo copies the whole buffer onto dst at dst.Bounds().Min, then
// strokes the frame outline on top. The buffer is not modified, so two
// renders in a row give the same output.
func (s *Surface) RenderTo(dst draw.Image) error {
	if s.pixmap.IsEmpty() {
		return nil
	}
	xdraw.Copy(dst, dst.Bounds().Min, s.pixmap.Image(), s.pixmap.Bounds(), xdraw.Src, nil)

	if s.frame.Empty() {
		return nil
	}
	frame := NewPath()
	frame.Rectangle(
		float64(s.frame.Min.X), float64(s.frame.Min.Y),
		float64(s.frame.Dx()), float64(s.frame.Dy()),
	)
	return s.renderer.Stroke(dst, frame, s.framePaint)
}

// Snapshot renders the surface into a new image of the surface's size.
func (s *Surface) Snapshot() (*image.RGBA, error) {
	img := image.NewRGBA(s.pixmap.Bounds())
	if err := s.RenderTo(img); err != nil {
		return nil, err
	}
	return img, nil
}
