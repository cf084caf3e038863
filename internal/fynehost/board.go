// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fynehost hosts a minipaint.Canvas inside a fyne window.
//
// The Board widget owns a fyne raster whose generator keeps the canvas sized
// to the widget's pixel dimensions, and it translates mouse, drag and touch
// callbacks into minipaint events.
package fynehost

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/minipaint"
)

var (
	_ fyne.Widget       = (*Board)(nil)
	_ fyne.Draggable    = (*Board)(nil)
	_ desktop.Mouseable = (*Board)(nil)
	_ mobile.Touchable  = (*Board)(nil)
)

// Board is a fyne widget that draws with a minipaint.Canvas.
//
// fyne may call the raster generator and the input callbacks from different
// goroutines, so every access to the canvas goes through mu.
type Board struct {
	widget.BaseWidget

	mu     sync.Mutex
	canvas *minipaint.Canvas
	raster *canvas.Raster
	scale  float32 // pixels per fyne unit, learned from the generator
	last   fyne.Position
	down   bool
	dirty  bool
}

// NewBoard creates a board. The canvas starts empty and takes its size from
// the first frame fyne asks the raster for.
func NewBoard(opts ...minipaint.CanvasOption) (*Board, error) {
	b := &Board{scale: 1}
	opts = append(opts, minipaint.WithTrackerOptions(minipaint.WithInvalidator(b.invalidate)))

	c, err := minipaint.NewCanvas(0, 0, opts...)
	if err != nil {
		return nil, err
	}
	b.canvas = c
	b.raster = canvas.NewRaster(b.draw)
	b.raster.ScaleMode = canvas.ImageScalePixels
	b.ExtendBaseWidget(b)
	return b, nil
}

// Canvas returns the hosted canvas. Callers that use it while the board is
// shown must not race the fyne callbacks.
func (b *Board) Canvas() *minipaint.Canvas {
	return b.canvas
}

// CreateRenderer implements fyne.Widget.
func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.raster)
}

// MinSize keeps the frame visible at the smallest layout.
func (b *Board) MinSize() fyne.Size {
	side := float32(2*minipaint.FrameInset + 1)
	return fyne.NewSize(side, side)
}

// draw is the raster generator. w and h are in pixels.
func (b *Board) draw(w, h int) image.Image {
	b.mu.Lock()
	defer b.mu.Unlock()

	if size := b.Size(); size.Width > 0 {
		b.scale = float32(w) / size.Width
	}
	if w != b.canvas.Width() || h != b.canvas.Height() {
		if err := b.canvas.Resize(w, h); err != nil {
			minipaint.Logger().Error("fynehost: resize failed", "width", w, "height", h, "err", err)
			return image.NewRGBA(image.Rect(0, 0, w, h))
		}
		b.down = false
	}

	img, err := b.canvas.Snapshot()
	if err != nil {
		minipaint.Logger().Error("fynehost: render failed", "err", err)
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return img
}

// invalidate runs under mu from inside HandleEvent; the refresh is issued
// once the lock is released.
func (b *Board) invalidate() {
	b.dirty = true
}

func (b *Board) send(action minipaint.Action, pos fyne.Position) {
	b.mu.Lock()
	switch action {
	case minipaint.ActionDown:
		b.down = true
	case minipaint.ActionUp:
		if !b.down {
			b.mu.Unlock()
			return
		}
		b.down = false
	}
	b.last = pos
	b.canvas.HandleEvent(minipaint.Event{
		Action: action,
		X:      float64(pos.X * b.scale),
		Y:      float64(pos.Y * b.scale),
	})
	dirty := b.dirty
	b.dirty = false
	b.mu.Unlock()

	if dirty {
		b.raster.Refresh()
	}
}

// MouseDown implements desktop.Mouseable.
func (b *Board) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	b.send(minipaint.ActionDown, ev.Position)
}

// MouseUp implements desktop.Mouseable.
func (b *Board) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	b.send(minipaint.ActionUp, ev.Position)
}

// Dragged implements fyne.Draggable.
func (b *Board) Dragged(ev *fyne.DragEvent) {
	b.send(minipaint.ActionMove, ev.Position)
}

// DragEnd implements fyne.Draggable. Drags that end outside the widget do
// not always deliver MouseUp, so the stroke is closed here too.
func (b *Board) DragEnd() {
	b.mu.Lock()
	last := b.last
	b.mu.Unlock()
	b.send(minipaint.ActionUp, last)
}

// TouchDown implements mobile.Touchable.
func (b *Board) TouchDown(ev *mobile.TouchEvent) {
	b.send(minipaint.ActionDown, ev.Position)
}

// TouchUp implements mobile.Touchable.
func (b *Board) TouchUp(ev *mobile.TouchEvent) {
	b.send(minipaint.ActionUp, ev.Position)
}

// TouchCancel implements mobile.Touchable. A cancelled touch ends the
// stroke like a lift-off.
func (b *Board) TouchCancel(ev *mobile.TouchEvent) {
	b.send(minipaint.ActionUp, ev.Position)
}
