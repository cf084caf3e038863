// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package minipaint

import (
	"errors"
	"image"
	"image/draw"
	"math"
	"testing"
)

func newTestCanvas(t *testing.T, w, h int, opts ...CanvasOption) (*Canvas, *int) {
	t.Helper()
	repaints := new(int)
	opts = append([]CanvasOption{
		WithPaint(DefaultPaint().WithColor(testInk)),
		WithSurfaceOptions(WithBackground(testBackground), WithFrameColor(White)),
		WithTrackerOptions(WithTolerance(4), WithInvalidator(func() { *repaints++ })),
	}, opts...)
	c, err := NewCanvas(w, h, opts...)
	if err != nil {
		t.Fatalf("NewCanvas(%d, %d) error = %v", w, h, err)
	}
	return c, repaints
}

func TestNewCanvas(t *testing.T) {
	c, _ := newTestCanvas(t, 320, 240)
	if c.Width() != 320 || c.Height() != 240 {
		t.Errorf("size = %dx%d, want 320x240", c.Width(), c.Height())
	}
	if c.Tracker().State() != StateIdle {
		t.Errorf("new tracker state = %v, want idle", c.Tracker().State())
	}
	if c.Tracker().Tolerance() != 4 {
		t.Errorf("Tolerance() = %v, want 4", c.Tracker().Tolerance())
	}
	if !c.Surface().Pixmap().Equal(freshBuffer(320, 240)) {
		t.Error("new canvas is not blank")
	}
}

func TestNewCanvasInvalidSize(t *testing.T) {
	if _, err := NewCanvas(-1, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewCanvas(-1, 10) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestCanvasDefaultTolerance(t *testing.T) {
	c, err := NewCanvas(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if c.Tracker().Tolerance() != DefaultTouchTolerance {
		t.Errorf("Tolerance() = %v, want %v", c.Tracker().Tolerance(), DefaultTouchTolerance)
	}
}

func TestCanvasStrokeInksBuffer(t *testing.T) {
	c, repaints := newTestCanvas(t, 200, 200)

	for _, ev := range []Event{Down(60, 100), Move(80, 100), Move(100, 100), Move(140, 100), Up(140, 100)} {
		if !c.HandleEvent(ev) {
			t.Fatalf("HandleEvent(%v) = false, want true", ev)
		}
	}
	if *repaints != 3 {
		t.Errorf("repaints = %d, want 3", *repaints)
	}

	// Segments end at midpoints: the last inked end is (120, 100).
	pm := c.Surface().Pixmap()
	for _, x := range []int{60, 75, 90, 110, 120} {
		if got := pm.GetPixel(x, 100); !nearColor(got, testInk) {
			t.Errorf("pixel (%d, 100) = %v, want ink", x, got.NRGBA())
		}
	}
	if got := pm.GetPixel(136, 100); !nearColor(got, testBackground) {
		t.Errorf("pixel (136, 100) = %v, want background; the tail is not flushed", got.NRGBA())
	}

	// Ink persists across renders and a new stroke.
	out := image.NewRGBA(image.Rect(0, 0, 200, 200))
	if err := c.Render(out); err != nil {
		t.Fatal(err)
	}
	c.HandleEvent(Down(10, 10))
	if got := pm.GetPixel(90, 100); !nearColor(got, testInk) {
		t.Errorf("ink lost after a new stroke began: %v", got.NRGBA())
	}
	if got := FromColor(out.At(100, 40)); !nearColor(got, White) {
		t.Errorf("frame pixel = %v, want white", got.NRGBA())
	}
}

func TestCanvasHandleEventAlwaysConsumes(t *testing.T) {
	c, _ := newTestCanvas(t, 0, 0)
	for _, ev := range []Event{Move(1, 1), Up(1, 1), Down(1, 1), Move(50, 50), Up(50, 50), {Action: Action(99)}} {
		if !c.HandleEvent(ev) {
			t.Errorf("HandleEvent(%v) = false, want true", ev)
		}
	}
}

func TestCanvasHandleEventSwallowsCommitErrors(t *testing.T) {
	c, _ := newTestCanvas(t, 100, 100,
		WithSurfaceOptions(WithRenderer(failingRenderer{})))

	c.HandleEvent(Down(10, 10))
	if !c.HandleEvent(Move(50, 50)) {
		t.Error("HandleEvent() = false on commit failure, want true")
	}
	if c.Tracker().State() != StateTracking {
		t.Errorf("State() = %v, want tracking", c.Tracker().State())
	}
}

func TestCanvasNonFiniteMoveDoesNotInk(t *testing.T) {
	c, repaints := newTestCanvas(t, 200, 200)
	before := c.Surface().Pixmap().ToImage()

	for _, ev := range []Event{Down(10, 10), Move(math.Inf(1), 5), Move(5, math.NaN()), Up(math.Inf(-1), 0)} {
		if !c.HandleEvent(ev) {
			t.Fatalf("HandleEvent(%v) = false, want true", ev)
		}
	}
	if *repaints != 0 {
		t.Errorf("repaints = %d, want 0", *repaints)
	}
	if string(before.Pix) != string(c.Surface().Pixmap().Data()) {
		t.Error("non-finite samples changed the buffer")
	}
}

func TestCanvasRenderAtOutputOrigin(t *testing.T) {
	c, _ := newTestCanvas(t, 200, 200)
	c.HandleEvent(Down(100, 100))
	c.HandleEvent(Move(120, 100))

	dst := image.NewRGBA(image.Rect(100, 50, 300, 250))
	if err := c.Render(dst); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		at   image.Point
		want RGBA
	}{
		{"ink", image.Pt(100+105, 50+100), testInk},
		{"frame top edge", image.Pt(100+100, 50+40), White},
		{"frame left edge", image.Pt(100+40, 50+100), White},
		{"buffer corner", image.Pt(100+5, 50+5), testBackground},
	}
	for _, cs := range cases {
		if got := FromColor(dst.At(cs.at.X, cs.at.Y)); !nearColor(got, cs.want) {
			t.Errorf("%s %v = %v, want %v", cs.name, cs.at, got.NRGBA(), cs.want.NRGBA())
		}
	}
}

func TestCanvasResizeCancelsStroke(t *testing.T) {
	c, repaints := newTestCanvas(t, 200, 200)
	c.HandleEvent(Down(20, 20))
	c.HandleEvent(Move(60, 60))

	if err := c.Resize(300, 150); err != nil {
		t.Fatal(err)
	}
	if c.Tracker().State() != StateIdle {
		t.Errorf("State() = %v after resize, want idle", c.Tracker().State())
	}
	if !c.Surface().Pixmap().Equal(freshBuffer(300, 150)) {
		t.Error("resize kept ink")
	}

	// Moves after the resize belong to no stroke.
	before := *repaints
	c.HandleEvent(Move(120, 120))
	if *repaints != before {
		t.Error("move after resize committed ink")
	}
}

func TestCanvasFailedResizeKeepsStroke(t *testing.T) {
	c, _ := newTestCanvas(t, 100, 100)
	c.HandleEvent(Down(20, 20))

	if err := c.Resize(-5, 5); err == nil {
		t.Fatal("Resize(-5, 5) should fail")
	}
	if c.Tracker().State() != StateTracking {
		t.Errorf("State() = %v after failed resize, want tracking", c.Tracker().State())
	}
}

func TestCanvasSnapshot(t *testing.T) {
	c, _ := newTestCanvas(t, 120, 100)
	img, err := c.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 120, 100) {
		t.Errorf("Snapshot() bounds = %v", img.Bounds())
	}
	if got := FromColor(img.At(40, 50)); !nearColor(got, White) {
		t.Errorf("frame left edge = %v, want white", got.NRGBA())
	}
}

type failingRenderer struct{}

var errRender = errors.New("render failed")

func (failingRenderer) Stroke(draw.Image, *Path, Paint) error { return errRender }
func (failingRenderer) Fill(draw.Image, *Path, Paint) error   { return errRender }
