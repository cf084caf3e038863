// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package minipaint

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Pixmap is a rectangular RGBA pixel buffer with its origin at (0, 0).
// Pixels are stored alpha-premultiplied, 4 bytes per pixel.
type Pixmap struct {
	img *image.RGBA
}

// Verify at compile time that Pixmap is a drawable image.
var _ draw.Image = (*Pixmap)(nil)

// NewPixmap creates a new transparent pixmap with the given dimensions.
// Zero dimensions give an empty pixmap.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// IsEmpty reports whether the pixmap has no pixels.
func (p *Pixmap) IsEmpty() bool {
	return p.img.Rect.Empty()
}

// Data returns the raw pixel data (premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// Image returns the backing image. Drawing into it draws into the pixmap.
func (p *Pixmap) Image() *image.RGBA {
	return p.img
}

// GetPixel returns the straight-alpha color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return Transparent
	}
	return FromColor(p.img.RGBAAt(x, y))
}

// Clear fills the entire pixmap with a color, replacing existing pixels.
func (p *Pixmap) Clear(c color.Color) {
	if p.IsEmpty() {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	pix := p.img.Pix
	pix[0], pix[1], pix[2], pix[3] = rgba.R, rgba.G, rgba.B, rgba.A
	for filled := 4; filled < len(pix); filled *= 2 {
		copy(pix[filled:], pix[:filled])
	}
}

// Equal reports whether two pixmaps have the same size and pixels.
func (p *Pixmap) Equal(other *Pixmap) bool {
	if other == nil {
		return false
	}
	return p.img.Rect == other.img.Rect && bytes.Equal(p.img.Pix, other.img.Pix)
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.img.Rect)
	copy(img.Pix, p.img.Pix)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.img.Set(x, y, c)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
