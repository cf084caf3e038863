// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasterize

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Cap is the shape of open polyline ends.
type Cap int

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt Cap = iota
	// CapRound ends the stroke with a half disc of radius width/2.
	CapRound
	// CapSquare extends the stroke by width/2 past the endpoint.
	CapSquare
)

// Join is the shape drawn where two edges of a polyline meet.
type Join int

const (
	// JoinMiter extends outer edges to a point, up to the miter limit.
	JoinMiter Join = iota
	// JoinRound fills the corner with an arc.
	JoinRound
	// JoinBevel cuts the corner with a straight edge.
	JoinBevel
)

// maxCoord bounds coordinates handed to rasterx so that 26.6 values, offset
// by the stroke width, stay inside int32. NaN maps to 0.
const maxCoord = 1 << 20

// Style describes how coverage is produced and blended.
type Style struct {
	Color      color.Color
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
	Antialias  bool
}

// Stroke strokes the polylines into dst with source-over blending.
// Coordinates are relative to dst.Bounds().Min. Polylines with fewer than
// two points produce no ink.
func Stroke(dst draw.Image, lines []Polyline, style Style) {
	if style.Width <= 0 || !hasEdges(lines) {
		return
	}
	miter := style.MiterLimit
	if miter <= 0 {
		miter = 4
	}
	render(dst, style.Color, style.Antialias, func(w, h int, scanner rasterx.Scanner) {
		s := rasterx.NewStroker(w, h, scanner)
		s.SetStroke(toFixed(style.Width), toFixed(miter), capFunc(style.Cap), capFunc(style.Cap), gapFunc(style.Join), joinMode(style.Join))
		for _, pl := range lines {
			if len(pl.Points) < 2 {
				continue
			}
			s.Start(toFixedP(pl.Points[0]))
			for _, p := range pl.Points[1:] {
				s.Line(toFixedP(p))
			}
			s.Stop(pl.Closed)
		}
		s.Draw()
		s.Clear()
	})
}

// Fill fills the polylines into dst using the non-zero winding rule.
// Open polylines are implicitly closed.
func Fill(dst draw.Image, lines []Polyline, c color.Color, antialias bool) {
	if !hasEdges(lines) {
		return
	}
	render(dst, c, antialias, func(w, h int, scanner rasterx.Scanner) {
		f := rasterx.NewFiller(w, h, scanner)
		for _, pl := range lines {
			if len(pl.Points) < 2 {
				continue
			}
			f.Start(toFixedP(pl.Points[0]))
			for _, p := range pl.Points[1:] {
				f.Line(toFixedP(p))
			}
			f.Stop(true)
		}
		f.Draw()
		f.Clear()
	})
}

// render runs build against a scanner targeting dst. Without antialiasing
// the coverage goes to an alpha mask first and is snapped to 0 or 255.
func render(dst draw.Image, c color.Color, antialias bool, build func(w, h int, scanner rasterx.Scanner)) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	w, h := b.Dx(), b.Dy()

	if antialias {
		scanner := rasterx.NewScannerGV(w, h, dst, b)
		scanner.SetColor(c)
		build(w, h, scanner)
		return
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, mask, mask.Bounds())
	scanner.SetColor(color.Opaque)
	build(w, h, scanner)
	for i, a := range mask.Pix {
		if a >= 0x80 {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}
	draw.DrawMask(dst, b, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

func hasEdges(lines []Polyline) bool {
	for _, pl := range lines {
		if len(pl.Points) >= 2 {
			return true
		}
	}
	return false
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func toFixedP(p Point) fixed.Point26_6 {
	return rasterx.ToFixedP(clampCoord(p.X), clampCoord(p.Y))
}

func clampCoord(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return max(-maxCoord, min(v, maxCoord))
}

func capFunc(c Cap) rasterx.CapFunc {
	switch c {
	case CapRound:
		return rasterx.RoundCap
	case CapSquare:
		return rasterx.SquareCap
	}
	return rasterx.ButtCap
}

func gapFunc(j Join) rasterx.GapFunc {
	if j == JoinRound {
		return rasterx.RoundGap
	}
	return rasterx.FlatGap
}

func joinMode(j Join) rasterx.JoinMode {
	switch j {
	case JoinRound:
		return rasterx.Round
	case JoinBevel:
		return rasterx.Bevel
	}
	return rasterx.Miter
}
