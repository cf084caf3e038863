// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package minipaint

import (
	"image/draw"

	"github.com/gogpu/minipaint/internal/rasterize"
)

// SoftwareRenderer is a CPU rasterizer backed by the rasterx stroker.
type SoftwareRenderer struct{}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// Stroke implements Renderer.Stroke.
func (r *SoftwareRenderer) Stroke(dst draw.Image, p *Path, paint Paint) error {
	if p == nil || p.IsEmpty() {
		return nil
	}
	lines := rasterize.Flatten(convertPath(p))
	rasterize.Stroke(dst, lines, rasterize.Style{
		Color:      paint.Color,
		Width:      paint.Width,
		Cap:        convertCap(paint.Cap),
		Join:       convertJoin(paint.Join),
		MiterLimit: paint.MiterLimit,
		Antialias:  paint.Antialias,
	})
	return nil
}

// Fill implements Renderer.Fill.
func (r *SoftwareRenderer) Fill(dst draw.Image, p *Path, paint Paint) error {
	if p == nil || p.IsEmpty() {
		return nil
	}
	lines := rasterize.Flatten(convertPath(p))
	rasterize.Fill(dst, lines, paint.Color, paint.Antialias)
	return nil
}

// convertPath converts Path elements to rasterize elements for flattening.
func convertPath(p *Path) []rasterize.PathElement {
	elements := make([]rasterize.PathElement, 0, p.Len())
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, rasterize.MoveTo{Point: rasterize.Point(e.Point)})
		case LineTo:
			elements = append(elements, rasterize.LineTo{Point: rasterize.Point(e.Point)})
		case QuadTo:
			elements = append(elements, rasterize.QuadTo{
				Control: rasterize.Point(e.Control),
				Point:   rasterize.Point(e.Point),
			})
		case Close:
			elements = append(elements, rasterize.Close{})
		}
	}
	return elements
}

func convertCap(c LineCap) rasterize.Cap {
	switch c {
	case LineCapRound:
		return rasterize.CapRound
	case LineCapSquare:
		return rasterize.CapSquare
	}
	return rasterize.CapButt
}

func convertJoin(j LineJoin) rasterize.Join {
	switch j {
	case LineJoinRound:
		return rasterize.JoinRound
	case LineJoinBevel:
		return rasterize.JoinBevel
	}
	return rasterize.JoinMiter
}
