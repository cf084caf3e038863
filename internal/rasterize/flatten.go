// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package rasterize turns path outlines into anti-aliased coverage on a
// draw.Image. Curves are flattened to polylines here and handed to the
// rasterx stroker, which owns caps, joins and coverage accumulation.
package rasterize

import "math"

// Point is a 2D point in output pixel space.
type Point struct {
	X, Y float64
}

// Tolerance is the maximum distance between a curve and its flattened polyline.
const Tolerance = 0.1

// coincident is the distance below which two flattened points are merged.
const coincident = 1e-9

// maxDepth bounds curve subdivision for pathological control points.
const maxDepth = 16

// PathElement is a single path command.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a straight line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Polyline is one flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts path elements into polylines, one per subpath.
// Consecutive duplicate points are dropped so the stroker never sees a
// zero-length edge.
func Flatten(elements []PathElement) []Polyline {
	var (
		lines   []Polyline
		cur     *Polyline
		current Point
	)

	begin := func(p Point) {
		lines = append(lines, Polyline{Points: []Point{p}})
		cur = &lines[len(lines)-1]
	}
	add := func(p Point) {
		if cur == nil {
			begin(current)
		}
		last := cur.Points[len(cur.Points)-1]
		if last.distance(p) > coincident {
			cur.Points = append(cur.Points, p)
		}
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			begin(e.Point)
			current = e.Point
		case LineTo:
			add(e.Point)
			current = e.Point
		case QuadTo:
			for _, p := range flattenQuadratic(current, e.Control, e.Point, Tolerance) {
				add(p)
			}
			current = e.Point
		case Close:
			if cur != nil {
				cur.Closed = true
				current = cur.Points[0]
				cur = nil
			}
		}
	}
	return lines
}

func (p Point) lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

func (p Point) distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// flattenQuadratic returns the points after p0 that approximate the curve.
func flattenQuadratic(p0, p1, p2 Point, tolerance float64) []Point {
	var points []Point
	flattenQuadraticRec(p0, p1, p2, tolerance, 0, &points)
	return points
}

func flattenQuadraticRec(p0, p1, p2 Point, tolerance float64, depth int, points *[]Point) {
	if depth >= maxDepth || distanceToSegment(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	// de Casteljau split at t = 0.5
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := q0.lerp(q1, 0.5)

	flattenQuadraticRec(p0, q0, q2, tolerance, depth+1, points)
	flattenQuadraticRec(q2, q1, p2, tolerance, depth+1, points)
}

// distanceToSegment is the distance from p to the segment (a, b).
func distanceToSegment(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq < 1e-20 {
		return p.distance(a)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	switch {
	case t < 0:
		return p.distance(a)
	case t > 1:
		return p.distance(b)
	}
	return p.distance(Point{X: a.X + abx*t, Y: a.Y + aby*t})
}
