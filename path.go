// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package minipaint

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Segment is one drawable piece of a path: a quadratic curve from From to
// To bent towards Control. Straight lines have Control == From.
type Segment struct {
	From    Point
	Control Point
	To      Point
}

// Path returns a path that draws only this segment.
func (s Segment) Path() *Path {
	p := NewPath()
	p.MoveTo(s.From.X, s.From.Y)
	p.QuadraticTo(s.Control.X, s.Control.Y, s.To.X, s.To.Y)
	return p
}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // starting point of current subpath
	current  Point // current point
	previous Point // current point before the last element was appended
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.previous = p.current
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.previous = p.current
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.previous = p.current
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.previous = p.current
	p.current = p.start
}

// Reset removes all elements from the path.
func (p *Path) Reset() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
	p.previous = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements in the path.
func (p *Path) Len() int {
	return len(p.elements)
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// LastSegment returns the most recently appended drawing element as a
// Segment. It reports false when the path is empty or ends in a MoveTo.
func (p *Path) LastSegment() (Segment, bool) {
	if len(p.elements) == 0 {
		return Segment{}, false
	}
	switch e := p.elements[len(p.elements)-1].(type) {
	case QuadTo:
		return Segment{From: p.previous, Control: e.Control, To: e.Point}, true
	case LineTo:
		return Segment{From: p.previous, Control: p.previous, To: e.Point}, true
	case Close:
		return Segment{From: p.previous, Control: p.previous, To: p.current}, true
	}
	return Segment{}, false
}

// Rectangle adds a closed rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	result.previous = p.previous
	return result
}
