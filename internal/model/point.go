// Package model holds the shared data types for the contour
// reconstruction engine: points, primitives, contours, loops, shapes,
// configuration and the error/diagnostic vocabulary. It has no
// dependency on any pipeline stage so every stage package can depend
// on it without creating an import cycle.
package model

import "math"

// Point holds a 2D coordinate. X increases to the right, Y increases
// up the page, matching ordinary graph-paper conventions rather than
// image/screen conventions.
type Point struct {
	X, Y float64
}

// Finite reports whether both coordinates are finite (no NaN/Inf).
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// MinMax sorts a pair of values into ascending order.
func MinMax(a, b float64) (float64, float64) {
	if a <= b {
		return a, b
	}
	return b, a
}

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Area returns the bounding box area, or 0 for a degenerate box.
func (b BBox) Area() float64 {
	w, h := b.MaxX-b.MinX, b.MaxY-b.MinY
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// MinSide returns the shorter of width and height.
func (b BBox) MinSide() float64 {
	w, h := b.MaxX-b.MinX, b.MaxY-b.MinY
	if w < h {
		return w
	}
	return h
}

// Contains reports whether q lies within the box, inclusive.
func (b BBox) Contains(q Point) bool {
	return q.X >= b.MinX && q.X <= b.MaxX && q.Y >= b.MinY && q.Y <= b.MaxY
}

// Overlaps reports whether two boxes come within tol of overlapping.
func (b BBox) Overlaps(o BBox, tol float64) bool {
	return !(b.MinX-tol > o.MaxX || b.MaxX+tol < o.MinX || b.MinY-tol > o.MaxY || b.MaxY+tol < o.MinY)
}

// BoundPoints computes the bounding box of a set of points. It panics
// on an empty slice; callers are expected to have validated non-empty
// input already.
func BoundPoints(pts []Point) BBox {
	bb := BBox{MinX: pts[0].X, MaxX: pts[0].X, MinY: pts[0].Y, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < bb.MinX {
			bb.MinX = p.X
		}
		if p.X > bb.MaxX {
			bb.MaxX = p.X
		}
		if p.Y < bb.MinY {
			bb.MinY = p.Y
		}
		if p.Y > bb.MaxY {
			bb.MaxY = p.Y
		}
	}
	return bb
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
