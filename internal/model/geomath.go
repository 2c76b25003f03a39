package model

import "math"

// Zeroish is the package-wide tolerance within which a point counts
// as lying on a polygon edge in PointInPolygonStrict. A named constant rather than a mutable
// package-level variable, since this engine's tolerances are supplied
// explicitly through Config.
const Zeroish = 1e-4

// SignedArea computes the signed area of a closed polygon (implicit
// edge from the last point back to the first) via the shoelace
// formula. Positive is counter-clockwise in the package's Y-up
// convention.
func SignedArea(pts []Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Centroid returns the area-weighted centroid of a closed polygon
// using the standard shoelace-derived formula. ok is false when the
// polygon is degenerate (zero area), in which case the caller should
// fall back to a simpler candidate point.
func Centroid(pts []Point) (c Point, ok bool) {
	n := len(pts)
	if n < 3 {
		return Point{}, false
	}
	var a, cx, cy float64
	for i := 0; i < n; i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%n]
		cross := p0.X*p1.Y - p1.X*p0.Y
		a += cross
		cx += (p0.X + p1.X) * cross
		cy += (p0.Y + p1.Y) * cross
	}
	if math.Abs(a) < 1e-12 {
		return Point{}, false
	}
	a *= 0.5
	return Point{X: cx / (6 * a), Y: cy / (6 * a)}, true
}

// Mean returns the arithmetic mean of a set of points.
func Mean(pts []Point) Point {
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return Point{X: sx / n, Y: sy / n}
}

// isLeft reports whether the horizontal ray from point a towards +X
// crosses segment (b,c), the crossing-number building block used by
// PointInPolygonStrict below.
func isLeft(a, b, c Point) bool {
	if (a.Y <= b.Y) == (a.Y <= c.Y) {
		return false // a is fully above or below (b->c)
	}
	if b.X > a.X && c.X > a.X {
		return true
	}
	if math.Max(b.X, c.X) <= a.X {
		return false
	}
	if c.X == b.X {
		return false
	}
	y := b.Y + (c.Y-b.Y)/(c.X-b.X)*(a.X-b.X)
	if math.Abs(a.Y-y) <= Zeroish {
		return false // a sits on the line BC: treat as not-left, i.e. on edge
	}
	return (y < a.Y) == (b.Y < c.Y)
}

// PointInPolygonStrict is the even/odd crossing-number test used
// throughout hierarchy resolution: points exactly on an edge are
// reported as outside (strict containment).
func PointInPolygonStrict(p Point, poly []Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	if onEdgeOfPolygon(p, poly) {
		return false
	}
	crossings := 0
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if isLeft(p, a, b) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// onEdgeOfPolygon reports whether p lies on any edge of poly within
// Zeroish, via perpendicular distance to the segment's supporting
// line combined with a bounding-box membership check.
func onEdgeOfPolygon(p Point, poly []Point) bool {
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if pointOnSegment(p, a, b, Zeroish) {
			return true
		}
	}
	return false
}

func pointOnSegment(p, a, b Point, tol float64) bool {
	minX, maxX := MinMax(a.X, b.X)
	minY, maxY := MinMax(a.Y, b.Y)
	if p.X < minX-tol || p.X > maxX+tol || p.Y < minY-tol || p.Y > maxY+tol {
		return false
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	length2 := dx*dx + dy*dy
	if length2 < 1e-18 {
		return p.Dist(a) <= tol
	}
	// perpendicular distance from p to the infinite line through a,b
	cross := (p.X-a.X)*dy - (p.Y-a.Y)*dx
	dist := math.Abs(cross) / math.Sqrt(length2)
	return dist <= tol
}

// Orientation reports whether a closed point sequence is
// counter-clockwise (CCW) in the Y-up convention, i.e. signed area is
// positive.
func Orientation(pts []Point) (ccw bool) {
	return SignedArea(pts) > 0
}

// Reversed returns a new slice with pts in reverse order.
func Reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
