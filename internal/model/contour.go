package model

// Contour is a uniform, already-discretized point sequence produced
// by the primitive normalizer and transformed by the cleaner. Curved
// primitives have already been flattened to line segments by the
// time a Contour exists.
type Contour struct {
	Points []Point
	Closed bool
}

// Length returns the total perimeter length of the contour, including
// the implicit closing edge when Closed is true.
func (c Contour) Length() float64 {
	n := len(c.Points)
	if n < 2 {
		return 0
	}
	var total float64
	last := n - 1
	if c.Closed {
		last = n
	}
	for i := 0; i < last; i++ {
		a := c.Points[i%n]
		b := c.Points[(i+1)%n]
		total += a.Dist(b)
	}
	return total
}

// Area returns the absolute shoelace area, treating the contour as
// closed regardless of its Closed flag (callers only call this on
// contours they already know to be loop-shaped).
func (c Contour) Area() float64 {
	a := SignedArea(c.Points)
	if a < 0 {
		return -a
	}
	return a
}

// Segment is a single straight edge, (a, b), derived from an open
// contour for loop extraction. Segments with near-coincident
// endpoints are dropped by the normalizer/cleaner well before this
// point.
type Segment struct {
	A, B Point
}

// SegmentsFromContour decomposes a contour into a list of segments,
// including the closing edge for a Closed contour.
func SegmentsFromContour(c Contour) []Segment {
	n := len(c.Points)
	if n < 2 {
		return nil
	}
	segs := make([]Segment, 0, n)
	last := n - 1
	if c.Closed {
		last = n
	}
	for i := 0; i < last; i++ {
		a := c.Points[i%n]
		b := c.Points[(i+1)%n]
		segs = append(segs, Segment{A: a, B: b})
	}
	return segs
}
