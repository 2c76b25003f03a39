package model

// Loop is a closed contour produced by the loop extractor, with the
// derived fields the hierarchy resolver and assembler need: signed
// area, bounding box, an interior sample point and parent/depth
// links. Loops are owned by an Arena keyed by integer index;
// Parent/Children are indices into that Arena, never back-pointers,
// so the hierarchy tree can always be rebuilt from Parent alone.
type Loop struct {
	// Open is the loop's point sequence without the implicit closing
	// point (Open[0] repeated). ClosedPts() appends it back on demand.
	Open []Point

	SignedArea float64
	BBox       BBox
	Sample     Point
	HasSample  bool

	Parent int // -1 when this loop has no enclosing parent
	Depth  int

	// Skip marks a loop that the pseudo-hole normalizer has flattened
	// away: its children have been re-parented and this loop itself
	// must not appear in the final shape set.
	Skip bool
}

// ClosedPts returns the loop's points with the first point appended
// again at the end: closedPts = openPts + openPts[0].
func (l *Loop) ClosedPts() []Point {
	out := make([]Point, len(l.Open)+1)
	copy(out, l.Open)
	out[len(l.Open)] = l.Open[0]
	return out
}

// Area returns the unsigned area of the loop.
func (l *Loop) Area() float64 {
	if l.SignedArea < 0 {
		return -l.SignedArea
	}
	return l.SignedArea
}

// CCW reports whether the loop winds counter-clockwise.
func (l *Loop) CCW() bool {
	return l.SignedArea > 0
}

// Arena owns every Loop discovered during loop extraction and
// compound splitting. Indices into Loops are stable once assigned;
// hierarchy resolution and pseudo-hole flattening only ever mutate
// fields on the Loop values in place.
type Arena struct {
	Loops []*Loop
}

// NewArena builds an Arena from raw open point sequences, computing
// the derived fields (area, bbox) for each. Loops with fewer than 3
// points are dropped, since a closed loop needs closedPts.len >= 4.
func NewArena(openLoops [][]Point) *Arena {
	a := &Arena{}
	for _, pts := range openLoops {
		if len(pts) < 3 {
			continue
		}
		l := &Loop{
			Open:       pts,
			SignedArea: SignedArea(pts),
			BBox:       BoundPoints(pts),
			Parent:     -1,
		}
		a.Loops = append(a.Loops, l)
	}
	return a
}

// Add appends a single pre-built loop (used by the hull fallback,
// which synthesizes a new loop after the initial arena is built) and
// returns its index.
func (a *Arena) Add(pts []Point) int {
	l := &Loop{
		Open:       pts,
		SignedArea: SignedArea(pts),
		BBox:       BoundPoints(pts),
		Parent:     -1,
	}
	a.Loops = append(a.Loops, l)
	return len(a.Loops) - 1
}

// Active returns the indices of loops that have not been marked
// Skip, in arena order.
func (a *Arena) Active() []int {
	var out []int
	for i, l := range a.Loops {
		if !l.Skip {
			out = append(out, i)
		}
	}
	return out
}

// ChildrenOf returns the indices of loops whose Parent is exactly p.
func (a *Arena) ChildrenOf(p int) []int {
	var out []int
	for i, l := range a.Loops {
		if l.Parent == p {
			out = append(out, i)
		}
	}
	return out
}
