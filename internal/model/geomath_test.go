package model

import "testing"

func TestSignedAreaSquare(t *testing.T) {
	ccw := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	if a := SignedArea(ccw); a != 4 {
		t.Errorf("SignedArea(ccw square) = %v, want 4", a)
	}
	cw := Reversed(ccw)
	if a := SignedArea(cw); a != -4 {
		t.Errorf("SignedArea(cw square) = %v, want -4", a)
	}
}

func TestSignedAreaDegenerate(t *testing.T) {
	for _, pts := range [][]Point{nil, {{0, 0}}, {{0, 0}, {1, 0}}} {
		if a := SignedArea(pts); a != 0 {
			t.Errorf("SignedArea(%v) = %v, want 0", pts, a)
		}
	}
}

func TestOrientation(t *testing.T) {
	ccw := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	if !Orientation(ccw) {
		t.Errorf("Orientation(ccw square) = false, want true")
	}
	if Orientation(Reversed(ccw)) {
		t.Errorf("Orientation(cw square) = true, want false")
	}
}

func TestPointInPolygonStrict(t *testing.T) {
	square := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	vs := []struct {
		p    Point
		want bool
	}{
		{Point{2, 2}, true},
		{Point{0.01, 0.01}, true},
		{Point{-1, 2}, false},
		{Point{5, 2}, false},
		{Point{0, 2}, false},  // on edge: strict containment excludes it
		{Point{4, 4}, false},  // on vertex
		{Point{2, 0}, false},  // on edge
	}
	for i, v := range vs {
		if got := PointInPolygonStrict(v.p, square); got != v.want {
			t.Errorf("test=%d PointInPolygonStrict(%v) = %v, want %v", i, v.p, got, v.want)
		}
	}
}

func TestCentroidSquare(t *testing.T) {
	square := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	c, ok := Centroid(square)
	if !ok {
		t.Fatalf("Centroid(square) reported degenerate")
	}
	if c.Dist(Point{1, 1}) > 1e-9 {
		t.Errorf("Centroid(square) = %v, want (1,1)", c)
	}
}

func TestCentroidDegenerate(t *testing.T) {
	if _, ok := Centroid([]Point{{0, 0}, {1, 0}, {2, 0}}); ok {
		t.Errorf("Centroid(collinear) reported ok, want degenerate")
	}
}

func TestReversed(t *testing.T) {
	in := []Point{{0, 0}, {1, 0}, {1, 1}}
	out := Reversed(in)
	want := []Point{{1, 1}, {1, 0}, {0, 0}}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("Reversed()[%d] = %v, want %v", i, out[i], want[i])
		}
	}
	if in[0] != (Point{0, 0}) {
		t.Errorf("Reversed mutated its input")
	}
}
