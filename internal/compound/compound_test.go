package compound

import (
	"testing"

	"zappem.net/pub/cad/contour/internal/model"
)

func TestSuspiciousSimpleSquareIsNotFlagged(t *testing.T) {
	cfg := model.DefaultConfig()
	square := []model.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	if Suspicious(square, cfg) {
		t.Errorf("Suspicious(simple square) = true, want false")
	}
}

// sharedVertexFigureEight is one closed path that visits two squares
// joined at a shared corner (0,0): a self-retracing loop that paints
// half its interior solid under even-odd fill.
func sharedVertexFigureEight() []model.Point {
	return []model.Point{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
		{X: 0, Y: 0}, {X: 0, Y: -2}, {X: -2, Y: -2}, {X: -2, Y: 0},
	}
}

func TestSuspiciousFlagsRepeatedVertex(t *testing.T) {
	cfg := model.DefaultConfig()
	if !Suspicious(sharedVertexFigureEight(), cfg) {
		t.Errorf("Suspicious(shared-vertex figure-eight) = false, want true")
	}
}

func TestSplitSeparatesSubloops(t *testing.T) {
	cfg := model.DefaultConfig()
	subs := Split(sharedVertexFigureEight(), cfg)
	if len(subs) != 2 {
		t.Fatalf("Split() returned %d subloops, want 2", len(subs))
	}
	for i, s := range subs {
		if len(s) != 4 {
			t.Errorf("subloop %d has %d points, want 4", i, len(s))
		}
		if a := abs(model.SignedArea(s)); a < 3.9 || a > 4.1 {
			t.Errorf("subloop %d area = %v, want ~4", i, a)
		}
	}
}

func TestSplitReturnsOriginalWhenNotSeparable(t *testing.T) {
	cfg := model.DefaultConfig()
	square := []model.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	subs := Split(square, cfg)
	if len(subs) != 1 {
		t.Fatalf("Split(simple square) returned %d loops, want 1 (unchanged)", len(subs))
	}
}
